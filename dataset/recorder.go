package dataset

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/viant/gesture-knn/vector"
)

const (
	// DefaultBufferSize is the number of buffered samples that triggers a
	// flush of a class.
	DefaultBufferSize = 20

	// DefaultFlushInterval is the longest time samples stay buffered while
	// new samples keep arriving.
	DefaultFlushInterval = time.Second
)

// RecorderOption configures a Recorder.
type RecorderOption func(*Recorder)

// WithBufferSize sets the per-class buffer threshold.
func WithBufferSize(n int) RecorderOption {
	return func(r *Recorder) {
		if n > 0 {
			r.bufferSize = n
		}
	}
}

// WithFlushInterval sets the time-based flush threshold.
func WithFlushInterval(d time.Duration) RecorderOption {
	return func(r *Recorder) { r.flushInterval = d }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) RecorderOption {
	return func(r *Recorder) {
		if now != nil {
			r.now = now
		}
	}
}

// Recorder appends captured samples to the class files of a training
// directory. Samples are buffered per class and written in batches.
type Recorder struct {
	mu            sync.Mutex
	dir           string
	bufferSize    int
	flushInterval time.Duration
	now           func() time.Time
	lastFlush     time.Time
	buffers       [NumClasses][]vector.Sample
	counts        [NumClasses]int
}

// NewRecorder creates dir if needed, creates any missing class file and
// counts the complete records already present.
func NewRecorder(dir string, opts ...RecorderOption) (*Recorder, error) {
	r := &Recorder{
		dir:           dir,
		bufferSize:    DefaultBufferSize,
		flushInterval: DefaultFlushInterval,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("dataset: create %s: %w", dir, err)
	}
	for class := 0; class < NumClasses; class++ {
		path := FileName(dir, class)
		f, err := os.OpenFile(path, os.O_CREATE|os.O_RDONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("dataset: open %s: %w", path, err)
		}
		info, err := f.Stat()
		_ = f.Close()
		if err != nil {
			return nil, fmt.Errorf("dataset: stat %s: %w", path, err)
		}
		r.counts[class] = int(info.Size() / vector.RecordSize)
	}
	r.lastFlush = r.now()
	return r, nil
}

// Dir returns the training directory.
func (r *Recorder) Dir() string { return r.dir }

// Store buffers sample under class. The class buffer is written out when it
// reaches the buffer size or when the flush interval has elapsed since the
// previous time-triggered flush.
func (r *Recorder) Store(class int, sample vector.Sample) error {
	if err := checkClass(class); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.buffers[class] = append(r.buffers[class], sample)
	r.counts[class]++

	now := r.now()
	if len(r.buffers[class]) >= r.bufferSize || now.Sub(r.lastFlush) >= r.flushInterval {
		r.lastFlush = now
		return r.flush(class)
	}
	return nil
}

// Flush writes the buffered samples of class to its file.
func (r *Recorder) Flush(class int) error {
	if err := checkClass(class); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.flush(class)
}

// FlushAll writes every non-empty buffer.
func (r *Recorder) FlushAll() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for class := range r.buffers {
		if err := r.flush(class); err != nil {
			return err
		}
	}
	return nil
}

// Close flushes all buffers.
func (r *Recorder) Close() error { return r.FlushAll() }

// Count returns the number of samples recorded for class, buffered ones
// included.
func (r *Recorder) Count(class int) int {
	if checkClass(class) != nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.counts[class]
}

// Counts returns the per-class sample counts.
func (r *Recorder) Counts() [NumClasses]int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.counts
}

// Reset truncates every class file and drops buffered samples.
func (r *Recorder) Reset() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for class := 0; class < NumClasses; class++ {
		path := FileName(r.dir, class)
		if err := os.WriteFile(path, nil, 0o644); err != nil {
			return fmt.Errorf("dataset: truncate %s: %w", path, err)
		}
		r.buffers[class] = nil
		r.counts[class] = 0
	}
	return nil
}

func (r *Recorder) flush(class int) error {
	if len(r.buffers[class]) == 0 {
		return nil
	}
	path := FileName(r.dir, class)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("dataset: open %s: %w", path, err)
	}
	if _, err := f.Write(vector.EncodeSamples(r.buffers[class])); err != nil {
		_ = f.Close()
		return fmt.Errorf("dataset: append %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	r.buffers[class] = r.buffers[class][:0]
	return nil
}

func checkClass(class int) error {
	if class < 0 || class >= NumClasses {
		return fmt.Errorf("dataset: class %d out of range [0, %d)", class, NumClasses)
	}
	return nil
}
