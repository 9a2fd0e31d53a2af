package dataset

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/viant/gesture-knn/internal/logging"
	"github.com/viant/gesture-knn/vector"
)

// NumClasses is the number of gesture classes, identified 0..NumClasses-1.
const NumClasses = 10

var (
	// ErrEmptyFile is returned for a class file of zero bytes.
	ErrEmptyFile = errors.New("dataset: file is empty")
	// ErrNoRecords is returned for a class file shorter than one record.
	ErrNoRecords = errors.New("dataset: no complete records")
)

// FileName returns the path of the training file for class.
func FileName(dir string, class int) string {
	return filepath.Join(dir, fmt.Sprintf("vals%d.dat", class))
}

// ReadClassFile decodes every complete record in path. Trailing bytes that
// do not form a whole record are dropped.
func ReadClassFile(path string) ([]vector.Sample, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, ErrEmptyFile
	}
	samples := vector.DecodeSamples(data)
	if len(samples) == 0 {
		return nil, ErrNoRecords
	}
	return samples, nil
}

// Subsample draws exactly limit records uniformly at random with
// replacement when len(samples) exceeds limit; otherwise samples is returned
// unchanged. Duplicate draws are kept.
func Subsample(samples []vector.Sample, limit int, rng *rand.Rand) []vector.Sample {
	if limit <= 0 || len(samples) <= limit {
		return samples
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	out := make([]vector.Sample, limit)
	for i := range out {
		out[i] = samples[rng.IntN(len(samples))]
	}
	return out
}

// TrainingSet holds parallel samples and labels.
type TrainingSet struct {
	Samples []vector.Sample
	Labels  []int
	// PerClass is the number of samples kept for each class.
	PerClass [NumClasses]int
}

// Len returns the number of samples.
func (t *TrainingSet) Len() int { return len(t.Samples) }

// Loader reads the class files of a training directory.
type Loader struct {
	// MaxPerClass caps the samples kept for any class.
	MaxPerClass int
	// Rand drives subsampling. A freshly seeded generator is used when nil.
	Rand *rand.Rand
	// Logger receives per-class diagnostics. Nothing is logged when nil.
	Logger *logging.Logger
}

// Load reads vals0.dat..vals9.dat under dir. Missing, empty or truncated
// files are logged and skipped; the returned set may be empty.
func (l *Loader) Load(ctx context.Context, dir string) *TrainingSet {
	logger := l.Logger
	if logger == nil {
		logger = logging.NoopLogger()
	}
	rng := l.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	set := &TrainingSet{}
	for class := 0; class < NumClasses; class++ {
		path := FileName(dir, class)
		records, err := ReadClassFile(path)
		if err != nil {
			logger.LogClassSkipped(ctx, class, path, skipReason(err))
			continue
		}
		kept := Subsample(records, l.MaxPerClass, rng)
		for _, s := range kept {
			set.Samples = append(set.Samples, s)
			set.Labels = append(set.Labels, class)
		}
		set.PerClass[class] = len(kept)
		logger.LogClassLoaded(ctx, class, len(records), len(kept))
	}
	logger.LogLoadComplete(ctx, dir, set.Len())
	return set
}

func skipReason(err error) string {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "missing"
	case errors.Is(err, ErrEmptyFile):
		return "empty"
	case errors.Is(err, ErrNoRecords):
		return "no complete records"
	default:
		return err.Error()
	}
}
