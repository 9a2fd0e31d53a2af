package classifier

import "github.com/viant/gesture-knn/dataset"

const (
	// DefaultHistoryLen is the default number of recent labels a Smoother
	// votes over.
	DefaultHistoryLen = 25

	// switchMargin is how many more history votes a candidate pose needs
	// than the current pose before the Smoother switches.
	switchMargin = 3

	// NoPose is reported by a Smoother that has not observed a label yet.
	NoPose = -1
)

// Smoother turns a stream of per-sample labels into a stable pose. It keeps
// the last histLen labels and switches to the most frequent one only when it
// leads the current pose by more than three votes and holds more than a
// third of the history. The first observation always sets the pose.
//
// A Smoother is not safe for concurrent use.
type Smoother struct {
	history    []int
	next       int
	counts     [dataset.NumClasses]int
	pose       int
	confidence float32
}

// NewSmoother returns a Smoother over the last histLen labels. A histLen
// below one selects DefaultHistoryLen.
func NewSmoother(histLen int) *Smoother {
	if histLen < 1 {
		histLen = DefaultHistoryLen
	}
	history := make([]int, histLen)
	for i := range history {
		history[i] = NoPose
	}
	return &Smoother{history: history, pose: NoPose}
}

// HistoryLen returns the number of labels voted over.
func (s *Smoother) HistoryLen() int { return len(s.history) }

// Pose returns the current pose and the confidence recorded when it was
// selected; NoPose before the first observation.
func (s *Smoother) Pose() (int, float32) { return s.pose, s.confidence }

// Observe records label and reports the resulting pose, its confidence and
// whether this observation changed it. Labels outside the class range are
// ignored.
func (s *Smoother) Observe(label int, confidence float32) (int, float32, bool) {
	if label < 0 || label >= dataset.NumClasses {
		return s.pose, s.confidence, false
	}
	if oldest := s.history[s.next]; oldest != NoPose {
		s.counts[oldest]--
	}
	s.history[s.next] = label
	s.next = (s.next + 1) % len(s.history)
	s.counts[label]++

	candidate := 0
	for class := 1; class < dataset.NumClasses; class++ {
		if s.counts[class] > s.counts[candidate] {
			candidate = class
		}
	}
	count := s.counts[candidate]
	if s.pose == NoPose || (count > s.counts[s.pose]+switchMargin && count > len(s.history)/3) {
		s.pose = candidate
		s.confidence = confidence
		return s.pose, s.confidence, true
	}
	return s.pose, s.confidence, false
}

// Reset forgets the history and the current pose.
func (s *Smoother) Reset() {
	for i := range s.history {
		s.history[i] = NoPose
	}
	s.next = 0
	s.counts = [dataset.NumClasses]int{}
	s.pose = NoPose
	s.confidence = 0
}
