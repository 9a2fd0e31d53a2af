package classifier

import (
	"context"
	"fmt"

	"github.com/viant/gesture-knn/dataset"
	"github.com/viant/gesture-knn/index"
	"github.com/viant/gesture-knn/index/bruteforce"
	"github.com/viant/gesture-knn/internal/logging"
	"github.com/viant/gesture-knn/vector"
)

const (
	// DefaultK is the default number of neighbors consulted.
	DefaultK = 5

	// DefaultMaxSamplesPerClass is the default per-class sample cap.
	DefaultMaxSamplesPerClass = 1500
)

// Classifier is a kNN gesture classifier. The zero value is not usable;
// construct one with New.
type Classifier struct {
	k                  int
	maxSamplesPerClass int
	trained            bool
	set                *dataset.TrainingSet
	index              index.Index
	opts               options
}

// New returns an untrained classifier consulting k neighbors and keeping at
// most maxSamplesPerClass samples of any class.
func New(k, maxSamplesPerClass int, opts ...Option) (*Classifier, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidK, k)
	}
	if maxSamplesPerClass < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMaxSamples, maxSamplesPerClass)
	}
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logging.NoopLogger()
	}
	if o.index == nil {
		o.index = bruteforce.New()
	}
	return &Classifier{
		k:                  k,
		maxSamplesPerClass: maxSamplesPerClass,
		set:                &dataset.TrainingSet{},
		index:              o.index,
		opts:               o,
	}, nil
}

// K returns the number of neighbors consulted.
func (c *Classifier) K() int { return c.k }

// MaxSamplesPerClass returns the per-class sample cap.
func (c *Classifier) MaxSamplesPerClass() int { return c.maxSamplesPerClass }

// IsTrained reports whether a load has produced at least one sample.
func (c *Classifier) IsTrained() bool { return c.trained }

// Len returns the size of the training set.
func (c *Classifier) Len() int { return c.set.Len() }

// PerClass returns the number of training samples of each class.
func (c *Classifier) PerClass() [dataset.NumClasses]int { return c.set.PerClass }

// Load reads vals0.dat..vals9.dat under basePath and replaces the training
// set. Per-class problems are logged and skipped. When no class yields a
// sample the previous set is still discarded, Load returns
// ErrNoTrainingData and the trained flag is left as it was; a classifier
// trained earlier then answers (0, 0) until a later load succeeds.
func (c *Classifier) Load(ctx context.Context, basePath string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	loader := &dataset.Loader{
		MaxPerClass: c.maxSamplesPerClass,
		Rand:        c.opts.rand,
		Logger:      c.opts.logger,
	}
	set := loader.Load(ctx, basePath)
	if err := c.index.Build(set.Samples, set.Labels); err != nil {
		return fmt.Errorf("classifier: build index: %w", err)
	}
	c.set = set
	if set.Len() == 0 {
		return fmt.Errorf("%w: %s", ErrNoTrainingData, basePath)
	}
	c.trained = true
	return nil
}

// Summary returns per-class statistics of the training set.
func (c *Classifier) Summary() []dataset.ClassSummary {
	return dataset.Summarize(c.set.Samples, c.set.Labels)
}

// Prediction is the full result of a classification.
type Prediction struct {
	Label      int
	Confidence float32
	Votes      [dataset.NumClasses]int
	// Neighbors are the retained nearest samples ordered by distance.
	Neighbors []index.Neighbor
}

// Predict classifies query and reports the votes and neighbors behind the
// decision. An untrained classifier yields the zero Prediction.
func (c *Classifier) Predict(query vector.Sample) Prediction {
	if !c.trained || c.index.Len() == 0 {
		return Prediction{}
	}
	neighbors := c.index.Search(query, c.k)
	p := tally(neighbors)
	p.Neighbors = neighbors
	c.opts.logger.LogClassify(context.Background(), p.Label, p.Confidence, len(neighbors))
	return p
}

// Classify returns the predicted class of query and the fraction of the
// retained neighbors that voted for it. An untrained classifier returns
// (0, 0).
func (c *Classifier) Classify(query vector.Sample) (int, float32) {
	p := c.Predict(query)
	return p.Label, p.Confidence
}

// ClassifyValues is Classify for a slice; it fails with
// vector.ErrInvalidLength unless values holds exactly vector.Channels
// elements.
func (c *Classifier) ClassifyValues(values []uint16) (int, float32, error) {
	query, err := vector.FromSlice(values)
	if err != nil {
		return 0, 0, err
	}
	label, confidence := c.Classify(query)
	return label, confidence, nil
}
