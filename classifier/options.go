package classifier

import (
	"math/rand/v2"

	"github.com/viant/gesture-knn/index"
	"github.com/viant/gesture-knn/internal/logging"
)

type options struct {
	logger *logging.Logger
	rand   *rand.Rand
	index  index.Index
}

// Option configures a Classifier.
type Option func(*options)

// WithLogger sets the logger receiving load diagnostics. Nil disables
// logging.
func WithLogger(l *logging.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithRand sets the generator used to subsample oversized classes. By
// default each Load seeds a private generator.
func WithRand(r *rand.Rand) Option {
	return func(o *options) { o.rand = r }
}

// WithIndex replaces the brute-force search index.
func WithIndex(idx index.Index) Option {
	return func(o *options) { o.index = idx }
}
