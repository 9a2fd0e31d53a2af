package classifier

import "errors"

var (
	// ErrInvalidK is returned when k is not positive.
	ErrInvalidK = errors.New("classifier: k must be positive")

	// ErrInvalidMaxSamples is returned when the per-class cap is not positive.
	ErrInvalidMaxSamples = errors.New("classifier: max samples per class must be positive")

	// ErrNoTrainingData is returned by Load when no class file contributed a
	// sample.
	ErrNoTrainingData = errors.New("classifier: no training data loaded")
)
