// Package classifier implements a k-nearest-neighbor gesture classifier
// over eight-channel EMG samples.
//
// A Classifier starts untrained. Load reads the per-class training files of
// a directory (see package dataset), precomputes squared norms and marks the
// classifier trained once at least one sample is present. Classify runs an
// exact brute-force search for the k nearest samples by squared Euclidean
// distance and returns the majority class with the fraction of neighbors
// that voted for it.
//
// Load must not overlap with other calls on the same Classifier. Once
// trained, Classify and Predict only read state and may be called
// concurrently.
package classifier
