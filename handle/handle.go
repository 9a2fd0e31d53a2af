// Package handle exposes classifiers through opaque integer handles for
// hosts that manage lifetimes explicitly. The package keeps no state of its
// own; hosts own a Registry created with NewRegistry.
package handle

import (
	"context"
	"errors"
	"sync"

	"github.com/viant/gesture-knn/classifier"
	"github.com/viant/gesture-knn/vector"
)

// ErrInvalidHandle is returned for a handle that was never created or has
// been destroyed.
var ErrInvalidHandle = errors.New("handle: invalid or destroyed handle")

// Handle identifies a classifier owned by a Registry. Zero is never issued.
type Handle uint64

// Registry owns the classifiers behind issued handles.
type Registry struct {
	mu      sync.RWMutex
	next    Handle
	entries map[Handle]*classifier.Classifier
	opts    []classifier.Option
}

// NewRegistry returns an empty registry; opts apply to every created
// classifier.
func NewRegistry(opts ...classifier.Option) *Registry {
	return &Registry{entries: map[Handle]*classifier.Classifier{}, opts: opts}
}

// Create constructs an untrained classifier and returns its handle.
func (r *Registry) Create(k, maxSamplesPerClass int) (Handle, error) {
	c, err := classifier.New(k, maxSamplesPerClass, r.opts...)
	if err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	r.entries[r.next] = c
	return r.next, nil
}

// Load populates the classifier from basePath. A load that finds no data
// is not reported; check IsTrained.
func (r *Registry) Load(h Handle, basePath string) error {
	c, err := r.get(h)
	if err != nil {
		return err
	}
	_ = c.Load(context.Background(), basePath)
	return nil
}

// Classify returns the predicted label and confidence for query.
func (r *Registry) Classify(h Handle, query [vector.Channels]uint16) (int, float32, error) {
	c, err := r.get(h)
	if err != nil {
		return 0, 0, err
	}
	label, confidence := c.Classify(vector.Sample(query))
	return label, confidence, nil
}

// IsTrained reports whether the classifier behind h has training data.
func (r *Registry) IsTrained(h Handle) (bool, error) {
	c, err := r.get(h)
	if err != nil {
		return false, err
	}
	return c.IsTrained(), nil
}

// Destroy releases the classifier behind h. Further use of h fails with
// ErrInvalidHandle.
func (r *Registry) Destroy(h Handle) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[h]; !ok {
		return ErrInvalidHandle
	}
	delete(r.entries, h)
	return nil
}

// Len returns the number of live handles.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

func (r *Registry) get(h Handle) (*classifier.Classifier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.entries[h]
	if !ok {
		return nil, ErrInvalidHandle
	}
	return c, nil
}
