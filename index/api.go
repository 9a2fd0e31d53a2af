package index

import "github.com/viant/gesture-knn/vector"

// Neighbor is one retained candidate of a kNN search.
type Neighbor struct {
	// Index is the position of the sample in the training set.
	Index int
	// Label is the gesture class of the sample.
	Label int
	// Distance is the squared Euclidean distance to the query.
	Distance float64
}

// Index defines a kNN index over labeled samples.
type Index interface {
	// Build replaces the indexed training set. samples and labels must have
	// the same length.
	Build(samples []vector.Sample, labels []int) error

	// Search returns up to k nearest neighbors of query ordered by
	// ascending distance. An empty index yields no neighbors.
	Search(query vector.Sample, k int) []Neighbor

	// Len returns the number of indexed samples.
	Len() int
}
