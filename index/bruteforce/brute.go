package bruteforce

import (
	"fmt"

	"github.com/viant/gesture-knn/index"
	"github.com/viant/gesture-knn/vector"
)

// Index is an exact brute-force kNN index over squared Euclidean distance.
type Index struct {
	samples []vector.Sample
	labels  []int
	norms   []float64
}

// New returns an empty index.
func New() *Index { return &Index{} }

// Build copies samples and labels and precomputes the squared norm of every
// sample.
func (i *Index) Build(samples []vector.Sample, labels []int) error {
	if len(samples) != len(labels) {
		return fmt.Errorf("bruteforce: samples and labels length mismatch: %d != %d", len(samples), len(labels))
	}
	if len(samples) == 0 {
		i.samples, i.labels, i.norms = nil, nil, nil
		return nil
	}
	norms := make([]float64, len(samples))
	for j := range samples {
		norms[j] = vector.SquaredNorm(samples[j])
	}
	i.samples = append([]vector.Sample(nil), samples...)
	i.labels = append([]int(nil), labels...)
	i.norms = norms
	return nil
}

// Len returns the number of indexed samples.
func (i *Index) Len() int { return len(i.samples) }

// Sample returns the stored sample, its label and its squared norm.
func (i *Index) Sample(j int) (vector.Sample, int, float64) {
	return i.samples[j], i.labels[j], i.norms[j]
}

// Search scans all samples keeping the k smallest distances in a bounded
// max-heap. Once the heap is full a candidate replaces the root only when
// strictly closer, so among equal distances the earlier sample is retained.
func (i *Index) Search(query vector.Sample, k int) []index.Neighbor {
	if len(i.samples) == 0 || k <= 0 {
		return nil
	}
	qn := vector.SquaredNorm(query)
	h := newNeighbors(min(k, len(i.samples)))
	for j := range i.samples {
		d := vector.SquaredDistance(i.samples[j], query, i.norms[j], qn)
		h.offer(index.Neighbor{Index: j, Label: i.labels[j], Distance: d}, k)
	}
	return h.sorted()
}

// Ensure Index satisfies the index.Index interface.
var _ index.Index = (*Index)(nil)
