package bruteforce

import (
	"container/heap"
	"sort"

	"github.com/viant/gesture-knn/index"
)

// neighbors is a bounded max-heap of candidates keyed on squared distance.
// The root is the worst retained candidate.
type neighbors []index.Neighbor

func newNeighbors(k int) neighbors { return make(neighbors, 0, k) }

func (h neighbors) Len() int           { return len(h) }
func (h neighbors) Less(i, j int) bool { return h[i].Distance > h[j].Distance }
func (h neighbors) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *neighbors) Push(x any) {
	*h = append(*h, x.(index.Neighbor))
}

func (h *neighbors) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// offer admits n while fewer than k candidates are held; after that n
// replaces the root only when strictly closer.
func (h *neighbors) offer(n index.Neighbor, k int) {
	if len(*h) < k {
		heap.Push(h, n)
		return
	}
	if n.Distance < (*h)[0].Distance {
		(*h)[0] = n
		heap.Fix(h, 0)
	}
}

// sorted returns the candidates ordered by distance, then sample index.
func (h neighbors) sorted() []index.Neighbor {
	out := []index.Neighbor(h)
	sort.SliceStable(out, func(a, b int) bool {
		if out[a].Distance != out[b].Distance {
			return out[a].Distance < out[b].Distance
		}
		return out[a].Index < out[b].Index
	})
	return out
}
