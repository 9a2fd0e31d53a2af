package bruteforce

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/gesture-knn/vector"
)

func TestIndex_Build(t *testing.T) {
	t.Run("precomputes norms", func(t *testing.T) {
		samples := []vector.Sample{{1, 2, 3, 4, 5, 6, 7, 8}, {65535, 0, 0, 0, 0, 0, 0, 1}}
		idx := New()
		require.NoError(t, idx.Build(samples, []int{0, 1}))
		require.Equal(t, 2, idx.Len())
		for j, s := range samples {
			got, label, norm := idx.Sample(j)
			assert.Equal(t, s, got)
			assert.Equal(t, j, label)
			var want float64
			for _, v := range s {
				want += float64(v) * float64(v)
			}
			assert.InDelta(t, want, norm, 1e-9)
		}
	})

	t.Run("length mismatch", func(t *testing.T) {
		err := New().Build([]vector.Sample{{1}}, nil)
		assert.Error(t, err)
	})

	t.Run("empty resets", func(t *testing.T) {
		idx := New()
		require.NoError(t, idx.Build([]vector.Sample{{1}}, []int{0}))
		require.NoError(t, idx.Build(nil, nil))
		assert.Equal(t, 0, idx.Len())
		assert.Empty(t, idx.Search(vector.Sample{1}, 3))
	})
}

func TestIndex_Search(t *testing.T) {
	samples := []vector.Sample{
		{0, 0, 0, 0, 0, 0, 0, 0},
		{10, 0, 0, 0, 0, 0, 0, 0},
		{20, 0, 0, 0, 0, 0, 0, 0},
		{30, 0, 0, 0, 0, 0, 0, 0},
		{40, 0, 0, 0, 0, 0, 0, 0},
	}
	labels := []int{0, 1, 2, 3, 4}
	idx := New()
	require.NoError(t, idx.Build(samples, labels))

	t.Run("k smallest ascending", func(t *testing.T) {
		got := idx.Search(vector.Sample{31}, 3)
		require.Len(t, got, 3)
		assert.Equal(t, 3, got[0].Index)
		assert.Equal(t, 4, got[1].Index)
		assert.Equal(t, 2, got[2].Index)
		assert.Equal(t, 1.0, got[0].Distance)
		assert.Equal(t, 81.0, got[1].Distance)
		assert.Equal(t, 121.0, got[2].Distance)
	})

	t.Run("k larger than index", func(t *testing.T) {
		got := idx.Search(vector.Sample{}, 10)
		assert.Len(t, got, len(samples))
	})

	t.Run("exact match", func(t *testing.T) {
		got := idx.Search(samples[2], 1)
		require.Len(t, got, 1)
		assert.Equal(t, 2, got[0].Label)
		assert.Equal(t, 0.0, got[0].Distance)
	})

	t.Run("non-positive k", func(t *testing.T) {
		assert.Empty(t, idx.Search(vector.Sample{}, 0))
	})
}

func TestIndex_Search_EqualDistanceKeepsEarlier(t *testing.T) {
	// Samples 1 and 2 are equidistant from the query; the first one seen wins.
	samples := []vector.Sample{{100}, {5}, {0, 5}, {0, 0, 5}}
	idx := New()
	require.NoError(t, idx.Build(samples, []int{9, 1, 2, 3}))

	got := idx.Search(vector.Sample{}, 1)
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].Index)
}
