package vector

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquaredNorm(t *testing.T) {
	s := Sample{1, 2, 3, 4, 5, 6, 7, 8}
	assert.Equal(t, 204.0, SquaredNorm(s))

	// Largest channel values must not overflow.
	peak := Sample{math.MaxUint16, math.MaxUint16, math.MaxUint16, math.MaxUint16,
		math.MaxUint16, math.MaxUint16, math.MaxUint16, math.MaxUint16}
	assert.Equal(t, 8*65535.0*65535.0, SquaredNorm(peak))
}

func TestSquaredDistance(t *testing.T) {
	testCases := []struct {
		name string
		a, b Sample
	}{
		{name: "identical", a: Sample{10, 20, 30, 40, 50, 60, 70, 80}, b: Sample{10, 20, 30, 40, 50, 60, 70, 80}},
		{name: "zero", a: Sample{}, b: Sample{3, 4}},
		{name: "extremes", a: Sample{0, math.MaxUint16, 0, math.MaxUint16}, b: Sample{math.MaxUint16, 0, math.MaxUint16, 0}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := SquaredDistance(tc.a, tc.b, SquaredNorm(tc.a), SquaredNorm(tc.b))
			assert.Equal(t, SquaredL2(tc.a, tc.b), got)
		})
	}
}

func TestSquaredL2(t *testing.T) {
	assert.Equal(t, 25.0, SquaredL2(Sample{}, Sample{3, 4}))
}
