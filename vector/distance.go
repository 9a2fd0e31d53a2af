package vector

// SquaredNorm returns the sum of squares of the sample components,
// accumulated in float64.
func SquaredNorm(s Sample) float64 {
	var sum float64
	for _, v := range s {
		f := float64(v)
		sum += f * f
	}
	return sum
}

// Dot returns the dot product of a and b accumulated in float64.
func Dot(a, b Sample) float64 {
	var sum float64
	for i := range a {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum
}

// SquaredDistance returns ‖a-b‖² expanded as ‖a‖² + ‖b‖² - 2·a·b from
// precomputed squared norms. Every term is an integer below 2^53, so the
// result is exact.
func SquaredDistance(a, b Sample, normA, normB float64) float64 {
	return normA + normB - 2*Dot(a, b)
}

// SquaredL2 computes the squared Euclidean distance component-wise.
func SquaredL2(a, b Sample) float64 {
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return sum
}
