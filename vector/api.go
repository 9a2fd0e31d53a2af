package vector

import "context"

// Channels is the number of sensor channels carried by one Sample.
const Channels = 8

// Sample is one multi-channel reading. It is a value type; a stored Sample
// never changes.
type Sample [Channels]uint16

// FromSlice converts values into a Sample. It returns ErrInvalidLength
// unless values holds exactly Channels elements.
func FromSlice(values []uint16) (Sample, error) {
	var s Sample
	if len(values) != Channels {
		return s, &LengthError{Want: Channels, Got: len(values)}
	}
	copy(s[:], values)
	return s, nil
}

// Float32s returns the sample as float32 values.
func (s Sample) Float32s() []float32 {
	out := make([]float32, Channels)
	for i, v := range s {
		out[i] = float32(v)
	}
	return out
}

// Store persists labeled samples captured from a device.
type Store interface {
	// AddSamples appends samples under the given label and returns the number written.
	AddSamples(ctx context.Context, label int, samples []Sample) (int, error)

	// Samples returns every sample stored for label in insertion order.
	Samples(ctx context.Context, label int) ([]Sample, error)

	// Counts returns the number of stored samples per label.
	Counts(ctx context.Context) (map[int]int, error)

	// Clear removes every stored sample.
	Clear(ctx context.Context) error
}
