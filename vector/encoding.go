package vector

import "encoding/binary"

// RecordSize is the encoded size of one Sample in bytes.
const RecordSize = Channels * 2

// EncodeSample encodes s as eight little-endian uint16 values.
func EncodeSample(s Sample) []byte {
	b := make([]byte, RecordSize)
	for i, v := range s {
		binary.LittleEndian.PutUint16(b[i*2:], v)
	}
	return b
}

// DecodeSample decodes a single RecordSize-byte record.
func DecodeSample(b []byte) (Sample, error) {
	var s Sample
	if len(b) != RecordSize {
		return s, &LengthError{Want: RecordSize, Got: len(b)}
	}
	for i := range s {
		s[i] = binary.LittleEndian.Uint16(b[i*2:])
	}
	return s, nil
}

// EncodeSamples concatenates the encoded samples with no header or
// delimiter.
func EncodeSamples(samples []Sample) []byte {
	out := make([]byte, 0, len(samples)*RecordSize)
	for _, s := range samples {
		out = append(out, EncodeSample(s)...)
	}
	return out
}

// DecodeSamples splits b into complete records. Trailing bytes that do not
// form a complete record are ignored.
func DecodeSamples(b []byte) []Sample {
	n := len(b) / RecordSize
	if n == 0 {
		return nil
	}
	out := make([]Sample, n)
	for i := 0; i < n; i++ {
		rec := b[i*RecordSize : (i+1)*RecordSize]
		for j := range out[i] {
			out[i][j] = binary.LittleEndian.Uint16(rec[j*2:])
		}
	}
	return out
}
