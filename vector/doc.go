// Package vector defines the fixed-width EMG sample used throughout this
// module and the helpers that operate on it:
//   - Sample: eight unsigned 16-bit channel readings
//   - squared norm, dot product and squared Euclidean distance
//   - 16-byte little-endian record encoding (the vals<N>.dat layout)
//   - SQLiteStore: a capture log of labeled samples
package vector
