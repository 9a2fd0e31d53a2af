// Package dataset reads and writes the per-class training files consumed by
// the classifier. Each gesture class N lives in <dir>/valsN.dat as a flat
// sequence of 16-byte records (eight little-endian uint16 channel values)
// with no header or delimiter.
//
// Loader decodes the files and caps oversized classes by uniform sampling
// with replacement. Recorder appends captured samples to the same files.
// Summarize reports per-class statistics of a loaded training set.
package dataset
