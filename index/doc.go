// Package index defines a minimal abstraction for labeled sample indexes
// that are built once from a training set and queried for the k nearest
// neighbors. Implementations in this module include a brute-force scan.
package index
