// Package bruteforce provides an exact kNN index that scans every stored
// sample. Squared norms are precomputed at build time so each comparison
// costs a single dot product.
package bruteforce
