// Package matrix offers the distance tables the tour engine reads.
//
// The package provides:
//
//   - Matrix, a small bounds-checked interface over 2-D float64 storage.
//   - Dense, a mutable row-major implementation for general use and tests.
//   - Distance, the immutable symmetric table built once per point set,
//     either from coordinates (NewEuclidean, rows filled concurrently) or
//     from any validated Matrix (FromMatrix).
//
// Every error is a package sentinel (see errors.go), matched with errors.Is.
//
// Matrices are O(n²) memory; that is the intended trade for O(1) distance
// lookups inside local-search loops.
package matrix
