// Package grb offers masked semiring vector×matrix kernels over sparse
// graph matrices.
//
// The grb package provides:
//
//   - VxM: w<mask, accum> := u·A (or u·Aᵗ) over any Semiring, with
//     REPLACE/MERGE output control.
//   - MxV: w<mask, accum> := A·u, the row-wise dot-product counterpart.
//   - DenseVector and SparseVector containers; the output kind selects the
//     kernel (parallel dense axpy or single-threaded sparse axpy).
//   - Matrix, a sorted-row (LIL) sparse matrix with a lazy AdjacencyView
//     that flattens rows into a single ordered (row, col, value) stream.
//
// Masking, accumulation and output control are resolved once per call into
// a policy value shared by both kernels, so dense and sparse outputs are
// observably identical for the same inputs.
//
// See the examples in this package and in algorithms for usage patterns.
package grb
