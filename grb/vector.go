// SPDX-License-Identifier: MIT
// Package grb: vector capability shared by the dense and sparse containers.
//
// Purpose:
//   - Give kernels and callers one surface for membership, point access,
//     merge-set, removal and index-ordered traversal.
//   - Let any vector, of any scalar type, serve as a mask source.

package grb

import "iter"

// MaskSource is the read-only surface a mask needs from its inner vector.
// Both DenseVector and SparseVector implement it for every scalar type, so
// a mask's element type is independent of the output's.
type MaskSource interface {
	// Size is the fixed dimension of the vector.
	Size() int
	// HasElement reports whether index i holds a stored value.
	HasElement(i int) bool
	// IsTruthy reports whether index i holds a stored, non-zero value.
	IsTruthy(i int) bool
	// StoredIndices yields every stored index exactly once, in no
	// particular order. It never reorders internal storage.
	StoredIndices() iter.Seq[int]
}

// Vector is the mutable surface consumed by VxM and MxV. Implementations
// outside this package are not accepted as outputs (ErrUnsupportedVector);
// the interface exists so callers can hold either container uniformly.
type Vector[T Scalar] interface {
	MaskSource

	// NVals is the number of stored entries.
	NVals() int
	// ExtractElement returns the value at i and whether it is stored.
	ExtractElement(i int) (T, bool)
	// SetElement stores v at i, overwriting any previous value.
	SetElement(i int, v T) error
	// MergeSetElement stores op(old, v) at i, or v when i is empty.
	MergeSetElement(i int, v T, op BinaryOp[T]) error
	// RemoveElement deletes the entry at i and reports whether one existed.
	RemoveElement(i int) bool
	// Clear removes every entry; Size is unchanged.
	Clear()
	// All yields stored (index, value) pairs in ascending index order.
	All() iter.Seq2[int, T]
}

// isTruthy reports v != zero(T).
func isTruthy[T Scalar](v T) bool {
	var zero T
	return v != zero
}
