// SPDX-License-Identifier: MIT
// Package grb: DenseVector is a fixed-size vector backed by a value slice and a
// presence slice, giving O(1) membership, access and update.

package grb

import (
	"fmt"
	"iter"
	"strings"
)

// denseErrorf wraps an underlying error with DenseVector method context.
func denseErrorf(method string, i int, err error) error {
	return fmt.Errorf("DenseVector.%s(%d): %w", method, i, err)
}

// DenseVector stores one slot per index; present[i] marks stored entries.
type DenseVector[T Scalar] struct {
	vals    []T
	present []bool
	nvals   int
}

// NewDenseVector creates an empty dense vector of the given size.
// Complexity: O(n) time and memory.
func NewDenseVector[T Scalar](n int) (*DenseVector[T], error) {
	if err := ValidateSize(n); err != nil {
		return nil, err
	}

	return &DenseVector[T]{vals: make([]T, n), present: make([]bool, n)}, nil
}

// NewDenseVectorFromSlice creates a fully populated dense vector holding a
// copy of vals (every index is stored, including zero values).
func NewDenseVectorFromSlice[T Scalar](vals []T) (*DenseVector[T], error) {
	v, err := NewDenseVector[T](len(vals))
	if err != nil {
		return nil, err
	}
	copy(v.vals, vals)
	for i := range v.present {
		v.present[i] = true
	}
	v.nvals = len(vals)

	return v, nil
}

// Size returns the dimension.
func (v *DenseVector[T]) Size() int { return len(v.vals) }

// NVals returns the number of stored entries.
func (v *DenseVector[T]) NVals() int { return v.nvals }

// HasElement reports whether i is stored; out-of-range indices are absent.
func (v *DenseVector[T]) HasElement(i int) bool {
	return i >= 0 && i < len(v.present) && v.present[i]
}

// IsTruthy reports whether i is stored with a non-zero value.
func (v *DenseVector[T]) IsTruthy(i int) bool {
	return v.HasElement(i) && isTruthy(v.vals[i])
}

// StoredIndices yields stored indices in ascending order.
func (v *DenseVector[T]) StoredIndices() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i, ok := range v.present {
			if ok && !yield(i) {
				return
			}
		}
	}
}

// ExtractElement returns the value at i and whether it is stored.
func (v *DenseVector[T]) ExtractElement(i int) (T, bool) {
	if !v.HasElement(i) {
		var zero T
		return zero, false
	}

	return v.vals[i], true
}

// SetElement stores x at i.
func (v *DenseVector[T]) SetElement(i int, x T) error {
	if i < 0 || i >= len(v.vals) {
		return denseErrorf("SetElement", i, ErrOutOfRange)
	}
	v.nvals += v.store(i, x)

	return nil
}

// MergeSetElement stores op(old, x) at i when i is stored, x otherwise.
func (v *DenseVector[T]) MergeSetElement(i int, x T, op BinaryOp[T]) error {
	if i < 0 || i >= len(v.vals) {
		return denseErrorf("MergeSetElement", i, ErrOutOfRange)
	}
	v.nvals += v.mergeStore(i, x, op)

	return nil
}

// RemoveElement deletes the entry at i.
func (v *DenseVector[T]) RemoveElement(i int) bool {
	if !v.HasElement(i) {
		return false
	}
	v.nvals += v.drop(i)

	return true
}

// Clear removes every entry.
func (v *DenseVector[T]) Clear() {
	clear(v.vals)
	clear(v.present)
	v.nvals = 0
}

// All yields stored (index, value) pairs in ascending index order.
func (v *DenseVector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, ok := range v.present {
			if ok && !yield(i, v.vals[i]) {
				return
			}
		}
	}
}

// Clone returns a deep copy.
func (v *DenseVector[T]) Clone() *DenseVector[T] {
	return &DenseVector[T]{
		vals:    append([]T(nil), v.vals...),
		present: append([]bool(nil), v.present...),
		nvals:   v.nvals,
	}
}

// ToSparse returns a SparseVector holding the same entries.
func (v *DenseVector[T]) ToSparse() *SparseVector[T] {
	s := newSparseVector[T](len(v.vals), v.nvals)
	for i, x := range v.All() {
		s.appendSorted(i, x)
	}

	return s
}

// String implements fmt.Stringer: "[i:v i:v ...]/size".
func (v *DenseVector[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	first := true
	for i, x := range v.All() {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&b, "%d:%v", i, x)
	}
	fmt.Fprintf(&b, "]/%d", len(v.vals))

	return b.String()
}

// ---------- unchecked slot primitives (kernels) ----------
// Each returns the change in nvals so parallel callers can sum deltas per
// block instead of sharing the counter.

func (v *DenseVector[T]) store(i int, x T) int {
	v.vals[i] = x
	if v.present[i] {
		return 0
	}
	v.present[i] = true
	return 1
}

func (v *DenseVector[T]) mergeStore(i int, x T, op BinaryOp[T]) int {
	if v.present[i] {
		v.vals[i] = op(v.vals[i], x)
		return 0
	}
	v.vals[i] = x
	v.present[i] = true
	return 1
}

func (v *DenseVector[T]) drop(i int) int {
	if !v.present[i] {
		return 0
	}
	var zero T
	v.vals[i] = zero
	v.present[i] = false
	return -1
}
