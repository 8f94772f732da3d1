// SPDX-License-Identifier: MIT
// Package grb: SparseVector, index/value pairs with a deferred sort order.
//
// Purpose:
//   - Store only the nvals entries of a vector in parallel slices.
//   - Allow cheap unordered bulk writes (append / swap-remove) and defer the
//     sort to the next ordered read.
//
// Concurrency:
//   - Point queries (HasElement, IsTruthy, ExtractElement, StoredIndices) only
//     read and are safe for concurrent use. So is passing the vector as an
//     input or mask source to VxM / MxV.
//   - Ordered reads (All, ExtractTuples, String) may sort in place and must not
//     race with any other access.

package grb

import (
	"fmt"
	"iter"
	"sort"
	"strings"
)

// sparseErrorf wraps an underlying error with SparseVector method context.
func sparseErrorf(method string, i int, err error) error {
	return fmt.Errorf("SparseVector.%s(%d): %w", method, i, err)
}

// SparseVector stores entries as (idx[k], val[k]); slot maps index → k.
// unsorted marks that idx is not ascending and must be sorted before any
// ordered traversal.
type SparseVector[T Scalar] struct {
	size     int
	idx      []int
	val      []T
	slot     map[int]int
	unsorted bool
}

// NewSparseVector creates an empty sparse vector of the given size.
func NewSparseVector[T Scalar](n int) (*SparseVector[T], error) {
	if err := ValidateSize(n); err != nil {
		return nil, err
	}

	return newSparseVector[T](n, 0), nil
}

// newSparseVector allocates without validation (size already checked).
func newSparseVector[T Scalar](n, capacity int) *SparseVector[T] {
	return &SparseVector[T]{
		size: n,
		idx:  make([]int, 0, capacity),
		val:  make([]T, 0, capacity),
		slot: make(map[int]int, capacity),
	}
}

// Size returns the dimension.
func (v *SparseVector[T]) Size() int { return v.size }

// NVals returns the number of stored entries.
func (v *SparseVector[T]) NVals() int { return len(v.idx) }

// HasElement reports whether i is stored.
func (v *SparseVector[T]) HasElement(i int) bool {
	_, ok := v.slot[i]
	return ok
}

// IsTruthy reports whether i is stored with a non-zero value.
func (v *SparseVector[T]) IsTruthy(i int) bool {
	k, ok := v.slot[i]
	return ok && isTruthy(v.val[k])
}

// StoredIndices yields stored indices in storage order (not necessarily
// ascending) without sorting.
func (v *SparseVector[T]) StoredIndices() iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, i := range v.idx {
			if !yield(i) {
				return
			}
		}
	}
}

// ExtractElement returns the value at i and whether it is stored.
func (v *SparseVector[T]) ExtractElement(i int) (T, bool) {
	if k, ok := v.slot[i]; ok {
		return v.val[k], true
	}
	var zero T

	return zero, false
}

// SetElement stores x at i. Inserting below the current last index marks the
// vector unsorted.
func (v *SparseVector[T]) SetElement(i int, x T) error {
	if i < 0 || i >= v.size {
		return sparseErrorf("SetElement", i, ErrOutOfRange)
	}
	if k, ok := v.slot[i]; ok {
		v.val[k] = x
		return nil
	}
	v.insert(i, x)

	return nil
}

// MergeSetElement stores op(old, x) at i when stored, x otherwise.
func (v *SparseVector[T]) MergeSetElement(i int, x T, op BinaryOp[T]) error {
	if i < 0 || i >= v.size {
		return sparseErrorf("MergeSetElement", i, ErrOutOfRange)
	}
	if k, ok := v.slot[i]; ok {
		v.val[k] = op(v.val[k], x)
		return nil
	}
	v.insert(i, x)

	return nil
}

// RemoveElement deletes the entry at i by moving the last entry into its
// slot; the vector becomes unsorted unless the removed entry was last.
func (v *SparseVector[T]) RemoveElement(i int) bool {
	k, ok := v.slot[i]
	if !ok {
		return false
	}
	last := len(v.idx) - 1
	if k != last {
		v.idx[k], v.val[k] = v.idx[last], v.val[last]
		v.slot[v.idx[k]] = k
		v.unsorted = true
	}
	v.idx, v.val = v.idx[:last], v.val[:last]
	delete(v.slot, i)

	return true
}

// Clear removes every entry.
func (v *SparseVector[T]) Clear() {
	v.idx, v.val = v.idx[:0], v.val[:0]
	clear(v.slot)
	v.unsorted = false
}

// SetUnsorted marks the storage as possibly out of order after bulk writes.
func (v *SparseVector[T]) SetUnsorted() { v.unsorted = true }

// Sorted reports whether storage is known to be in ascending index order.
func (v *SparseVector[T]) Sorted() bool { return !v.unsorted }

// All yields stored (index, value) pairs in ascending index order, sorting
// first if needed.
func (v *SparseVector[T]) All() iter.Seq2[int, T] {
	v.sortIfNeeded()
	return func(yield func(int, T) bool) {
		for k, i := range v.idx {
			if !yield(i, v.val[k]) {
				return
			}
		}
	}
}

// ExtractTuples returns copies of the stored indices and values in
// ascending index order.
func (v *SparseVector[T]) ExtractTuples() ([]int, []T) {
	v.sortIfNeeded()
	return append([]int(nil), v.idx...), append([]T(nil), v.val...)
}

// Clone returns a deep copy (sort state included).
func (v *SparseVector[T]) Clone() *SparseVector[T] {
	c := newSparseVector[T](v.size, len(v.idx))
	c.idx = append(c.idx, v.idx...)
	c.val = append(c.val, v.val...)
	for i, k := range v.slot {
		c.slot[i] = k
	}
	c.unsorted = v.unsorted

	return c
}

// ToDense returns a DenseVector holding the same entries.
func (v *SparseVector[T]) ToDense() *DenseVector[T] {
	d := &DenseVector[T]{vals: make([]T, v.size), present: make([]bool, v.size)}
	for k, i := range v.idx {
		d.nvals += d.store(i, v.val[k])
	}

	return d
}

// String implements fmt.Stringer: "[i:v i:v ...]/size".
func (v *SparseVector[T]) String() string {
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
	fmt.Fprintf(&b, "]/%d", v.size)

	return b.String()
}

// ---------- internals ----------

// insert appends a new entry; i must be absent and in range.
func (v *SparseVector[T]) insert(i int, x T) {
	if n := len(v.idx); n > 0 && i < v.idx[n-1] {
		v.unsorted = true
	}
	v.slot[i] = len(v.idx)
	v.idx = append(v.idx, i)
	v.val = append(v.val, x)
}

// appendSorted appends an entry known to exceed every stored index.
func (v *SparseVector[T]) appendSorted(i int, x T) {
	v.slot[i] = len(v.idx)
	v.idx = append(v.idx, i)
	v.val = append(v.val, x)
}

// takeFrom moves t's storage into v (ownership transfer); t is left empty
// and must not be reused. Sizes must match.
func (v *SparseVector[T]) takeFrom(t *SparseVector[T]) {
	v.idx, v.val, v.slot, v.unsorted = t.idx, t.val, t.slot, t.unsorted
	t.idx, t.val, t.slot = nil, nil, nil
}

// ascending returns the storage positions of v in ascending index order,
// leaving v untouched.
func (v *SparseVector[T]) ascending() []int {
	ord := make([]int, len(v.idx))
	for k := range ord {
		ord[k] = k
	}
	if v.unsorted {
		sort.Slice(ord, func(a, b int) bool { return v.idx[ord[a]] < v.idx[ord[b]] })
	}

	return ord
}

// sortIfNeeded restores ascending order and rebuilds slot.
func (v *SparseVector[T]) sortIfNeeded() {
	if !v.unsorted {
		return
	}
	sort.Sort(byIndex[T]{idx: v.idx, val: v.val})
	for k, i := range v.idx {
		v.slot[i] = k
	}
	v.unsorted = false
}

// byIndex sorts parallel idx/val slices by idx.
type byIndex[T Scalar] struct {
	idx []int
	val []T
}

func (s byIndex[T]) Len() int           { return len(s.idx) }
func (s byIndex[T]) Less(a, b int) bool { return s.idx[a] < s.idx[b] }
func (s byIndex[T]) Swap(a, b int) {
	s.idx[a], s.idx[b] = s.idx[b], s.idx[a]
	s.val[a], s.val[b] = s.val[b], s.val[a]
}
