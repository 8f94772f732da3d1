// SPDX-License-Identifier: MIT
// Package grb: triplet (COO) builders for matrices and vectors.
//
// Purpose:
//   - Build a Matrix in O(nvals log nvals) from unordered (row, col, value)
//     triplets instead of nvals shifted inserts.
//   - Resolve duplicate positions with a caller-supplied combiner, or reject
//     them with ErrDuplicateIndex when dup is nil.

package grb

import (
	"fmt"
	"sort"
)

const (
	opBuildMatrix = "BuildMatrix"
	opBuildVector = "BuildVector"
)

// BuildMatrix creates an nrows×ncols matrix from parallel triplet slices.
// Duplicated (row, col) pairs are folded left-to-right in input order with
// dup; a nil dup turns duplicates into ErrDuplicateIndex.
//
// Errors:
//   - ErrInvalidDimensions for bad sizes.
//   - ErrDimensionMismatch when the three slices differ in length.
//   - ErrOutOfRange for any index outside the shape.
//   - ErrDuplicateIndex as described above.
func BuildMatrix[T Scalar](nrows, ncols int, rows, cols []int, vals []T, dup BinaryOp[T]) (*Matrix[T], error) {
	m, err := NewMatrix[T](nrows, ncols)
	if err != nil {
		return nil, grbErrorf(opBuildMatrix, err)
	}
	if len(rows) != len(cols) || len(rows) != len(vals) {
		return nil, grbErrorf(opBuildMatrix, ErrDimensionMismatch)
	}
	for k := range rows {
		if rows[k] < 0 || rows[k] >= nrows || cols[k] < 0 || cols[k] >= ncols {
			return nil, grbErrorf(opBuildMatrix, fmt.Errorf("triplet %d (%d,%d): %w", k, rows[k], cols[k], ErrOutOfRange))
		}
	}

	// Stable sort of a permutation keeps input order among duplicates.
	perm := make([]int, len(rows))
	for k := range perm {
		perm[k] = k
	}
	sort.SliceStable(perm, func(a, b int) bool {
		pa, pb := perm[a], perm[b]
		if rows[pa] != rows[pb] {
			return rows[pa] < rows[pb]
		}
		return cols[pa] < cols[pb]
	})

	for _, k := range perm {
		r := &m.rows[rows[k]]
		if n := len(r.cols); n > 0 && r.cols[n-1] == cols[k] {
			if dup == nil {
				return nil, grbErrorf(opBuildMatrix, fmt.Errorf("(%d,%d): %w", rows[k], cols[k], ErrDuplicateIndex))
			}
			r.wgts[n-1] = dup(r.wgts[n-1], vals[k])
			continue
		}
		r.cols = append(r.cols, cols[k])
		r.wgts = append(r.wgts, vals[k])
		m.nvals++
	}

	return m, nil
}

// BuildSparseVector creates a sparse vector of size n from (index, value)
// pairs; duplicates follow the BuildMatrix rules.
func BuildSparseVector[T Scalar](n int, indices []int, vals []T, dup BinaryOp[T]) (*SparseVector[T], error) {
	v, err := NewSparseVector[T](n)
	if err != nil {
		return nil, grbErrorf(opBuildVector, err)
	}
	if err = fillVector[T](v, indices, vals, dup); err != nil {
		return nil, err
	}

	return v, nil
}

// BuildDenseVector creates a dense vector of size n from (index, value)
// pairs; duplicates follow the BuildMatrix rules.
func BuildDenseVector[T Scalar](n int, indices []int, vals []T, dup BinaryOp[T]) (*DenseVector[T], error) {
	v, err := NewDenseVector[T](n)
	if err != nil {
		return nil, grbErrorf(opBuildVector, err)
	}
	if err = fillVector[T](v, indices, vals, dup); err != nil {
		return nil, err
	}

	return v, nil
}

// fillVector writes pairs into an empty vector.
func fillVector[T Scalar](v Vector[T], indices []int, vals []T, dup BinaryOp[T]) error {
	if len(indices) != len(vals) {
		return grbErrorf(opBuildVector, ErrDimensionMismatch)
	}
	for k, i := range indices {
		if i < 0 || i >= v.Size() {
			return grbErrorf(opBuildVector, fmt.Errorf("pair %d (%d): %w", k, i, ErrOutOfRange))
		}
		if v.HasElement(i) {
			if dup == nil {
				return grbErrorf(opBuildVector, fmt.Errorf("(%d): %w", i, ErrDuplicateIndex))
			}
			_ = v.MergeSetElement(i, vals[k], dup) // index validated above
			continue
		}
		_ = v.SetElement(i, vals[k])
	}

	return nil
}
