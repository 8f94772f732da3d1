// SPDX-License-Identifier: MIT
// Package grb: Matrix, a sorted-row (list-of-lists) sparse storage.
//
// Purpose:
//   - Hold each row as parallel, ascending, index-unique column and weight
//     slices so kernels can walk a row with two plain slice loops.
//   - Expose row emptiness and global nvals in O(1).
//
// Determinism & Policy:
//   - Rows never contain explicit "zero" placeholders; an absent column is
//     simply not stored.
//   - Kernels treat a Matrix as immutable for the duration of a call.

package grb

import (
	"fmt"
	"iter"
	"sort"
	"strings"
)

// matrixErrorf wraps an underlying error with Matrix method context.
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// matrixRow is one row: cols ascending and unique, wgts aligned with cols.
type matrixRow[T Scalar] struct {
	cols []int
	wgts []T
}

// Matrix is an nrows×ncols sparse matrix stored row by row.
type Matrix[T Scalar] struct {
	nrows, ncols int
	rows         []matrixRow[T]
	nvals        int
}

// MatrixIndex addresses one stored matrix entry.
type MatrixIndex struct {
	Row, Col int
}

// NewMatrix creates an empty nrows×ncols matrix.
// Complexity: O(nrows) for the row headers.
func NewMatrix[T Scalar](nrows, ncols int) (*Matrix[T], error) {
	if err := ValidateSize(nrows); err != nil {
		return nil, fmt.Errorf("NewMatrix rows: %w", err)
	}
	if err := ValidateSize(ncols); err != nil {
		return nil, fmt.Errorf("NewMatrix cols: %w", err)
	}

	return &Matrix[T]{nrows: nrows, ncols: ncols, rows: make([]matrixRow[T], nrows)}, nil
}

// Rows returns the number of rows.
func (m *Matrix[T]) Rows() int { return m.nrows }

// Cols returns the number of columns (the column domain size).
func (m *Matrix[T]) Cols() int { return m.ncols }

// NVals returns the number of stored entries.
func (m *Matrix[T]) NVals() int { return m.nvals }

// RowEmpty reports whether row i stores no entries (true when out of range).
func (m *Matrix[T]) RowEmpty(i int) bool {
	return i < 0 || i >= m.nrows || len(m.rows[i].cols) == 0
}

// RowLen returns the number of stored entries in row i.
func (m *Matrix[T]) RowLen(i int) int {
	if i < 0 || i >= m.nrows {
		return 0
	}
	return len(m.rows[i].cols)
}

// Row yields the (column, weight) pairs of row i in ascending column order.
func (m *Matrix[T]) Row(i int) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if i < 0 || i >= m.nrows {
			return
		}
		r := m.rows[i]
		for k, j := range r.cols {
			if !yield(j, r.wgts[k]) {
				return
			}
		}
	}
}

// ExtractElement returns A[i][j] and whether it is stored.
// Complexity: O(log rowLen).
func (m *Matrix[T]) ExtractElement(i, j int) (T, bool) {
	var zero T
	if i < 0 || i >= m.nrows {
		return zero, false
	}
	r := m.rows[i]
	k := sort.SearchInts(r.cols, j)
	if k < len(r.cols) && r.cols[k] == j {
		return r.wgts[k], true
	}

	return zero, false
}

// SetElement stores v at (i, j), keeping the row sorted.
// Complexity: O(rowLen) for the shifted insert.
func (m *Matrix[T]) SetElement(i, j int, v T) error {
	if i < 0 || i >= m.nrows || j < 0 || j >= m.ncols {
		return matrixErrorf("SetElement", i, j, ErrOutOfRange)
	}
	r := &m.rows[i]
	k := sort.SearchInts(r.cols, j)
	if k < len(r.cols) && r.cols[k] == j {
		r.wgts[k] = v
		return nil
	}
	r.cols = append(r.cols, 0)
	r.wgts = append(r.wgts, v)
	copy(r.cols[k+1:], r.cols[k:])
	copy(r.wgts[k+1:], r.wgts[k:])
	r.cols[k], r.wgts[k] = j, v
	m.nvals++

	return nil
}

// RemoveElement deletes (i, j) and reports whether it was stored.
func (m *Matrix[T]) RemoveElement(i, j int) bool {
	if i < 0 || i >= m.nrows {
		return false
	}
	r := &m.rows[i]
	k := sort.SearchInts(r.cols, j)
	if k == len(r.cols) || r.cols[k] != j {
		return false
	}
	r.cols = append(r.cols[:k], r.cols[k+1:]...)
	r.wgts = append(r.wgts[:k], r.wgts[k+1:]...)
	m.nvals--

	return true
}

// Transposed materializes Aᵗ as a new Matrix.
// Complexity: O(nrows + ncols + nvals).
func (m *Matrix[T]) Transposed() *Matrix[T] {
	t := &Matrix[T]{nrows: m.ncols, ncols: m.nrows, rows: make([]matrixRow[T], m.ncols), nvals: m.nvals}
	counts := make([]int, m.ncols)
	for i := range m.rows {
		for _, j := range m.rows[i].cols {
			counts[j]++
		}
	}
	for j, c := range counts {
		if c > 0 {
			t.rows[j] = matrixRow[T]{cols: make([]int, 0, c), wgts: make([]T, 0, c)}
		}
	}
	// Row-major scan appends rows in ascending order, so every target row
	// comes out sorted.
	for i := range m.rows {
		r := m.rows[i]
		for k, j := range r.cols {
			t.rows[j].cols = append(t.rows[j].cols, i)
			t.rows[j].wgts = append(t.rows[j].wgts, r.wgts[k])
		}
	}

	return t
}

// Clone returns a deep copy.
func (m *Matrix[T]) Clone() *Matrix[T] {
	c := &Matrix[T]{nrows: m.nrows, ncols: m.ncols, rows: make([]matrixRow[T], m.nrows), nvals: m.nvals}
	for i, r := range m.rows {
		if len(r.cols) == 0 {
			continue
		}
		c.rows[i] = matrixRow[T]{cols: append([]int(nil), r.cols...), wgts: append([]T(nil), r.wgts...)}
	}

	return c
}

// String renders one line per non-empty row: "i: j:v j:v".
func (m *Matrix[T]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Matrix %dx%d nvals=%d\n", m.nrows, m.ncols, m.nvals)
	for i, r := range m.rows {
		if len(r.cols) == 0 {
			continue
		}
		fmt.Fprintf(&b, "%d:", i)
		for k, j := range r.cols {
			fmt.Fprintf(&b, " %d:%v", j, r.wgts[k])
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// row returns row i's slices without copying (kernels only).
func (m *Matrix[T]) row(i int) ([]int, []T) {
	r := m.rows[i]
	return r.cols, r.wgts
}

// ---------- Operand: plain matrix or transpose marker ----------

// Operand is a matrix argument of VxM / MxV: either a *Matrix or the
// TransposeView returned by Transpose.
type Operand[T Scalar] interface {
	// operand returns the underlying matrix and whether it is transposed.
	operand() (*Matrix[T], bool)
}

func (m *Matrix[T]) operand() (*Matrix[T], bool) { return m, false }

// TransposeView marks a matrix to be used as Aᵗ without materializing it.
type TransposeView[T Scalar] struct {
	m *Matrix[T]
}

// Transpose returns the transpose marker for m.
func Transpose[T Scalar](m *Matrix[T]) TransposeView[T] { return TransposeView[T]{m: m} }

// Matrix returns the wrapped (untransposed) matrix.
func (t TransposeView[T]) Matrix() *Matrix[T] { return t.m }

func (t TransposeView[T]) operand() (*Matrix[T], bool) { return t.m, true }
