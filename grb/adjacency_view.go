// SPDX-License-Identifier: MIT
// Package grb: AdjacencyView, a lazy, forward-only (row, col, value) stream
// over a Matrix.
//
// Implementation:
//   - A cursor is (row, pos): a row index plus a position inside that row.
//   - Advancing increments pos, then skips forward over exhausted rows with
//     an explicit loop; the loop never moves past the last row.
//   - The end position is (lastRow, len(lastRow)). A non-empty last row is
//     traversed like any other row before the cursor reaches the end.
//
// Behavior highlights:
//   - Row-major, then ascending column order; empty rows are omitted.
//   - No allocation per step; values are exposed by reference.
//   - Single pass: to traverse again, take a fresh Begin() from the view.

package grb

import "iter"

// AdjacencyView flattens a Matrix into one ordered entry sequence.
type AdjacencyView[T Scalar] struct {
	m *Matrix[T]
}

// AdjacencyList returns the lazy adjacency view of m.
func (m *Matrix[T]) AdjacencyList() AdjacencyView[T] { return AdjacencyView[T]{m: m} }

// AdjacencyCursor is a position inside an AdjacencyView.
type AdjacencyCursor[T Scalar] struct {
	m   *Matrix[T]
	row int
	pos int
}

// Begin returns the first position (equal to End for an empty matrix).
func (v AdjacencyView[T]) Begin() AdjacencyCursor[T] {
	c := AdjacencyCursor[T]{m: v.m}
	c.skipExhausted()

	return c
}

// End returns the canonical end position (lastRow, len(lastRow)). A matrix
// without rows (the zero Matrix) ends at (0, 0), which is also its Begin.
func (v AdjacencyView[T]) End() AdjacencyCursor[T] {
	if v.m.nrows == 0 {
		return AdjacencyCursor[T]{m: v.m}
	}
	last := v.m.nrows - 1
	return AdjacencyCursor[T]{m: v.m, row: last, pos: len(v.m.rows[last].cols)}
}

// All adapts the cursor walk into a range-over-func sequence of
// (index, *value) pairs. Each call starts a fresh traversal.
func (v AdjacencyView[T]) All() iter.Seq2[MatrixIndex, *T] {
	return func(yield func(MatrixIndex, *T) bool) {
		end := v.End()
		for c := v.Begin(); !c.Equal(end); c.Next() {
			if !yield(c.Entry()) {
				return
			}
		}
	}
}

// Next advances to the following entry. Calling Next at End is a no-op.
func (c *AdjacencyCursor[T]) Next() {
	if c.m.nrows == 0 {
		return
	}
	if c.pos < len(c.m.rows[c.row].cols) {
		c.pos++
	}
	c.skipExhausted()
}

// Equal reports whether both cursors address the same position.
func (c AdjacencyCursor[T]) Equal(o AdjacencyCursor[T]) bool {
	return c.row == o.row && c.pos == o.pos
}

// Entry returns ((row, col), &value) at the cursor. It must not be called
// at End.
func (c AdjacencyCursor[T]) Entry() (MatrixIndex, *T) {
	r := &c.m.rows[c.row]
	return MatrixIndex{Row: c.row, Col: r.cols[c.pos]}, &r.wgts[c.pos]
}

// Row returns the row index at the cursor.
func (c AdjacencyCursor[T]) Row() int { return c.row }

// Col returns the column at the cursor; it must not be called at End.
func (c AdjacencyCursor[T]) Col() int { return c.m.rows[c.row].cols[c.pos] }

// skipExhausted moves past rows whose entries are used up, stopping at the
// last row.
func (c *AdjacencyCursor[T]) skipExhausted() {
	last := c.m.nrows - 1
	if last < 0 {
		return
	}
	for c.pos == len(c.m.rows[c.row].cols) && c.row < last {
		c.row++
		c.pos = 0
	}
}
