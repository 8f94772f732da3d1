// SPDX-License-Identifier: MIT
// Package grb: row-wise dot-product kernel, t[i] = ⊕_j A[i][j] ⊗ u[j].
//
// It serves MxV (A·u) and the transposed VxM (u·Aᵗ), which differ only in
// the operand order handed to the semiring's Mult. A destination i gets an
// entry only when row i shares at least one index with u; rows failing the
// mask are never evaluated.
//
// Concurrency:
//   - Dense output: row blocks run on an errgroup; every row owns its slot
//     of the temporary, so blocks never collide.
//   - Sparse output: serial, appending in ascending row order.

package grb

import (
	"golang.org/x/sync/errgroup"
)

// dotDense runs the dense-output dot kernel. Arguments are validated.
func dotDense[T Scalar](w *DenseVector[T], p policy[T], op Semiring[T], u *DenseVector[T], a *Matrix[T], mul func(vec, mat T) T, o Options) {
	n := w.Size()
	preClear[T](w, p, p.passes)

	t := &DenseVector[T]{vals: make([]T, n), present: make([]bool, n)}
	if a.NVals() > 0 && u.NVals() > 0 {
		blocks := o.workersFor(n, a.NVals()+n)
		deltas := make([]int, blocks)
		g := new(errgroup.Group)
		g.SetLimit(o.maxWorkers)
		for b := 0; b < blocks; b++ {
			lo, hi := blockRange(n, blocks, b)
			g.Go(func() error {
				for i := lo; i < hi; i++ {
					if a.RowEmpty(i) || !p.passes(i) {
						continue
					}
					if v, ok := dotRow(u.ExtractElement, a, i, op.Add.Op, mul); ok {
						deltas[b] += t.store(i, v)
					}
				}
				return nil
			})
		}
		_ = g.Wait() // workers never fail
		for _, d := range deltas {
			t.nvals += d
		}
	}
	mergeDense(w, t, p, o)
}

// dotSparse runs the sparse-output dot kernel. Arguments are validated.
func dotSparse[T Scalar](w *SparseVector[T], p policy[T], op Semiring[T], u *SparseVector[T], a *Matrix[T], mul func(vec, mat T) T) {
	passes := sparsePasses(p, w.Size())
	preClear[T](w, p, passes)

	t := newSparseVector[T](w.Size(), 0)
	if a.NVals() > 0 && u.NVals() > 0 {
		for i := 0; i < a.Rows(); i++ {
			if a.RowEmpty(i) || !passes(i) {
				continue
			}
			if v, ok := dotRow(u.ExtractElement, a, i, op.Add.Op, mul); ok {
				t.appendSorted(i, v)
			}
		}
	}
	p.mergeSparse(w, t)
}

// dotRow folds row i of A against u in ascending column order and reports
// whether any product was formed.
func dotRow[T Scalar](get func(int) (T, bool), a *Matrix[T], i int, add BinaryOp[T], mul func(vec, mat T) T) (T, bool) {
	var acc T
	found := false
	cols, wgts := a.row(i)
	for k, j := range cols {
		uj, ok := get(j)
		if !ok {
			continue
		}
		prod := mul(uj, wgts[k])
		if found {
			acc = add(acc, prod)
		} else {
			acc, found = prod, true
		}
	}

	return acc, found
}
