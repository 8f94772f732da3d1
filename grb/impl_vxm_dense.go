// SPDX-License-Identifier: MIT
// Package grb: dense-output axpy kernel, w<m,accum> := u·A with w and u dense.
//
// Implementation:
//   - Stage 1 (Pre-clear): apply the policy's pre-clear action to w.
//   - Stage 2 (Accumulate): when A and u are non-empty, fold
//     mult(u[i], A[i][j]) into a dense temporary t[j] with the semiring add,
//     skipping destinations that fail the mask (they are never written).
//   - Stage 3 (Merge): walk every destination j of w and apply the policy.
//
// Concurrency:
//   - Stage 2 is partition-then-reduce: row blocks are accumulated into
//     private partial temporaries by an errgroup, then reduced per
//     destination block in block order. No two goroutines ever write the
//     same slot, so no locks or atomics are involved.
//   - Stage 3 splits destinations into blocks; each block only reads t and
//     the mask and writes its own slots of w, returning an nvals delta.
//   - For an associative add the result equals the serial one; for floats
//     the grouping of partial sums may differ in the last bits.

package grb

import (
	"golang.org/x/sync/errgroup"
)

// vxmDense runs the dense-output kernel. Arguments are validated.
func vxmDense[T Scalar](w *DenseVector[T], p policy[T], op Semiring[T], u *DenseVector[T], a *Matrix[T], mul func(vec, mat T) T, o Options) {
	n := w.Size()
	preClear[T](w, p, p.passes)

	t := &DenseVector[T]{vals: make([]T, n), present: make([]bool, n)}
	if a.NVals() > 0 && u.NVals() > 0 {
		axpyDense(t, u, a, op.Add.Op, mul, p, o)
	}
	mergeDense(w, t, p, o)
}

// axpyDense accumulates u·A into t.
func axpyDense[T Scalar](t, u *DenseVector[T], a *Matrix[T], add BinaryOp[T], mul func(vec, mat T) T, p policy[T], o Options) {
	nrows := a.Rows()
	blocks := o.workersFor(nrows, a.NVals()+t.Size())
	if blocks == 1 {
		t.nvals += axpyRows(t, u, a, 0, nrows, add, mul, p)
		return
	}

	// Partition: one private partial per row block.
	partials := make([]*DenseVector[T], blocks)
	g := new(errgroup.Group)
	g.SetLimit(o.maxWorkers)
	for b := 0; b < blocks; b++ {
		lo, hi := blockRange(nrows, blocks, b)
		g.Go(func() error {
			part := &DenseVector[T]{vals: make([]T, t.Size()), present: make([]bool, t.Size())}
			part.nvals = axpyRows(part, u, a, lo, hi, add, mul, p)
			partials[b] = part
			return nil
		})
	}
	_ = g.Wait() // workers never fail

	// Reduce: destination blocks fold partials in block order.
	n := t.Size()
	deltas := make([]int, blocks)
	rg := new(errgroup.Group)
	rg.SetLimit(o.maxWorkers)
	for b := 0; b < blocks; b++ {
		lo, hi := blockRange(n, blocks, b)
		rg.Go(func() error {
			for _, part := range partials {
				if part.nvals == 0 {
					continue
				}
				for j := lo; j < hi; j++ {
					if part.present[j] {
						deltas[b] += t.mergeStore(j, part.vals[j], add)
					}
				}
			}
			return nil
		})
	}
	_ = rg.Wait()
	for _, d := range deltas {
		t.nvals += d
	}
}

// axpyRows folds rows [lo, hi) of u·A into buf and returns buf's nvals delta.
func axpyRows[T Scalar](buf, u *DenseVector[T], a *Matrix[T], lo, hi int, add BinaryOp[T], mul func(vec, mat T) T, p policy[T]) int {
	masked := p.mask.present()
	delta := 0
	for i := lo; i < hi; i++ {
		if !u.present[i] || a.RowEmpty(i) {
			continue
		}
		ui := u.vals[i]
		cols, wgts := a.row(i)
		for k, j := range cols {
			if masked && !p.passes(j) {
				continue
			}
			delta += buf.mergeStore(j, mul(ui, wgts[k]), add)
		}
	}

	return delta
}

// mergeDense merges t into w over every destination index.
func mergeDense[T Scalar](w, t *DenseVector[T], p policy[T], o Options) {
	n := w.Size()
	blocks := o.workersFor(n, n+t.nvals)
	if blocks == 1 {
		for j := 0; j < n; j++ {
			w.nvals += p.mergeDenseAt(w, t, j)
		}
		return
	}

	deltas := make([]int, blocks)
	g := new(errgroup.Group)
	g.SetLimit(o.maxWorkers)
	for b := 0; b < blocks; b++ {
		lo, hi := blockRange(n, blocks, b)
		g.Go(func() error {
			for j := lo; j < hi; j++ {
				deltas[b] += p.mergeDenseAt(w, t, j)
			}
			return nil
		})
	}
	_ = g.Wait()
	for _, d := range deltas {
		w.nvals += d
	}
}

// blockRange returns the half-open range of block b when n items are split
// into `blocks` nearly equal contiguous blocks.
func blockRange(n, blocks, b int) (int, int) {
	return b * n / blocks, (b + 1) * n / blocks
}
