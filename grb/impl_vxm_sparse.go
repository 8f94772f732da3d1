// SPDX-License-Identifier: MIT
// Package grb: sparse-output axpy kernel, w<m,accum> := u·A with w and u sparse.
//
// Implementation:
//   - Stage 1 (Mask): densify the resolved mask into a roaring bitmap holding
//     exactly the passing indices, so each probe is a bitmap lookup.
//   - Stage 2 (Pre-clear): apply the policy's pre-clear action to w.
//   - Stage 3 (Accumulate): for each stored (i, u_i) and each (j, a) in row i
//     with j passing, MergeSet mult(u_i, a) into a sparse temporary with the
//     semiring add.
//   - Stage 4 (Merge): drain or move the temporary into w (policy.mergeSparse).
//
// The kernel is single-threaded; the temporary is owned by the call and u
// is never reordered.

package grb

// vxmSparse runs the sparse-output kernel. Arguments are validated.
func vxmSparse[T Scalar](w *SparseVector[T], p policy[T], op Semiring[T], u *SparseVector[T], a *Matrix[T], mul func(vec, mat T) T) {
	passes := sparsePasses(p, w.Size())
	preClear[T](w, p, passes)

	t := newSparseVector[T](w.Size(), 0)
	if a.NVals() > 0 && u.NVals() > 0 {
		add := op.Add.Op
		// Rows are folded in ascending order, as in the dense kernel; u is
		// only read.
		for _, k := range u.ascending() {
			i := u.idx[k]
			if a.RowEmpty(i) {
				continue
			}
			ui := u.val[k]
			cols, wgts := a.row(i)
			for c, j := range cols {
				if !passes(j) {
					continue
				}
				_ = t.MergeSetElement(j, mul(ui, wgts[c]), add) // j < ncols == size
			}
		}
	}
	p.mergeSparse(w, t)
}

// sparsePasses returns the mask predicate backed by a densified bitmap, or
// an always-true predicate when no mask is present.
func sparsePasses[T Scalar](p policy[T], size int) func(int) bool {
	if !p.mask.present() {
		return func(int) bool { return true }
	}
	rb := p.mask.bitmap(size)

	return func(j int) bool { return rb.Contains(uint32(j)) }
}
