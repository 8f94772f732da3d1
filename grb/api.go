// SPDX-License-Identifier: MIT
// Package grb: public API: VxM / MxV and typed facades.
//
// Purpose:
//   - Validate once at call entry (nil operands, options, semiring, mask size,
//     shapes) so a rejected call never mutates w.
//   - Pick the kernel from the concrete type of w and the orientation of A:
//     dense w → parallel dense kernels, sparse w → serial sparse kernels;
//     u·A / Aᵗ·u → axpy, u·Aᵗ / A·u → row dot products.
//   - Detach operands that alias w (u, mask source) before pre-clear.
//
// Determinism & Policy:
//   - Dense and sparse outputs produce the same entries for the same inputs.
//   - Mult operand order is fixed per entry point: VxM calls Mult(u, A),
//     MxV calls Mult(A, u), with or without a transpose marker.

package grb

// VxM computes w<mask, accum> := u ⊕.⊗ A, or u ⊕.⊗ Aᵗ when a is Transpose(A).
//
// Inputs:
//   - w: output (*DenseVector or *SparseVector), mutated in place.
//   - mask: NoMask() or a mask over a vector of size w.Size().
//   - accum: NoAccumulate() to overwrite, or Accum(op) to combine op(old, new).
//   - op: semiring; t[j] = ⊕_i Mult(u[i], A[i][j]).
//   - u: input vector of either kind; converted (copied) to w's kind if needed.
//   - a: *Matrix or TransposeView.
//   - outp: Merge or Replace.
//
// Only w is written. u, a and the mask source are read-only for the whole
// call (a sparse u is never reordered), so they may be shared by concurrent
// calls writing distinct outputs.
//
// Errors:
//   - ErrNilVector, ErrNilMatrix, ErrUnsupportedVector, ErrNilSemiring,
//     ErrOptionViolation, ErrDimensionMismatch, all before any mutation.
//
// Complexity:
//   - Dense w: O(size(w) + Σ_{i∈u} rowLen(i)) work, parallel over rows and
//     destinations; O(workers·size(w)) extra memory on the parallel path.
//   - Sparse w: O(nvals(mask) + Σ_{i∈u} rowLen(i) + nvals(w)), serial.
//   - Transposed: one dot product per non-empty row of A.
func VxM[T Scalar](w Vector[T], mask Mask, accum Accumulator[T], op Semiring[T], u Vector[T], a Operand[T], outp OutputControl, opts ...Option) error {
	o := gatherOptions(opts...)
	if o.err != nil {
		return grbErrorf(opVxM, o.err)
	}
	m, transposed, err := validateProduct(w, mask, op, u, a)
	if err != nil {
		return grbErrorf(opVxM, err)
	}

	// u·A: u spans A's rows, w spans A's columns; u·Aᵗ swaps them.
	inDim, outDim := m.Rows(), m.Cols()
	if transposed {
		inDim, outDim = outDim, inDim
	}
	if err = validateShapes(w.Size(), u.Size(), inDim, outDim); err != nil {
		return grbErrorf(opVxM, err)
	}

	if transposed {
		return product(w, mask, accum, op, u, m, outp, kernelDot, op.Mult, "w<M,z> := u +.* A'", o)
	}
	return product(w, mask, accum, op, u, m, outp, kernelAxpy, op.Mult, "w<M,z> := u +.* A", o)
}

// MxV computes w<mask, accum> := A ⊕.⊗ u, or Aᵗ ⊕.⊗ u when a is Transpose(A).
// t[i] = ⊕_j Mult(A[i][j], u[j]). Inputs, errors, policy and read-only
// operands as for VxM.
func MxV[T Scalar](w Vector[T], mask Mask, accum Accumulator[T], op Semiring[T], a Operand[T], u Vector[T], outp OutputControl, opts ...Option) error {
	o := gatherOptions(opts...)
	if o.err != nil {
		return grbErrorf(opMxV, o.err)
	}
	m, transposed, err := validateProduct(w, mask, op, u, a)
	if err != nil {
		return grbErrorf(opMxV, err)
	}

	// A·u: u spans A's columns, w spans A's rows; Aᵗ·u swaps them.
	inDim, outDim := m.Cols(), m.Rows()
	if transposed {
		inDim, outDim = outDim, inDim
	}
	if err = validateShapes(w.Size(), u.Size(), inDim, outDim); err != nil {
		return grbErrorf(opMxV, err)
	}

	mult := op.Mult
	matLeft := func(vec, mat T) T { return mult(mat, vec) }
	if transposed {
		return product(w, mask, accum, op, u, m, outp, kernelAxpy, matLeft, "w<M,z> := A' +.* u", o)
	}
	return product(w, mask, accum, op, u, m, outp, kernelDot, matLeft, "w<M,z> := A +.* u", o)
}

// VxMDense is VxM with dense operands, for call sites that want the
// concrete types checked at compile time.
func VxMDense[T Scalar](w *DenseVector[T], mask Mask, accum Accumulator[T], op Semiring[T], u *DenseVector[T], a Operand[T], outp OutputControl, opts ...Option) error {
	return VxM[T](w, mask, accum, op, u, a, outp, opts...)
}

// VxMSparse is VxM with sparse operands.
func VxMSparse[T Scalar](w *SparseVector[T], mask Mask, accum Accumulator[T], op Semiring[T], u *SparseVector[T], a Operand[T], outp OutputControl, opts ...Option) error {
	return VxM[T](w, mask, accum, op, u, a, outp, opts...)
}

// MxVDense is MxV with dense operands.
func MxVDense[T Scalar](w *DenseVector[T], mask Mask, accum Accumulator[T], op Semiring[T], a Operand[T], u *DenseVector[T], outp OutputControl, opts ...Option) error {
	return MxV[T](w, mask, accum, op, a, u, outp, opts...)
}

// MxVSparse is MxV with sparse operands.
func MxVSparse[T Scalar](w *SparseVector[T], mask Mask, accum Accumulator[T], op Semiring[T], a Operand[T], u *SparseVector[T], outp OutputControl, opts ...Option) error {
	return MxV[T](w, mask, accum, op, a, u, outp, opts...)
}

// ---------- dispatch ----------

// kernelKind selects the traversal: axpy walks rows of A selected by u,
// dot evaluates one row of A per destination.
type kernelKind uint8

const (
	kernelAxpy kernelKind = iota
	kernelDot
)

// product dispatches on w's concrete type. All arguments are validated.
func product[T Scalar](w Vector[T], mask Mask, accum Accumulator[T], op Semiring[T], u Vector[T], m *Matrix[T], outp OutputControl, kind kernelKind, mul func(vec, mat T) T, signature string, o Options) error {
	mask = detachMask(mask, w)
	p := newPolicy(mask, accum, outp)

	switch wv := w.(type) {
	case *DenseVector[T]:
		ud := denseOperand(u, w)
		if kind == kernelAxpy {
			logCall(o.logger, signature, "dense-axpy", wv.Size(), ud.NVals(), m.NVals(), p.mask, accum.Present(), outp)
			vxmDense(wv, p, op, ud, m, mul, o)
		} else {
			logCall(o.logger, signature, "dense-dot", wv.Size(), ud.NVals(), m.NVals(), p.mask, accum.Present(), outp)
			dotDense(wv, p, op, ud, m, mul, o)
		}
	case *SparseVector[T]:
		us := sparseOperand(u, w)
		if kind == kernelAxpy {
			logCall(o.logger, signature, "sparse-axpy", wv.Size(), us.NVals(), m.NVals(), p.mask, accum.Present(), outp)
			vxmSparse(wv, p, op, us, m, mul)
		} else {
			logCall(o.logger, signature, "sparse-dot", wv.Size(), us.NVals(), m.NVals(), p.mask, accum.Present(), outp)
			dotSparse(wv, p, op, us, m, mul)
		}
	default:
		return ErrUnsupportedVector // unreachable after ValidateVector
	}

	return nil
}

// denseOperand returns u as a DenseVector that does not share storage with w.
func denseOperand[T Scalar](u, w Vector[T]) *DenseVector[T] {
	switch x := u.(type) {
	case *DenseVector[T]:
		if any(x) == any(w) {
			return x.Clone()
		}
		return x
	case *SparseVector[T]:
		return x.ToDense()
	}
	return nil
}

// sparseOperand returns u as a SparseVector that does not share storage with w.
func sparseOperand[T Scalar](u, w Vector[T]) *SparseVector[T] {
	switch x := u.(type) {
	case *SparseVector[T]:
		if any(x) == any(w) {
			return x.Clone()
		}
		return x
	case *DenseVector[T]:
		return x.ToSparse()
	}
	return nil
}

// detachMask snapshots the mask source when it is w itself, so pre-clear and
// merge keep reading the caller's original mask.
func detachMask[T Scalar](mask Mask, w Vector[T]) Mask {
	if mask.src == nil || any(mask.src) != any(w) {
		return mask
	}
	switch x := w.(type) {
	case *DenseVector[T]:
		mask.src = x.Clone()
	case *SparseVector[T]:
		mask.src = x.Clone()
	}

	return mask
}
