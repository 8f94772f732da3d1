// SPDX-License-Identifier: MIT
// Package grb: merge/accumulate policy shared by every kernel.
//
// The policy is resolved once per call from (mask, accumulator, output
// control) and answers three questions:
//   - preClearAction: what to remove from w before computing;
//   - passes(j): whether destination j may be written at all;
//   - the per-index merge of a temporary value t[j] into w[j].
//
// Pre-clear table (accumulator × mask × output control):
//
//	absent  | absent  | any     | clear w entirely
//	absent  | present | REPLACE | remove w[j] failing the mask
//	absent  | present | MERGE   | nothing
//	present | absent  | any     | nothing
//	present | present | REPLACE | remove w[j] failing the mask
//	present | present | MERGE   | nothing
//
// Merge rule for a passing j: a contribution t[j] is combined with the
// accumulator (w[j] = accum(w[j], t[j]), or t[j] when w[j] is empty) or
// overwrites w[j] when there is no accumulator. Without a contribution w[j]
// is kept, except on REPLACE without accumulator, where w must end up equal
// to the masked temporary and j is removed.

package grb

// OutputControl selects what happens to output positions outside the mask.
type OutputControl uint8

const (
	// Merge leaves positions outside the mask untouched.
	Merge OutputControl = iota
	// Replace clears positions outside the mask.
	Replace
)

// String implements fmt.Stringer.
func (o OutputControl) String() string {
	if o == Replace {
		return "REPLACE"
	}
	return "MERGE"
}

// preClearAction is the step applied to w before the product is computed.
type preClearAction uint8

const (
	preClearNone    preClearAction = iota // keep w as is
	preClearAll                           // w.Clear()
	preClearFailing                       // remove entries failing the mask
)

// policy is the per-call strategy value.
type policy[T Scalar] struct {
	mask  resolvedMask
	accum BinaryOp[T] // nil: overwrite semantics
	outp  OutputControl
}

// newPolicy resolves the mask and fixes the strategy for one call.
func newPolicy[T Scalar](mask Mask, accum Accumulator[T], outp OutputControl) policy[T] {
	return policy[T]{mask: resolveMask(mask), accum: accum.Op(), outp: outp}
}

// preClearAction implements the table in the file header.
func (p policy[T]) preClearAction() preClearAction {
	switch {
	case p.accum == nil && !p.mask.present():
		return preClearAll
	case p.mask.present() && p.outp == Replace:
		return preClearFailing
	default:
		return preClearNone
	}
}

// passes reports whether destination j is selected by the mask.
func (p policy[T]) passes(j int) bool { return p.mask.passes(j) }

// replacesOutput reports whether w must equal the masked temporary after
// the call (no accumulator, and either no mask or REPLACE).
func (p policy[T]) replacesOutput() bool {
	return p.accum == nil && (!p.mask.present() || p.outp == Replace)
}

// preClear applies preClearAction to w. passes is the predicate to use for
// preClearFailing (the sparse kernel hands in its densified bitmap).
func preClear[T Scalar](w Vector[T], p policy[T], passes func(int) bool) {
	switch p.preClearAction() {
	case preClearAll:
		w.Clear()
	case preClearFailing:
		var failing []int
		for j := range w.StoredIndices() {
			if !passes(j) {
				failing = append(failing, j)
			}
		}
		for _, j := range failing {
			w.RemoveElement(j)
		}
	}
}

// mergeDenseAt merges t[j] into w[j] for one destination and returns the
// change in w's nvals. It touches only index j of w and t, so callers may
// run it concurrently for distinct j.
func (p policy[T]) mergeDenseAt(w, t *DenseVector[T], j int) int {
	if !p.passes(j) {
		if p.outp == Replace {
			return w.drop(j)
		}
		return 0
	}
	if !t.present[j] {
		if p.replacesOutput() {
			return w.drop(j)
		}
		return 0
	}
	if p.accum != nil {
		return w.mergeStore(j, t.vals[j], p.accum)
	}

	return w.store(j, t.vals[j])
}

// mergeSparse drains t (whose entries all pass the mask) into w.
// On the REPLACE/no-accumulator path t's storage is moved into w.
func (p policy[T]) mergeSparse(w, t *SparseVector[T]) {
	switch {
	case p.accum != nil:
		for k, j := range t.idx {
			_ = w.MergeSetElement(j, t.val[k], p.accum) // j < w.size by construction
		}
	case p.replacesOutput():
		w.takeFrom(t)
	default:
		for k, j := range t.idx {
			_ = w.SetElement(j, t.val[k])
		}
	}
	w.SetUnsorted()
}
