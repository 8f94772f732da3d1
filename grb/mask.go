// SPDX-License-Identifier: MIT
// Package grb: masks and the mask resolver.
//
// A Mask is a closed variant: no mask, or an inner vector with two
// independent modifiers: structural (test presence only) and complement
// (invert the result). resolveMask normalizes every variant into one
// (source, structural, complement) triple whose passes(i) predicate is the
// single source of truth for both kernels.

package grb

import (
	"reflect"

	"github.com/RoaringBitmap/roaring/v2"
)

// Mask gates which output positions a call may touch.
// The zero value is NoMask.
type Mask struct {
	src        MaskSource
	structural bool
	complement bool
}

// NoMask disables masking: every position passes.
func NoMask() Mask { return Mask{} }

// ValueMask passes positions where v stores a non-zero value.
func ValueMask(v MaskSource) Mask { return Mask{src: v} }

// StructureMask passes positions where v stores any value.
func StructureMask(v MaskSource) Mask { return Mask{src: v, structural: true} }

// ComplementMask passes positions where v stores no value or a zero value.
func ComplementMask(v MaskSource) Mask { return Mask{src: v, complement: true} }

// StructuralComplementMask passes positions where v stores nothing.
func StructuralComplementMask(v MaskSource) Mask {
	return Mask{src: v, structural: true, complement: true}
}

// Source returns the inner vector, or nil for NoMask.
func (m Mask) Source() MaskSource { return m.src }

// Structural reports the structural modifier.
func (m Mask) Structural() bool { return m.structural }

// Complement reports the complement modifier.
func (m Mask) Complement() bool { return m.complement }

// resolvedMask is the normalized (source, structural, complement) triple.
type resolvedMask struct {
	src        MaskSource
	structural bool
	complement bool
}

// resolveMask normalizes m. A mask without a source resolves to "always
// pass" regardless of its modifiers.
func resolveMask(m Mask) resolvedMask {
	if m.src == nil {
		return resolvedMask{}
	}
	return resolvedMask{src: m.src, structural: m.structural, complement: m.complement}
}

// present reports whether masking is active.
func (r resolvedMask) present() bool { return r.src != nil }

// passes reports whether index i is selected:
// complement XOR (stored && (structural || truthy)).
func (r resolvedMask) passes(i int) bool {
	if r.src == nil {
		return true
	}
	var truthy bool
	if r.structural {
		truthy = r.src.HasElement(i)
	} else {
		truthy = r.src.IsTruthy(i)
	}

	return r.complement != truthy
}

// bitmap densifies the predicate over [0, size): the result holds exactly
// the passing indices. Only meaningful when present() is true.
// Complexity: O(nvals(src) + size/64) for the complement flip.
func (r resolvedMask) bitmap(size int) *roaring.Bitmap {
	rb := roaring.New()
	for i := range r.src.StoredIndices() {
		if i < 0 || i >= size {
			continue
		}
		if r.structural || r.src.IsTruthy(i) {
			rb.Add(uint32(i))
		}
	}
	if r.complement {
		rb.Flip(0, uint64(size))
	}

	return rb
}

// String names the variant for tracing.
func (r resolvedMask) String() string {
	switch {
	case r.src == nil:
		return "none"
	case r.structural && r.complement:
		return "structural-complement"
	case r.structural:
		return "structure"
	case r.complement:
		return "complement"
	default:
		return "value"
	}
}

// isNilSource catches typed nil pointers hidden in the MaskSource interface.
func isNilSource(src MaskSource) bool {
	rv := reflect.ValueOf(src)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
