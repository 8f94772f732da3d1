// SPDX-License-Identifier: MIT
// Package: grb
//
// Purpose:
//  - Provide a single, canonical source of truth for argument checks.
//  - Keep kernels minimal: every check runs once at call entry, before any
//    mutation of the output.
//  - Return plain sentinel errors (wrapped with the validator tag) so call
//    sites can wrap uniformly with grbErrorf.
//
// Note:
//  - Composite validators follow a fixed sequence:
//    NotNil(w,u,A) → Semiring → Mask → Shapes.

package grb

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping.
const (
	opVxM = "VxM"
	opMxV = "MxV"
)

// grbErrorf wraps err with an operation tag, preserving it for errors.Is.
// Use only when err != nil.
func grbErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validatorErrorf labels sentinel violations with the validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateSize ensures n is a usable vector size or matrix dimension.
func ValidateSize(n int) error {
	if n <= 0 || uint64(n) > math.MaxUint32 {
		return validatorErrorf("ValidateSize", ErrInvalidDimensions)
	}

	return nil
}

// ValidateSemiring ensures both operators are set.
func ValidateSemiring[T Scalar](op Semiring[T]) error {
	if op.Add.Op == nil || op.Mult == nil {
		return validatorErrorf("ValidateSemiring", ErrNilSemiring)
	}

	return nil
}

// ValidateVector ensures v is a non-nil vector of a kind the kernels can use.
func ValidateVector[T Scalar](v Vector[T]) error {
	switch x := v.(type) {
	case nil:
		return validatorErrorf("ValidateVector", ErrNilVector)
	case *DenseVector[T]:
		if x == nil {
			return validatorErrorf("ValidateVector", ErrNilVector)
		}
	case *SparseVector[T]:
		if x == nil {
			return validatorErrorf("ValidateVector", ErrNilVector)
		}
	default:
		return validatorErrorf("ValidateVector", fmt.Errorf("%T: %w", v, ErrUnsupportedVector))
	}

	return nil
}

// ValidateMask ensures the mask, when present, matches the output size.
func ValidateMask(m Mask, size int) error {
	if m.src == nil {
		return nil
	}
	if isNilSource(m.src) {
		return validatorErrorf("ValidateMask", ErrNilVector)
	}
	if m.src.Size() != size {
		return validatorErrorf("ValidateMask", ErrDimensionMismatch)
	}

	return nil
}

// validateProduct is the composite entry check shared by VxM and MxV. It
// returns the underlying matrix and whether it was passed as a transpose;
// shapes are checked afterwards by the caller, which knows the orientation.
func validateProduct[T Scalar](w Vector[T], mask Mask, op Semiring[T], u Vector[T], a Operand[T]) (*Matrix[T], bool, error) {
	if err := ValidateVector(w); err != nil {
		return nil, false, fmt.Errorf("w: %w", err)
	}
	if err := ValidateVector(u); err != nil {
		return nil, false, fmt.Errorf("u: %w", err)
	}
	if a == nil {
		return nil, false, validatorErrorf("ValidateMatrix", ErrNilMatrix)
	}
	m, transposed := a.operand()
	if m == nil {
		return nil, false, validatorErrorf("ValidateMatrix", ErrNilMatrix)
	}
	if err := ValidateSemiring(op); err != nil {
		return nil, false, err
	}
	if err := ValidateMask(mask, w.Size()); err != nil {
		return nil, false, err
	}

	return m, transposed, nil
}

// validateShapes checks u·op(A) → w, where op(A) has inDim rows and outDim
// columns.
func validateShapes(wSize, uSize, inDim, outDim int) error {
	if uSize != inDim {
		return validatorErrorf("ValidateShapes: u", ErrDimensionMismatch)
	}
	if wSize != outDim {
		return validatorErrorf("ValidateShapes: w", ErrDimensionMismatch)
	}

	return nil
}
