// SPDX-License-Identifier: MIT
// Package grb: sentinel error set.
// All kernels return these sentinels (possibly wrapped with an operation
// tag); tests match them via errors.Is. No kernel panics on user-triggered
// error conditions.

package grb

import "errors"

// ERROR PRIORITY (enforced in validators, checked in tests):
// nil operands -> options -> dimension mismatch -> index range.
// A call rejected at any of these stages leaves the output untouched.

var (
	// ErrInvalidDimensions indicates that a requested size is non-positive
	// or exceeds the 32-bit index domain.
	ErrInvalidDimensions = errors.New("grb: dimensions must be in (0, MaxUint32]")

	// ErrOutOfRange indicates that an index is outside valid bounds.
	ErrOutOfRange = errors.New("grb: index out of range")

	// ErrDimensionMismatch indicates incompatible sizes between w, mask, u and A.
	ErrDimensionMismatch = errors.New("grb: dimension mismatch")

	// ErrNilVector indicates that a nil vector was passed as w, u or mask source.
	ErrNilVector = errors.New("grb: nil vector")

	// ErrNilMatrix indicates that a nil matrix operand was used.
	ErrNilMatrix = errors.New("grb: nil matrix")

	// ErrNilSemiring indicates a semiring without add or mult operator.
	ErrNilSemiring = errors.New("grb: semiring operators must be non-nil")

	// ErrDuplicateIndex is returned by builders when the same position
	// occurs twice and no duplicate combiner was supplied.
	ErrDuplicateIndex = errors.New("grb: duplicate index")

	// ErrUnsupportedVector marks a Vector implementation that no kernel
	// knows how to write into.
	ErrUnsupportedVector = errors.New("grb: unsupported vector implementation")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("grb: invalid option supplied")
)
