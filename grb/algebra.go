// SPDX-License-Identifier: MIT
// Package grb: scalar algebra: binary operators, monoids, semirings and the
// optional accumulator.
//
// Purpose:
//   - Replace ordinary +/× with caller-chosen operators so the same kernels
//     serve shortest paths (min.+), reachability (or.and), counting (+.×), etc.
//   - Keep every operator a plain func value; no interfaces, no reflection in
//     the hot loops.
//
// Notes:
//   - A Semiring carries a single scalar type: inputs, products and sums share T.
//   - The additive identity is informational. Kernels never materialize it;
//     an absent entry is "no contribution", not an explicit identity value.

package grb

import (
	"math"
	"reflect"
)

// Number is the set of numeric scalar types.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Scalar is the element type of vectors and matrices. Every Scalar is
// comparable; a stored value is "truthy" when it differs from the zero value.
type Scalar interface {
	Number | ~bool
}

// BinaryOp combines two scalars into one.
type BinaryOp[T Scalar] func(a, b T) T

// Monoid is an associative BinaryOp with its identity element.
type Monoid[T Scalar] struct {
	Op       BinaryOp[T]
	Identity T
}

// Semiring pairs an additive monoid with a multiplicative operator.
// Mult is always invoked as Mult(left, right) with the vector operand of VxM
// on the left and the matrix entry on the right (see VxM / MxV docs).
type Semiring[T Scalar] struct {
	Add  Monoid[T]
	Mult BinaryOp[T]
}

// Accumulator is either absent (overwrite semantics) or a binary combiner
// applied as op(old, new) when merging results into the output.
type Accumulator[T Scalar] struct {
	op BinaryOp[T]
}

// NoAccumulate returns the absent accumulator: computed values overwrite w.
func NoAccumulate[T Scalar]() Accumulator[T] { return Accumulator[T]{} }

// Accum wraps op as an accumulator. Accum(nil) is equivalent to NoAccumulate.
func Accum[T Scalar](op BinaryOp[T]) Accumulator[T] { return Accumulator[T]{op: op} }

// Present reports whether an accumulation operator is set.
func (a Accumulator[T]) Present() bool { return a.op != nil }

// Op returns the wrapped operator (nil when absent).
func (a Accumulator[T]) Op() BinaryOp[T] { return a.op }

// ---------- Binary operators ----------

// Plus returns a + b.
func Plus[T Number](a, b T) T { return a + b }

// Times returns a * b.
func Times[T Number](a, b T) T { return a * b }

// Min returns the smaller operand (a on ties).
func Min[T Number](a, b T) T {
	if b < a {
		return b
	}
	return a
}

// Max returns the larger operand (a on ties).
func Max[T Number](a, b T) T {
	if b > a {
		return b
	}
	return a
}

// First returns its left operand.
func First[T Scalar](a, _ T) T { return a }

// Second returns its right operand.
func Second[T Scalar](_, b T) T { return b }

// LogicalOr returns a || b.
func LogicalOr(a, b bool) bool { return a || b }

// LogicalAnd returns a && b.
func LogicalAnd(a, b bool) bool { return a && b }

// ---------- Monoids ----------

// PlusMonoid is (+, 0).
func PlusMonoid[T Number]() Monoid[T] { return Monoid[T]{Op: Plus[T], Identity: 0} }

// TimesMonoid is (×, 1).
func TimesMonoid[T Number]() Monoid[T] { return Monoid[T]{Op: Times[T], Identity: 1} }

// MinMonoid is (min, +max(T)).
func MinMonoid[T Number]() Monoid[T] { return Monoid[T]{Op: Min[T], Identity: upperBound[T]()} }

// MaxMonoid is (max, lowest(T)).
func MaxMonoid[T Number]() Monoid[T] { return Monoid[T]{Op: Max[T], Identity: lowerBound[T]()} }

// LogicalOrMonoid is (||, false).
func LogicalOrMonoid() Monoid[bool] { return Monoid[bool]{Op: LogicalOr, Identity: false} }

// LogicalAndMonoid is (&&, true).
func LogicalAndMonoid() Monoid[bool] { return Monoid[bool]{Op: LogicalAnd, Identity: true} }

// ---------- Semirings ----------

// PlusTimes is the arithmetic semiring (+, ×).
func PlusTimes[T Number]() Semiring[T] {
	return Semiring[T]{Add: PlusMonoid[T](), Mult: Times[T]}
}

// MinPlus is the tropical semiring (min, +) used for shortest paths.
func MinPlus[T Number]() Semiring[T] {
	return Semiring[T]{Add: MinMonoid[T](), Mult: Plus[T]}
}

// MaxPlus is (max, +), used for longest/critical paths.
func MaxPlus[T Number]() Semiring[T] {
	return Semiring[T]{Add: MaxMonoid[T](), Mult: Plus[T]}
}

// MaxTimes is (max, ×), used for most-reliable paths.
func MaxTimes[T Number]() Semiring[T] {
	return Semiring[T]{Add: MaxMonoid[T](), Mult: Times[T]}
}

// MinFirst keeps the smallest vector-side value reaching each position.
// With an index-valued frontier it yields BFS parents.
func MinFirst[T Number]() Semiring[T] {
	return Semiring[T]{Add: MinMonoid[T](), Mult: First[T]}
}

// MinSecond keeps the smallest matrix-side value reaching each position.
func MinSecond[T Number]() Semiring[T] {
	return Semiring[T]{Add: MinMonoid[T](), Mult: Second[T]}
}

// PlusFirst sums the vector-side values reaching each position.
func PlusFirst[T Number]() Semiring[T] {
	return Semiring[T]{Add: PlusMonoid[T](), Mult: First[T]}
}

// PlusSecond sums the matrix-side values reaching each position.
func PlusSecond[T Number]() Semiring[T] {
	return Semiring[T]{Add: PlusMonoid[T](), Mult: Second[T]}
}

// LogicalSemiring is the boolean (||, &&) semiring for reachability.
func LogicalSemiring() Semiring[bool] {
	return Semiring[bool]{Add: LogicalOrMonoid(), Mult: LogicalAnd}
}

// upperBound returns +Inf for floats and the maximum value for integers.
func upperBound[T Number]() T {
	var v T
	rv := reflect.ValueOf(&v).Elem()
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		rv.SetFloat(math.Inf(1))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		rv.SetInt(int64(1)<<(rv.Type().Bits()-1) - 1)
	default: // unsigned
		rv.SetUint(math.MaxUint64 >> (64 - rv.Type().Bits()))
	}
	return v
}

// lowerBound returns -Inf for floats and the minimum value for integers.
func lowerBound[T Number]() T {
	var v T
	rv := reflect.ValueOf(&v).Elem()
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		rv.SetFloat(math.Inf(-1))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		rv.SetInt(-(int64(1) << (rv.Type().Bits() - 1)))
	}
	return v
}
