/*
Package monoid provides the associative-operator-plus-identity
contract that parabulk/bulk's Reduce and Scan kernels are built on,
along with a set of predefined instances.

A monoid is a pair (F, Identity) where F is associative and Identity
is a two-sided unit for F. This package takes monoids by value and,
like the kernels that consume them, assumes but does not check
associativity: T.F is a plain function value, not a type that could
carry a proof obligation.
*/
package monoid

import (
	"math"

	"golang.org/x/exp/constraints"
)

// T is a monoid over E: an associative binary operator F paired with a
// two-sided identity element Identity.
type T[E any] struct {
	F        func(a, b E) E
	Identity E
}

// New builds a monoid from an explicit operator and identity. Callers
// are responsible for the associativity and identity laws; nothing in
// this package checks them.
func New[E any](f func(a, b E) E, identity E) T[E] {
	return T[E]{F: f, Identity: identity}
}

// Add returns the addition monoid over any numeric type, with 0 as
// identity.
func Add[E constraints.Integer | constraints.Float]() T[E] {
	return T[E]{F: func(a, b E) E { return a + b }, Identity: 0}
}

// MaxOrdered returns the max monoid over an ordered type, with the
// caller-supplied identity acting as the "negative infinity" element.
// identity must compare less than or equal to every value that will
// actually be reduced or scanned, or the identity law is violated.
func MaxOrdered[E constraints.Ordered](identity E) T[E] {
	return T[E]{F: func(a, b E) E {
		if a < b {
			return b
		}
		return a
	}, Identity: identity}
}

// MinOrdered returns the min monoid over an ordered type, with the
// caller-supplied identity acting as the "positive infinity" element.
func MinOrdered[E constraints.Ordered](identity E) T[E] {
	return T[E]{F: func(a, b E) E {
		if a < b {
			return a
		}
		return b
	}, Identity: identity}
}

// MaxInt64 returns the max monoid over int64, with math.MinInt64 as
// identity, matching the spec scenario where reduce(A, max) uses
// INT64_MIN as the starting point for an empty sequence.
func MaxInt64() T[int64] {
	return MaxOrdered[int64](-1 << 63)
}

// MinInt64 returns the min monoid over int64, with math.MaxInt64 as
// identity.
func MinInt64() T[int64] {
	return MinOrdered[int64](1<<63 - 1)
}

// MaxFloat64 returns the max monoid over float64, with negative
// infinity as identity.
func MaxFloat64() T[float64] {
	return MaxOrdered(negInf)
}

// MinFloat64 returns the min monoid over float64, with positive
// infinity as identity.
func MinFloat64() T[float64] {
	return MinOrdered(posInf)
}

var (
	posInf = math.Inf(1)
	negInf = math.Inf(-1)
)

// And returns the boolean conjunction monoid, with true as identity.
func And() T[bool] {
	return T[bool]{F: func(a, b bool) bool { return a && b }, Identity: true}
}

// Or returns the boolean disjunction monoid, with false as identity.
func Or() T[bool] {
	return T[bool]{F: func(a, b bool) bool { return a || b }, Identity: false}
}

// Concat returns the slice-concatenation monoid over []E, with a nil
// slice as identity.
func Concat[E any]() T[[]E] {
	return T[[]E]{F: func(a, b []E) []E {
		if len(a) == 0 {
			return b
		}
		if len(b) == 0 {
			return a
		}
		out := make([]E, 0, len(a)+len(b))
		out = append(out, a...)
		out = append(out, b...)
		return out
	}, Identity: nil}
}

// First returns a monoid that keeps the left-most of two values
// wrapped in an Option, with None as identity. It is associative
// because "keep the left-most present value" composes regardless of
// how the sequence is split into blocks.
func First[E any]() T[Option[E]] {
	return T[Option[E]]{F: func(a, b Option[E]) Option[E] {
		if a.Present {
			return a
		}
		return b
	}, Identity: Option[E]{}}
}

// Last returns a monoid that keeps the right-most of two values
// wrapped in an Option, with None as identity.
func Last[E any]() T[Option[E]] {
	return T[Option[E]]{F: func(a, b Option[E]) Option[E] {
		if b.Present {
			return b
		}
		return a
	}, Identity: Option[E]{}}
}

// Option is a minimal optional value, used as the carrier type for
// First and Last so that their identity element is representable
// without a sentinel value of E.
type Option[E any] struct {
	Value   E
	Present bool
}

// Some wraps v as a present Option.
func Some[E any](v E) Option[E] { return Option[E]{Value: v, Present: true} }
