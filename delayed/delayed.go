/*
Package delayed provides a lazy, random-access sequence view defined
by an index range and a function, with no materialized storage.

A delayed sequence is immutable after construction, cheap to copy (a
copy just captures the function value), and composes with every
kernel in parabulk/bulk with zero materialization, because those
kernels only ever need a value at an index, never a reference to one.
It is not a parabulk/sort Sorter: it cannot be sorted in place.

This mirrors parlay::delayed_sequence: see
https://github.com/cmuparlay/parlay for the implementation this
package's semantics are ported from.
*/
package delayed

import "fmt"

// Seq is an immutable (first, last, f) triple: a lazy view over the
// half-open index range [first, last) where element i is f(i).
//
// The zero Seq is not useful; construct one with New or Constant.
type Seq[T any] struct {
	first, last int
	f           func(i int) T
}

// New returns a delayed sequence over [0, n) where element i is f(i).
func New[T any](n int, f func(i int) T) Seq[T] {
	return Seq[T]{first: 0, last: n, f: f}
}

// NewRange returns a delayed sequence over [first, last) where element
// i is f(i).
func NewRange[T any](first, last int, f func(i int) T) Seq[T] {
	if first > last {
		panic(fmt.Sprintf("invalid delayed sequence range: %d:%d", first, last))
	}
	return Seq[T]{first: first, last: last, f: f}
}

// Constant returns a delayed sequence of length n that ignores its
// index and always returns v.
func Constant[T any](n int, v T) Seq[T] {
	return New(n, func(int) T { return v })
}

// Iota returns a delayed sequence over [0, n) whose element i is i
// itself, by way of convert.
func Iota[T any](n int, convert func(i int) T) Seq[T] {
	return New(n, convert)
}

// Size returns last - first.
func (s Seq[T]) Size() int { return s.last - s.first }

// Empty reports whether the sequence has zero size.
func (s Seq[T]) Empty() bool { return s.Size() == 0 }

// At implements the bare-subscript convention: it applies f(i)
// directly, ignoring first.
//
// This asymmetry with Iterator (which applies f(first+i)) is carried
// over unchanged from the source this package is modeled on: the
// bare operator[] there applies f(i) while the iterator applies
// f(first+i), and for a sequence with first != 0 the two disagree.
// Callers that want first-relative indexing should use Iterator (or
// At with first already folded into f), not the bare At.
func (s Seq[T]) At(i int) T { return s.f(i) }

// Get is a bounds-checked accessor: it returns an error if i is
// outside [first, last) instead of silently applying f(i). Like At,
// Get applies f(i) to i directly; unlike At, it checks i against the
// sequence's own [first, last) bounds.
func (s Seq[T]) Get(i int) (T, error) {
	var zero T
	if i < s.first || i >= s.last {
		return zero, fmt.Errorf("delayed sequence access out of range at %d for a sequence with bounds [%d, %d)", i, s.first, s.last)
	}
	return s.f(i), nil
}

// Front returns the first element of the sequence. It panics if the
// sequence is empty.
func (s Seq[T]) Front() T {
	if s.Empty() {
		panic("delayed.Seq.Front: empty sequence")
	}
	return s.f(s.first)
}

// Back returns the last element of the sequence. It panics if the
// sequence is empty.
func (s Seq[T]) Back() T {
	if s.Empty() {
		panic("delayed.Seq.Back: empty sequence")
	}
	return s.f(s.last - 1)
}

// Iterator is a bidirectional value iterator over a delayed sequence;
// it moves one position at a time with Next and Prev and has no
// random-access jump. Dereferencing it (via Value) applies
// f(first+index), the first-relative convention recommended in
// preference to the bare Seq.At.
type Iterator[T any] struct {
	parent *Seq[T]
	index  int
}

// Begin returns an iterator positioned at the first element.
func (s *Seq[T]) Begin() Iterator[T] { return Iterator[T]{parent: s, index: s.first} }

// End returns an iterator positioned one past the last element.
func (s *Seq[T]) End() Iterator[T] { return Iterator[T]{parent: s, index: s.last} }

// Value dereferences the iterator, returning f(first+index) by value.
func (it Iterator[T]) Value() T { return it.parent.f(it.index) }

// Next advances the iterator by one position. It panics if the
// iterator is already at End.
func (it Iterator[T]) Next() Iterator[T] {
	if it.index >= it.parent.last {
		panic("delayed.Iterator.Next: iterator already at end")
	}
	return Iterator[T]{parent: it.parent, index: it.index + 1}
}

// Prev moves the iterator back by one position. It panics if the
// iterator is already at Begin.
func (it Iterator[T]) Prev() Iterator[T] {
	if it.index <= it.parent.first {
		panic("delayed.Iterator.Prev: iterator already at begin")
	}
	return Iterator[T]{parent: it.parent, index: it.index - 1}
}

// Equal reports whether it and other refer to the same parent
// sequence and position.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.parent == other.parent && it.index == other.index
}

// Materialize evaluates the whole sequence into a plain Go slice.
//
// This is the only place this package evaluates a whole sequence:
// every kernel in parabulk/bulk consumes a Seq lazily instead.
func Materialize[T any](s Seq[T]) []T {
	out := make([]T, s.Size())
	for i := range out {
		out[i] = s.f(s.first + i)
	}
	return out
}
