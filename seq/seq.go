/*
Package seq provides the non-owning Slice view and the owning Seq
buffer that the kernels in parabulk/bulk and parabulk/sort read from
and write into.

This is the "sequence container" collaborator of the blocked reduce,
scan, pack, filter, split, and sort kernels: a Slice is a
bounds-checked window over a contiguous range, and a Seq is the
backing storage a kernel allocates when it needs an owning output
buffer. Neither type is itself parallel; parallelism lives one layer
up, in parabulk/bulk and parabulk/sort.
*/
package seq

import "fmt"

// Indexable is the minimal contract the kernels in parabulk/bulk
// require of a source sequence: a known size and an
// indexed read returning a value. Slice, Seq, and
// parabulk/delayed.Seq all satisfy it.
type Indexable[T any] interface {
	Size() int
	At(i int) T
}

// Seq is a contiguous, owning buffer of T.
type Seq[T any] []T

// New returns a Seq of length n with every element set to the zero
// value of T.
func New[T any](n int) Seq[T] {
	return make(Seq[T], n)
}

// Tabulate returns a Seq of length n with element i set to f(i).
func Tabulate[T any](n int, f func(i int) T) Seq[T] {
	s := make(Seq[T], n)
	for i := range s {
		s[i] = f(i)
	}
	return s
}

// Uninitialized returns a Seq of length n whose elements have not yet
// been assigned a meaningful value.
//
// Go has no raw uninitialized memory to exploit the way the systems
// language this library is modeled on does: every element of the
// returned Seq already holds T's zero value. Callers that need the
// "write each slot exactly once" discipline the kernels rely on
// should write through AssignUninitialized, not because doing so
// changes Go's memory semantics, but so that kernel code reads the
// same whether or not T's zero value happens to be observably
// distinct from every value the kernel could write.
func Uninitialized[T any](n int) Seq[T] {
	return make(Seq[T], n)
}

// AssignUninitialized writes v into dst, the placement-into-raw-memory
// operation for an Uninitialized buffer. The kernels in parabulk/bulk
// do not call it: they fill their output buffers once per slot with
// Set or direct indexing.
func AssignUninitialized[T any](dst *T, v T) {
	*dst = v
}

// Size returns the number of elements in s.
func (s Seq[T]) Size() int { return len(s) }

// At returns the element of s at index i.
func (s Seq[T]) At(i int) T { return s[i] }

// Set assigns v to the element of s at index i.
func (s Seq[T]) Set(i int, v T) { s[i] = v }

// Slice returns a Slice view over the whole of s.
func (s Seq[T]) Slice() Slice[T] { return Slice[T]{data: s, begin: 0, end: len(s)} }

// Cut returns a Slice view over s[from:to].
func (s Seq[T]) Cut(from, to int) Slice[T] { return s.Slice().Cut(from, to) }

// Slice is a bounds-checked, non-owning window [begin, end) over an
// underlying Seq. Slice carries no ownership: it compares by address
// identity of the underlying storage, not by element value.
type Slice[T any] struct {
	data       Seq[T]
	begin, end int
}

// MakeSlice returns a Slice view over the whole of data.
func MakeSlice[T any](data Seq[T]) Slice[T] {
	return Slice[T]{data: data, begin: 0, end: len(data)}
}

// Size returns the number of elements in the slice.
func (s Slice[T]) Size() int { return s.end - s.begin }

// At returns the element of the slice at index i, 0 <= i < s.Size().
func (s Slice[T]) At(i int) T {
	if i < 0 || i >= s.Size() {
		panic(fmt.Sprintf("slice index %d out of range [0, %d)", i, s.Size()))
	}
	return s.data[s.begin+i]
}

// Set assigns v to the element of the slice at index i.
func (s Slice[T]) Set(i int, v T) {
	if i < 0 || i >= s.Size() {
		panic(fmt.Sprintf("slice index %d out of range [0, %d)", i, s.Size()))
	}
	s.data[s.begin+i] = v
}

// Cut returns the subrange [from, to) of the slice, relative to its
// own bounds.
func (s Slice[T]) Cut(from, to int) Slice[T] {
	if from < 0 || to > s.Size() || from > to {
		panic(fmt.Sprintf("invalid cut [%d, %d) of slice of size %d", from, to, s.Size()))
	}
	return Slice[T]{data: s.data, begin: s.begin + from, end: s.begin + to}
}

// Raw returns the underlying Go slice backing this view, for callers
// that need direct access (for example to hand it to parabulk/sort).
func (s Slice[T]) Raw() Seq[T] { return s.data[s.begin:s.end] }

// SliceEq reports whether a and b are views over the same underlying
// storage region: the same backing array, at the same bounds. It is
// not an elementwise comparison.
func SliceEq[T any](a, b Slice[T]) bool {
	if a.Size() != b.Size() {
		return false
	}
	if a.Size() == 0 {
		// An empty view has no storage to collide on, regardless of
		// which array it was cut from.
		return false
	}
	return &a.data[a.begin] == &b.data[b.begin]
}
