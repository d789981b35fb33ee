package bulk

import (
	"errors"

	"github.com/exascience/parabulk"
	"github.com/exascience/parabulk/monoid"
	"github.com/exascience/parabulk/seq"
)

// SplitTwo produces a new owning sequence of a's own size where every
// element with f[i] == false occupies the low region (in input
// order) and every element with f[i] == true occupies the high
// region (also in input order). It returns the count of false flags,
// which is also the boundary between the two regions.
func SplitTwo[T any](a seq.Indexable[T], f seq.Indexable[bool], fl parabulk.Flags) (seq.Seq[T], int) {
	n := a.Size()
	sums := blockCounts(n, fl, func(_, s, e int) int {
		c := 0
		for j := s; j < e; j++ {
			if !f.At(j) {
				c++
			}
		}
		return c
	})
	m := ScanInplace[int](sums.Slice(), monoid.Add[int](), fl)
	out := seq.Uninitialized[T](n)
	SlicedFor(n, BlockDefault, func(i, s, e int) {
		c0 := sums[i]
		c1 := s + (m - c0)
		for j := s; j < e; j++ {
			if !f.At(j) {
				out[c0] = a.At(j)
				c0++
			} else {
				out[c1] = a.At(j)
				c1++
			}
		}
	}, fl)
	return out, m
}

// ErrAliased is returned by SplitThree when in and out refer to the
// same underlying storage: SplitThree needs out as independent
// scratch space while it scatters from in, and scattering in place
// would overwrite elements that have not yet been read.
var ErrAliased = errors.New("bulk: split-three input and output must not alias")

// SplitThree partitions in into out, laid out as [class-0 | class-1 |
// class-2], each class preserving input order, where class(i) in
// seq.Indexable[byte] classifies element i as 0, 1, or anything else
// (treated as class 2). It returns the count of class 0 and class 1
// elements; the class-2 region starts at m0+m1.
//
// in and out must not alias; SplitThree reports ErrAliased rather than
// silently corrupting data if they do, because — unlike SplitTwo,
// which only ever needs one element of headroom between its two
// write cursors — SplitThree's three concurrent write cursors can
// race ahead of the read cursor within a single block.
func SplitThree[T any](in seq.Slice[T], out seq.Slice[T], class seq.Indexable[byte], fl parabulk.Flags) (m0, m1 int, err error) {
	if seq.SliceEq(in, out) {
		return 0, 0, ErrAliased
	}
	n := in.Size()
	sums0 := blockCounts(n, fl, func(_, s, e int) int {
		c := 0
		for j := s; j < e; j++ {
			if class.At(j) == 0 {
				c++
			}
		}
		return c
	})
	sums1 := blockCounts(n, fl, func(_, s, e int) int {
		c := 0
		for j := s; j < e; j++ {
			if class.At(j) == 1 {
				c++
			}
		}
		return c
	})
	m0 = ScanInplace[int](sums0.Slice(), monoid.Add[int](), fl)
	m1 = ScanInplace[int](sums1.Slice(), monoid.Add[int](), fl)
	SlicedFor(n, BlockDefault, func(i, s, e int) {
		c0 := sums0[i]
		c1 := m0 + sums1[i]
		c2 := m0 + m1 + (s - sums0[i] - sums1[i])
		for j := s; j < e; j++ {
			switch class.At(j) {
			case 0:
				out.Set(c0, in.At(j))
				c0++
			case 1:
				out.Set(c1, in.At(j))
				c1++
			default:
				out.Set(c2, in.At(j))
				c2++
			}
		}
	}, fl)
	return m0, m1, nil
}
