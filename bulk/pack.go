package bulk

import (
	"github.com/exascience/parabulk"
	"github.com/exascience/parabulk/monoid"
	"github.com/exascience/parabulk/seq"
	"golang.org/x/exp/constraints"
)

func sumBoolsSerial(f seq.Indexable[bool]) int {
	r := 0
	for j := 0; j < f.Size(); j++ {
		if f.At(j) {
			r++
		}
	}
	return r
}

// packSerialAt scatters every in[i] for which f[i] is true into out,
// in order, starting at out's own index 0, and returns the count
// written.
func packSerialAt[T any](in seq.Indexable[T], f seq.Indexable[bool], out writable[T]) int {
	k := 0
	for i := 0; i < in.Size(); i++ {
		if f.At(i) {
			out.Set(k, in.At(i))
			k++
		}
	}
	return k
}

func packSerial[T any](in seq.Indexable[T], f seq.Indexable[bool]) seq.Seq[T] {
	m := sumBoolsSerial(f)
	out := seq.Uninitialized[T](m)
	packSerialAt(in, f, out)
	return out
}

// blockCounts runs count over the blocks of [0,n) and returns the
// per-block counts, unscanned; callers resolve them into an exclusive
// prefix sum with ScanInplace, which also yields the total count.
func blockCounts(n int, fl parabulk.Flags, count func(i, s, e int) int) seq.Seq[int] {
	l := numBlocks(n, BlockDefault)
	sums := seq.New[int](l)
	SlicedFor(n, BlockDefault, func(i, s, e int) {
		sums[i] = count(i, s, e)
	}, fl)
	return sums
}

// blockBase returns the destination write cursor owned by block i,
// given its resolved exclusive-prefix-sum count array.
func blockBase(sums seq.Seq[int], i int) int {
	return sums[i]
}

// Pack returns the subsequence of in[i] for which f[i] is truthy, in
// input order. len(result) == the number of truthy flags.
func Pack[T any](in seq.Indexable[T], f seq.Indexable[bool], fl parabulk.Flags) seq.Seq[T] {
	n := in.Size()
	l := numBlocks(n, BlockDefault)
	if l <= 1 || fl.Has(parabulk.Sequential) {
		return packSerial(in, f)
	}
	sums := blockCounts(n, fl, func(_, s, e int) int {
		return sumBoolsSerial(window(f, s, e))
	})
	m := ScanInplace[int](sums.Slice(), monoid.Add[int](), fl)
	out := seq.Uninitialized[T](m)
	SlicedFor(n, BlockDefault, func(i, s, e int) {
		lo := blockBase(sums, i)
		packSerialAt(window(in, s, e), window(f, s, e), offset[T](out, lo))
	}, fl)
	return out
}

// PackOut is Pack, writing into the caller-supplied out instead of
// allocating, and returning the number of elements written. out must
// be at least as long as the number of truthy flags.
func PackOut[T any](in seq.Indexable[T], f seq.Indexable[bool], out seq.Slice[T], fl parabulk.Flags) int {
	n := in.Size()
	l := numBlocks(n, BlockDefault)
	if l <= 1 || fl.Has(parabulk.Sequential) {
		return packSerialAt(in, f, out)
	}
	sums := blockCounts(n, fl, func(_, s, e int) int {
		return sumBoolsSerial(window(f, s, e))
	})
	m := ScanInplace[int](sums.Slice(), monoid.Add[int](), fl)
	SlicedFor(n, BlockDefault, func(i, s, e int) {
		lo := blockBase(sums, i)
		packSerialAt(window(in, s, e), window(f, s, e), offset[T](out, lo))
	}, fl)
	return m
}

// Filter is equivalent to Pack(in, map(in, pred)), computed in one
// fused traversal: the predicate is evaluated exactly once per
// element, during the same block pass that counts truthy results.
func Filter[T any](in seq.Indexable[T], pred func(T) bool, fl parabulk.Flags) seq.Seq[T] {
	n := in.Size()
	flagBuf := seq.New[bool](n)
	sums := blockCounts(n, fl, func(_, s, e int) int {
		r := 0
		for j := s; j < e; j++ {
			v := pred(in.At(j))
			flagBuf[j] = v
			if v {
				r++
			}
		}
		return r
	})
	m := ScanInplace[int](sums.Slice(), monoid.Add[int](), fl)
	out := seq.Uninitialized[T](m)
	SlicedFor(n, BlockDefault, func(i, s, e int) {
		lo := blockBase(sums, i)
		packSerialAt(window(in, s, e), window(flagBuf, s, e), offset[T](out, lo))
	}, fl)
	return out
}

// FilterOut is Filter, writing into the caller-supplied out instead
// of allocating, and returning the number of elements written.
func FilterOut[T any](in seq.Indexable[T], out seq.Slice[T], pred func(T) bool, fl parabulk.Flags) int {
	n := in.Size()
	flagBuf := seq.New[bool](n)
	sums := blockCounts(n, fl, func(_, s, e int) int {
		r := 0
		for j := s; j < e; j++ {
			v := pred(in.At(j))
			flagBuf[j] = v
			if v {
				r++
			}
		}
		return r
	})
	m := ScanInplace[int](sums.Slice(), monoid.Add[int](), fl)
	SlicedFor(n, BlockDefault, func(i, s, e int) {
		lo := blockBase(sums, i)
		packSerialAt(window(in, s, e), window(flagBuf, s, e), offset[T](out, lo))
	}, fl)
	return m
}

// PackIndex packs the indices of in for which f is truthy, into a
// sequence of Idx. It is a convenience built from an unmaterialized
// index-identity view (indexSeq, whose element i is Idx(i)) composed
// with Pack.
func PackIndex[Idx constraints.Integer](f seq.Indexable[bool], fl parabulk.Flags) seq.Seq[Idx] {
	n := f.Size()
	identity := indexSeq[Idx]{n: n}
	return Pack[Idx](identity, f, fl)
}

type indexSeq[Idx constraints.Integer] struct{ n int }

func (s indexSeq[Idx]) Size() int    { return s.n }
func (s indexSeq[Idx]) At(i int) Idx { return Idx(i) }
