package bulk

import (
	"github.com/exascience/parabulk"
	"github.com/exascience/parabulk/monoid"
	"github.com/exascience/parabulk/seq"
)

// scanSerial runs the serial scan kernel: it folds in[i] into an
// accumulator seeded with offset, writing each prefix to out, and
// returns the final accumulator value. inclusive selects whether
// out[i] includes in[i] itself.
func scanSerial[T any](in seq.Indexable[T], out writable[T], m monoid.T[T], offset T, inclusive bool) T {
	r := offset
	n := in.Size()
	if inclusive {
		for i := 0; i < n; i++ {
			r = m.F(r, in.At(i))
			out.Set(i, r)
		}
	} else {
		for i := 0; i < n; i++ {
			t := in.At(i)
			out.Set(i, r)
			r = m.F(r, t)
		}
	}
	return r
}

func scanInto[T any](in seq.Indexable[T], out writable[T], m monoid.T[T], fl parabulk.Flags) T {
	n := in.Size()
	l := numBlocks(n, BlockDefault)
	inclusive := fl.Has(parabulk.ScanInclusive)
	if l <= 2 || fl.Has(parabulk.Sequential) {
		return scanSerial(in, out, m, m.Identity, inclusive)
	}

	// Up-sweep: one serial block-reduce per block.
	sums := seq.New[T](l)
	SlicedFor(n, BlockDefault, func(i, s, e int) {
		sums[i] = reduceSerial(window(in, s, e), m)
	}, fl)

	// Combine: a serial exclusive scan of the block totals.
	total := scanSerial[T](sums, sums, m, m.Identity, false)

	// Down-sweep: one serial block-scan per block, seeded with that
	// block's combined offset.
	SlicedFor(n, BlockDefault, func(i, s, e int) {
		scanSerial(window(in, s, e), offset[T](out, s), m, sums[i], inclusive)
	}, fl)

	return total
}

// Scan returns a new owning sequence Out and a total, where Out[i] is
// the inclusive or exclusive running combination of a (depending on
// fl.ScanInclusive) and total is m.Identity (+) a[0] (+) ... (+)
// a[n-1].
func Scan[T any](a seq.Indexable[T], m monoid.T[T], fl parabulk.Flags) (seq.Seq[T], T) {
	out := seq.New[T](a.Size())
	total := scanInto[T](a, out, m, fl)
	return out, total
}

// ScanInplace is Scan with the output written back into a's own
// storage. It returns the total.
func ScanInplace[T any](a seq.Slice[T], m monoid.T[T], fl parabulk.Flags) T {
	return scanInto[T](a, a, m, fl)
}
