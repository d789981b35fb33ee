package bulk

import (
	"math"

	"github.com/exascience/parabulk"
	"github.com/exascience/parabulk/monoid"
	"github.com/exascience/parabulk/seq"
)

func reduceSerial[T any](a seq.Indexable[T], m monoid.T[T]) T {
	// Folds from a.At(0) rather than m.Identity, to avoid a needless
	// identity-combine call; this is only observationally correct
	// because m.Identity is a true two-sided unit.
	r := a.At(0)
	for j := 1; j < a.Size(); j++ {
		r = m.F(r, a.At(j))
	}
	return r
}

// reduceBlockSize balances per-block work against the cost of
// combining block results: the number of blocks grows with sqrt(n),
// so that combine is neither a serial bottleneck (too many tiny
// blocks) nor starved of parallelism (one giant block).
func reduceBlockSize(n int) int {
	b := int(4 * math.Ceil(math.Sqrt(float64(n))))
	if b < BlockDefault {
		return BlockDefault
	}
	return b
}

// Reduce returns the ordered left-fold m.Identity (+) a[0] (+) ... (+)
// a[n-1], where (+) is m.F. It returns m.Identity for an empty a.
//
// Given the same a, m, and fl, Reduce returns a bit-identical result
// across runs: the block partition is a function of a.Size() alone,
// each block is folded in input order, and only the (fixed) combine
// order of the per-block sums depends on how many blocks there were.
func Reduce[T any](a seq.Indexable[T], m monoid.T[T], fl parabulk.Flags) T {
	n := a.Size()
	if n == 0 {
		return m.Identity
	}
	blockSize := reduceBlockSize(n)
	l := numBlocks(n, blockSize)
	if l == 1 || fl.Has(parabulk.Sequential) {
		return reduceSerial(a, m)
	}
	sums := seq.New[T](l)
	SlicedFor(n, blockSize, func(i, s, e int) {
		sums[i] = reduceSerial(window(a, s, e), m)
	}, fl)
	return Reduce[T](sums, m, fl)
}
