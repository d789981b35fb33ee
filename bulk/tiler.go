package bulk

import (
	"github.com/exascience/parabulk"
	"github.com/exascience/parabulk/parallel"
	"github.com/exascience/parabulk/sequential"
)

// BlockDefault is the default block size used by Scan, Pack, Filter,
// SplitTwo, and SplitThree.
const BlockDefault = 1024

// numBlocks returns ceil(n/blockSize), or 0 if n is 0.
func numBlocks(n, blockSize int) int {
	if n == 0 {
		return 0
	}
	return 1 + (n-1)/blockSize
}

// SlicedFor partitions [0, n) into ceil(n/blockSize) blocks and
// dispatches body(i, s, e) for each block, where (s, e) is the
// block's half-open index range (e = min(s+blockSize, n)) and i is
// the block's ordinal position.
//
// Blocks run in parallel, one per scheduled unit, unless fl carries
// parabulk.Sequential, in which case they run in order on the calling
// goroutine. fl.Conservative requests coarser scheduling granularity
// from the underlying parallel.For.
func SlicedFor(n, blockSize int, body func(i, s, e int), fl parabulk.Flags) {
	l := numBlocks(n, blockSize)
	wrapped := func(i int) {
		s := i * blockSize
		e := s + blockSize
		if e > n {
			e = n
		}
		body(i, s, e)
	}
	if fl.Has(parabulk.Sequential) {
		sequential.For(0, l, wrapped, 1, false)
	} else {
		parallel.For(0, l, wrapped, 1, fl.Has(parabulk.Conservative))
	}
}
