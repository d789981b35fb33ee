package sort

import (
	"sort"

	"github.com/exascience/parabulk/parallel"
)

// qsortParThreshold is the size below which Sort finishes a
// sub-array serially rather than forking another level of the
// three-way partition.
const qsortParThreshold = 1024

/*
A type, typically a collection, that satisfies sort.Interface can be
sorted by Sort in this package. The methods require that (ranges of)
elements of the collection can be enumerated by integer indices.
*/
type Sorter interface {
	sort.Interface
}

/*
LargeElementSorter is an optional interface a Sorter may additionally
implement to report that its elements are large (pointer-sized or
bigger). Sort uses this to lower the insertion-sort crossover from 24
to 16 elements, since large-element copies make the O(n^2) fallback
more expensive sooner. A Sorter that does not implement
LargeElementSorter is treated as having small elements.
*/
type LargeElementSorter interface {
	LargeElement() bool
}

func baseCaseThreshold(data sort.Interface) int {
	if le, ok := data.(LargeElementSorter); ok && le.LargeElement() {
		return 16
	}
	return 24
}

func insertionSort(data sort.Interface, lo, hi int) {
	for i := lo + 1; i < hi; i++ {
		for j := i; j > lo && data.Less(j, j-1); j-- {
			data.Swap(j, j-1)
		}
	}
}

// sort5 picks 5 elements at evenly spaced indices over data[lo, lo+n),
// swaps them into data[lo, lo+5), and insertion-sorts that prefix.
func sort5(data sort.Interface, lo, n int) {
	m := n / 6
	for l := 0; l < 5; l++ {
		data.Swap(lo+l, lo+m*(l+1))
	}
	insertionSort(data, lo, lo+5)
}

// split3 partitions data[lo, lo+n) around two pivots sampled by sort5,
// in place. It returns the index one past the low class (l) and the
// index at which the high class begins (m), so that data reads
// [lo,l) < p1, [l,m) in [p1,p2], [m,lo+n) > p2. midEq reports whether
// the two pivots compared equal, in which case the middle class is
// already uniform and does not need to be sorted further.
func split3(data sort.Interface, lo, n int) (l, m int, midEq bool) {
	if n < 5 {
		panic("sort: split3 requires at least 5 elements for sort5's even-stride sampling")
	}
	sort5(data, lo, n)

	// Use data[lo+1] and data[lo+3] as the pivots; move them to the
	// front so that data[lo] and data[lo+1] are the pivots.
	data.Swap(lo, lo+1)
	data.Swap(lo+1, lo+3)
	p1, p2 := lo, lo+1
	midEq = !data.Less(p1, p2)

	// Set up initial invariants: below L is less than p1, above R is
	// greater than p2.
	L := lo + 2
	R := lo + n - 1
	for data.Less(L, p1) {
		L++
	}
	for data.Less(p2, R) {
		R--
	}
	M := L

	// Invariants: [lo+2,L) < p1; [L,M) in [p1,p2]; [M,R] unprocessed;
	// (R,lo+n) > p2.
	for M <= R {
		if data.Less(M, p1) {
			data.Swap(M, L)
			L++
		} else if data.Less(p2, M) {
			data.Swap(M, R)
			if data.Less(M, p1) {
				data.Swap(L, M)
				L++
			}
			R--
			for data.Less(p2, R) {
				R--
			}
		}
		M++
	}

	// Swap the pivots into the boundary positions.
	L -= 2
	data.Swap(p2, L+1)
	data.Swap(p1, L)
	data.Swap(L+1, R)

	return L, M, midEq
}

func quicksortSerial(data sort.Interface, lo, n int) {
	threshold := baseCaseThreshold(data)
	for n >= threshold {
		l, m, midEq := split3(data, lo, n)
		if !midEq {
			quicksortSerial(data, l+1, m-l-1)
		}
		quicksortSerial(data, m, lo+n-m)
		n = l - lo
	}
	insertionSort(data, lo, lo+n)
}

func quicksortPar(data sort.Interface, lo, n int) {
	if n < qsortParThreshold {
		quicksortSerial(data, lo, n)
		return
	}
	l, m, midEq := split3(data, lo, n)
	left := func() { quicksortPar(data, lo, l-lo) }
	mid := func() { quicksortPar(data, l+1, m-l-1) }
	right := func() { quicksortPar(data, m, lo+n-m) }
	if !midEq {
		parallel.Do3(left, mid, right)
	} else {
		parallel.Do(left, right)
	}
}

/*
Sort uses a parallel three-way quicksort implementation: it samples
five elements to pick two pivots, partitions into less-than, between,
and greater-than classes, and recurses on each in parallel once a
sub-array is above qsortParThreshold elements.

Sort is a no-op if data is already sorted, which it checks with
IsSorted before partitioning.
*/
func Sort(data Sorter) {
	size := data.Len()
	if size < baseCaseThreshold(data) {
		insertionSort(data, 0, size)
		return
	}
	if !IsSorted(data) {
		quicksortPar(data, 0, size)
	}
}

/*
SortSerial runs the same three-way quicksort as Sort, but the
partitioning and recursion never fork through parallel.Do3 or
parallel.Do: every sub-array, however large, is handled by
quicksortSerial on the calling goroutine. It otherwise has the same
contract as Sort, including the IsSorted no-op check and the
insertion-sort base case, and is meant for testing and benchmarking
Sort against a non-parallel baseline, or for callers that want the
algorithm without its concurrency.
*/
func SortSerial(data Sorter) {
	size := data.Len()
	if size < baseCaseThreshold(data) {
		insertionSort(data, 0, size)
		return
	}
	if !IsSorted(data) {
		quicksortSerial(data, 0, size)
	}
}
