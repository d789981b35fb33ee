package parallel

import (
	"runtime"
	"sync"

	"github.com/exascience/parabulk"
	"github.com/exascience/parabulk/internal"
)

// Do3 receives three thunks and executes them in parallel.
//
// Do3 is a convenience for the common three-way fork used by the
// parabulk/sort three-way quicksort partition. It is not simply
// Do(a, Do(b, c)) in disguise: b and c each get their own goroutine
// while a runs on the calling goroutine, so all three run at once and
// an unbalanced middle partition does not serialize behind one of the
// other two.
//
// Do3 returns only when all three thunks have terminated. If one or
// more thunks panic, the corresponding goroutines recover the panics,
// and Do3 eventually panics with the left-most recovered panic value.
func Do3(a, b, c func()) {
	var pb, pc interface{}
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer func() {
			pb = internal.WrapPanic(recover())
			wg.Done()
		}()
		b()
	}()
	go func() {
		defer func() {
			pc = internal.WrapPanic(recover())
			wg.Done()
		}()
		c()
	}()
	a()
	wg.Wait()
	if pb != nil {
		panic(pb)
	}
	if pc != nil {
		panic(pc)
	}
}

// For receives a range, a body function, a granularity hint, and a
// conservative flag, and invokes body(i) for every i in the half-open
// interval [lo, hi), across goroutines managed by a work-stealing
// divide-and-conquer split, similar to Range.
//
// granularity is a minimum chunk size hint: ranges are not split below
// this size. A granularity of 0 or less means chunks of a single
// iteration. When conservative is true, granularity is raised to at
// least the chunk size parabulk.ComputeEffectiveThreshold computes with
// a threshold designator of 1 (one batch per logical CPU, no load
// imbalance tolerance), trading load balance for reduced scheduling
// overhead.
//
// For makes no ordering guarantee between iterations, and may run any
// iteration on any goroutine.
//
// If one or more invocations of body panic, the corresponding
// goroutines recover the panics, and For eventually panics with the
// left-most recovered panic value.
func For(lo, hi int, body func(i int), granularity int, conservative bool) {
	if hi <= lo {
		return
	}
	if conservative {
		if g := parabulk.ComputeEffectiveThreshold(lo, hi, 1); g > granularity {
			granularity = g
		}
	}
	if granularity <= 0 {
		granularity = 1
	}
	var recur func(lo, hi int)
	recur = func(lo, hi int) {
		if hi-lo <= granularity {
			for i := lo; i < hi; i++ {
				body(i)
			}
			return
		}
		mid := lo + (hi-lo)/2
		var p interface{}
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer func() {
				p = internal.WrapPanic(recover())
				wg.Done()
			}()
			recur(mid, hi)
		}()
		recur(lo, mid)
		wg.Wait()
		if p != nil {
			panic(p)
		}
	}
	recur(lo, hi)
}

// NumWorkers returns the current width of the goroutine pool available
// to parallel algorithms, as determined by runtime.GOMAXPROCS(0).
//
// It is intended for picking parallel-vs-serial cutoffs, the same role
// num_workers() plays for a fork-join scheduler: a library that wants
// roughly one task per hardware thread calls NumWorkers to size its
// fan-out.
func NumWorkers() int {
	return runtime.GOMAXPROCS(0)
}
