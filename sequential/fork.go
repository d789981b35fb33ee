// Package sequential provides an inline, single-goroutine
// implementation of the parallel.For contract, for the fl.Sequential
// escape hatch and for testing and debugging.
//
// It is not recommended to use the implementation of this package for
// any other purpose, because it is almost certainly too inefficient
// for regular sequential programs.
package sequential

import "runtime"

// Do3 receives three thunks and executes them one after another.
func Do3(a, b, c func()) {
	a()
	b()
	c()
}

// For receives a range and a body function, and invokes body(i) for
// every i in the half-open interval [lo, hi), in order, on the calling
// goroutine. granularity and conservative are accepted for signature
// compatibility with parallel.For but otherwise ignored.
func For(lo, hi int, body func(i int), granularity int, conservative bool) {
	for i := lo; i < hi; i++ {
		body(i)
	}
}

// NumWorkers returns runtime.GOMAXPROCS(0), for signature compatibility
// with parallel.NumWorkers. Sequential algorithms do not otherwise
// depend on it.
func NumWorkers() int {
	return runtime.GOMAXPROCS(0)
}
