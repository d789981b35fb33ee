// Package parabulk provides a small, composable algebra over large
// in-memory sequences: blocked reduce and scan, prefix-sum-driven
// pack/filter/split, a parallel three-way quicksort, and a delayed
// (lazy, index-computed) sequence view, all running on a fork-join
// work-stealing scheduler.
//
// Parabulk provides the following subpackages:
//
// parabulk/parallel provides the fork-join scheduler contract that the
// rest of the library consumes: Do, Do3, For, and NumWorkers, plus
// Range, RangeAnd, and RangeReduceFloat64.
//
// parabulk/sequential provides an inline, single-goroutine
// implementation of the parallel.For contract, for the fl.Sequential
// escape hatch and for testing and debugging.
//
// parabulk/speculative provides early-terminating And, Or, and
// RangeAnd, used internally to short-circuit an already-sorted check
// before paying for a sort, and to stop a parallel map traversal as
// soon as a caller's predicate is satisfied.
//
// parabulk/seq provides the non-owning Slice view and the owning Seq
// buffer that the kernels read from and write into.
//
// parabulk/delayed provides the lazy, index-computed sequence view
// that composes with every kernel in parabulk/bulk with zero
// materialization.
//
// parabulk/monoid provides the associative-operator-plus-identity
// contract the reduce and scan kernels are built on, along with a set
// of predefined instances.
//
// parabulk/bulk provides the core kernels: SlicedFor, Reduce, Scan,
// Pack, Filter, SplitTwo, and SplitThree.
//
// parabulk/sort provides the parallel three-way quicksort and a
// parallel stable sort.
//
// parabulk/sync provides a generic, sharded parallel map, useful for
// building key-grouped reductions on top of parabulk/bulk.
//
// cmd/heatflow is a command that drives a heat-distribution simulation
// package, parabulk/examples/heatflow. That package is not part of
// this module, so cmd/heatflow does not build as it stands. The
// simulation step and convergence check on parabulk/parallel are
// shown in parabulk/parallel's heat-distribution example test.
//
// Parabulk has been influenced to various extents by ideas from Cilk,
// Threading Building Blocks, the Problem Based Benchmark Suite's
// sequence library, and Java's java.util.concurrent and
// java.util.stream packages. See
// http://supertech.csail.mit.edu/papers/steal.pdf for some theoretical
// background, and the sample chapter at
// https://mitpress.mit.edu/books/introduction-algorithms for a more
// practical overview of the underlying concepts.
package parabulk
