package bulk_test

import (
	"testing"

	"github.com/exascience/parabulk/bulk"
	"github.com/exascience/parabulk/monoid"
	"github.com/exascience/parabulk/seq"
	parabulksync "github.com/exascience/parabulk/sync"
)

type intKey int

func (k intKey) Hash() uint64 { return uint64(k) }

// collidingKey hashes every value to the same bucket, so a
// block-local aggregation map keyed on the hash instead of the key
// itself would merge all of these together under one entry.
type collidingKey int

func (collidingKey) Hash() uint64 { return 0 }

func TestGroupReduceSumsByKey(t *testing.T) {
	const n = 20000
	a := seq.Tabulate(n, func(i int) int { return i })

	dst := parabulksync.NewMap[intKey, int](0)
	bulk.GroupReduce[int](a, func(v int) intKey {
		return intKey(v % 10)
	}, monoid.Add[int](), dst, 0)

	want := make([]int, 10)
	for i := 0; i < n; i++ {
		want[i%10] += i
	}

	for k := 0; k < 10; k++ {
		v, ok := dst.Load(intKey(k))
		if !ok {
			t.Fatalf("key %d missing from result map", k)
		}
		if v != want[k] {
			t.Fatalf("group %d sum = %d, want %d", k, v, want[k])
		}
	}
}

func TestGroupReduceKeepsDistinctKeysDespiteHashCollisions(t *testing.T) {
	const n = 5000
	a := seq.Tabulate(n, func(i int) int { return i })

	dst := parabulksync.NewMap[collidingKey, int](0)
	bulk.GroupReduce[int](a, func(v int) collidingKey {
		return collidingKey(v % 7)
	}, monoid.Add[int](), dst, 0)

	want := make([]int, 7)
	for i := 0; i < n; i++ {
		want[i%7] += i
	}

	for k := 0; k < 7; k++ {
		v, ok := dst.Load(collidingKey(k))
		if !ok {
			t.Fatalf("key %d missing from result map despite colliding hashes", k)
		}
		if v != want[k] {
			t.Fatalf("group %d sum = %d, want %d", k, v, want[k])
		}
	}
}
