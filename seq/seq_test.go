package seq_test

import (
	"testing"

	"github.com/exascience/parabulk/seq"
)

func TestTabulate(t *testing.T) {
	s := seq.Tabulate(5, func(i int) int { return i * i })
	if s.Size() != 5 {
		t.Fatalf("Size() = %d, want 5", s.Size())
	}
	for i := 0; i < 5; i++ {
		if got := s.At(i); got != i*i {
			t.Fatalf("At(%d) = %d, want %d", i, got, i*i)
		}
	}
}

func TestSeqSetAndSlice(t *testing.T) {
	s := seq.New[int](3)
	s.Set(0, 10)
	s.Set(1, 20)
	s.Set(2, 30)

	view := s.Slice()
	if view.Size() != 3 {
		t.Fatalf("Slice().Size() = %d, want 3", view.Size())
	}
	for i, want := range []int{10, 20, 30} {
		if got := view.At(i); got != want {
			t.Fatalf("view.At(%d) = %d, want %d", i, got, want)
		}
	}
}

func TestCut(t *testing.T) {
	s := seq.Tabulate(10, func(i int) int { return i })
	sub := s.Cut(3, 7)
	if sub.Size() != 4 {
		t.Fatalf("Cut(3,7).Size() = %d, want 4", sub.Size())
	}
	for i := 0; i < 4; i++ {
		if got := sub.At(i); got != 3+i {
			t.Fatalf("sub.At(%d) = %d, want %d", i, got, 3+i)
		}
	}
}

func TestCutOutOfRangePanics(t *testing.T) {
	s := seq.New[int](5)
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic for an out-of-range cut")
		}
	}()
	s.Cut(2, 6)
}

func TestSliceAtOutOfRangePanics(t *testing.T) {
	s := seq.New[int](3)
	view := s.Slice()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic for an out-of-range index")
		}
	}()
	view.At(3)
}

func TestSliceEqDetectsAliasing(t *testing.T) {
	a := seq.New[int](4)
	b := seq.New[int](4)

	if seq.SliceEq(a.Slice(), b.Slice()) {
		t.Fatalf("distinct backing arrays reported as aliased")
	}
	if !seq.SliceEq(a.Slice(), a.Slice()) {
		t.Fatalf("a slice should alias itself")
	}

	sub1 := a.Cut(0, 2)
	sub2 := a.Cut(0, 2)
	if !seq.SliceEq(sub1, sub2) {
		t.Fatalf("two views over the same range should alias")
	}
	sub3 := a.Cut(2, 4)
	if seq.SliceEq(sub1, sub3) {
		t.Fatalf("disjoint ranges of the same backing array should not alias")
	}
}

func TestSliceEqEmptySlicesOfDifferentBackingArraysDoNotAlias(t *testing.T) {
	a := seq.New[int](0)
	b := seq.New[int](0)
	if seq.SliceEq(a.Slice(), b.Slice()) {
		t.Fatalf("two empty slices over distinct empty backing arrays should not be reported as aliased")
	}
}

func TestRaw(t *testing.T) {
	s := seq.Tabulate(5, func(i int) int { return i })
	view := s.Cut(1, 4)
	raw := view.Raw()
	if len(raw) != 3 {
		t.Fatalf("Raw() length = %d, want 3", len(raw))
	}
	raw[0] = 100
	if s.At(1) != 100 {
		t.Fatalf("Raw() should share storage with the owning Seq")
	}
}
