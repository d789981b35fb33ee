package bulk_test

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/exascience/parabulk"
	"github.com/exascience/parabulk/bulk"
	"github.com/exascience/parabulk/monoid"
	"github.com/exascience/parabulk/seq"
)

func makeInts(n int, f func(i int) int) seq.Seq[int] {
	return seq.Tabulate(n, f)
}

func TestReduceMatchesDirectSum(t *testing.T) {
	const n = 100000
	a := makeInts(n, func(i int) int { return (50021*i + 61) % (1 << 20) })

	want := 0
	for i := 0; i < n; i++ {
		want += a.At(i)
	}

	got := bulk.Reduce[int](a, monoid.Add[int](), 0)
	if got != want {
		t.Fatalf("Reduce = %d, want %d", got, want)
	}
}

func TestReduceEmptyReturnsIdentity(t *testing.T) {
	a := makeInts(0, func(i int) int { return i })
	m := monoid.Add[int]()
	if got := bulk.Reduce[int](a, m, 0); got != m.Identity {
		t.Fatalf("Reduce of empty sequence = %d, want identity %d", got, m.Identity)
	}
}

func TestReduceMax(t *testing.T) {
	const n = 100000
	a := makeInts(n, func(i int) int { return (50021*i + 61) % (1 << 20) })
	m := monoid.MaxOrdered(-1 << 62)

	want := a.At(0)
	for i := 1; i < n; i++ {
		if a.At(i) > want {
			want = a.At(i)
		}
	}
	if got := bulk.Reduce[int](a, m, 0); got != want {
		t.Fatalf("Reduce(max) = %d, want %d", got, want)
	}
}

func TestReduceSequentialFlagMatchesParallel(t *testing.T) {
	const n = 50000
	a := makeInts(n, func(i int) int { return rand.Intn(1000) })
	m := monoid.Add[int]()

	par := bulk.Reduce[int](a, m, 0)
	ser := bulk.Reduce[int](a, m, parabulk.Sequential)
	if par != ser {
		t.Fatalf("parallel Reduce = %d, sequential Reduce = %d", par, ser)
	}
}

func TestScanExclusivePrefixSums(t *testing.T) {
	const n = 100000
	a := makeInts(n, func(i int) int { return (50021*i + 61) % (1 << 20) })
	out, total := bulk.Scan[int](a, monoid.Add[int](), 0)

	if out.At(0) != 0 {
		t.Fatalf("out[0] = %d, want 0", out.At(0))
	}
	sum := 0
	for k := 0; k < n; k++ {
		if out.At(k) != sum {
			t.Fatalf("out[%d] = %d, want %d", k, out.At(k), sum)
		}
		sum += a.At(k)
	}
	if total != sum {
		t.Fatalf("total = %d, want %d", total, sum)
	}
}

func TestScanInclusive(t *testing.T) {
	const n = 2000
	a := makeInts(n, func(i int) int { return i + 1 })
	out, total := bulk.Scan[int](a, monoid.Add[int](), parabulk.ScanInclusive)

	sum := 0
	for k := 0; k < n; k++ {
		sum += a.At(k)
		if out.At(k) != sum {
			t.Fatalf("inclusive out[%d] = %d, want %d", k, out.At(k), sum)
		}
	}
	if total != sum {
		t.Fatalf("total = %d, want %d", total, sum)
	}
}

func TestScanInplace(t *testing.T) {
	const n = 5000
	a := makeInts(n, func(i int) int { return i % 7 })
	want, wantTotal := bulk.Scan[int](makeInts(n, func(i int) int { return i % 7 }), monoid.Add[int](), 0)

	total := bulk.ScanInplace[int](a.Slice(), monoid.Add[int](), 0)
	if total != wantTotal {
		t.Fatalf("ScanInplace total = %d, want %d", total, wantTotal)
	}
	if !reflect.DeepEqual([]int(a), []int(want)) {
		t.Fatalf("ScanInplace result = %v, want %v", []int(a), []int(want))
	}
}

func TestScanSequentialFlagMatchesParallel(t *testing.T) {
	const n = 20000
	mk := func() seq.Seq[int] { return makeInts(n, func(i int) int { return rand.Intn(100) }) }
	a := mk()
	b := make(seq.Seq[int], n)
	copy(b, a)

	outPar, totalPar := bulk.Scan[int](a, monoid.Add[int](), 0)
	outSeq, totalSeq := bulk.Scan[int](b, monoid.Add[int](), parabulk.Sequential)

	if totalPar != totalSeq {
		t.Fatalf("totals differ: %d vs %d", totalPar, totalSeq)
	}
	if !reflect.DeepEqual([]int(outPar), []int(outSeq)) {
		t.Fatalf("parallel and sequential scan results differ")
	}
}

func boolsFromMod(n, mod, rem int) seq.Seq[bool] {
	return seq.Tabulate(n, func(i int) bool { return i%mod == rem })
}

func TestPackEvenIndices(t *testing.T) {
	const n = 100000
	a := makeInts(n, func(i int) int { return i })
	f := boolsFromMod(n, 2, 0)

	got := bulk.Pack[int](a, f, 0)
	if len(got) != 50000 {
		t.Fatalf("len(Pack) = %d, want 50000", len(got))
	}
	for i, v := range got {
		if v != 2*i {
			t.Fatalf("Pack[%d] = %d, want %d", i, v, 2*i)
		}
	}
}

func TestFilterMultiplesOfThree(t *testing.T) {
	const n = 100000
	a := makeInts(n, func(i int) int { return i })

	got := bulk.Filter[int](a, func(x int) bool { return x%3 == 0 }, 0)
	if len(got) != 33334 {
		t.Fatalf("len(Filter) = %d, want 33334", len(got))
	}
	for i, v := range got {
		if v != 3*i {
			t.Fatalf("Filter[%d] = %d, want %d", i, v, 3*i)
		}
	}
}

func TestFilterEqualsPackOfMap(t *testing.T) {
	const n = 10000
	a := makeInts(n, func(i int) int { return i })
	pred := func(x int) bool { return x%5 == 0 }

	flags := seq.Tabulate(n, func(i int) bool { return pred(a.At(i)) })
	want := bulk.Pack[int](a, flags, 0)
	got := bulk.Filter[int](a, pred, 0)

	if !reflect.DeepEqual([]int(got), []int(want)) {
		t.Fatalf("Filter != Pack(map): got %v, want %v", got, want)
	}
}

func TestPackOutAndFilterOut(t *testing.T) {
	const n = 1000
	a := makeInts(n, func(i int) int { return i })
	f := boolsFromMod(n, 4, 0)

	out := make(seq.Seq[int], n)
	m := bulk.PackOut[int](a, f, out.Slice(), 0)
	if m != 250 {
		t.Fatalf("PackOut count = %d, want 250", m)
	}
	for i := 0; i < m; i++ {
		if out[i] != 4*i {
			t.Fatalf("PackOut[%d] = %d, want %d", i, out[i], 4*i)
		}
	}

	out2 := make(seq.Seq[int], n)
	m2 := bulk.FilterOut[int](a, out2.Slice(), func(x int) bool { return x%4 == 0 }, 0)
	if m2 != m {
		t.Fatalf("FilterOut count = %d, want %d", m2, m)
	}
	if !reflect.DeepEqual([]int(out)[:m], []int(out2)[:m2]) {
		t.Fatalf("PackOut and FilterOut disagree")
	}
}

func TestPackIndex(t *testing.T) {
	const n = 20
	f := boolsFromMod(n, 3, 1)
	got := bulk.PackIndex[int](f, 0)
	want := []int{1, 4, 7, 10, 13, 16, 19}
	if !reflect.DeepEqual([]int(got), want) {
		t.Fatalf("PackIndex = %v, want %v", got, want)
	}
}

func TestSplitTwoStability(t *testing.T) {
	const n = 100000
	a := makeInts(n, func(i int) int { return i })
	f := boolsFromMod(n, 2, 1)

	out, m := bulk.SplitTwo[int](a, f, 0)
	if m != 50000 {
		t.Fatalf("SplitTwo boundary = %d, want 50000", m)
	}
	for i := 0; i < m; i++ {
		if out.At(i) != 2*i {
			t.Fatalf("false region[%d] = %d, want %d", i, out.At(i), 2*i)
		}
	}
	for i := m; i < n; i++ {
		if out.At(i) != 2*(i-m)+1 {
			t.Fatalf("true region[%d] = %d, want %d", i, out.At(i), 2*(i-m)+1)
		}
	}
}

func classOfMod3(i int) byte { return byte(i % 3) }

func TestSplitThreeStability(t *testing.T) {
	const n = 9999
	a := seq.Tabulate(n, func(i int) int { return i })
	class := seq.Tabulate(n, func(i int) byte { return classOfMod3(i) })
	out := seq.New[int](n)

	m0, m1, err := bulk.SplitThree[int](a.Slice(), out.Slice(), class, 0)
	if err != nil {
		t.Fatalf("SplitThree returned error: %v", err)
	}

	var want0, want1, want2 []int
	for i := 0; i < n; i++ {
		switch classOfMod3(i) {
		case 0:
			want0 = append(want0, i)
		case 1:
			want1 = append(want1, i)
		default:
			want2 = append(want2, i)
		}
	}
	if m0 != len(want0) || m1 != len(want1) {
		t.Fatalf("counts = (%d,%d), want (%d,%d)", m0, m1, len(want0), len(want1))
	}
	for i, v := range want0 {
		if out.At(i) != v {
			t.Fatalf("class0[%d] = %d, want %d", i, out.At(i), v)
		}
	}
	for i, v := range want1 {
		if out.At(m0+i) != v {
			t.Fatalf("class1[%d] = %d, want %d", i, out.At(m0+i), v)
		}
	}
	for i, v := range want2 {
		if out.At(m0+m1+i) != v {
			t.Fatalf("class2[%d] = %d, want %d", i, out.At(m0+m1+i), v)
		}
	}
}

func TestSplitThreeRejectsAliasedInputOutput(t *testing.T) {
	const n = 100
	a := seq.New[int](n)
	class := seq.Tabulate(n, func(i int) byte { return classOfMod3(i) })

	_, _, err := bulk.SplitThree[int](a.Slice(), a.Slice(), class, 0)
	if err != bulk.ErrAliased {
		t.Fatalf("expected ErrAliased for aliased input/output, got %v", err)
	}
}
