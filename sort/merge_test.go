package sort

import (
	"math/rand"
	"reflect"
	"testing"

	"golang.org/x/exp/slices"
)

type tagged struct {
	key int
	tag string
}

func taggedLess(a, b tagged) bool {
	return a.key < b.key
}

func TestMergeTieBreak(t *testing.T) {
	// all keys equal: the a range must be emitted before the b range,
	// regardless of the chunk count
	src := []tagged{{2, "a"}, {2, "b"}, {2, "c"}}
	for _, threads := range []int{1, 2, 3} {
		dst := make([]tagged, 3)
		parallelMerge(dst, src, 0, 1, 2, 2, 0, taggedLess, threads)
		want := []tagged{{2, "a"}, {2, "b"}, {2, "c"}}
		if !reflect.DeepEqual(dst, want) {
			t.Errorf("threads=%v: got %v, want %v", threads, dst, want)
		}
	}
}

func TestMergeTieBreakInterleaved(t *testing.T) {
	// on every key collision the a element goes first
	src := []tagged{
		{1, "a1"}, {2, "a2"}, {2, "a3"}, {4, "a4"}, // a range
		{2, "b1"}, {3, "b2"}, {4, "b3"}, // b range
	}
	dst := make([]tagged, 7)
	parallelMerge(dst, src, 0, 3, 4, 6, 0, taggedLess, 2)
	want := []tagged{
		{1, "a1"}, {2, "a2"}, {2, "a3"}, {2, "b1"}, {3, "b2"}, {4, "a4"}, {4, "b3"},
	}
	if !reflect.DeepEqual(dst, want) {
		t.Errorf("got %v, want %v", dst, want)
	}
}

func TestMergeTieBreakAtChunkBoundaries(t *testing.T) {
	// long runs of equal keys force chunk boundaries inside the runs; the
	// chunked merge must still emit all a elements of a key before the b
	// elements of that key, for every chunk count
	src := make([]tagged, 0, 240)
	for i := 0; i < 120; i++ {
		src = append(src, tagged{key: i / 30, tag: "a"})
	}
	for i := 0; i < 120; i++ {
		src = append(src, tagged{key: i / 30, tag: "b"})
	}
	want := make([]tagged, 240)
	mergeForward(want, src, 0, 119, 120, 239, 0, taggedLess)
	for _, threads := range []int{2, 3, 4, 7, 8} {
		dst := make([]tagged, 240)
		parallelMerge(dst, src, 0, 119, 120, 239, 0, taggedLess, threads)
		if !reflect.DeepEqual(dst, want) {
			t.Errorf("threads=%v: tie order differs at a chunk boundary", threads)
		}
	}
}

func TestMergeForwardOffsets(t *testing.T) {
	// non-adjacent source ranges, destination offset by 2
	src := []int{10, 30, 50, -1, -1, 20, 40, 60, 70}
	dst := make([]int, 9)
	mergeForward(dst, src, 0, 2, 5, 8, 2, func(a, b int) bool { return a < b })
	want := []int{0, 0, 10, 20, 30, 40, 50, 60, 70}
	if !reflect.DeepEqual(dst, want) {
		t.Errorf("got %v, want %v", dst, want)
	}
}

func TestParallelMergeEmptyB(t *testing.T) {
	// the leftover merge of the final round can see an empty b range; the
	// merge then degrades to a parallel copy
	src := []int{1, 2, 3, 4, 5}
	dst := make([]int, 5)
	parallelMerge(dst, src, 0, 4, 5, 4, 0, func(a, b int) bool { return a < b }, 2)
	if !reflect.DeepEqual(dst, src) {
		t.Errorf("got %v, want %v", dst, src)
	}
}

func TestParallelMergeDisjointValues(t *testing.T) {
	// all of a sorts before all of b, so most chunks are pure copies
	src := make([]int, 0, 200)
	for i := 0; i < 100; i++ {
		src = append(src, i)
	}
	for i := 0; i < 100; i++ {
		src = append(src, 1000+i)
	}
	dst := make([]int, 200)
	parallelMerge(dst, src, 0, 99, 100, 199, 0, func(a, b int) bool { return a < b }, 4)
	for i := 1; i < len(dst); i++ {
		if dst[i] < dst[i-1] {
			t.Fatalf("output not sorted at %v: %v > %v", i, dst[i-1], dst[i])
		}
	}
	if dst[0] != 0 || dst[199] != 1099 {
		t.Errorf("endpoints wrong: got %v and %v", dst[0], dst[199])
	}
}

func TestParallelMergeRandom(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for _, threads := range []int{1, 2, 3, 5, 8} {
		aLen := 1 + r.Intn(2000)
		bLen := 1 + r.Intn(2000)
		src := make([]int, aLen+bLen)
		for i := range src {
			src[i] = r.Intn(500)
		}
		less := func(a, b int) bool { return a < b }
		slices.SortFunc(src[:aLen], less)
		slices.SortFunc(src[aLen:], less)

		want := make([]int, len(src))
		mergeForward(want, src, 0, aLen-1, aLen, len(src)-1, 0, less)

		dst := make([]int, len(src))
		parallelMerge(dst, src, 0, aLen-1, aLen, len(src)-1, 0, less, threads)
		if !reflect.DeepEqual(dst, want) {
			t.Errorf("threads=%v: parallel merge differs from sequential merge", threads)
		}
	}
}
