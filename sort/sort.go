/*
Package sort provides a balanced parallel merge sort over slices with a
caller-supplied comparator.

The input is split into roughly equal segments sized by the thread budget,
each segment is sorted independently in parallel with a sequential
comparison sort, and the sorted segments are then combined by rounds of
pairwise parallel merges, ping-ponging between the input slice and one
scratch buffer, until one fully sorted segment remains in the input slice.
Each pairwise merge is itself parallel: a merge path partition divides the
merged output into chunks that are produced concurrently and independently.
*/
package sort

import (
	"math"
	"sync/atomic"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"

	"github.com/mergepath/parsort"
	"github.com/mergepath/parsort/internal"
	"github.com/mergepath/parsort/parallel"
)

func ceilDiv(a, b int) int {
	if a%b == 0 {
		return a / b
	}
	return a/b + 1
}

// SortFunc sorts data in place, using less to compare elements and up to
// threads parallel goroutines. A threads value of 0 requests the available
// hardware parallelism; the value actually used is capped as documented at
// parsort.EffectiveThreads. The result is the same for every threads value.
//
// less must define a strict weak ordering, must be free of side effects,
// and must be safe to call concurrently. When neither of two elements
// compares less than the other, their output order is determined by the
// merge tie rule: the element of the left-hand merge range is emitted
// first.
//
// If a call to less panics during the sort, the panic is re-raised on the
// calling goroutine, and the contents of data are unspecified.
func SortFunc[T any](data []T, less func(a, b T) bool, threads int) {
	n := len(data)
	if n == 0 {
		return
	}
	threads = parsort.EffectiveThreads(n, threads)
	if threads <= 1 {
		slices.SortFunc(data, less)
		return
	}

	// phase 1: sort threads segments of data independently, with segment
	// sizes differing by at most one
	delta := float64(n) / float64(threads)
	parallel.For(0, threads, threads, func(i int) {
		lb := internal.Round(float64(i) * delta)
		le := internal.Round(float64(i+1) * delta)
		if i == threads-1 {
			le = n
		}
		slices.SortFunc(data[lb:le], less)
	})

	// phase 2: merge pairs of adjacent segments over ceil(log2(threads))
	// rounds, ping-ponging between data and the scratch buffer. Each round
	// performs two merge passes, one in each direction, so the sorted
	// result always ends up back in data.
	scratch := make([]T, n)
	src, dst := data, scratch
	depth := int(math.Ceil(math.Log2(float64(threads))))
	for d := depth; d > 0; d -= 2 {
		for pass := 0; pass < 2; pass++ {
			// loops full pairs of delta-sized segments fit in this pass; if
			// they do not cover all of data, the trailing segment plus
			// whatever follows it forms one leftover merge. The thread
			// budget is divided over all of these tasks.
			loops := int(float64(n) / (2 * delta))
			loStart := float64(loops) * 2 * delta
			leftover := internal.Round(loStart) < n
			tasks := loops
			if leftover {
				tasks++
			}
			pmThreads := ceilDiv(threads, tasks)
			loThreads := threads - loops*pmThreads

			group := parallel.ForStart(0, loops, loops, func(i int) {
				lb := internal.Round(float64(2*i) * delta)
				lm := internal.Round(float64(2*i+1) * delta)
				le := internal.Round(float64(2*i+2) * delta)
				parallelMerge(dst, src, lb, lm-1, lm, le-1, lb, less, pmThreads)
			})
			if leftover {
				lb := internal.Round(loStart)
				mid := internal.Round(loStart + delta)
				if mid > n {
					mid = n
				}
				parallelMerge(dst, src, lb, mid-1, mid, n-1, lb, less, loThreads)
			}
			group.Finish()

			delta *= 2
			src, dst = dst, src
		}
	}
}

// Sort sorts data in place in increasing order, using up to threads
// parallel goroutines. See SortFunc for the threads semantics.
func Sort[T constraints.Ordered](data []T, threads int) {
	SortFunc(data, func(a, b T) bool { return a < b }, threads)
}

// IsSortedFunc determines in parallel whether data is sorted in
// non-decreasing order under less, using up to threads goroutines.
// Goroutines stop checking soon after any of them has found an inversion.
func IsSortedFunc[T any](data []T, less func(a, b T) bool, threads int) bool {
	n := len(data)
	if n < 2 {
		return true
	}
	threads = parsort.EffectiveThreads(n, threads)
	if threads <= 1 {
		return slices.IsSortedFunc(data, less)
	}
	var unsorted int32
	// partition the n-1 adjacent pairs; pair i compares data[i] with
	// data[i+1], so segment boundaries are covered as well
	delta := float64(n-1) / float64(threads)
	parallel.For(0, threads, threads, func(k int) {
		lb := internal.Round(float64(k) * delta)
		le := internal.Round(float64(k+1) * delta)
		if k == threads-1 {
			le = n - 1
		}
		for i := lb; i < le; i++ {
			if ((i % 1024) == 0) && (atomic.LoadInt32(&unsorted) != 0) {
				return
			}
			if less(data[i+1], data[i]) {
				atomic.StoreInt32(&unsorted, 1)
				return
			}
		}
	})
	return atomic.LoadInt32(&unsorted) == 0
}

// IsSorted determines in parallel whether data is sorted in increasing
// order, using up to threads goroutines.
func IsSorted[T constraints.Ordered](data []T, threads int) bool {
	return IsSortedFunc(data, func(a, b T) bool { return a < b }, threads)
}
