package sort

import (
	"github.com/mergepath/parsort/internal"
)

// The merge path partitioner is a CPU implementation of the parallel merge
// developed for GPUs in "GPU Merge Path: A GPU Merging Algorithm" by Green,
// McColl, and Bader, Proceedings of the 26th ACM International Conference
// on Supercomputing. It divides the output of a merge of two sorted ranges
// into chunks that can be produced concurrently and independently, with no
// chunk needing data from another chunk's boundary decision.

// mergePath determines, for the output element of a merge at position diag,
// how many elements of a belong strictly before it; the remaining diag
// elements come from b. The merge path is monotone in diag, so the result
// is found by binary search over the candidate split points.
//
// An a element goes below the diagonal whenever the b element across from
// it does not compare less, so boundaries inside a run of equal elements
// place the whole a side first, consistent with the mergeForward tie rule.
func mergePath[T any](a, b []T, diag int, less func(a, b T) bool) int {
	low := diag - len(b)
	if low < 0 {
		low = 0
	}
	high := diag
	if high > len(a) {
		high = len(a)
	}
	for low < high {
		mid := low + (high-low)>>1
		if !less(b[diag-1-mid], a[mid]) {
			low = mid + 1
		} else {
			high = mid
		}
	}
	return low
}

// mergePaths divides the output of a merge of a and b into len(mpi)-1
// chunks of spacing elements each and fills mpi with the number of elements
// of a below each chunk boundary. The resulting table is monotonically
// non-decreasing, with mpi[0] = 0 and mpi[len(mpi)-1] = len(a).
func mergePaths[T any](mpi []int, a, b []T, spacing float64, less func(a, b T) bool) {
	chunks := len(mpi) - 1
	mpi[0] = 0
	mpi[chunks] = len(a)
	for k := 1; k < chunks; k++ {
		diag := internal.Round(float64(k) * spacing)
		mpi[k] = mergePath(a, b, diag, less)
	}
}
