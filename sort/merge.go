package sort

import (
	"github.com/mergepath/parsort/internal"
	"github.com/mergepath/parsort/parallel"
)

// mergeForward merges the two sorted ranges src[aBeg:aEnd+1] and
// src[bBeg:bEnd+1] into dst, starting at dst[dBeg]. The end indices are
// inclusive, and the two ranges do not have to be adjacent in memory.
//
// The last elements of the two ranges are compared first to determine which
// range will be exhausted first during the compare-and-copy loop; the rest
// of the other range is then copied in bulk. An element is taken from the b
// range only when it is strictly less than the current a element, so equal
// elements are always emitted from the a range first.
func mergeForward[T any](dst, src []T, aBeg, aEnd, bBeg, bEnd, dBeg int, less func(a, b T) bool) {
	if !less(src[bEnd], src[aEnd]) {
		// the a range is completely copied first, so only compare up to the
		// end of a
		for aBeg <= aEnd {
			if less(src[bBeg], src[aBeg]) {
				dst[dBeg] = src[bBeg]
				bBeg++
			} else {
				dst[dBeg] = src[aBeg]
				aBeg++
			}
			dBeg++
		}
		copy(dst[dBeg:], src[bBeg:bEnd+1])
	} else {
		// the b range is completely copied first, so only compare up to the
		// end of b
		for bBeg <= bEnd {
			if less(src[bBeg], src[aBeg]) {
				dst[dBeg] = src[bBeg]
				bBeg++
			} else {
				dst[dBeg] = src[aBeg]
				aBeg++
			}
			dBeg++
		}
		copy(dst[dBeg:], src[aBeg:aEnd+1])
	}
}

// parallelMerge merges the two sorted ranges src[aBeg:aEnd+1] and
// src[bBeg:bEnd+1] into dst, starting at dst[dBeg], using up to threads
// parallel chunks. The end indices are inclusive, and the two ranges do not
// have to be adjacent in memory.
//
// The output is divided into threads chunks of equal size, up to rounding.
// mergePaths determines which elements of the two source ranges go into
// each chunk, and the chunks are then produced independently via
// parallel.For, each with a sequential mergeForward, or with a plain copy
// when all of a chunk's elements come from one range.
func parallelMerge[T any](dst, src []T, aBeg, aEnd, bBeg, bEnd, dBeg int, less func(a, b T) bool, threads int) {
	if threads < 1 {
		threads = 1
	}
	aCount := aEnd - aBeg + 1
	bCount := bEnd - bBeg + 1
	spacing := float64(aCount+bCount) / float64(threads)
	mpi := make([]int, threads+1)
	mergePaths(mpi, src[aBeg:aBeg+aCount], src[bBeg:bBeg+bCount], spacing, less)

	parallel.For(0, threads, threads, func(chunk int) {
		// the source index ranges for this chunk, and where in dst this
		// chunk starts writing
		grid := internal.Round(float64(chunk) * spacing)
		a0 := mpi[chunk] + aBeg
		a1 := mpi[chunk+1] + aBeg
		b0 := (grid - mpi[chunk]) + bBeg
		b1 := (internal.Round(float64(chunk+1)*spacing) - mpi[chunk+1]) + bBeg
		wtid := dBeg + grid

		switch {
		case a0 == a1:
			copy(dst[wtid:], src[b0:b1])
		case b0 == b1:
			copy(dst[wtid:], src[a0:a1])
		default:
			mergeForward(dst, src, a0, a1-1, b0, b1-1, wtid, less)
		}
	})
}
