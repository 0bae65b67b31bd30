package parsort

import (
	"fmt"
	"runtime"
)

type (
	// An IndexFunc is a function that receives a single index of a range,
	// with low <= index < high.
	IndexFunc func(index int)

	// An ErrIndexFunc is a function that receives a single index of a
	// range, with low <= index < high, and returns an error value or nil.
	ErrIndexFunc func(index int) error
)

/*
EffectiveThreads determines the number of threads actually used by the
functions in the sort subpackage for a collection of the given size.

A threads parameter value of 0 requests the available hardware parallelism,
as determined by runtime.GOMAXPROCS(0). Any requested value is then capped
so that each thread gets at least 128 elements on average, which avoids the
cost of spawning many goroutines for small sorts.

More specifically, the return value is the minimum of the requested number
of threads and max(1, (size+64)/128).

EffectiveThreads panics if size or threads is negative.
*/
func EffectiveThreads(size, threads int) int {
	if size < 0 {
		panic(fmt.Sprintf("invalid size: %v", size))
	}
	if threads < 0 {
		panic(fmt.Sprintf("invalid number of threads: %v", threads))
	}
	if threads == 0 {
		threads = runtime.GOMAXPROCS(0)
	}
	maxThreads := (size + 64) / 128
	if maxThreads < 1 {
		maxThreads = 1
	}
	if threads > maxThreads {
		threads = maxThreads
	}
	return threads
}
