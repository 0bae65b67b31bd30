// Package sequential provides sequential implementations of the functions
// provided by the parallel package. This is useful for testing and
// debugging.
//
// It is not recommended to use the implementations of this package for any
// other purpose, because they add no parallelism while keeping the range
// checking overhead.
package sequential

import (
	"github.com/mergepath/parsort"
	"github.com/mergepath/parsort/internal"
)

// For receives a range, a segment count n, and an index function f, and
// invokes the index function for every index of the half-open interval from
// low to high sequentially, including low but excluding high.
//
// For panics if high < low, or if n < 0.
func For(low, high, n int, f parsort.IndexFunc) {
	internal.ComputeNofSegments(low, high, n)
	for i := low; i < high; i++ {
		f(i)
	}
}

// ErrFor receives a range, a segment count n, and an index function f, and
// invokes the index function for every index of the half-open interval from
// low to high sequentially, including low but excluding high, stopping at
// and returning the first error value that is different from nil.
//
// ErrFor panics if high < low, or if n < 0.
func ErrFor(low, high, n int, f parsort.ErrIndexFunc) error {
	internal.ComputeNofSegments(low, high, n)
	for i := low; i < high; i++ {
		if err := f(i); err != nil {
			return err
		}
	}
	return nil
}
