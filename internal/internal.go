package internal

import (
	"errors"
	"fmt"
	"math"
	"runtime"
	"runtime/debug"
)

// ComputeNofSegments clamps the number of segments n for the range from low
// to high. If n is 0, a default is used that takes runtime.GOMAXPROCS(0)
// into account. The result never exceeds the size of the range, and is 1
// for the empty range.
func ComputeNofSegments(low, high, n int) (segments int) {
	switch size := high - low; {
	case size > 0:
		switch {
		case n == 0:
			segments = runtime.GOMAXPROCS(0)
		case n > 0:
			segments = n
		default:
			panic(fmt.Sprintf("invalid number of segments: %v", n))
		}
		if segments > size {
			segments = size
		}
	case size == 0:
		segments = 1
	default:
		panic(fmt.Sprintf("invalid range: %v:%v", low, high))
	}
	return
}

// Round rounds to the nearest integer, half away from zero. Segment bounds
// are computed by multiplying a floating-point step by the segment index
// and rounding, which guarantees that segment sizes differ by at most one.
func Round(x float64) int {
	return int(math.Round(x))
}

type runtimeError struct{ error }

func (runtimeError) RuntimeError() {}

// WrapPanic adds stack trace information to a recovered panic.
func WrapPanic(p interface{}) interface{} {
	if p != nil {
		s := fmt.Sprintf("%v\n%s\nrethrown at", p, debug.Stack())
		if _, isError := p.(error); isError {
			r := errors.New(s)
			if _, isRuntimeError := p.(runtime.Error); isRuntimeError {
				return runtimeError{r}
			}
			return r
		}
		return s
	}
	return nil
}
