// Package parallel provides a fork-join executor for running a function
// over an index range in a bounded number of parallel slices.
package parallel

import (
	"sync"

	"github.com/mergepath/parsort"
	"github.com/mergepath/parsort/internal"
)

// A Group is a handle on the goroutines spawned by ForStart. It must be
// joined with Finish before any result of the group is used.
type Group struct {
	wg     sync.WaitGroup
	panics []interface{}
}

// Finish blocks until all slices of the group have terminated.
//
// If one or more slice invocations panicked, the corresponding goroutines
// recovered the panics, and Finish panics with the left-most recovered
// panic value.
func (g *Group) Finish() {
	g.wg.Wait()
	for _, p := range g.panics {
		if p != nil {
			panic(p)
		}
	}
}

// For receives a range, a segment count n, and an index function f, divides
// the range into segments, and invokes the index function for every index
// of the half-open interval from low to high, including low but excluding
// high.
//
// The range is specified by a low and high integer, with low <= high. If n
// is 0, a reasonable default is used that takes runtime.GOMAXPROCS(0) into
// account; n is clamped to the size of the range, so no empty segment is
// ever scheduled. Segment bounds are computed by multiplying a
// floating-point step by the segment index and rounding to nearest, so
// segment sizes differ by at most one.
//
// The first n-1 segments run in their own goroutines; the last segment
// always runs on the calling goroutine, and For returns only when all
// segments have terminated. The order in which segments run is otherwise
// unspecified, so f must be safe to invoke concurrently for distinct
// indices.
//
// For panics if high < low, or if n < 0.
//
// If one or more invocations of f panic, the corresponding goroutines
// recover the panics, and For eventually panics with the left-most
// recovered panic value.
func For(low, high, n int, f parsort.IndexFunc) {
	n = internal.ComputeNofSegments(low, high, n)
	size := high - low
	if size == 0 {
		return
	}
	step := float64(size) / float64(n)
	panics := make([]interface{}, n-1)
	var wg sync.WaitGroup
	for seg := 0; seg < n-1; seg++ {
		lb := internal.Round(float64(seg) * step)
		le := internal.Round(float64(seg+1) * step)
		wg.Add(1)
		go func(seg, lb, le int) {
			defer func() {
				panics[seg] = internal.WrapPanic(recover())
				wg.Done()
			}()
			for i := lb; i < le; i++ {
				f(low + i)
			}
		}(seg, lb, le)
	}
	for i := internal.Round(float64(n-1) * step); i < size; i++ {
		f(low + i)
	}
	wg.Wait()
	for _, p := range panics {
		if p != nil {
			panic(p)
		}
	}
}

// ErrFor receives a range, a segment count n, and an index function f,
// divides the range into segments, and invokes the index function for every
// index of the half-open interval from low to high, including low but
// excluding high.
//
// The range, segment, and goroutine semantics are the same as for For.
// ErrFor returns only when all segments have terminated, returning the
// left-most error value that is different from nil.
//
// ErrFor panics if high < low, or if n < 0.
//
// If one or more invocations of f panic, the corresponding goroutines
// recover the panics, and ErrFor eventually panics with the left-most
// recovered panic value.
func ErrFor(low, high, n int, f parsort.ErrIndexFunc) (err error) {
	n = internal.ComputeNofSegments(low, high, n)
	size := high - low
	if size == 0 {
		return nil
	}
	step := float64(size) / float64(n)
	panics := make([]interface{}, n-1)
	errs := make([]error, n)
	var wg sync.WaitGroup
	for seg := 0; seg < n-1; seg++ {
		lb := internal.Round(float64(seg) * step)
		le := internal.Round(float64(seg+1) * step)
		wg.Add(1)
		go func(seg, lb, le int) {
			defer func() {
				panics[seg] = internal.WrapPanic(recover())
				wg.Done()
			}()
			for i := lb; i < le; i++ {
				if nerr := f(low + i); nerr != nil {
					errs[seg] = nerr
					return
				}
			}
		}(seg, lb, le)
	}
	for i := internal.Round(float64(n-1) * step); i < size; i++ {
		if nerr := f(low + i); nerr != nil {
			errs[n-1] = nerr
			break
		}
	}
	wg.Wait()
	for _, p := range panics {
		if p != nil {
			panic(p)
		}
	}
	for _, nerr := range errs {
		if nerr != nil {
			return nerr
		}
	}
	return nil
}

// ForStart is like For, except that it spawns every segment in its own
// goroutine and returns immediately with a Group, without waiting for the
// segments to terminate. The caller can thus run its own work concurrently
// with the group, and launch several independent groups side by side,
// before joining them with Finish.
//
// Panics recovered in the segment goroutines are re-panicked by Finish, not
// by ForStart.
//
// ForStart panics if high < low, or if n < 0.
func ForStart(low, high, n int, f parsort.IndexFunc) *Group {
	n = internal.ComputeNofSegments(low, high, n)
	g := new(Group)
	size := high - low
	if size == 0 {
		return g
	}
	g.panics = make([]interface{}, n)
	step := float64(size) / float64(n)
	for seg := 0; seg < n; seg++ {
		lb := internal.Round(float64(seg) * step)
		le := internal.Round(float64(seg+1) * step)
		if seg == n-1 {
			le = size
		}
		g.wg.Add(1)
		go func(seg, lb, le int) {
			defer func() {
				g.panics[seg] = internal.WrapPanic(recover())
				g.wg.Done()
			}()
			for i := lb; i < le; i++ {
				f(low + i)
			}
		}(seg, lb, le)
	}
	return g
}
