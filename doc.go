// Package parsort provides functions and data structures for sorting large
// in-memory collections in parallel. While Go is primarily designed for
// concurrent programming, it is also usable to some extent for parallel
// programming, and this library uses goroutines to turn an otherwise
// sequential comparison sort into a parallel algorithm, with the goal to
// improve performance.
//
// Parsort provides the following subpackages:
//
// parsort/parallel provides a fork-join executor for running a function over
// an index range in a bounded number of parallel slices, in both a blocking
// form and a start/finish form that can be joined later.
//
// parsort/sequential provides sequential implementations of the functions
// from parsort/parallel, for testing and debugging purposes.
//
// parsort/sort provides a balanced parallel merge sort whose merge phase is
// a CPU implementation of the GPU merge path algorithm, so that two sorted
// ranges can be merged by several goroutines concurrently and independently.
//
// The root package holds the function types shared by the subpackages, and
// the computation of the effective number of threads for a given collection
// size.
package parsort
