// Package timsort provides an adaptive, stable, comparison-based merge sort
// for Go slices, commonly known as Timsort, together with the tuning
// parameters it is governed by.
//
// The sort scans its input for natural runs (maximal non-descending or
// strictly descending stretches, the latter reversed in place), extends short
// runs to a minimum length with binary insertion sort, and keeps the pending
// runs on a small stack whose size invariant bounds both the stack depth and
// the total merge cost. Merges copy only the shorter of the two runs into a
// temporary buffer and switch to galloping (exponential search) when one side
// keeps winning.
//
// Timsort provides the following subpackages:
//
// timsort/sort provides the sorting functions themselves: Stable and
// StableFunc for arbitrary slices, Ints, Float64s and Strings for common
// element types, and ParallelStableFunc, which uses the adaptive merge sort
// as the sequential base case of a parallel merge sort.
//
// timsort/parallel provides the fork/join helpers ParallelStableFunc is built
// on.
//
// timsort/gen provides deterministic workload generators for testing and
// benchmarking.
//
// The timsort command in cmd/timsort reads or generates a sequence of values
// and prints it sorted.
//
// See https://github.com/python/cpython/blob/main/Objects/listsort.txt for a
// detailed description of the underlying algorithm.
package timsort
