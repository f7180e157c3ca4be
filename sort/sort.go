/*
Package sort provides an adaptive, stable merge sort for slices, also
known as Timsort, and a parallel stable sort that uses it as its
sequential base case.
*/
package sort

import (
	"cmp"
	"sync/atomic"

	"github.com/exascience/timsort/speculative"
)

/*
Stable sorts the slice x in ascending order, preserving the original
order of equal elements. Floating-point NaNs are ordered before other
values.

See StableFunc for the algorithm.
*/
func Stable[T cmp.Ordered](x []T, opts ...Option) {
	StableFunc(x, cmp.Compare[T], opts...)
}

/*
IsSorted reports whether x is sorted in ascending order.
*/
func IsSorted[T cmp.Ordered](x []T) bool {
	return IsSortedFunc(x, cmp.Compare[T])
}

const (
	// isSortedGrainSize is the size below which IsSortedFunc checks
	// sequentially.
	isSortedGrainSize = 0x500

	// serialCutoff elements are checked sequentially before going
	// parallel, so that unsorted input is usually rejected right away.
	serialCutoff = 10
)

/*
IsSortedFunc reports whether x is sorted in ascending order, with cmp
as the comparison function as defined by StableFunc.

For large slices, IsSortedFunc checks in parallel, so cmp must be safe
for concurrent use. It attempts to terminate early when the return
value is false.
*/
func IsSortedFunc[T any](x []T, cmp func(a, b T) int) bool {
	size := len(x)
	if size < isSortedGrainSize {
		for i := 1; i < size; i++ {
			if cmp(x[i], x[i-1]) < 0 {
				return false
			}
		}
		return true
	}
	for i := 1; i < serialCutoff; i++ {
		if cmp(x[i], x[i-1]) < 0 {
			return false
		}
	}
	var done int32
	defer atomic.StoreInt32(&done, 1)
	var pTest func(int, int) bool
	pTest = func(index, size int) bool {
		if size < isSortedGrainSize {
			for i := index; i < index+size; i++ {
				if ((i % 1024) == 0) && (atomic.LoadInt32(&done) != 0) {
					return false
				}
				if cmp(x[i], x[i-1]) < 0 {
					return false
				}
			}
			return true
		}
		half := size / 2
		return speculative.And(
			func() bool { return pTest(index, half) },
			func() bool { return pTest(index+half, size-half) },
		)
	}
	return pTest(serialCutoff, size-serialCutoff)
}

/*
IntSlice attaches the methods of sort.Interface to []int, sorting in
increasing order, as well as Sort and IsSorted methods that use the
functions of this package.
*/
type IntSlice []int

func (s IntSlice) Len() int {
	return len(s)
}

func (s IntSlice) Less(i, j int) bool {
	return s[i] < s[j]
}

func (s IntSlice) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}

// Sort sorts s with Stable.
func (s IntSlice) Sort(opts ...Option) {
	Stable([]int(s), opts...)
}

// IsSorted reports whether s is sorted in increasing order.
func (s IntSlice) IsSorted() bool {
	return IsSorted([]int(s))
}

// Ints sorts a slice of ints in increasing order.
func Ints(a []int, opts ...Option) {
	Stable(a, opts...)
}

// IntsAreSorted determines whether a slice of ints is sorted in
// increasing order.
func IntsAreSorted(a []int) bool {
	return IsSorted(a)
}

/*
Float64Slice attaches the methods of sort.Interface to []float64,
sorting in increasing order with NaNs first, as well as Sort and
IsSorted methods that use the functions of this package.
*/
type Float64Slice []float64

func (s Float64Slice) Len() int {
	return len(s)
}

func (s Float64Slice) Less(i, j int) bool {
	return cmp.Less(s[i], s[j])
}

func (s Float64Slice) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}

// Sort sorts s with Stable.
func (s Float64Slice) Sort(opts ...Option) {
	Stable([]float64(s), opts...)
}

// IsSorted reports whether s is sorted in increasing order.
func (s Float64Slice) IsSorted() bool {
	return IsSorted([]float64(s))
}

// Float64s sorts a slice of float64s in increasing order, with NaNs
// first.
func Float64s(a []float64, opts ...Option) {
	Stable(a, opts...)
}

// Float64sAreSorted determines whether a slice of float64s is sorted
// in increasing order.
func Float64sAreSorted(a []float64) bool {
	return IsSorted(a)
}

/*
StringSlice attaches the methods of sort.Interface to []string,
sorting in increasing order, as well as Sort and IsSorted methods that
use the functions of this package.
*/
type StringSlice []string

func (s StringSlice) Len() int {
	return len(s)
}

func (s StringSlice) Less(i, j int) bool {
	return s[i] < s[j]
}

func (s StringSlice) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}

// Sort sorts s with Stable.
func (s StringSlice) Sort(opts ...Option) {
	Stable([]string(s), opts...)
}

// IsSorted reports whether s is sorted in increasing order.
func (s StringSlice) IsSorted() bool {
	return IsSorted([]string(s))
}

// Strings sorts a slice of strings in increasing order.
func Strings(a []string, opts ...Option) {
	Stable(a, opts...)
}

// StringsAreSorted determines whether a slice of strings is sorted in
// increasing order.
func StringsAreSorted(a []string) bool {
	return IsSorted(a)
}
