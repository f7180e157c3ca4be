package sort

import (
	"sync"

	"github.com/exascience/timsort/internal"
	"github.com/exascience/timsort/parallel"
)

const msortGrainSize = 0x3000

// binarySearchEq returns the index of the first element of src[p:r+1]
// that is not less than x.
func binarySearchEq[T any](x T, src []T, p, r int, cmp func(a, b T) int) int {
	low, high := p, r+1
	if low > high {
		return low
	}
	for low < high {
		mid := int(uint(low+high) >> 1)
		if cmp(src[mid], x) >= 0 {
			high = mid
		} else {
			low = mid + 1
		}
	}
	return high
}

// binarySearchNeq returns the index of the first element of src[p:r+1]
// that is greater than x.
func binarySearchNeq[T any](x T, src []T, p, r int, cmp func(a, b T) int) int {
	low, high := p, r+1
	if low > high {
		return low
	}
	for low < high {
		mid := int(uint(low+high) >> 1)
		if cmp(x, src[mid]) < 0 {
			high = mid
		} else {
			low = mid + 1
		}
	}
	return high
}

// sMerge merges src[p1:r1+1] and src[p2:r2+1] into dst starting at p3.
func sMerge[T any](src []T, p1, r1, p2, r2 int, dst []T, p3 int, cmp func(a, b T) int) {
	for {
		if p2 > r2 {
			copy(dst[p3:], src[p1:r1+1])
			return
		}

		q1 := p1
		for (p1 <= r1) && cmp(src[p2], src[p1]) >= 0 {
			p1++
		}
		n1 := p1 - q1
		copy(dst[p3:p3+n1], src[q1:p1])
		p3 += n1

		if p1 > r1 {
			copy(dst[p3:], src[p2:r2+1])
			return
		}

		q2 := p2
		for (p2 <= r2) && cmp(src[p2], src[p1]) < 0 {
			p2++
		}
		n2 := p2 - q2
		copy(dst[p3:p3+n2], src[q2:p2])
		p3 += n2
	}
}

func pMerge[T any](src []T, p1, r1, p2, r2 int, dst []T, p3 int, cmp func(a, b T) int) {
	n1 := r1 - p1 + 1
	n2 := r2 - p2 + 1
	if (n1 + n2) < msortGrainSize {
		sMerge(src, p1, r1, p2, r2, dst, p3, cmp)
		return
	}
	if n1 > n2 {
		q1 := (p1 + r1) / 2
		q2 := binarySearchEq(src[q1], src, p2, r2, cmp)
		q3 := p3 + (q1 - p1) + (q2 - p2)
		dst[q3] = src[q1]
		parallel.Do(
			func() { pMerge(src, p1, q1-1, p2, q2-1, dst, p3, cmp) },
			func() { pMerge(src, q1+1, r1, q2, r2, dst, q3+1, cmp) },
		)
	} else {
		if n2 == 0 {
			return
		}
		q2 := (p2 + r2) / 2
		q1 := binarySearchNeq(src[q2], src, p1, r1, cmp)
		q3 := p3 + (q1 - p1) + (q2 - p2)
		dst[q3] = src[q2]
		parallel.Do(
			func() { pMerge(src, p1, q1-1, p2, q2-1, dst, p3, cmp) },
			func() { pMerge(src, q1, r1, q2+1, r2, dst, q3+1, cmp) },
		)
	}
}

// ParallelStableFunc sorts x like StableFunc, using a parallel
// implementation of merge sort, also known as cilksort, with StableFunc
// sorting the leaves.
//
// ParallelStableFunc is good for large core counts and large slices,
// but needs a shallow copy of x as additional temporary memory. It
// ignores WithStats.
func ParallelStableFunc[T any](x []T, cmp func(a, b T) int, opts ...Option) {
	// See https://en.wikipedia.org/wiki/Introduction_to_Algorithms and
	// https://www.clear.rice.edu/comp422/lecture-notes/ for details on the algorithm.
	cfg := newConfig(opts)
	cfg.stats = nil
	sSort := func(index, size int) {
		newTimSorter(x[index:index+size], cmp, cfg).sort()
	}
	size := len(x)
	grain := internal.ComputeGrainSize(size, msortGrainSize)
	if size < grain {
		sSort(0, size)
		return
	}
	var temp []T
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		temp = make([]T, size)
	}()
	var pSort func(int, int)
	pSort = func(index, size int) {
		if size < grain {
			sSort(index, size)
			return
		}
		q1 := size / 4
		q2 := q1 + q1
		q3 := q2 + q1
		parallel.Do(
			func() { pSort(index, q1) },
			func() { pSort(index+q1, q1) },
			func() { pSort(index+q2, q1) },
			func() { pSort(index+q3, size-q3) },
		)
		wg.Wait()
		parallel.Do(
			func() { pMerge(x, index, index+q1-1, index+q1, index+q2-1, temp, index, cmp) },
			func() { pMerge(x, index+q2, index+q3-1, index+q3, index+size-1, temp, index+q2, cmp) },
		)
		pMerge(temp, index, index+q2-1, index+q2, index+size-1, x, index, cmp)
	}
	pSort(0, size)
}
