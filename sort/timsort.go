package sort

import (
	"math/bits"

	"github.com/exascience/timsort"
)

// A run is a sorted stretch data[base:base+len] pending on the run stack.
type run struct {
	base, len int
}

type timSorter[T any] struct {
	data []T
	cmp  func(a, b T) int

	minMerge int

	// gallop is the configured galloping threshold, minGallop the
	// current one. minGallop is raised for data that does not gallop
	// well and lowered for data that does.
	gallop    int
	minGallop int

	runs  []run
	stats *Stats
}

func newTimSorter[T any](data []T, cmp func(a, b T) int, cfg config) *timSorter[T] {
	s := &timSorter[T]{
		data:      data,
		cmp:       cmp,
		minMerge:  cfg.tuning.MinMerge,
		gallop:    cfg.tuning.MinGallop,
		minGallop: cfg.tuning.MinGallop,
		stats:     cfg.stats,
	}
	if st := s.stats; st != nil {
		*st = Stats{}
		s.cmp = func(a, b T) int {
			st.Comparisons++
			return cmp(a, b)
		}
	}
	return s
}

/*
StableFunc sorts the slice x in ascending order as determined by the
cmp function, preserving the original order of elements that cmp
reports as equal. cmp(a, b) should return a negative number when a <
b, a positive number when a > b, and zero when a == b.

StableFunc uses an adaptive merge sort, also known as Timsort. It
performs O(n log n) comparisons in the worst case, and O(n) when x
consists of a few long ascending or descending runs, such as when x
is already sorted. Apart from a small run stack, it allocates
temporary memory only for the duration of each merge, at most len(x)/2
elements.

StableFunc does not detect a cmp function that is not a strict weak
ordering. The result is then unspecified, but still a permutation of
the input.
*/
func StableFunc[T any](x []T, cmp func(a, b T) int, opts ...Option) {
	newTimSorter(x, cmp, newConfig(opts)).sort()
}

func (s *timSorter[T]) sort() {
	lo, hi := 0, len(s.data)
	nRemaining := hi - lo
	if nRemaining < 2 {
		return
	}

	if nRemaining < s.minMerge {
		if s.stats != nil {
			s.stats.MinRun = nRemaining
		}
		initRunLen := s.countRunAndMakeAscending(lo, hi)
		s.binarySort(lo, hi, lo+initRunLen)
		s.pushRun(lo, nRemaining)
		return
	}

	minRun := timsort.MinRunLength(nRemaining, s.minMerge)
	if s.stats != nil {
		s.stats.MinRun = minRun
	}
	s.runs = make([]run, 0, maxStackDepth(nRemaining))
	for nRemaining > 0 {
		runLen := s.nextRun(lo, hi, minRun)
		s.pushRun(lo, runLen)
		s.mergeCollapse()
		lo += runLen
		nRemaining -= runLen
	}
	s.mergeForceCollapse()
}

// maxStackDepth bounds the run stack for n elements. Run lengths grow
// at least as fast as the Fibonacci numbers from the top of the stack
// down, so the depth stays below log_φ(n) + 2.
func maxStackDepth(n int) int {
	return bits.Len(uint(n))*3/2 + 2
}

// nextRun finds the run starting at lo, extending it to minRun
// elements (or to hi, whichever comes first) if it is shorter, and
// returns its length.
func (s *timSorter[T]) nextRun(lo, hi, minRun int) int {
	runLen := s.countRunAndMakeAscending(lo, hi)
	if runLen < minRun {
		force := minRun
		if hi-lo < force {
			force = hi - lo
		}
		s.binarySort(lo, lo+force, lo+runLen)
		runLen = force
	}
	return runLen
}

func (s *timSorter[T]) pushRun(base, length int) {
	s.runs = append(s.runs, run{base, length})
	if s.stats != nil {
		s.stats.Runs++
		if len(s.runs) > s.stats.MaxStackDepth {
			s.stats.MaxStackDepth = len(s.runs)
		}
	}
}

/*
mergeCollapse merges runs until the run stack satisfies, from the
bottom R[0] to the top:

	R[i].len > R[i+1].len + R[i+2].len
	R[i].len > R[i+1].len

Of the two pairs that can restore the first condition, the one with
the smaller outer run is merged, the one nearest the top on ties.
Checking R[n-2] as well as R[n-1] keeps the condition valid for the
whole stack, not only for its top three entries.
*/
func (s *timSorter[T]) mergeCollapse() {
	for len(s.runs) > 1 {
		n := len(s.runs) - 2
		r := s.runs
		if n > 0 && r[n-1].len <= r[n].len+r[n+1].len ||
			n > 1 && r[n-2].len <= r[n-1].len+r[n].len {
			if r[n-1].len < r[n+1].len {
				n--
			}
		} else if r[n].len > r[n+1].len {
			break
		}
		s.mergeAt(n)
	}
}

// mergeForceCollapse merges the two topmost runs until only one run,
// covering the whole slice, remains.
func (s *timSorter[T]) mergeForceCollapse() {
	for len(s.runs) > 1 {
		s.mergeAt(len(s.runs) - 2)
	}
}

// mergeAt merges the runs at stack indices i and i+1. i must be the
// second or third entry from the top.
func (s *timSorter[T]) mergeAt(i int) {
	base1, len1 := s.runs[i].base, s.runs[i].len
	base2, len2 := s.runs[i+1].base, s.runs[i+1].len

	s.runs[i].len = len1 + len2
	if i == len(s.runs)-3 {
		s.runs[i+1] = s.runs[i+2]
	}
	s.runs = s.runs[:len(s.runs)-1]
	if s.stats != nil {
		s.stats.Merges++
	}

	// Elements of run 1 not greater than the first element of run 2
	// are already in place.
	k := s.gallopRight(s.data[base2], s.data[base1:base1+len1], 0)
	base1 += k
	len1 -= k
	if len1 == 0 {
		return
	}

	// So are elements of run 2 not less than the last element of run 1.
	len2 = s.gallopLeft(s.data[base1+len1-1], s.data[base2:base2+len2], len2-1)
	if len2 == 0 {
		return
	}

	if len1 <= len2 {
		s.mergeLo(base1, len1, base2, len2)
	} else {
		s.mergeHi(base1, len1, base2, len2)
	}
}
