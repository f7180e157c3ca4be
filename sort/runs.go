package sort

// countRunAndMakeAscending returns the length of the run beginning at
// lo, with lo < hi. A run is either non-descending or strictly
// descending; descending runs are reversed in place. Strictness keeps
// the reversal stable.
func (s *timSorter[T]) countRunAndMakeAscending(lo, hi int) int {
	runHi := lo + 1
	if runHi == hi {
		return 1
	}

	if s.cmp(s.data[runHi], s.data[lo]) < 0 {
		runHi++
		for runHi < hi && s.cmp(s.data[runHi], s.data[runHi-1]) < 0 {
			runHi++
		}
		reverseRange(s.data, lo, runHi)
		if s.stats != nil {
			s.stats.Reversals++
		}
	} else {
		runHi++
		for runHi < hi && s.cmp(s.data[runHi], s.data[runHi-1]) >= 0 {
			runHi++
		}
	}

	return runHi - lo
}

func reverseRange[T any](data []T, lo, hi int) {
	hi--
	for lo < hi {
		data[lo], data[hi] = data[hi], data[lo]
		lo++
		hi--
	}
}

// binarySort sorts data[lo:hi], of which data[lo:start] is already
// sorted, by inserting each remaining element after the last element
// not greater than it. The insertion point is found by binary search
// and the tail is moved with a single copy.
func (s *timSorter[T]) binarySort(lo, hi, start int) {
	if start == lo {
		start++
	}
	for ; start < hi; start++ {
		pivot := s.data[start]
		left, right := lo, start
		for left < right {
			mid := int(uint(left+right) >> 1)
			if s.cmp(pivot, s.data[mid]) < 0 {
				right = mid
			} else {
				left = mid + 1
			}
		}
		switch start - left {
		case 0:
		case 1:
			s.data[left+1] = s.data[left]
		default:
			copy(s.data[left+1:start+1], s.data[left:start])
		}
		s.data[left] = pivot
	}
}
