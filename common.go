package timsort

import (
	"fmt"

	"github.com/pkg/errors"
)

const (
	// DefaultMinMerge is the default value of Tuning.MinMerge.
	DefaultMinMerge = 64

	// DefaultMinGallop is the default value of Tuning.MinGallop.
	DefaultMinGallop = 7
)

// ErrInvalidTuning is returned by Tuning.Validate, wrapped with the
// offending field.
var ErrInvalidTuning = errors.New("timsort: invalid tuning")

/*
Tuning holds the two tuning constants of the adaptive merge sort. Neither
affects the result of a sort, only the number of comparisons and moves
it takes to get there.

MinMerge is the sequence length below which no merging takes place at
all: shorter sequences are sorted as a single run with binary insertion
sort. It also determines the range of the minimum run length computed
by MinRunLength, which lies between MinMerge/2 and MinMerge. MinMerge
must be a power of two and at least 2.

MinGallop is the number of consecutive wins of one run during a merge
after which the merge switches to galloping mode. The threshold adapts
during a sort, but never drops below 1. MinGallop must be at least 1.
*/
type Tuning struct {
	MinMerge  int
	MinGallop int
}

// DefaultTuning returns the tuning constants used when none are given.
func DefaultTuning() Tuning {
	return Tuning{MinMerge: DefaultMinMerge, MinGallop: DefaultMinGallop}
}

// Validate reports whether t can be used for sorting. The returned
// error wraps ErrInvalidTuning.
func (t Tuning) Validate() error {
	if t.MinMerge < 2 || t.MinMerge&(t.MinMerge-1) != 0 {
		return errors.Wrapf(ErrInvalidTuning, "min merge %d is not a power of two >= 2", t.MinMerge)
	}
	if t.MinGallop < 1 {
		return errors.Wrapf(ErrInvalidTuning, "min gallop %d is below 1", t.MinGallop)
	}
	return nil
}

/*
MinRunLength computes the minimum run length for a sequence of length
n, given the MinMerge tuning constant.

If n < minMerge, n itself is returned: the whole sequence becomes one
run. Otherwise the result k satisfies minMerge/2 <= k <= minMerge and is
chosen so that n/k is equal to, or slightly less than, a power of two.
This is done by taking the top bits of n and adding 1 if any of the
remaining bits is set.

MinRunLength panics if n < 0 or if minMerge is not a power of two >= 2.
*/
func MinRunLength(n, minMerge int) int {
	if n < 0 {
		panic(fmt.Sprintf("invalid length: %v", n))
	}
	if minMerge < 2 || minMerge&(minMerge-1) != 0 {
		panic(fmt.Sprintf("invalid min merge: %v", minMerge))
	}
	r := 0 // becomes 1 if any 1 bits are shifted off
	for n >= minMerge {
		r |= n & 1
		n >>= 1
	}
	return n + r
}
