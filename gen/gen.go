// Package gen generates deterministic input sequences for exercising and
// benchmarking the sorting functions. Each Kind models a family of inputs the
// adaptive merge sort treats differently: random data, data with long natural
// runs, strictly descending data, and data with many duplicates.
package gen

import (
	"fmt"
	"math"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// ErrUnknownKind is returned by ParseKind for names that do not denote a Kind.
var ErrUnknownKind = errors.New("gen: unknown kind")

// A Kind selects the shape of a generated sequence.
type Kind int

const (
	// Random draws values uniformly from [0, n).
	Random Kind = iota

	// Normal draws values from a normal distribution centered on n/2,
	// which yields many duplicates around the center.
	Normal

	// Sorted is 0, 1, ..., n-1.
	Sorted

	// Reversed is n-1, n-2, ..., 0: a single strictly descending run.
	Reversed

	// Sawtooth alternates ascending and descending runs of random
	// lengths up to 2*sqrt(n).
	Sawtooth

	// FewUnique draws values uniformly from [0, 8).
	FewUnique

	// OrganPipe ascends to the middle and descends from there.
	OrganPipe

	// TwoRuns concatenates two ascending runs of 40% and 60% of the
	// elements, where the first run holds the larger values.
	TwoRuns
)

var kindNames = []string{"random", "normal", "sorted", "reversed", "sawtooth", "few-unique", "organ-pipe", "two-runs"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Kinds returns all kinds in order.
func Kinds() []Kind {
	kinds := make([]Kind, len(kindNames))
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}

// ParseKind returns the Kind whose String method returns name, ignoring case.
func ParseKind(name string) (Kind, error) {
	for i, n := range kindNames {
		if strings.EqualFold(n, name) {
			return Kind(i), nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownKind, "%q (want one of %s)", name, strings.Join(kindNames, ", "))
}

// Float64s generates n values of the given kind. The same kind, length and
// seed always produce the same values.
func Float64s(kind Kind, n int, seed uint64) []float64 {
	if n < 0 {
		panic(fmt.Sprintf("invalid length: %v", n))
	}
	x := make([]float64, n)
	if n == 0 {
		return x
	}
	src := rand.NewSource(seed)
	switch kind {
	case Random:
		fill(x, distuv.Uniform{Min: 0, Max: float64(n), Src: src})
	case Normal:
		sigma := math.Max(1, float64(n)/8)
		fill(x, distuv.Normal{Mu: float64(n) / 2, Sigma: sigma, Src: src})
	case Sorted:
		span(x, 0, float64(n-1))
	case Reversed:
		span(x, float64(n-1), 0)
	case Sawtooth:
		sawtooth(x, rand.New(src))
	case FewUnique:
		fill(x, distuv.Uniform{Min: 0, Max: 8, Src: src})
	case OrganPipe:
		mid := (n + 1) / 2
		span(x[:mid], 0, float64(mid-1))
		span(x[mid:], float64(n-mid-1), 0)
	case TwoRuns:
		first := n * 2 / 5
		span(x[:first], float64(n-first), float64(n-1))
		span(x[first:], 0, float64(n-first-1))
	default:
		panic(fmt.Sprintf("invalid kind: %v", kind))
	}
	return x
}

// Ints generates n integer values of the given kind, rounding the values
// of Float64s down.
func Ints(kind Kind, n int, seed uint64) []int {
	f := Float64s(kind, n, seed)
	x := make([]int, len(f))
	for i, v := range f {
		x[i] = int(math.Floor(v))
	}
	return x
}

func fill(x []float64, dist interface{ Rand() float64 }) {
	for i := range x {
		x[i] = dist.Rand()
	}
}

// span fills x with evenly spaced values from l to u, which may be
// empty or hold a single value.
func span(x []float64, l, u float64) {
	switch len(x) {
	case 0:
	case 1:
		x[0] = l
	default:
		floats.Span(x, l, u)
	}
}

func sawtooth(x []float64, rnd *rand.Rand) {
	maxRun := 2*int(math.Sqrt(float64(len(x)))) + 1
	ascending := true
	for lo := 0; lo < len(x); {
		hi := lo + 1 + rnd.Intn(maxRun)
		if hi > len(x) {
			hi = len(x)
		}
		base := float64(rnd.Intn(len(x)))
		if ascending {
			span(x[lo:hi], base, base+float64(hi-lo-1))
		} else {
			span(x[lo:hi], base+float64(hi-lo-1), base)
		}
		ascending = !ascending
		lo = hi
	}
}
