package sort

import (
	"math"
	"math/rand"
	"reflect"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

type By func(i, j int) int

func (by By) SequentialSort(slice []int) {
	sort.SliceStable(slice, func(i, j int) bool {
		return by(slice[i], slice[j]) < 0
	})
}

func (by By) StableSort(slice []int) {
	StableFunc(slice, by)
}

func (by By) ParallelStableSort(slice []int) {
	ParallelStableFunc(slice, by)
}

func ascending(i, j int) int {
	switch {
	case i < j:
		return -1
	case i > j:
		return 1
	}
	return 0
}

func makeRandomSlice(size, limit int) []int {
	result := make([]int, size)
	for i := 0; i < size; i++ {
		result[i] = rand.Intn(limit)
	}
	return result
}

func TestSort(t *testing.T) {
	orgSlice := makeRandomSlice(100*0x600, 100*100*0x600)
	s1 := make([]int, len(orgSlice))
	s2 := make([]int, len(orgSlice))
	s3 := make([]int, len(orgSlice))
	copy(s1, orgSlice)
	copy(s2, orgSlice)
	copy(s3, orgSlice)

	By(ascending).SequentialSort(s1)

	t.Run("StableSort", func(t *testing.T) {
		By(ascending).StableSort(s2)
		if !reflect.DeepEqual(s1, s2) {
			t.Errorf("Stable sort incorrect.")
		}
	})

	t.Run("ParallelStableSort", func(t *testing.T) {
		By(ascending).ParallelStableSort(s3)
		if !reflect.DeepEqual(s1, s3) {
			t.Errorf("Parallel stable sort incorrect.")
		}
	})
}

func TestParallelStableFuncIsStable(t *testing.T) {
	rnd := rand.New(rand.NewSource(11))
	for _, n := range []int{0, 10, msortGrainSize - 1, 4 * msortGrainSize, 40 * msortGrainSize} {
		keys := make([]int, n)
		for i := range keys {
			keys[i] = rnd.Intn(100)
		}
		items := makeItems(keys)
		var stats Stats
		ParallelStableFunc(items, byKey, WithMinGallop(3), WithStats(&stats))
		requireStablySorted(t, items)
		assert.Equal(t, Stats{}, stats, "stats are not collected in parallel")
	}
}

func TestMergeHelpers(t *testing.T) {
	src := []int{1, 3, 3, 5, 2, 3, 4, 9}
	assert.Equal(t, 5, binarySearchEq(3, src, 4, 7, ascending))
	assert.Equal(t, 3, binarySearchNeq(3, src, 0, 3, ascending))
	assert.Equal(t, 4, binarySearchEq(7, src, 4, 3, ascending))

	dst := make([]int, len(src))
	sMerge(src, 0, 3, 4, 7, dst, 0, ascending)
	assert.Equal(t, []int{1, 2, 3, 3, 3, 4, 5, 9}, dst)
}

func TestSliceTypes(t *testing.T) {
	ints := IntSlice{3, 1, 2}
	assert.False(t, ints.IsSorted())
	ints.Sort()
	assert.Equal(t, IntSlice{1, 2, 3}, ints)
	assert.True(t, ints.IsSorted())
	assert.True(t, sort.IsSorted(ints))

	floats := Float64Slice{2.5, math.NaN(), -1, math.Inf(1), 0}
	floats.Sort()
	assert.True(t, math.IsNaN(floats[0]))
	assert.Equal(t, []float64{-1, 0, 2.5, math.Inf(1)}, []float64(floats[1:]))
	assert.True(t, floats.IsSorted())
	assert.True(t, Float64sAreSorted(floats))
	assert.True(t, sort.IsSorted(floats))

	strs := StringSlice{"b", "c", "a"}
	strs.Sort(WithMinMerge(2))
	assert.Equal(t, StringSlice{"a", "b", "c"}, strs)
	assert.True(t, strs.IsSorted())
	assert.True(t, StringsAreSorted(strs))

	assert.False(t, IsSortedFunc([]int{2, 1}, ascending))
	assert.True(t, IsSortedFunc([]int{}, ascending))
}

func TestIsSortedFuncLargeSlices(t *testing.T) {
	const size = 64 * isSortedGrainSize
	x := make([]int, size)
	for i := range x {
		x[i] = i / 3
	}
	assert.True(t, IsSortedFunc(x, ascending))
	assert.True(t, IntsAreSorted(x))

	for _, at := range []int{size - 2, size / 2, isSortedGrainSize, serialCutoff, 3} {
		y := make([]int, size)
		copy(y, x)
		y[at], y[at+1] = y[at+1]+1, y[at]
		assert.False(t, IsSortedFunc(y, ascending), "swap at %d", at)
		assert.False(t, IntsAreSorted(y), "swap at %d", at)
	}

	floats := make([]float64, size)
	for i := range floats {
		floats[i] = float64(i)
	}
	floats[size-1] = math.NaN()
	assert.False(t, Float64sAreSorted(floats))
	floats[size-1] = math.Inf(1)
	assert.True(t, Float64sAreSorted(floats))
}

func BenchmarkSort(b *testing.B) {
	orgSlice := makeRandomSlice(100*0x6000, 100*100*0x6000)
	presorted := make([]int, len(orgSlice))
	copy(presorted, orgSlice)
	Ints(presorted)
	for i := 0; i < len(presorted); i += 1000 {
		presorted[i] = rand.Intn(len(presorted))
	}

	s := make([]int, len(orgSlice))

	for _, input := range []struct {
		name string
		data []int
	}{
		{"Random", orgSlice},
		{"Presorted", presorted},
	} {
		input := input

		b.Run(input.name+"/SequentialSort", func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				copy(s, input.data)
				b.StartTimer()
				By(ascending).SequentialSort(s)
			}
		})

		b.Run(input.name+"/StableSort", func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				copy(s, input.data)
				b.StartTimer()
				By(ascending).StableSort(s)
			}
		})

		b.Run(input.name+"/ParallelStableSort", func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				copy(s, input.data)
				b.StartTimer()
				By(ascending).ParallelStableSort(s)
			}
		})
	}
}
