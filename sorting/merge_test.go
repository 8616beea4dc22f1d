package sorting_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/playersort/sorting"
)

// TestMergeSort_Scenario sorts the three-name example and checks exact counts.
func TestMergeSort_Scenario(t *testing.T) {
	c, cmpr, mv := instruments()
	s := records("Zico", "Ana", "Éder")

	sorting.MergeSort(s, cmpr, mv)

	assert.Equal(t, []string{"Ana", "Éder", "Zico"}, names(s))
	assert.Equal(t, int64(3), c.Comparisons)
	assert.Equal(t, int64(5), c.Moves, "2 writes for [0,1] + 3 writes for [0,2]")
}

// TestMergeSort_MovesPerLevel: for n = 2^k every level writes n records.
func TestMergeSort_MovesPerLevel(t *testing.T) {
	for k := 1; k <= 6; k++ {
		n := 1 << k
		c, cmpr, mv := instruments()
		s := randomRecords(uint64(k), n)
		sorting.MergeSort(s, cmpr, mv)
		assert.Equalf(t, int64(n*k), c.Moves, "n=%d", n)
	}
}

// TestMergeSort_ComparisonBound checks comparisons ≤ n⌈log₂n⌉ and sortedness.
func TestMergeSort_ComparisonBound(t *testing.T) {
	for _, n := range []int{2, 3, 5, 17, 100, 257} {
		c, cmpr, mv := instruments()
		in := randomRecords(uint64(n)*7, n)
		s := append(in[:0:0], in...)
		sorting.MergeSort(s, cmpr, mv)

		bound := int64(n) * int64(math.Ceil(math.Log2(float64(n))))
		assert.LessOrEqualf(t, c.Comparisons, bound, "n=%d", n)
		assert.Truef(t, sorting.IsSorted(s), "n=%d", n)
		assert.Truef(t, sameMultiset(in, s), "n=%d permutation", n)
		assert.Truef(t, stable(s), "n=%d stable", n)
	}
}

// TestMergeSort_Trivial covers empty and single-record inputs.
func TestMergeSort_Trivial(t *testing.T) {
	c, cmpr, mv := instruments()
	sorting.MergeSort(nil, cmpr, mv)
	one := records("Pelé")
	sorting.MergeSort(one, cmpr, mv)

	assert.Equal(t, []string{"Pelé"}, names(one))
	assert.Zero(t, c.Comparisons)
	assert.Zero(t, c.Moves)
}

// TestMergeSort_Idempotent: sorting a sorted sequence yields the identical sequence.
func TestMergeSort_Idempotent(t *testing.T) {
	_, cmpr, mv := instruments()
	s := randomRecords(9, 50)
	sorting.MergeSort(s, cmpr, mv)
	once := append(s[:0:0], s...)
	sorting.MergeSort(s, cmpr, mv)

	if diff := cmp.Diff(once, s); diff != "" {
		t.Errorf("re-sort changed order (-want +got):\n%s", diff)
	}
}
