package sorting

import "github.com/katalvlaran/playersort/player"

// ExchangeSort sorts s in place by Name with adjacent swaps (bubble sort).
//
// Algorithm:
//  1. For pass i = 0..n−2:
//     For j = 0..n−2−i: if name[j] > name[j+1], swap them.
//
// There is no early exit: every run performs exactly n(n−1)/2 comparisons.
// Equal names are never swapped, so the sort is stable. An already sorted
// input costs zero moves.
//
// Counters are not reset here; callers that share a Comparator and Mover
// (Bucket, once per bucket) accumulate into the same totals.
//
// Complexity: O(n²) time, O(1) extra memory.
func ExchangeSort(s []player.Record, cmp *Comparator, mv *Mover) {
	n := len(s)
	var i, j int
	for i = 0; i < n-1; i++ {
		for j = 0; j < n-1-i; j++ {
			if cmp.Compare(s[j].Name, s[j+1].Name) > 0 {
				mv.Swap(s, j, j+1)
			}
		}
	}
}
