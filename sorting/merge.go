package sorting

import (
	"slices"

	"github.com/katalvlaran/playersort/player"
)

// MergeSort sorts s by Name using top-down merge sort.
//
// Algorithm:
//  1. Ranges of length ≤ 1 are sorted.
//  2. Split [left, right] at mid = left + (right−left)/2, sort both halves.
//  3. Copy each half into its own buffer and merge them back into
//     s[left..right], taking from the left buffer on ties.
//
// Each write back into s counts as one move through mv; copying into the
// buffers is not counted. Buffers are dropped when their merge returns.
//
// Complexity: O(n log n) time, at most n⌈log₂n⌉ comparisons,
// O(n) extra memory per merge level.
func MergeSort(s []player.Record, cmp *Comparator, mv *Mover) {
	if len(s) < 2 {
		return
	}
	mergeSort(s, 0, len(s)-1, cmp, mv)
}

func mergeSort(s []player.Record, left, right int, cmp *Comparator, mv *Mover) {
	if left >= right {
		return
	}
	mid := left + (right-left)/2
	mergeSort(s, left, mid, cmp, mv)
	mergeSort(s, mid+1, right, cmp, mv)
	merge(s, left, mid, right, cmp, mv)
}

// merge combines the sorted runs s[left..mid] and s[mid+1..right].
func merge(s []player.Record, left, mid, right int, cmp *Comparator, mv *Mover) {
	l := slices.Clone(s[left : mid+1])
	r := slices.Clone(s[mid+1 : right+1])

	var i, j int
	k := left
	for i < len(l) && j < len(r) {
		if cmp.Compare(l[i].Name, r[j].Name) <= 0 {
			mv.Place(s, k, l[i])
			i++
		} else {
			mv.Place(s, k, r[j])
			j++
		}
		k++
	}
	for ; i < len(l); i, k = i+1, k+1 {
		mv.Place(s, k, l[i])
	}
	for ; j < len(r); j, k = j+1, k+1 {
		mv.Place(s, k, r[j])
	}
}
