package sorting

import (
	"fmt"
	"slices"
	"time"

	"github.com/katalvlaran/playersort/metrics"
	"github.com/katalvlaran/playersort/player"
)

// Sort runs algo on a clone of records and returns the sorted clone with
// its metrics. records itself is never modified.
//
// Steps:
//  1. Apply options; an invalid one yields ErrOptionViolation.
//  2. Reject unknown algorithms with ErrUnsupportedAlgorithm.
//  3. Check the memory estimate against the limit (ErrAllocation) and clone.
//  4. Time the selected strategy with fresh counters.
//
// Memory estimate, by strategy:
//
//	Exchange — n·RecordSize (the working copy).
//	Merge    — 2·n·RecordSize (working copy plus merge buffers).
//	Bucket   — n·RecordSize plus the bucket footprint (see BucketStats).
//
// On error no records are returned.
func Sort(records []player.Record, algo Algorithm, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}
	if !algo.Valid() {
		return Result{}, fmt.Errorf("%w: %v", ErrUnsupportedAlgorithm, algo)
	}

	n := len(records)
	footprint := metrics.RecordsFootprint(n)
	estimate := footprint
	if algo == Merge {
		estimate = 2 * footprint
	}
	if estimate > o.budget() {
		return Result{}, fmt.Errorf("%w: %s on %d records needs %.0f bytes, limit %d",
			ErrAllocation, algo, n, estimate, o.MemoryLimit)
	}

	work := make([]player.Record, n)
	copy(work, records)

	counters := &metrics.Counters{}
	cmp := NewComparator(o.Language, counters)
	mv := NewMover(counters)

	start := time.Now()
	switch algo {
	case Exchange:
		ExchangeSort(work, cmp, mv)
	case Merge:
		MergeSort(work, cmp, mv)
	case Bucket:
		stats, err := BucketSort(work, cmp, mv, BucketOptions{
			InitialCapacity: o.BucketCapacity,
			MemoryBudget:    o.budget() - footprint,
		})
		if err != nil {
			return Result{}, err
		}
		estimate = footprint + stats.MemoryBytes
	}
	elapsed := time.Since(start)

	return Result{
		Records: work,
		Report:  metrics.NewReport(elapsed, counters, estimate),
	}, nil
}

// IsSorted reports whether recs is in non-decreasing Name order under the
// collation selected by opts. Only WithLanguage and WithLocale matter here.
func IsSorted(recs []player.Record, opts ...Option) bool {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	cmp := NewComparator(o.Language, &metrics.Counters{})

	return slices.IsSortedFunc(recs, func(a, b player.Record) int {
		return cmp.Compare(a.Name, b.Name)
	})
}
