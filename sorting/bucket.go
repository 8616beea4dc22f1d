package sorting

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/katalvlaran/playersort/fold"
	"github.com/katalvlaran/playersort/metrics"
	"github.com/katalvlaran/playersort/player"
)

// bucketTableBytes is the fixed cost of the bucket table: one slice header
// plus a length and a capacity counter per bucket.
var bucketTableBytes = float64(fold.NumBuckets) *
	float64(unsafe.Sizeof([]player.Record(nil))+2*unsafe.Sizeof(int(0)))

// BucketOptions configures one BucketSort call.
type BucketOptions struct {
	// InitialCapacity is the starting capacity of every bucket. Must be ≥ 1.
	InitialCapacity int

	// MemoryBudget caps the bucket memory in bytes. Use math.Inf(1) for no cap.
	MemoryBudget float64
}

// DefaultBucketOptions returns DefaultBucketCapacity and no memory cap.
func DefaultBucketOptions() BucketOptions {
	return BucketOptions{
		InitialCapacity: DefaultBucketCapacity,
		MemoryBudget:    math.Inf(1),
	}
}

// BucketStats describes the buckets built by one BucketSort call.
type BucketStats struct {
	// Sizes and Capacities are the final length and capacity of every bucket.
	Sizes      [fold.NumBuckets]int
	Capacities [fold.NumBuckets]int

	// Grows counts capacity doublings across all buckets.
	Grows int

	// MemoryBytes is the table overhead, the initial capacities, and every
	// growth increment.
	MemoryBytes float64
}

// bucket is a growable run of records. Invariant: length ≤ len(items), and
// len(items) only ever doubles.
type bucket struct {
	items  []player.Record
	length int
}

func (b *bucket) full() bool { return b.length == len(b.items) }

// grow doubles the capacity, keeping the first length records.
func (b *bucket) grow() {
	next := make([]player.Record, 2*len(b.items))
	copy(next, b.items[:b.length])
	b.items = next
}

func (b *bucket) push(r player.Record) {
	b.items[b.length] = r
	b.length++
}

func (b *bucket) records() []player.Record { return b.items[:b.length] }

// distributor holds the per-call bucket state and its memory accounting.
type distributor struct {
	buckets [fold.NumBuckets]bucket
	folder  *fold.Folder
	stats   BucketStats
	budget  float64
}

// charge adds n bytes to the bucket footprint, failing if that breaks the budget.
func (d *distributor) charge(n float64) error {
	if d.stats.MemoryBytes+n > d.budget {
		return fmt.Errorf("%w: buckets need %.0f bytes, budget %.0f",
			ErrAllocation, d.stats.MemoryBytes+n, d.budget)
	}
	d.stats.MemoryBytes += n

	return nil
}

// BucketSort sorts s by Name using 26 first-letter buckets.
//
// Algorithm:
//  1. Distribute: the bucket of a record is fold.BucketIndex(Name). A full
//     bucket doubles its capacity before the append.
//  2. Sort every non-empty bucket with ExchangeSort, sharing cmp and mv so
//     comparisons and moves accumulate across buckets.
//  3. Concatenate buckets 0..25 back into s.
//
// Names that do not start with a foldable letter share bucket 0 with 'a'
// names; within bucket 0 they are ordered by full-name collation like any
// other record.
//
// If opts.MemoryBudget would be exceeded, BucketSort returns ErrAllocation
// and leaves s untouched.
//
// Complexity: O(n + Σ nᵢ²) time, O(n) extra memory.
func BucketSort(s []player.Record, cmp *Comparator, mv *Mover, opts BucketOptions) (BucketStats, error) {
	if opts.InitialCapacity < 1 {
		return BucketStats{}, fmt.Errorf("%w: InitialCapacity must be positive (%d)", ErrOptionViolation, opts.InitialCapacity)
	}
	d := &distributor{folder: fold.New(), budget: opts.MemoryBudget}
	if err := d.init(opts.InitialCapacity); err != nil {
		return BucketStats{}, err
	}
	if err := d.distribute(s); err != nil {
		return BucketStats{}, err
	}

	var i int
	for i = range d.buckets {
		if d.buckets[i].length > 0 {
			ExchangeSort(d.buckets[i].records(), cmp, mv)
		}
	}

	k := 0
	for i = range d.buckets {
		k += copy(s[k:], d.buckets[i].records())
		d.stats.Sizes[i] = d.buckets[i].length
		d.stats.Capacities[i] = len(d.buckets[i].items)
	}

	return d.stats, nil
}

// init charges and allocates the bucket table with capacity c per bucket.
func (d *distributor) init(c int) error {
	initial := bucketTableBytes + float64(fold.NumBuckets)*float64(c)*float64(metrics.RecordSize)
	if err := d.charge(initial); err != nil {
		return err
	}
	for i := range d.buckets {
		d.buckets[i].items = make([]player.Record, c)
	}

	return nil
}

// distribute appends every record of s to its bucket, doubling full buckets.
func (d *distributor) distribute(s []player.Record) error {
	for _, r := range s {
		b := &d.buckets[d.folder.BucketIndex(r.Name)]
		if b.full() {
			if err := d.charge(float64(len(b.items)) * float64(metrics.RecordSize)); err != nil {
				return err
			}
			b.grow()
			d.stats.Grows++
		}
		b.push(r)
	}

	return nil
}
