// Package metrics collects the performance figures reported for one sort run.
//
// Counters is the explicit metrics context threaded through every comparison
// and every record relocation. A single *Counters is created per top-level
// sort and shared by nested calls (a bucket sort running an exchange sort per
// bucket), so totals accumulate without any reset.
//
// Counting semantics:
//
//	Comparisons — one per name comparison.
//	Moves       — one per record relocation: an in-place swap counts one,
//	              a directed write into a destination slot (merge) counts one.
//	              Moves are relocations, not physical swaps.
//
// Report bundles elapsed wall time, the final counter values and an
// algorithm-specific memory estimate in bytes. A Report is created once per
// sort and is not mutated afterwards.
//
// Counters carry no synchronization: sort runs are strictly sequential.
package metrics
