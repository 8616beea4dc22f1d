// Package sorting orders player records by name under locale-aware collation
// and measures how much work each strategy does.
//
// 🚀 Strategies
//
//	Exchange (bubble) — in place, stable, exactly n(n−1)/2 comparisons.
//	Merge             — top-down divide and conquer, stable, ≤ n⌈log₂n⌉ comparisons,
//	                    two temporary buffers per merge step.
//	Bucket            — 26 growable buckets keyed by the folded first letter of the
//	                    name, each bucket exchange-sorted, then concatenated a..z.
//
// ✨ Instrumentation
//
//	Every name comparison goes through a Comparator and every record relocation
//	through a Mover. Both write into one *metrics.Counters created per Sort call;
//	Bucket hands the same Comparator and Mover to ExchangeSort for each bucket,
//	so per-bucket work adds up instead of overwriting.
//
//	A move is a relocation: a swap counts one, a merge write counts one.
//	Filling buckets and concatenating them are bookkeeping and are not counted.
//
// ⚙️ Usage
//
//	res, err := sorting.Sort(records, sorting.Merge,
//	    sorting.WithLocale("pt-BR"),
//	    sorting.WithMemoryLimit(64<<20),
//	)
//	if errors.Is(err, sorting.ErrAllocation) {
//	    // the run would not fit; records is untouched
//	}
//	fmt.Println(res.Report.Comparisons, res.Report.Moves)
//
// Sort never mutates its input: it sorts a clone and returns it together
// with a metrics.Report. Runs are sequential; nothing here is safe for
// concurrent use of a single Comparator, Mover or Folder.
package sorting
