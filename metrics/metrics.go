package metrics

import (
	"fmt"
	"io"
	"time"
	"unsafe"

	"github.com/katalvlaran/playersort/player"
)

// RecordSize is the in-memory size of one player.Record value, in bytes.
const RecordSize = int64(unsafe.Sizeof(player.Record{}))

const bytesPerMB = 1024.0 * 1024.0

// Counters accumulates comparisons and moves for a single sort run.
type Counters struct {
	Comparisons int64
	Moves       int64
}

// Compare records one comparison.
func (c *Counters) Compare() { c.Comparisons++ }

// Move records one record relocation.
func (c *Counters) Move() { c.Moves++ }

// Report is the outcome of one sort run.
type Report struct {
	// Elapsed is the wall time spent inside the algorithm.
	Elapsed time.Duration

	// Comparisons and Moves are the final counter values (see package doc).
	Comparisons int64
	Moves       int64

	// MemoryBytes estimates the peak working memory of the run.
	MemoryBytes float64
}

// NewReport assembles a Report from elapsed time, counters and a memory estimate.
func NewReport(elapsed time.Duration, c *Counters, memoryBytes float64) Report {
	return Report{
		Elapsed:     elapsed,
		Comparisons: c.Comparisons,
		Moves:       c.Moves,
		MemoryBytes: memoryBytes,
	}
}

// MemoryMB returns MemoryBytes expressed in mebibytes.
func (r Report) MemoryMB() float64 { return r.MemoryBytes / bytesPerMB }

// WriteSummary prints the report under the given title.
func (r Report) WriteSummary(w io.Writer, title string) error {
	ms := float64(r.Elapsed) / float64(time.Millisecond)
	_, err := fmt.Fprintf(w,
		"\n=== %s METRICS ===\n"+
			"Elapsed time:      %.4f ms\n"+
			"Comparisons:       %d\n"+
			"Moves:             %d\n"+
			"Memory:            %.6f MB\n"+
			"==============================\n\n",
		title, ms, r.Comparisons, r.Moves, r.MemoryMB())

	return err
}

// RecordsFootprint is the raw footprint of n records.
func RecordsFootprint(n int) float64 {
	return float64(int64(n) * RecordSize)
}
