package metrics_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/playersort/metrics"
)

// TestCounters_Accumulate verifies that a shared context keeps counting across callers.
func TestCounters_Accumulate(t *testing.T) {
	var c metrics.Counters
	inner := func(c *metrics.Counters) {
		c.Compare()
		c.Move()
	}
	inner(&c)
	inner(&c)
	c.Compare()

	assert.Equal(t, int64(3), c.Comparisons)
	assert.Equal(t, int64(2), c.Moves)
}

// TestNewReport_Snapshot checks that a report is a copy, not a view, of the counters.
func TestNewReport_Snapshot(t *testing.T) {
	c := &metrics.Counters{Comparisons: 5, Moves: 2}
	r := metrics.NewReport(3*time.Millisecond, c, 2*1024*1024)
	c.Compare()

	assert.Equal(t, int64(5), r.Comparisons)
	assert.Equal(t, int64(2), r.Moves)
	assert.InDelta(t, 2.0, r.MemoryMB(), 1e-12)
}

// TestRecordsFootprint scales linearly with RecordSize.
func TestRecordsFootprint(t *testing.T) {
	assert.Equal(t, 0.0, metrics.RecordsFootprint(0))
	assert.Equal(t, float64(10*metrics.RecordSize), metrics.RecordsFootprint(10))
	assert.Positive(t, metrics.RecordSize)
}

// TestWriteSummary checks the rendered fields.
func TestWriteSummary(t *testing.T) {
	r := metrics.Report{Elapsed: 1500 * time.Microsecond, Comparisons: 3, Moves: 1, MemoryBytes: 1024 * 1024}
	var buf bytes.Buffer
	require.NoError(t, r.WriteSummary(&buf, "MERGE SORT"))

	out := buf.String()
	assert.Contains(t, out, "=== MERGE SORT METRICS ===")
	assert.Contains(t, out, "1.5000 ms")
	assert.Contains(t, out, "Comparisons:       3")
	assert.Contains(t, out, "Moves:             1")
	assert.Contains(t, out, "1.000000 MB")
}
