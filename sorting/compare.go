package sorting

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/katalvlaran/playersort/metrics"
	"github.com/katalvlaran/playersort/player"
)

// Comparator orders names under a locale collation and counts every call.
// Accented letters collate next to their base letter ("Éder" sorts between
// "Ana" and "Zico"), not after 'z'.
type Comparator struct {
	coll     *collate.Collator
	counters *metrics.Counters
}

// NewComparator returns a Comparator for tag that records into counters.
func NewComparator(tag language.Tag, counters *metrics.Counters) *Comparator {
	return &Comparator{
		coll:     collate.New(tag),
		counters: counters,
	}
}

// Compare returns -1, 0 or +1 as a sorts before, equal to, or after b.
// Each call adds exactly one comparison.
func (c *Comparator) Compare(a, b string) int {
	c.counters.Compare()

	return c.coll.CompareString(a, b)
}

// Mover relocates records and counts every relocation.
type Mover struct {
	counters *metrics.Counters
}

// NewMover returns a Mover that records into counters.
func NewMover(counters *metrics.Counters) *Mover {
	return &Mover{counters: counters}
}

// Swap exchanges s[i] and s[j]. Counts one move.
func (m *Mover) Swap(s []player.Record, i, j int) {
	m.counters.Move()
	s[i], s[j] = s[j], s[i]
}

// Place writes r into s[i]. Counts one move.
func (m *Mover) Place(s []player.Record, i int, r player.Record) {
	m.counters.Move()
	s[i] = r
}
