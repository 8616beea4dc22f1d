package sorting_test

import (
	"math/rand/v2"
	"strconv"

	"github.com/katalvlaran/playersort/metrics"
	"github.com/katalvlaran/playersort/player"
	"github.com/katalvlaran/playersort/sorting"
)

// namePool mixes plain, accented, lower-case and duplicate names.
// Every entry starts with a letter that folds onto a..z.
var namePool = []string{
	"Zico", "Ana", "Éder", "Bebeto", "Álvaro", "Romário", "Ronaldo", "Rivaldo",
	"Çağlar", "Ñico", "Óscar", "Ítalo", "Úrsula", "Cafu", "Kaká", "Pelé",
	"Garrincha", "Sócrates", "Taffarel", "Dunga", "Júnior", "Edmundo",
	"ana", "zico", "Neymar", "Marta", "Formiga", "Vini", "Hulk", "Lúcio",
}

// records builds one record per name; Age carries the input position so
// stability can be checked after sorting.
func records(names ...string) []player.Record {
	out := make([]player.Record, len(names))
	for i, n := range names {
		out[i] = player.Record{Name: n, Position: "FW", Nationality: "BR", Club: "club" + strconv.Itoa(i), Age: i}
	}

	return out
}

// names extracts the Name column.
func names(recs []player.Record) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Name
	}

	return out
}

// randomRecords draws n names from namePool with a deterministic seed.
func randomRecords(seed uint64, n int) []player.Record {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	picked := make([]string, n)
	for i := range picked {
		picked[i] = namePool[rng.IntN(len(namePool))]
	}

	return records(picked...)
}

// instruments returns a fresh counter context with a pt-BR comparator and a mover.
func instruments() (*metrics.Counters, *sorting.Comparator, *sorting.Mover) {
	c := &metrics.Counters{}

	return c, sorting.NewComparator(sorting.DefaultLanguage, c), sorting.NewMover(c)
}

// sameMultiset reports whether a and b hold the same records, ignoring order.
func sameMultiset(a, b []player.Record) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[player.Record]int, len(a))
	for _, r := range a {
		seen[r]++
	}
	for _, r := range b {
		seen[r]--
		if seen[r] < 0 {
			return false
		}
	}

	return true
}

// stable reports whether records with equal names keep ascending Age,
// i.e. their input order.
func stable(recs []player.Record) bool {
	last := map[string]int{}
	for _, r := range recs {
		if prev, ok := last[r.Name]; ok && prev > r.Age {
			return false
		}
		last[r.Name] = r.Age
	}

	return true
}
