package player

import (
	"fmt"
	"io"
)

// WriteTable renders recs as a numbered, column-aligned table.
func WriteTable(w io.Writer, recs []Record) error {
	if _, err := fmt.Fprintf(w, "\n=== SORTED PLAYERS (%d) ===\n", len(recs)); err != nil {
		return err
	}
	for i, r := range recs {
		_, err := fmt.Fprintf(w, "%3d. %-25s | %-15s | %-15s | %-25s | %2d years\n",
			i+1, r.Name, r.Position, r.Nationality, r.Club, r.Age)
		if err != nil {
			return err
		}
	}
	_, err := fmt.Fprint(w, "=== END ===\n\n")

	return err
}
