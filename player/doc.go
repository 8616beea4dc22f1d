// Package player holds the football player record and the collaborators
// that move records between comma-separated text and memory.
//
// What lives here:
//
//	• Record     — one player: name, position, nationality, club, age.
//	• ReadCSV    — parse a header line plus data rows into []Record,
//	               trimming whitespace and validating field lengths.
//	• LoadFile   — ReadCSV over a file path, with ErrSourceNotFound /
//	               ErrSourceEmpty for the two fatal input conditions.
//	• WriteCSV   — emit "Name,Position,Nationality,Club,Age" + one row per record.
//	• SaveFile   — WriteCSV into <dir>/players_sorted_<slug>.csv.
//	• WriteTable — numbered console table of a record sequence.
//
// The sorting core never imports the I/O helpers; it only consumes []Record.
//
// Usage:
//
//	recs, err := player.LoadFile("players.csv")
//	if errors.Is(err, player.ErrSourceNotFound) {
//	    // abort the run
//	}
package player
