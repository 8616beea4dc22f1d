package player

import "errors"

// MaxFieldLen is the longest accepted field, in runes, at ingestion.
const MaxFieldLen = 99

// Header is the column header written by WriteCSV.
var Header = []string{"Name", "Position", "Nationality", "Club", "Age"}

// numFields is the number of columns a data row must carry.
const numFields = 5

// Sentinel errors for the input and output collaborators.
var (
	// ErrSourceNotFound is returned when the input file does not exist.
	ErrSourceNotFound = errors.New("player: source file not found")

	// ErrSourceEmpty is returned when the source has no data rows after the header.
	ErrSourceEmpty = errors.New("player: source has no data rows")

	// ErrMalformedRow is returned when a row has too few columns or a non-integer age.
	ErrMalformedRow = errors.New("player: malformed row")

	// ErrFieldTooLong is returned when a field exceeds MaxFieldLen runes.
	ErrFieldTooLong = errors.New("player: field exceeds maximum length")
)

// Record is a single player. Records are plain values with no identity
// beyond their position in a sequence; ordering is defined only by Name.
type Record struct {
	Name        string
	Position    string
	Nationality string
	Club        string
	Age         int
}
