package player

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ReadCSV parses comma-separated player data from r.
// The first line is a header and is skipped. Every field is whitespace-trimmed.
//
// Errors:
//   - ErrSourceEmpty  if there is no header or no data row.
//   - ErrMalformedRow if a row has fewer than five columns or a non-integer age.
//   - ErrFieldTooLong if a text field is longer than MaxFieldLen runes.
func ReadCSV(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrSourceEmpty
		}
		return nil, fmt.Errorf("player: reading header: %w", err)
	}

	var out []Record
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedRow, err)
		}
		line, _ := cr.FieldPos(0)
		rec, err := parseRow(row, line)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if len(out) == 0 {
		return nil, ErrSourceEmpty
	}

	return out, nil
}

// parseRow converts one CSV row into a Record. Columns past the fifth are ignored.
func parseRow(row []string, line int) (Record, error) {
	if len(row) < numFields {
		return Record{}, fmt.Errorf("%w: line %d has %d columns, want %d", ErrMalformedRow, line, len(row), numFields)
	}
	var i int
	for i = 0; i < numFields; i++ {
		row[i] = strings.TrimSpace(row[i])
		if n := utf8.RuneCountInString(row[i]); n > MaxFieldLen {
			return Record{}, fmt.Errorf("%w: line %d column %s has %d runes", ErrFieldTooLong, line, Header[i], n)
		}
	}
	age, err := strconv.Atoi(row[4])
	if err != nil {
		return Record{}, fmt.Errorf("%w: line %d age %q", ErrMalformedRow, line, row[4])
	}

	return Record{
		Name:        row[0],
		Position:    row[1],
		Nationality: row[2],
		Club:        row[3],
		Age:         age,
	}, nil
}

// LoadFile opens path and reads it with ReadCSV.
// A missing file yields ErrSourceNotFound.
func LoadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return nil, err
	}
	defer f.Close()

	recs, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return recs, nil
}

// WriteCSV writes the header followed by one row per record.
func WriteCSV(w io.Writer, recs []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	row := make([]string, numFields)
	for _, r := range recs {
		row[0], row[1], row[2], row[3] = r.Name, r.Position, r.Nationality, r.Club
		row[4] = strconv.Itoa(r.Age)
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// FileName returns the output file name for an algorithm slug.
func FileName(slug string) string {
	return "players_sorted_" + slug + ".csv"
}

// SaveFile writes recs as CSV into dir/FileName(slug) and returns the path written.
func SaveFile(dir, slug string, recs []Record) (path string, err error) {
	path = filepath.Join(dir, FileName(slug))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()

	if err = WriteCSV(f, recs); err != nil {
		return "", err
	}

	return path, nil
}
