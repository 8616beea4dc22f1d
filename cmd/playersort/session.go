package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/playersort/player"
	"github.com/katalvlaran/playersort/sorting"
)

// exitChoice ends the interactive loop.
const exitChoice = "4"

// session drives sorts over one loaded dataset.
type session struct {
	in      *bufio.Scanner
	out     io.Writer
	records []player.Record
	cfg     config
}

func newSession(in io.Reader, out io.Writer, recs []player.Record, cfg config) *session {
	return &session{in: bufio.NewScanner(in), out: out, records: recs, cfg: cfg}
}

// readLine returns the next trimmed input line; ok is false at end of input.
func (s *session) readLine() (line string, ok bool) {
	if !s.in.Scan() {
		return "", false
	}

	return strings.TrimSpace(s.in.Text()), true
}

func (s *session) menu() {
	fmt.Fprint(s.out, "\n=== SORT MENU ===\n"+
		"1 - Simple sort (Bubble Sort)\n"+
		"2 - Optimal sort (Merge Sort)\n"+
		"3 - Linear sort (Bucket Sort)\n"+
		"4 - Exit\n"+
		"Choose an option: ")
}

// loop shows the menu until the exit option or end of input.
// Invalid choices re-prompt; a sort that does not fit in memory is reported
// and the loop goes on.
func (s *session) loop() error {
	for {
		s.menu()
		line, ok := s.readLine()
		if !ok || line == exitChoice {
			fmt.Fprintln(s.out, "\nBye.")
			return nil
		}
		algo, err := sorting.ParseAlgorithm(line)
		if err != nil {
			fmt.Fprintln(s.out, "Invalid option! Try again.")
			continue
		}
		if err = s.process(algo, nil); err != nil {
			if errors.Is(err, sorting.ErrAllocation) {
				fmt.Fprintf(s.out, "Sort aborted: %v\n", err)
				continue
			}
			return err
		}
	}
}

// process sorts, prints the table and metrics, and saves the result.
// A nil save asks the user; otherwise *save decides.
func (s *session) process(algo sorting.Algorithm, save *bool) error {
	fmt.Fprintln(s.out, "\nSorting...")
	res, err := sorting.Sort(s.records, algo, s.cfg.options()...)
	if err != nil {
		return err
	}
	if err = player.WriteTable(s.out, res.Records); err != nil {
		return err
	}
	if err = res.Report.WriteSummary(s.out, algo.Title()); err != nil {
		return err
	}

	var yes bool
	if save != nil {
		yes = *save
	} else {
		fmt.Fprint(s.out, "Save the sorted players? (y/n): ")
		line, _ := s.readLine()
		yes = strings.EqualFold(line, "y") || strings.EqualFold(line, "s")
	}
	if !yes {
		fmt.Fprintln(s.out, "File not saved.")
		return nil
	}

	path, err := player.SaveFile(s.cfg.OutputDir, algo.Slug(), res.Records)
	if err != nil {
		return fmt.Errorf("saving %s: %w", algo.Slug(), err)
	}
	fmt.Fprintf(s.out, "File saved: %s\n", path)

	return nil
}
