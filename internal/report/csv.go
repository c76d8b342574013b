// Package report writes plate records to the tabular results file.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/ironsheep/plate-reader/internal/plate"
)

// Header is the fixed column layout of the report.
var Header = []string{"Filename", "Detected Text", "State", "Confidence"}

// CSVSink appends records to a CSV report. Every row is flushed as soon as
// it is written so a later failure cannot lose rows already reported.
type CSVSink struct {
	w      *csv.Writer
	closer io.Closer
	rows   int
}

// Create truncates or creates the file at path and writes the header row.
func Create(path string) (*CSVSink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create report: %w", err)
	}

	s, err := newSink(f, f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return s, nil
}

// NewCSVSink writes the header row to w and returns a sink over it.
func NewCSVSink(w io.Writer) (*CSVSink, error) {
	return newSink(w, nil)
}

func newSink(w io.Writer, closer io.Closer) (*CSVSink, error) {
	s := &CSVSink{w: csv.NewWriter(w), closer: closer}
	if err := s.writeRow(Header); err != nil {
		return nil, fmt.Errorf("failed to write report header: %w", err)
	}
	return s, nil
}

// Write appends one record.
func (s *CSVSink) Write(rec plate.Record) error {
	row := []string{rec.ImageID, rec.Text, rec.Region, FormatConfidence(rec.Confidence)}
	if err := s.writeRow(row); err != nil {
		return fmt.Errorf("failed to write report row for %s: %w", rec.ImageID, err)
	}
	s.rows++
	return nil
}

func (s *CSVSink) writeRow(row []string) error {
	if err := s.w.Write(row); err != nil {
		return err
	}
	s.w.Flush()
	return s.w.Error()
}

// Rows returns the number of records written, excluding the header.
func (s *CSVSink) Rows() int {
	return s.rows
}

// Close flushes pending output and closes the underlying file, if any.
func (s *CSVSink) Close() error {
	s.w.Flush()
	if err := s.w.Error(); err != nil {
		return err
	}
	if s.closer != nil {
		return s.closer.Close()
	}
	return nil
}

// FormatConfidence renders c with the fewest digits that parse back to
// exactly the same float64.
func FormatConfidence(c float64) string {
	return strconv.FormatFloat(c, 'f', -1, 64)
}
