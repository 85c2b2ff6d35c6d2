// Package csvfile reads meeting records from the raw CSV export.
package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"notulen/internal/core"
	"notulen/internal/records"
)

// DateColumn is the header of the column carrying the meeting date.
const DateColumn = "Date"

type Source struct {
	path       string
	dateColumn string
}

var _ records.Source = (*Source)(nil)

// New returns a Source reading from the CSV file at path.
func New(path string) *Source {
	return &Source{path: path, dateColumn: DateColumn}
}

// ListRecords reads the whole file. Rows shorter than the header are kept
// with the missing columns empty; interpreting (and skipping) bad date
// text is the normalizer's job, not the reader's.
func (s *Source) ListRecords(_ context.Context) ([]core.RawRecord, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open records file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read records file: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("records file %s: missing header row", s.path)
	}

	header := rows[0]
	dateCol := -1
	for i, name := range header {
		if strings.EqualFold(strings.TrimSpace(name), s.dateColumn) {
			dateCol = i
			break
		}
	}
	if dateCol == -1 {
		return nil, fmt.Errorf("records file %s: no %q column in header %v", s.path, s.dateColumn, header)
	}

	out := make([]core.RawRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		rec := core.RawRecord{
			Line:   i + 2, // 1-based, after the header
			Fields: make(map[string]string, len(header)),
		}
		for col, name := range header {
			if col < len(row) {
				rec.Fields[name] = row[col]
			}
		}
		if dateCol < len(row) {
			rec.Date = row[dateCol]
		}
		out = append(out, rec)
	}
	return out, nil
}
