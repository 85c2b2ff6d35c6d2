package memory

import (
	"context"
	"sync"

	"notulen/internal/core"
	"notulen/internal/records"
)

// Store holds records and annotations in memory. It backs tests and the
// demo configuration; everything is lost on restart, which matches the
// one-page-view lifecycle of the data.
type Store struct {
	mu      sync.Mutex
	records []core.RawRecord
	ann     Annotations
}

var (
	_ records.Source          = (*Store)(nil)
	_ records.AnnotationStore = (*Store)(nil)
)

func New(recs []core.RawRecord) *Store {
	return &Store{records: append([]core.RawRecord(nil), recs...)}
}

// NewFromDates is a convenience constructor for tests: each date string
// becomes the Date field of one record.
func NewFromDates(dates ...string) *Store {
	recs := make([]core.RawRecord, len(dates))
	for i, d := range dates {
		recs[i] = core.RawRecord{Line: i + 2, Date: d}
	}
	return New(recs)
}

func (s *Store) ListRecords(_ context.Context) ([]core.RawRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.RawRecord(nil), s.records...), nil
}

func (s *Store) ListColoredDays(ctx context.Context) ([]core.ColoredDay, error) {
	return s.ann.ListColoredDays(ctx)
}

func (s *Store) PutColoredDay(ctx context.Context, cd core.ColoredDay) error {
	return s.ann.PutColoredDay(ctx, cd)
}

// Annotations is a standalone in-memory AnnotationStore. Read-only record
// sources (CSV file, spreadsheet) are composed with one of these so the
// dashboard can still accept colored days.
type Annotations struct {
	mu   sync.Mutex
	days []core.ColoredDay
}

var _ records.AnnotationStore = (*Annotations)(nil)

func NewAnnotations() *Annotations {
	return &Annotations{}
}

func (a *Annotations) ListColoredDays(_ context.Context) ([]core.ColoredDay, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]core.ColoredDay(nil), a.days...), nil
}

// PutColoredDay replaces any earlier declaration for the same date.
func (a *Annotations) PutColoredDay(_ context.Context, cd core.ColoredDay) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i, existing := range a.days {
		if existing.Date == cd.Date {
			a.days[i] = cd
			return nil
		}
	}
	a.days = append(a.days, cd)
	return nil
}
