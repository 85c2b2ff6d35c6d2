// Package ingest runs the one-time load: raw records in, a fully
// normalized in-memory dataset out. Nothing downstream ever touches raw
// date text again.
package ingest

import (
	"context"
	"fmt"

	"notulen/internal/core"
	"notulen/internal/log"
	"notulen/internal/records"
)

// Dataset is the materialized result of one load. It is built once,
// before any aggregation starts, and never mutated afterwards.
type Dataset struct {
	// Dates holds every successfully normalized row in input order.
	// The bar-chart and day-of-year views count these, duplicates
	// included.
	Dates []core.Date
	// Unique holds the first occurrence per ISO date. The calendar
	// heatmap counts these: a day is either met on or not, while the
	// bar charts keep every row. The two views intentionally disagree
	// on duplicates.
	Unique []core.Date
	// Skipped counts rejected rows by reason.
	Skipped map[core.RejectReason]int
	// Total is the number of raw rows seen, good and bad.
	Total int
}

// SkippedTotal sums the rejected rows across reasons.
func (d *Dataset) SkippedTotal() int {
	n := 0
	for _, c := range d.Skipped {
		n += c
	}
	return n
}

// Years returns the observed year span of the dataset.
func (d *Dataset) Years() (min, max int, ok bool) {
	if len(d.Dates) == 0 {
		return 0, 0, false
	}
	min, max = d.Dates[0].Year, d.Dates[0].Year
	for _, dt := range d.Dates {
		if dt.Year < min {
			min = dt.Year
		}
		if dt.Year > max {
			max = dt.Year
		}
	}
	return min, max, true
}

type Loader struct {
	src    records.Source
	logger *log.Logger
}

func NewLoader(src records.Source, logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.New(log.ComponentIngest, log.Config{})
	}
	return &Loader{src: src, logger: logger}
}

// Load lists the source and normalizes every row. A source failure is the
// one terminal error (load_failure); per-row rejects are absorbed, counted
// and logged, and never abort the remaining rows.
func (l *Loader) Load(ctx context.Context) (*Dataset, error) {
	recs, err := l.src.ListRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", core.ReasonLoadFailure, err)
	}

	ds := &Dataset{
		Skipped: make(map[core.RejectReason]int),
		Total:   len(recs),
	}
	seen := make(map[string]struct{}, len(recs))

	for _, rec := range recs {
		d, err := core.Normalize(rec.Date)
		if err != nil {
			reason, _ := core.ReasonOf(err)
			ds.Skipped[reason]++
			l.logger.Warn("Row skipped",
				log.FieldLine, rec.Line,
				log.FieldRawDate, rec.Date,
				log.FieldReason, string(reason))
			continue
		}
		ds.Dates = append(ds.Dates, d)
		iso := d.ISO()
		if _, dup := seen[iso]; !dup {
			seen[iso] = struct{}{}
			ds.Unique = append(ds.Unique, d)
		}
	}

	l.logger.Info("Dataset loaded",
		log.FieldRows, len(ds.Dates),
		"unique", len(ds.Unique),
		log.FieldSkipped, ds.SkippedTotal())
	return ds, nil
}
