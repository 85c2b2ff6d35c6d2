// Package render turns frequency tables and color maps into SVG. Every
// function is a stateless transform: same tables in, same bytes out.
package render

import (
	"time"

	"notulen/internal/core"
)

// DaysSpan is the x-axis domain of every chart: one slot per possible
// day-of-year index.
const DaysSpan = 366

// Layout carries the pixel-geometry knobs. These are presentation
// configuration only; nothing here affects what is counted.
type Layout struct {
	CellWidth   int
	CellHeight  int
	CellGap     int
	MarginX     int
	MarginY     int
	OpacityStep float64
}

// DefaultLayout mirrors the configuration defaults.
func DefaultLayout() Layout {
	return Layout{
		CellWidth:   3,
		CellHeight:  14,
		CellGap:     1,
		MarginX:     20,
		MarginY:     20,
		OpacityStep: 0.25,
	}
}

// cellX maps a day-of-year index onto its x pixel coordinate.
func (l Layout) cellX(dayOfYear int) int {
	return l.MarginX + dayOfYear*(l.CellWidth+l.CellGap)
}

// stripWidth is the total width of a day-of-year strip.
func (l Layout) stripWidth() int {
	return 2*l.MarginX + DaysSpan*(l.CellWidth+l.CellGap)
}

// opacity scales occurrence count into a fill opacity, saturating at 1.
func (l Layout) opacity(count int) float64 {
	op := float64(count) * l.OpacityStep
	if op > 1 {
		return 1
	}
	return op
}

func daysInYear(year int) int {
	if core.IsLeapYear(year) {
		return 366
	}
	return 365
}

// monthStart returns the zero-based day-of-year of the first day of month
// m in the given year.
func monthStart(year, m int) int {
	return time.Date(year, time.Month(m), 1, 0, 0, 0, 0, time.UTC).YearDay() - 1
}

func monthAbbrev(m int) string {
	return time.Month(m).String()[:3]
}
