package render

import (
	"fmt"
	"io"
	"sort"

	svg "github.com/ajstarks/svgo"

	"notulen/internal/core"
)

const (
	backgroundFill = "#f2efe6"
	overlayFill    = "#1d3557"
	tickStyle      = "stroke:#999;stroke-width:1"
	labelStyle     = "font-family:sans-serif;font-size:10px;fill:#555"
	titleStyle     = "font-family:sans-serif;font-size:12px;fill:#222"
)

// YearHeatmap draws the calendar strip for one year: a cell per day,
// annotation color when declared, and the meeting-frequency overlay with
// opacity scaled per occurrence. Input maps are read in sorted order so
// output is deterministic.
func YearHeatmap(w io.Writer, year int, colors map[int]string, counts core.FrequencyTable, l Layout) {
	width := l.stripWidth()
	height := 2*l.MarginY + l.CellHeight + 16

	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Text(l.MarginX, l.MarginY-6, fmt.Sprintf("%d", year), titleStyle)

	top := l.MarginY
	for doy := 0; doy < daysInYear(year); doy++ {
		fill := backgroundFill
		if c, ok := colors[doy]; ok {
			fill = c
		}
		canvas.Rect(l.cellX(doy), top, l.CellWidth, l.CellHeight, "fill:"+fill)
	}

	// frequency overlay, sorted for stable output
	days := make([]int, 0, len(counts))
	for doy := range counts {
		days = append(days, doy)
	}
	sort.Ints(days)
	for _, doy := range days {
		n := counts[doy]
		if n <= 0 || doy >= daysInYear(year) {
			continue
		}
		canvas.Rect(l.cellX(doy), top, l.CellWidth, l.CellHeight,
			fmt.Sprintf("fill:%s;fill-opacity:%.2f", overlayFill, l.opacity(n)))
	}

	monthAxis(canvas, year, top+l.CellHeight, l)
	canvas.End()
}

// DayOfYearStrip draws the cross-year day-of-year overlay: one slot per
// index, opacity per total occurrence count. The leap slot 365 is always
// drawn; it simply stays empty for datasets without leap-day meetings.
func DayOfYearStrip(w io.Writer, counts core.FrequencyTable, l Layout) {
	width := l.stripWidth()
	height := 2*l.MarginY + l.CellHeight + 16

	canvas := svg.New(w)
	canvas.Start(width, height)

	top := l.MarginY
	for doy := 0; doy < DaysSpan; doy++ {
		canvas.Rect(l.cellX(doy), top, l.CellWidth, l.CellHeight, "fill:"+backgroundFill)
	}

	days := make([]int, 0, len(counts))
	for doy := range counts {
		days = append(days, doy)
	}
	sort.Ints(days)
	for _, doy := range days {
		n := counts[doy]
		if n <= 0 || doy < 0 || doy >= DaysSpan {
			continue
		}
		canvas.Rect(l.cellX(doy), top, l.CellWidth, l.CellHeight,
			fmt.Sprintf("fill:%s;fill-opacity:%.2f", overlayFill, l.opacity(n)))
	}

	// tick months against a leap year so slot 365 gets a home
	monthAxis(canvas, 2024, top+l.CellHeight, l)
	canvas.End()
}

// monthAxis draws the tick marks and month labels under a strip.
func monthAxis(canvas *svg.SVG, year, top int, l Layout) {
	for m := 1; m <= 12; m++ {
		x := l.cellX(monthStart(year, m))
		canvas.Line(x, top, x, top+4, tickStyle)
		canvas.Text(x+2, top+14, monthAbbrev(m), labelStyle)
	}
}
