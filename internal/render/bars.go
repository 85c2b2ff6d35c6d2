package render

import (
	"fmt"
	"io"
	"sort"

	svg "github.com/ajstarks/svgo"

	"notulen/internal/core"
)

const (
	barFill   = "#1d3557"
	axisStyle = "stroke:#555;stroke-width:1"
)

// barChart draws the shared bar geometry: one bar per key in ascending
// key order, heights scaled against the maximum count. label turns a key
// into its axis text; every labelStep-th bar is labelled.
func barChart(w io.Writer, table core.FrequencyTable, l Layout, label func(int) string, labelStep int) {
	keys := make([]int, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	barWidth := l.CellWidth * 4
	barGap := l.CellGap * 2
	plotHeight := l.CellHeight * 8
	width := 2*l.MarginX + len(keys)*(barWidth+barGap)
	height := 2*l.MarginY + plotHeight + 16

	maxCount := 0
	for _, k := range keys {
		if table[k] > maxCount {
			maxCount = table[k]
		}
	}

	canvas := svg.New(w)
	canvas.Start(width, height)

	baseline := l.MarginY + plotHeight
	for i, k := range keys {
		x := l.MarginX + i*(barWidth+barGap)
		if n := table[k]; n > 0 && maxCount > 0 {
			barHeight := n * plotHeight / maxCount
			if barHeight < 1 {
				barHeight = 1
			}
			canvas.Rect(x, baseline-barHeight, barWidth, barHeight, "fill:"+barFill)
		}
		if i%labelStep == 0 {
			canvas.Text(x, baseline+14, label(k), labelStyle)
		}
	}
	canvas.Line(l.MarginX, baseline, width-l.MarginX, baseline, axisStyle)
	if maxCount > 0 {
		canvas.Text(l.MarginX, l.MarginY-6, fmt.Sprintf("max %d", maxCount), labelStyle)
	}
	canvas.End()
}

// YearBars draws meetings per year. The table is dense, so years without
// meetings appear as gaps over the axis rather than being elided.
func YearBars(w io.Writer, table core.FrequencyTable, l Layout) {
	step := 1
	if len(table) > 24 {
		step = 5
	}
	barChart(w, table, l, func(year int) string {
		return fmt.Sprintf("%d", year)
	}, step)
}

// MonthBars draws meetings per month number, all twelve months present.
func MonthBars(w io.Writer, table core.FrequencyTable, l Layout) {
	barChart(w, table, l, monthAbbrev, 1)
}
