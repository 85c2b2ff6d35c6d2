package render

import (
	"bytes"
	"strings"
	"testing"

	"notulen/internal/core"
)

func TestYearHeatmap(t *testing.T) {
	colors := map[int]string{0: "#c0392b"}
	counts := core.FrequencyTable{0: 1, 31: 5}

	var buf bytes.Buffer
	YearHeatmap(&buf, 1670, colors, counts, DefaultLayout())
	out := buf.String()

	if !strings.Contains(out, "<svg") || !strings.Contains(out, "</svg>") {
		t.Fatal("output is not an svg document")
	}
	// 365 background cells (1670 is not a leap year) + 2 overlay cells
	if got := strings.Count(out, "<rect"); got != 367 {
		t.Fatalf("rect count = %d, want 367", got)
	}
	if !strings.Contains(out, "fill:#c0392b") {
		t.Fatal("annotation color missing")
	}
	// count 5 saturates at full opacity with the default 0.25 step
	if !strings.Contains(out, "fill-opacity:1.00") {
		t.Fatal("saturated overlay opacity missing")
	}
	if !strings.Contains(out, "fill-opacity:0.25") {
		t.Fatal("single-occurrence opacity missing")
	}
	if !strings.Contains(out, ">1670<") {
		t.Fatal("year label missing")
	}
}

func TestYearHeatmapLeapYear(t *testing.T) {
	var buf bytes.Buffer
	YearHeatmap(&buf, 1696, nil, nil, DefaultLayout())
	if got := strings.Count(buf.String(), "<rect"); got != 366 {
		t.Fatalf("rect count = %d, want 366 for leap year", got)
	}
}

func TestYearHeatmapDeterministic(t *testing.T) {
	colors := map[int]string{3: "#111111", 60: "#222222", 10: "#333333"}
	counts := core.FrequencyTable{10: 1, 3: 2, 200: 1}

	var a, b bytes.Buffer
	YearHeatmap(&a, 1671, colors, counts, DefaultLayout())
	YearHeatmap(&b, 1671, colors, counts, DefaultLayout())
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Fatal("identical input produced different bytes")
	}
}

func TestDayOfYearStrip(t *testing.T) {
	var buf bytes.Buffer
	DayOfYearStrip(&buf, core.FrequencyTable{0: 2, 365: 1}, DefaultLayout())
	out := buf.String()
	// 366 slots + 2 overlays
	if got := strings.Count(out, "<rect"); got != 368 {
		t.Fatalf("rect count = %d, want 368", got)
	}
	if !strings.Contains(out, "fill-opacity:0.50") {
		t.Fatal("two-occurrence opacity missing")
	}
}

func TestYearBars(t *testing.T) {
	table := core.FrequencyTable{1670: 2, 1671: 0, 1672: 4}
	var buf bytes.Buffer
	YearBars(&buf, table, DefaultLayout())
	out := buf.String()

	// zero-count years get a label slot but no bar
	if got := strings.Count(out, "<rect"); got != 2 {
		t.Fatalf("bar count = %d, want 2", got)
	}
	for _, label := range []string{">1670<", ">1671<", ">1672<"} {
		if !strings.Contains(out, label) {
			t.Fatalf("label %s missing", label)
		}
	}
	if !strings.Contains(out, "max 4") {
		t.Fatal("max annotation missing")
	}
}

func TestMonthBars(t *testing.T) {
	table := core.CountByMonth(nil)
	table[3] = 7
	var buf bytes.Buffer
	MonthBars(&buf, table, DefaultLayout())
	out := buf.String()
	if !strings.Contains(out, ">Mar<") || !strings.Contains(out, ">Dec<") {
		t.Fatal("month labels missing")
	}
	if got := strings.Count(out, "<rect"); got != 1 {
		t.Fatalf("bar count = %d, want 1", got)
	}
}

func TestLayoutOpacitySaturates(t *testing.T) {
	l := DefaultLayout()
	if got := l.opacity(2); got != 0.5 {
		t.Fatalf("opacity(2) = %v", got)
	}
	if got := l.opacity(10); got != 1 {
		t.Fatalf("opacity(10) = %v, want saturation at 1", got)
	}
}
