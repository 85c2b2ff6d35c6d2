package core

import (
	"math/rand"
	"testing"
)

func mustDate(t *testing.T, year, month, day int) Date {
	t.Helper()
	d, err := NewDate(year, month, day)
	if err != nil {
		t.Fatalf("NewDate(%d,%d,%d): %v", year, month, day, err)
	}
	return d
}

func TestCountByYearDense(t *testing.T) {
	dates := []Date{
		mustDate(t, 1999, 1, 1),
		mustDate(t, 2001, 1, 1),
	}
	table := CountByYear(dates)
	want := FrequencyTable{1999: 1, 2000: 0, 2001: 1}
	if len(table) != len(want) {
		t.Fatalf("table has %d keys, want %d: %v", len(table), len(want), table)
	}
	for y, n := range want {
		got, ok := table[y]
		if !ok {
			t.Fatalf("year %d missing from dense table", y)
		}
		if got != n {
			t.Fatalf("year %d = %d, want %d", y, got, n)
		}
	}
}

func TestCountByYearEmpty(t *testing.T) {
	if table := CountByYear(nil); len(table) != 0 {
		t.Fatalf("expected empty table, got %v", table)
	}
}

func TestCountByMonthAllPresent(t *testing.T) {
	table := CountByMonth([]Date{
		mustDate(t, 1670, 3, 10),
		mustDate(t, 1671, 3, 17),
		mustDate(t, 1671, 11, 2),
	})
	if len(table) != 12 {
		t.Fatalf("table has %d keys, want 12", len(table))
	}
	if table[3] != 2 || table[11] != 1 {
		t.Fatalf("unexpected counts: %v", table)
	}
	for m := 1; m <= 12; m++ {
		if _, ok := table[m]; !ok {
			t.Fatalf("month %d missing", m)
		}
	}
}

func TestCountByDayOfYear(t *testing.T) {
	dates := []Date{
		mustDate(t, 1670, 1, 1),
		mustDate(t, 1671, 1, 1),
		mustDate(t, 1671, 2, 1),
	}
	table := CountByDayOfYear(dates, nil)
	if table[0] != 2 || table[31] != 1 {
		t.Fatalf("unexpected counts: %v", table)
	}
	if len(table) != 2 {
		t.Fatalf("expected only populated keys, got %v", table)
	}
}

func TestCountByDayOfYearRange(t *testing.T) {
	dates := []Date{
		mustDate(t, 1669, 1, 1),
		mustDate(t, 1670, 1, 1),
		mustDate(t, 1675, 1, 1),
		mustDate(t, 1676, 1, 1),
	}
	table := CountByDayOfYear(dates, &YearRange{Min: 1670, Max: 1675})
	if table[0] != 2 {
		t.Fatalf("expected 2 dates inside range, got %v", table)
	}
}

// Day-of-year accumulation is commutative: shuffling the input never
// changes the table.
func TestCountByDayOfYearOrderInvariant(t *testing.T) {
	var dates []Date
	for day := 1; day <= 28; day++ {
		for rep := 0; rep <= day%3; rep++ {
			dates = append(dates, mustDate(t, 1670+rep, day%12+1, day))
		}
	}
	want := CountByDayOfYear(dates, nil)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 5; i++ {
		rng.Shuffle(len(dates), func(a, b int) {
			dates[a], dates[b] = dates[b], dates[a]
		})
		got := CountByDayOfYear(dates, nil)
		if len(got) != len(want) {
			t.Fatalf("shuffle %d changed key count", i)
		}
		for k, n := range want {
			if got[k] != n {
				t.Fatalf("shuffle %d changed count for day %d: %d != %d", i, k, got[k], n)
			}
		}
	}
}

// The heatmap path dedupes on ISO date; the bar-chart path does not.
// Both behaviors are intentional and verified independently.
func TestDedupeVersusPlainCounting(t *testing.T) {
	twice := []Date{
		mustDate(t, 1670, 5, 12),
		mustDate(t, 1670, 5, 12),
	}

	deduped := DedupeByISO(twice)
	if len(deduped) != 1 {
		t.Fatalf("dedupe kept %d dates, want 1", len(deduped))
	}
	if n := CountByDayOfYear(deduped, nil)[twice[0].DayOfYear()]; n != 1 {
		t.Fatalf("deduplicated path counted %d, want 1", n)
	}
	if n := CountByDayOfYear(twice, nil)[twice[0].DayOfYear()]; n != 2 {
		t.Fatalf("plain path counted %d, want 2", n)
	}
}

func TestDedupeKeepsFirstOccurrence(t *testing.T) {
	dates := []Date{
		mustDate(t, 1670, 1, 2),
		mustDate(t, 1670, 1, 1),
		mustDate(t, 1670, 1, 2),
		mustDate(t, 1670, 1, 3),
	}
	got := DedupeByISO(dates)
	want := []string{"1670-01-02", "1670-01-01", "1670-01-03"}
	if len(got) != len(want) {
		t.Fatalf("got %d dates, want %d", len(got), len(want))
	}
	for i, iso := range want {
		if got[i].ISO() != iso {
			t.Fatalf("position %d: %s, want %s", i, got[i].ISO(), iso)
		}
	}
}

func TestColorTableForYear(t *testing.T) {
	days := []ColoredDay{
		{Date: mustDate(t, 1670, 1, 1), Color: "#ff0000"},
		{Date: mustDate(t, 1671, 1, 1), Color: "#00ff00"}, // wrong year, dropped
		{Date: mustDate(t, 1670, 1, 1), Color: "#0000ff"}, // same day, last write wins
		{Date: mustDate(t, 1670, 2, 1), Color: "#ffff00"},
	}
	table := ColorTableForYear(1670, days)
	if len(table) != 2 {
		t.Fatalf("table has %d entries, want 2: %v", len(table), table)
	}
	if table[0] != "#0000ff" {
		t.Fatalf("day 0 color = %s, want last write #0000ff", table[0])
	}
	if table[31] != "#ffff00" {
		t.Fatalf("day 31 color = %s, want #ffff00", table[31])
	}
}
