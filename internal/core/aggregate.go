package core

// FrequencyTable maps a bucket key (year, month number or day-of-year
// index) to a non-negative occurrence count.
type FrequencyTable map[int]int

// YearRange is an inclusive [Min, Max] filter on calendar years.
type YearRange struct {
	Min int
	Max int
}

// Contains reports whether year falls inside the range.
func (r YearRange) Contains(year int) bool {
	return year >= r.Min && year <= r.Max
}

// CountByYear counts meetings per calendar year. The table is dense: every
// year between the minimum and maximum observed year is present, zero
// years included, so bar charts show the gaps. An empty input yields an
// empty table.
func CountByYear(dates []Date) FrequencyTable {
	table := FrequencyTable{}
	if len(dates) == 0 {
		return table
	}
	min, max := dates[0].Year, dates[0].Year
	for _, d := range dates {
		if d.Year < min {
			min = d.Year
		}
		if d.Year > max {
			max = d.Year
		}
	}
	for y := min; y <= max; y++ {
		table[y] = 0
	}
	for _, d := range dates {
		table[d.Year]++
	}
	return table
}

// CountByMonth counts meetings per month number. All twelve months are
// always present.
func CountByMonth(dates []Date) FrequencyTable {
	table := make(FrequencyTable, 12)
	for m := 1; m <= 12; m++ {
		table[m] = 0
	}
	for _, d := range dates {
		table[d.Month]++
	}
	return table
}

// CountByDayOfYear counts meetings per zero-based day-of-year index.
// Only populated indices appear; the domain is [0, 365] by construction.
// When filter is non-nil, dates outside the range are excluded before
// counting. Accumulation is commutative, so the result does not depend on
// input order.
func CountByDayOfYear(dates []Date, filter *YearRange) FrequencyTable {
	table := FrequencyTable{}
	for _, d := range dates {
		if filter != nil && !filter.Contains(d.Year) {
			continue
		}
		table[d.DayOfYear()]++
	}
	return table
}

// DedupeByISO keeps the first occurrence of each ISO date, preserving
// input order. This is the calendar-heatmap ingestion policy: later rows
// with an already-seen date are dropped silently, not reported as errors.
func DedupeByISO(dates []Date) []Date {
	seen := make(map[string]struct{}, len(dates))
	out := make([]Date, 0, len(dates))
	for _, d := range dates {
		iso := d.ISO()
		if _, ok := seen[iso]; ok {
			continue
		}
		seen[iso] = struct{}{}
		out = append(out, d)
	}
	return out
}

// ColorTableForYear builds the per-year annotation map for the calendar
// heatmap: day-of-year index to color. Annotations whose date belongs to a
// different year than the table's key are silently dropped, a policy
// choice rather than a fallback. Duplicate days within the year are
// last-write-wins.
func ColorTableForYear(year int, days []ColoredDay) map[int]string {
	table := map[int]string{}
	for _, cd := range days {
		if cd.Date.Year != year {
			continue
		}
		table[cd.Date.DayOfYear()] = cd.Color
	}
	return table
}
