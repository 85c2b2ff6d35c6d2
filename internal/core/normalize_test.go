package core

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		raw  string
		want Date
	}{
		{"01/01/1670", Date{1670, 1, 1}},
		{"31/12/1699", Date{1699, 12, 31}},
		{"  15/08/1672  ", Date{1672, 8, 15}},
		// two-digit years belong to the 1600s
		{"01/01/70", Date{1670, 1, 1}},
		{"29/02/96", Date{1696, 2, 29}}, // 1696 is a leap year
		// missing separator between month and year
		{"02/061671", Date{1671, 6, 2}},
		{"28/121688", Date{1688, 12, 28}},
		// leap day in a leap year
		{"29/02/2024", Date{2024, 2, 29}},
	}
	for _, tc := range cases {
		got, err := Normalize(tc.raw)
		if err != nil {
			t.Fatalf("Normalize(%q): unexpected error %v", tc.raw, err)
		}
		if got != tc.want {
			t.Fatalf("Normalize(%q) = %+v, want %+v", tc.raw, got, tc.want)
		}
	}
}

func TestNormalizeRejects(t *testing.T) {
	cases := []struct {
		raw    string
		reason RejectReason
	}{
		{"", ReasonIncomplete},
		{"   ", ReasonIncomplete},
		{"?", ReasonIncomplete},
		{"12/?/1670", ReasonIncomplete},
		{"29/02/2023", ReasonInvalidDate}, // not a leap year
		{"31/02/2024", ReasonInvalidDate}, // February has 29 days in 2024
		{"31/04/1675", ReasonInvalidDate}, // April has 30 days
		{"00/01/1670", ReasonInvalidDate},
		{"01/13/1670", ReasonInvalidDate},
		{"not a date", ReasonInvalidDate},
		{"01-01-1670", ReasonInvalidDate},
		{"1670", ReasonInvalidDate},
	}
	for _, tc := range cases {
		_, err := Normalize(tc.raw)
		if err == nil {
			t.Fatalf("Normalize(%q): expected rejection", tc.raw)
		}
		reason, ok := ReasonOf(err)
		if !ok {
			t.Fatalf("Normalize(%q): error %v carries no reason", tc.raw, err)
		}
		if reason != tc.reason {
			t.Fatalf("Normalize(%q) rejected as %s, want %s", tc.raw, reason, tc.reason)
		}
	}
}

// Placeholder input must always classify as incomplete, even when the rest
// of the token could never parse as a date.
func TestNormalizePlaceholderWinsOverInvalid(t *testing.T) {
	for _, raw := range []string{"?", "??/??/????", "31/02/1?70", "99/99/99?9"} {
		_, err := Normalize(raw)
		reason, _ := ReasonOf(err)
		if reason != ReasonIncomplete {
			t.Fatalf("Normalize(%q) = %s, want incomplete", raw, reason)
		}
	}
}

// Valid DD/MM/YYYY input round-trips through the normalizer.
func TestNormalizeRoundTrip(t *testing.T) {
	inputs := []string{"01/01/1670", "29/02/1696", "31/12/1699", "15/06/2024"}
	for _, raw := range inputs {
		d, err := Normalize(raw)
		if err != nil {
			t.Fatalf("Normalize(%q): %v", raw, err)
		}
		if got := d.DayMonthYear(); got != raw {
			t.Fatalf("round trip of %q produced %q", raw, got)
		}
	}
}

func TestDateISO(t *testing.T) {
	d, err := Normalize("02/061671")
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if d.ISO() != "1671-06-02" {
		t.Fatalf("ISO() = %q, want 1671-06-02", d.ISO())
	}
}

func TestDayOfYear(t *testing.T) {
	cases := []struct {
		d    Date
		want int
	}{
		{Date{1670, 1, 1}, 0},
		{Date{1670, 2, 1}, 31},
		{Date{1670, 12, 31}, 364},
		{Date{1696, 12, 31}, 365}, // leap year
		{Date{2024, 3, 1}, 60},    // past a leap day
	}
	for _, tc := range cases {
		if got := tc.d.DayOfYear(); got != tc.want {
			t.Fatalf("%s DayOfYear() = %d, want %d", tc.d.ISO(), got, tc.want)
		}
	}
}

func TestIsLeapYear(t *testing.T) {
	cases := map[int]bool{
		1696: true,
		1700: false, // century, not divisible by 400
		1600: true,
		2023: false,
		2024: true,
	}
	for year, want := range cases {
		if got := IsLeapYear(year); got != want {
			t.Fatalf("IsLeapYear(%d) = %v, want %v", year, got, want)
		}
	}
}

func TestNewDateRejectsInvalid(t *testing.T) {
	bads := [][3]int{
		{1670, 13, 1},
		{1670, 0, 1},
		{1670, 1, 0},
		{1670, 1, 32},
		{2023, 2, 29},
	}
	for _, b := range bads {
		if _, err := NewDate(b[0], b[1], b[2]); err == nil {
			t.Fatalf("NewDate(%v) expected error", b)
		}
	}
}
