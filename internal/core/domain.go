package core

import (
	"errors"
	"fmt"
	"time"
)

// RejectReason classifies why a raw record was excluded from aggregation.
type RejectReason string

const (
	// ReasonIncomplete marks rows whose date text is empty or contains a
	// placeholder for unknown data.
	ReasonIncomplete RejectReason = "incomplete"
	// ReasonInvalidDate marks rows whose date text does not denote a real
	// calendar date.
	ReasonInvalidDate RejectReason = "invalid_date"
	// ReasonLoadFailure marks the one-time failure of the initial record
	// load. It is never attached to individual rows.
	ReasonLoadFailure RejectReason = "load_failure"
)

// RejectError is the normalizer's tagged outcome for rejected input.
// It is an ordinary return value, never a panic.
type RejectError struct {
	Reason RejectReason
	Raw    string
}

func (e *RejectError) Error() string {
	return fmt.Sprintf("reject %q: %s", e.Raw, e.Reason)
}

// ReasonOf extracts the reject reason from an error, if it carries one.
func ReasonOf(err error) (RejectReason, bool) {
	var re *RejectError
	if errors.As(err, &re) {
		return re.Reason, true
	}
	return "", false
}

type (
	// RawRecord is one opaque row of input data. Only the Date text is
	// interpreted by this package; the remaining columns ride along.
	RawRecord struct {
		Line   int
		Date   string
		Fields map[string]string
	}

	// Date is a validated calendar date under the proleptic Gregorian
	// calendar. It is never constructed from an invalid triple.
	Date struct {
		Year  int
		Month int // 1-12
		Day   int // 1-31
	}

	// ColoredDay is a user-declared annotation for one calendar date.
	// Within a year, the last declaration for a date wins.
	ColoredDay struct {
		Date  Date
		Color string
	}
)

// NewDate builds a Date, rejecting triples that do not denote a real
// calendar date (month 13, day 32, Feb 29 outside leap years, ...).
// Invalid input is rejected, never clamped.
func NewDate(year, month, day int) (Date, error) {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return Date{}, &RejectError{
			Reason: ReasonInvalidDate,
			Raw:    fmt.Sprintf("%02d/%02d/%04d", day, month, year),
		}
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

// ISO returns the canonical zero-padded YYYY-MM-DD form. It is the
// deduplication key everywhere duplicates are dropped.
func (d Date) ISO() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// DayMonthYear returns the DD/MM/YYYY form of the date.
func (d Date) DayMonthYear() string {
	return fmt.Sprintf("%02d/%02d/%04d", d.Day, d.Month, d.Year)
}

// DayOfYear returns the zero-based offset from January 1 of the date's
// year, in [0, 365].
func (d Date) DayOfYear() int {
	return d.Time().YearDay() - 1
}

// Time returns the date at midnight UTC.
func (d Date) Time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// IsLeapYear implements the Gregorian leap-year rule.
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}
