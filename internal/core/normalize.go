package core

import (
	"regexp"
	"strconv"
	"strings"
)

// The source records date their meetings as DD/MM/YYYY, but not
// consistently: some rows drop the separator before the year, some use a
// two-digit year, and unknown dates are marked with a question mark.

const (
	// placeholder marks unknown data in the source records.
	placeholder = "?"
	// shortYearCentury expands two-digit years. The records are known to
	// originate in the 1600s; this is a property of the dataset, not a
	// "current century" rule.
	shortYearCentury = "16"
)

var (
	// 02/061671 - the separator between month and year went missing.
	runTogetherRe = regexp.MustCompile(`^(\d{2})/(\d{2})(\d{4})$`)
	// 01/01/70 - two-digit year.
	shortYearRe = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{2})$`)
)

// Normalize turns a raw date token into a validated Date. Rejection is
// reported as a *RejectError with reason "incomplete" (empty or
// placeholder input) or "invalid_date" (not a real calendar date); no
// other error is ever returned.
//
// Three textual shapes are accepted, tried in order: the run-together
// DD/MMYYYY form (repaired by re-inserting the missing separator), the
// short DD/MM/YY form (expanded into the 1600s), and plain DD/MM/YYYY.
func Normalize(raw string) (Date, error) {
	s := strings.TrimSpace(raw)
	if s == "" || strings.Contains(s, placeholder) {
		return Date{}, &RejectError{Reason: ReasonIncomplete, Raw: raw}
	}

	if m := runTogetherRe.FindStringSubmatch(s); m != nil {
		s = m[1] + "/" + m[2] + "/" + m[3]
	} else if m := shortYearRe.FindStringSubmatch(s); m != nil {
		s = m[1] + "/" + m[2] + "/" + shortYearCentury + m[3]
	}

	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return Date{}, &RejectError{Reason: ReasonInvalidDate, Raw: raw}
	}
	day, err1 := strconv.Atoi(parts[0])
	month, err2 := strconv.Atoi(parts[1])
	year, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return Date{}, &RejectError{Reason: ReasonInvalidDate, Raw: raw}
	}

	d, err := NewDate(year, month, day)
	if err != nil {
		return Date{}, &RejectError{Reason: ReasonInvalidDate, Raw: raw}
	}
	return d, nil
}
