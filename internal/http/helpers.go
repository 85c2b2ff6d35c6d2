package http

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"notulen/internal/core"
)

// parseYear extracts the year query parameter.
func parseYear(r *http.Request) (int, error) {
	v := strings.TrimSpace(r.URL.Query().Get("year"))
	if v == "" {
		return 0, fmt.Errorf("missing year parameter")
	}
	y, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid year %q", v)
	}
	return y, nil
}

// parseYearRange reads the from/to query pair, falling back to the given
// default filter when neither is set. A half-open pair is an error.
func parseYearRange(r *http.Request, fallback *core.YearRange) (*core.YearRange, error) {
	from := strings.TrimSpace(r.URL.Query().Get("from"))
	to := strings.TrimSpace(r.URL.Query().Get("to"))
	if from == "" && to == "" {
		return fallback, nil
	}
	if from == "" || to == "" {
		return nil, fmt.Errorf("from and to must be given together")
	}
	min, err := strconv.Atoi(from)
	if err != nil {
		return nil, fmt.Errorf("invalid from year %q", from)
	}
	max, err := strconv.Atoi(to)
	if err != nil {
		return nil, fmt.Errorf("invalid to year %q", to)
	}
	if min > max {
		return nil, fmt.Errorf("year range %d..%d: from exceeds to", min, max)
	}
	return &core.YearRange{Min: min, Max: max}, nil
}

// parseISODate parses a YYYY-MM-DD date string into a validated Date.
func parseISODate(dateStr string) (core.Date, error) {
	t, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return core.Date{}, err
	}
	return core.NewDate(t.Year(), int(t.Month()), t.Day())
}

var colorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// validColor accepts six-digit hex colors only; named CSS colors would
// pass straight into SVG attributes, so they are rejected.
func validColor(c string) bool {
	return colorRe.MatchString(c)
}

// sanitizeInput removes control characters and trims whitespace.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
}

// generateRequestID creates a unique request ID for tracing.
func generateRequestID() string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		return fmt.Sprintf("req_%d", time.Now().UnixNano())
	}
	return "req_" + hex.EncodeToString(bytes)
}
