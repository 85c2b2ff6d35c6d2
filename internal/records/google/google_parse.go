package google

import (
	"fmt"
	"strings"

	"notulen/internal/core"
)

// parseRecords converts a values matrix (as returned by the Sheets API)
// into raw records. The first row must be a header containing dateColumn.
func parseRecords(values [][]interface{}, dateColumn string) ([]core.RawRecord, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("missing header row")
	}
	headers := toStrings(values[0])
	dateCol := indexOf(headers, dateColumn)
	if dateCol == -1 {
		return nil, fmt.Errorf("no %q column in header %v", dateColumn, headers)
	}

	out := make([]core.RawRecord, 0, len(values)-1)
	for i := 1; i < len(values); i++ {
		row := toStrings(values[i])
		rec := core.RawRecord{
			Line:   i + 1,
			Date:   safeGet(row, dateCol),
			Fields: make(map[string]string, len(headers)),
		}
		for col, name := range headers {
			if col < len(row) {
				rec.Fields[name] = row[col]
			}
		}
		out = append(out, rec)
	}
	return out, nil
}

func toStrings(in []interface{}) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = strings.TrimSpace(fmt.Sprint(v))
	}
	return out
}

func indexOf(arr []string, target string) int {
	for i, v := range arr {
		if strings.EqualFold(strings.TrimSpace(v), strings.TrimSpace(target)) {
			return i
		}
	}
	return -1
}

func safeGet(arr []string, idx int) string {
	if idx < 0 || idx >= len(arr) {
		return ""
	}
	return arr[idx]
}
