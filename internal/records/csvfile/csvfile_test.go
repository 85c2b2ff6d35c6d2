package csvfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "meetings.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestListRecords(t *testing.T) {
	path := writeFile(t, "Place,Date,Attendees\nLeiden,01/01/1670,12\nDelft,02/061671,\nUtrecht,?,9\n")
	recs, err := New(path).ListRecords(context.Background())
	if err != nil {
		t.Fatalf("ListRecords: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("got %d records, want 3", len(recs))
	}
	if recs[0].Date != "01/01/1670" {
		t.Fatalf("record 0 date = %q", recs[0].Date)
	}
	if recs[0].Fields["Place"] != "Leiden" {
		t.Fatalf("record 0 place = %q", recs[0].Fields["Place"])
	}
	if recs[0].Line != 2 {
		t.Fatalf("record 0 line = %d, want 2", recs[0].Line)
	}
	// placeholder dates are carried through; the normalizer rejects them
	if recs[2].Date != "?" {
		t.Fatalf("record 2 date = %q", recs[2].Date)
	}
}

func TestListRecordsShortRow(t *testing.T) {
	path := writeFile(t, "Date,Place\n01/01/1670\n")
	recs, err := New(path).ListRecords(context.Background())
	if err != nil {
		t.Fatalf("ListRecords: %v", err)
	}
	if recs[0].Date != "01/01/1670" {
		t.Fatalf("date = %q", recs[0].Date)
	}
	if _, ok := recs[0].Fields["Place"]; ok {
		t.Fatalf("short row should not invent a Place value")
	}
}

func TestListRecordsHeaderCaseInsensitive(t *testing.T) {
	path := writeFile(t, "place,date\nLeiden,01/01/1670\n")
	recs, err := New(path).ListRecords(context.Background())
	if err != nil {
		t.Fatalf("ListRecords: %v", err)
	}
	if recs[0].Date != "01/01/1670" {
		t.Fatalf("date = %q", recs[0].Date)
	}
}

func TestListRecordsErrors(t *testing.T) {
	if _, err := New(filepath.Join(t.TempDir(), "missing.csv")).ListRecords(context.Background()); err == nil {
		t.Fatal("expected error for missing file")
	}
	path := writeFile(t, "Place,Attendees\nLeiden,12\n")
	if _, err := New(path).ListRecords(context.Background()); err == nil {
		t.Fatal("expected error for missing Date column")
	}
}
