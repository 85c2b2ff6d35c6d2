package memory

import (
	"context"
	"testing"

	"notulen/internal/core"
)

func TestStoreListRecords(t *testing.T) {
	s := NewFromDates("01/01/1670", "02/061671")
	recs, err := s.ListRecords(context.Background())
	if err != nil {
		t.Fatalf("ListRecords: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}
	// mutating the returned slice must not leak back into the store
	recs[0].Date = "mutated"
	again, _ := s.ListRecords(context.Background())
	if again[0].Date != "01/01/1670" {
		t.Fatalf("store leaked internal slice")
	}
}

func TestAnnotationsLastWriteWins(t *testing.T) {
	a := NewAnnotations()
	ctx := context.Background()
	d, err := core.NewDate(1670, 1, 1)
	if err != nil {
		t.Fatalf("NewDate: %v", err)
	}
	if err := a.PutColoredDay(ctx, core.ColoredDay{Date: d, Color: "#ff0000"}); err != nil {
		t.Fatalf("PutColoredDay: %v", err)
	}
	if err := a.PutColoredDay(ctx, core.ColoredDay{Date: d, Color: "#0000ff"}); err != nil {
		t.Fatalf("PutColoredDay: %v", err)
	}
	days, err := a.ListColoredDays(ctx)
	if err != nil {
		t.Fatalf("ListColoredDays: %v", err)
	}
	if len(days) != 1 {
		t.Fatalf("got %d colored days, want 1", len(days))
	}
	if days[0].Color != "#0000ff" {
		t.Fatalf("color = %s, want last write", days[0].Color)
	}
}
