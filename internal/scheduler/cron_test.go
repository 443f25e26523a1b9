package scheduler

import (
	"testing"
	"time"
)

func TestValidateCronExpr(t *testing.T) {
	valid := []string{
		"0 3 * * *",
		"*/15 * * * *",
		"30 2 * * 0",
	}
	for _, expr := range valid {
		if err := ValidateCronExpr(expr); err != nil {
			t.Errorf("ValidateCronExpr(%q) = %v, want nil", expr, err)
		}
	}

	invalid := []string{
		"",
		"not a cron",
		"0 3 * *",     // four fields
		"0 3 * * * *", // six fields
		"61 * * * *",  // minute out of range
	}
	for _, expr := range invalid {
		if err := ValidateCronExpr(expr); err == nil {
			t.Errorf("ValidateCronExpr(%q) = nil, want error", expr)
		}
	}
}

func TestNextAfter(t *testing.T) {
	from := time.Date(2024, 6, 1, 2, 30, 0, 0, time.UTC)

	// Daily at 03:00: same day.
	next, err := NextAfter("0 3 * * *", "UTC", from)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2024, 6, 1, 3, 0, 0, 0, time.UTC)
	if !next.Equal(want) {
		t.Errorf("next = %v, want %v", next, want)
	}

	// Past today's slot: tomorrow.
	next, err = NextAfter("0 3 * * *", "UTC", time.Date(2024, 6, 1, 4, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want = time.Date(2024, 6, 2, 3, 0, 0, 0, time.UTC)
	if !next.Equal(want) {
		t.Errorf("next = %v, want %v", next, want)
	}
}

func TestNextAfter_BadTimezoneFallsBackToUTC(t *testing.T) {
	from := time.Date(2024, 6, 1, 2, 30, 0, 0, time.UTC)

	next, err := NextAfter("0 3 * * *", "Not/AZone", from)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2024, 6, 1, 3, 0, 0, 0, time.UTC)
	if !next.Equal(want) {
		t.Errorf("next = %v, want %v", next, want)
	}
}

func TestNextAfter_BadExpr(t *testing.T) {
	if _, err := NextAfter("bogus", "UTC", time.Now()); err == nil {
		t.Fatal("expected error for malformed expression")
	}
}
