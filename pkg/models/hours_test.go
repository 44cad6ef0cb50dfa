package models

import (
	"testing"
)

func TestWeeklyHoursScan(t *testing.T) {
	var h WeeklyHours
	err := h.Scan([]byte(`{"monday":{"open":"09:00","close":"17:00"},"sunday":null}`))
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if h["monday"] == nil || h["monday"].Open != "09:00" {
		t.Errorf("monday schedule not scanned: %+v", h["monday"])
	}
	if h["sunday"] != nil {
		t.Errorf("expected nil sunday entry, got %+v", h["sunday"])
	}

	// NULL column scans to nil map.
	var empty WeeklyHours
	if err := empty.Scan(nil); err != nil {
		t.Fatalf("Scan(nil) failed: %v", err)
	}
	if empty != nil {
		t.Errorf("expected nil map for NULL column, got %+v", empty)
	}

	// Malformed stored JSON must not fail the row load.
	var malformed WeeklyHours
	if err := malformed.Scan([]byte(`{not json`)); err != nil {
		t.Fatalf("Scan of malformed JSON returned error: %v", err)
	}
	if malformed == nil || len(malformed) != 0 {
		t.Errorf("expected empty map for malformed JSON, got %+v", malformed)
	}
}

func TestWeeklyHoursValue(t *testing.T) {
	v, err := WeeklyHours(nil).Value()
	if err != nil {
		t.Fatalf("Value failed: %v", err)
	}
	if v != nil {
		t.Errorf("nil hours should store as NULL, got %v", v)
	}
}
