package utils

import (
	"testing"
	"time"
)

func TestParseScheduleDate(t *testing.T) {
	d, err := ParseScheduleDate("2099-01-01")
	if err != nil {
		t.Fatalf("ParseScheduleDate failed: %v", err)
	}
	if d.Year() != 2099 || d.Month() != time.January || d.Day() != 1 {
		t.Errorf("ParseScheduleDate got = %v, want 2099-01-01", d)
	}

	invalid := []string{"", "01-01-2099", "2099/01/01", "2099-13-01", "tomorrow"}
	for _, s := range invalid {
		if _, err := ParseScheduleDate(s); err == nil {
			t.Errorf("ParseScheduleDate(%q) expected error, got nil", s)
		}
	}
}

func TestParseScheduleTime(t *testing.T) {
	if _, err := ParseScheduleTime("10:00:00"); err != nil {
		t.Errorf("ParseScheduleTime failed: %v", err)
	}

	invalid := []string{"", "10:00", "25:00:00", "10am"}
	for _, s := range invalid {
		if _, err := ParseScheduleTime(s); err == nil {
			t.Errorf("ParseScheduleTime(%q) expected error, got nil", s)
		}
	}
}

func TestDateBefore(t *testing.T) {
	now := time.Date(2026, time.September, 1, 15, 30, 0, 0, time.UTC)

	yesterday := time.Date(2026, time.August, 31, 23, 59, 0, 0, time.UTC)
	if !DateBefore(yesterday, now) {
		t.Error("yesterday should be before today")
	}

	// Same calendar date is not "before", whatever the time of day
	earlierToday := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	if DateBefore(earlierToday, now) {
		t.Error("an earlier time today should not count as a past date")
	}

	tomorrow := time.Date(2026, time.September, 2, 0, 0, 0, 0, time.UTC)
	if DateBefore(tomorrow, now) {
		t.Error("tomorrow should not be before today")
	}
}
