package utils

import (
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"
)

// ParseScheduleDate parses a consultation date in the fixed wire format.
func ParseScheduleDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// ParseScheduleTime parses a consultation time of day in the fixed wire format.
func ParseScheduleTime(s string) (time.Time, error) {
	return time.Parse(TimeLayout, s)
}

// DateBeforeToday reports whether d falls strictly before the current calendar
// date. Called inside the write path so the check holds at persistence time,
// not when the request was built.
func DateBeforeToday(d time.Time) bool {
	return DateBefore(d, time.Now())
}

// DateBefore compares calendar dates only, ignoring the time of day.
func DateBefore(d, now time.Time) bool {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, now.Location())
	return day.Before(today)
}
