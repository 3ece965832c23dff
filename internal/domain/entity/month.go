package entity

import (
	"fmt"
	"time"
)

// MonthKeyLayout is the time layout of a month key (YYYY-MM).
const MonthKeyLayout = "2006-01"

// MonthKey returns the YYYY-MM key for the given time in UTC.
func MonthKey(t time.Time) string {
	return t.UTC().Format(MonthKeyLayout)
}

// ParseMonthKey parses a YYYY-MM key into the first instant of that month (UTC).
func ParseMonthKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation(MonthKeyLayout, key, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month key %q: %w", key, err)
	}
	return t, nil
}

// IsValidMonthKey reports whether key is a well-formed YYYY-MM key.
func IsValidMonthKey(key string) bool {
	_, err := ParseMonthKey(key)
	return err == nil && len(key) == len(MonthKeyLayout)
}

// PreviousMonthKey returns the month key preceding key.
func PreviousMonthKey(key string) (string, error) {
	t, err := ParseMonthKey(key)
	if err != nil {
		return "", err
	}
	return MonthKey(t.AddDate(0, -1, 0)), nil
}

// MonthBounds returns the first and last instant of the month identified by key.
func MonthBounds(key string) (start, end time.Time, err error) {
	start, err = ParseMonthKey(key)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end = start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end, nil
}
