// Package datetime provides date and time utility functions.
package datetime

import (
	"strings"
	"time"

	"github.com/iwvelando/fintrack/pkg/constants"
)

const (
	// DateLayout is the calendar-date format used by records.
	DateLayout = constants.DateLayout

	hoursPerDay = 24
)

// MustParseTime parses a date string using the given layout and panics on error.
// This is intended for use in tests where the date string is known to be valid.
func MustParseTime(layout, dateStr string) time.Time {
	t, err := time.Parse(layout, dateStr)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseDate parses a record date. Plain "2006-01-02" dates are read as UTC
// midnight; full RFC 3339 timestamps are accepted as well.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	t, err := time.Parse(DateLayout, value)
	if err == nil {
		return t, nil
	}
	if ts, tsErr := time.Parse(time.RFC3339, value); tsErr == nil {
		return ts, nil
	}
	return time.Time{}, err
}

// FormatDate formats a time as a record date.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DaysBetween returns the number of whole days from b to a, truncated toward
// zero. It is negative when a is before b.
func DaysBetween(a, b time.Time) int {
	return int(a.Sub(b).Hours() / hoursPerDay)
}

// AddDays offsets t by the given number of days.
func AddDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}

// StartOfDay returns midnight of t in its own location.
func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns midnight of the Sunday on or before t.
func StartOfWeek(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, -int(t.Weekday()))
}

// StartOfMonth returns midnight of the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	year, month, _ := t.Date()
	return time.Date(year, month, 1, 0, 0, 0, 0, t.Location())
}
