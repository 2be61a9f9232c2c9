package dateutil

import (
	"fmt"
	"time"
)

// DateLayout is the calendar date format used in input files.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date in UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", s, err)
	}
	return t, nil
}

// ParseOptionalDate parses s, returning nil for an empty string.
func ParseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FormatOptionalDate renders an optional date, empty when nil.
func FormatOptionalDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DateLayout)
}

// MonthsRemainingInYear counts calendar months from t's month through
// December, inclusive. A purchase in July leaves 6 months.
func MonthsRemainingInYear(t time.Time) int {
	return 12 - int(t.Month()) + 1
}

// YearEnd returns December 31 of the given year in UTC.
func YearEnd(year int) time.Time {
	return time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
}

// OnOrAfterYear reports whether an optional date is unset or falls in year or later.
func OnOrAfterYear(t *time.Time, year int) bool {
	return t == nil || t.Year() >= year
}
