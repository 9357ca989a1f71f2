package domain

import "time"

// DateLayout is the calendar-date format used for configuration and query
// parameters.
const DateLayout = "2006-01-02"

// NormalizeDate discards the time-of-day component of t and returns the UTC
// midnight of the calendar day t falls on in its own location.
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD calendar date into a normalized day.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return NormalizeDate(t), nil
}

const secondsPerDay = 24 * 60 * 60

// daysBetween returns the whole number of days from a to b. Both arguments
// must already be normalized to UTC midnight. Unix seconds are used rather
// than Sub, whose Duration result saturates after about 292 years.
func daysBetween(a, b time.Time) int {
	return int((b.Unix() - a.Unix()) / secondsPerDay)
}
