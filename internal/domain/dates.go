package domain

import "time"

// DateLayout is the storage and interchange format for calendar dates.
const DateLayout = "2006-01-02"

// Day truncates t to midnight UTC of its calendar date.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDay parses a YYYY-MM-DD string into a UTC date.
func ParseDay(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// DaysBetween returns the whole number of days from a to b.
func DaysBetween(a, b time.Time) int {
	return int(Day(b).Sub(Day(a)).Hours() / 24)
}

// AddDays shifts a date by n calendar days.
func AddDays(t time.Time, n int) time.Time {
	return Day(t).AddDate(0, 0, n)
}

// MaxDay returns the later of two dates.
func MaxDay(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

// MinDay returns the earlier of two dates.
func MinDay(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
