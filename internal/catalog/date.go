package catalog

import (
	"fmt"
	"time"
)

const (
	dateLayout    = "2006-01-02"
	secondsPerDay = 24 * 60 * 60
)

// Date is a calendar day with no time or location attached.
// It is comparable and used as the key of a song's play history.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar day of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// AddDays returns the date n days after d (n may be negative).
// Month and year boundaries are normalized.
func (d Date) AddDays(n int) Date {
	return DateOf(d.midnight().AddDate(0, 0, n))
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	return d.midnight().Before(other.midnight())
}

// String formats d as YYYY-MM-DD.
func (d Date) String() string {
	return d.midnight().Format(dateLayout)
}

// normalized folds out-of-range fields into a real day, so that
// October 32 and November 1 are the same map key.
func (d Date) normalized() Date {
	return DateOf(d.midnight())
}

// dayNumber counts days since 1970-01-01.
func (d Date) dayNumber() int64 {
	return d.midnight().Unix() / secondsPerDay
}

func (d Date) midnight() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}
