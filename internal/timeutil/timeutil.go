// Package timeutil handles the wall-clock arithmetic the trip data is built
// on. Logged timestamps and request start times are time-of-day strings; they
// are anchored on a fixed reference date so deltas and chained additions work
// with plain time.Time arithmetic, including rollover past midnight.
package timeutil

import (
	"fmt"
	"time"
)

// ReferenceDate anchors all time-of-day values. Only the time component is
// meaningful; the date is a carrier.
var ReferenceDate = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// ParseClock parses "HH:MM" or "HH:MM:SS" onto the reference date.
func ParseClock(s string) (time.Time, error) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(ReferenceDate.Year(), ReferenceDate.Month(), ReferenceDate.Day(),
				t.Hour(), t.Minute(), t.Second(), 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid clock time %q: expected HH:MM or HH:MM:SS", s)
}

// ParseDate parses an ISO "2006-01-02" date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return t, nil
}

// MinutesBetween returns the fractional minutes from a to b. Negative when b
// precedes a; callers decide whether such samples are usable.
func MinutesBetween(a, b time.Time) float64 {
	return b.Sub(a).Minutes()
}

// AddMinutes advances t by a fractional number of minutes.
func AddMinutes(t time.Time, minutes float64) time.Time {
	return t.Add(time.Duration(minutes * float64(time.Minute)))
}

// FormatClock renders t as 24-hour "HH:MM". Dates past the reference date
// simply wrap, so a chain crossing midnight reads naturally.
func FormatClock(t time.Time) string {
	return t.Format("15:04")
}
