package calendar

import (
	"math"
	"time"
)

// StartOfDay returns midnight of t's calendar date
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last representable instant of t's calendar date
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// SameDay reports whether a and b fall on the same calendar date
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// WeekStart returns the Monday on or before t (weeks start Monday)
func WeekStart(t time.Time) time.Time {
	d := StartOfDay(t)
	offset := (int(d.Weekday()) + 6) % 7 // Monday=0 .. Sunday=6
	return d.AddDate(0, 0, -offset)
}

// DaysBetween returns the number of whole calendar days from a to b.
// Negative when b is before a. Rounding absorbs DST-shortened days.
func DaysBetween(a, b time.Time) int {
	diff := StartOfDay(b).Sub(StartOfDay(a))
	return int(math.Round(diff.Hours() / 24))
}

// CombineDayTime places t's time-of-day onto day's calendar date
func CombineDayTime(day, t time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(),
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}
