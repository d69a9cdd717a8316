package calendar

import (
	"time"

	"github.com/WabweniBrian/infinity-ui-sub003/internal/model"
)

// OccursOn decides whether a recurring item has an occurrence on the given
// calendar day. When it does, the returned occurrence carries the original
// time-of-day onto that day and preserves the first occurrence's duration
// verbatim, including across a midnight boundary.
//
// Policy notes, deliberate and not to be "fixed":
//   - weekly recurrence only ever matches the start date's weekday
//   - monthly recurrence anchored on a day a month lacks (say the 31st)
//     simply never matches in that month; no clamping or rollover
//   - an unrecognized pattern never occurs rather than erroring
func OccursOn(item model.CalendarItem, day time.Time) (Occurrence, bool) {
	if !item.IsRecurring {
		return Occurrence{}, false
	}

	d := StartOfDay(day)
	if end := item.Recurrence.EndDate; end != nil && d.After(StartOfDay(*end)) {
		return Occurrence{}, false
	}
	if d.Before(StartOfDay(item.Start)) {
		return Occurrence{}, false
	}

	interval := item.Recurrence.Interval
	if interval < 1 {
		interval = 1
	}

	matched := false
	switch item.Recurrence.Pattern {
	case model.Daily:
		matched = DaysBetween(item.Start, d)%interval == 0

	case model.Weekly:
		weeks := DaysBetween(item.Start, d) / 7
		matched = weeks%interval == 0 && d.Weekday() == item.Start.Weekday()

	case model.Monthly:
		months := (d.Year()-item.Start.Year())*12 + int(d.Month()) - int(item.Start.Month())
		matched = months%interval == 0 && d.Day() == item.Start.Day()

	case model.Yearly:
		years := d.Year() - item.Start.Year()
		matched = years%interval == 0 &&
			d.Month() == item.Start.Month() && d.Day() == item.Start.Day()
	}

	if !matched {
		return Occurrence{}, false
	}

	start := CombineDayTime(d, item.Start)
	return Occurrence{
		Item:  item,
		Start: start,
		End:   start.Add(item.Duration()),
	}, true
}

// ContainsDay reports whether a non-recurring item's [Start, End] interval
// covers the given calendar date, inclusive on both ends.
func ContainsDay(item model.CalendarItem, day time.Time) bool {
	d := StartOfDay(day)
	return !d.Before(StartOfDay(item.Start)) && !d.After(StartOfDay(item.End))
}
