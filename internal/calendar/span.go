package calendar

import "time"

// ResolveSpan clips an occurrence to the given rendering day. The first and
// last day keep the occurrence's true start/end instants so a duration can
// be shown; interior days of a multi-day span are clipped to exactly that
// day's bounds. The result never extends outside the day's calendar date.
func ResolveSpan(occ Occurrence, day time.Time) SpanSegment {
	seg := SpanSegment{
		IsFirstDay: SameDay(day, occ.Start),
		IsLastDay:  SameDay(day, occ.End),
	}

	if seg.IsFirstDay {
		seg.DisplayStart = occ.Start
	} else {
		seg.DisplayStart = StartOfDay(day)
	}
	if seg.IsLastDay {
		seg.DisplayEnd = occ.End
	} else {
		seg.DisplayEnd = EndOfDay(day)
	}
	return seg
}
