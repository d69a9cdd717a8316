package calendar

import (
	"time"

	"github.com/WabweniBrian/infinity-ui-sub003/internal/model"
)

// View selects which calendar grid CellsFor produces
type View string

const (
	ViewDay   View = "day"
	ViewWeek  View = "week"
	ViewMonth View = "month"
)

// ParseView converts a string to a View, defaulting to month
func ParseView(s string) View {
	switch s {
	case "day", "d":
		return ViewDay
	case "week", "w":
		return ViewWeek
	default:
		return ViewMonth
	}
}

// Occurrence is one concrete dated instance of a (possibly recurring) item.
// Start/End are the effective instants for this instance; for a recurring
// item they carry the original time-of-day and duration onto the query day.
type Occurrence struct {
	Item  model.CalendarItem
	Start time.Time
	End   time.Time
}

// SpanSegment is the portion of an occurrence visible within one calendar
// day cell. Interior days of a multi-day span are clipped to the full day
// and carry neither flag.
type SpanSegment struct {
	DisplayStart time.Time
	DisplayEnd   time.Time
	IsFirstDay   bool
	IsLastDay    bool
}

// RenderableOccurrence is what a view cell receives: the occurrence plus
// its per-day clipping.
type RenderableOccurrence struct {
	Occurrence
	SpanSegment
}

// Cell is one calendar-day slot within a grid
type Cell struct {
	Date        time.Time
	Occurrences []RenderableOccurrence
	// OverflowCount is the number of occurrences beyond the inline cap.
	// Only month view caps; day and week views always leave it zero.
	OverflowCount int
}

// Options tunes aggregation behavior
type Options struct {
	ShowHolidays bool
}

// DefaultOptions shows everything
func DefaultOptions() Options {
	return Options{ShowHolidays: true}
}
