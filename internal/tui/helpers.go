package tui

import (
	"time"

	"github.com/WabweniBrian/infinity-ui-sub003/internal/calendar"
)

// truncate shortens a string to max length with ellipsis
func truncate(s string, max int) string {
	if max < 4 {
		max = 4
	}
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

func isToday(t time.Time) bool {
	return calendar.SameDay(t, time.Now())
}

// spanTime formats an occurrence's clipped per-day time range. Interior
// days of a multi-day span carry no meaningful time.
func spanTime(occ calendar.RenderableOccurrence) string {
	if occ.Item.IsAllDay {
		return "all day"
	}
	switch {
	case occ.IsFirstDay && occ.IsLastDay:
		return occ.DisplayStart.Format("15:04") + "-" + occ.DisplayEnd.Format("15:04")
	case occ.IsFirstDay:
		return occ.DisplayStart.Format("15:04") + " ▶"
	case occ.IsLastDay:
		return "▶ " + occ.DisplayEnd.Format("15:04")
	default:
		return "· · ·"
	}
}
