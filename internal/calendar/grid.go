package calendar

import (
	"time"

	"github.com/WabweniBrian/infinity-ui-sub003/internal/model"
)

// MonthCellCap is how many entries a month cell shows inline; the rest are
// surfaced as a single overflow count. Day and week views are uncapped.
const MonthCellCap = 3

// CellsFor computes the day cells for a view around a reference date:
// one cell for day view, the Monday-start week of 7 cells for week view,
// and a whole-month grid padded to full weeks for month view. Pure: the
// provided items and categories are never mutated or retained.
func CellsFor(view View, ref time.Time, items []model.CalendarItem, categories []model.Category, opts Options) []Cell {
	dates := cellDates(view, ref)
	cells := make([]Cell, 0, len(dates))

	visibleCats := visibleCategorySet(categories)

	for _, date := range dates {
		occs := occurrencesOn(date, items)

		kept := occs[:0]
		for _, occ := range occs {
			if vis, known := visibleCats[occ.Item.CategoryID]; known && !vis {
				continue
			}
			if occ.Item.Type == model.TypeHoliday && !opts.ShowHolidays {
				continue
			}
			kept = append(kept, occ)
		}

		cell := Cell{Date: date}
		for _, occ := range kept {
			cell.Occurrences = append(cell.Occurrences, RenderableOccurrence{
				Occurrence:  occ,
				SpanSegment: ResolveSpan(occ, date),
			})
		}

		if view == ViewMonth && len(cell.Occurrences) > MonthCellCap {
			cell.OverflowCount = len(cell.Occurrences) - MonthCellCap
			cell.Occurrences = cell.Occurrences[:MonthCellCap]
		}

		cells = append(cells, cell)
	}

	return cells
}

// cellDates lays out the calendar dates a view covers
func cellDates(view View, ref time.Time) []time.Time {
	switch view {
	case ViewDay:
		return []time.Time{StartOfDay(ref)}

	case ViewWeek:
		start := WeekStart(ref)
		dates := make([]time.Time, 7)
		for i := range dates {
			dates[i] = start.AddDate(0, 0, i)
		}
		return dates

	default: // ViewMonth
		first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
		last := first.AddDate(0, 1, -1)
		gridStart := WeekStart(first)
		gridEnd := WeekStart(last).AddDate(0, 0, 6)

		var dates []time.Time
		for d := gridStart; !d.After(gridEnd); d = d.AddDate(0, 0, 1) {
			dates = append(dates, d)
		}
		return dates
	}
}

// occurrencesOn collects every occurrence falling on the given day, keeping
// input order: non-recurring items first, recurrence-derived ones after.
func occurrencesOn(day time.Time, items []model.CalendarItem) []Occurrence {
	var occs []Occurrence

	for _, item := range items {
		if item.IsRecurring {
			continue
		}
		if ContainsDay(item, day) {
			occs = append(occs, Occurrence{Item: item, Start: item.Start, End: item.End})
		}
	}

	for _, item := range items {
		if !item.IsRecurring {
			continue
		}
		if occ, ok := OccursOn(item, day); ok {
			occs = append(occs, occ)
		}
	}

	return occs
}

func visibleCategorySet(categories []model.Category) map[string]bool {
	set := make(map[string]bool, len(categories))
	for _, cat := range categories {
		set[cat.ID] = cat.Visible
	}
	return set
}
