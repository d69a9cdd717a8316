package calendar

import (
	"time"

	"github.com/WabweniBrian/infinity-ui-sub003/internal/model"
)

// Upcoming lists occurrences over the next `days` calendar days starting at
// `from`, in day order. Holidays never appear in upcoming listings; hidden
// categories are excluded the same way the grid excludes them.
func Upcoming(from time.Time, days int, items []model.CalendarItem, categories []model.Category) []Occurrence {
	if days < 1 {
		days = 1
	}

	visibleCats := visibleCategorySet(categories)

	var out []Occurrence
	for i := 0; i < days; i++ {
		day := StartOfDay(from).AddDate(0, 0, i)
		for _, occ := range occurrencesOn(day, items) {
			if occ.Item.Type == model.TypeHoliday {
				continue
			}
			if vis, known := visibleCats[occ.Item.CategoryID]; known && !vis {
				continue
			}
			// A multi-day item surfaces once, on its first visible day.
			if i > 0 && occ.Start.Before(StartOfDay(from).AddDate(0, 0, i)) {
				continue
			}
			out = append(out, occ)
		}
	}
	return out
}
