package store

import (
	"time"

	"github.com/WabweniBrian/infinity-ui-sub003/internal/model"
)

// Seed installs the built-in sample data set: a mix of one-off events, a
// multi-day event, recurring items, tasks and yearly holidays, anchored
// around the current week. All state is in-memory; nothing persists.
func (s *Store) Seed() {
	now := time.Now()
	monday := mondayOf(now)

	at := func(base time.Time, days, hour, min int) time.Time {
		d := base.AddDate(0, 0, days)
		return time.Date(d.Year(), d.Month(), d.Day(), hour, min, 0, 0, d.Location())
	}

	items := []model.CalendarItem{
		model.NewEvent("Team standup", model.CategoryWork,
			at(monday, 0, 9, 30), at(monday, 0, 9, 45)).
			Repeat(model.Daily, 1, nil),

		model.NewEvent("Sprint planning", model.CategoryWork,
			at(monday, 0, 14, 0), at(monday, 0, 15, 30)).
			Repeat(model.Weekly, 2, nil),

		model.NewEvent("Product conference", model.CategoryWork,
			at(monday, 2, 9, 0), at(monday, 4, 17, 0)),

		model.NewEvent("Gym session", model.CategoryPersonal,
			at(monday, 1, 18, 0), at(monday, 1, 19, 0)),

		model.NewEvent("Dinner with friends", model.CategoryPersonal,
			at(monday, 4, 19, 30), at(monday, 4, 22, 0)),

		model.NewEvent("Rent due", model.CategoryPersonal,
			time.Date(now.Year(), now.Month(), 1, 8, 0, 0, 0, now.Location()),
			time.Date(now.Year(), now.Month(), 1, 8, 30, 0, 0, now.Location())).
			Repeat(model.Monthly, 1, nil),

		model.NewTask("Review pull requests",
			at(monday, 0, 11, 0), at(monday, 0, 12, 0)),

		model.NewTask("Water the plants",
			at(monday, 0, 8, 0), at(monday, 0, 8, 15)).
			Repeat(model.Weekly, 1, nil),

		model.NewTask("File expense report",
			at(monday, 3, 16, 0), at(monday, 3, 16, 30)),

		model.NewHoliday("New Year's Day",
			time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())).
			Repeat(model.Yearly, 1, nil),

		model.NewHoliday("Christmas Day",
			time.Date(now.Year(), time.December, 25, 0, 0, 0, 0, now.Location())).
			Repeat(model.Yearly, 1, nil),
	}

	for _, item := range items {
		// Sample data is well-formed; creation cannot fail here.
		_, _ = s.CreateItem(item)
	}
}

func mondayOf(t time.Time) time.Time {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}
