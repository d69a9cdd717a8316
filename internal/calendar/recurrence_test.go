package calendar

import (
	"testing"
	"time"

	"github.com/WabweniBrian/infinity-ui-sub003/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func at(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

func recurring(pattern model.RecurrencePattern, interval int, start, end time.Time) model.CalendarItem {
	item := model.NewEvent("test", model.CategoryWork, start, end)
	return item.Repeat(pattern, interval, nil)
}

func TestDailyRecurrenceInterval(t *testing.T) {
	// Every 3 days from Jan 1.
	item := recurring(model.Daily, 3, at(2024, time.January, 1, 10, 0), at(2024, time.January, 1, 11, 0))

	cases := []struct {
		day  time.Time
		want bool
	}{
		{date(2024, time.January, 1), true},
		{date(2024, time.January, 2), false},
		{date(2024, time.January, 3), false},
		{date(2024, time.January, 4), true},
		{date(2024, time.January, 7), true},
		{date(2024, time.February, 3), true}, // day 33, 33 % 3 == 0
	}
	for _, tc := range cases {
		if _, got := OccursOn(item, tc.day); got != tc.want {
			t.Fatalf("daily/3 on %s: got %v, want %v", tc.day.Format("2006-01-02"), got, tc.want)
		}
	}
}

func TestWeeklyEveryOtherWeek(t *testing.T) {
	// Starts Monday Jan 1 2024, every 2 weeks, no end date.
	item := recurring(model.Weekly, 2, at(2024, time.January, 1, 9, 0), at(2024, time.January, 1, 9, 30))

	cases := []struct {
		day  time.Time
		want bool
	}{
		{date(2024, time.January, 1), true},   // week 0
		{date(2024, time.January, 8), false},  // week 1, not a multiple of 2
		{date(2024, time.January, 15), true},  // week 2
		{date(2024, time.January, 2), false},  // wrong weekday
		{date(2024, time.January, 16), false}, // week 2 but Tuesday
	}
	for _, tc := range cases {
		if _, got := OccursOn(item, tc.day); got != tc.want {
			t.Fatalf("weekly/2 on %s: got %v, want %v", tc.day.Format("2006-01-02"), got, tc.want)
		}
	}
}

func TestWeeklyMatchesStartWeekdayOnly(t *testing.T) {
	// Weekly recurrence only ever fires on the start date's weekday.
	item := recurring(model.Weekly, 1, at(2024, time.January, 3, 12, 0), at(2024, time.January, 3, 13, 0)) // Wednesday

	for d := 8; d <= 14; d++ {
		day := date(2024, time.January, d)
		_, got := OccursOn(item, day)
		want := day.Weekday() == time.Wednesday
		if got != want {
			t.Fatalf("weekly on %s (%s): got %v, want %v", day.Format("2006-01-02"), day.Weekday(), got, want)
		}
	}
}

func TestMonthlyShortMonthNeverMatches(t *testing.T) {
	// Anchored on the 31st: February simply has no occurrence, no rollover.
	item := recurring(model.Monthly, 1, at(2024, time.January, 31, 10, 0), at(2024, time.January, 31, 11, 0))

	for d := 1; d <= 29; d++ {
		if _, got := OccursOn(item, date(2024, time.February, d)); got {
			t.Fatalf("monthly/31st matched Feb %d, want no occurrence in February", d)
		}
	}
	if _, got := OccursOn(item, date(2024, time.March, 31)); !got {
		t.Fatalf("monthly/31st should match Mar 31")
	}
	if _, got := OccursOn(item, date(2024, time.March, 30)); got {
		t.Fatalf("monthly/31st must not match Mar 30")
	}
}

func TestMonthlyInterval(t *testing.T) {
	item := recurring(model.Monthly, 3, at(2024, time.January, 15, 8, 0), at(2024, time.January, 15, 9, 0))

	cases := []struct {
		day  time.Time
		want bool
	}{
		{date(2024, time.January, 15), true},
		{date(2024, time.February, 15), false},
		{date(2024, time.April, 15), true},
		{date(2025, time.January, 15), true}, // 12 months later
	}
	for _, tc := range cases {
		if _, got := OccursOn(item, tc.day); got != tc.want {
			t.Fatalf("monthly/3 on %s: got %v, want %v", tc.day.Format("2006-01-02"), got, tc.want)
		}
	}
}

func TestYearlyLeapDay(t *testing.T) {
	item := recurring(model.Yearly, 1, at(2024, time.February, 29, 0, 0), at(2024, time.February, 29, 23, 0))

	if _, got := OccursOn(item, date(2025, time.March, 1)); got {
		t.Fatalf("leap-day yearly must not roll over to Mar 1")
	}
	if _, got := OccursOn(item, date(2028, time.February, 29)); !got {
		t.Fatalf("leap-day yearly should match the next leap year")
	}
}

func TestRecurrenceEndBound(t *testing.T) {
	until := date(2024, time.January, 10)
	item := model.NewEvent("test", model.CategoryWork,
		at(2024, time.January, 1, 10, 0), at(2024, time.January, 1, 11, 0)).
		Repeat(model.Daily, 1, &until)

	if _, got := OccursOn(item, date(2024, time.January, 10)); !got {
		t.Fatalf("end date itself should still produce an occurrence")
	}
	if _, got := OccursOn(item, date(2024, time.January, 11)); got {
		t.Fatalf("no occurrence may exist after the end date")
	}
}

func TestNoOccurrenceBeforeFirstInstance(t *testing.T) {
	item := recurring(model.Daily, 1, at(2024, time.June, 15, 10, 0), at(2024, time.June, 15, 11, 0))

	if _, got := OccursOn(item, date(2024, time.June, 14)); got {
		t.Fatalf("recurrence generated an occurrence before its own start")
	}
	if _, got := OccursOn(item, date(2024, time.June, 15)); !got {
		t.Fatalf("first instance day should occur")
	}
}

func TestUnknownPatternNeverOccurs(t *testing.T) {
	item := model.NewEvent("test", model.CategoryWork,
		at(2024, time.January, 1, 10, 0), at(2024, time.January, 1, 11, 0))
	item.IsRecurring = true
	item.Recurrence = model.Recurrence{Pattern: "fortnightly", Interval: 1}

	if _, got := OccursOn(item, date(2024, time.January, 1)); got {
		t.Fatalf("unrecognized pattern must be treated as never occurring")
	}
}

func TestOccurrenceKeepsTimeOfDayAndDuration(t *testing.T) {
	// 22:00 to 01:30 the next day; the duration crosses midnight and must
	// be preserved verbatim on every derived occurrence.
	item := recurring(model.Daily, 1, at(2024, time.January, 1, 22, 0), at(2024, time.January, 2, 1, 30))

	occ, ok := OccursOn(item, date(2024, time.January, 5))
	if !ok {
		t.Fatalf("expected an occurrence on Jan 5")
	}
	if !occ.Start.Equal(at(2024, time.January, 5, 22, 0)) {
		t.Fatalf("effective start = %v, want Jan 5 22:00", occ.Start)
	}
	if !occ.End.Equal(at(2024, time.January, 6, 1, 30)) {
		t.Fatalf("effective end = %v, want Jan 6 01:30", occ.End)
	}
}

func TestNonRecurringNeverEvaluates(t *testing.T) {
	item := model.NewEvent("test", model.CategoryWork,
		at(2024, time.January, 1, 10, 0), at(2024, time.January, 1, 11, 0))
	if _, got := OccursOn(item, date(2024, time.January, 1)); got {
		t.Fatalf("OccursOn must decline non-recurring items")
	}
}

func TestContainsDayInclusiveBounds(t *testing.T) {
	// Multi-day: Jan 10 14:00 through Jan 12 16:00.
	item := model.NewEvent("test", model.CategoryWork,
		at(2024, time.January, 10, 14, 0), at(2024, time.January, 12, 16, 0))

	cases := []struct {
		day  time.Time
		want bool
	}{
		{date(2024, time.January, 9), false},
		{date(2024, time.January, 10), true},
		{date(2024, time.January, 11), true},
		{date(2024, time.January, 12), true},
		{date(2024, time.January, 13), false},
	}
	for _, tc := range cases {
		if got := ContainsDay(item, tc.day); got != tc.want {
			t.Fatalf("ContainsDay on %s: got %v, want %v", tc.day.Format("2006-01-02"), got, tc.want)
		}
	}
}
