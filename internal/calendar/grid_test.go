package calendar

import (
	"testing"
	"time"

	"github.com/WabweniBrian/infinity-ui-sub003/internal/model"
)

func testCategories() []model.Category {
	return model.DefaultCategories()
}

func TestDayViewSingleCell(t *testing.T) {
	cells := CellsFor(ViewDay, date(2024, time.May, 15), nil, testCategories(), DefaultOptions())
	if len(cells) != 1 {
		t.Fatalf("day view must produce exactly one cell, got %d", len(cells))
	}
	if !SameDay(cells[0].Date, date(2024, time.May, 15)) {
		t.Fatalf("day cell date = %v", cells[0].Date)
	}
}

func TestWeekViewStartsMonday(t *testing.T) {
	// May 15 2024 is a Wednesday; the week runs Mon May 13 .. Sun May 19.
	cells := CellsFor(ViewWeek, date(2024, time.May, 15), nil, testCategories(), DefaultOptions())
	if len(cells) != 7 {
		t.Fatalf("week view must produce 7 cells, got %d", len(cells))
	}
	if !SameDay(cells[0].Date, date(2024, time.May, 13)) {
		t.Fatalf("week starts %v, want Monday May 13", cells[0].Date)
	}
	if !SameDay(cells[6].Date, date(2024, time.May, 19)) {
		t.Fatalf("week ends %v, want Sunday May 19", cells[6].Date)
	}
	if cells[0].Date.Weekday() != time.Monday {
		t.Fatalf("first cell is a %s, want Monday", cells[0].Date.Weekday())
	}
}

func TestMonthGridPaddedToWholeWeeks(t *testing.T) {
	// May 2024: first is a Wednesday, last a Friday. The grid must run
	// Mon Apr 29 through Sun Jun 2, 35 cells.
	cells := CellsFor(ViewMonth, date(2024, time.May, 15), nil, testCategories(), DefaultOptions())
	if len(cells)%7 != 0 {
		t.Fatalf("month grid length %d is not a multiple of 7", len(cells))
	}
	if len(cells) != 35 {
		t.Fatalf("May 2024 grid should have 35 cells, got %d", len(cells))
	}
	if !SameDay(cells[0].Date, date(2024, time.April, 29)) {
		t.Fatalf("grid starts %v, want Mon Apr 29", cells[0].Date)
	}
	if !SameDay(cells[len(cells)-1].Date, date(2024, time.June, 2)) {
		t.Fatalf("grid ends %v, want Sun Jun 2", cells[len(cells)-1].Date)
	}
}

func TestMonthOverflowCap(t *testing.T) {
	day := date(2024, time.May, 15)
	var items []model.CalendarItem
	for _, title := range []string{"a", "b", "c", "d", "e"} {
		items = append(items, model.NewEvent(title, model.CategoryWork,
			CombineDayTime(day, at(2024, time.January, 1, 9, 0)),
			CombineDayTime(day, at(2024, time.January, 1, 10, 0))))
	}

	monthCells := CellsFor(ViewMonth, day, items, testCategories(), DefaultOptions())
	var monthCell *Cell
	for i := range monthCells {
		if SameDay(monthCells[i].Date, day) {
			monthCell = &monthCells[i]
		}
	}
	if monthCell == nil {
		t.Fatalf("month grid is missing the reference day")
	}
	if len(monthCell.Occurrences) != MonthCellCap {
		t.Fatalf("month cell shows %d entries, want %d", len(monthCell.Occurrences), MonthCellCap)
	}
	if monthCell.OverflowCount != 2 {
		t.Fatalf("month overflow = %d, want 2", monthCell.OverflowCount)
	}
	// The first entries survive the cap, in input order.
	if monthCell.Occurrences[0].Item.Title != "a" || monthCell.Occurrences[2].Item.Title != "c" {
		t.Fatalf("cap must keep the first entries, got %q..%q",
			monthCell.Occurrences[0].Item.Title, monthCell.Occurrences[2].Item.Title)
	}

	// Day and week views are uncapped.
	dayCells := CellsFor(ViewDay, day, items, testCategories(), DefaultOptions())
	if len(dayCells[0].Occurrences) != 5 || dayCells[0].OverflowCount != 0 {
		t.Fatalf("day view: %d entries, overflow %d; want 5 and 0",
			len(dayCells[0].Occurrences), dayCells[0].OverflowCount)
	}

	weekCells := CellsFor(ViewWeek, day, items, testCategories(), DefaultOptions())
	for _, cell := range weekCells {
		if SameDay(cell.Date, day) && (len(cell.Occurrences) != 5 || cell.OverflowCount != 0) {
			t.Fatalf("week view: %d entries, overflow %d; want 5 and 0",
				len(cell.Occurrences), cell.OverflowCount)
		}
	}
}

func TestCategoryVisibilityFiltering(t *testing.T) {
	day := date(2024, time.May, 15)
	items := []model.CalendarItem{
		model.NewEvent("work thing", model.CategoryWork,
			CombineDayTime(day, at(2024, time.January, 1, 9, 0)),
			CombineDayTime(day, at(2024, time.January, 1, 10, 0))),
		model.NewEvent("personal thing", model.CategoryPersonal,
			CombineDayTime(day, at(2024, time.January, 1, 11, 0)),
			CombineDayTime(day, at(2024, time.January, 1, 12, 0))),
	}

	cats := testCategories()
	cells := CellsFor(ViewDay, day, items, cats, DefaultOptions())
	if len(cells[0].Occurrences) != 2 {
		t.Fatalf("expected both items visible, got %d", len(cells[0].Occurrences))
	}

	// Hide work; only the personal item must remain.
	for i := range cats {
		if cats[i].ID == model.CategoryWork {
			cats[i].Visible = false
		}
	}
	cells = CellsFor(ViewDay, day, items, cats, DefaultOptions())
	if len(cells[0].Occurrences) != 1 {
		t.Fatalf("expected one item after hiding work, got %d", len(cells[0].Occurrences))
	}
	if cells[0].Occurrences[0].Item.Title != "personal thing" {
		t.Fatalf("wrong survivor: %q", cells[0].Occurrences[0].Item.Title)
	}

	// Restore; both return, untouched.
	for i := range cats {
		cats[i].Visible = true
	}
	cells = CellsFor(ViewDay, day, items, cats, DefaultOptions())
	if len(cells[0].Occurrences) != 2 {
		t.Fatalf("expected both items restored, got %d", len(cells[0].Occurrences))
	}
}

func TestHolidayDisplayToggle(t *testing.T) {
	day := date(2024, time.December, 25)
	items := []model.CalendarItem{
		model.NewHoliday("Christmas Day", day),
		model.NewEvent("family dinner", model.CategoryPersonal,
			CombineDayTime(day, at(2024, time.January, 1, 18, 0)),
			CombineDayTime(day, at(2024, time.January, 1, 21, 0))),
	}

	cells := CellsFor(ViewDay, day, items, testCategories(), Options{ShowHolidays: true})
	if len(cells[0].Occurrences) != 2 {
		t.Fatalf("with holidays shown, got %d entries", len(cells[0].Occurrences))
	}

	cells = CellsFor(ViewDay, day, items, testCategories(), Options{ShowHolidays: false})
	if len(cells[0].Occurrences) != 1 || cells[0].Occurrences[0].Item.Type == model.TypeHoliday {
		t.Fatalf("holiday filtering failed: %+v", cells[0].Occurrences)
	}
}

func TestCellOrderNonRecurringFirst(t *testing.T) {
	day := date(2024, time.January, 1) // a Monday
	items := []model.CalendarItem{
		model.NewEvent("weekly sync", model.CategoryWork,
			CombineDayTime(day, at(2024, time.January, 1, 9, 0)),
			CombineDayTime(day, at(2024, time.January, 1, 10, 0))).
			Repeat(model.Weekly, 1, nil),
		model.NewEvent("one-off", model.CategoryWork,
			CombineDayTime(day, at(2024, time.January, 1, 14, 0)),
			CombineDayTime(day, at(2024, time.January, 1, 15, 0))),
	}

	cells := CellsFor(ViewDay, day, items, testCategories(), DefaultOptions())
	occs := cells[0].Occurrences
	if len(occs) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(occs))
	}
	// Collection order: non-recurring first even though it came second.
	if occs[0].Item.Title != "one-off" || occs[1].Item.Title != "weekly sync" {
		t.Fatalf("order = %q, %q; want one-off first", occs[0].Item.Title, occs[1].Item.Title)
	}
}

func TestRecurringExpansionAcrossMonthGrid(t *testing.T) {
	// Weekly Monday item starting Jan 1 2024 must land on every Monday
	// cell of the January grid, and nowhere else.
	item := model.NewEvent("standup", model.CategoryWork,
		at(2024, time.January, 1, 9, 30), at(2024, time.January, 1, 9, 45)).
		Repeat(model.Weekly, 1, nil)

	cells := CellsFor(ViewMonth, date(2024, time.January, 15), []model.CalendarItem{item}, testCategories(), DefaultOptions())
	for _, cell := range cells {
		want := cell.Date.Weekday() == time.Monday && !cell.Date.Before(date(2024, time.January, 1))
		got := len(cell.Occurrences) == 1
		if got != want {
			t.Fatalf("cell %s: got %d occurrences, want present=%v",
				cell.Date.Format("2006-01-02"), len(cell.Occurrences), want)
		}
	}
}

func TestMultiDayEventAppearsOnEverySpannedCell(t *testing.T) {
	// Conference Wed Jan 10 .. Fri Jan 12 in a week view.
	item := model.NewEvent("conference", model.CategoryWork,
		at(2024, time.January, 10, 9, 0), at(2024, time.January, 12, 17, 0))

	cells := CellsFor(ViewWeek, date(2024, time.January, 10), []model.CalendarItem{item}, testCategories(), DefaultOptions())
	for _, cell := range cells {
		d := cell.Date.Day()
		spanned := d >= 10 && d <= 12
		if spanned != (len(cell.Occurrences) == 1) {
			t.Fatalf("cell Jan %d: %d occurrences", d, len(cell.Occurrences))
		}
		if !spanned {
			continue
		}
		seg := cell.Occurrences[0].SpanSegment
		if (d == 10) != seg.IsFirstDay || (d == 12) != seg.IsLastDay {
			t.Fatalf("cell Jan %d flags: %+v", d, seg)
		}
	}
}

func TestUpcomingExcludesHolidays(t *testing.T) {
	from := date(2024, time.December, 23)
	items := []model.CalendarItem{
		model.NewHoliday("Christmas Day", date(2024, time.December, 25)),
		model.NewTask("wrap presents",
			CombineDayTime(date(2024, time.December, 24), at(2024, time.January, 1, 10, 0)),
			CombineDayTime(date(2024, time.December, 24), at(2024, time.January, 1, 11, 0))),
	}

	occs := Upcoming(from, 7, items, testCategories())
	if len(occs) != 1 {
		t.Fatalf("expected only the task, got %d entries", len(occs))
	}
	if occs[0].Item.Type == model.TypeHoliday {
		t.Fatalf("holiday leaked into the upcoming listing")
	}
}

func TestUpcomingListsMultiDayOnce(t *testing.T) {
	from := date(2024, time.January, 10)
	item := model.NewEvent("conference", model.CategoryWork,
		at(2024, time.January, 10, 9, 0), at(2024, time.January, 12, 17, 0))

	occs := Upcoming(from, 7, []model.CalendarItem{item}, testCategories())
	if len(occs) != 1 {
		t.Fatalf("multi-day event should surface once, got %d", len(occs))
	}
}
