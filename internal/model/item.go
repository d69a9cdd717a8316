package model

import "time"

// ItemType distinguishes the calendar item variants
type ItemType string

const (
	TypeEvent   ItemType = "event"
	TypeTask    ItemType = "task"
	TypeHoliday ItemType = "holiday" // read-only, never user-edited
)

// RecurrencePattern is the unit a recurring item repeats on
type RecurrencePattern string

const (
	Daily   RecurrencePattern = "daily"
	Weekly  RecurrencePattern = "weekly"
	Monthly RecurrencePattern = "monthly"
	Yearly  RecurrencePattern = "yearly"
)

// Recurrence describes how an item repeats. The item's Start/End are the
// first occurrence; later occurrences are derived on demand, never stored.
type Recurrence struct {
	Pattern  RecurrencePattern `json:"pattern"`
	Interval int               `json:"interval"` // every N units, >= 1
	EndDate  *time.Time        `json:"end_date,omitempty"`
}

// CalendarItem is a single event, task or holiday on the calendar
type CalendarItem struct {
	ID          string     `json:"id"` // empty = not yet persisted
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Start       time.Time  `json:"start"`
	End         time.Time  `json:"end"` // invariant: End >= Start
	CategoryID  string     `json:"category_id"`
	Type        ItemType   `json:"type"`
	IsAllDay    bool       `json:"is_all_day"`
	Completed   bool       `json:"completed,omitempty"` // tasks only
	IsRecurring bool       `json:"is_recurring"`
	Recurrence  Recurrence `json:"recurrence,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewEvent creates an event with defaults
func NewEvent(title, categoryID string, start, end time.Time) CalendarItem {
	now := time.Now()
	return CalendarItem{
		Title:      title,
		Start:      start,
		End:        end,
		CategoryID: categoryID,
		Type:       TypeEvent,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// NewTask creates a task. Tasks always live in the reserved task category.
func NewTask(title string, start, end time.Time) CalendarItem {
	now := time.Now()
	return CalendarItem{
		Title:      title,
		Start:      start,
		End:        end,
		CategoryID: CategoryTasks,
		Type:       TypeTask,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// NewHoliday creates an all-day holiday entry
func NewHoliday(title string, day time.Time) CalendarItem {
	now := time.Now()
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return CalendarItem{
		Title:      title,
		Start:      start,
		End:        start,
		CategoryID: CategoryHolidays,
		Type:       TypeHoliday,
		IsAllDay:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Repeat marks the item recurring with the given pattern and interval
func (c CalendarItem) Repeat(pattern RecurrencePattern, interval int, until *time.Time) CalendarItem {
	if interval < 1 {
		interval = 1
	}
	c.IsRecurring = true
	c.Recurrence = Recurrence{Pattern: pattern, Interval: interval, EndDate: until}
	return c
}

// Duration returns the item's span length, preserved verbatim for every
// derived occurrence of a recurring item.
func (c CalendarItem) Duration() time.Duration {
	return c.End.Sub(c.Start)
}

// IsMultiDay reports whether the item's start and end fall on different
// calendar dates.
func (c CalendarItem) IsMultiDay() bool {
	sy, sm, sd := c.Start.Date()
	ey, em, ed := c.End.Date()
	return sy != ey || sm != em || sd != ed
}

// IsTask reports whether the item is a toggleable task
func (c CalendarItem) IsTask() bool {
	return c.Type == TypeTask
}
