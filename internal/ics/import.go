// Package ics imports external iCalendar files into native calendar items.
//
// Simple RRULEs (FREQ/INTERVAL/UNTIL over the four supported patterns) map
// directly onto the native recurrence fields, so imported items keep
// repeating forever like locally created ones. Rules the native model
// cannot express (BYDAY lists, COUNT, ...) are expanded into concrete
// single events inside a bounded window instead.
package ics

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/teambition/rrule-go"

	"github.com/WabweniBrian/infinity-ui-sub003/internal/logger"
	"github.com/WabweniBrian/infinity-ui-sub003/internal/model"
)

const (
	// expandYears bounds the fallback expansion of inexpressible rules.
	expandYears = 1
	// maxExpandedPerEvent caps runaway rules (hourly FREQ and the like).
	maxExpandedPerEvent = 500
)

// ImportFile parses an ICS file into calendar items assigned to the given
// category. Returned items carry no ID; the store assigns one on create.
func ImportFile(path, categoryID string) ([]model.CalendarItem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open ics file: %w", err)
	}
	defer f.Close()
	return Parse(f, categoryID)
}

// Parse reads an ICS payload and converts its VEVENTs
func Parse(r io.Reader, categoryID string) ([]model.CalendarItem, error) {
	cal, err := ical.ParseCalendar(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse ics: %w", err)
	}

	var items []model.CalendarItem
	for _, ve := range cal.Events() {
		converted, err := convertEvent(ve, categoryID)
		if err != nil {
			// Skip the broken event, keep importing the rest.
			logger.Warn("skipping ics event", logger.F("error", err))
			continue
		}
		items = append(items, converted...)
	}
	return items, nil
}

// convertEvent turns one VEVENT into one native item, or several when its
// recurrence rule needs expansion.
func convertEvent(ve *ical.VEvent, categoryID string) ([]model.CalendarItem, error) {
	title := propValue(ve, ical.ComponentPropertySummary)
	if strings.TrimSpace(title) == "" {
		title = "Untitled event"
	}

	start, err := ve.GetStartAt()
	if err != nil {
		return nil, fmt.Errorf("event %q: missing or bad DTSTART", title)
	}
	end, endErr := ve.GetEndAt()
	if endErr != nil || end.Before(start) {
		end = start
	}

	allDay := isAllDay(ve)
	if allDay && end.After(start) {
		// ICS all-day DTEND is exclusive; our model is inclusive.
		end = end.AddDate(0, 0, -1)
	}

	item := model.NewEvent(title, categoryID, start, end)
	item.Description = propValue(ve, ical.ComponentPropertyDescription)
	item.IsAllDay = allDay

	rawRule := propValue(ve, ical.ComponentPropertyRrule)
	if rawRule == "" {
		return []model.CalendarItem{item}, nil
	}

	opt, err := rrule.StrToROption(rawRule)
	if err != nil {
		logger.Warn("unparseable RRULE, importing as single event",
			logger.F("title", title), logger.F("rrule", rawRule))
		return []model.CalendarItem{item}, nil
	}

	if pattern, ok := nativePattern(opt); ok {
		interval := opt.Interval
		var until *time.Time
		if !opt.Until.IsZero() {
			u := opt.Until.In(start.Location())
			until = &u
		}
		return []model.CalendarItem{item.Repeat(pattern, interval, until)}, nil
	}

	return expandRule(item, opt, start)
}

// nativePattern reports whether an RRULE is expressible as a native
// pattern + interval (+ end date) with nothing else going on.
func nativePattern(opt *rrule.ROption) (model.RecurrencePattern, bool) {
	if opt.Count != 0 ||
		len(opt.Byweekday) > 0 || len(opt.Bymonthday) > 0 ||
		len(opt.Bymonth) > 0 || len(opt.Byyearday) > 0 ||
		len(opt.Byweekno) > 0 || len(opt.Bysetpos) > 0 {
		return "", false
	}

	switch opt.Freq {
	case rrule.DAILY:
		return model.Daily, true
	case rrule.WEEKLY:
		return model.Weekly, true
	case rrule.MONTHLY:
		return model.Monthly, true
	case rrule.YEARLY:
		return model.Yearly, true
	default:
		return "", false
	}
}

// expandRule materializes an inexpressible rule into single events within
// the expansion window, preserving the event's duration.
func expandRule(item model.CalendarItem, opt *rrule.ROption, start time.Time) ([]model.CalendarItem, error) {
	opt.Dtstart = start
	rule, err := rrule.NewRRule(*opt)
	if err != nil {
		return []model.CalendarItem{item}, nil
	}

	var set rrule.Set
	set.RRule(rule)

	windowEnd := start.AddDate(expandYears, 0, 0)
	starts := set.Between(start, windowEnd, true)
	if len(starts) > maxExpandedPerEvent {
		logger.Warn("truncated rule expansion",
			logger.F("title", item.Title), logger.F("cap", maxExpandedPerEvent))
		starts = starts[:maxExpandedPerEvent]
	}
	if len(starts) == 0 {
		return []model.CalendarItem{item}, nil
	}

	duration := item.Duration()
	out := make([]model.CalendarItem, 0, len(starts))
	for _, s := range starts {
		single := item
		single.Start = s
		single.End = s.Add(duration)
		out = append(out, single)
	}
	return out, nil
}

func isAllDay(ve *ical.VEvent) bool {
	prop := ve.GetProperty(ical.ComponentPropertyDtStart)
	if prop == nil {
		return false
	}
	if params := prop.ICalParameters; params != nil {
		if vs, ok := params["VALUE"]; ok && len(vs) > 0 && strings.EqualFold(vs[0], "DATE") {
			return true
		}
	}
	return !strings.Contains(prop.Value, "T")
}

func propValue(ve *ical.VEvent, name ical.ComponentProperty) string {
	if p := ve.GetProperty(name); p != nil {
		return p.Value
	}
	return ""
}
