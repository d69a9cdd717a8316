package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/WabweniBrian/infinity-ui-sub003/internal/model"
)

var addCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add an event or task",
	Long: `Add a new event or task to the calendar.

Examples:
  infcal add "Team meeting" --start "2026-09-01 14:00" --end "2026-09-01 15:00"
  infcal add "Water plants" --task --start "2026-09-01 08:00"
  infcal add "Standup" --start "2026-09-01 09:30" --repeat daily
  infcal add "Payday" --start 2026-09-25 --all-day --repeat monthly --every 1`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

var (
	addTask     bool
	addCategory string
	addStart    string
	addEnd      string
	addAllDay   bool
	addDesc     string
	addRepeat   string
	addEvery    int
	addUntil    string
)

func init() {
	addCmd.Flags().BoolVarP(&addTask, "task", "t", false, "Add a task instead of an event")
	addCmd.Flags().StringVarP(&addCategory, "category", "c", model.CategoryPersonal, "Category for the event")
	addCmd.Flags().StringVarP(&addStart, "start", "s", "", "Start (e.g. '2026-09-01 14:00' or '2026-09-01')")
	addCmd.Flags().StringVarP(&addEnd, "end", "e", "", "End; defaults to one hour after start")
	addCmd.Flags().BoolVar(&addAllDay, "all-day", false, "Ignore time-of-day, span whole days")
	addCmd.Flags().StringVar(&addDesc, "desc", "", "Description")
	addCmd.Flags().StringVarP(&addRepeat, "repeat", "r", "", "Recurrence pattern: daily, weekly, monthly, yearly")
	addCmd.Flags().IntVar(&addEvery, "every", 1, "Recurrence interval (every N units)")
	addCmd.Flags().StringVar(&addUntil, "until", "", "Last date recurrences are generated for (YYYY-MM-DD)")
}

func runAdd(cmd *cobra.Command, args []string) error {
	title := strings.Join(args, " ")

	start, err := parseWhen(addStart, time.Now())
	if err != nil {
		return fmt.Errorf("invalid --start: %w", err)
	}

	end := start.Add(time.Hour)
	if addEnd != "" {
		end, err = parseWhen(addEnd, start)
		if err != nil {
			return fmt.Errorf("invalid --end: %w", err)
		}
	} else if addAllDay {
		end = start
	}

	var item model.CalendarItem
	if addTask {
		item = model.NewTask(title, start, end)
	} else {
		item = model.NewEvent(title, addCategory, start, end)
	}
	item.Description = addDesc
	item.IsAllDay = addAllDay

	if addRepeat != "" {
		pattern, err := parsePattern(addRepeat)
		if err != nil {
			return err
		}
		var until *time.Time
		if addUntil != "" {
			u, err := time.ParseInLocation("2006-01-02", addUntil, start.Location())
			if err != nil {
				return fmt.Errorf("invalid --until: %w", err)
			}
			until = &u
		}
		item = item.Repeat(pattern, addEvery, until)
	}

	s := openStore()
	created, err := s.CreateItem(item)
	if err != nil {
		return fmt.Errorf("failed to create item: %w", err)
	}

	kind := "event"
	if created.IsTask() {
		kind = "task"
	}
	fmt.Printf("✓ Added %s %q on %s (%s)\n",
		kind, created.Title, created.Start.Format("Mon Jan 2"), shortID(created.ID))
	return nil
}

func parsePattern(s string) (model.RecurrencePattern, error) {
	switch strings.ToLower(s) {
	case "daily":
		return model.Daily, nil
	case "weekly":
		return model.Weekly, nil
	case "monthly":
		return model.Monthly, nil
	case "yearly":
		return model.Yearly, nil
	default:
		return "", fmt.Errorf("unknown recurrence pattern %q", s)
	}
}

// parseWhen accepts 'YYYY-MM-DD HH:MM' or a bare 'YYYY-MM-DD'; an empty
// value means the given fallback.
func parseWhen(s string, fallback time.Time) (time.Time, error) {
	if s == "" {
		return fallback, nil
	}
	if t, err := time.ParseInLocation("2006-01-02 15:04", s, time.Local); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02", s, time.Local)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
