package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/WabweniBrian/infinity-ui-sub003/internal/calendar"
	"github.com/WabweniBrian/infinity-ui-sub003/internal/config"
	"github.com/WabweniBrian/infinity-ui-sub003/internal/model"
)

var agendaCmd = &cobra.Command{
	Use:   "agenda [day|week|month]",
	Short: "Print the calendar cells for a view",
	Long: `Print the occurrence list per day cell for the chosen view.

Examples:
  infcal agenda
  infcal agenda week
  infcal agenda month --date 2026-09-15
  infcal agenda day --no-holidays`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAgenda,
}

var (
	agendaDate       string
	agendaNoHolidays bool
)

func init() {
	agendaCmd.Flags().StringVarP(&agendaDate, "date", "d", "", "Reference date (YYYY-MM-DD, default today)")
	agendaCmd.Flags().BoolVar(&agendaNoHolidays, "no-holidays", false, "Hide holiday entries")
}

func runAgenda(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}

	view := calendar.ParseView(cfg.DefaultView)
	if len(args) > 0 {
		view = calendar.ParseView(args[0])
	}

	ref := time.Now()
	if agendaDate != "" {
		ref, err = time.ParseInLocation("2006-01-02", agendaDate, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --date: %w", err)
		}
	}

	opts := calendar.Options{ShowHolidays: cfg.ShowHolidays && !agendaNoHolidays}

	s := openStore()
	cells := calendar.CellsFor(view, ref, s.Items(), s.Categories(), opts)

	for _, cell := range cells {
		if len(cell.Occurrences) == 0 && view != calendar.ViewDay {
			continue
		}

		header := cell.Date.Format("Mon Jan 2")
		if calendar.SameDay(cell.Date, time.Now()) {
			header += "  (today)"
		}
		fmt.Printf("\n%s\n%s\n", header, strings.Repeat("─", 40))

		if len(cell.Occurrences) == 0 {
			fmt.Println("  nothing scheduled")
		}
		for _, occ := range cell.Occurrences {
			fmt.Printf("  %s\n", formatOccurrence(occ))
		}
		if cell.OverflowCount > 0 {
			fmt.Printf("  +%d more\n", cell.OverflowCount)
		}
	}
	fmt.Println()
	return nil
}

// formatOccurrence renders one cell entry: clipped times for interior days
// of a multi-day span, real times on its first and last day.
func formatOccurrence(occ calendar.RenderableOccurrence) string {
	marker := " "
	switch occ.Item.Type {
	case model.TypeTask:
		marker = "[ ]"
		if occ.Item.Completed {
			marker = "[x]"
		}
	case model.TypeHoliday:
		marker = " ★ "
	}

	when := ""
	switch {
	case occ.Item.IsAllDay:
		when = "all day     "
	case !occ.IsFirstDay && !occ.IsLastDay:
		when = "············"
	case occ.IsFirstDay && !occ.IsLastDay:
		when = occ.DisplayStart.Format("15:04") + " ─▶    "
	case !occ.IsFirstDay && occ.IsLastDay:
		when = "   ▶─ " + occ.DisplayEnd.Format("15:04")
	default:
		when = occ.DisplayStart.Format("15:04") + "-" + occ.DisplayEnd.Format("15:04")
	}

	return fmt.Sprintf("%-3s %s  %s", marker, when, occ.Item.Title)
}
