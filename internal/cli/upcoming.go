package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/WabweniBrian/infinity-ui-sub003/internal/calendar"
	"github.com/WabweniBrian/infinity-ui-sub003/internal/config"
)

var upcomingCmd = &cobra.Command{
	Use:     "upcoming",
	Aliases: []string{"up"},
	Short:   "List upcoming events and tasks",
	Long: `List events and tasks over the coming days. Holidays are never
included here; they only show on the calendar grids.`,
	RunE: runUpcoming,
}

var upcomingDays int

func init() {
	upcomingCmd.Flags().IntVarP(&upcomingDays, "days", "n", 0, "How many days ahead (default from config)")
}

func runUpcoming(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}

	days := cfg.UpcomingDays
	if upcomingDays > 0 {
		days = upcomingDays
	}

	s := openStore()
	occs := calendar.Upcoming(time.Now(), days, s.Items(), s.Categories())

	if len(occs) == 0 {
		fmt.Printf("Nothing in the next %d days.\n", days)
		return nil
	}

	fmt.Printf("\nNext %d days:\n\n", days)
	var lastDay time.Time
	for _, occ := range occs {
		if !calendar.SameDay(occ.Start, lastDay) {
			fmt.Printf("%s\n", occ.Start.Format("Mon Jan 2"))
			lastDay = occ.Start
		}

		when := occ.Start.Format("15:04")
		if occ.Item.IsAllDay {
			when = "all-day"
		}
		check := "  "
		if occ.Item.IsTask() {
			check = "[ ]"
			if occ.Item.Completed {
				check = "[x]"
			}
		}
		fmt.Printf("  %s %s  %-40s %s\n", check, when, occ.Item.Title, shortID(occ.Item.ID))
	}
	fmt.Println()
	return nil
}
