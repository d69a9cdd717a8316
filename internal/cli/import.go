package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/WabweniBrian/infinity-ui-sub003/internal/ics"
	"github.com/WabweniBrian/infinity-ui-sub003/internal/logger"
	"github.com/WabweniBrian/infinity-ui-sub003/internal/model"
)

var importCmd = &cobra.Command{
	Use:   "import [file.ics]",
	Short: "Import events from an iCalendar file",
	Long: `Import VEVENTs from an .ics file. Simple recurrence rules become
native recurring events; rules the calendar cannot represent are expanded
into individual events for the next year.

Examples:
  infcal import holidays.ics
  infcal import work.ics --category work`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

var importCategory string

func init() {
	importCmd.Flags().StringVarP(&importCategory, "category", "c", model.CategoryPersonal, "Category for imported events")
}

func runImport(cmd *cobra.Command, args []string) error {
	items, err := ics.ImportFile(args[0], importCategory)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	s := openStore()
	created := 0
	for _, item := range items {
		if _, err := s.CreateItem(item); err != nil {
			logger.Warn("skipping invalid imported item",
				logger.F("title", item.Title), logger.F("error", err))
			continue
		}
		created++
	}

	fmt.Printf("✓ Imported %d items from %s into category %q\n", created, args[0], importCategory)
	return nil
}
