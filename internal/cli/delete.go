package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/WabweniBrian/infinity-ui-sub003/internal/config"
)

var deleteCmd = &cobra.Command{
	Use:     "delete [item-id]",
	Aliases: []string{"rm"},
	Short:   "Delete an event or task",
	Long: `Delete a calendar item by its ID or ID prefix. Holidays cannot be
deleted.

Examples:
  infcal delete abc123
  infcal rm abc123`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	s := openStore()

	item, err := s.FindByPrefix(args[0])
	if err != nil {
		return fmt.Errorf("item %s: %w", args[0], err)
	}

	cfg, _ := config.Load()
	if cfg != nil && cfg.ConfirmDelete {
		fmt.Printf("About to delete: %q (ID: %s)\n", item.Title, item.ID)
		fmt.Print("Are you sure? [y/N]: ")
		var confirm string
		fmt.Scanln(&confirm)
		if confirm != "y" && confirm != "Y" {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	if err := s.DeleteItem(item.ID); err != nil {
		return fmt.Errorf("failed to delete %q: %w", item.Title, err)
	}

	fmt.Printf("Deleted: %q\n", item.Title)
	return nil
}
