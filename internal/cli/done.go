package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var doneCmd = &cobra.Command{
	Use:   "done [item-id]",
	Short: "Toggle a task's completion",
	Long: `Toggle the completed flag of a task. Toggling again restores the
previous state. Only tasks can be toggled.

Examples:
  infcal done abc123`,
	Args: cobra.ExactArgs(1),
	RunE: runDone,
}

func runDone(cmd *cobra.Command, args []string) error {
	s := openStore()

	item, err := s.FindByPrefix(args[0])
	if err != nil {
		return fmt.Errorf("task %s: %w", args[0], err)
	}

	completed, err := s.ToggleTask(item.ID)
	if err != nil {
		return fmt.Errorf("failed to toggle %q: %w", item.Title, err)
	}

	if completed {
		fmt.Printf("✓ Completed: %q\n", item.Title)
	} else {
		fmt.Printf("○ Reopened: %q\n", item.Title)
	}
	return nil
}
