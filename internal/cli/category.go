package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var categoryCmd = &cobra.Command{
	Use:     "category",
	Aliases: []string{"cat"},
	Short:   "Manage categories",
}

var categoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories and their visibility",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := openStore()

		fmt.Println()
		for _, cat := range s.Categories() {
			eye := "●"
			if !cat.Visible {
				eye = "○ (hidden)"
			}
			fmt.Printf("  %-10s %-10s %s\n", cat.ID, cat.Name, eye)
		}
		fmt.Println()
		return nil
	},
}

var categoryToggleCmd = &cobra.Command{
	Use:   "toggle [category-id]",
	Short: "Toggle a category's visibility",
	Long: `Toggle whether a category's items appear in calendar views.
Hidden categories are filtered out of every cell until toggled back.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := openStore()

		visible, err := s.ToggleCategory(args[0])
		if err != nil {
			return err
		}
		if visible {
			fmt.Printf("Category %q is now visible\n", args[0])
		} else {
			fmt.Printf("Category %q is now hidden\n", args[0])
		}
		return nil
	},
}

func init() {
	categoryCmd.AddCommand(categoryListCmd)
	categoryCmd.AddCommand(categoryToggleCmd)
}
