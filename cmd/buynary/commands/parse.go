package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/buynary/backend/internal/domain"
)

func parseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <transcript>",
		Short: "Parse a spoken grocery transcript into structured items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items := parser.Parse(args[0])
			if len(items) == 0 {
				fmt.Println("No items recognized.")
				return nil
			}

			for i, item := range items {
				fmt.Printf("%2d. %s\n", i+1, formatItem(item))
			}
			return nil
		},
	}
	return cmd
}

func formatItem(item domain.GroceryItem) string {
	if item.IsWeight() {
		return fmt.Sprintf("%s (%g %s)", item.Name, item.Weight, item.WeightUnit)
	}
	return fmt.Sprintf("%s (%d pieces)", item.Name, item.Count)
}
