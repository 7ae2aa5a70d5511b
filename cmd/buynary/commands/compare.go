package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/buynary/backend/internal/domain"
	"github.com/buynary/backend/internal/usecase"
)

func compareCmd() *cobra.Command {
	var sortMode string

	cmd := &cobra.Command{
		Use:   "compare <transcript>",
		Short: "Parse a transcript and rank stores for the resulting list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items := parser.Parse(args[0])
			if len(items) == 0 {
				return domain.ErrEmptyGroceryList
			}

			ctx := cmd.Context()
			stores, err := store.Stores(ctx)
			if err != nil {
				return err
			}
			products, err := store.Products(ctx)
			if err != nil {
				return err
			}

			results, err := comparison.Compare(ctx, items, stores, products)
			if err != nil {
				return err
			}

			ranked, err := usecase.SortResults(results, domain.SortMode(sortMode))
			if err != nil {
				return fmt.Errorf("%w: %s", err, sortMode)
			}

			fmt.Printf("Grocery list (%d items):\n", len(items))
			for _, item := range items {
				fmt.Printf("  - %s\n", formatItem(item))
			}
			fmt.Println()

			for rank, result := range ranked {
				fmt.Printf("%d. %s %s\n", rank+1, result.Store.Name, result.Store.Logo)
				fmt.Printf("   Total: %.2f AED (subtotal %.2f + delivery %.2f), delivery in %d min\n",
					result.TotalPrice, result.Subtotal, result.DeliveryFee, result.DeliveryTime)
				fmt.Printf("   Found %d of %d items", result.ItemsFound, result.ItemsFound+result.ItemsMissing)
				if len(result.MissingItems) > 0 {
					fmt.Printf(" (missing: %s)", strings.Join(result.MissingItems, ", "))
				}
				fmt.Println()
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&sortMode, "sort", string(domain.SortModePrice), "ranking criterion: price, delivery or availability")
	return cmd
}
