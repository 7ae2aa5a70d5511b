package commands

import (
	"github.com/spf13/cobra"

	"github.com/buynary/backend/internal/infrastructure/catalog"
	"github.com/buynary/backend/internal/usecase"
)

var (
	catalogPath string
	verbose     bool

	store      *catalog.Memory
	parser     *usecase.TranscriptParser
	comparison *usecase.ComparisonService
)

// Execute runs the buynary CLI, a local front door to the same parse and
// compare pipeline the server exposes.
func Execute() error {
	root := &cobra.Command{
		Use:           "buynary",
		Short:         "Compare a grocery list across stores",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if catalogPath != "" {
				store, err = catalog.LoadFile(catalogPath)
				if err != nil {
					return err
				}
			} else {
				store = catalog.Seed()
			}

			parser = usecase.NewTranscriptParser(usecase.ParserConfig{EnableDebugLogging: verbose})
			comparison = usecase.NewComparisonService(usecase.ComparisonConfig{EnableDebugLogging: verbose})
			return nil
		},
	}

	root.PersistentFlags().StringVar(&catalogPath, "catalog", "", "catalog YAML file (default: built-in seed)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable pipeline debug logging")

	root.AddCommand(parseCmd(), compareCmd())
	return root.Execute()
}
