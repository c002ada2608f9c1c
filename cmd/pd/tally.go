package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matsen/paperdeck/internal/config"
	"github.com/matsen/paperdeck/internal/dataset"
	"github.com/matsen/paperdeck/internal/engine"
)

var (
	tallyMonth  string
	tallyStatus string
)

func init() {
	tallyCmd.Flags().StringVar(&tallyMonth, "month", dataset.AllMonths, "Month key (YYYY-MM) or \"all\"")
	tallyCmd.Flags().StringVar(&tallyStatus, "status", engine.FilterAll, "Status filter applied before counting")
	rootCmd.AddCommand(tallyCmd)
}

var tallyCmd = &cobra.Command{
	Use:   "tally",
	Short: "Count papers per category",
	Long: `Count how many papers carry each category tag. The counts run
over the status-filtered subset, not the category-filtered one, matching
what the category badges display.

Examples:
  pd tally
  pd tally --month 2024-01 --status published --human`,
	RunE: runTally,
}

func runTally(cmd *cobra.Command, args []string) error {
	store, cfg := openStore()

	records, err := store.Load(context.Background(), tallyMonth)
	if err != nil {
		exitWithError(ExitDataError, "loading %s: %v", tallyMonth, err)
	}

	subset := engine.StatusFiltered(records, tallyStatus)
	counts := engine.Tally(subset, cfg.Categories)

	if humanOutput {
		fmt.Printf("  %-32s %d\n", "all", counts[engine.TallyAll])
		for _, c := range cfg.Categories {
			fmt.Printf("  %-32s %d\n", config.DisplayLabel(c), counts[c])
		}
		return nil
	}
	return outputJSON(counts)
}
