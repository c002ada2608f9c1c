package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(monthsCmd)
}

var monthsCmd = &cobra.Command{
	Use:   "months",
	Short: "List available dataset months",
	Long: `List the months available in the dataset index.

Examples:
  pd months
  pd months --human`,
	RunE: runMonths,
}

func runMonths(cmd *cobra.Command, args []string) error {
	store, _ := openStore()

	months, err := store.Months(context.Background())
	if err != nil {
		exitWithError(ExitDataError, "loading month index: %v", err)
	}

	if humanOutput {
		if len(months) == 0 {
			fmt.Println("No months in dataset")
			return nil
		}
		for _, m := range months {
			fmt.Printf("  %s  %d papers\n", m.Month, m.Count)
		}
		return nil
	}
	return outputJSON(months)
}
