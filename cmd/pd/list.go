package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matsen/paperdeck/internal/dataset"
	"github.com/matsen/paperdeck/internal/engine"
	"github.com/matsen/paperdeck/internal/paper"
)

var (
	listMonth    string
	listStatus   string
	listCategory string
	listSearch   string
	listSort     string
	listLimit    int
)

func init() {
	listCmd.Flags().StringVar(&listMonth, "month", dataset.AllMonths, "Month key (YYYY-MM) or \"all\"")
	listCmd.Flags().StringVar(&listStatus, "status", engine.FilterAll, "Status filter: all, published, preprint")
	listCmd.Flags().StringVar(&listCategory, "category", engine.FilterAll, "Category filter: all, or a category label")
	listCmd.Flags().StringVar(&listSearch, "search", "", "Substring to match against title, authors and abstract")
	listCmd.Flags().StringVar(&listSort, "sort", string(engine.SortDateDesc), "Sort mode: date-desc, date-asc, importance-desc")
	listCmd.Flags().IntVar(&listLimit, "limit", 0, "Maximum results to return (0 = all)")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List papers matching filters",
	Long: `List papers from the dataset, filtered and sorted.

Examples:
  pd list --month 2024-01
  pd list --status published --category "Machine Learning"
  pd list --search turbulence --sort importance-desc --limit 20`,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	sortMode := engine.SortMode(listSort)
	if !sortMode.Valid() {
		exitWithError(ExitError, "unknown sort mode %q", listSort)
	}

	store, _ := openStore()
	records, err := store.Load(context.Background(), listMonth)
	if err != nil {
		exitWithError(ExitDataError, "loading %s: %v", listMonth, err)
	}

	filtered := engine.Apply(records, engine.Filter{
		Status:   listStatus,
		Category: listCategory,
		Search:   listSearch,
		Sort:     sortMode,
	})
	if listLimit > 0 && len(filtered) > listLimit {
		filtered = filtered[:listLimit]
	}

	display := make([]paper.Display, len(filtered))
	for i, p := range filtered {
		display[i] = paper.ForDisplay(p)
	}

	if humanOutput {
		if len(display) == 0 {
			fmt.Println("No papers match")
			return nil
		}
		for _, d := range display {
			badge := string(d.Badge)
			if badge != "" {
				badge = " [" + badge + "]"
			}
			fmt.Printf("  %-14s %s  %s%s\n", d.ID, d.Published, truncateString(d.Title, ListTitleMaxLen), badge)
		}
		return nil
	}
	return outputJSON(display)
}
