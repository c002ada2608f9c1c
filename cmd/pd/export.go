package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matsen/paperdeck/internal/dataset"
	"github.com/matsen/paperdeck/internal/export"
	"github.com/matsen/paperdeck/internal/paper"
	"github.com/matsen/paperdeck/internal/selection"
)

var (
	exportMonth  string
	exportOutput string
)

func init() {
	exportCmd.Flags().StringVar(&exportMonth, "month", dataset.AllMonths, "Month key (YYYY-MM) or \"all\" to resolve ids against")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", export.FileName, "Output file (\"-\" for stdout)")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export ID...",
	Short: "Export selected papers as a BibTeX bibliography",
	Long: `Export the papers with the given identifiers as a BibTeX file.
Entries appear in argument order.

Examples:
  pd export 2401.00001 2401.00234
  pd export --month 2024-01 -o refs.bib 2401.00001`,
	Args: cobra.MinimumNArgs(0),
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	store, _ := openStore()

	records, err := store.Load(context.Background(), exportMonth)
	if err != nil {
		exitWithError(ExitDataError, "loading %s: %v", exportMonth, err)
	}

	byID := make(map[string]paper.Paper, len(records))
	for _, p := range records {
		if _, ok := byID[p.ID]; !ok {
			byID[p.ID] = p
		}
	}

	sel := selection.New()
	sel.SelectAll(args)

	var selected []paper.Paper
	var missing []string
	for _, id := range sel.IDs() {
		p, ok := byID[id]
		if !ok {
			missing = append(missing, id)
			continue
		}
		selected = append(selected, p)
	}
	for _, id := range missing {
		fmt.Fprintf(os.Stderr, "warning: %s not in loaded dataset, skipped\n", id)
	}

	content, err := export.Bibliography(selected)
	if err != nil {
		if errors.Is(err, export.ErrNothingSelected) {
			// User notice, not a system fault.
			exitWithError(ExitError, "%v", err)
		}
		exitWithError(ExitError, "exporting: %v", err)
	}

	if exportOutput == "-" {
		fmt.Print(content)
		return nil
	}
	if err := os.WriteFile(exportOutput, []byte(content), 0644); err != nil {
		exitWithError(ExitError, "writing %s: %v", exportOutput, err)
	}

	if humanOutput {
		fmt.Printf("Exported %d papers to %s\n", len(selected), exportOutput)
		return nil
	}
	return outputJSON(struct {
		Exported int    `json:"exported"`
		Path     string `json:"path"`
	}{Exported: len(selected), Path: exportOutput})
}
