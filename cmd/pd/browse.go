package main

import (
	"github.com/spf13/cobra"

	"github.com/matsen/paperdeck/internal/tui"
)

func init() {
	rootCmd.AddCommand(browseCmd)
}

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse papers interactively",
	Long: `Open the interactive paper browser. Papers render incrementally
as you scroll; filters, sorting, selection and export are bound to keys
shown in the footer.`,
	RunE: runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) error {
	store, cfg := openStore()
	return tui.Run(store, cfg)
}
