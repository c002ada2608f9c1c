// Package main provides the pd CLI entry point.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/matsen/paperdeck/internal/config"
	"github.com/matsen/paperdeck/internal/dataset"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pd",
	Short: "Terminal browser for pre-generated paper datasets",
	Long: `pd browses pre-generated JSON datasets of academic papers.

Datasets are a month index plus one file per month, served from a static
base URL or a local data directory. Papers can be filtered by month,
publication status, category and search text, sorted by date or
importance, selected and exported as a BibTeX bibliography.

Commands output JSON by default; pass --human for readable text.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.Version = Version
}

// openStore builds the dataset store from configuration. A configured
// base URL wins over a local data directory.
func openStore() (*dataset.Store, *config.Config) {
	cfg, err := config.Load()
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}

	var fetcher dataset.Fetcher
	if cfg.DataURL != "" {
		fetcher = dataset.NewHTTPFetcher(cfg.DataURL)
	} else {
		fetcher = dataset.NewDirFetcher(cfg.DataDir)
	}
	return dataset.NewStore(fetcher), cfg
}
