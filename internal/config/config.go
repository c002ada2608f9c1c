// Package config handles paperdeck configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config selects the dataset source and the category list. Exactly one
// of DataURL/DataDir is used; DataURL wins when both are set.
type Config struct {
	DataURL    string   `yaml:"data_url,omitempty"`
	DataDir    string   `yaml:"data_dir,omitempty"`
	Categories []string `yaml:"categories,omitempty"`
}

const (
	// ConfigDir is the directory name under XDG_CONFIG_HOME.
	ConfigDir = "paperdeck"
	// ConfigFile is the config file name.
	ConfigFile = "config.yml"

	// DefaultDataDir is used when neither source is configured; the
	// dataset producer writes its output there.
	DefaultDataDir = "data"
)

// DefaultCategories is the fixed ordered category list the producer
// tags papers with.
var DefaultCategories = []string{
	"Fluid Dynamics",
	"Aerodynamics",
	"Multiphase Flow",
	"Machine Learning",
	"Intelligent Fluid Dynamics",
	"Computational Fluid Dynamics",
}

// categoryAbbrev shortens long-form labels for display. The abbreviation
// is display-only; the long form stays the filter key.
var categoryAbbrev = map[string]string{
	"Computational Fluid Dynamics": "CFD",
}

// DisplayLabel returns the display form of a category label.
func DisplayLabel(category string) string {
	if short, ok := categoryAbbrev[category]; ok {
		return short
	}
	return category
}

// Path returns the config file path. Respects XDG_CONFIG_HOME, defaults
// to ~/.config/paperdeck/config.yml.
func Path() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, ConfigDir, ConfigFile)
}

// Load reads the config file (missing file is not an error), applies
// `.env` and PAPERDECK_* environment overrides, and fills defaults.
func Load() (*Config, error) {
	// .env values only fill unset environment variables.
	_ = godotenv.Load()

	cfg := &Config{}
	if path := Path(); path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
	}

	if v := os.Getenv("PAPERDECK_DATA_URL"); v != "" {
		cfg.DataURL = v
	}
	if v := os.Getenv("PAPERDECK_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}

	if cfg.DataURL == "" && cfg.DataDir == "" {
		cfg.DataDir = DefaultDataDir
	}
	if len(cfg.Categories) == 0 {
		cfg.Categories = DefaultCategories
	}
	return cfg, nil
}
