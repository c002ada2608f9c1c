package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("PAPERDECK_DATA_URL", "")
	t.Setenv("PAPERDECK_DATA_DIR", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.DataDir != DefaultDataDir {
		t.Errorf("DataDir = %q, want default %q", cfg.DataDir, DefaultDataDir)
	}
	if len(cfg.Categories) != len(DefaultCategories) {
		t.Errorf("Categories = %v, want defaults", cfg.Categories)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("PAPERDECK_DATA_URL", "")
	t.Setenv("PAPERDECK_DATA_DIR", "")

	path := filepath.Join(dir, ConfigDir, ConfigFile)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	content := "data_url: https://example.org/data\ncategories:\n  - One\n  - Two\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.DataURL != "https://example.org/data" {
		t.Errorf("DataURL = %q", cfg.DataURL)
	}
	if len(cfg.Categories) != 2 || cfg.Categories[0] != "One" {
		t.Errorf("Categories = %v", cfg.Categories)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("PAPERDECK_DATA_URL", "https://papers.example.org")
	t.Setenv("PAPERDECK_DATA_DIR", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.DataURL != "https://papers.example.org" {
		t.Errorf("env override ignored, DataURL = %q", cfg.DataURL)
	}
}

func TestLoadMalformed(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, ConfigDir, ConfigFile)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("{not yaml"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Error("Load() on malformed yaml should fail")
	}
}

func TestDisplayLabel(t *testing.T) {
	if got := DisplayLabel("Computational Fluid Dynamics"); got != "CFD" {
		t.Errorf("DisplayLabel = %q, want CFD", got)
	}
	if got := DisplayLabel("Machine Learning"); got != "Machine Learning" {
		t.Errorf("DisplayLabel should pass through unknown labels, got %q", got)
	}
}
