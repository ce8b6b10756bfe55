// ABOUTME: Tests for configuration management.
// ABOUTME: Verifies defaults, directory overrides, and YAML round trips.

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPathUsesDirOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(DirEnvKey, dir)

	if Dir() != dir {
		t.Errorf("Dir() = %s, want %s", Dir(), dir)
	}
	if Path() != filepath.Join(dir, "config.yaml") {
		t.Errorf("unexpected config path %s", Path())
	}
}

func TestDirFollowsXDGConfigHome(t *testing.T) {
	t.Setenv(DirEnvKey, "")
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)

	if Dir() != filepath.Join(home, "flashdeck") {
		t.Errorf("Dir() = %s, want %s", Dir(), filepath.Join(home, "flashdeck"))
	}
}

func TestDefault(t *testing.T) {
	data := t.TempDir()
	t.Setenv("XDG_DATA_HOME", data)

	cfg := Default()
	if cfg.OutputDir != "." {
		t.Errorf("expected output dir '.', got %q", cfg.OutputDir)
	}
	if cfg.StorageDir != filepath.Join(data, "flashdeck", "storage") {
		t.Errorf("unexpected storage dir %q", cfg.StorageDir)
	}
	if cfg.CatalogPath != filepath.Join(data, "flashdeck", "catalog.db") {
		t.Errorf("unexpected catalog path %q", cfg.CatalogPath)
	}
	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("expected log level %q, got %q", DefaultLogLevel, cfg.LogLevel)
	}
}

func TestLoadMissingReturnsDefaults(t *testing.T) {
	t.Setenv(DirEnvKey, t.TempDir())

	if Exists() {
		t.Fatal("expected no config file")
	}
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.OutputDir != "." {
		t.Errorf("expected default output dir, got %q", cfg.OutputDir)
	}
}

func TestSaveAndLoad(t *testing.T) {
	t.Setenv(DirEnvKey, filepath.Join(t.TempDir(), "nested"))

	cfg := Default()
	cfg.OutputDir = "/decks"
	cfg.LogLevel = "debug"
	if err := Save(cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if !Exists() {
		t.Fatal("expected config file after save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.OutputDir != "/decks" {
		t.Errorf("expected output dir /decks, got %q", got.OutputDir)
	}
	if got.LogLevel != "debug" {
		t.Errorf("expected log level debug, got %q", got.LogLevel)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(DirEnvKey, dir)
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("output_dir: /srv/decks\n"), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.OutputDir != "/srv/decks" {
		t.Errorf("expected output dir from file, got %q", cfg.OutputDir)
	}
	if cfg.StorageDir != Default().StorageDir {
		t.Errorf("expected default storage dir, got %q", cfg.StorageDir)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(DirEnvKey, dir)

	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("output_dir: [unclosed\n"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(); err == nil {
		t.Error("expected error for invalid YAML")
	}
}
