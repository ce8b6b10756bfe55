// ABOUTME: User configuration for flashdeck stored as YAML.
// ABOUTME: Handles XDG config paths, defaults, and persistence.

package config

import (
	"os"
	"path/filepath"

	"github.com/harper/flashdeck/internal/catalog"
	"gopkg.in/yaml.v3"
)

// DirEnvKey overrides the configuration directory when set.
const DirEnvKey = "FLASHDECK_CONFIG_DIR"

const DefaultLogLevel = "warn"

// Config holds flashdeck settings.
type Config struct {
	// OutputDir is where new deck archives are written (default: ".")
	OutputDir string `yaml:"output_dir"`

	// StorageDir receives attachment files when decks are loaded.
	StorageDir string `yaml:"storage_dir"`

	// CatalogPath is the sqlite database tracking known decks.
	CatalogPath string `yaml:"catalog_path"`

	LogLevel string `yaml:"log_level,omitempty"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		OutputDir:   ".",
		StorageDir:  filepath.Join(catalog.DataDir(), "storage"),
		CatalogPath: catalog.DefaultPath(),
		LogLevel:    DefaultLogLevel,
	}
}

// Dir returns the configuration directory path.
func Dir() string {
	if dir := os.Getenv(DirEnvKey); dir != "" {
		return dir
	}
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "flashdeck")
}

// Path returns the path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.yaml")
}

// Load reads configuration from disk, returning defaults if not found.
// Fields missing from the file keep their default values.
func Load() (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(Path())
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes configuration to disk.
func Save(cfg *Config) error {
	if err := os.MkdirAll(Dir(), 0750); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(Path(), data, 0600)
}

// Exists returns true if a config file exists.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}
