package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Config is the persistent application configuration
type Config struct {
	// CatalogSource is a file path or http(s) URL. Empty means the sample
	// catalog bundled with the binary.
	CatalogSource string `json:"catalog_source" env:"CUPID_CATALOG"`

	// DataDir holds the database and logs
	DataDir string `json:"data_dir" env:"CUPID_DATA_DIR"`

	LogLevel string `json:"log_level" env:"CUPID_LOG_LEVEL"`

	// Seed fixes the shuffle order. 0 picks a random seed each run.
	Seed uint64 `json:"seed" env:"CUPID_SEED"`

	// UI list sizes
	BrowseLimit int `json:"browse_limit" env:"CUPID_BROWSE_LIMIT"`
	SearchLimit int `json:"search_limit" env:"CUPID_SEARCH_LIMIT"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		DataDir:     DefaultDataDir(),
		LogLevel:    "info",
		BrowseLimit: 20,
		SearchLimit: 50,
	}
}

// DefaultDataDir is ~/.cupid
func DefaultDataDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".cupid")
}

// ConfigPath returns the path to the config file
func ConfigPath() string {
	return filepath.Join(DefaultDataDir(), "config.json")
}

// DBPath is where the owned selection lives
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, "cupid.db")
}

// Load reads config from path, or returns defaults. A missing or unreadable
// file is not an error. Environment variables override the file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if jsonErr := json.Unmarshal(data, cfg); jsonErr != nil {
			cfg = DefaultConfig()
		}
	case !os.IsNotExist(err):
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	cfg.normalize()
	return cfg, nil
}

// ApplyEnv overrides fields from CUPID_* environment variables
func (c *Config) ApplyEnv() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func (c *Config) normalize() {
	def := DefaultConfig()
	if c.DataDir == "" {
		c.DataDir = def.DataDir
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	if c.BrowseLimit <= 0 {
		c.BrowseLimit = def.BrowseLimit
	}
	if c.SearchLimit <= 0 {
		c.SearchLimit = def.SearchLimit
	}
}

// Save writes config to path
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}
