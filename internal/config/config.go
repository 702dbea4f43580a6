// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"buildcost/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// CatalogPath is the module catalog HCL file; empty uses the
	// built-in catalog
	CatalogPath string `json:"catalog_path,omitempty"`

	// RateCardPath is the rate card YAML file; empty uses the
	// built-in rate card
	RateCardPath string `json:"rate_card_path,omitempty"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Storage contains estimate storage configuration
	Storage StorageConfig `json:"storage"`

	// Server contains API server configuration
	Server ServerConfig `json:"server"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format (cli, json, markdown)
	DefaultFormat string `json:"default_format"`

	// ShowBreakdown shows the per-module cost breakdown
	ShowBreakdown bool `json:"show_breakdown"`
}

// StorageConfig contains estimate storage settings
type StorageConfig struct {
	// Backend is the storage backend (memory, file, sqlite)
	Backend string `json:"backend"`

	// Path is the storage directory (file) or database file (sqlite)
	Path string `json:"path"`
}

// ServerConfig contains API server settings
type ServerConfig struct {
	// Addr is the listen address
	Addr string `json:"addr"`
}

// Default returns a default configuration
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	storagePath := filepath.Join(homeDir, ".buildcost", "estimates.db")

	return &Config{
		Version: "1.0",
		Output: OutputConfig{
			DefaultFormat: "cli",
			ShowBreakdown: true,
		},
		Storage: StorageConfig{
			Backend: "sqlite",
			Path:    storagePath,
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
