package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Defaults for the records written to tags.
const (
	DefaultMimeType   = "application/vnd.at-equipcheck+json"
	DefaultAppPackage = "com.alienmantech.maroonnova"
	DefaultLogLevel   = "warn"
)

// Version of the config file format.
const Version = "1.0"

// Config represents the nfcfactory configuration
type Config struct {
	Version    string `json:"version"`
	MimeType   string `json:"mime_type,omitempty"`   // type of the payload record
	AppPackage string `json:"app_package,omitempty"` // package named by the application record
	LogLevel   string `json:"log_level,omitempty"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Version:    Version,
		MimeType:   DefaultMimeType,
		AppPackage: DefaultAppPackage,
		LogLevel:   DefaultLogLevel,
	}
}

// Path returns the config file location for a directory.
func Path(dir string) string {
	return filepath.Join(dir, ".nfcfactory", "config.json")
}

// LoadConfig reads .nfcfactory/config.json from the specified directory.
// Resolution order: cwd only (no home fallback).
// Returns error if no config found - caller should handle accordingly.
func LoadConfig(dir string) (*Config, error) {
	data, err := os.ReadFile(Path(dir))
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()

	return cfg, nil
}

// LoadOrDefault is LoadConfig with a missing file treated as defaults.
func LoadOrDefault(dir string) (*Config, error) {
	cfg, err := LoadConfig(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// SaveConfig writes config.json to directory
func SaveConfig(dir string, cfg *Config) error {
	cfgDir := filepath.Dir(Path(dir))
	if err := os.MkdirAll(cfgDir, 0755); err != nil {
		return fmt.Errorf("failed to create .nfcfactory dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(Path(dir), data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyDefaults fills fields an older or hand-written config left empty.
func (c *Config) applyDefaults() {
	if c.Version == "" {
		c.Version = Version
	}
	if c.MimeType == "" {
		c.MimeType = DefaultMimeType
	}
	if c.AppPackage == "" {
		c.AppPackage = DefaultAppPackage
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}
