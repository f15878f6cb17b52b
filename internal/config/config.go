// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	DataDir    string `json:"data_dir,omitempty"`    // Directory holding candidate and job records
	UploadDir  string `json:"upload_dir,omitempty"`  // Directory holding uploaded résumé documents
	TopMatches int    `json:"top_matches,omitempty"` // Maximum match results to print (0 = all)
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		DataDir:   "data",
		UploadDir: filepath.Join("uploads", "resumes"),
	}
}

// LoadConfig loads configuration from a JSON file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.TopMatches < 0 {
		return fmt.Errorf("config error: 'top_matches' must be non-negative")
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.DataDir == "" {
		result.DataDir = defaults.DataDir
	}
	if result.UploadDir == "" {
		result.UploadDir = defaults.UploadDir
	}
	if result.TopMatches == 0 {
		result.TopMatches = defaults.TopMatches
	}

	return result
}
