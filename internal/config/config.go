// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
)

// Environment variable overrides. They win over config-file values so a
// token never has to be written to disk.
const (
	EnvAPIURL   = "HIREPLAN_API_URL"
	EnvAPIToken = "HIREPLAN_API_TOKEN"
)

// Config represents the CLI configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	APIURL         string `json:"api_url,omitempty"`         // Base URL of the HirePlan job API
	APIToken       string `json:"api_token,omitempty"`       // Bearer token for API requests
	TimeoutSeconds int    `json:"timeout_seconds,omitempty"` // HTTP request timeout
	Preflight      bool   `json:"preflight,omitempty"`       // Verify remote references before submitting
	Verbose        bool   `json:"verbose,omitempty"`         // Print detailed output
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
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

// ApplyEnv overlays environment variable values onto the config. Set
// variables win over file values.
func (c *Config) ApplyEnv() {
	if apiURL := os.Getenv(EnvAPIURL); apiURL != "" {
		c.APIURL = apiURL
	}
	if token := os.Getenv(EnvAPIToken); token != "" {
		c.APIToken = token
	}
}

// Validate checks that the configuration has valid values.
// Note: required fields are checked by the commands that need them, after
// flag merging.
func (c *Config) Validate() error {
	if c.APIURL != "" {
		parsed, err := url.Parse(c.APIURL)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("config error: 'api_url' is not a valid URL: %s", c.APIURL)
		}
	}
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'timeout_seconds' must be non-negative")
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.APIURL == "" {
		result.APIURL = defaults.APIURL
	}
	if result.APIToken == "" {
		result.APIToken = defaults.APIToken
	}
	if result.TimeoutSeconds == 0 {
		result.TimeoutSeconds = defaults.TimeoutSeconds
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
