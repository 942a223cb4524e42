package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/hireplan/hireplan/internal/client"
	"github.com/hireplan/hireplan/internal/config"
	"github.com/hireplan/hireplan/internal/types"
)

// loadPosting reads a posting from a JSON file and fills automation defaults
// so partially specified files validate the same way the editor UI would
// treat them.
func loadPosting(path string) (*types.JobPosting, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read posting file %s: %w", path, err)
	}

	var posting types.JobPosting
	if err := json.Unmarshal(data, &posting); err != nil {
		return nil, fmt.Errorf("failed to parse posting JSON: %w", err)
	}

	posting.Automation = posting.Automation.MergeDefaults()
	return &posting, nil
}

// resolveConfig merges configuration sources. Precedence, highest first:
// CLI flags, environment variables, config file.
func resolveConfig() (config.Config, error) {
	var fileCfg config.Config
	if configFlag != "" {
		loaded, err := config.LoadConfig(configFlag)
		if err != nil {
			return config.Config{}, err
		}
		fileCfg = *loaded
	}

	envCfg := fileCfg
	envCfg.ApplyEnv()

	flagCfg := config.Config{
		APIURL:         apiURLFlag,
		APIToken:       tokenFlag,
		TimeoutSeconds: timeoutFlag,
	}

	merged := flagCfg.MergeWithDefaults(envCfg)
	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}
	return merged, nil
}

// buildClient constructs an API client from resolved configuration.
func buildClient(cfg config.Config) (*client.Client, error) {
	if cfg.APIURL == "" {
		return nil, fmt.Errorf("API URL is required; set --api-url, %s, or api_url in the config file", config.EnvAPIURL)
	}

	opts := client.DefaultOptions()
	if cfg.TimeoutSeconds > 0 {
		opts.Timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}

	return client.New(cfg.APIURL, cfg.APIToken, opts)
}
