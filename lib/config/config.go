// Copyright 2026 The Skyvault Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config is the master configuration for the Skyvault CLI.
type Config struct {
	// Paths configures file locations.
	Paths PathsConfig `yaml:"paths"`

	// API configures the cloud-storage service endpoint.
	API APIConfig `yaml:"api"`
}

// PathsConfig configures file locations.
type PathsConfig struct {
	// Root is the base directory for Skyvault state.
	Root string `yaml:"root" env:"SKYVAULT_ROOT"`

	// AccountData is the account registry snapshot file. This is the
	// default storage path injected into the registry at load time.
	AccountData string `yaml:"account_data" env:"SKYVAULT_ACCOUNT_DATA"`
}

// APIConfig configures the cloud-storage service endpoint.
type APIConfig struct {
	// BaseURL is the API endpoint.
	BaseURL string `yaml:"base_url" env:"SKYVAULT_API_URL"`
}

// Default returns the default configuration, rooted under the user's
// config directory.
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	root := filepath.Join(homeDir, ".config", "skyvault")

	return &Config{
		Paths: PathsConfig{
			Root:        root,
			AccountData: filepath.Join(root, "accounts.cbor"),
		},
		API: APIConfig{
			BaseURL: "https://api.skyvault.io",
		},
	}
}

// Load resolves the effective configuration: defaults, then the file
// named by SKYVAULT_CONFIG if set, then SKYVAULT_* environment
// variables. A missing SKYVAULT_CONFIG is not an error; a set but
// unreadable one is.
func Load() (*Config, error) {
	cfg := Default()

	if path := os.Getenv("SKYVAULT_CONFIG"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: parse environment: %w", err)
	}

	// Re-derive the dependent default when only the root moved.
	if cfg.Paths.AccountData == "" {
		cfg.Paths.AccountData = filepath.Join(cfg.Paths.Root, "accounts.cbor")
	}

	return cfg, nil
}

// LoadFile loads configuration from a specific file path on top of the
// defaults, then applies environment overrides.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: parse environment: %w", err)
	}
	return cfg, nil
}

// loadFile merges a single YAML configuration file into the current
// config.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if c.Paths.Root == "" {
		errs = append(errs, fmt.Errorf("paths.root is required"))
	}
	if c.Paths.AccountData == "" {
		errs = append(errs, fmt.Errorf("paths.account_data is required"))
	}
	if c.API.BaseURL == "" {
		errs = append(errs, fmt.Errorf("api.base_url is required"))
	} else if !strings.HasPrefix(c.API.BaseURL, "http://") && !strings.HasPrefix(c.API.BaseURL, "https://") {
		errs = append(errs, fmt.Errorf("api.base_url must be an http(s) URL, got %q", c.API.BaseURL))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
