// Copyright 2026 The Property Console Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for the property
// console.
//
// Configuration is loaded from a single YAML file specified by:
//   - the PROPERTY_CONSOLE_CONFIG environment variable, or
//   - the --config flag passed to the command
//
// There are no fallbacks or automatic discovery beyond the built-in
// defaults. This keeps the data paths deterministic and auditable.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EnvVar names the environment variable holding the config file path.
const EnvVar = "PROPERTY_CONSOLE_CONFIG"

// Config is the console configuration.
type Config struct {
	// Data configures the document file locations.
	Data DataConfig `yaml:"data"`
}

// DataConfig configures where the document is read from and where
// snapshots are written.
type DataConfig struct {
	// Source is the seed document read at startup. It is never
	// written back.
	Source string `yaml:"source"`

	// Destination is where full snapshots are written after each
	// mutation. Must differ from Source so the seed survives intact.
	Destination string `yaml:"destination"`
}

// Default returns the default configuration. Used as the base before
// a config file (if any) is applied, and as the whole configuration
// when no file is named.
func Default() *Config {
	return &Config{
		Data: DataConfig{
			Source:      "property_data.json",
			Destination: "property_data_changes.json",
		},
	}
}

// Load loads configuration from the PROPERTY_CONSOLE_CONFIG
// environment variable, falling back to the defaults when it is not
// set.
func Load() (*Config, error) {
	path := os.Getenv(EnvVar)
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile loads configuration from a specific file path, applied on
// top of the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration invariants.
func (c *Config) Validate() error {
	if c.Data.Source == "" {
		return fmt.Errorf("data.source must not be empty")
	}
	if c.Data.Destination == "" {
		return fmt.Errorf("data.destination must not be empty")
	}
	if c.Data.Source == c.Data.Destination {
		return fmt.Errorf("data.destination must differ from data.source (the seed file is never overwritten in place)")
	}
	return nil
}
