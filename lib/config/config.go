// Copyright 2026 The Meridian Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// EnvironmentVariable names the variable Load reads the config path from.
const EnvironmentVariable = "IDENT_CONFIG"

// Environment represents the deployment environment.
type Environment string

const (
	// Development is for local development machines.
	Development Environment = "development"
	// Staging is for pre-production testing.
	Staging Environment = "staging"
	// Production is for production deployments.
	Production Environment = "production"
)

// Config is the configuration for the boundary layer and CLI.
type Config struct {
	// Environment identifies the deployment type.
	Environment Environment `yaml:"environment" json:"environment"`

	// Boundary configures the handle table handed to host runtimes.
	Boundary BoundaryConfig `yaml:"boundary" json:"boundary"`

	// Log configures structured logging.
	Log LogConfig `yaml:"log" json:"log"`

	Development *ConfigOverrides `yaml:"development,omitempty" json:"development,omitempty"`
	Staging     *ConfigOverrides `yaml:"staging,omitempty" json:"staging,omitempty"`
	Production  *ConfigOverrides `yaml:"production,omitempty" json:"production,omitempty"`
}

// ConfigOverrides contains fields that can be overridden per environment.
// Unset fields leave the base value alone.
type ConfigOverrides struct {
	Boundary *BoundaryOverrides `yaml:"boundary,omitempty" json:"boundary,omitempty"`
	Log      *LogConfig         `yaml:"log,omitempty" json:"log,omitempty"`
}

// BoundaryOverrides mirrors BoundaryConfig with ReportLeaks as a pointer
// so an override section can tell "false" from "not set".
type BoundaryOverrides struct {
	Capacity    int   `yaml:"capacity" json:"capacity"`
	ReportLeaks *bool `yaml:"report_leaks" json:"report_leaks"`
}

// BoundaryConfig configures the handle table.
type BoundaryConfig struct {
	// Capacity is the maximum number of live handles. 0 means unlimited.
	// Default: 0
	Capacity int `yaml:"capacity" json:"capacity"`

	// ReportLeaks logs every handle still live when the table closes.
	// Default: false (development), true (production)
	ReportLeaks bool `yaml:"report_leaks" json:"report_leaks"`
}

// LogConfig configures structured logging.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	// Default: info
	Level string `yaml:"level" json:"level"`

	// Format is one of auto, text, json. auto picks text on a terminal
	// and JSON otherwise.
	// Default: auto
	Format string `yaml:"format" json:"format"`
}

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"auto", "text", "json"}
)

// Default returns the default configuration. LoadFile starts from these
// values, so a file only needs the fields it changes.
func Default() *Config {
	return &Config{
		Environment: Development,
		Boundary: BoundaryConfig{
			Capacity:    0,
			ReportLeaks: false,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "auto",
		},
	}
}

// Load loads configuration from the file named by IDENT_CONFIG.
// If the variable is not set, Load fails; there is no fallback.
func Load() (*Config, error) {
	configPath := os.Getenv(EnvironmentVariable)
	if configPath == "" {
		return nil, fmt.Errorf("%s environment variable not set; "+
			"set it to the path of your ident.yaml config file, or use --config flag", EnvironmentVariable)
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path, applies the
// overrides for the configured environment, and validates the result.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if err := cfg.loadFile(path); err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}
	cfg.applyEnvironmentOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// loadFile merges one file into c.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		return json.Unmarshal(jsonc.ToJSON(data), c)
	default:
		return yaml.Unmarshal(data, c)
	}
}

// applyEnvironmentOverrides applies the section matching c.Environment.
// Production first switches on leak reporting and JSON logs; its
// section can still turn either back off explicitly.
func (c *Config) applyEnvironmentOverrides() {
	var overrides *ConfigOverrides

	switch c.Environment {
	case Development:
		overrides = c.Development
	case Staging:
		overrides = c.Staging
	case Production:
		c.Boundary.ReportLeaks = true
		c.Log.Format = "json"
		overrides = c.Production
	}

	if overrides == nil {
		return
	}

	if overrides.Boundary != nil {
		if overrides.Boundary.Capacity != 0 {
			c.Boundary.Capacity = overrides.Boundary.Capacity
		}
		if overrides.Boundary.ReportLeaks != nil {
			c.Boundary.ReportLeaks = *overrides.Boundary.ReportLeaks
		}
	}

	if overrides.Log != nil {
		if overrides.Log.Level != "" {
			c.Log.Level = overrides.Log.Level
		}
		if overrides.Log.Format != "" {
			c.Log.Format = overrides.Log.Format
		}
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if c.Environment != Development && c.Environment != Staging && c.Environment != Production {
		errs = append(errs, fmt.Errorf("invalid environment: %s", c.Environment))
	}
	if c.Boundary.Capacity < 0 {
		errs = append(errs, fmt.Errorf("boundary.capacity must not be negative, got %d", c.Boundary.Capacity))
	}
	if !slices.Contains(logLevels, c.Log.Level) {
		errs = append(errs, fmt.Errorf("log.level must be one of: %v", logLevels))
	}
	if !slices.Contains(logFormats, c.Log.Format) {
		errs = append(errs, fmt.Errorf("log.format must be one of: %v", logFormats))
	}

	return errors.Join(errs...)
}

// SlogLevel returns Log.Level as an slog.Level. Unknown values map to
// info; Validate rejects them before they get here.
func (c *Config) SlogLevel() slog.Level {
	switch c.Log.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
