// Package config loads application settings from defaults, an optional
// YAML file and HAPPYMATH_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application settings.
type Config struct {
	// DBPath is the SQLite file. Empty means store.DefaultDBPath.
	DBPath string `yaml:"db_path"`

	// Ephemeral keeps all state in memory for this run.
	Ephemeral bool `yaml:"ephemeral"`

	// Language overrides the persisted UI language when set
	// (e.g. "English", "zh", "vi").
	Language string `yaml:"language"`

	// FeedbackDelay is how long a graded answer stays on screen.
	FeedbackDelay time.Duration `yaml:"feedback_delay"`

	// Seed makes problem generation reproducible. Zero picks a random seed.
	Seed uint64 `yaml:"seed"`

	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig represents logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() *Config {
	return &Config{
		FeedbackDelay: time.Second,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load builds the configuration. An explicit path must exist; the default
// location is optional.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
		// No config file is fine.
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// DefaultPath resolves the config file location:
// 1. HAPPYMATH_CONFIG environment variable
// 2. $XDG_CONFIG_HOME/happymath/config.yaml
// 3. ~/.config/happymath/config.yaml
func DefaultPath() string {
	if p := os.Getenv("HAPPYMATH_CONFIG"); p != "" {
		return p
	}
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "config.yaml"
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "happymath", "config.yaml")
}

// ApplyEnv overrides settings with HAPPYMATH_* environment variables.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("HAPPYMATH_DB"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv("HAPPYMATH_EPHEMERAL"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("HAPPYMATH_EPHEMERAL: %w", err)
		}
		c.Ephemeral = b
	}
	if v := os.Getenv("HAPPYMATH_LANG"); v != "" {
		c.Language = v
	}
	if v := os.Getenv("HAPPYMATH_FEEDBACK_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("HAPPYMATH_FEEDBACK_DELAY: %w", err)
		}
		c.FeedbackDelay = d
	}
	if v := os.Getenv("HAPPYMATH_SEED"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("HAPPYMATH_SEED: %w", err)
		}
		c.Seed = n
	}
	if v := os.Getenv("HAPPYMATH_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("HAPPYMATH_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv("HAPPYMATH_LOG_FILE"); v != "" {
		c.Logging.File = v
	}
	return nil
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.FeedbackDelay < 0 {
		return fmt.Errorf("feedback_delay must not be negative")
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown logging.level %q", c.Logging.Level)
	}
	return nil
}
