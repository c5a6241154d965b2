package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"punchclock/internal/store"
)

// Default values
const (
	DefaultBackend  = store.BackendJSON
	DefaultLogLevel = "warn"
)

// Config holds the application configuration. Values come from an optional
// YAML file and are overridden by environment variables.
type Config struct {
	SheetPath string `yaml:"sheet_path" env:"PUNCHCLOCK_SHEET"`
	Backend   string `yaml:"backend" env:"PUNCHCLOCK_BACKEND"`
	LogLevel  string `yaml:"log_level" env:"PUNCHCLOCK_LOG_LEVEL"`
}

// DefaultPath returns $PUNCHCLOCK_CONFIG, or config.yaml inside the user's
// config directory. It returns "" when neither can be determined.
func DefaultPath() string {
	if p := os.Getenv("PUNCHCLOCK_CONFIG"); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "punchclock", "config.yaml")
}

// Load reads the YAML file at path, if it exists, and applies environment
// overrides and defaults.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Backend == "" {
		cfg.Backend = DefaultBackend
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
}

func validate(cfg *Config) error {
	switch cfg.Backend {
	case store.BackendJSON, store.BackendSQLite:
	default:
		return fmt.Errorf("backend must be %q or %q, got %q", store.BackendJSON, store.BackendSQLite, cfg.Backend)
	}

	switch strings.ToLower(cfg.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log level %q", cfg.LogLevel)
	}

	return nil
}
