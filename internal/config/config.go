// Package config loads the vecmath CLI configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/viant/vecmath/internal/logger"
	"github.com/viant/vecmath/vector"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up when --config is not given.
const DefaultPath = "vecmath.yaml"

// Config is the top-level configuration.
type Config struct {
	// Format is the vector text form: debug or simplified.
	Format string `yaml:"format"`

	// Kind is the element kind used for parsing and storage (e.g. float64).
	Kind string `yaml:"kind"`

	// Database is the SQLite file used by the store and nearest commands.
	// Environment variables and a leading ~ are expanded.
	Database string `yaml:"database"`

	Log LogConfig `yaml:"log"`
}

// LogConfig configures structured logging.
type LogConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Format:   vector.Debug.String(),
		Kind:     vector.KindFloat64.String(),
		Database: "vecmath.sqlite",
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.expand()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes c to path as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("config: create %s: %w", dir, err)
		}
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate checks every enumerated field.
func (c *Config) Validate() error {
	if _, err := vector.ParseMode(c.Format); err != nil {
		return fmt.Errorf("config: format: %w", err)
	}
	if _, err := vector.ParseKind(c.Kind); err != nil {
		return fmt.Errorf("config: kind: %w", err)
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}
	if strings.TrimSpace(c.Database) == "" {
		return errors.New("config: database must be set")
	}
	return nil
}

// Mode returns the parsed format mode. Call after Validate.
func (c *Config) Mode() vector.Mode {
	m, _ := vector.ParseMode(c.Format)
	return m
}

// ElementKind returns the parsed element kind. Call after Validate.
func (c *Config) ElementKind() vector.Kind {
	k, _ := vector.ParseKind(c.Kind)
	return k
}

// Level returns the parsed log level. Call after Validate.
func (c *Config) Level() slog.Level {
	l, _ := logger.ParseLevel(c.Log.Level)
	return l
}

func (c *Config) expand() {
	c.Database = os.ExpandEnv(c.Database)
	if strings.HasPrefix(c.Database, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			c.Database = filepath.Join(home, c.Database[2:])
		}
	}
}
