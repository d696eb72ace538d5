// Package config handles storelist configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/matsen/storelist/internal/storage"
)

// Config represents configuration stored in .storelist.yml in the working directory.
type Config struct {
	DataPath  string    `yaml:"data_path,omitempty"` // Relative to the working directory unless absolute
	Format    string    `yaml:"format,omitempty"`    // jsonl or sqlite
	LogLevel  string    `yaml:"log_level,omitempty"` // debug, info, warn, error
	AutoStore AutoStore `yaml:"auto_store,omitempty"`
}

// AutoStore is the record appended in automatic mode.
type AutoStore struct {
	Name           string `yaml:"name,omitempty"`
	Address        string `yaml:"address,omitempty"`
	Specialization string `yaml:"specialization,omitempty"`
	WorkingHours   string `yaml:"working_hours,omitempty"`
}

const (
	ConfigFile = ".storelist.yml"

	DefaultJSONLFile  = "stores.jsonl"
	DefaultSQLiteFile = "stores.db"
	DefaultLogLevel   = "info"
)

// ValidFormats lists the supported storage formats.
var ValidFormats = []string{storage.FormatJSONL, storage.FormatSQLite}

// ValidLogLevels lists the supported log levels.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// DefaultAutoStore is the automatic-mode record when none is configured.
var DefaultAutoStore = AutoStore{
	Name:           "AutoStore",
	Address:        "AutoAddress",
	Specialization: "AutoSpecialization",
	WorkingHours:   "24/7",
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// ConfigPath returns the path to .storelist.yml from a directory.
func ConfigPath(dir string) string {
	return filepath.Join(dir, ConfigFile)
}

// Load reads configuration from dir. A missing file yields Default().
// Keys absent from the file take their default values.
func Load(dir string) (*Config, error) {
	data, err := os.ReadFile(ConfigPath(dir))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the format and log level values.
func (c *Config) Validate() error {
	if err := ValidateFormat(c.Format); err != nil {
		return err
	}
	return ValidateLogLevel(c.LogLevel)
}

// ValidateFormat checks that the storage format is supported.
func ValidateFormat(format string) error {
	if slices.Contains(ValidFormats, format) {
		return nil
	}
	return fmt.Errorf("invalid format: %s (valid: %v)", format, ValidFormats)
}

// ValidateLogLevel checks that the log level is supported.
func ValidateLogLevel(level string) error {
	if slices.Contains(ValidLogLevels, level) {
		return nil
	}
	return fmt.Errorf("invalid log_level: %s (valid: %v)", level, ValidLogLevels)
}

// DataFile resolves the data path against dir.
func (c *Config) DataFile(dir string) string {
	if filepath.IsAbs(c.DataPath) {
		return c.DataPath
	}
	return filepath.Join(dir, c.DataPath)
}

func (c *Config) applyDefaults() {
	if c.Format == "" {
		c.Format = storage.FormatJSONL
	}
	if c.DataPath == "" {
		if c.Format == storage.FormatSQLite {
			c.DataPath = DefaultSQLiteFile
		} else {
			c.DataPath = DefaultJSONLFile
		}
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}

	a := &c.AutoStore
	if a.Name == "" {
		a.Name = DefaultAutoStore.Name
	}
	if a.Address == "" {
		a.Address = DefaultAutoStore.Address
	}
	if a.Specialization == "" {
		a.Specialization = DefaultAutoStore.Specialization
	}
	if a.WorkingHours == "" {
		a.WorkingHours = DefaultAutoStore.WorkingHours
	}
}
