// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	qerrors "quantkit/internal/errors"
	"quantkit/internal/logging"
)

// Config is the main library configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version" yaml:"version"`

	// Numbers contains number formatting defaults
	Numbers NumbersConfig `json:"numbers" yaml:"numbers"`

	// Units contains unit conversion settings
	Units UnitsConfig `json:"units" yaml:"units"`

	// Time contains timestamp settings
	Time TimeConfig `json:"time" yaml:"time"`

	// Reports contains catalog and zone listing settings
	Reports ReportsConfig `json:"reports" yaml:"reports"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging" yaml:"logging"`
}

// NumbersConfig contains number formatting defaults
type NumbersConfig struct {
	// ThousandsSeparator groups integer digits
	ThousandsSeparator string `json:"thousands_separator" yaml:"thousands_separator"`

	// DecimalSeparator separates the fractional part
	DecimalSeparator string `json:"decimal_separator" yaml:"decimal_separator"`

	// Prefix is prepended to every formatted number
	Prefix string `json:"prefix,omitempty" yaml:"prefix,omitempty"`

	// Suffix is appended to every formatted number
	Suffix string `json:"suffix,omitempty" yaml:"suffix,omitempty"`

	// Decimals is the default fractional digit count, -1 for the style default
	Decimals int `json:"decimals" yaml:"decimals"`

	// Locale is a BCP 47 tag; when set it decides both separators
	Locale string `json:"locale,omitempty" yaml:"locale,omitempty"`
}

// UnitsConfig contains unit conversion settings
type UnitsConfig struct {
	// CustomTables lists HCL files extending the built-in unit table
	CustomTables []string `json:"custom_tables,omitempty" yaml:"custom_tables,omitempty"`
}

// TimeConfig contains timestamp settings
type TimeConfig struct {
	// DefaultTimezone is the IANA zone used for projections
	DefaultTimezone string `json:"default_timezone" yaml:"default_timezone"`

	// ParseFormats are strftime formats tried in order; empty uses the built-in list
	ParseFormats []string `json:"parse_formats,omitempty" yaml:"parse_formats,omitempty"`
}

// ReportsConfig contains catalog and zone listing settings
type ReportsConfig struct {
	// Color enables ANSI styling in reports
	Color bool `json:"color" yaml:"color"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Numbers: NumbersConfig{
			ThousandsSeparator: ".",
			DecimalSeparator:   ",",
			Decimals:           -1,
		},
		Time: TimeConfig{
			DefaultTimezone: "UTC",
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file. JSON is assumed unless the file
// has a .yaml or .yml extension. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, qerrors.Config("failed to read config", err).WithContext("path", path)
	}

	config := Default()
	if isYAML(path) {
		err = yaml.Unmarshal(data, config)
	} else {
		err = json.Unmarshal(data, config)
	}
	if err != nil {
		return nil, qerrors.Config("failed to decode config", err).WithContext("path", path)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Validate checks values that would otherwise fail late
func (c *Config) Validate() error {
	n := c.Numbers
	if n.Locale == "" {
		if n.ThousandsSeparator != "" && n.ThousandsSeparator == n.DecimalSeparator {
			return qerrors.Config("thousands and decimal separators must differ", nil).
				WithContext("separator", n.ThousandsSeparator)
		}
	}
	if n.Decimals < -1 {
		return qerrors.Config("decimals must be -1 (auto) or non-negative", nil).
			WithContext("decimals", n.Decimals)
	}
	if c.Time.DefaultTimezone == "" {
		return qerrors.Config("default_timezone must not be empty", nil)
	}
	return nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
