// Package config loads the cert CLI configuration from the environment.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/kelseyhightower/envconfig"

	"github.com/alexshd/cert"
)

// ValidFormats lists the accepted output formats.
var ValidFormats = []string{"text", "json", "yaml", "toml"}

// Config holds the CLI configuration. Command-line flags override these values.
type Config struct {
	Output  OutputConfig
	Logging LogConfig
}

// OutputConfig controls how results are rendered.
type OutputConfig struct {
	Format    string `envconfig:"CERT_FORMAT" default:"text"`
	Precision int    `envconfig:"CERT_PRECISION" default:"2"`
	Locale    string `envconfig:"CERT_LOCALE" default:""`
	Relative  bool   `envconfig:"CERT_RELATIVE" default:"false"`
}

// LogConfig controls diagnostic logging on stderr.
type LogConfig struct {
	Level string `envconfig:"CERT_LOG_LEVEL" default:"warn"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Format:    "text",
			Precision: 2,
		},
		Logging: LogConfig{
			Level: "warn",
		},
	}
}

// Validate checks the output format, precision and log level.
func (c *Config) Validate() error {
	if !isValidFormat(c.Output.Format) {
		return fmt.Errorf("invalid format %q: must be one of %v", c.Output.Format, ValidFormats)
	}
	if err := c.FormatConfig().Validate(); err != nil {
		return err
	}
	if _, err := ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	return nil
}

// FormatConfig returns the library rendering settings for this configuration.
func (c *Config) FormatConfig() cert.FormatConfig {
	fc := cert.DefaultFormatConfig()
	fc.Precision = c.Output.Precision
	return fc
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(level string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return l, nil
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
