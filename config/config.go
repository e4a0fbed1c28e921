// SPDX-License-Identifier: MIT

// Package config loads matrixops settings from MATRIXOPS_* environment
// variables. Command-line flags override whatever is loaded here.
package config

import (
	"errors"
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/katalvlaran/matrixops/logging"
	"github.com/katalvlaran/matrixops/matrix"
)

// Prefix is the environment prefix for every setting.
const Prefix = "MATRIXOPS"

// Output formats accepted by the CLI.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds all application configuration. The sections are embedded
// so their variables keep the bare prefix (MATRIXOPS_WIDTH, not
// MATRIXOPS_OUTPUT_WIDTH).
type Config struct {
	LogConfig
	OutputConfig
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"warn"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// OutputConfig holds matrix rendering configuration.
type OutputConfig struct {
	Format    string `envconfig:"FORMAT" default:"text"`
	Width     int    `envconfig:"WIDTH" default:"8"`
	Precision int    `envconfig:"PRECISION" default:"3"`
}

// Load loads configuration from environment variables and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		LogConfig: LogConfig{
			Level:       "warn",
			Development: false,
		},
		OutputConfig: OutputConfig{
			Format:    FormatText,
			Width:     matrix.DefaultWidth,
			Precision: matrix.DefaultPrecision,
		},
	}
}

// Validate checks values envconfig cannot check by type alone.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogConfig.Level); err != nil {
		return fmt.Errorf("%w: LOG_LEVEL: %v", ErrInvalidConfig, err)
	}
	switch c.OutputConfig.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("%w: FORMAT %q: must be %q or %q", ErrInvalidConfig, c.OutputConfig.Format, FormatText, FormatJSON)
	}
	if c.OutputConfig.Width < 0 {
		return fmt.Errorf("%w: WIDTH %d: must be >= 0", ErrInvalidConfig, c.OutputConfig.Width)
	}
	if c.OutputConfig.Precision < 0 || c.OutputConfig.Precision > matrix.MaxPrecision {
		return fmt.Errorf("%w: PRECISION %d: must be in [0,%d]", ErrInvalidConfig, c.OutputConfig.Precision, matrix.MaxPrecision)
	}

	return nil
}

// LoggerConfig maps the log settings onto a logging.Config.
func (c *Config) LoggerConfig() logging.Config {
	base := logging.DefaultConfig()
	if c.LogConfig.Development {
		base = logging.DevelopmentConfig()
	}
	base.Level = c.LogConfig.Level

	return base
}

// FormatOptions maps the output settings onto matrix.Format options.
// The values must be valid; the options panic otherwise.
func (o OutputConfig) FormatOptions() []matrix.FormatOption {
	return []matrix.FormatOption{
		matrix.WithWidth(o.Width),
		matrix.WithPrecision(o.Precision),
	}
}
