// SPDX-License-Identifier: MIT

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matrixops/matrix"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "warn", cfg.LogConfig.Level)
	assert.False(t, cfg.LogConfig.Development)
	assert.Equal(t, FormatText, cfg.OutputConfig.Format)
	assert.Equal(t, matrix.DefaultWidth, cfg.OutputConfig.Width)
	assert.Equal(t, matrix.DefaultPrecision, cfg.OutputConfig.Precision)
}

func TestLoad_DefaultsMatchDefault(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("MATRIXOPS_LOG_LEVEL", "debug")
	t.Setenv("MATRIXOPS_LOG_DEV", "true")
	t.Setenv("MATRIXOPS_FORMAT", "json")
	t.Setenv("MATRIXOPS_WIDTH", "5")
	t.Setenv("MATRIXOPS_PRECISION", "1")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogConfig.Level)
	assert.True(t, cfg.LogConfig.Development)
	assert.Equal(t, FormatJSON, cfg.OutputConfig.Format)
	assert.Equal(t, 5, cfg.OutputConfig.Width)
	assert.Equal(t, 1, cfg.OutputConfig.Precision)

	lc := cfg.LoggerConfig()
	assert.True(t, lc.Development)
	assert.Equal(t, "debug", lc.Level)
}

func TestLoad_TypeError(t *testing.T) {
	t.Setenv("MATRIXOPS_WIDTH", "wide")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestLoad_ValidationError(t *testing.T) {
	t.Setenv("MATRIXOPS_FORMAT", "xml")

	_, err := Load()
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad level", func(c *Config) { c.LogConfig.Level = "loud" }},
		{"bad format", func(c *Config) { c.OutputConfig.Format = "csv" }},
		{"negative width", func(c *Config) { c.OutputConfig.Width = -1 }},
		{"negative precision", func(c *Config) { c.OutputConfig.Precision = -1 }},
		{"precision too high", func(c *Config) { c.OutputConfig.Precision = matrix.MaxPrecision + 1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestFormatOptions(t *testing.T) {
	cfg := Default()
	cfg.OutputConfig.Width = 5
	cfg.OutputConfig.Precision = 1

	id, err := matrix.NewIdentity(1)
	require.NoError(t, err)
	assert.Equal(t, "I (1x1):\n      1.0\n\n", matrix.Sprint("I", id, cfg.FormatOptions()...))
}
