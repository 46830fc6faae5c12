// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, DefaultConfigFileName+".yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(ConfigDirEnv, t.TempDir())

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.True(t, cfg.Plot.Interactive)
	assert.False(t, cfg.Plot.StrictIndex)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.True(t, cfg.Output.Pretty)
	assert.Equal(t, "monokai", cfg.Output.Style)
	assert.Equal(t, "sqlite", cfg.Source.Driver)
	assert.Equal(t, 200, cfg.Watch.DebounceMs)
	require.NoError(t, cfg.Validate())
}

func TestLoad_SearchPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(ConfigDirEnv, dir)
	writeConfig(t, dir, `
plot:
  interactive: false
output:
  format: yaml
source:
  index_col: date
`)

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.False(t, cfg.Plot.Interactive)
	assert.Equal(t, "yaml", cfg.Output.Format)
	assert.Equal(t, "date", cfg.Source.IndexCol)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "output:\n  format: yaml\nwatch:\n  debounce_ms: 50\n")
	t.Setenv("VLPLOT_OUTPUT_FORMAT", "html")
	t.Setenv("VLPLOT_PLOT_STRICT_INDEX", "true")

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, "html", cfg.Output.Format)
	assert.True(t, cfg.Plot.StrictIndex)
	assert.Equal(t, 50, cfg.Watch.DebounceMs)
}

func TestLoad_Errors(t *testing.T) {
	bad := writeConfig(t, t.TempDir(), "output: [unclosed\n")
	_, err := Load(viper.New(), bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		v := viper.New()
		SetDefaults(v)
		var cfg Config
		require.NoError(t, v.Unmarshal(&cfg))
		return &cfg
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"debug level", func(c *Config) { c.Logging.Level = "debug" }, ""},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }, "logging.level"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"bad output format", func(c *Config) { c.Output.Format = "png" }, "output.format"},
		{"highlight without style", func(c *Config) { c.Output.Highlight = true; c.Output.Style = "" }, "output.style"},
		{"compress and highlight", func(c *Config) { c.Output.Highlight = true; c.Output.Compress = true }, "mutually exclusive"},
		{"long delimiter", func(c *Config) { c.Source.Delimiter = ";;" }, "source.delimiter"},
		{"tab delimiter", func(c *Config) { c.Source.Delimiter = "\t" }, ""},
		{"bad driver", func(c *Config) { c.Source.Driver = "oracle" }, "source.driver"},
		{"negative debounce", func(c *Config) { c.Watch.DebounceMs = -1 }, "watch.debounce_ms"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGenerateExampleConfig(t *testing.T) {
	example := GenerateExampleConfig()
	assert.Contains(t, example, "logging:")
	assert.Contains(t, example, "output:")
	assert.Contains(t, example, "debounce_ms:")

	path := writeConfig(t, t.TempDir(), example)
	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
}
