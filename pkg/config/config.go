// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

// Package config loads the vlplot configuration.
// Priority: CLI flags > config file > env vars > defaults
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

const (
	// DefaultConfigFileName is the name of the config file, without
	// extension.
	DefaultConfigFileName = "vlplot"

	// EnvPrefix prefixes every environment variable, e.g.
	// VLPLOT_OUTPUT_FORMAT.
	EnvPrefix = "VLPLOT"
)

// Config holds all configuration for vlplot.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Plot    PlotConfig    `mapstructure:"plot"`
	Output  OutputConfig  `mapstructure:"output"`
	Source  SourceConfig  `mapstructure:"source"`
	Watch   WatchConfig   `mapstructure:"watch"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // text, json
}

// PlotConfig holds the plotter defaults.
type PlotConfig struct {
	// Interactive binds chart scales to pan and zoom.
	Interactive bool `mapstructure:"interactive"`

	// StrictIndex rejects composite indices instead of flattening them.
	StrictIndex bool `mapstructure:"strict_index"`
}

// OutputConfig controls how chart documents are written.
type OutputConfig struct {
	Format    string `mapstructure:"format"`    // json, yaml, html
	Pretty    bool   `mapstructure:"pretty"`    // indent JSON
	Highlight bool   `mapstructure:"highlight"` // syntax-highlight terminal output
	Style     string `mapstructure:"style"`     // highlighting style
	Compress  bool   `mapstructure:"compress"`  // zstd-compress the document
	Theme     string `mapstructure:"theme"`     // chart theme: built-in name or .yaml theme file
}

// SourceConfig holds the defaults for reading input data.
type SourceConfig struct {
	Sheet     string `mapstructure:"sheet"`     // xlsx sheet; first sheet when empty
	Delimiter string `mapstructure:"delimiter"` // csv field delimiter; by extension when empty
	IndexCol  string `mapstructure:"index_col"` // column moved into the index
	Driver    string `mapstructure:"driver"`    // sql driver: sqlite, postgres, mysql
	DSN       string `mapstructure:"dsn"`       // sql data source name
}

// WatchConfig holds watch mode configuration.
type WatchConfig struct {
	DebounceMs int `mapstructure:"debounce_ms"`
}

// LoadConfig loads configuration into the global viper instance, which
// also carries the bound CLI flags.
func LoadConfig(cfgFile string) (*Config, error) {
	return Load(viper.GetViper(), cfgFile)
}

// Load loads configuration into v. An empty cfgFile searches the
// standard locations; a missing file is not an error.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(GetConfigDir())
		v.AddConfigPath(".")
		v.SetConfigName(DefaultConfigFileName)
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &config, nil
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")

	v.SetDefault("plot.interactive", true)
	v.SetDefault("plot.strict_index", false)

	v.SetDefault("output.format", "json")
	v.SetDefault("output.pretty", true)
	v.SetDefault("output.highlight", false)
	v.SetDefault("output.style", "monokai")
	v.SetDefault("output.compress", false)
	v.SetDefault("output.theme", "")

	v.SetDefault("source.sheet", "")
	v.SetDefault("source.delimiter", "")
	v.SetDefault("source.index_col", "")
	v.SetDefault("source.driver", "sqlite")
	v.SetDefault("source.dsn", "")

	v.SetDefault("watch.debounce_ms", 200)
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("invalid logging.level %q: %w", c.Logging.Level, err)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid logging.format %q (must be text or json)", c.Logging.Format)
	}

	switch c.Output.Format {
	case "json", "yaml", "html":
	default:
		return fmt.Errorf("invalid output.format %q (must be json, yaml or html)", c.Output.Format)
	}
	if c.Output.Highlight && c.Output.Style == "" {
		return fmt.Errorf("output.style is required when output.highlight is set")
	}
	if c.Output.Compress && c.Output.Highlight {
		return fmt.Errorf("output.compress and output.highlight are mutually exclusive")
	}

	if n := len([]rune(c.Source.Delimiter)); n > 1 {
		return fmt.Errorf("invalid source.delimiter %q (must be a single character)", c.Source.Delimiter)
	}
	switch c.Source.Driver {
	case "", "sqlite", "postgres", "mysql":
	default:
		return fmt.Errorf("invalid source.driver %q (must be sqlite, postgres or mysql)", c.Source.Driver)
	}

	if c.Watch.DebounceMs < 0 {
		return fmt.Errorf("invalid watch.debounce_ms: %d (must be >= 0)", c.Watch.DebounceMs)
	}
	return nil
}

// GenerateExampleConfig returns an example configuration file.
func GenerateExampleConfig() string {
	return `# vlplot configuration
# Priority: CLI flags > config file > environment variables (VLPLOT_*) > defaults

logging:
  level: info        # debug, info, warn, error
  format: text       # text, json

plot:
  interactive: true  # bind chart scales to pan and zoom
  strict_index: false

output:
  format: json       # json, yaml, html
  pretty: true
  highlight: false   # colorize terminal output
  style: monokai
  compress: false    # zstd-compress the written document
  # theme: dark      # dark, light, teradata, minimal, or a .yaml theme file

source:
  # sheet: Sheet1    # xlsx sheet name
  # delimiter: ","   # csv delimiter; inferred from the extension when unset
  # index_col: date
  driver: sqlite     # sqlite, postgres, mysql
  # dsn: file:data.db
  # dsn: keyring:warehouse   # stored with: vlplot config set-dsn warehouse

watch:
  debounce_ms: 200
`
}
