// Copyright 2026 Teradata
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/jurgen-paul/altair-pandas/internal/log"
	"github.com/jurgen-paul/altair-pandas/internal/version"
	"github.com/jurgen-paul/altair-pandas/pkg/config"
	"github.com/jurgen-paul/altair-pandas/pkg/output"
)

var (
	cfgFile string
	cfg     *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "vlplot",
	Short: "Plot tabular data as Vega-Lite charts",
	Long: heredoc.Doc(`
		vlplot reads a table from CSV, TSV, JSON, Excel or a SQL query and
		writes a Vega-Lite v5 chart specification, using the plotting
		conventions of the pandas plot API.

		The chart is written to stdout as JSON unless --output or --format
		say otherwise.
	`),
	Version:       version.Get(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command until it finishes or the process is
// interrupted.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	log.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $VLPLOT_CONFIG_DIR/vlplot.yaml)")

	// Logging flags
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format (text, json)")

	// Plot flags
	rootCmd.PersistentFlags().Bool("interactive", true, "Bind chart scales to pan and zoom")
	rootCmd.PersistentFlags().Bool("strict-index", false, "Reject composite indices instead of flattening them")

	// Output flags
	rootCmd.PersistentFlags().StringP("format", "f", "json", "Output format (json, yaml, html)")
	rootCmd.PersistentFlags().Bool("pretty", true, "Indent JSON output")
	rootCmd.PersistentFlags().Bool("highlight", false, "Syntax-highlight terminal output")
	rootCmd.PersistentFlags().String("style", "monokai", "Highlighting style")
	rootCmd.PersistentFlags().Bool("compress", false, "zstd-compress the output")
	rootCmd.PersistentFlags().String("theme", "", "Chart theme (dark, light, teradata, minimal)")

	// Source flags
	rootCmd.PersistentFlags().String("sheet", "", "Excel sheet to read (default: first sheet)")
	rootCmd.PersistentFlags().String("delimiter", "", "CSV field delimiter (default: by file extension)")
	rootCmd.PersistentFlags().String("index-col", "", "Column to use as the row index")
	rootCmd.PersistentFlags().String("driver", "sqlite", "SQL driver (sqlite, postgres, mysql)")
	rootCmd.PersistentFlags().String("dsn", "", "SQL data source name")

	// Watch flags
	rootCmd.PersistentFlags().Int("debounce", 200, "Watch mode quiet period in milliseconds")

	// Bind flags to viper
	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format"))

	_ = viper.BindPFlag("plot.interactive", rootCmd.PersistentFlags().Lookup("interactive"))
	_ = viper.BindPFlag("plot.strict_index", rootCmd.PersistentFlags().Lookup("strict-index"))

	_ = viper.BindPFlag("output.format", rootCmd.PersistentFlags().Lookup("format"))
	_ = viper.BindPFlag("output.pretty", rootCmd.PersistentFlags().Lookup("pretty"))
	_ = viper.BindPFlag("output.highlight", rootCmd.PersistentFlags().Lookup("highlight"))
	_ = viper.BindPFlag("output.style", rootCmd.PersistentFlags().Lookup("style"))
	_ = viper.BindPFlag("output.compress", rootCmd.PersistentFlags().Lookup("compress"))
	_ = viper.BindPFlag("output.theme", rootCmd.PersistentFlags().Lookup("theme"))

	_ = viper.BindPFlag("source.sheet", rootCmd.PersistentFlags().Lookup("sheet"))
	_ = viper.BindPFlag("source.delimiter", rootCmd.PersistentFlags().Lookup("delimiter"))
	_ = viper.BindPFlag("source.index_col", rootCmd.PersistentFlags().Lookup("index-col"))
	_ = viper.BindPFlag("source.driver", rootCmd.PersistentFlags().Lookup("driver"))
	_ = viper.BindPFlag("source.dsn", rootCmd.PersistentFlags().Lookup("dsn"))

	_ = viper.BindPFlag("watch.debounce_ms", rootCmd.PersistentFlags().Lookup("debounce"))
}

// initConfig reads in config file and ENV variables if set, then
// installs the configured logger.
func initConfig() {
	var err error
	cfg, err = config.LoadConfig(cfgFile)
	if err == nil {
		err = validateConfig(cfg)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger, err := log.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	log.SetLogger(logger)
	log.Debug("Configuration loaded", zap.String("file", viper.ConfigFileUsed()))
}

// validateConfig adds the checks that need the output package to
// Config.Validate.
func validateConfig(c *config.Config) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Output.Theme != "" {
		if _, err := output.ResolveTheme(c.Output.Theme); err != nil {
			return fmt.Errorf("invalid output.theme: %w", err)
		}
	}
	if c.Output.Highlight && !output.HasStyle(c.Output.Style) {
		return fmt.Errorf("invalid output.style %q", c.Output.Style)
	}
	return nil
}
