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
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/jurgen-paul/altair-pandas/pkg/config"
	"github.com/jurgen-paul/altair-pandas/pkg/output"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage vlplot configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate example configuration file",
	Long:  `Generate an example vlplot.yaml configuration file in ~/.vlplot/ (or $VLPLOT_CONFIG_DIR).`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfigInit(cmd.OutOrStdout(), config.GetConfigDir(), configForce)
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  `Display the current configuration (merged from all sources).`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := yaml.Marshal(viper.AllSettings())
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		if used := viper.ConfigFileUsed(); used != "" {
			fmt.Fprintf(w, "# %s\n", used)
		}
		_, err = w.Write(data)
		return err
	},
}

var configThemesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List the built-in chart themes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range output.ThemeNames() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
	},
}

var configSetDSNCmd = &cobra.Command{
	Use:   "set-dsn <name>",
	Short: "Save a database DSN to the system keyring",
	Long: `Save a database DSN to the system keyring so that credentials stay
out of config and request files. Refer to it as "keyring:<name>" wherever
a DSN is expected.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		fmt.Fprintf(cmd.OutOrStdout(), "Enter DSN for %s (input hidden): ", name)
		secret, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(cmd.OutOrStdout())
		if err != nil {
			return fmt.Errorf("error reading input: %w", err)
		}
		if err := config.SaveDSN(name, string(secret)); err != nil {
			return fmt.Errorf("error saving to keyring: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved %s; use --dsn %s%s\n", name, config.KeyringPrefix, name)
		return nil
	},
}

var configDeleteDSNCmd = &cobra.Command{
	Use:   "delete-dsn <name>",
	Short: "Remove a database DSN from the system keyring",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.DeleteDSN(args[0]); err != nil {
			return fmt.Errorf("error deleting key: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
		return nil
	},
}

func runConfigInit(w io.Writer, dir string, force bool) error {
	path := filepath.Join(dir, config.DefaultConfigFileName+".yaml")

	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file already exists: %s (use --force to overwrite)", path)
	}
	if err := os.WriteFile(path, []byte(config.GenerateExampleConfig()), 0600); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}
	_, err := fmt.Fprintf(w, "Wrote %s\n", path)
	return err
}

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing config file")

	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configThemesCmd)
	configCmd.AddCommand(configSetDSNCmd)
	configCmd.AddCommand(configDeleteDSNCmd)
}
