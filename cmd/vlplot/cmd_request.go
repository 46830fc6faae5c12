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
	"path/filepath"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/jurgen-paul/altair-pandas/pkg/request"
)

var (
	requestOutput string
	requestWatch  bool
	requestEvery  string
)

var requestCmd = &cobra.Command{
	Use:   "request <file>",
	Short: "Build the chart described by a request file",
	Long: heredoc.Doc(`
		Build the chart described by a YAML or JSON request file. The file
		names the data source, the plotting function and its options, and
		optionally where to write the result. Relative source paths are
		resolved against the request file.

		Example request:

		  source:
		    path: sales.csv
		    index_col: month
		  kind: bar
		  options:
		    y: [north, south]
		    stacked: true
		  output:
		    path: sales.html
		    theme: light

		Run 'vlplot schema' to print the JSON Schema requests must follow.
	`),
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := request.LoadFile(args[0])
		if err != nil {
			return err
		}
		j := job{
			req:     req,
			reqFile: args[0],
			output:  requestOutput,
			watch:   requestWatch,
			every:   requestEvery,
			inputs:  []string{args[0]},
		}
		if req.Source.Path != "" {
			j.inputs = append(j.inputs, req.Source.Path)
		}
		if filepath.Ext(req.Output.Theme) != "" {
			j.inputs = append(j.inputs, req.Output.Theme)
		}
		return run(cmd.Context(), cmd.OutOrStdout(), cfg, j)
	},
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema for request files",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), string(request.Schema()))
		return err
	},
}

func init() {
	requestCmd.Flags().StringVarP(&requestOutput, "output", "o", "", "Write the chart here instead of the request's output path")
	requestCmd.Flags().BoolVarP(&requestWatch, "watch", "w", false, "Re-render whenever the request or its data changes")
	requestCmd.Flags().StringVar(&requestEvery, "every", "", `Re-render on a cron schedule, e.g. "@every 1m"`)

	rootCmd.AddCommand(requestCmd)
	rootCmd.AddCommand(schemaCmd)
}
