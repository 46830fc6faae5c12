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
	"strings"

	"github.com/MakeNowJust/heredoc"
	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"github.com/jurgen-paul/altair-pandas/pkg/request"
	"github.com/jurgen-paul/altair-pandas/pkg/source"
	"github.com/jurgen-paul/altair-pandas/pkg/visualization"
)

// plotFlags are the flags shared by the plotting commands.
type plotFlags struct {
	kind    string
	series  string
	query   string
	output  string
	options []string
	watch   bool
	every   string
}

func (f *plotFlags) register(cmd *cobra.Command, withKind bool) {
	if withKind {
		cmd.Flags().StringVarP(&f.kind, "kind", "k", visualization.DefaultKind,
			"Plot kind ("+strings.Join(allKinds(), ", ")+")")
	}
	cmd.Flags().StringVarP(&f.series, "series", "s", "", "Plot a single column as a series")
	cmd.Flags().StringVarP(&f.query, "query", "q", "", "SQL query to read instead of a file (uses --driver and --dsn)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "Write the chart to a file (.json, .yaml, .html, optionally .zst)")
	cmd.Flags().StringArrayVarP(&f.options, "opt", "O", nil, "Plot option as key=value, repeatable (value is YAML)")
	cmd.Flags().BoolVarP(&f.watch, "watch", "w", false, "Re-render whenever the input file changes")
	cmd.Flags().StringVar(&f.every, "every", "", `Re-render on a cron schedule, e.g. "@every 1m" (for --query sources)`)
}

// job builds the job for a plotting command.
func (f *plotFlags) job(function string, args []string) (job, error) {
	var path string
	if len(args) > 0 {
		path = args[0]
	}
	if (path == "") == (f.query == "") {
		return job{}, fmt.Errorf("give exactly one of an input file or --query")
	}

	if f.kind != "" {
		if err := checkKind(f.kind); err != nil {
			return job{}, err
		}
	}

	opts, err := parseOptions(f.options)
	if err != nil {
		return job{}, err
	}

	j := job{
		req: &request.Request{
			Source:   source.Spec{Path: path, Query: f.query},
			Function: function,
			Kind:     f.kind,
			Series:   f.series,
			Options:  opts,
		},
		output: f.output,
		watch:  f.watch,
		every:  f.every,
	}
	if path != "" {
		j.inputs = []string{path}
	}
	return j, nil
}

func allKinds() []string {
	seen := map[string]bool{}
	var kinds []string
	for _, shape := range []visualization.Shape{visualization.ShapeSeries, visualization.ShapeTable} {
		for _, k := range visualization.Kinds(shape) {
			if !seen[k] {
				seen[k] = true
				kinds = append(kinds, k)
			}
		}
	}
	return kinds
}

// checkKind rejects unknown plot kinds, suggesting close matches.
func checkKind(kind string) error {
	kinds := allKinds()
	for _, k := range kinds {
		if k == kind {
			return nil
		}
	}
	if matches := fuzzy.Find(kind, kinds); len(matches) > 0 {
		return fmt.Errorf("unknown plot kind %q (did you mean %q?)", kind, matches[0].Str)
	}
	return fmt.Errorf("unknown plot kind %q (available: %s)", kind, strings.Join(kinds, ", "))
}

// newPlotCommand creates a command that runs one plotting function.
func newPlotCommand(use, function, short, long string, withKind bool) *cobra.Command {
	flags := &plotFlags{}
	cmd := &cobra.Command{
		Use:   use + " [file]",
		Short: short,
		Long:  long,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := flags.job(function, args)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cmd.OutOrStdout(), cfg, j)
		},
	}
	flags.register(cmd, withKind)
	return cmd
}

var plotCmd = newPlotCommand("plot", request.FunctionPlot,
	"Plot a table or one of its columns",
	heredoc.Doc(`
		Plot a table, or one column of it with --series, as a chart of the
		given kind. Options follow the pandas plot keywords.

		Examples:
		  vlplot plot sales.csv --index-col month -k bar -O stacked=true
		  vlplot plot sales.csv -k line -O "y=[north, south]" -O subplots=true
		  vlplot plot prices.xlsx --series close -k kde -O bw_method=scott
		  vlplot plot -q "SELECT day, n FROM visits" --dsn visits.db --index-col day
	`), true)

var histFrameCmd = newPlotCommand("hist-frame", request.FunctionHistFrame,
	"Draw one histogram per numeric column",
	heredoc.Doc(`
		Draw a histogram of every numeric column, laid out as a grid.

		Examples:
		  vlplot hist-frame measurements.csv -O bins=20
		  vlplot hist-frame measurements.csv -O "column=[height, weight]" -O layout=[1,-1]
	`), false)

var histSeriesCmd = newPlotCommand("hist-series", request.FunctionHistSeries,
	"Draw the histogram of one column",
	heredoc.Doc(`
		Draw the histogram of the column named by --series.

		Example:
		  vlplot hist-series measurements.csv --series height -O bins=15
	`), false)

var boxplotCmd = newPlotCommand("boxplot", request.FunctionBoxplot,
	"Draw box plots, optionally grouped",
	heredoc.Doc(`
		Draw a box plot of the numeric columns, or one panel per column
		grouped by the "by" option.

		Examples:
		  vlplot boxplot scores.csv
		  vlplot boxplot scores.csv -O by=team -O "column=[q1, q2]"
	`), false)

var scatterMatrixCmd = newPlotCommand("scatter-matrix", request.FunctionScatterMatrix,
	"Draw the scatter matrix of the numeric columns",
	heredoc.Doc(`
		Draw every pair of numeric columns as a grid of scatter plots.

		Example:
		  vlplot scatter-matrix iris.csv -O alpha=0.5 -O color=species
	`), false)

func init() {
	_ = histSeriesCmd.MarkFlagRequired("series")

	rootCmd.AddCommand(plotCmd)
	rootCmd.AddCommand(histFrameCmd)
	rootCmd.AddCommand(histSeriesCmd)
	rootCmd.AddCommand(boxplotCmd)
	rootCmd.AddCommand(scatterMatrixCmd)
}
