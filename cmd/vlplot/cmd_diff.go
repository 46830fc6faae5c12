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
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/jurgen-paul/altair-pandas/pkg/specdiff"
)

// errChartsDiffer makes the command exit non-zero without printing a
// second message after the diff.
var errChartsDiffer = errors.New("charts differ")

type diffFlags struct {
	ignoreData bool
	threshold  float64
	update     bool
}

var diffOpts diffFlags

var diffCmd = &cobra.Command{
	Use:   "diff <golden> <actual>",
	Short: "Compare two chart documents",
	Long: heredoc.Doc(`
		Compare two chart documents, ignoring key order and formatting.
		Either side may be JSON or YAML and may be zstd-compressed.

		Exits with status 1 when the charts differ. With --update the
		golden file is overwritten by the actual one instead.

		Examples:
		  vlplot diff testdata/sales.golden.json out/sales.json
		  vlplot diff --ignore-data before.yaml after.yaml
	`),
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDiff(cmd.OutOrStdout(), args[0], args[1], diffOpts)
	},
}

func runDiff(w io.Writer, golden, actual string, flags diffFlags) error {
	if flags.update {
		data, err := os.ReadFile(actual)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", actual, err)
		}
		if err := specdiff.UpdateGolden(golden, data); err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "Updated %s\n", golden)
		return err
	}

	result, err := specdiff.CompareFiles(golden, actual, specdiff.Options{
		IgnoreData: flags.ignoreData,
		Threshold:  flags.threshold,
	})
	if err != nil {
		return err
	}
	if result.Diff != "" {
		fmt.Fprint(w, result.Diff)
	}
	fmt.Fprintf(w, "similarity: %.3f\n", result.Similarity)
	if !result.Matched {
		return errChartsDiffer
	}
	return nil
}

func init() {
	diffCmd.Flags().BoolVar(&diffOpts.ignoreData, "ignore-data", false, "Compare chart structure only, not dataset rows")
	diffCmd.Flags().Float64Var(&diffOpts.threshold, "threshold", 0, "Similarity (0-1) at which charts match; 0 requires identical charts")
	diffCmd.Flags().BoolVar(&diffOpts.update, "update", false, "Overwrite the golden file with the actual file")

	rootCmd.AddCommand(diffCmd)
}
