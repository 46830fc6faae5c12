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
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/muesli/termenv"
	"go.uber.org/zap"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/jurgen-paul/altair-pandas/internal/log"
	"github.com/jurgen-paul/altair-pandas/pkg/config"
	"github.com/jurgen-paul/altair-pandas/pkg/output"
	"github.com/jurgen-paul/altair-pandas/pkg/request"
	"github.com/jurgen-paul/altair-pandas/pkg/source"
	"github.com/jurgen-paul/altair-pandas/pkg/visualization"
	"github.com/jurgen-paul/altair-pandas/pkg/watch"
)

// job is one chart to build and write.
type job struct {
	req *request.Request

	// reqFile, when set, is re-read before every render so that edits
	// to a watched request take effect.
	reqFile string

	// output overrides req.Output.Path. Empty writes to stdout.
	output string

	// watch re-renders whenever one of inputs changes.
	watch  bool
	inputs []string

	// every re-renders on a cron schedule.
	every string
}

// parseOptions turns key=value pairs into plot options. Values are
// YAML, so "bins=20" is an int and "y=[a, b]" a list.
func parseOptions(pairs []string) (visualization.Options, error) {
	opts := visualization.Options{}
	for _, pair := range pairs {
		key, raw, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid option %q (want key=value)", pair)
		}
		var v interface{}
		if err := yaml.Unmarshal([]byte(raw), &v); err != nil {
			return nil, fmt.Errorf("invalid value for option %s: %w", key, err)
		}
		opts[key] = v
	}
	return opts, nil
}

// applySourceDefaults fills the unset fields of spec from the
// configuration.
func applySourceDefaults(spec *source.Spec, c *config.Config) {
	if spec.Sheet == "" {
		spec.Sheet = c.Source.Sheet
	}
	if spec.Delimiter == "" {
		spec.Delimiter = c.Source.Delimiter
	}
	if spec.IndexCol == "" {
		spec.IndexCol = c.Source.IndexCol
	}
	if spec.Query != "" {
		if spec.Driver == "" {
			spec.Driver = c.Source.Driver
		}
		if spec.DSN == "" {
			spec.DSN = c.Source.DSN
		}
	}
}

// outputOptions resolves the write options. The request's format wins,
// then the extension of path, then the configuration.
func outputOptions(c *config.Config, out request.Output, path string) output.Options {
	opts := output.Options{
		Format:    output.Format(c.Output.Format),
		Pretty:    c.Output.Pretty,
		Highlight: c.Output.Highlight,
		Style:     c.Output.Style,
		Compress:  c.Output.Compress,
		Theme:     c.Output.Theme,
	}
	if f, ok := output.FormatFromPath(path); ok {
		opts.Format = f
	}
	if out.Format != "" {
		opts.Format = output.Format(out.Format)
	}
	if out.Theme != "" {
		opts.Theme = out.Theme
	}
	return opts
}

func newPlotter(c *config.Config) *visualization.Plotter {
	return visualization.NewPlotter(&visualization.PlotterConfig{
		Logger:      log.Logger(),
		StrictIndex: c.Plot.StrictIndex,
		Interactive: c.Plot.Interactive,
	})
}

// run builds and writes the job's chart, once or on every change.
func run(ctx context.Context, w io.Writer, c *config.Config, j job) error {
	p := newPlotter(c)

	render := func(ctx context.Context) error {
		return renderOnce(ctx, w, c, p, j)
	}
	if j.watch && j.every != "" {
		return fmt.Errorf("--watch and --every cannot be combined")
	}
	if j.every != "" {
		s, err := watch.NewSchedule(j.every, render, watch.Config{Logger: log.Logger()})
		if err != nil {
			return err
		}
		return s.Run(ctx)
	}
	if !j.watch {
		return render(ctx)
	}
	if len(j.inputs) == 0 {
		return fmt.Errorf("--watch needs an input file")
	}

	wt, err := watch.New(j.inputs, render, watch.Config{
		DebounceMs: c.Watch.DebounceMs,
		Logger:     log.Logger(),
	})
	if err != nil {
		return err
	}
	return wt.Run(ctx)
}

func renderOnce(ctx context.Context, w io.Writer, c *config.Config, p *visualization.Plotter, j job) error {
	if j.reqFile != "" && (j.watch || j.every != "") {
		req, err := request.LoadFile(j.reqFile)
		if err != nil {
			return err
		}
		j.req = req
	}
	// Defaults and secrets go into a copy so that a keyring reference is
	// looked up again on every render.
	req := *j.req
	applySourceDefaults(&req.Source, c)
	dsn, err := config.ResolveDSN(req.Source.DSN)
	if err != nil {
		return err
	}
	req.Source.DSN = dsn

	chart, err := req.Build(ctx, p)
	if err != nil {
		return err
	}

	path := j.output
	if path == "" {
		path = req.Output.Path
	}
	opts := outputOptions(c, req.Output, path)
	opts.Title = chartTitle(&req)

	if path != "" {
		if err := output.WriteFile(path, chart, opts); err != nil {
			return err
		}
		log.Info("Wrote chart",
			zap.String("path", path),
			zap.String("format", string(opts.Format)),
			zap.Int("warnings", len(chart.Warnings)))
		return nil
	}

	if opts.Highlight {
		opts.Formatter = terminalFormatter(w)
		opts.Highlight = opts.Formatter != ""
	}
	if err := output.Write(w, chart, opts); err != nil {
		return err
	}
	if !opts.Compress {
		_, err = fmt.Fprintln(w)
	}
	return err
}

func chartTitle(req *request.Request) string {
	name := "query"
	if req.Source.Path != "" {
		name = filepath.Base(req.Source.Path)
	}
	what := req.Function
	if req.Kind != "" {
		what = req.Kind
	}
	if what == "" {
		return name
	}
	return fmt.Sprintf("%s (%s)", name, what)
}

// terminalFormatter picks the chroma formatter matching the color
// support of w. It returns "" when w is not a color terminal.
func terminalFormatter(w io.Writer) string {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return ""
	}
	switch termenv.NewOutput(f).EnvColorProfile() {
	case termenv.TrueColor:
		return "terminal16m"
	case termenv.ANSI256:
		return "terminal256"
	case termenv.ANSI:
		return "terminal16"
	}
	return ""
}
