// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

// Package visualization turns series and tables into Vega-Lite chart
// specifications following the pandas plotting API: Plot with a kind
// such as "line", "bar", "hist" or "kde", plus the standalone Hist,
// HistFrame, HistSeries, Boxplot and ScatterMatrix helpers.
//
// Every call works on its own copy of the input and returns a fresh
// chart, so a Plotter may be shared between goroutines.
package visualization

import (
	"fmt"
	"sort"

	"github.com/aclements/go-gg/table"
	"go.uber.org/zap"

	"github.com/jurgen-paul/altair-pandas/pkg/frame"
	"github.com/jurgen-paul/altair-pandas/pkg/vegalite"
)

// Shape is the shape of plot input.
type Shape string

const (
	ShapeSeries Shape = "Series"
	ShapeTable  Shape = "Table"
)

// DefaultKind is the plot kind used when none is given.
const DefaultKind = "line"

type builderFunc func(c *call) (*vegalite.Chart, error)

// capabilities lists the plot kinds implemented for each input shape.
var capabilities = map[Shape]map[string]builderFunc{
	ShapeSeries: {
		"line":    seriesXY("line"),
		"bar":     seriesXY("bar"),
		"barh":    seriesXY("barh"),
		"area":    seriesXY("area"),
		"scatter": seriesScatter,
		"hist":    seriesHist,
		"box":     buildBox(false),
		"kde":     buildKDE,
		"density": buildKDE,
	},
	ShapeTable: {
		"line":    tableXY("line"),
		"bar":     tableXY("bar"),
		"barh":    tableXY("barh"),
		"area":    tableXY("area"),
		"scatter": tableScatter,
		"hist":    tableHist,
		"box":     buildBox(false),
		"kde":     buildKDE,
		"density": buildKDE,
		"hexbin":  buildHexbin,
	},
}

// Kinds returns the plot kinds implemented for shape, sorted.
func Kinds(shape Shape) []string {
	var out []string
	for kind := range capabilities[shape] {
		out = append(out, kind)
	}
	sort.Strings(out)
	return out
}

// PlotterConfig configures a Plotter.
type PlotterConfig struct {
	// Logger receives warnings and debug output. nil discards them.
	Logger *zap.Logger

	// StrictIndex rejects composite indices and column labels with
	// ErrUnsupportedDataShape instead of flattening them.
	StrictIndex bool

	// Interactive binds the chart scales to pan and zoom where the plot
	// kind supports it.
	Interactive bool
}

// DefaultPlotterConfig returns the default configuration.
func DefaultPlotterConfig() *PlotterConfig {
	return &PlotterConfig{Interactive: true}
}

// Plotter builds chart specifications.
type Plotter struct {
	Logger      *zap.Logger
	StrictIndex bool
	Interactive bool
}

// NewPlotter creates a plotter. A nil cfg uses DefaultPlotterConfig.
func NewPlotter(cfg *PlotterConfig) *Plotter {
	if cfg == nil {
		cfg = DefaultPlotterConfig()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Plotter{
		Logger:      logger,
		StrictIndex: cfg.StrictIndex,
		Interactive: cfg.Interactive,
	}
}

// Plot builds a chart of the given kind. data is a *frame.Series, a
// *frame.Frame (or either by value) or a go-gg *table.Table.
func (p *Plotter) Plot(data interface{}, kind string, opts Options) (*vegalite.Chart, error) {
	if kind == "" {
		kind = DefaultKind
	}
	in, err := resolveInput(data)
	if err != nil {
		return nil, err
	}
	build, ok := capabilities[in.shape][kind]
	if !ok {
		return nil, &OperationError{Kind: kind, Shape: in.shape}
	}
	return p.run(kind, in, opts, build)
}

// Hist builds a histogram of a series or of every column of a table.
func (p *Plotter) Hist(data interface{}, opts Options) (*vegalite.Chart, error) {
	return p.Plot(data, "hist", opts)
}

// HistFrame builds one histogram panel per numeric column of a table,
// as a single repeated chart.
func (p *Plotter) HistFrame(data interface{}, opts Options) (*vegalite.Chart, error) {
	in, err := resolveInput(data)
	if err != nil {
		return nil, err
	}
	if in.shape != ShapeTable {
		return nil, &OperationError{Kind: "hist_frame", Shape: in.shape}
	}
	return p.run("hist_frame", in, opts, histFrame)
}

// HistSeries builds the histogram of a series.
func (p *Plotter) HistSeries(data interface{}, opts Options) (*vegalite.Chart, error) {
	in, err := resolveInput(data)
	if err != nil {
		return nil, err
	}
	if in.shape != ShapeSeries {
		return nil, &OperationError{Kind: "hist_series", Shape: in.shape}
	}
	return p.run("hist_series", in, opts, seriesHist)
}

// Boxplot builds a box plot with the axis defaults of the pandas
// boxplot function (rot=0, grid=True) and optional grouping by columns.
func (p *Plotter) Boxplot(data interface{}, opts Options) (*vegalite.Chart, error) {
	in, err := resolveInput(data)
	if err != nil {
		return nil, err
	}
	return p.run("boxplot", in, opts, buildBox(true))
}

// ScatterMatrix builds the all-pairs scatter grid of the numeric columns
// of a table.
func (p *Plotter) ScatterMatrix(data interface{}, opts Options) (*vegalite.Chart, error) {
	in, err := resolveInput(data)
	if err != nil {
		return nil, err
	}
	if in.shape != ShapeTable {
		return nil, &OperationError{Kind: "scatter_matrix", Shape: in.shape}
	}
	return p.run("scatter_matrix", in, opts, scatterMatrix)
}

func (p *Plotter) run(kind string, in *input, opts Options, build builderFunc) (*vegalite.Chart, error) {
	if opts == nil {
		opts = Options{}
	}
	logger := p.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &call{
		p:    p,
		kind: kind,
		in:   in,
		opts: opts,
		log:  logger.With(zap.String("kind", kind), zap.String("shape", string(in.shape))),
	}
	chart, err := build(c)
	if err != nil {
		return nil, err
	}
	chart.Warnings = append(chart.Warnings, c.warnings...)
	c.log.Debug("built chart", zap.Int("warnings", len(chart.Warnings)))
	return chart, nil
}

type input struct {
	shape  Shape
	series *frame.Series
	frame  *frame.Frame
}

func resolveInput(data interface{}) (*input, error) {
	switch d := data.(type) {
	case *frame.Series:
		if d != nil {
			return &input{shape: ShapeSeries, series: d}, nil
		}
	case frame.Series:
		return &input{shape: ShapeSeries, series: &d}, nil
	case *frame.Frame:
		if d != nil {
			return &input{shape: ShapeTable, frame: d}, nil
		}
	case frame.Frame:
		return &input{shape: ShapeTable, frame: &d}, nil
	case *table.Table:
		if d != nil {
			return &input{shape: ShapeTable, frame: frame.FromTable(d)}, nil
		}
	}
	return nil, fmt.Errorf("%w: data of type %T", ErrUnsupportedType, data)
}

// call is the state of one plot call.
type call struct {
	p        *Plotter
	kind     string
	in       *input
	opts     Options
	log      *zap.Logger
	warnings []string
}

func (c *call) warn(msg string, fields ...zap.Field) {
	c.log.Warn(msg, fields...)
	c.warnings = append(c.warnings, msg)
}

// data returns the working table for the call's input.
func (c *call) data(materializeIndex bool, usecols []interface{}) (*table.Table, error) {
	if c.in.shape == ShapeSeries {
		return NormalizeSeries(c.in.series, materializeIndex, c.p.StrictIndex)
	}
	return NormalizeTable(c.in.frame, materializeIndex, usecols, c.p.StrictIndex)
}

func (c *call) interactive(chart *vegalite.Chart) {
	if c.p.Interactive {
		chart.Interactive()
	}
}

// Package-level helpers use a plotter with the default configuration.
var defaultPlotter = NewPlotter(nil)

// Plot builds a chart with the default plotter.
func Plot(data interface{}, kind string, opts Options) (*vegalite.Chart, error) {
	return defaultPlotter.Plot(data, kind, opts)
}

// Hist builds a histogram with the default plotter.
func Hist(data interface{}, opts Options) (*vegalite.Chart, error) {
	return defaultPlotter.Hist(data, opts)
}

// HistFrame builds a repeated histogram with the default plotter.
func HistFrame(data interface{}, opts Options) (*vegalite.Chart, error) {
	return defaultPlotter.HistFrame(data, opts)
}

// HistSeries builds a series histogram with the default plotter.
func HistSeries(data interface{}, opts Options) (*vegalite.Chart, error) {
	return defaultPlotter.HistSeries(data, opts)
}

// Boxplot builds a box plot with the default plotter.
func Boxplot(data interface{}, opts Options) (*vegalite.Chart, error) {
	return defaultPlotter.Boxplot(data, opts)
}

// ScatterMatrix builds a scatter matrix with the default plotter.
func ScatterMatrix(data interface{}, opts Options) (*vegalite.Chart, error) {
	return defaultPlotter.ScatterMatrix(data, opts)
}
