// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

// Package request reads plot request documents. A request names a data
// source, a plotting function and its options:
//
//	source:
//	  path: sales.csv
//	  index_col: month
//	function: plot
//	kind: bar
//	options:
//	  y: [north, south]
//	  stacked: true
//
// Requests are YAML or JSON and are validated against an embedded JSON
// Schema before use.
package request

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"github.com/jurgen-paul/altair-pandas/pkg/frame"
	"github.com/jurgen-paul/altair-pandas/pkg/source"
	"github.com/jurgen-paul/altair-pandas/pkg/vegalite"
	"github.com/jurgen-paul/altair-pandas/pkg/visualization"
)

//go:embed schema.json
var schemaJSON []byte

// Plotting functions.
const (
	FunctionPlot          = "plot"
	FunctionHistFrame     = "hist_frame"
	FunctionHistSeries    = "hist_series"
	FunctionBoxplot       = "boxplot"
	FunctionScatterMatrix = "scatter_matrix"
)

// Request is a parsed plot request.
type Request struct {
	Source   source.Spec            `yaml:"source" json:"source"`
	Function string                 `yaml:"function" json:"function"`
	Kind     string                 `yaml:"kind" json:"kind"`
	Series   string                 `yaml:"series" json:"series"`
	Options  map[string]interface{} `yaml:"options" json:"options"`
	Output   Output                 `yaml:"output" json:"output"`
}

// Output says where and how to write the chart. Empty fields fall back
// to the configuration.
type Output struct {
	Path   string `yaml:"path" json:"path"`
	Format string `yaml:"format" json:"format"`
	Theme  string `yaml:"theme" json:"theme"`
}

// Schema returns the JSON Schema that requests are validated against.
func Schema() []byte {
	return append([]byte(nil), schemaJSON...)
}

// Parse decodes and validates a YAML or JSON request.
func Parse(data []byte) (*Request, error) {
	var doc map[string]interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse request: %w", err)
	}
	if doc == nil {
		return nil, fmt.Errorf("request is empty")
	}
	if err := Validate(doc); err != nil {
		return nil, err
	}

	var req Request
	if err := yaml.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to decode request: %w", err)
	}
	if req.Function == "" {
		req.Function = FunctionPlot
	}
	return &req, nil
}

// LoadFile reads a request file. Relative source and theme file paths
// are resolved against the directory of the request file.
func LoadFile(path string) (*Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read request %s: %w", path, err)
	}
	req, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if p := req.Source.Path; p != "" && !filepath.IsAbs(p) {
		req.Source.Path = filepath.Join(filepath.Dir(path), p)
	}
	if t := req.Output.Theme; filepath.Ext(t) != "" && !filepath.IsAbs(t) {
		req.Output.Theme = filepath.Join(filepath.Dir(path), t)
	}
	return req, nil
}

// Validate checks a decoded request document against the schema.
func Validate(doc map[string]interface{}) error {
	schemaLoader := gojsonschema.NewBytesLoader(schemaJSON)
	docLoader := gojsonschema.NewGoLoader(doc)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	if !result.Valid() {
		errors := make([]string, len(result.Errors()))
		for i, err := range result.Errors() {
			errors[i] = err.String()
		}
		return fmt.Errorf("invalid request: %v", errors)
	}
	return nil
}

// Build loads the request's data and builds its chart with p.
func (r *Request) Build(ctx context.Context, p *visualization.Plotter) (*vegalite.Chart, error) {
	f, err := source.Load(ctx, r.Source)
	if err != nil {
		return nil, err
	}
	var data interface{} = f
	if r.Series != "" {
		s, err := seriesOf(f, r.Series)
		if err != nil {
			return nil, err
		}
		data = s
	}

	opts := visualization.Options(r.Options)
	switch r.Function {
	case "", FunctionPlot:
		return p.Plot(data, r.Kind, opts)
	case FunctionHistFrame:
		return p.HistFrame(data, opts)
	case FunctionHistSeries:
		return p.HistSeries(data, opts)
	case FunctionBoxplot:
		return p.Boxplot(data, opts)
	case FunctionScatterMatrix:
		return p.ScatterMatrix(data, opts)
	}
	return nil, fmt.Errorf("unknown function %q", r.Function)
}

// seriesOf selects one column of f as a series that keeps f's index.
func seriesOf(f *frame.Frame, label string) (*frame.Series, error) {
	values := f.Column(label)
	if values == nil {
		return nil, fmt.Errorf("series: no column %q", label)
	}
	return frame.NewSeries(label, values).WithIndex(f.Index()), nil
}
