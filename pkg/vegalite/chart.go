// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

// Package vegalite is a narrow object model for Vega-Lite v5 chart
// specifications. It covers the marks, channels, transforms and
// composition operators produced by the plotting engine and nothing
// more.
//
// Charts are built with struct literals and serialized with ToDict,
// json.Marshal or YAML. The data table travels with the chart and is
// emitted as a named top-level dataset.
package vegalite

import (
	"encoding/json"
	"fmt"

	"github.com/aclements/go-gg/table"
	"gopkg.in/yaml.v3"
)

// SchemaURL identifies the Vega-Lite version of every emitted document.
const SchemaURL = "https://vega.github.io/schema/vega-lite/v5.20.1.json"

// Default view size, matching the Vega-Lite default for continuous axes.
const (
	DefaultContinuousWidth  = 300
	DefaultContinuousHeight = 300
)

// Mark is a mark definition. A mark carrying only Type serializes as a
// bare string.
type Mark struct {
	Type    string
	Orient  string
	Opacity *float64
	Color   string
	Line    bool
}

func (m *Mark) value() any {
	if m.Orient == "" && m.Opacity == nil && m.Color == "" && !m.Line {
		return m.Type
	}
	d := map[string]any{"type": m.Type}
	if m.Orient != "" {
		d["orient"] = m.Orient
	}
	if m.Opacity != nil {
		d["opacity"] = *m.Opacity
	}
	if m.Color != "" {
		d["color"] = m.Color
	}
	if m.Line {
		d["line"] = true
	}
	return d
}

// Transform is one step of a chart's transform pipeline.
type Transform interface {
	transformValue() map[string]any
}

// Fold turns the named columns into key/value rows.
type Fold struct {
	Fold []string
	As   [2]string
}

func (f Fold) transformValue() map[string]any {
	return map[string]any{
		"fold": append([]string(nil), f.Fold...),
		"as":   []string{f.As[0], f.As[1]},
	}
}

// Density is a kernel density estimation transform. Bandwidth 0 lets
// the renderer estimate the bandwidth with Scott's rule.
type Density struct {
	Density   string
	Bandwidth float64
	Steps     int
	Extent    [2]float64
	GroupBy   []string
	As        [2]string
}

func (d Density) transformValue() map[string]any {
	m := map[string]any{
		"density":   d.Density,
		"bandwidth": finite(d.Bandwidth),
		"extent":    []any{finite(d.Extent[0]), finite(d.Extent[1])},
		"as":        []string{d.As[0], d.As[1]},
	}
	if d.Steps > 0 {
		m["steps"] = d.Steps
	}
	if d.GroupBy != nil {
		m["groupby"] = append([]string(nil), d.GroupBy...)
	}
	return m
}

// Repeat is a repeat operator. List is the single-list form laid out
// with the chart's Columns; Row and Column repeat over a grid.
type Repeat struct {
	List   []string
	Row    []string
	Column []string
}

func (r *Repeat) value() any {
	if r.List != nil {
		return append([]string(nil), r.List...)
	}
	m := map[string]any{}
	if r.Row != nil {
		m["row"] = append([]string(nil), r.Row...)
	}
	if r.Column != nil {
		m["column"] = append([]string(nil), r.Column...)
	}
	return m
}

// Param is a selection parameter.
type Param struct {
	Name      string
	Select    string
	Encodings []string
	Bind      string
}

func (p Param) value() map[string]any {
	m := map[string]any{
		"name":   p.Name,
		"select": map[string]any{"type": p.Select, "encodings": append([]string(nil), p.Encodings...)},
	}
	if p.Bind != "" {
		m["bind"] = p.Bind
	}
	return m
}

// Chart is a single-view or repeated chart specification.
type Chart struct {
	// Table is the working table the chart draws from. It is emitted
	// as the chart's dataset.
	Table *table.Table `json:"-"`

	// Warnings records the user-visible warnings raised while building
	// the chart.
	Warnings []string `json:"-"`

	Mark       *Mark
	Encoding   Encoding
	Transforms []Transform
	Params     []Param
	Width      int
	Height     int
	// Columns is the wrap width of a list-repeated chart. Faceted
	// charts carry theirs on the facet channel.
	Columns int
	Repeat  *Repeat
	// Spec is the inner chart of a repeat.
	Spec *Chart
}

// Interactive binds the x and y scales to an interval selection, so
// that the chart can be panned and zoomed.
func (c *Chart) Interactive() *Chart {
	for _, p := range c.Params {
		if p.Bind == "scales" {
			return c
		}
	}
	c.Params = append(c.Params, Param{
		Name:      fmt.Sprintf("param_%d", len(c.Params)+1),
		Select:    "interval",
		Encodings: []string{"x", "y"},
		Bind:      "scales",
	})
	return c
}

// Warn records a user-visible warning on the chart.
func (c *Chart) Warn(msg string) {
	c.Warnings = append(c.Warnings, msg)
}

// document renders the chart as a plain tree of maps and slices.
func (c *Chart) document() (map[string]any, error) {
	doc := map[string]any{
		"$schema": SchemaURL,
		"config": map[string]any{
			"view": map[string]any{
				"continuousWidth":  DefaultContinuousWidth,
				"continuousHeight": DefaultContinuousHeight,
			},
		},
	}
	if c.Table != nil {
		name, rows, err := Dataset(c.Table)
		if err != nil {
			return nil, err
		}
		doc["data"] = map[string]any{"name": name}
		doc["datasets"] = map[string]any{name: rows}
	}
	for k, v := range c.view() {
		doc[k] = v
	}
	if c.Repeat != nil {
		doc["repeat"] = c.Repeat.value()
	}
	if c.Spec != nil {
		doc["spec"] = c.Spec.view()
	}
	if c.Columns > 0 {
		doc["columns"] = c.Columns
	}
	return doc, nil
}

// view renders the unit-level properties shared by top-level and inner
// charts.
func (c *Chart) view() map[string]any {
	m := map[string]any{}
	if c.Mark != nil {
		m["mark"] = c.Mark.value()
	}
	if enc := c.Encoding.value(); len(enc) > 0 {
		m["encoding"] = enc
	}
	if len(c.Transforms) > 0 {
		ts := make([]any, len(c.Transforms))
		for i, t := range c.Transforms {
			ts[i] = t.transformValue()
		}
		m["transform"] = ts
	}
	if len(c.Params) > 0 {
		ps := make([]any, len(c.Params))
		for i, p := range c.Params {
			ps[i] = p.value()
		}
		m["params"] = ps
	}
	if c.Width > 0 {
		m["width"] = c.Width
	}
	if c.Height > 0 {
		m["height"] = c.Height
	}
	return m
}

// MarshalJSON encodes the chart as a Vega-Lite document.
func (c *Chart) MarshalJSON() ([]byte, error) {
	doc, err := c.document()
	if err != nil {
		return nil, err
	}
	return json.Marshal(doc)
}

// ToDict returns the chart as a plain JSON-compatible document. Numbers
// are float64, objects are map[string]any and arrays are []any.
func (c *Chart) ToDict() (map[string]any, error) {
	data, err := c.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to encode chart: %w", err)
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to decode chart: %w", err)
	}
	return out, nil
}

// YAML encodes the chart as a YAML document.
func (c *Chart) YAML() ([]byte, error) {
	doc, err := c.ToDict()
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(doc)
}
