// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package vegalite

import (
	"fmt"

	"github.com/jurgen-paul/altair-pandas/pkg/frame"
)

// Measurement types.
const (
	Quantitative = "quantitative"
	Nominal      = "nominal"
	Ordinal      = "ordinal"
	Temporal     = "temporal"
)

// InferType picks the measurement type of a column from its element
// type, the same way the Python charting frontends do for dataframes.
func InferType(col any) string {
	switch {
	case frame.IsNumeric(col):
		return Quantitative
	case frame.IsTemporal(col):
		return Temporal
	default:
		return Nominal
	}
}

// Bin is a binning directive. A zero Bin serializes as true
// (automatic binning).
type Bin struct {
	MaxBins int
	Step    float64
	// Extent, when set, pins the binned range to [min, max].
	Extent []float64
	// NoNice keeps the first bin boundary at the extent minimum instead
	// of rounding it down to a multiple of the step.
	NoNice bool
}

func (b *Bin) value() any {
	m := map[string]any{}
	switch {
	case b.MaxBins > 0:
		m["maxbins"] = b.MaxBins
	case b.Step > 0:
		m["step"] = b.Step
	}
	if len(b.Extent) == 2 {
		m["extent"] = []float64{b.Extent[0], b.Extent[1]}
	}
	if b.NoNice {
		m["nice"] = false
	}
	if len(m) == 0 {
		return true
	}
	return m
}

// Scale configures a channel scale.
type Scale struct {
	Scheme string
}

// Axis configures a positional axis.
type Axis struct {
	LabelAngle    *float64
	LabelFontSize *float64
	Grid          *bool
}

func (a *Axis) value() map[string]any {
	m := map[string]any{}
	if a.LabelAngle != nil {
		m["labelAngle"] = *a.LabelAngle
	}
	if a.LabelFontSize != nil {
		m["labelFontSize"] = *a.LabelFontSize
	}
	if a.Grid != nil {
		m["grid"] = *a.Grid
	}
	return m
}

// FieldDef is the definition of one encoding channel. Either Field or
// Repeat names the data, or Value holds a constant. A FieldDef is
// never modified after it has been placed in an Encoding.
type FieldDef struct {
	Field string
	// Repeat references the field substituted by a repeat operator:
	// "repeat", "row" or "column".
	Repeat    string
	Type      string
	Bin       *Bin
	Stack     *bool
	Aggregate string
	Scale     *Scale
	Title     string
	// NoTitle suppresses the axis or legend title (title: null).
	NoTitle bool
	Axis    *Axis
	// Columns is the wrap width of a facet channel.
	Columns int
	Value   any
}

// Field returns a field reference of the given type.
func Field(name, typ string) *FieldDef {
	return &FieldDef{Field: name, Type: typ}
}

// RepeatField returns a field reference bound to the repeat operator.
func RepeatField(ref, typ string) *FieldDef {
	return &FieldDef{Repeat: ref, Type: typ}
}

// Value returns a constant channel value.
func Value(v any) *FieldDef {
	return &FieldDef{Value: v}
}

// Count returns a count aggregate with the given title.
func Count(title string) *FieldDef {
	return &FieldDef{Aggregate: "count", Type: Quantitative, Title: title}
}

// Wrapped returns a copy of f that lays facet panels out in rows of
// columns.
func (f FieldDef) Wrapped(columns int) *FieldDef {
	f.Columns = columns
	return &f
}

// Untitled returns a copy of f with the title suppressed.
func (f FieldDef) Untitled() *FieldDef {
	f.NoTitle = true
	f.Title = ""
	return &f
}

func (f *FieldDef) value() map[string]any {
	if f.Value != nil {
		return map[string]any{"value": f.Value}
	}
	m := map[string]any{}
	switch {
	case f.Repeat != "":
		m["field"] = map[string]any{"repeat": f.Repeat}
	case f.Field != "":
		m["field"] = f.Field
	}
	if f.Type != "" {
		m["type"] = f.Type
	}
	if f.Bin != nil {
		m["bin"] = f.Bin.value()
	}
	if f.Stack != nil {
		m["stack"] = *f.Stack
	}
	if f.Aggregate != "" {
		m["aggregate"] = f.Aggregate
	}
	if f.Scale != nil && f.Scale.Scheme != "" {
		m["scale"] = map[string]any{"scheme": f.Scale.Scheme}
	}
	switch {
	case f.NoTitle:
		m["title"] = nil
	case f.Title != "":
		m["title"] = f.Title
	}
	if f.Axis != nil {
		m["axis"] = f.Axis.value()
	}
	if f.Columns > 0 {
		m["columns"] = f.Columns
	}
	return m
}

// Encoding maps channels to field definitions. Encodings are values:
// every method returns a new Encoding and leaves the receiver alone.
type Encoding struct {
	X       *FieldDef
	Y       *FieldDef
	Color   *FieldDef
	Size    *FieldDef
	Opacity *FieldDef
	Facet   *FieldDef
	Column  *FieldDef
	Tooltip []*FieldDef
}

// SwapXY returns the encoding with the x and y channels exchanged.
func (e Encoding) SwapXY() Encoding {
	e.X, e.Y = e.Y, e.X
	return e
}

// With returns the encoding with channel set to def. A nil def removes
// the channel.
func (e Encoding) With(channel string, def *FieldDef) Encoding {
	switch channel {
	case "x":
		e.X = def
	case "y":
		e.Y = def
	case "color":
		e.Color = def
	case "size":
		e.Size = def
	case "opacity":
		e.Opacity = def
	case "facet":
		e.Facet = def
	case "column":
		e.Column = def
	default:
		panic(fmt.Sprintf("unknown encoding channel %q", channel))
	}
	return e
}

// Channel returns the definition for channel, or nil.
func (e Encoding) Channel(channel string) *FieldDef {
	switch channel {
	case "x":
		return e.X
	case "y":
		return e.Y
	case "color":
		return e.Color
	case "size":
		return e.Size
	case "opacity":
		return e.Opacity
	case "facet":
		return e.Facet
	case "column":
		return e.Column
	}
	return nil
}

func (e Encoding) value() map[string]any {
	m := map[string]any{}
	for _, ch := range []string{"x", "y", "color", "size", "opacity", "facet", "column"} {
		if def := e.Channel(ch); def != nil {
			m[ch] = def.value()
		}
	}
	if e.Tooltip != nil {
		tips := make([]any, len(e.Tooltip))
		for i, def := range e.Tooltip {
			tips[i] = def.value()
		}
		m["tooltip"] = tips
	}
	return m
}
