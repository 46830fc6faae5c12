// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package visualization

import (
	"github.com/jurgen-paul/altair-pandas/pkg/frame"
	"github.com/jurgen-paul/altair-pandas/pkg/vegalite"
)

const (
	frequencyTitle = "Frequency"

	// defaultFrameBins is the bin count of each HistFrame panel.
	defaultFrameBins = 10
)

// histBins reads the "bins" option: an integer bin count, or automatic
// binning when unset.
func (c *call) histBins() (*vegalite.Bin, error) {
	if !c.opts.Has("bins") {
		return &vegalite.Bin{}, nil
	}
	n, err := c.opts.Int("bins", 0)
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		return nil, configErrorf("bins", "must be positive; got %d", n)
	}
	return &vegalite.Bin{MaxBins: n}, nil
}

// histOrientation reads the "orientation" option.
func (c *call) histOrientation() (string, error) {
	o, err := c.opts.String("orientation", "vertical")
	if err != nil {
		return "", err
	}
	if o != "vertical" && o != "horizontal" {
		return "", configErrorf("orientation", "must be 'horizontal' or 'vertical'; got %q", o)
	}
	return o, nil
}

// orient places the binned field and the count on the axes.
func orient(orientation string, binned, count *vegalite.FieldDef) vegalite.Encoding {
	enc := vegalite.Encoding{X: binned, Y: count}
	if orientation == "horizontal" {
		enc = enc.SwapXY()
	}
	return enc
}

func seriesHist(c *call) (*vegalite.Chart, error) {
	t, err := c.data(false, nil)
	if err != nil {
		return nil, err
	}
	bins, err := c.histBins()
	if err != nil {
		return nil, err
	}
	orientation, err := c.histOrientation()
	if err != nil {
		return nil, err
	}
	mark, err := c.markDef(vegalite.Mark{Type: "bar", Orient: orientation})
	if err != nil {
		return nil, err
	}

	col := t.Columns()[0]
	binned := &vegalite.FieldDef{Field: col, Type: vegalite.Quantitative, Bin: bins, NoTitle: true}
	return &vegalite.Chart{
		Table:    t,
		Mark:     mark,
		Encoding: orient(orientation, binned, vegalite.Count(frequencyTitle)),
	}, nil
}

func tableHist(c *call) (*vegalite.Chart, error) {
	t, err := c.data(false, nil)
	if err != nil {
		return nil, err
	}
	bins, err := c.histBins()
	if err != nil {
		return nil, err
	}
	orientation, err := c.histOrientation()
	if err != nil {
		return nil, err
	}
	stacked, err := c.opts.OptionalBool("stacked")
	if err != nil {
		return nil, err
	}
	subplots, err := c.opts.Bool("subplots", false)
	if err != nil {
		return nil, err
	}
	mark, err := c.markDef(vegalite.Mark{Type: "bar", Orient: orientation})
	if err != nil {
		return nil, err
	}
	fold, err := NewFold(t, t.Columns(), FoldCategory, FoldValue)
	if err != nil {
		return nil, err
	}

	binned := &vegalite.FieldDef{Field: fold.Value, Type: vegalite.Quantitative, Bin: bins, NoTitle: true}
	count := vegalite.Count(frequencyTitle)
	count.Stack = stacked
	enc := orient(orientation, binned, count).
		With("color", vegalite.Field(fold.Category, vegalite.Nominal))

	chart := &vegalite.Chart{
		Table:      t,
		Mark:       mark,
		Transforms: []vegalite.Transform{fold.Transform()},
	}
	if subplots {
		layout, err := c.opts.Ints("layout")
		if err != nil {
			return nil, err
		}
		if layout == nil {
			layout = lineFamilyLayout()
		}
		grid, err := ResolveLayout(len(fold.Columns), layout)
		if err != nil {
			return nil, err
		}
		enc = enc.With("facet", vegalite.Field(fold.Category, vegalite.Nominal).Untitled().Wrapped(grid[1]))
	}
	chart.Encoding = enc
	return chart, nil
}

// histFrame draws one histogram per numeric column as a repeated chart.
// The "column" option restricts the columns considered.
func histFrame(c *call) (*vegalite.Chart, error) {
	t, err := c.data(false, c.opts.Labels("column"))
	if err != nil {
		return nil, err
	}
	cols := frame.NumericColumns(t)
	if len(cols) == 0 {
		return nil, configErrorf("column", "no numeric columns to plot")
	}
	t = project(t, cols)

	bins, err := c.opts.Int("bins", defaultFrameBins)
	if err != nil {
		return nil, err
	}
	if bins <= 0 {
		return nil, configErrorf("bins", "must be positive; got %d", bins)
	}
	layout, err := c.opts.Ints("layout")
	if err != nil {
		return nil, err
	}
	grid, err := ResolveLayout(len(cols), layout)
	if err != nil {
		return nil, err
	}
	mark, err := c.markDef(vegalite.Mark{Type: "bar"})
	if err != nil {
		return nil, err
	}

	return &vegalite.Chart{
		Table:   t,
		Repeat:  &vegalite.Repeat{List: cols},
		Columns: grid[1],
		Spec: &vegalite.Chart{
			Mark: mark,
			Encoding: vegalite.Encoding{
				X: &vegalite.FieldDef{Repeat: "repeat", Type: vegalite.Quantitative, Bin: &vegalite.Bin{MaxBins: bins}},
				Y: vegalite.Count(frequencyTitle),
			},
		},
	}, nil
}
