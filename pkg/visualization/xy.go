// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package visualization

import (
	"github.com/jurgen-paul/altair-pandas/pkg/vegalite"
)

// SmallTableRows is the largest table whose bar chart is drawn as one
// group of bars per row instead of a single bar series per column.
const SmallTableRows = 12

// lineFamilyLayout returns the subplot grid used when no layout is
// given: one panel per row.
func lineFamilyLayout() []int {
	return []int{-1, 1}
}

func xyMark(kind string, stacked bool) vegalite.Mark {
	switch kind {
	case "bar":
		return vegalite.Mark{Type: "bar", Orient: "vertical"}
	case "barh":
		return vegalite.Mark{Type: "bar", Orient: "horizontal"}
	case "area":
		if !stacked {
			opacity := 0.5
			return vegalite.Mark{Type: "area", Line: true, Opacity: &opacity}
		}
		return vegalite.Mark{Type: "area"}
	}
	return vegalite.Mark{Type: kind}
}

// seriesXY plots the values of a series against its index.
func seriesXY(kind string) builderFunc {
	return func(c *call) (*vegalite.Chart, error) {
		t, err := c.data(true, nil)
		if err != nil {
			return nil, err
		}
		mark, err := c.markDef(xyMark(kind, true))
		if err != nil {
			return nil, err
		}

		cols := t.Columns()
		enc := vegalite.Encoding{
			X:       field(t, cols[0]).Untitled(),
			Y:       field(t, cols[1]).Untitled(),
			Tooltip: tooltip(t, cols...),
		}
		if kind == "barh" {
			enc = enc.SwapXY()
		}
		chart := &vegalite.Chart{Table: t, Mark: mark, Encoding: enc}
		c.interactive(chart)
		return chart, nil
	}
}

// tableXY plots one or more columns of a table against x, folding the
// y columns into one color-coded series each.
func tableXY(kind string) builderFunc {
	return func(c *call) (*vegalite.Chart, error) {
		t, err := c.data(true, nil)
		if err != nil {
			return nil, err
		}
		cols := t.Columns()

		x := cols[0]
		if c.opts.Has("x") {
			if x, err = column(t, "x", c.opts["x"]); err != nil {
				return nil, err
			}
		}
		var ys []string
		if c.opts.Has("y") {
			for _, label := range c.opts.Labels("y") {
				y, err := column(t, "y", label)
				if err != nil {
					return nil, err
				}
				if y == x {
					return nil, configErrorf("y", "column %q is already the x axis", y)
				}
				ys = append(ys, y)
			}
		} else {
			for _, col := range cols[1:] {
				if col != x {
					ys = append(ys, col)
				}
			}
		}
		fold, err := NewFold(t, ys, FoldCategory, FoldValue)
		if err != nil {
			return nil, err
		}

		stacked, err := c.opts.Bool("stacked", kind == "area")
		if err != nil {
			return nil, err
		}
		subplots, err := c.opts.Bool("subplots", false)
		if err != nil {
			return nil, err
		}
		mark, err := c.markDef(xyMark(kind, stacked))
		if err != nil {
			return nil, err
		}

		enc := vegalite.Encoding{
			X:       field(t, x),
			Y:       &vegalite.FieldDef{Field: fold.Value, Type: vegalite.Quantitative, Stack: &stacked, NoTitle: true},
			Color:   vegalite.Field(fold.Category, vegalite.Nominal).Untitled(),
			Tooltip: tooltip(t, append([]string{x}, ys...)...),
		}
		chart := &vegalite.Chart{
			Table:      t,
			Mark:       mark,
			Transforms: []vegalite.Transform{fold.Transform()},
		}

		switch {
		case subplots:
			layout, err := c.opts.Ints("layout")
			if err != nil {
				return nil, err
			}
			if layout == nil {
				layout = lineFamilyLayout()
			}
			grid, err := ResolveLayout(len(ys), layout)
			if err != nil {
				return nil, err
			}
			enc = enc.With("facet", vegalite.Field(fold.Category, vegalite.Nominal).Untitled().Wrapped(grid[1]))
		case kind == "bar" && t.Len() <= SmallTableRows:
			// One facet column per x value, one bar per folded column.
			enc = enc.
				With("x", vegalite.Field(fold.Category, vegalite.Nominal).Untitled()).
				With("column", field(t, x)).
				With("opacity", vegalite.Value(1.0))
		}
		if kind == "barh" {
			enc = enc.SwapXY()
		}
		chart.Encoding = enc
		c.interactive(chart)
		return chart, nil
	}
}
