// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package visualization

import (
	"fmt"
	"math"

	"github.com/aclements/go-gg/table"
	"go.uber.org/zap"

	"github.com/jurgen-paul/altair-pandas/pkg/frame"
	"github.com/jurgen-paul/altair-pandas/pkg/vegalite"
)

// pixelsPerInch converts figsize to chart pixels.
const pixelsPerInch = 100

// namedFontSizes are the point sizes of the matplotlib font size names
// at the default 10pt base size.
var namedFontSizes = map[string]float64{
	"xx-small": 5.79,
	"x-small":  6.94,
	"small":    8.33,
	"medium":   10.0,
	"large":    12.0,
	"x-large":  14.4,
	"xx-large": 17.28,
	"larger":   12.0,
	"smaller":  8.33,
}

// FontSize resolves a font size given as points or as a size name.
func FontSize(v interface{}) (float64, error) {
	if name, ok := v.(string); ok {
		size, ok := namedFontSizes[name]
		if !ok {
			return 0, configErrorf("fontsize", "unknown font size %q", name)
		}
		return size, nil
	}
	size, ok := toFloat(v)
	if !ok {
		return 0, configErrorf("fontsize", "expected a number or size name; got %T", v)
	}
	return size, nil
}

// LabelAngle converts a counterclockwise rotation in degrees to the
// clockwise label angle of the chart axis.
func LabelAngle(rot float64) float64 {
	return 360 - rot
}

// buildBox draws box plots of the value columns. With pandasDefaults set
// the axis options take the defaults of the pandas boxplot function.
func buildBox(pandasDefaults bool) builderFunc {
	return func(c *call) (*vegalite.Chart, error) {
		if c.opts.Has("return_type") {
			c.warn("return_type is not supported by the Vega-Lite backend; ignoring it",
				zap.Any("return_type", c.opts["return_type"]))
		}

		byLabels := c.opts.Labels("by")
		if byLabels != nil && c.in.shape == ShapeSeries {
			return nil, configErrorf("by", "grouping requires a table")
		}
		t, err := c.data(false, nil)
		if err != nil {
			return nil, err
		}

		var by []string
		isBy := make(map[string]bool)
		for _, label := range byLabels {
			name, err := column(t, "by", label)
			if err != nil {
				return nil, err
			}
			by = append(by, name)
			isBy[name] = true
		}

		var values []string
		if c.opts.Has("column") {
			for _, label := range c.opts.Labels("column") {
				name, err := column(t, "column", label)
				if err != nil {
					return nil, err
				}
				if isBy[name] {
					return nil, configErrorf("column", "column %q is also a grouping column", name)
				}
				values = append(values, name)
			}
		} else {
			for _, name := range frame.NumericColumns(t) {
				if !isBy[name] {
					values = append(values, name)
				}
			}
		}
		if len(values) == 0 {
			return nil, configErrorf("column", "no numeric columns to plot")
		}
		fold, err := NewFold(t, values, FoldCategory, FoldValue)
		if err != nil {
			return nil, err
		}

		xAxis, yAxis, err := c.boxAxes(pandasDefaults)
		if err != nil {
			return nil, err
		}
		vert, err := c.opts.Bool("vert", true)
		if err != nil {
			return nil, err
		}
		mark, err := c.markDef(vegalite.Mark{Type: "boxplot"})
		if err != nil {
			return nil, err
		}

		enc := vegalite.Encoding{
			X: &vegalite.FieldDef{Field: fold.Category, Type: vegalite.Nominal, NoTitle: true, Axis: xAxis},
			Y: &vegalite.FieldDef{Field: fold.Value, Type: vegalite.Quantitative, Axis: yAxis},
		}
		chart := &vegalite.Chart{
			Mark:       mark,
			Transforms: []vegalite.Transform{fold.Transform()},
		}

		if len(by) > 0 {
			label := by[0]
			if len(by) > 1 {
				t, label = groupLabelColumn(t, by)
			}
			groups := len(table.GroupBy(t, label).Tables())
			layout, err := c.opts.Ints("layout")
			if err != nil {
				return nil, err
			}
			grid, err := ResolveLayout(groups, layout)
			if err != nil {
				return nil, err
			}
			enc = enc.With("facet", vegalite.Field(label, vegalite.Nominal).Wrapped(grid[1]))
		}

		figsize, err := c.opts.Floats("figsize")
		if err != nil {
			return nil, err
		}
		if figsize != nil {
			if len(figsize) != 2 || figsize[0] <= 0 || figsize[1] <= 0 {
				return nil, configErrorf("figsize", "expected (width, height) in inches; got %v", figsize)
			}
			chart.Width = int(math.Round(figsize[0] * pixelsPerInch))
			chart.Height = int(math.Round(figsize[1] * pixelsPerInch))
		}

		if !vert {
			enc = enc.SwapXY()
		}
		chart.Table = t
		chart.Encoding = enc
		return chart, nil
	}
}

// boxAxes builds the category and value axes from the "rot", "fontsize"
// and "grid" options. A nil axis means no axis options were given.
func (c *call) boxAxes(pandasDefaults bool) (*vegalite.Axis, *vegalite.Axis, error) {
	var angle, size *float64
	var grid *bool

	if c.opts.Has("rot") || pandasDefaults {
		rot, err := c.opts.Float("rot", 0)
		if err != nil {
			return nil, nil, err
		}
		a := LabelAngle(rot)
		angle = &a
	}
	if c.opts.Has("fontsize") {
		s, err := FontSize(c.opts["fontsize"])
		if err != nil {
			return nil, nil, err
		}
		size = &s
	}
	if c.opts.Has("grid") || pandasDefaults {
		g, err := c.opts.Bool("grid", true)
		if err != nil {
			return nil, nil, err
		}
		grid = &g
	}

	var xAxis, yAxis *vegalite.Axis
	if angle != nil || size != nil || grid != nil {
		xAxis = &vegalite.Axis{LabelAngle: angle, LabelFontSize: size, Grid: grid}
	}
	if size != nil || grid != nil {
		yAxis = &vegalite.Axis{LabelFontSize: size, Grid: grid}
	}
	return xAxis, yAxis, nil
}

// groupLabelColumn adds a column holding one label per row that joins
// the values of the by columns. The new column's name does not collide
// with an existing column.
func groupLabelColumn(t *table.Table, by []string) (*table.Table, string) {
	cols := make([]frame.Tuple, len(by))
	names := make(frame.Tuple, len(by))
	for i, name := range by {
		names[i] = name
		cols[i] = frame.Tuple(asLabels(t.MustColumn(name)))
	}

	labels := make([]string, t.Len())
	for r := range labels {
		key := make(frame.Tuple, len(by))
		for i := range by {
			key[i] = cols[i][r]
		}
		labels[r] = key.String()
	}

	label := names.String()
	for i := 1; hasColumn(t, label); i++ {
		label = fmt.Sprintf("%s_%d", names.String(), i)
	}
	return table.NewBuilder(t).Add(label, labels).Done(), label
}
