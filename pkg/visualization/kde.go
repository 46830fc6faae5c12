// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package visualization

import (
	"math"
	"reflect"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"
	"go.uber.org/zap"

	"github.com/jurgen-paul/altair-pandas/pkg/frame"
	"github.com/jurgen-paul/altair-pandas/pkg/vegalite"
)

// DefaultDensitySteps is the number of density evaluation points when
// "ind" is not an integer.
const DefaultDensitySteps = 1000

const densityField = "density"

// BandwidthFunc computes a kernel bandwidth from the working table. It
// is called once per chart; the result applies to every column.
type BandwidthFunc func(t *table.Table) float64

// ScottBandwidth estimates the bandwidth with Scott's rule over all
// finite values of the table's numeric columns.
func ScottBandwidth(t *table.Table) float64 {
	return stats.BandwidthScott(stats.Sample{Xs: finiteValues(t)})
}

// SilvermanBandwidth estimates the bandwidth with Silverman's rule of
// thumb over all finite values of the table's numeric columns.
func SilvermanBandwidth(t *table.Table) float64 {
	return stats.BandwidthSilverman(stats.Sample{Xs: finiteValues(t)})
}

// SilvermanFactor is Silverman's bandwidth factor for n samples in one
// dimension.
func SilvermanFactor(n int) float64 {
	const d = 1.0
	return math.Pow(float64(n)*(d+2)/4, -1/(d+4))
}

// resolveBandwidth reads "bw_method". Unset and "scott" return 0,
// which leaves the estimate to the renderer's density transform.
func (c *call) resolveBandwidth(t *table.Table) (float64, error) {
	var fn BandwidthFunc
	switch bw := c.opts["bw_method"].(type) {
	case nil:
		return 0, nil
	case string:
		switch bw {
		case "scott":
			return 0, nil
		case "silverman":
			return SilvermanFactor(t.Len()), nil
		}
		return 0, configErrorf("bw_method", "unknown method %q", bw)
	case BandwidthFunc:
		fn = bw
	case func(*table.Table) float64:
		fn = bw
	default:
		f, ok := toFloat(bw)
		if !ok {
			return 0, configErrorf("bw_method", "expected a method name, number or BandwidthFunc; got %T", bw)
		}
		c.warnSharedBandwidth(t)
		return f, nil
	}
	c.warnSharedBandwidth(t)
	return fn(t), nil
}

// warnSharedBandwidth warns that an explicit bandwidth applies to every
// column of a multi-column table.
func (c *call) warnSharedBandwidth(t *table.Table) {
	if n := len(t.Columns()); n > 1 {
		c.warn("a single bandwidth is used for all columns", zap.Int("columns", n))
	}
}

// resolveSteps reads "ind". Explicit evaluation points are not
// supported and fall back to DefaultDensitySteps with a warning.
func (c *call) resolveSteps() (int, error) {
	v := c.opts["ind"]
	if v == nil {
		return DefaultDensitySteps, nil
	}
	if n, ok := toInt(v); ok {
		if n <= 0 {
			return 0, configErrorf("ind", "must be positive; got %d", n)
		}
		return n, nil
	}
	if k := reflect.ValueOf(v).Kind(); k == reflect.Slice || k == reflect.Array {
		c.warn("explicit evaluation points for ind are unsupported; using the default step count",
			zap.Int("steps", DefaultDensitySteps))
		return DefaultDensitySteps, nil
	}
	return 0, configErrorf("ind", "expected an integer or a sequence; got %T", v)
}

// buildKDE draws one density curve per numeric column. All curves share
// the global value range so that they stay comparable.
func buildKDE(c *call) (*vegalite.Chart, error) {
	t, err := c.data(false, nil)
	if err != nil {
		return nil, err
	}
	cols := frame.NumericColumns(t)
	if len(cols) == 0 {
		return nil, configErrorf("data", "no numeric columns to estimate")
	}
	t = project(t, cols)

	bw, err := c.resolveBandwidth(t)
	if err != nil {
		return nil, err
	}
	steps, err := c.resolveSteps()
	if err != nil {
		return nil, err
	}
	xs := finiteValues(t)
	if len(xs) == 0 {
		return nil, configErrorf("data", "no finite values to estimate")
	}
	lo, hi := stats.Bounds(xs)

	mark, err := c.markDef(vegalite.Mark{Type: "line"})
	if err != nil {
		return nil, err
	}
	fold, err := NewFold(t, cols, FoldCategory, FoldValue)
	if err != nil {
		return nil, err
	}

	enc := vegalite.Encoding{
		X: vegalite.Field(fold.Value, vegalite.Quantitative).Untitled(),
		Y: &vegalite.FieldDef{Field: densityField, Type: vegalite.Quantitative, Title: "Density"},
	}
	if len(cols) > 1 {
		enc = enc.With("color", vegalite.Field(fold.Category, vegalite.Nominal))
	}
	return &vegalite.Chart{
		Table:    t,
		Mark:     mark,
		Encoding: enc,
		Transforms: []vegalite.Transform{
			fold.Transform(),
			vegalite.Density{
				Density:   fold.Value,
				Bandwidth: bw,
				Steps:     steps,
				Extent:    [2]float64{lo, hi},
				GroupBy:   []string{fold.Category},
				As:        [2]string{fold.Value, densityField},
			},
		},
	}, nil
}

// finiteValues returns every finite value of t's numeric columns.
func finiteValues(t *table.Table) []float64 {
	var out []float64
	for _, col := range frame.NumericColumns(t) {
		for _, x := range frame.Float64s(t, col) {
			if !math.IsNaN(x) && !math.IsInf(x, 0) {
				out = append(out, x)
			}
		}
	}
	return out
}
