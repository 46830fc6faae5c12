// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package visualization

import (
	"math"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"

	"github.com/jurgen-paul/altair-pandas/pkg/frame"
	"github.com/jurgen-paul/altair-pandas/pkg/vegalite"
)

// Hexbin defaults.
const (
	DefaultGridSize     = 100
	DefaultColorScheme  = "bluegreen"
	reducedColumnPrefix = "reduced_"
)

// ReduceFunc reduces the C values of one bin to a single value.
type ReduceFunc func(xs []float64) float64

// buildHexbin aggregates points on a rectangular x/y grid. Without "C"
// the color shows the point count per cell; with "C" it shows the C
// values reduced per cell by "reduce_C_function" (mean by default).
func buildHexbin(c *call) (*vegalite.Chart, error) {
	if !c.opts.Has("x") || !c.opts.Has("y") {
		return nil, configErrorf("x", "kind=\"hexbin\" requires both x and y")
	}
	t, err := c.data(true, nil)
	if err != nil {
		return nil, err
	}
	x, err := numericColumn(t, "x", c.opts["x"])
	if err != nil {
		return nil, err
	}
	y, err := numericColumn(t, "y", c.opts["y"])
	if err != nil {
		return nil, err
	}
	xbins, ybins, err := c.gridSize()
	if err != nil {
		return nil, err
	}
	scheme, err := c.opts.String("cmap", DefaultColorScheme)
	if err != nil {
		return nil, err
	}
	mark, err := c.markDef(vegalite.Mark{Type: "rect"})
	if err != nil {
		return nil, err
	}

	xs, ys := frame.Float64s(t, x), frame.Float64s(t, y)
	xgrid := newAxisGrid(xs, xbins)
	ygrid := newAxisGrid(ys, ybins)

	color := &vegalite.FieldDef{Aggregate: "count", Type: vegalite.Quantitative, Scale: &vegalite.Scale{Scheme: scheme}}
	if c.opts.Has("C") {
		col, err := numericColumn(t, "C", c.opts["C"])
		if err != nil {
			return nil, err
		}
		reduce, err := c.reduceFunc()
		if err != nil {
			return nil, err
		}
		out := col
		if col == x || col == y {
			out = reducedColumnPrefix + col
		}
		reduced := reduceByCell(xgrid, ygrid, xs, ys, frame.Float64s(t, col), reduce)
		t = table.NewBuilder(t).Add(out, reduced).Done()
		// Every row of a cell carries the same reduced value, so the
		// median passes it through unchanged.
		color = &vegalite.FieldDef{Field: out, Type: vegalite.Quantitative, Aggregate: "median", Scale: color.Scale}
	}

	return &vegalite.Chart{
		Table: t,
		Mark:  mark,
		Encoding: vegalite.Encoding{
			X:     &vegalite.FieldDef{Field: x, Type: vegalite.Quantitative, Bin: xgrid.bin()},
			Y:     &vegalite.FieldDef{Field: y, Type: vegalite.Quantitative, Bin: ygrid.bin()},
			Color: color,
		},
	}, nil
}

func numericColumn(t *table.Table, key string, label interface{}) (string, error) {
	name, err := column(t, key, label)
	if err != nil {
		return "", err
	}
	if !frame.IsNumeric(t.Column(name)) {
		return "", configErrorf(key, "column %q is not numeric", name)
	}
	return name, nil
}

// gridSize reads "gridsize": one bin count for both axes or an
// (x, y) pair.
func (c *call) gridSize() (int, int, error) {
	if !c.opts.Has("gridsize") {
		return DefaultGridSize, DefaultGridSize, nil
	}
	var nx, ny int
	if n, ok := toInt(c.opts["gridsize"]); ok {
		nx, ny = n, n
	} else {
		pair, err := c.opts.Ints("gridsize")
		if err != nil {
			return 0, 0, err
		}
		if len(pair) != 2 {
			return 0, 0, configErrorf("gridsize", "expected an integer or (x, y) pair; got %d values", len(pair))
		}
		nx, ny = pair[0], pair[1]
	}
	if nx <= 0 || ny <= 0 {
		return 0, 0, configErrorf("gridsize", "bin counts must be positive; got (%d, %d)", nx, ny)
	}
	return nx, ny, nil
}

func (c *call) reduceFunc() (ReduceFunc, error) {
	switch fn := c.opts["reduce_C_function"].(type) {
	case nil:
		return stats.Mean, nil
	case ReduceFunc:
		return fn, nil
	case func([]float64) float64:
		return fn, nil
	default:
		return nil, configErrorf("reduce_C_function", "expected func([]float64) float64; got %T", fn)
	}
}

// axisGrid cuts one axis into equal-width cells over the data range.
type axisGrid struct {
	min, max, width float64
	bins            int
}

func newAxisGrid(xs []float64, bins int) axisGrid {
	var finite []float64
	for _, x := range xs {
		if !math.IsNaN(x) && !math.IsInf(x, 0) {
			finite = append(finite, x)
		}
	}
	if len(finite) == 0 {
		return axisGrid{bins: bins}
	}
	lo, hi := stats.Bounds(finite)
	return axisGrid{min: lo, max: hi, width: (hi - lo) / float64(bins), bins: bins}
}

// step is the bin width shown on the chart axis. A zero-width range
// uses unit steps.
func (g axisGrid) step() float64 {
	if g.width == 0 {
		return 1
	}
	return g.width
}

// bin returns the binning that draws exactly the cells of g: anchored
// at the data minimum and spanning the data range. A zero-width range
// is one unit cell.
func (g axisGrid) bin() *vegalite.Bin {
	hi := g.max
	if g.width == 0 {
		hi = g.min + 1
	}
	return &vegalite.Bin{Step: g.step(), Extent: []float64{g.min, hi}, NoNice: true}
}

// cell returns the cell of x, or -1 if x is not finite. Cells are
// half-open; the maximum falls into the last cell.
func (g axisGrid) cell(x float64) int {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return -1
	}
	if g.width == 0 {
		return 0
	}
	i := int((x - g.min) / g.width)
	return min(max(i, 0), g.bins-1)
}

// reduceByCell computes reduce over the finite C values of each grid
// cell and returns, for every row, the value of the row's cell. Rows
// outside any cell get NaN.
func reduceByCell(xg, yg axisGrid, xs, ys, cs []float64, reduce ReduceFunc) []float64 {
	type key struct{ x, y int }
	cells := make([]key, len(xs))
	groups := make(map[key][]float64)
	for i := range xs {
		k := key{xg.cell(xs[i]), yg.cell(ys[i])}
		cells[i] = k
		if k.x < 0 || k.y < 0 || math.IsNaN(cs[i]) {
			continue
		}
		groups[k] = append(groups[k], cs[i])
	}

	values := make(map[key]float64, len(groups))
	for k, group := range groups {
		values[k] = reduce(group)
	}
	out := make([]float64, len(xs))
	for i, k := range cells {
		v, ok := values[k]
		if !ok {
			v = math.NaN()
		}
		out[i] = v
	}
	return out
}
