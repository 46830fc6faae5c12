// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package visualization

import (
	"errors"
	"testing"

	"github.com/aclements/go-gg/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/jurgen-paul/altair-pandas/pkg/frame"
	"github.com/jurgen-paul/altair-pandas/pkg/vegalite"
)

func seq(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}

func xyFrame(rows int) *frame.Frame {
	ys := make([]float64, rows)
	for i := range ys {
		ys[i] = float64(rows - i)
	}
	return frame.New().Add("x", seq(rows)).Add("y", ys)
}

func observedPlotter(interactive bool) (*Plotter, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.WarnLevel)
	return NewPlotter(&PlotterConfig{Logger: zap.New(core), Interactive: interactive}), logs
}

func TestKinds(t *testing.T) {
	assert.Equal(t, []string{"area", "bar", "barh", "box", "density", "hist", "kde", "line", "scatter"}, Kinds(ShapeSeries))
	assert.Contains(t, Kinds(ShapeTable), "hexbin")
	assert.NotContains(t, Kinds(ShapeSeries), "hexbin")
}

func TestPlot_SeriesLine(t *testing.T) {
	s := frame.NewSeries("data_name", []float64{3, 1, 2})
	chart, err := Plot(s, "", nil)
	require.NoError(t, err)

	assert.Equal(t, "line", chart.Mark.Type)
	assert.Equal(t, "index", chart.Encoding.X.Field)
	assert.Equal(t, vegalite.Quantitative, chart.Encoding.X.Type)
	assert.True(t, chart.Encoding.X.NoTitle)
	assert.Equal(t, "data_name", chart.Encoding.Y.Field)
	assert.Len(t, chart.Encoding.Tooltip, 2)
	assert.Empty(t, chart.Transforms)
	require.Len(t, chart.Params, 1)
	assert.Equal(t, "scales", chart.Params[0].Bind)

	doc, err := chart.ToDict()
	require.NoError(t, err)
	assert.Equal(t, "line", doc["mark"])
	assert.NotContains(t, doc, "layer")
}

func TestPlot_SeriesVariants(t *testing.T) {
	s := frame.NewSeries("v", []float64{1, 2})

	chart, err := Plot(s, "barh", nil)
	require.NoError(t, err)
	assert.Equal(t, "v", chart.Encoding.X.Field)
	assert.Equal(t, "index", chart.Encoding.Y.Field)
	assert.Equal(t, "horizontal", chart.Mark.Orient)

	chart, err = Plot(s, "bar", Options{"alpha": 0.3, "color": "red"})
	require.NoError(t, err)
	require.NotNil(t, chart.Mark.Opacity)
	assert.Equal(t, 0.3, *chart.Mark.Opacity)
	assert.Equal(t, "red", chart.Mark.Color)
}

func TestPlot_TableBar(t *testing.T) {
	chart, err := Plot(xyFrame(SmallTableRows+8), "bar", nil)
	require.NoError(t, err)

	require.Len(t, chart.Transforms, 1)
	fold := chart.Transforms[0].(vegalite.Fold)
	assert.Equal(t, []string{"x", "y"}, fold.Fold)
	assert.Equal(t, "index", chart.Encoding.X.Field)
	assert.Equal(t, "value", chart.Encoding.Y.Field)
	assert.Equal(t, "column", chart.Encoding.Color.Field)
	assert.Nil(t, chart.Encoding.Column)
	require.NotNil(t, chart.Encoding.Y.Stack)
	assert.False(t, *chart.Encoding.Y.Stack)
}

func TestPlot_SmallTableBar(t *testing.T) {
	chart, err := Plot(xyFrame(5), "bar", nil)
	require.NoError(t, err)

	require.NotNil(t, chart.Encoding.Column)
	assert.Equal(t, "index", chart.Encoding.Column.Field)
	assert.Equal(t, "column", chart.Encoding.X.Field)
	assert.Equal(t, vegalite.Nominal, chart.Encoding.X.Type)
	assert.Equal(t, 1.0, chart.Encoding.Opacity.Value)

	doc, err := chart.ToDict()
	require.NoError(t, err)
	enc := doc["encoding"].(map[string]interface{})
	assert.Contains(t, enc, "column")
}

func TestPlot_TableXY(t *testing.T) {
	f := xyFrame(20).Add("z", seq(20))

	tests := []struct {
		name   string
		kind   string
		opts   Options
		check  func(t *testing.T, c *vegalite.Chart)
		errors error
	}{
		{
			name: "explicit x and y",
			kind: "line",
			opts: Options{"x": "x", "y": "z"},
			check: func(t *testing.T, c *vegalite.Chart) {
				assert.Equal(t, "x", c.Encoding.X.Field)
				assert.Equal(t, []string{"z"}, c.Transforms[0].(vegalite.Fold).Fold)
			},
		},
		{
			name: "y list",
			kind: "line",
			opts: Options{"y": []string{"z", "y"}},
			check: func(t *testing.T, c *vegalite.Chart) {
				assert.Equal(t, []string{"z", "y"}, c.Transforms[0].(vegalite.Fold).Fold)
			},
		},
		{
			name: "area stacks by default",
			kind: "area",
			check: func(t *testing.T, c *vegalite.Chart) {
				assert.True(t, *c.Encoding.Y.Stack)
				assert.Nil(t, c.Mark.Opacity)
			},
		},
		{
			name: "unstacked area",
			kind: "area",
			opts: Options{"stacked": false},
			check: func(t *testing.T, c *vegalite.Chart) {
				assert.False(t, *c.Encoding.Y.Stack)
				assert.True(t, c.Mark.Line)
				require.NotNil(t, c.Mark.Opacity)
				assert.Equal(t, 0.5, *c.Mark.Opacity)
			},
		},
		{
			name: "barh swaps axes",
			kind: "barh",
			check: func(t *testing.T, c *vegalite.Chart) {
				assert.Equal(t, "index", c.Encoding.Y.Field)
				assert.Equal(t, "value", c.Encoding.X.Field)
			},
		},
		{
			name: "subplots facet",
			kind: "line",
			opts: Options{"subplots": true, "layout": []int{-1, 2}},
			check: func(t *testing.T, c *vegalite.Chart) {
				require.NotNil(t, c.Encoding.Facet)
				assert.Equal(t, "column", c.Encoding.Facet.Field)
				assert.Equal(t, 2, c.Encoding.Facet.Columns)
				assert.Zero(t, c.Columns)
			},
		},
		{
			name:   "y equals x",
			kind:   "line",
			opts:   Options{"x": "x", "y": "x"},
			errors: ErrConfiguration,
		},
		{
			name:   "unknown y",
			kind:   "line",
			opts:   Options{"y": "nope"},
			errors: ErrConfiguration,
		},
		{
			name:   "bad subplot layout",
			kind:   "line",
			opts:   Options{"subplots": true, "layout": []int{1, 1}},
			errors: ErrConfiguration,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chart, err := Plot(f, tt.kind, tt.opts)
			if tt.errors != nil {
				assert.True(t, errors.Is(err, tt.errors), "got %v", err)
				return
			}
			require.NoError(t, err)
			tt.check(t, chart)
		})
	}
}

func TestPlot_Scatter(t *testing.T) {
	f := frame.New().
		Add(0, []float64{1, 2}).
		Add(1, []float64{3, 4}).
		Add(2, []string{"a", "b"}).
		Add(3, []float64{5, 6}).
		Add("extra", []float64{7, 8})

	chart, err := Plot(f, "scatter", Options{"x": 0, "y": 1, "c": 2, "s": 3})
	require.NoError(t, err)
	assert.Equal(t, "0", chart.Encoding.X.Field)
	assert.Equal(t, "1", chart.Encoding.Y.Field)
	assert.Equal(t, "2", chart.Encoding.Color.Field)
	assert.Equal(t, vegalite.Nominal, chart.Encoding.Color.Type)
	assert.Equal(t, "3", chart.Encoding.Size.Field)
	assert.Equal(t, []string{"0", "1", "2", "3"}, chart.Table.Columns())
	assert.Equal(t, "point", chart.Mark.Type)

	chart, err = Plot(f, "scatter", Options{"x": 0, "y": 0})
	require.NoError(t, err)
	assert.Equal(t, []string{"0"}, chart.Table.Columns())

	_, err = Plot(f, "scatter", Options{"x": 0})
	assert.True(t, errors.Is(err, ErrConfiguration))

	_, err = Plot(frame.NewSeries("v", []float64{1}), "scatter", nil)
	assert.ErrorIs(t, err, ErrScatterRequiresTable)
}

func TestPlot_Errors(t *testing.T) {
	_, err := Plot(42, "line", nil)
	assert.True(t, errors.Is(err, ErrUnsupportedType))

	_, err = Plot((*frame.Series)(nil), "line", nil)
	assert.True(t, errors.Is(err, ErrUnsupportedType))

	_, err = Plot(frame.NewSeries("v", []float64{1}), "hexbin", nil)
	var opErr *OperationError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, "hexbin", opErr.Kind)
	assert.Equal(t, ShapeSeries, opErr.Shape)
	assert.True(t, errors.Is(err, ErrUnsupportedOperation))

	_, err = Plot(xyFrame(3), "pie", nil)
	assert.True(t, errors.Is(err, ErrUnsupportedOperation))
}

func TestPlot_AcceptsTablesAndValues(t *testing.T) {
	tab := new(table.Builder).Add("a", []float64{1, 2}).Add("b", []float64{3, 4}).Done()
	chart, err := Plot(tab, "line", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, chart.Transforms[0].(vegalite.Fold).Fold)

	_, err = Plot(*frame.NewSeries("v", []float64{1}), "line", nil)
	require.NoError(t, err)
}

func TestPlot_DoesNotMutateInput(t *testing.T) {
	f := xyFrame(4)
	before := f.Copy()
	_, err := Plot(f, "bar", Options{"subplots": true})
	require.NoError(t, err)
	_, err = Plot(f, "kde", nil)
	require.NoError(t, err)
	assert.Equal(t, before.Columns(), f.Columns())
	assert.Equal(t, before.Column("x"), f.Column("x"))
	assert.Equal(t, before.Index(), f.Index())
}

func TestPlotter_StrictIndex(t *testing.T) {
	idx := frame.MultiIndexFromProduct([]any{"a", "b"}, []any{1, 2})
	s := frame.NewSeries("v", []float64{1, 2, 3, 4}).WithIndex(idx)

	_, err := NewPlotter(&PlotterConfig{StrictIndex: true}).Plot(s, "line", nil)
	assert.True(t, errors.Is(err, ErrUnsupportedDataShape))

	chart, err := NewPlotter(nil).Plot(s, "line", nil)
	require.NoError(t, err)
	assert.Equal(t, vegalite.Nominal, chart.Encoding.X.Type)
}

func TestPlotter_NotInteractive(t *testing.T) {
	p, _ := observedPlotter(false)
	chart, err := p.Plot(xyFrame(3), "line", nil)
	require.NoError(t, err)
	assert.Empty(t, chart.Params)
}
