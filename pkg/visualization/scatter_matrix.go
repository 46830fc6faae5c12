// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package visualization

import (
	"github.com/aclements/go-gg/table"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/jurgen-paul/altair-pandas/pkg/frame"
	"github.com/jurgen-paul/altair-pandas/pkg/vegalite"
)

// scatterMatrixPanelSize is the width and height of one panel in pixels.
const scatterMatrixPanelSize = 150

// scatterMatrix draws every pair of numeric columns in a repeated grid.
//
// Options: "color" is a column name (data-driven color, scaled by the
// "colormap" scheme if given) or any other string (a constant color);
// "alpha" sets the point opacity; "tooltip" lists the tooltip fields and
// defaults to every column.
func scatterMatrix(c *call) (*vegalite.Chart, error) {
	t, err := c.data(false, nil)
	if err != nil {
		return nil, err
	}
	cols := frame.NumericColumns(t)
	if len(cols) == 0 {
		return nil, configErrorf("data", "no numeric columns to plot")
	}
	alpha, err := c.opts.Float("alpha", 1.0)
	if err != nil {
		return nil, err
	}

	enc := vegalite.Encoding{
		X:       vegalite.RepeatField("column", vegalite.Quantitative),
		Y:       vegalite.RepeatField("row", vegalite.Quantitative),
		Opacity: vegalite.Value(alpha),
	}
	if c.opts.Has("color") {
		color, err := c.opts.String("color", "")
		if err != nil {
			return nil, err
		}
		if hasColumn(t, color) {
			def := field(t, color)
			scheme, err := c.opts.String("colormap", "")
			if err != nil {
				return nil, err
			}
			if scheme != "" {
				def.Scale = &vegalite.Scale{Scheme: scheme}
			}
			enc = enc.With("color", def)
		} else {
			enc = enc.With("color", vegalite.Value(literalColor(color)))
		}
	}
	tips, err := matrixTooltip(t, c.opts["tooltip"])
	if err != nil {
		return nil, err
	}
	enc.Tooltip = tips

	inner := &vegalite.Chart{
		Mark:     &vegalite.Mark{Type: "circle"},
		Encoding: enc,
		Width:    scatterMatrixPanelSize,
		Height:   scatterMatrixPanelSize,
	}
	c.interactive(inner)
	return &vegalite.Chart{
		Table:  t,
		Repeat: &vegalite.Repeat{Row: cols, Column: cols},
		Spec:   inner,
	}, nil
}

// literalColor normalizes hex colors; named colors pass through.
func literalColor(s string) string {
	if col, err := colorful.Hex(s); err == nil {
		return col.Hex()
	}
	return s
}

// matrixTooltip resolves the "tooltip" option. Entries may be field
// definitions or column labels.
func matrixTooltip(t *table.Table, opt interface{}) ([]*vegalite.FieldDef, error) {
	if opt == nil {
		return tooltip(t, t.Columns()...), nil
	}
	var out []*vegalite.FieldDef
	for _, entry := range asLabels(opt) {
		switch e := entry.(type) {
		case *vegalite.FieldDef:
			out = append(out, e)
		case vegalite.FieldDef:
			out = append(out, &e)
		default:
			name, err := column(t, "tooltip", e)
			if err != nil {
				return nil, err
			}
			out = append(out, field(t, name))
		}
	}
	return out, nil
}
