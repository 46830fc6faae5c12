// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package visualization

import (
	"github.com/aclements/go-gg/table"

	"github.com/jurgen-paul/altair-pandas/pkg/vegalite"
)

// markDef applies the mark-level style options to base: "alpha" sets the
// mark opacity and "color" the mark color.
func (c *call) markDef(base vegalite.Mark) (*vegalite.Mark, error) {
	m := base
	if c.opts.Has("alpha") {
		alpha, err := c.opts.Float("alpha", 0)
		if err != nil {
			return nil, err
		}
		m.Opacity = &alpha
	}
	if c.opts.Has("color") {
		color, err := c.opts.String("color", "")
		if err != nil {
			return nil, err
		}
		m.Color = color
	}
	return &m, nil
}

// column resolves the option key to a column of t.
func column(t *table.Table, key string, label interface{}) (string, error) {
	name := ValidColumn(label)
	if !hasColumn(t, name) {
		return "", configErrorf(key, "no column %q", name)
	}
	return name, nil
}

func hasColumn(t *table.Table, name string) bool {
	for _, col := range t.Columns() {
		if col == name {
			return true
		}
	}
	return false
}

// field returns a reference to column col of t with its inferred type.
func field(t *table.Table, col string) *vegalite.FieldDef {
	return vegalite.Field(col, vegalite.InferType(t.Column(col)))
}

func tooltip(t *table.Table, cols ...string) []*vegalite.FieldDef {
	out := make([]*vegalite.FieldDef, len(cols))
	for i, col := range cols {
		out[i] = field(t, col)
	}
	return out
}

// project returns the table restricted to cols, in that order.
func project(t *table.Table, cols []string) *table.Table {
	b := new(table.Builder)
	for _, col := range cols {
		b.Add(col, t.MustColumn(col))
	}
	return b.Done()
}
