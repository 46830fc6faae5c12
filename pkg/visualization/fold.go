// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package visualization

import (
	"github.com/aclements/go-gg/table"

	"github.com/jurgen-paul/altair-pandas/pkg/vegalite"
)

// Field names produced by a fold.
const (
	FoldCategory = "column"
	FoldValue    = "value"
)

// FoldSpec declares that Columns are read as (Category, Value) pairs,
// one record per row and column. No data is copied; the fold is carried
// into the chart as a transform.
type FoldSpec struct {
	Columns  []string
	Category string
	Value    string
}

// NewFold declares a fold of columns of t. Empty category and value
// names default to FoldCategory and FoldValue.
func NewFold(t *table.Table, columns []string, category, value string) (FoldSpec, error) {
	if len(columns) == 0 {
		return FoldSpec{}, configErrorf("fold", "no columns to fold")
	}
	have := make(map[string]bool)
	for _, col := range t.Columns() {
		have[col] = true
	}
	for _, col := range columns {
		if !have[col] {
			return FoldSpec{}, configErrorf("fold", "no column %q", col)
		}
	}
	if category == "" {
		category = FoldCategory
	}
	if value == "" {
		value = FoldValue
	}
	return FoldSpec{
		Columns:  append([]string(nil), columns...),
		Category: category,
		Value:    value,
	}, nil
}

// Transform returns the fold as a chart transform.
func (f FoldSpec) Transform() vegalite.Fold {
	return vegalite.Fold{
		Fold: append([]string(nil), f.Columns...),
		As:   [2]string{f.Category, f.Value},
	}
}
