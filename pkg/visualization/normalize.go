// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package visualization

import (
	"fmt"
	"reflect"

	"github.com/aclements/go-gg/table"

	"github.com/jurgen-paul/altair-pandas/pkg/frame"
)

const (
	defaultValueName  = "value"
	defaultIndexName  = "index"
	fallbackIndexName = "level_0"
)

// ValidColumn converts a column label to the string used in chart
// field references. Strings pass through; Tuples use their canonical
// form; anything else is formatted with fmt.
func ValidColumn(label interface{}) string {
	switch l := label.(type) {
	case string:
		return l
	case frame.Tuple:
		return l.String()
	default:
		return fmt.Sprint(l)
	}
}

// NormalizeSeries builds the working table for s. The value column is
// named after the series ("value" if unnamed). When materializeIndex is
// set, the index becomes the first column ("index" if unnamed). A
// composite index is flattened to its canonical string keys, or
// rejected when strict is set.
func NormalizeSeries(s *frame.Series, materializeIndex, strict bool) (*table.Table, error) {
	if !isSlice(s.Values) {
		return nil, fmt.Errorf("%w: series values must be a slice; got %T", ErrUnsupportedType, s.Values)
	}
	if strict && s.Index.IsMulti() {
		return nil, &DataShapeError{What: "multi-indexed data"}
	}
	name := s.Name
	if isUnset(name) {
		name = defaultValueName
	}
	valueCol := ValidColumn(name)

	b := new(table.Builder)
	if materializeIndex {
		idxName, idxValues, err := indexColumn(s.Index, s.Len(), []string{valueCol}, strict)
		if err != nil {
			return nil, err
		}
		b.Add(idxName, idxValues)
	}
	b.Add(valueCol, cloneSlice(s.Values))
	return b.Done(), nil
}

// NormalizeTable builds the working table for f. Labels are stringified
// before usecols is applied, so usecols may name columns either way.
// Duplicate labels after stringification are rejected.
func NormalizeTable(f *frame.Frame, materializeIndex bool, usecols []interface{}, strict bool) (*table.Table, error) {
	if strict && f.Index().IsMulti() {
		return nil, &DataShapeError{What: "multi-indexed data"}
	}
	labels := f.Columns()
	names := make([]string, len(labels))
	pos := make(map[string]int, len(labels))
	for i, l := range labels {
		if _, ok := l.(frame.Tuple); ok && strict {
			return nil, &DataShapeError{What: fmt.Sprintf("multi-level column label %v", l)}
		}
		names[i] = ValidColumn(l)
		if j, dup := pos[names[i]]; dup {
			return nil, configErrorf("columns", "labels %v and %v both map to column %q", labels[j], l, names[i])
		}
		pos[names[i]] = i
	}

	selected := make([]int, 0, len(labels))
	if usecols == nil {
		for i := range labels {
			selected = append(selected, i)
		}
	} else {
		seen := make(map[string]bool, len(usecols))
		for _, u := range usecols {
			name := ValidColumn(u)
			i, ok := pos[name]
			if !ok {
				return nil, configErrorf("usecols", "no column %q", name)
			}
			if seen[name] {
				return nil, configErrorf("usecols", "column %q listed twice", name)
			}
			seen[name] = true
			selected = append(selected, i)
		}
	}

	b := new(table.Builder)
	if materializeIndex {
		taken := make([]string, len(selected))
		for k, i := range selected {
			taken[k] = names[i]
		}
		idxName, idxValues, err := indexColumn(f.Index(), f.Len(), taken, strict)
		if err != nil {
			return nil, err
		}
		b.Add(idxName, idxValues)
	}
	for _, i := range selected {
		b.Add(names[i], cloneSlice(f.Column(labels[i])))
	}
	return b.Done(), nil
}

// indexColumn names and copies the row index for use as a column. A
// zero Index stands for the range index over n rows.
func indexColumn(idx frame.Index, n int, taken []string, strict bool) (string, interface{}, error) {
	if idx.Values == nil && !idx.IsMulti() {
		idx = frame.NewIndex(idx.Name, frame.RangeIndex(n).Values)
	}
	if idx.Len() != n {
		return "", nil, configErrorf("index", "index has %d entries; data has %d rows", idx.Len(), n)
	}

	var values interface{}
	if idx.IsMulti() {
		if strict {
			return "", nil, &DataShapeError{What: "multi-indexed data"}
		}
		values = idx.Strings()
	} else {
		values = cloneSlice(idx.Values)
	}

	collides := func(name string) bool {
		for _, t := range taken {
			if t == name {
				return true
			}
		}
		return false
	}
	if !isUnset(idx.Name) {
		name := ValidColumn(idx.Name)
		if collides(name) {
			return "", nil, configErrorf("index", "index name %q collides with a column", name)
		}
		return name, values, nil
	}
	for _, name := range []string{defaultIndexName, fallbackIndexName} {
		if !collides(name) {
			return name, values, nil
		}
	}
	return "", nil, configErrorf("index", "columns %q and %q are both taken; name the index", defaultIndexName, fallbackIndexName)
}

func isUnset(label interface{}) bool {
	return label == nil || label == ""
}

func isSlice(v interface{}) bool {
	return v != nil && reflect.TypeOf(v).Kind() == reflect.Slice
}

// cloneSlice returns a shallow copy of a slice so that the working table
// never aliases caller memory.
func cloneSlice(v interface{}) interface{} {
	rv := reflect.ValueOf(v)
	out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
	reflect.Copy(out, rv)
	return out.Interface()
}
