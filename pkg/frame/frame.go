// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

// Package frame provides the Series and Frame input shapes consumed by
// the plotting engine, and helpers over go-gg tables.
//
// Series and Frame values are treated as read-only by every consumer
// in this module. Labels may be any comparable value: strings,
// integers, or Tuples from composite column structures.
package frame

import (
	"fmt"
	"reflect"

	"github.com/aclements/go-gg/table"
)

// Series is a single value column with a row index.
type Series struct {
	// Name is the series label. nil or "" means unnamed.
	Name any

	// Values is a slice with one element per row.
	Values any

	// Index labels the rows.
	Index Index
}

// NewSeries returns a series over values with a range index.
func NewSeries(name any, values any) *Series {
	n := sliceLen(values)
	return &Series{Name: name, Values: values, Index: RangeIndex(n)}
}

// WithIndex returns a copy of s that uses idx.
func (s *Series) WithIndex(idx Index) *Series {
	if idx.Len() != s.Len() {
		panic(fmt.Sprintf("index has %d rows; series has %d", idx.Len(), s.Len()))
	}
	ns := *s
	ns.Index = idx
	return &ns
}

// Len returns the number of rows.
func (s *Series) Len() int {
	return sliceLen(s.Values)
}

// Frame is an ordered set of labelled columns sharing a row index.
type Frame struct {
	labels []any
	cols   []any
	index  Index
}

// New returns an empty frame. Columns are added with Add.
func New() *Frame {
	return &Frame{}
}

// Add appends a column. values must be a slice with the same length
// as any existing column. Add returns f for chaining.
func (f *Frame) Add(label any, values any) *Frame {
	if values == nil || reflect.TypeOf(values).Kind() != reflect.Slice {
		panic(fmt.Sprintf("column %v is not a slice; got %T", label, values))
	}
	if len(f.cols) > 0 && sliceLen(values) != f.Len() {
		panic(fmt.Sprintf("column %v has %d rows; frame has %d", label, sliceLen(values), f.Len()))
	}
	if i := f.position(label); i >= 0 {
		f.cols[i] = values
		return f
	}
	f.labels = append(f.labels, label)
	f.cols = append(f.cols, values)
	if f.index.Values == nil && !f.index.IsMulti() {
		f.index = RangeIndex(sliceLen(values))
	}
	return f
}

// WithIndex replaces the row index and returns f for chaining.
func (f *Frame) WithIndex(idx Index) *Frame {
	if len(f.cols) > 0 && idx.Len() != f.Len() {
		panic(fmt.Sprintf("index has %d rows; frame has %d", idx.Len(), f.Len()))
	}
	f.index = idx
	return f
}

// FromTable wraps a go-gg table in a frame with a range index.
func FromTable(t *table.Table) *Frame {
	f := New()
	for _, col := range t.Columns() {
		f.Add(col, t.Column(col))
	}
	f.index = RangeIndex(t.Len())
	return f
}

// Columns returns the column labels in order.
func (f *Frame) Columns() []any {
	return append([]any(nil), f.labels...)
}

// Column returns the values of the column labelled label, or nil.
func (f *Frame) Column(label any) any {
	if i := f.position(label); i >= 0 {
		return f.cols[i]
	}
	return nil
}

// Index returns the row index.
func (f *Frame) Index() Index {
	return f.index
}

// Len returns the number of rows.
func (f *Frame) Len() int {
	if len(f.cols) == 0 {
		return f.index.Len()
	}
	return sliceLen(f.cols[0])
}

// Copy returns a shallow copy of f. Column slices are shared, so
// neither copy may modify column contents.
func (f *Frame) Copy() *Frame {
	return &Frame{
		labels: append([]any(nil), f.labels...),
		cols:   append([]any(nil), f.cols...),
		index:  f.index,
	}
}

// SetIndexColumn returns a copy of f in which the column labelled
// label has become the row index.
func (f *Frame) SetIndexColumn(label any) (*Frame, error) {
	i := f.position(label)
	if i < 0 {
		return nil, fmt.Errorf("no column %v", label)
	}
	nf := &Frame{index: NewIndex(label, f.cols[i])}
	for j := range f.labels {
		if j == i {
			continue
		}
		nf.labels = append(nf.labels, f.labels[j])
		nf.cols = append(nf.cols, f.cols[j])
	}
	return nf, nil
}

func (f *Frame) position(label any) int {
	for i, l := range f.labels {
		if reflect.DeepEqual(l, label) {
			return i
		}
	}
	return -1
}

func sliceLen(values any) int {
	if values == nil {
		return 0
	}
	return reflect.ValueOf(values).Len()
}
