// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package frame

import (
	"fmt"
	"reflect"
)

// Index labels the rows of a Series or Frame. It is either
// single-level (Values holds one key per row) or composite (Tuples
// holds one key tuple per row).
type Index struct {
	// Name is the index label. nil means the index is unnamed.
	Name any

	// Values is a slice of row keys for a single-level index.
	Values any

	// Tuples holds the row keys of a composite index.
	Tuples []Tuple
}

// RangeIndex returns an unnamed index 0, 1, ..., n-1.
func RangeIndex(n int) Index {
	vals := make([]int, n)
	for i := range vals {
		vals[i] = i
	}
	return Index{Values: vals}
}

// NewIndex returns a single-level index. values must be a slice.
func NewIndex(name any, values any) Index {
	if values != nil && reflect.TypeOf(values).Kind() != reflect.Slice {
		panic(fmt.Sprintf("index values must be a slice; got %T", values))
	}
	return Index{Name: name, Values: values}
}

// NewMultiIndex returns a composite index with one tuple per row.
func NewMultiIndex(name any, tuples []Tuple) Index {
	return Index{Name: name, Tuples: tuples}
}

// MultiIndexFromProduct returns the composite index formed by the
// cartesian product of levels, with the last level varying fastest.
func MultiIndexFromProduct(levels ...[]any) Index {
	tuples := []Tuple{{}}
	for _, level := range levels {
		next := make([]Tuple, 0, len(tuples)*len(level))
		for _, prefix := range tuples {
			for _, v := range level {
				key := make(Tuple, len(prefix), len(prefix)+1)
				copy(key, prefix)
				next = append(next, append(key, v))
			}
		}
		tuples = next
	}
	return Index{Tuples: tuples}
}

// IsMulti reports whether the index is composite.
func (idx Index) IsMulti() bool {
	return idx.Tuples != nil
}

// Len returns the number of row keys.
func (idx Index) Len() int {
	if idx.IsMulti() {
		return len(idx.Tuples)
	}
	if idx.Values == nil {
		return 0
	}
	return reflect.ValueOf(idx.Values).Len()
}

// Key returns the key of row i. For a composite index the key is a
// Tuple.
func (idx Index) Key(i int) any {
	if idx.IsMulti() {
		return idx.Tuples[i]
	}
	return reflect.ValueOf(idx.Values).Index(i).Interface()
}

// Strings renders every row key as a string. Composite keys use the
// canonical Tuple form.
func (idx Index) Strings() []string {
	out := make([]string, idx.Len())
	for i := range out {
		switch k := idx.Key(i).(type) {
		case Tuple:
			out[i] = k.String()
		default:
			out[i] = fmt.Sprint(k)
		}
	}
	return out
}
