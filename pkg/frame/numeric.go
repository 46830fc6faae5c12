// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package frame

import (
	"reflect"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
)

// IsNumeric reports whether col is a slice of integers or floats.
// Booleans are not numeric.
func IsNumeric(col any) bool {
	if col == nil {
		return false
	}
	rt := reflect.TypeOf(col)
	if rt.Kind() != reflect.Slice {
		return false
	}
	switch rt.Elem().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// IsTemporal reports whether col is a slice of time.Time.
func IsTemporal(col any) bool {
	if col == nil {
		return false
	}
	rt := reflect.TypeOf(col)
	return rt.Kind() == reflect.Slice && rt.Elem() == timeType
}

// NumericColumns returns the names of t's numeric columns in order.
func NumericColumns(t *table.Table) []string {
	var out []string
	for _, col := range t.Columns() {
		if IsNumeric(t.Column(col)) {
			out = append(out, col)
		}
	}
	return out
}

// Float64s returns column col of t converted to float64. It panics if
// the column does not exist or is not numeric.
func Float64s(t *table.Table, col string) []float64 {
	var xs []float64
	slice.Convert(&xs, t.MustColumn(col))
	return xs
}
