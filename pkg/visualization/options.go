// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package visualization

import (
	"math"
	"reflect"

	"github.com/jurgen-paul/altair-pandas/pkg/frame"
)

// Options carries the keyword options of a plot call, e.g. "x", "y",
// "bins", "layout". A key holding nil is treated as unset. Option names
// are not validated; each plot kind reads the options it understands.
type Options map[string]interface{}

// Has reports whether key is set to a non-nil value.
func (o Options) Has(key string) bool {
	v, ok := o[key]
	return ok && v != nil
}

// String returns a string option, or def when unset.
func (o Options) String(key, def string) (string, error) {
	if !o.Has(key) {
		return def, nil
	}
	s, ok := o[key].(string)
	if !ok {
		return "", configErrorf(key, "expected a string; got %T", o[key])
	}
	return s, nil
}

// Float returns a numeric option, or def when unset.
func (o Options) Float(key string, def float64) (float64, error) {
	if !o.Has(key) {
		return def, nil
	}
	f, ok := toFloat(o[key])
	if !ok {
		return 0, configErrorf(key, "expected a number; got %T", o[key])
	}
	return f, nil
}

// Int returns an integer option, or def when unset. Floats with an
// integral value are accepted.
func (o Options) Int(key string, def int) (int, error) {
	if !o.Has(key) {
		return def, nil
	}
	n, ok := toInt(o[key])
	if !ok {
		return 0, configErrorf(key, "expected an integer; got %v", o[key])
	}
	return n, nil
}

// Bool returns a boolean option, or def when unset.
func (o Options) Bool(key string, def bool) (bool, error) {
	if !o.Has(key) {
		return def, nil
	}
	b, ok := o[key].(bool)
	if !ok {
		return false, configErrorf(key, "expected a boolean; got %T", o[key])
	}
	return b, nil
}

// OptionalBool returns a boolean option, or nil when unset.
func (o Options) OptionalBool(key string) (*bool, error) {
	if !o.Has(key) {
		return nil, nil
	}
	b, err := o.Bool(key, false)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Ints returns an integer sequence option, or nil when unset.
func (o Options) Ints(key string) ([]int, error) {
	if !o.Has(key) {
		return nil, nil
	}
	rv := reflect.ValueOf(o[key])
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, configErrorf(key, "expected a sequence of integers; got %T", o[key])
	}
	out := make([]int, rv.Len())
	for i := range out {
		n, ok := toInt(rv.Index(i).Interface())
		if !ok {
			return nil, configErrorf(key, "element %d is not an integer: %v", i, rv.Index(i).Interface())
		}
		out[i] = n
	}
	return out, nil
}

// Floats returns a numeric sequence option, or nil when unset.
func (o Options) Floats(key string) ([]float64, error) {
	if !o.Has(key) {
		return nil, nil
	}
	rv := reflect.ValueOf(o[key])
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, configErrorf(key, "expected a sequence of numbers; got %T", o[key])
	}
	out := make([]float64, rv.Len())
	for i := range out {
		f, ok := toFloat(rv.Index(i).Interface())
		if !ok {
			return nil, configErrorf(key, "element %d is not a number: %v", i, rv.Index(i).Interface())
		}
		out[i] = f
	}
	return out, nil
}

// Labels returns a column-label option as a list. A single label
// (including a Tuple) becomes a one-element list. Returns nil when
// unset.
func (o Options) Labels(key string) []interface{} {
	if !o.Has(key) {
		return nil
	}
	return asLabels(o[key])
}

func asLabels(v interface{}) []interface{} {
	if _, ok := v.(frame.Tuple); ok {
		return []interface{}{v}
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return []interface{}{v}
	}
	out := make([]interface{}, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

func toFloat(v interface{}) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

func toInt(v interface{}) (int, bool) {
	f, ok := toFloat(v)
	if !ok || f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int(f), true
}
