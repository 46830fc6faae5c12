// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package source

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/jurgen-paul/altair-pandas/pkg/frame"
)

// loadJSON reads either an array of records ([{"a": 1}, ...]) or an
// object of columns ({"a": [1, ...]}). Column order follows first
// appearance in the document.
func loadJSON(path string) (*frame.Frame, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	f, err := decodeJSON(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return f, nil
}

func decodeJSON(r io.Reader) (*frame.Frame, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	var cols columnSet
	switch tok {
	case json.Delim('['):
		for row := 0; dec.More(); row++ {
			if err := expectDelim(dec, '{'); err != nil {
				return nil, fmt.Errorf("record %d: %w", row, err)
			}
			for dec.More() {
				key, err := objectKey(dec)
				if err != nil {
					return nil, err
				}
				var v interface{}
				if err := dec.Decode(&v); err != nil {
					return nil, err
				}
				cols.set(key, row, v)
			}
			if err := expectDelim(dec, '}'); err != nil {
				return nil, err
			}
			cols.rows = row + 1
		}
	case json.Delim('{'):
		for first := true; dec.More(); first = false {
			key, err := objectKey(dec)
			if err != nil {
				return nil, err
			}
			var values []interface{}
			if err := dec.Decode(&values); err != nil {
				return nil, fmt.Errorf("column %q: %w", key, err)
			}
			if !first && len(values) != cols.rows {
				return nil, fmt.Errorf("column %q has %d values; expected %d", key, len(values), cols.rows)
			}
			cols.rows = len(values)
			for row, v := range values {
				cols.set(key, row, v)
			}
		}
	default:
		return nil, fmt.Errorf("expected an array of records or an object of columns")
	}
	return cols.frame(), nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok != want {
		return fmt.Errorf("expected %q; got %v", want, tok)
	}
	return nil
}

func objectKey(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", err
	}
	key, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("expected an object key; got %v", tok)
	}
	return key, nil
}

// columnSet accumulates sparse column values by row.
type columnSet struct {
	names  []string
	values map[string]map[int]interface{}
	rows   int
}

func (c *columnSet) set(name string, row int, v interface{}) {
	if c.values == nil {
		c.values = make(map[string]map[int]interface{})
	}
	col, ok := c.values[name]
	if !ok {
		col = make(map[int]interface{})
		c.values[name] = col
		c.names = append(c.names, name)
	}
	col[row] = v
}

func (c *columnSet) frame() *frame.Frame {
	f := frame.New()
	for _, name := range c.names {
		vals := make([]interface{}, c.rows)
		for row, v := range c.values[name] {
			vals[row] = v
		}
		f.Add(name, typedColumn(vals))
	}
	return f
}

// typedColumn picks the narrowest column type that holds every non-nil
// value: int64, float64 (missing values become NaN), bool, time.Time or
// string.
func typedColumn(vals []interface{}) interface{} {
	allInt, allNum, allBool, allTime := true, true, true, true
	missing := false
	for _, v := range vals {
		switch x := v.(type) {
		case nil:
			missing = true
		case json.Number:
			allBool, allTime = false, false
			if _, err := x.Int64(); err != nil {
				allInt = false
			}
		case int64:
			allBool, allTime = false, false
		case float64:
			allInt, allBool, allTime = false, false, false
		case bool:
			allInt, allNum, allTime = false, false, false
		case time.Time:
			allInt, allNum, allBool = false, false, false
		default:
			allInt, allNum, allBool, allTime = false, false, false, false
		}
	}
	if len(vals) == 0 {
		return []string{}
	}

	switch {
	case allNum && allInt && !missing && !allBool:
		out := make([]int64, len(vals))
		for i, v := range vals {
			out[i] = toInt64(v)
		}
		return out
	case allNum && !allBool:
		out := make([]float64, len(vals))
		for i, v := range vals {
			out[i] = toFloat64(v)
		}
		return out
	case allBool && !missing:
		out := make([]bool, len(vals))
		for i, v := range vals {
			out[i] = v.(bool)
		}
		return out
	case allTime && !missing:
		out := make([]time.Time, len(vals))
		for i, v := range vals {
			out[i] = v.(time.Time)
		}
		return out
	}
	out := make([]string, len(vals))
	for i, v := range vals {
		switch x := v.(type) {
		case nil:
		case string:
			out[i] = x
		case []byte:
			out[i] = string(x)
		case time.Time:
			out[i] = x.Format(time.RFC3339Nano)
		default:
			out[i] = fmt.Sprint(x)
		}
	}
	return out
}

func toInt64(v interface{}) int64 {
	switch x := v.(type) {
	case json.Number:
		n, _ := x.Int64()
		return n
	case int64:
		return x
	case float64:
		return int64(x)
	}
	return 0
}

func toFloat64(v interface{}) float64 {
	switch x := v.(type) {
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return math.NaN()
		}
		return f
	case int64:
		return float64(x)
	case float64:
		return x
	}
	return math.NaN()
}
