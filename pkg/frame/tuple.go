// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package frame

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"
)

var timeType = reflect.TypeOf(time.Time{})

// Tuple is a composite key: one row key of a multi-level index, or a
// label from a multi-level column structure.
type Tuple []any

// String renders the tuple in its canonical form, e.g. ('a', 1).
// Distinct tuples always render to distinct strings.
func (t Tuple) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, v := range t {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(reprScalar(v))
	}
	if len(t) == 1 {
		b.WriteByte(',')
	}
	b.WriteByte(')')
	return b.String()
}

// reprScalar renders a single tuple element. Strings are quoted so
// that 1 and '1' stay distinct; floats always carry a decimal point or
// exponent so that 1 and 1.0 stay distinct.
func reprScalar(v any) string {
	switch v := v.(type) {
	case nil:
		return "None"
	case string:
		r := strings.NewReplacer(`\`, `\\`, `'`, `\'`)
		return "'" + r.Replace(v) + "'"
	case float64:
		return formatFloat(v)
	case float32:
		return formatFloat(float64(v))
	case bool:
		if v {
			return "True"
		}
		return "False"
	case time.Time:
		return "Timestamp('" + v.Format(time.RFC3339Nano) + "')"
	case Tuple:
		return v.String()
	case fmt.Stringer:
		return "<" + v.String() + ">"
	default:
		return fmt.Sprint(v)
	}
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}
