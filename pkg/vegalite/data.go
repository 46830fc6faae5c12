// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package vegalite

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strings"
	"time"

	"github.com/aclements/go-gg/table"
	"github.com/google/uuid"
)

// datasetNamespace scopes the name-based UUIDs of emitted datasets.
var datasetNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://vega.github.io/vega-lite/datasets"))

// Dataset converts t into records and names them after their content.
// Identical tables always produce the same name. Non-finite floats are
// emitted as null.
func Dataset(t *table.Table) (string, []map[string]any, error) {
	cols := t.Columns()
	vals := make([]reflect.Value, len(cols))
	for i, col := range cols {
		vals[i] = reflect.ValueOf(t.Column(col))
	}
	rows := make([]map[string]any, t.Len())
	for r := range rows {
		row := make(map[string]any, len(cols))
		for i, col := range cols {
			row[col] = jsonScalar(vals[i].Index(r).Interface())
		}
		rows[r] = row
	}
	data, err := json.Marshal(rows)
	if err != nil {
		return "", nil, fmt.Errorf("failed to encode dataset: %w", err)
	}
	id := uuid.NewSHA1(datasetNamespace, data)
	return "data-" + strings.ReplaceAll(id.String(), "-", ""), rows, nil
}

func jsonScalar(v any) any {
	switch v := v.(type) {
	case float64:
		return finite(v)
	case float32:
		return finite(float64(v))
	case time.Time:
		return v.Format(time.RFC3339Nano)
	case fmt.Stringer:
		return v.String()
	}
	return v
}

// finite maps NaN and infinities to nil.
func finite(f float64) any {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return f
}
