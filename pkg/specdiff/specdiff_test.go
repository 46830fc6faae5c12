// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package specdiff

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jurgen-paul/altair-pandas/pkg/output"
)

const base = `{
  "mark": "line",
  "data": {"name": "data-abc"},
  "datasets": {"data-abc": [{"x": 1, "y": 2}]},
  "encoding": {"x": {"field": "x", "type": "quantitative"}}
}`

func TestCompare(t *testing.T) {
	tests := []struct {
		name        string
		a, b        string
		opts        Options
		wantMatched bool
		wantDiff    []string
	}{
		{
			name:        "identical",
			a:           base,
			b:           base,
			wantMatched: true,
		},
		{
			name:        "key order and format",
			a:           base,
			b:           "encoding:\n  x: {type: quantitative, field: x}\ndatasets:\n  data-abc: [{y: 2, x: 1}]\ndata: {name: data-abc}\nmark: line\n",
			wantMatched: true,
		},
		{
			name:     "mark change",
			a:        base,
			b:        `{"mark": "bar", "data": {"name": "data-abc"}, "datasets": {"data-abc": [{"x": 1, "y": 2}]}, "encoding": {"x": {"field": "x", "type": "quantitative"}}}`,
			wantDiff: []string{`-   "mark": "line"`, `+   "mark": "bar"`},
		},
		{
			name:        "data change ignored",
			a:           base,
			b:           `{"mark": "line", "data": {"name": "data-def"}, "datasets": {"data-def": [{"x": 5}]}, "encoding": {"x": {"field": "x", "type": "quantitative"}}}`,
			opts:        Options{IgnoreData: true},
			wantMatched: true,
		},
		{
			name:        "threshold",
			a:           base,
			b:           `{"mark": "bar", "data": {"name": "data-abc"}, "datasets": {"data-abc": [{"x": 1, "y": 2}]}, "encoding": {"x": {"field": "x", "type": "quantitative"}}}`,
			opts:        Options{Threshold: 0.5},
			wantMatched: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Compare([]byte(tt.a), []byte(tt.b), tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.wantMatched, result.Matched)
			if tt.wantMatched && tt.opts.Threshold == 0 {
				assert.Equal(t, 1.0, result.Similarity)
				assert.Empty(t, result.Diff)
			}
			for _, want := range tt.wantDiff {
				assert.Contains(t, result.Diff, want)
			}
		})
	}
}

func TestCompare_Compressed(t *testing.T) {
	packed, err := output.Compress([]byte(base))
	require.NoError(t, err)

	result, err := Compare(packed, []byte(base), Options{})
	require.NoError(t, err)
	assert.True(t, result.Matched)
}

func TestCompare_Errors(t *testing.T) {
	_, err := Compare([]byte("mark: ["), []byte(base), Options{})
	assert.Error(t, err)
	_, err = Compare([]byte(base), []byte(""), Options{})
	assert.Error(t, err)
}

func TestCompareFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.json")
	b := filepath.Join(dir, "golden", "b.json")
	require.NoError(t, os.WriteFile(a, []byte(base), 0600))
	require.NoError(t, UpdateGolden(b, []byte(base)))

	result, err := CompareFiles(a, b, Options{})
	require.NoError(t, err)
	assert.True(t, result.Matched)

	_, err = CompareFiles(a, filepath.Join(dir, "missing.json"), Options{})
	assert.Error(t, err)
}

func TestCanonicalize_IgnoreData(t *testing.T) {
	out, err := Canonicalize([]byte(base), true)
	require.NoError(t, err)
	assert.Contains(t, out, `"name": "dataset_0"`)
	assert.NotContains(t, out, "data-abc")
	assert.NotContains(t, out, `"y": 2`)
}
