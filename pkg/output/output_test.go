// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aclements/go-gg/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/jurgen-paul/altair-pandas/pkg/vegalite"
)

func lineChart() *vegalite.Chart {
	tbl := table.NewBuilder(nil).
		Add("x", []int{1, 2, 3}).
		Add("y", []float64{1.5, 2.5, 0.5}).
		Done()
	return &vegalite.Chart{
		Table: tbl,
		Mark:  &vegalite.Mark{Type: "line"},
		Encoding: vegalite.Encoding{}.
			With("x", vegalite.Field("x", vegalite.Quantitative)).
			With("y", vegalite.Field("y", vegalite.Quantitative)),
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := map[string]Format{
		"a.json":     FormatJSON,
		"a.vl":       FormatJSON,
		"a.YAML":     FormatYAML,
		"a.yml.zst":  FormatYAML,
		"a.html":     FormatHTML,
		"a.json.zst": FormatJSON,
	}
	for path, want := range tests {
		got, ok := FormatFromPath(path)
		assert.True(t, ok, path)
		assert.Equal(t, want, got, path)
	}
	_, ok := FormatFromPath("a.png")
	assert.False(t, ok)
}

func TestEncode(t *testing.T) {
	chart := lineChart()

	t.Run("json", func(t *testing.T) {
		data, err := Encode(chart, Options{Format: FormatJSON})
		require.NoError(t, err)
		assert.NotContains(t, string(data), "\n")

		var doc map[string]interface{}
		require.NoError(t, json.Unmarshal(data, &doc))
		assert.Equal(t, "line", doc["mark"])
		assert.Equal(t, vegalite.SchemaURL, doc["$schema"])
	})

	t.Run("pretty json", func(t *testing.T) {
		data, err := Encode(chart, Options{Pretty: true})
		require.NoError(t, err)
		assert.Contains(t, string(data), "\n  \"")
	})

	t.Run("yaml", func(t *testing.T) {
		data, err := Encode(chart, Options{Format: FormatYAML})
		require.NoError(t, err)
		var doc map[string]interface{}
		require.NoError(t, yaml.Unmarshal(data, &doc))
		assert.Equal(t, "line", doc["mark"])
	})

	t.Run("html", func(t *testing.T) {
		c := lineChart()
		c.Warn("bins <ignored>")
		data, err := Encode(c, Options{Format: FormatHTML, Title: "A & B", Theme: "light"})
		require.NoError(t, err)
		page := string(data)
		assert.True(t, strings.HasPrefix(page, "<!DOCTYPE html>"))
		assert.Contains(t, page, "<title>A &amp; B</title>")
		assert.Contains(t, page, VegaEmbedURL)
		assert.Contains(t, page, "background: #ffffff")
		assert.Contains(t, page, "bins &lt;ignored&gt;")
		assert.Contains(t, page, `vegaEmbed("#vis", {`)
	})

	t.Run("errors", func(t *testing.T) {
		_, err := Encode(chart, Options{Format: "png"})
		assert.Error(t, err)
		_, err = Encode(chart, Options{Theme: "neon"})
		assert.Error(t, err)
		_, err = Encode(nil, Options{})
		assert.Error(t, err)
	})
}

func TestDocument_Theme(t *testing.T) {
	doc, err := Document(lineChart(), "teradata")
	require.NoError(t, err)

	cfg := doc["config"].(map[string]interface{})
	view := cfg["view"].(map[string]interface{})
	// Theme keys merge into the existing view config.
	assert.Equal(t, float64(vegalite.DefaultContinuousWidth), view["continuousWidth"])
	assert.Equal(t, "#3a3a3a", view["stroke"])
	assert.Equal(t, "#1a1a1a", cfg["background"])
	assert.Equal(t, []string{"#f37021", "#00233d", "#fbbf24", "#10b981"},
		cfg["range"].(map[string]interface{})["category"])

	plain, err := Document(lineChart(), "")
	require.NoError(t, err)
	assert.NotContains(t, plain["config"], "background")
}

func TestWrite(t *testing.T) {
	chart := lineChart()

	t.Run("highlight", func(t *testing.T) {
		var plain, colored bytes.Buffer
		require.NoError(t, Write(&plain, chart, Options{Format: FormatJSON, Pretty: true}))
		require.NoError(t, Write(&colored, chart, Options{Format: FormatJSON, Pretty: true, Highlight: true, Style: "monokai"}))
		assert.Contains(t, colored.String(), "\x1b[")
		assert.NotContains(t, plain.String(), "\x1b[")
	})

	t.Run("compress round trip", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, chart, Options{Format: FormatYAML, Compress: true}))
		assert.True(t, IsCompressed(buf.Bytes()))

		data, err := Decompress(buf.Bytes())
		require.NoError(t, err)
		want, err := Encode(chart, Options{Format: FormatYAML})
		require.NoError(t, err)
		assert.Equal(t, string(want), string(data))
	})

	t.Run("decompress passes plain data through", func(t *testing.T) {
		data, err := Decompress([]byte("{}"))
		require.NoError(t, err)
		assert.Equal(t, "{}", string(data))
	})
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "chart.json.zst")
	require.NoError(t, WriteFile(path, lineChart(), Options{Format: FormatJSON, Highlight: true}))
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, IsCompressed(raw))
	data, err := Decompress(raw)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "\x1b[")
	assert.True(t, json.Valid(data))

	assert.Error(t, WriteFile(filepath.Join(dir, "missing", "c.json"), lineChart(), Options{}))
}

func TestHasStyle(t *testing.T) {
	assert.True(t, HasStyle("monokai"))
	assert.True(t, HasStyle("Monokai"))
	assert.False(t, HasStyle("no-such-style"))
}
