// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

// Package output serializes charts as JSON, YAML or standalone HTML,
// with optional theming, terminal highlighting and zstd compression.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/klauspost/compress/zstd"
	"gopkg.in/yaml.v3"

	"github.com/jurgen-paul/altair-pandas/pkg/vegalite"
)

// Format is an output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatHTML Format = "html"
)

// CompressedExt is the file extension of zstd-compressed output.
const CompressedExt = ".zst"

var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// Options controls how a chart is written.
type Options struct {
	Format    Format
	Pretty    bool
	Highlight bool   // colorize for a terminal; ignored for HTML
	Style     string // chroma style name used when highlighting
	Formatter string // chroma terminal formatter; defaults to terminal256
	Compress  bool
	Theme     string // built-in theme name or theme file; empty leaves the chart unthemed
	Title     string // HTML page title
}

// FormatFromPath guesses the format from a file name, looking through a
// trailing compression extension.
func FormatFromPath(path string) (Format, bool) {
	ext := strings.ToLower(filepath.Ext(strings.TrimSuffix(path, CompressedExt)))
	switch ext {
	case ".json", ".vl":
		return FormatJSON, true
	case ".yaml", ".yml":
		return FormatYAML, true
	case ".html", ".htm":
		return FormatHTML, true
	}
	return "", false
}

// Document returns the chart as a plain document with the named theme
// merged into its config.
func Document(chart *vegalite.Chart, theme string) (map[string]interface{}, error) {
	if chart == nil {
		return nil, fmt.Errorf("chart is nil")
	}
	doc, err := chart.ToDict()
	if err != nil {
		return nil, err
	}
	if theme == "" {
		return doc, nil
	}
	t, err := ResolveTheme(theme)
	if err != nil {
		return nil, err
	}
	cfg, _ := doc["config"].(map[string]interface{})
	doc["config"] = mergeConfig(cfg, t.VegaLiteConfig())
	return doc, nil
}

// mergeConfig merges src into dst, descending into nested objects.
func mergeConfig(dst, src map[string]interface{}) map[string]interface{} {
	if dst == nil {
		dst = make(map[string]interface{}, len(src))
	}
	for k, v := range src {
		sub, ok := v.(map[string]interface{})
		if !ok {
			dst[k] = v
			continue
		}
		existing, _ := dst[k].(map[string]interface{})
		dst[k] = mergeConfig(existing, sub)
	}
	return dst
}

// Encode renders the chart in the requested format. Highlighting and
// compression are not applied.
func Encode(chart *vegalite.Chart, opts Options) ([]byte, error) {
	doc, err := Document(chart, opts.Theme)
	if err != nil {
		return nil, err
	}

	switch opts.Format {
	case "", FormatJSON:
		if opts.Pretty {
			return json.MarshalIndent(doc, "", "  ")
		}
		return json.Marshal(doc)
	case FormatYAML:
		return yaml.Marshal(doc)
	case FormatHTML:
		return renderHTML(doc, chart.Warnings, opts)
	}
	return nil, fmt.Errorf("unsupported output format: %s", opts.Format)
}

// Write encodes the chart and writes it to w.
func Write(w io.Writer, chart *vegalite.Chart, opts Options) error {
	data, err := Encode(chart, opts)
	if err != nil {
		return err
	}
	if opts.Highlight && opts.Format != FormatHTML && !opts.Compress {
		data, err = Highlight(data, opts.Format, opts.Style, opts.Formatter)
		if err != nil {
			return err
		}
	}
	if opts.Compress {
		data, err = Compress(data)
		if err != nil {
			return err
		}
	}
	_, err = w.Write(data)
	return err
}

// WriteFile writes the chart to path. A ".zst" suffix turns on
// compression and highlighting is never applied.
func WriteFile(path string, chart *vegalite.Chart, opts Options) error {
	opts.Highlight = false
	if strings.HasSuffix(path, CompressedExt) {
		opts.Compress = true
	}
	var buf bytes.Buffer
	if err := Write(&buf, chart, opts); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// DefaultFormatter is the chroma formatter used for highlighting.
const DefaultFormatter = "terminal256"

// Highlight colorizes a JSON or YAML document with a chroma style and
// terminal formatter. Unknown styles and formatters fall back to chroma's
// defaults.
func Highlight(data []byte, format Format, style, formatterName string) ([]byte, error) {
	lexer := lexers.Get(string(format))
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	s := styles.Get(style)
	if s == nil {
		s = styles.Fallback
	}
	if formatterName == "" {
		formatterName = DefaultFormatter
	}
	formatter := formatters.Get(formatterName)
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to tokenise output: %w", err)
	}
	var buf bytes.Buffer
	if err := formatter.Format(&buf, s, iterator); err != nil {
		return nil, fmt.Errorf("failed to highlight output: %w", err)
	}
	return buf.Bytes(), nil
}

// HasStyle reports whether chroma knows the named style.
func HasStyle(name string) bool {
	_, ok := styles.Registry[strings.ToLower(name)]
	return ok
}

// Compress zstd-compresses data.
func Compress(data []byte) ([]byte, error) {
	encoder, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd encoder: %w", err)
	}
	defer func() { _ = encoder.Close() }()
	return encoder.EncodeAll(data, nil), nil
}

// IsCompressed reports whether data starts with a zstd frame header.
func IsCompressed(data []byte) bool {
	return bytes.HasPrefix(data, zstdMagic)
}

// Decompress reverses Compress. Uncompressed input is returned as is.
func Decompress(data []byte) ([]byte, error) {
	if !IsCompressed(data) {
		return data, nil
	}
	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
	}
	defer decoder.Close()
	out, err := decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress: %w", err)
	}
	return out, nil
}
