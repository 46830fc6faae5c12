// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

// Package specdiff compares chart documents. Both sides are decoded from
// JSON or YAML (optionally zstd-compressed) and re-encoded canonically
// before comparing, so key order and formatting never count as a change.
package specdiff

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"gopkg.in/yaml.v3"

	"github.com/jurgen-paul/altair-pandas/pkg/output"
)

// Options controls a comparison.
type Options struct {
	// IgnoreData compares chart structure only. Dataset rows are dropped
	// and dataset names are replaced by their position.
	IgnoreData bool
	// Threshold is the similarity at or above which documents match.
	// Zero means documents must be identical.
	Threshold float64
}

// Result is the outcome of a comparison.
type Result struct {
	Matched    bool
	Similarity float64
	Diff       string
}

// Canonicalize decodes a chart document and re-encodes it as indented
// JSON with sorted keys.
func Canonicalize(data []byte, ignoreData bool) (string, error) {
	data, err := output.Decompress(data)
	if err != nil {
		return "", err
	}
	var doc map[string]interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return "", fmt.Errorf("failed to parse chart: %w", err)
	}
	if doc == nil {
		return "", fmt.Errorf("chart document is empty")
	}
	if ignoreData {
		stripData(doc)
	}
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode chart: %w", err)
	}
	return string(out), nil
}

// stripData replaces dataset names with dataset_<n> in sorted order and
// drops the rows.
func stripData(doc map[string]interface{}) {
	datasets, _ := doc["datasets"].(map[string]interface{})
	names := make([]string, 0, len(datasets))
	for name := range datasets {
		names = append(names, name)
	}
	sort.Strings(names)

	renamed := make(map[string]string, len(names))
	stripped := make(map[string]interface{}, len(names))
	for i, name := range names {
		renamed[name] = fmt.Sprintf("dataset_%d", i)
		stripped[renamed[name]] = []interface{}{}
	}
	if datasets != nil {
		doc["datasets"] = stripped
	}
	if data, ok := doc["data"].(map[string]interface{}); ok {
		if name, ok := data["name"].(string); ok {
			if r, ok := renamed[name]; ok {
				data["name"] = r
			}
		}
	}
}

// Compare canonicalizes a and b and compares them line by line.
func Compare(a, b []byte, opts Options) (*Result, error) {
	left, err := Canonicalize(a, opts.IgnoreData)
	if err != nil {
		return nil, fmt.Errorf("left: %w", err)
	}
	right, err := Canonicalize(b, opts.IgnoreData)
	if err != nil {
		return nil, fmt.Errorf("right: %w", err)
	}

	diffs := lineDiff(left, right)
	similarity := similarity(diffs)
	matched := left == right
	if opts.Threshold > 0 {
		matched = similarity >= opts.Threshold
	}

	result := &Result{Matched: matched, Similarity: similarity}
	if left != right {
		result.Diff = render(diffs)
	}
	return result, nil
}

// CompareFiles compares the chart documents stored at two paths.
func CompareFiles(pathA, pathB string, opts Options) (*Result, error) {
	a, err := os.ReadFile(pathA)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", pathA, err)
	}
	b, err := os.ReadFile(pathB)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", pathB, err)
	}
	return Compare(a, b, opts)
}

// UpdateGolden writes data to path, creating parent directories.
func UpdateGolden(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("failed to create golden file directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write golden file %s: %w", path, err)
	}
	return nil
}

func lineDiff(a, b string) []diffmatchpatch.Diff {
	dmp := diffmatchpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffMain(ca, cb, false)
	return dmp.DiffCharsToLines(diffs, lines)
}

// similarity is the share of text the two sides have in common.
func similarity(diffs []diffmatchpatch.Diff) float64 {
	common, total := 0, 0
	for _, d := range diffs {
		total += len(d.Text)
		if d.Type == diffmatchpatch.DiffEqual {
			common += len(d.Text)
		}
	}
	if total == 0 {
		return 1.0
	}
	return float64(common) / float64(total)
}

// render formats line diffs with -/+ prefixes and elides long runs of
// unchanged lines.
func render(diffs []diffmatchpatch.Diff) string {
	var sb strings.Builder
	sb.WriteString("--- left\n")
	sb.WriteString("+++ right\n")

	for _, d := range diffs {
		lines := strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n")
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			for _, line := range lines {
				sb.WriteString("- " + line + "\n")
			}
		case diffmatchpatch.DiffInsert:
			for _, line := range lines {
				sb.WriteString("+ " + line + "\n")
			}
		case diffmatchpatch.DiffEqual:
			if len(lines) > 4 {
				sb.WriteString("  " + lines[0] + "\n")
				sb.WriteString("  ...\n")
				sb.WriteString("  " + lines[len(lines)-1] + "\n")
				continue
			}
			for _, line := range lines {
				sb.WriteString("  " + line + "\n")
			}
		}
	}
	return sb.String()
}
