// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package source

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"unicode/utf8"

	"github.com/aclements/go-gg/table"

	"github.com/jurgen-paul/altair-pandas/pkg/frame"
)

func loadDelimited(spec Spec, format Format) (*frame.Frame, error) {
	comma := ','
	if format == FormatTSV {
		comma = '\t'
	}
	if spec.Delimiter != "" {
		r, size := utf8.DecodeRuneInString(spec.Delimiter)
		if size != len(spec.Delimiter) {
			return nil, fmt.Errorf("delimiter must be a single character; got %q", spec.Delimiter)
		}
		comma = r
	}

	file, err := os.Open(spec.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", spec.Path, err)
	}
	defer func() { _ = file.Close() }()

	r := csv.NewReader(file)
	r.Comma = comma
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", spec.Path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s has no header row", spec.Path)
	}
	return fromStrings(records[0], records[1:])
}

// fromStrings builds a frame from a header and string rows, coercing
// each column to int or float64 when every cell parses. Empty cells in
// an otherwise numeric column become NaN. Short rows are padded with
// empty cells.
func fromStrings(header []string, rows [][]string) (*frame.Frame, error) {
	seen := make(map[string]bool, len(header))
	for _, name := range header {
		if seen[name] {
			return nil, fmt.Errorf("duplicate column %q", name)
		}
		seen[name] = true
	}

	cells := make([][]string, len(rows))
	for i, row := range rows {
		if len(row) > len(header) {
			return nil, fmt.Errorf("row %d has %d fields; header has %d", i+1, len(row), len(header))
		}
		cells[i] = make([]string, len(header))
		copy(cells[i], row)
	}

	for j := range header {
		if !numericWithGaps(cells, j) {
			continue
		}
		for _, row := range cells {
			if row[j] == "" {
				row[j] = "NaN"
			}
		}
	}
	return frame.FromTable(table.TableFromStrings(header, cells, true)), nil
}

// numericWithGaps reports whether column j has empty cells and every
// other cell is a number.
func numericWithGaps(rows [][]string, j int) bool {
	gaps, numbers := false, false
	for _, row := range rows {
		if row[j] == "" {
			gaps = true
			continue
		}
		if _, err := strconv.ParseFloat(row[j], 64); err != nil {
			return false
		}
		numbers = true
	}
	return gaps && numbers
}
