// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

// Package source loads tabular input into frames. Supported sources are
// delimited text (CSV, TSV), JSON records or columns, Excel workbooks
// and SQL query results.
package source

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jurgen-paul/altair-pandas/internal/log"
	"github.com/jurgen-paul/altair-pandas/pkg/frame"
)

// Format is the format of a data source.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatTSV  Format = "tsv"
	FormatJSON Format = "json"
	FormatXLSX Format = "xlsx"
	FormatSQL  Format = "sql"
)

// ErrUnknownFormat is returned when the source format cannot be
// determined.
var ErrUnknownFormat = errors.New("unknown source format")

// Spec describes where to read a table from.
type Spec struct {
	// Path is the input file. Ignored for SQL sources.
	Path string `yaml:"path" json:"path"`

	// Format overrides detection from the file extension.
	Format Format `yaml:"format" json:"format"`

	// Delimiter separates CSV fields. Defaults to ',' for csv and '\t'
	// for tsv.
	Delimiter string `yaml:"delimiter" json:"delimiter"`

	// Sheet selects the workbook sheet. Defaults to the first sheet.
	Sheet string `yaml:"sheet" json:"sheet"`

	// Driver, DSN and Query configure SQL sources.
	Driver string `yaml:"driver" json:"driver"`
	DSN    string `yaml:"dsn" json:"dsn"`
	Query  string `yaml:"query" json:"query"`

	// IndexCol names a column to move into the row index.
	IndexCol string `yaml:"index_col" json:"index_col"`
}

// Detect returns the format of spec: the explicit Format, FormatSQL
// when a query is given, or the format implied by the file extension.
func Detect(spec Spec) (Format, error) {
	if spec.Format != "" {
		switch spec.Format {
		case FormatCSV, FormatTSV, FormatJSON, FormatXLSX, FormatSQL:
			return spec.Format, nil
		}
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, spec.Format)
	}
	if spec.Query != "" {
		return FormatSQL, nil
	}
	switch strings.ToLower(filepath.Ext(spec.Path)) {
	case ".csv", ".txt":
		return FormatCSV, nil
	case ".tsv", ".tab":
		return FormatTSV, nil
	case ".json":
		return FormatJSON, nil
	case ".xlsx", ".xlsm":
		return FormatXLSX, nil
	}
	return "", fmt.Errorf("%w: cannot infer from path %q", ErrUnknownFormat, spec.Path)
}

// Load reads the table described by spec.
func Load(ctx context.Context, spec Spec) (*frame.Frame, error) {
	format, err := Detect(spec)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	var f *frame.Frame
	switch format {
	case FormatCSV, FormatTSV:
		f, err = loadDelimited(spec, format)
	case FormatJSON:
		f, err = loadJSON(spec.Path)
	case FormatXLSX:
		f, err = loadXLSX(spec.Path, spec.Sheet)
	case FormatSQL:
		f, err = loadSQL(ctx, spec.Driver, spec.DSN, spec.Query)
	}
	if err != nil {
		return nil, err
	}

	if spec.IndexCol != "" {
		if f, err = f.SetIndexColumn(spec.IndexCol); err != nil {
			return nil, fmt.Errorf("index_col: %w", err)
		}
	}

	log.Debug("loaded source",
		zap.String("format", string(format)),
		zap.String("path", spec.Path),
		zap.Int("rows", f.Len()),
		zap.Int("columns", len(f.Columns())),
		zap.Duration("duration", time.Since(start)))
	return f, nil
}
