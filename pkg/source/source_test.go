// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package source

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jurgen-paul/altair-pandas/pkg/frame"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDetect(t *testing.T) {
	tests := []struct {
		spec    Spec
		want    Format
		wantErr bool
	}{
		{Spec{Path: "a.csv"}, FormatCSV, false},
		{Spec{Path: "A.CSV"}, FormatCSV, false},
		{Spec{Path: "a.tsv"}, FormatTSV, false},
		{Spec{Path: "a.json"}, FormatJSON, false},
		{Spec{Path: "a.xlsx"}, FormatXLSX, false},
		{Spec{Query: "select 1"}, FormatSQL, false},
		{Spec{Path: "a.dat", Format: FormatCSV}, FormatCSV, false},
		{Spec{Path: "a.parquet"}, "", true},
		{Spec{Path: "a.csv", Format: "orc"}, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.spec.Path+string(tt.spec.Format), func(t *testing.T) {
			got, err := Detect(tt.spec)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrUnknownFormat))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoad_CSV(t *testing.T) {
	path := writeFile(t, "data.csv", "name,count,score,gappy\nA,1,1.5,2\nB,2,2.5,\nC,3,x,4\n")

	f, err := Load(context.Background(), Spec{Path: path})
	require.NoError(t, err)
	assert.Equal(t, []any{"name", "count", "score", "gappy"}, f.Columns())
	assert.Equal(t, []string{"A", "B", "C"}, f.Column("name"))
	assert.Equal(t, []int{1, 2, 3}, f.Column("count"))
	assert.Equal(t, []string{"1.5", "2.5", "x"}, f.Column("score"))

	gappy := f.Column("gappy").([]float64)
	assert.Equal(t, 2.0, gappy[0])
	assert.True(t, math.IsNaN(gappy[1]))
	assert.Equal(t, 4.0, gappy[2])
	assert.Equal(t, frame.RangeIndex(3), f.Index())
}

func TestLoad_DelimitedOptions(t *testing.T) {
	tsv := writeFile(t, "data.tsv", "a\tb\n1\t2\n")
	f, err := Load(context.Background(), Spec{Path: tsv})
	require.NoError(t, err)
	assert.Equal(t, []int{2}, f.Column("b"))

	semi := writeFile(t, "data.txt", "when;v\nmon;1\ntue\n")
	f, err = Load(context.Background(), Spec{Path: semi, Delimiter: ";", IndexCol: "when"})
	require.NoError(t, err)
	assert.Equal(t, []any{"v"}, f.Columns())
	assert.Equal(t, "when", f.Index().Name)
	assert.Equal(t, []string{"mon", "tue"}, f.Index().Values)

	_, err = Load(context.Background(), Spec{Path: semi, Delimiter: ";;"})
	assert.Error(t, err)
	_, err = Load(context.Background(), Spec{Path: semi, IndexCol: "missing"})
	assert.Error(t, err)

	dup := writeFile(t, "dup.csv", "a,a\n1,2\n")
	_, err = Load(context.Background(), Spec{Path: dup})
	assert.Error(t, err)

	empty := writeFile(t, "empty.csv", "")
	_, err = Load(context.Background(), Spec{Path: empty})
	assert.Error(t, err)
}

func TestLoad_JSON(t *testing.T) {
	t.Run("records", func(t *testing.T) {
		path := writeFile(t, "data.json", `[
			{"b": 1, "a": "x", "flag": true},
			{"b": 2.5, "a": "y", "flag": false, "late": 7},
			{"b": null, "a": 3, "flag": true}
		]`)
		f, err := Load(context.Background(), Spec{Path: path})
		require.NoError(t, err)
		assert.Equal(t, []any{"b", "a", "flag", "late"}, f.Columns())

		b := f.Column("b").([]float64)
		assert.Equal(t, 1.0, b[0])
		assert.Equal(t, 2.5, b[1])
		assert.True(t, math.IsNaN(b[2]))
		assert.Equal(t, []string{"x", "y", "3"}, f.Column("a"))
		assert.Equal(t, []bool{true, false, true}, f.Column("flag"))
		late := f.Column("late").([]float64)
		assert.True(t, math.IsNaN(late[0]))
		assert.Equal(t, 7.0, late[1])
	})

	t.Run("columns", func(t *testing.T) {
		path := writeFile(t, "cols.json", `{"n": [1, 2, 3], "s": ["a", "b", "c"]}`)
		f, err := Load(context.Background(), Spec{Path: path})
		require.NoError(t, err)
		assert.Equal(t, []int64{1, 2, 3}, f.Column("n"))
		assert.Equal(t, []string{"a", "b", "c"}, f.Column("s"))
	})

	t.Run("ragged columns", func(t *testing.T) {
		path := writeFile(t, "bad.json", `{"n": [1, 2], "s": ["a"]}`)
		_, err := Load(context.Background(), Spec{Path: path})
		assert.Error(t, err)
	})

	t.Run("scalar document", func(t *testing.T) {
		path := writeFile(t, "bad.json", `42`)
		_, err := Load(context.Background(), Spec{Path: path})
		assert.Error(t, err)
	})
}

func TestLoad_XLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.xlsx")
	book := excelize.NewFile()
	require.NoError(t, book.SetSheetRow("Sheet1", "A1", &[]interface{}{"city", "temp"}))
	require.NoError(t, book.SetSheetRow("Sheet1", "A2", &[]interface{}{"Oslo", 3}))
	require.NoError(t, book.SetSheetRow("Sheet1", "A3", &[]interface{}{"Rome", 18}))
	_, err := book.NewSheet("Other")
	require.NoError(t, err)
	require.NoError(t, book.SetSheetRow("Other", "A1", &[]interface{}{"k"}))
	require.NoError(t, book.SetSheetRow("Other", "A2", &[]interface{}{1.5}))
	require.NoError(t, book.SaveAs(path))
	require.NoError(t, book.Close())

	f, err := Load(context.Background(), Spec{Path: path})
	require.NoError(t, err)
	assert.Equal(t, []string{"Oslo", "Rome"}, f.Column("city"))
	assert.Equal(t, []int{3, 18}, f.Column("temp"))

	f, err = Load(context.Background(), Spec{Path: path, Sheet: "Other"})
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5}, f.Column("k"))

	_, err = Load(context.Background(), Spec{Path: path, Sheet: "Missing"})
	assert.Error(t, err)
}

func TestLoad_SQL(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "data.db")
	db, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)
	for _, stmt := range []string{
		"CREATE TABLE m (day TEXT, n INTEGER, v REAL)",
		"INSERT INTO m VALUES ('mon', 1, 1.5), ('tue', 2, NULL), ('wed', 3, 2.0)",
	} {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}
	require.NoError(t, db.Close())

	f, err := Load(context.Background(), Spec{Driver: "sqlite", DSN: dsn, Query: "SELECT day, n, v FROM m ORDER BY n", IndexCol: "day"})
	require.NoError(t, err)
	assert.Equal(t, []any{"n", "v"}, f.Columns())
	assert.Equal(t, []string{"mon", "tue", "wed"}, f.Index().Values)
	assert.Equal(t, []int64{1, 2, 3}, f.Column("n"))
	v := f.Column("v").([]float64)
	assert.Equal(t, 1.5, v[0])
	assert.True(t, math.IsNaN(v[1]))
	assert.Equal(t, 2.0, v[2])

	_, err = Load(context.Background(), Spec{Driver: "oracle", DSN: dsn, Query: "SELECT 1"})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "unsupported driver"))

	_, err = Load(context.Background(), Spec{Format: FormatSQL, Query: "SELECT 1"})
	assert.Error(t, err)

	_, err = Load(context.Background(), Spec{DSN: dsn, Query: "SELECT * FROM missing"})
	assert.Error(t, err)
}

func TestQuery_EmptyResult(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(1)

	_, err = db.Exec("CREATE TABLE t (a INTEGER)")
	require.NoError(t, err)

	f, err := Query(context.Background(), db, "SELECT a FROM t")
	require.NoError(t, err)
	assert.Equal(t, []any{"a"}, f.Columns())
	assert.Equal(t, 0, f.Len())
}
