// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package frame

import (
	"math"
	"testing"
	"time"

	"github.com/aclements/go-gg/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTuple_String(t *testing.T) {
	tests := []struct {
		name  string
		tuple Tuple
		want  string
	}{
		{"pair", Tuple{"a", 1}, "('a', 1)"},
		{"singleton", Tuple{"a"}, "('a',)"},
		{"empty", Tuple{}, "()"},
		{"float keeps decimal", Tuple{1.0, 2.5}, "(1.0, 2.5)"},
		{"quote escaped", Tuple{"it's"}, `('it\'s',)`},
		{"nil and bool", Tuple{nil, true}, "(None, True)"},
		{"nan", Tuple{math.NaN()}, "(nan,)"},
		{"nested", Tuple{"a", Tuple{1, 2}}, "('a', (1, 2))"},
		{"time", Tuple{time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)}, "(Timestamp('2024-01-02T00:00:00Z'),)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.tuple.String())
		})
	}
}

// Distinct keys must never collapse onto the same rendered string.
func TestTuple_StringInjective(t *testing.T) {
	keys := []Tuple{
		{"a", 1},
		{"a", "1"},
		{"a", 1.0},
		{"a, 1"},
		{"a", "1", ""},
		{"a'", 1},
		{`a\`, 1},
		{1, "a"},
		{Tuple{"a", 1}},
	}
	seen := make(map[string]Tuple)
	for _, k := range keys {
		s := k.String()
		if prev, ok := seen[s]; ok {
			t.Fatalf("%v and %v both render as %q", prev, k, s)
		}
		seen[s] = k
	}
}

func TestMultiIndexFromProduct(t *testing.T) {
	idx := MultiIndexFromProduct([]any{"a", "b"}, []any{1, 2, 3})

	require.True(t, idx.IsMulti())
	require.Equal(t, 6, idx.Len())
	assert.Equal(t, Tuple{"a", 1}, idx.Key(0))
	assert.Equal(t, Tuple{"a", 3}, idx.Key(2))
	assert.Equal(t, Tuple{"b", 1}, idx.Key(3))
	assert.Equal(t, []string{
		"('a', 1)", "('a', 2)", "('a', 3)",
		"('b', 1)", "('b', 2)", "('b', 3)",
	}, idx.Strings())
}

func TestRangeIndex(t *testing.T) {
	idx := RangeIndex(3)
	assert.False(t, idx.IsMulti())
	assert.Nil(t, idx.Name)
	assert.Equal(t, []int{0, 1, 2}, idx.Values)
	assert.Equal(t, []string{"0", "1", "2"}, idx.Strings())
}

func TestSeries(t *testing.T) {
	s := NewSeries("data_name", []float64{1, 2, 3})
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 3, s.Index.Len())

	s2 := s.WithIndex(NewIndex("when", []string{"a", "b", "c"}))
	assert.Equal(t, "when", s2.Index.Name)
	assert.Nil(t, s.Index.Name, "WithIndex must not modify the receiver")

	assert.Panics(t, func() { s.WithIndex(RangeIndex(2)) })
}

func TestFrame_Builder(t *testing.T) {
	f := New().
		Add("x", []int{1, 2, 3}).
		Add(7, []float64{4, 5, 6}).
		Add(Tuple{"a", 1}, []string{"p", "q", "r"})

	assert.Equal(t, []any{"x", 7, Tuple{"a", 1}}, f.Columns())
	assert.Equal(t, 3, f.Len())
	assert.Equal(t, []float64{4, 5, 6}, f.Column(7))
	assert.Equal(t, []string{"p", "q", "r"}, f.Column(Tuple{"a", 1}))
	assert.Nil(t, f.Column("missing"))
	assert.Equal(t, 3, f.Index().Len())

	assert.Panics(t, func() { f.Add("short", []int{1}) })
	assert.Panics(t, func() { f.Add("scalar", 1) })
}

func TestFrame_Copy(t *testing.T) {
	f := New().Add("x", []int{1, 2}).Add("y", []int{3, 4})
	c := f.Copy()
	c.Add("z", []int{5, 6})

	assert.Equal(t, []any{"x", "y"}, f.Columns())
	assert.Equal(t, []any{"x", "y", "z"}, c.Columns())
}

func TestFrame_SetIndexColumn(t *testing.T) {
	f := New().Add("when", []string{"a", "b"}).Add("y", []int{3, 4})

	nf, err := f.SetIndexColumn("when")
	require.NoError(t, err)
	assert.Equal(t, []any{"y"}, nf.Columns())
	assert.Equal(t, "when", nf.Index().Name)
	assert.Equal(t, []string{"a", "b"}, nf.Index().Values)
	assert.Equal(t, []any{"when", "y"}, f.Columns())

	_, err = f.SetIndexColumn("nope")
	assert.Error(t, err)
}

func TestFromTable(t *testing.T) {
	tab := new(table.Builder).
		Add("a", []string{"A", "B"}).
		Add("b", []int{1, 2}).
		Done()

	f := FromTable(tab)
	assert.Equal(t, []any{"a", "b"}, f.Columns())
	assert.Equal(t, []int{0, 1}, f.Index().Values)
}

func TestNumeric(t *testing.T) {
	tab := new(table.Builder).
		Add("s", []string{"A", "B"}).
		Add("i", []int{1, 2}).
		Add("b", []bool{true, false}).
		Add("f", []float32{1.5, 2.5}).
		Add("t", []time.Time{{}, {}}).
		Done()

	assert.Equal(t, []string{"i", "f"}, NumericColumns(tab))
	assert.True(t, IsTemporal(tab.Column("t")))
	assert.False(t, IsTemporal(tab.Column("i")))
	assert.Equal(t, []float64{1, 2}, Float64s(tab, "i"))
	assert.Equal(t, []float64{1.5, 2.5}, Float64s(tab, "f"))
	assert.Panics(t, func() { Float64s(tab, "missing") })
}
