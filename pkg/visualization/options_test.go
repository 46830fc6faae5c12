// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package visualization

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jurgen-paul/altair-pandas/pkg/frame"
)

func TestOptions(t *testing.T) {
	o := Options{
		"s":      "text",
		"f":      2,
		"i":      3.0,
		"half":   2.5,
		"b":      true,
		"nil":    nil,
		"ints":   []float64{1, 2},
		"floats": [2]int{4, 5},
		"label":  "x",
		"tuple":  frame.Tuple{"a", 1},
		"labels": []interface{}{"x", 2},
	}

	assert.True(t, o.Has("s"))
	assert.False(t, o.Has("nil"))
	assert.False(t, o.Has("missing"))

	s, err := o.String("s", "d")
	require.NoError(t, err)
	assert.Equal(t, "text", s)
	s, err = o.String("missing", "d")
	require.NoError(t, err)
	assert.Equal(t, "d", s)
	_, err = o.String("f", "")
	assert.ErrorIs(t, err, ErrConfiguration)

	f, err := o.Float("f", 0)
	require.NoError(t, err)
	assert.Equal(t, 2.0, f)

	i, err := o.Int("i", 0)
	require.NoError(t, err)
	assert.Equal(t, 3, i)
	_, err = o.Int("half", 0)
	assert.ErrorIs(t, err, ErrConfiguration)

	b, err := o.Bool("b", false)
	require.NoError(t, err)
	assert.True(t, b)
	ob, err := o.OptionalBool("nil")
	require.NoError(t, err)
	assert.Nil(t, ob)

	ints, err := o.Ints("ints")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, ints)
	floats, err := o.Floats("floats")
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5}, floats)
	_, err = o.Ints("s")
	assert.ErrorIs(t, err, ErrConfiguration)

	assert.Equal(t, []interface{}{"x"}, o.Labels("label"))
	assert.Equal(t, []interface{}{frame.Tuple{"a", 1}}, o.Labels("tuple"))
	assert.Equal(t, []interface{}{"x", 2}, o.Labels("labels"))
	assert.Nil(t, o.Labels("missing"))
}
