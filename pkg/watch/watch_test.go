// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew_Errors(t *testing.T) {
	render := func(context.Context) error { return nil }

	_, err := New(nil, render, Config{})
	assert.Error(t, err)

	_, err = New([]string{"a.csv"}, nil, Config{})
	assert.Error(t, err)

	_, err = New([]string{filepath.Join(t.TempDir(), "missing", "a.csv")}, render, Config{})
	assert.Error(t, err)
}

func TestWatcher_RendersOnChange(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "data.csv")
	other := filepath.Join(dir, "other.txt")
	require.NoError(t, os.WriteFile(data, []byte("a\n1\n"), 0600))

	var renders atomic.Int32
	render := func(context.Context) error {
		renders.Add(1)
		return nil
	}

	w, err := New([]string{data}, render, Config{DebounceMs: 20})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	require.Eventually(t, func() bool { return renders.Load() == 1 }, 2*time.Second, 10*time.Millisecond)

	// Files that are not watched do not trigger a render.
	require.NoError(t, os.WriteFile(other, []byte("x"), 0600))
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, int32(1), renders.Load())

	require.NoError(t, os.WriteFile(data, []byte("a\n2\n"), 0600))
	require.Eventually(t, func() bool { return renders.Load() >= 2 }, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatcher_RenderErrorsAreLogged(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "data.csv")
	require.NoError(t, os.WriteFile(data, []byte("a\n"), 0600))

	core, logs := observer.New(zapcore.ErrorLevel)
	w, err := New([]string{data}, func(context.Context) error {
		return errors.New("boom")
	}, Config{Logger: zap.New(core)})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	require.Eventually(t, func() bool {
		return logs.FilterMessage("Render failed").Len() == 1
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	assert.NoError(t, <-done)
}

func TestNewSchedule(t *testing.T) {
	render := func(context.Context) error { return nil }

	_, err := NewSchedule("not a schedule", render, Config{})
	assert.Error(t, err)
	_, err = NewSchedule("@hourly", nil, Config{})
	assert.Error(t, err)

	s, err := NewSchedule("0 * * * *", render, Config{})
	require.NoError(t, err)
	from := time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 3, 1, 11, 0, 0, 0, time.UTC), s.Next(from))
}

func TestSchedule_Run(t *testing.T) {
	var renders atomic.Int32
	s, err := NewSchedule("@every 1s", func(context.Context) error {
		renders.Add(1)
		return nil
	}, Config{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	require.Eventually(t, func() bool { return renders.Load() >= 2 }, 5*time.Second, 50*time.Millisecond)
	cancel()
	assert.NoError(t, <-done)
}
