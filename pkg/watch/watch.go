// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

// Package watch re-renders a chart whenever one of its input files
// changes, or on a cron schedule for inputs that cannot be watched.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce is used when Config.DebounceMs is zero.
const DefaultDebounce = 200 * time.Millisecond

// RenderFunc produces the output for the current state of the inputs.
type RenderFunc func(ctx context.Context) error

// Config configures a Watcher.
type Config struct {
	DebounceMs int         // quiet period before re-rendering
	Logger     *zap.Logger // defaults to a no-op logger
}

// Watcher calls a RenderFunc once at start and again after every burst
// of changes to the watched files. Renders never overlap.
type Watcher struct {
	files    map[string]bool
	dirs     []string
	render   RenderFunc
	debounce time.Duration
	logger   *zap.Logger
	watcher  *fsnotify.Watcher
}

// New creates a watcher for paths. The parent directories are watched
// so that editors which save by renaming are still seen.
func New(paths []string, render RenderFunc, config Config) (*Watcher, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no files to watch")
	}
	if render == nil {
		return nil, fmt.Errorf("render function is required")
	}
	if config.Logger == nil {
		config.Logger = zap.NewNop()
	}
	debounce := DefaultDebounce
	if config.DebounceMs > 0 {
		debounce = time.Duration(config.DebounceMs) * time.Millisecond
	}

	files := make(map[string]bool, len(paths))
	seenDir := make(map[string]bool)
	var dirs []string
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s: %w", p, err)
		}
		files[abs] = true
		if dir := filepath.Dir(abs); !seenDir[dir] {
			seenDir[dir] = true
			dirs = append(dirs, dir)
		}
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	for _, dir := range dirs {
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	return &Watcher{
		files:    files,
		dirs:     dirs,
		render:   render,
		debounce: debounce,
		logger:   config.Logger,
		watcher:  fw,
	}, nil
}

// Run renders once and then re-renders on change until ctx is done.
// Render errors are logged and do not stop the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	defer func() { _ = w.watcher.Close() }()

	w.logger.Info("Watching for changes",
		zap.Strings("directories", w.dirs),
		zap.Duration("debounce", w.debounce))
	renderAndLog(ctx, w.render, w.logger)

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Watcher stopped")
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug("Input changed",
				zap.String("file", event.Name),
				zap.String("op", event.Op.String()))
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			renderAndLog(ctx, w.render, w.logger)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error("Watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	return w.files[abs]
}

func renderAndLog(ctx context.Context, render RenderFunc, logger *zap.Logger) {
	start := time.Now()
	if err := render(ctx); err != nil {
		logger.Error("Render failed", zap.Error(err))
		return
	}
	logger.Info("Rendered", zap.Duration("duration", time.Since(start)))
}
