// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package watch

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Schedule calls a RenderFunc once at start and then on a cron
// schedule. It serves SQL sources, which have no file to watch.
type Schedule struct {
	spec     string
	schedule cron.Schedule
	render   RenderFunc
	logger   *zap.Logger
}

// NewSchedule parses spec as a standard five-field cron expression or a
// descriptor such as "@hourly" or "@every 30s".
func NewSchedule(spec string, render RenderFunc, config Config) (*Schedule, error) {
	if render == nil {
		return nil, fmt.Errorf("render function is required")
	}
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("failed to parse schedule %q: %w", spec, err)
	}
	if config.Logger == nil {
		config.Logger = zap.NewNop()
	}
	return &Schedule{
		spec:     spec,
		schedule: schedule,
		render:   render,
		logger:   config.Logger,
	}, nil
}

// Next returns the first render time after t.
func (s *Schedule) Next(t time.Time) time.Time {
	return s.schedule.Next(t)
}

// Run renders once and then on schedule until ctx is done. A render that
// is still running when the next one is due causes that one to be
// skipped.
func (s *Schedule) Run(ctx context.Context) error {
	s.logger.Info("Rendering on schedule",
		zap.String("schedule", s.spec),
		zap.Time("next", s.Next(time.Now())))
	renderAndLog(ctx, s.render, s.logger)

	engine := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	engine.Schedule(s.schedule, cron.FuncJob(func() {
		renderAndLog(ctx, s.render, s.logger)
	}))
	engine.Start()

	<-ctx.Done()
	<-engine.Stop().Done()
	s.logger.Info("Schedule stopped")
	return nil
}
