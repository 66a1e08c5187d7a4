/*
 * SPDX-FileCopyrightText: Copyright (c) 2026 PlateForge Authors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package pipeline turns a validated plate design into a build-plan
// document through an ordered sequence of stages. The pipeline never
// produces geometry itself; the exported plan is consumed by a host 3D
// tool.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/plateforge/plateforge/pkg/design"
	"github.com/plateforge/plateforge/pkg/events"
)

// Stage names in execution order.
const (
	StageValidate   = "validate"
	StageLayout     = "layout"
	StagePlate      = "plate"
	StageText       = "text"
	StageExportPlan = "export-plan"
)

// StageStatus reports the outcome of one stage.
type StageStatus string

const (
	StatusOK      StageStatus = "ok"
	StatusFailed  StageStatus = "failed"
	StatusSkipped StageStatus = "skipped"
)

// StageResult records one stage's outcome in a RunReport.
type StageResult struct {
	Name     string      `json:"name" yaml:"name"`
	Status   StageStatus `json:"status" yaml:"status"`
	Message  string      `json:"message,omitempty" yaml:"message,omitempty"`
	Duration string      `json:"duration" yaml:"duration"`
}

// RunReport aggregates the stage results of a generation run.
type RunReport struct {
	OK       bool          `json:"ok" yaml:"ok"`
	Message  string        `json:"message" yaml:"message"`
	PlanPath string        `json:"plan_path,omitempty" yaml:"plan_path,omitempty"`
	Stages   []StageResult `json:"stages" yaml:"stages"`
}

// run carries mutable state through the stages of a single invocation.
type run struct {
	design    design.Config
	outputDir string

	plan     *BuildPlan
	lines    []textLine
	planPath string
}

// Stage is one step of the generation pipeline. Run mutates the shared
// run state and fails the whole pipeline on error.
type Stage interface {
	Name() string
	Run(ctx context.Context, r *run) error
}

// Generator drives the stage pipeline. The zero value uses the default
// stage factory and a nil event dispatcher.
type Generator struct {
	// Version is stamped into emitted build plans.
	Version string

	// Factory supplies the stages to run. If nil, the default factory
	// is used.
	Factory Factory

	// Dispatcher receives progress events. May be nil.
	Dispatcher *events.Dispatcher
}

// Run executes the pipeline for cfg, writing the build plan under
// outputDir. The returned report always covers every stage; the error
// is non-nil only when the run failed.
func (g *Generator) Run(ctx context.Context, cfg design.Config, outputDir string) (*RunReport, error) {
	if g.Factory == nil {
		g.Factory = NewDefaultFactory(g.Version)
	}

	slog.Debug("starting generation run", slog.String("output", outputDir))

	start := time.Now()
	defer func() {
		generationDuration.Observe(time.Since(start).Seconds())
	}()

	r := &run{design: cfg, outputDir: outputDir}
	report := &RunReport{}

	var failed error
	for _, stage := range g.Factory.CreateStages() {
		if failed != nil {
			report.Stages = append(report.Stages, StageResult{
				Name:     stage.Name(),
				Status:   StatusSkipped,
				Duration: "0s",
			})
			continue
		}
		if err := ctx.Err(); err != nil {
			failed = fmt.Errorf("generation canceled before stage %s: %w", stage.Name(), err)
			report.Stages = append(report.Stages, StageResult{
				Name:     stage.Name(),
				Status:   StatusSkipped,
				Message:  failed.Error(),
				Duration: "0s",
			})
			continue
		}

		stageStart := time.Now()
		err := stage.Run(ctx, r)
		elapsed := time.Since(stageStart)
		stageDuration.WithLabelValues(stage.Name()).Observe(elapsed.Seconds())

		result := StageResult{
			Name:     stage.Name(),
			Status:   StatusOK,
			Duration: elapsed.Round(time.Microsecond).String(),
		}
		if err != nil {
			failed = fmt.Errorf("stage %s failed: %w", stage.Name(), err)
			result.Status = StatusFailed
			result.Message = err.Error()
			slog.Error("pipeline stage failed",
				slog.String("stage", stage.Name()),
				slog.String("error", err.Error()),
			)
		} else {
			slog.Debug("pipeline stage complete", slog.String("stage", stage.Name()))
		}
		report.Stages = append(report.Stages, result)
	}

	report.PlanPath = r.planPath
	if failed != nil {
		report.Message = failed.Error()
		generationTotal.WithLabelValues("error").Inc()
		g.Dispatcher.Publish(events.GenerationFinished{OK: false, Message: report.Message})
		return report, failed
	}

	report.OK = true
	report.Message = fmt.Sprintf("Successfully generated build plan at %s", r.planPath)
	generationTotal.WithLabelValues("success").Inc()
	g.Dispatcher.Publish(events.GenerationFinished{OK: true, PlanPath: r.planPath, Message: report.Message})

	slog.Debug("generation run complete", slog.String("plan", r.planPath))
	return report, nil
}

// Generate is the simple boolean boundary over Run for callers that
// only need success and a human-readable message.
func (g *Generator) Generate(ctx context.Context, cfg design.Config, outputDir string) (bool, string) {
	report, err := g.Run(ctx, cfg, outputDir)
	if err != nil {
		return false, report.Message
	}
	return true, report.Message
}
