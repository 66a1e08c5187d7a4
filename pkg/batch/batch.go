/*
 * SPDX-FileCopyrightText: Copyright (c) 2026 PlateForge Authors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package batch validates and plans many designs from a single
// manifest file, running the items concurrently with bounded
// parallelism.
package batch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/plateforge/plateforge/pkg/design"
	pferrors "github.com/plateforge/plateforge/pkg/errors"
	"github.com/plateforge/plateforge/pkg/events"
	"github.com/plateforge/plateforge/pkg/pipeline"
	"github.com/plateforge/plateforge/pkg/report"
	"github.com/plateforge/plateforge/pkg/serializer"
)

// DefaultParallelism bounds concurrent items when the caller does not.
const DefaultParallelism = 4

// Manifest is the on-disk input: a list of named designs.
type Manifest struct {
	Designs []ManifestEntry `json:"designs" yaml:"designs"`
}

// ManifestEntry is one design in a manifest. Name is optional and
// defaults to the item's position.
type ManifestEntry struct {
	Name   string        `json:"name" yaml:"name"`
	Design design.Config `json:"design" yaml:"design"`
}

// Item is the per-design outcome in a batch summary.
type Item struct {
	Name     string   `json:"name" yaml:"name"`
	IsValid  bool     `json:"is_valid" yaml:"is_valid"`
	Errors   []string `json:"errors,omitempty" yaml:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Score    int      `json:"score" yaml:"score"`
	PlanPath string   `json:"plan_path,omitempty" yaml:"plan_path,omitempty"`
	Failure  string   `json:"failure,omitempty" yaml:"failure,omitempty"`
}

// Summary aggregates a whole batch run.
type Summary struct {
	Total   int    `json:"total" yaml:"total"`
	Valid   int    `json:"valid" yaml:"valid"`
	Invalid int    `json:"invalid" yaml:"invalid"`
	Failed  int    `json:"failed" yaml:"failed"`
	Items   []Item `json:"items" yaml:"items"`
}

// Runner processes batch manifests.
type Runner struct {
	// Version is stamped into reports and plans.
	Version string

	// Parallelism bounds concurrent items. Zero or negative means
	// DefaultParallelism.
	Parallelism int

	// Plan runs the generation pipeline for every valid design,
	// writing plans under the output directory.
	Plan bool

	// Dispatcher receives progress events. May be nil.
	Dispatcher *events.Dispatcher
}

// LoadManifest reads a manifest from a YAML or JSON file, chosen by
// extension.
func LoadManifest(path string) (*Manifest, error) {
	r, err := serializer.NewFileReader(serializer.FormatFromPath(path), path)
	if err != nil {
		return nil, pferrors.Wrap(pferrors.ErrCodeNotFound, fmt.Sprintf("failed to open manifest %q", path), err)
	}
	defer r.Close()

	var m Manifest
	if err := r.Deserialize(&m); err != nil {
		return nil, pferrors.Wrap(pferrors.ErrCodeInvalidRequest, "failed to deserialize manifest", err)
	}
	if len(m.Designs) == 0 {
		return nil, pferrors.New(pferrors.ErrCodeInvalidRequest, "manifest contains no designs")
	}
	return &m, nil
}

// Run processes every manifest entry and returns the aggregate
// summary. Item order in the summary matches the manifest. A design
// that fails to process does not abort the others.
func (r *Runner) Run(ctx context.Context, m *Manifest, outputDir string) (*Summary, error) {
	parallelism := r.Parallelism
	if parallelism <= 0 {
		parallelism = DefaultParallelism
	}

	slog.Debug("starting batch run",
		slog.Int("designs", len(m.Designs)),
		slog.Int("parallelism", parallelism),
	)

	items := make([]Item, len(m.Designs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)

	for i, entry := range m.Designs {
		i, entry := i, entry
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			items[i] = r.processOne(ctx, i, entry, outputDir)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := &Summary{Total: len(items), Items: items}
	for _, item := range items {
		switch {
		case item.Failure != "":
			summary.Failed++
		case item.IsValid:
			summary.Valid++
		default:
			summary.Invalid++
		}
	}

	slog.Debug("batch run complete",
		slog.Int("valid", summary.Valid),
		slog.Int("invalid", summary.Invalid),
		slog.Int("failed", summary.Failed),
	)
	return summary, nil
}

func (r *Runner) processOne(ctx context.Context, index int, entry ManifestEntry, outputDir string) Item {
	name := entry.Name
	if name == "" {
		name = fmt.Sprintf("design-%d", index+1)
	}
	item := Item{Name: name}

	rep, err := report.New(report.WithVersion(r.Version)).Build(entry.Design)
	if err != nil {
		item.Failure = err.Error()
		return item
	}

	item.IsValid = rep.IsValid
	item.Errors = rep.Errors
	item.Warnings = rep.Warnings
	item.Score = rep.Score

	r.Dispatcher.Publish(events.ValidationCompleted{
		IsValid:      rep.IsValid,
		ErrorCount:   len(rep.Errors),
		WarningCount: len(rep.Warnings),
	})

	if r.Plan && rep.IsValid {
		gen := &pipeline.Generator{Version: r.Version, Dispatcher: r.Dispatcher}
		// Per-item subdirectories keep concurrent runs from colliding
		// on the timestamped plan filename.
		runReport, err := gen.Run(ctx, entry.Design, filepath.Join(outputDir, name))
		if err != nil {
			item.Failure = err.Error()
			return item
		}
		item.PlanPath = runReport.PlanPath
	}
	return item
}
