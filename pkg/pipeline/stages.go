/*
 * SPDX-FileCopyrightText: Copyright (c) 2026 PlateForge Authors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/plateforge/plateforge/pkg/design"
	"github.com/plateforge/plateforge/pkg/serializer"
	"github.com/plateforge/plateforge/pkg/validator"
)

// Factory supplies the stages of a generation run in execution order.
type Factory interface {
	CreateStages() []Stage
}

type defaultFactory struct {
	version string
}

// NewDefaultFactory returns the standard five-stage pipeline.
func NewDefaultFactory(version string) Factory {
	return &defaultFactory{version: version}
}

func (f *defaultFactory) CreateStages() []Stage {
	return []Stage{
		&validateStage{validator: validator.New(validator.WithVersion(f.version))},
		&layoutStage{version: f.version},
		&plateStage{},
		&textStage{},
		&exportStage{},
	}
}

// now is swapped out by tests for deterministic plan filenames.
var now = time.Now

// validateStage refuses to lay out a structurally invalid design.
type validateStage struct {
	validator *validator.Validator
}

func (*validateStage) Name() string { return StageValidate }

func (s *validateStage) Run(_ context.Context, r *run) error {
	result, err := s.validator.Validate(r.design)
	if err != nil {
		return err
	}
	if !result.IsValid {
		return fmt.Errorf("design is invalid: %s", strings.Join(result.Errors, "; "))
	}
	return nil
}

// textLine is a laid-out text line, in plate coordinates.
type textLine struct {
	body    string
	font    string
	size    float64
	depth   float64
	x, y, z float64
}

// layoutStage computes deterministic placement for the text lines. The
// plate is centered on the origin with its bottom face at z=0; lines
// sit on the top face, split symmetrically around the x axis by the
// line spacing. A single line is centered.
type layoutStage struct {
	version string
}

func (*layoutStage) Name() string { return StageLayout }

func (s *layoutStage) Run(_ context.Context, r *run) error {
	thickness, _, err := r.design.Number(design.FieldPlateThickness)
	if err != nil {
		return err
	}
	spacing, _, err := r.design.Number(design.FieldLineSpacing)
	if err != nil {
		return err
	}
	size, _, err := r.design.Number(design.FieldTextSize)
	if err != nil {
		return err
	}
	depth, _, err := r.design.Number(design.FieldLetterDepth)
	if err != nil {
		return err
	}
	line1, err := r.design.Text(design.FieldTextLine1)
	if err != nil {
		return err
	}
	line2, err := r.design.Text(design.FieldTextLine2)
	if err != nil {
		return err
	}
	font, err := r.design.Text(design.FieldFont)
	if err != nil {
		return err
	}

	r.plan = NewBuildPlan(s.version)
	r.plan.Design = r.design.Clone()

	place := func(body string, y float64) textLine {
		return textLine{
			body:  body,
			font:  font,
			size:  size,
			depth: depth,
			x:     0,
			y:     y,
			z:     thickness,
		}
	}

	switch {
	case line1 != "" && line2 != "":
		r.lines = []textLine{
			place(line1, spacing/2),
			place(line2, -spacing/2),
		}
	case line1 != "":
		r.lines = []textLine{place(line1, 0)}
	case line2 != "":
		r.lines = []textLine{place(line2, 0)}
	default:
		return fmt.Errorf("no text lines to lay out")
	}
	return nil
}

// plateStage records the base plate solid in the plan.
type plateStage struct{}

func (*plateStage) Name() string { return StagePlate }

func (s *plateStage) Run(_ context.Context, r *run) error {
	length, _, err := r.design.Number(design.FieldPlateLength)
	if err != nil {
		return err
	}
	width, _, err := r.design.Number(design.FieldPlateWidth)
	if err != nil {
		return err
	}
	thickness, _, err := r.design.Number(design.FieldPlateThickness)
	if err != nil {
		return err
	}
	material, err := r.design.Text(design.FieldMaterial)
	if err != nil {
		return err
	}
	finish, err := r.design.Text(design.FieldFinish)
	if err != nil {
		return err
	}

	r.plan.Plate = PlateSolid{
		LengthMM:     length,
		WidthMM:      width,
		ThicknessMM:  thickness,
		MaterialName: material,
		FinishName:   finish,
	}
	return nil
}

// textStage records the laid-out lines as embossed text placements.
type textStage struct{}

func (*textStage) Name() string { return StageText }

func (s *textStage) Run(_ context.Context, r *run) error {
	for _, line := range r.lines {
		r.plan.Text = append(r.plan.Text, TextPlacement{
			Body:      line.body,
			FontName:  line.font,
			SizeMM:    line.size,
			DepthMM:   line.depth,
			OriginXMM: line.x,
			OriginYMM: line.y,
			OriginZMM: line.z,
		})
	}
	return nil
}

// exportStage writes the plan as a timestamped JSON document under the
// run's output directory.
type exportStage struct{}

func (*exportStage) Name() string { return StageExportPlan }

func (s *exportStage) Run(ctx context.Context, r *run) error {
	if err := os.MkdirAll(r.outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %q: %w", r.outputDir, err)
	}

	timestamp := now().Format("20060102_150405")
	path := filepath.Join(r.outputDir, fmt.Sprintf("nameplate_%s.plan.json", timestamp))

	ser, err := serializer.NewFileWriterOrStdout(serializer.FormatJSON, path)
	if err != nil {
		return err
	}
	if closer, ok := ser.(serializer.Closer); ok {
		defer closer.Close()
	}
	if err := ser.Serialize(ctx, r.plan); err != nil {
		return fmt.Errorf("failed to serialize build plan: %w", err)
	}

	r.planPath = path
	return nil
}
