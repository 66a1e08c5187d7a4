/*
 * SPDX-FileCopyrightText: Copyright (c) 2026 PlateForge Authors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package pipeline

import (
	"github.com/plateforge/plateforge/pkg/design"
	"github.com/plateforge/plateforge/pkg/header"
)

// PlanKind is the document kind of an exported build plan.
const PlanKind = "BuildPlan"

// scaleFactor converts millimeters to the meters a host 3D tool
// expects.
const scaleFactor = 0.001

// BuildPlan is the machine-readable document the export stage emits.
// A host 3D tool turns it into geometry; this program never does.
type BuildPlan struct {
	header.Header `json:",inline" yaml:",inline"`

	// Units is always "mm"; ScaleFactor converts to host units.
	Units       string  `json:"units" yaml:"units"`
	ScaleFactor float64 `json:"scale_factor" yaml:"scale_factor"`

	Plate PlateSolid      `json:"plate" yaml:"plate"`
	Text  []TextPlacement `json:"text" yaml:"text"`

	// Design is the configuration the plan was derived from.
	Design design.Config `json:"design" yaml:"design"`
}

// PlateSolid is the rectangular base plate, centered on the origin
// with its bottom face at z=0.
type PlateSolid struct {
	LengthMM    float64 `json:"length_mm" yaml:"length_mm"`
	WidthMM     float64 `json:"width_mm" yaml:"width_mm"`
	ThicknessMM float64 `json:"thickness_mm" yaml:"thickness_mm"`

	MaterialName string `json:"material,omitempty" yaml:"material,omitempty"`
	FinishName   string `json:"finish,omitempty" yaml:"finish,omitempty"`
}

// TextPlacement positions one embossed text line on the plate top
// face. Origins are the line's center point.
type TextPlacement struct {
	Body     string  `json:"body" yaml:"body"`
	FontName string  `json:"font,omitempty" yaml:"font,omitempty"`
	SizeMM   float64 `json:"size_mm" yaml:"size_mm"`
	DepthMM  float64 `json:"depth_mm" yaml:"depth_mm"`

	OriginXMM float64 `json:"origin_x_mm" yaml:"origin_x_mm"`
	OriginYMM float64 `json:"origin_y_mm" yaml:"origin_y_mm"`
	OriginZMM float64 `json:"origin_z_mm" yaml:"origin_z_mm"`
}

// NewBuildPlan returns an empty plan with its header set.
func NewBuildPlan(toolVersion string) *BuildPlan {
	p := &BuildPlan{
		Units:       "mm",
		ScaleFactor: scaleFactor,
	}
	p.Init(PlanKind, toolVersion)
	return p
}
