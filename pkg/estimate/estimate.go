/*
 * SPDX-FileCopyrightText: Copyright (c) 2026 PlateForge Authors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package estimate derives print-time and material-cost figures from a
// plate design. The estimates are deliberately coarse: they assume a
// solid rectangular plate at a 0.2mm layer height and ignore the
// embossed text volume, which is negligible for typical letter depths.
package estimate

import (
	"fmt"
	"math"

	"github.com/plateforge/plateforge/pkg/design"
)

const (
	// minutesPerCm3 approximates FDM throughput at 0.2mm layers.
	minutesPerCm3 = 10.0
	// plaDensityGPerCm3 is the density of standard PLA filament.
	plaDensityGPerCm3 = 1.24
	// DefaultPricePerKg is the assumed spool price in currency units.
	DefaultPricePerKg = 20.0
)

// Volume returns the plate volume in cm³.
func Volume(cfg design.Config) (float64, error) {
	length, _, err := cfg.Number(design.FieldPlateLength)
	if err != nil {
		return 0, err
	}
	width, _, err := cfg.Number(design.FieldPlateWidth)
	if err != nil {
		return 0, err
	}
	thickness, _, err := cfg.Number(design.FieldPlateThickness)
	if err != nil {
		return 0, err
	}
	return length * width * thickness / 1000, nil
}

// PrintTime estimates the print duration and renders it as "2h 15m".
func PrintTime(cfg design.Config) (string, error) {
	volume, err := Volume(cfg)
	if err != nil {
		return "", err
	}

	minutes := volume * minutesPerCm3
	hours := int(minutes / 60)
	mins := int(math.Mod(minutes, 60))

	return fmt.Sprintf("%dh %dm", hours, mins), nil
}

// MaterialCost estimates the filament cost for the plate, rounded to
// cents. A non-positive pricePerKg falls back to DefaultPricePerKg.
func MaterialCost(cfg design.Config, pricePerKg float64) (float64, error) {
	if pricePerKg <= 0 {
		pricePerKg = DefaultPricePerKg
	}

	volume, err := Volume(cfg)
	if err != nil {
		return 0, err
	}

	weightG := volume * plaDensityGPerCm3
	cost := weightG / 1000 * pricePerKg

	return math.Round(cost*100) / 100, nil
}
