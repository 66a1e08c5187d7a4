// Package advisor produces non-blocking printability warnings, print
// feasibility checks, and a heuristic 0-100 printability score for
// name-plate designs. Nothing in this package ever blocks generation;
// the validator package owns blocking checks.
package advisor

import (
	"fmt"

	"github.com/plateforge/plateforge/pkg/design"
	"github.com/plateforge/plateforge/pkg/validator"
)

// Heuristic thresholds, in millimeters except for the ratios.
const (
	// fragileDepth is the letter depth below which letters may be fragile.
	fragileDepth = 3

	// warpThickness is the plate thickness below which plates may warp.
	warpThickness = 5

	// elongatedRatio is the length:width ratio beyond which a plate is
	// considered very elongated.
	elongatedRatio = 5

	// readabilityFactor caps text size relative to plate width before
	// readability suffers.
	readabilityFactor = 0.6

	// minFeatureSize is the smallest feature a typical FDM printer with a
	// 0.4mm nozzle resolves reliably.
	minFeatureSize = 0.8

	// minPrintableDepth is the recommended minimum letter depth for
	// reliable printing (three times the minimum feature size).
	minPrintableDepth = 2.4

	// deepLetterDepth is the letter depth beyond which prints may need
	// supports or suffer stringing.
	deepLetterDepth = 10

	// maxBedSize is the usable bed of a typical 220x220mm printer.
	maxBedSize = 220
)

// Advisor evaluates designs for printability. It is pure over its input and
// safe for concurrent use.
type Advisor struct {
	validator *validator.Validator
}

// Option is a functional option for configuring Advisor instances.
type Option func(*Advisor)

// WithValidator returns an Option that sets the structural validator used
// for scoring.
func WithValidator(v *validator.Validator) Option {
	return func(a *Advisor) {
		a.validator = v
	}
}

// New creates a new Advisor with the provided options.
func New(opts ...Option) *Advisor {
	a := &Advisor{}
	for _, opt := range opts {
		opt(a)
	}
	if a.validator == nil {
		a.validator = validator.New()
	}
	return a
}

// Warnings returns advisory messages about the design. Each condition is
// independent; zero, one, or all warnings may fire. Order is fixed for
// deterministic output. Absent fields are treated as zero, matching the
// advisory (rather than blocking) nature of these checks.
func (a *Advisor) Warnings(cfg design.Config) ([]string, error) {
	warnings := []string{}

	letterDepth, _, err := cfg.Number(design.FieldLetterDepth)
	if err != nil {
		return nil, err
	}
	if letterDepth < fragileDepth {
		warnings = append(warnings,
			"Warning: Letter depth < 3mm may be fragile when printing")
	}

	plateThickness, _, err := cfg.Number(design.FieldPlateThickness)
	if err != nil {
		return nil, err
	}
	if plateThickness < warpThickness {
		warnings = append(warnings,
			"Warning: Plate thickness < 5mm may warp during printing")
	}

	length, _, err := cfg.Number(design.FieldPlateLength)
	if err != nil {
		return nil, err
	}
	width, _, err := cfg.Number(design.FieldPlateWidth)
	if err != nil {
		return nil, err
	}
	if length > 0 && width > 0 {
		if ratio := length / width; ratio > elongatedRatio {
			warnings = append(warnings, fmt.Sprintf(
				"Warning: Aspect ratio (%s) is very elongated. Consider using supports or reducing length.",
				design.FormatRatio(ratio)))
		}
	}

	textSize, _, err := cfg.Number(design.FieldTextSize)
	if err != nil {
		return nil, err
	}
	if width > 0 && textSize > width*readabilityFactor {
		warnings = append(warnings,
			"Warning: Text size is very large relative to plate. May have poor readability or spacing issues.")
	}

	return warnings, nil
}

// ValidateForPrint checks printing feasibility on a typical FDM printer.
// It is independent of structural validation; printable is true if and only
// if issues is empty.
func (a *Advisor) ValidateForPrint(cfg design.Config) (bool, []string, error) {
	issues := []string{}

	letterDepth, _, err := cfg.Number(design.FieldLetterDepth)
	if err != nil {
		return false, nil, err
	}
	if letterDepth < minPrintableDepth {
		issues = append(issues, fmt.Sprintf(
			"Letter depth (%smm) may be too small for reliable printing. Recommended minimum: %smm",
			design.FormatValue(letterDepth), design.FormatValue(minPrintableDepth)))
	}

	if letterDepth > deepLetterDepth {
		issues = append(issues, fmt.Sprintf(
			"Letter depth (%smm) is very deep. May require supports or cause stringing.",
			design.FormatValue(letterDepth)))
	}

	length, _, err := cfg.Number(design.FieldPlateLength)
	if err != nil {
		return false, nil, err
	}
	width, _, err := cfg.Number(design.FieldPlateWidth)
	if err != nil {
		return false, nil, err
	}
	if length > maxBedSize || width > maxBedSize {
		issues = append(issues, fmt.Sprintf(
			"Design (%sx%smm) may not fit on standard print bed (%dx%dmm)",
			design.FormatValue(length), design.FormatValue(width), maxBedSize, maxBedSize))
	}

	return len(issues) == 0, issues, nil
}
