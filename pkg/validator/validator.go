/*
Copyright © 2025 Plateforge Authors
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/plateforge/plateforge/pkg/constraint"
	"github.com/plateforge/plateforge/pkg/design"
)

// MaxTextLineLength is the character limit for each text line.
const MaxTextLineLength = 50

// textWidthFactor caps text size relative to plate width.
const textWidthFactor = 0.8

// Validator evaluates design configurations against the canonical
// constraint table.
type Validator struct {
	// Version is the validator version (typically the CLI version).
	Version string
}

// Option is a functional option for configuring Validator instances.
type Option func(*Validator)

// WithVersion returns an Option that sets the Validator version string.
func WithVersion(version string) Option {
	return func(v *Validator) {
		v.Version = version
	}
}

// New creates a new Validator with the provided options.
func New(opts ...Option) *Validator {
	v := &Validator{}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate runs all structural checks against the design and returns a
// Result. The config is read-only; calling Validate twice on the same
// unmodified config yields identical results.
//
// A wrong-typed field value fails the whole operation with a structured
// INVALID_INPUT error and a nil Result.
func (v *Validator) Validate(cfg design.Config) (*Result, error) {
	result := NewResult()
	result.Init(Kind, v.Version)

	// Required fields. Missing fields short-circuit: the remaining checks
	// assume presence and are intentionally never run against a partial
	// design.
	for _, field := range cfg.MissingRequired() {
		result.addError(KindMissingField, fmt.Sprintf("Missing required field: %s", field))
	}
	if !result.IsValid {
		validationsTotal.WithLabelValues("invalid").Inc()
		slog.Debug("validation short-circuited on missing fields",
			"errors", len(result.Errors))
		return result, nil
	}

	if err := v.checkRanges(cfg, result); err != nil {
		validationsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	if err := v.checkTextContent(cfg, result); err != nil {
		validationsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	if err := v.checkRelations(cfg, result); err != nil {
		validationsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	if result.IsValid {
		validationsTotal.WithLabelValues("valid").Inc()
	} else {
		validationsTotal.WithLabelValues("invalid").Inc()
	}

	slog.Debug("validation completed",
		"is_valid", result.IsValid,
		"errors", len(result.Errors))

	return result, nil
}

// checkRanges verifies every constraint-table field present in the input
// against its inclusive [min,max] bound, exactly once per field, in
// canonical table order. Absent optional fields are skipped silently.
func (v *Validator) checkRanges(cfg design.Config, result *Result) error {
	rules, err := constraint.Rules()
	if err != nil {
		return err
	}

	for _, rule := range rules {
		value, present, err := cfg.Number(rule.Field)
		if err != nil {
			return err
		}
		if !present {
			continue
		}

		// Min and max violations are mutually exclusive since min <= max.
		switch {
		case value < rule.Min:
			result.addError(KindOutOfRange, fmt.Sprintf(
				"%s: Must be at least %s%s (got %s%s)",
				design.Label(rule.Field),
				design.FormatValue(rule.Min), rule.Unit,
				design.FormatValue(value), rule.Unit))
		case value > rule.Max:
			result.addError(KindOutOfRange, fmt.Sprintf(
				"%s: Must be at most %s%s (got %s%s)",
				design.Label(rule.Field),
				design.FormatValue(rule.Max), rule.Unit,
				design.FormatValue(value), rule.Unit))
		}
	}

	return nil
}

// checkTextContent verifies the two text lines: at least one must be
// non-blank, and neither may exceed MaxTextLineLength characters.
func (v *Validator) checkTextContent(cfg design.Config, result *Result) error {
	line1, err := cfg.Text(design.FieldTextLine1)
	if err != nil {
		return err
	}
	line2, err := cfg.Text(design.FieldTextLine2)
	if err != nil {
		return err
	}

	if strings.TrimSpace(line1) == "" && strings.TrimSpace(line2) == "" {
		result.addError(KindTextContent, "At least one text line must be non-empty")
	}

	if utf8.RuneCountInString(line1) > MaxTextLineLength {
		result.addError(KindTextContent, fmt.Sprintf(
			"Line 1: Text too long (max %d characters)", MaxTextLineLength))
	}

	if utf8.RuneCountInString(line2) > MaxTextLineLength {
		result.addError(KindTextContent, fmt.Sprintf(
			"Line 2: Text too long (max %d characters)", MaxTextLineLength))
	}

	return nil
}

// checkRelations verifies cross-field physical constraints. text_size is
// optional: its relation to plate width is only checked when present.
func (v *Validator) checkRelations(cfg design.Config, result *Result) error {
	letterDepth, _, err := cfg.Number(design.FieldLetterDepth)
	if err != nil {
		return err
	}
	plateThickness, _, err := cfg.Number(design.FieldPlateThickness)
	if err != nil {
		return err
	}
	plateWidth, _, err := cfg.Number(design.FieldPlateWidth)
	if err != nil {
		return err
	}

	if letterDepth > plateThickness {
		result.addError(KindRelational, "Letter depth cannot exceed plate thickness")
	}

	textSize, present, err := cfg.Number(design.FieldTextSize)
	if err != nil {
		return err
	}
	if present && textSize > plateWidth*textWidthFactor {
		result.addError(KindRelational,
			"Text size too large for plate width (should be max 80% of plate width)")
	}

	return nil
}
