// Package design defines the flat parameter set describing one name-plate
// design and typed accessors over it.
//
// A Config is deliberately a loose mapping rather than a fixed struct: designs
// arrive from JSON project files, YAML batch manifests, and HTTP query
// parameters, and the validation engine must distinguish "field absent" from
// "field zero" and report wrong-typed values instead of failing to decode.
package design

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	pferrors "github.com/plateforge/plateforge/pkg/errors"
)

// Canonical field names. All dimensions are millimeters.
const (
	FieldTextLine1      = "text_line_1"
	FieldTextLine2      = "text_line_2"
	FieldPlateLength    = "plate_length"
	FieldPlateWidth     = "plate_width"
	FieldPlateThickness = "plate_thickness"
	FieldLetterDepth    = "letter_depth"
	FieldTextSize       = "text_size"
	FieldLineSpacing    = "line_spacing"
	FieldFont           = "font"
	FieldMaterial       = "material"
	FieldFinish         = "finish"
)

// RequiredFields is the fixed set of fields that must be present for a
// design to be structurally validated, in reporting order.
var RequiredFields = []string{
	FieldTextLine1,
	FieldTextLine2,
	FieldPlateLength,
	FieldPlateWidth,
	FieldPlateThickness,
	FieldLetterDepth,
}

// Config is a flat mapping of named design parameters. Numeric fields hold
// millimeter values; descriptive fields (font, material, finish) are free text.
// Callers construct a Config, pass it by value into the validator, and discard
// or persist it afterward. A Config is never mutated by the validation engine.
type Config map[string]any

// DefaultConfig returns the stock bilingual library sign design.
func DefaultConfig() Config {
	return Config{
		FieldTextLine1:      "KIRJASTO",
		FieldTextLine2:      "LIBRARY",
		FieldPlateLength:    160.0,
		FieldPlateWidth:     80.0,
		FieldPlateThickness: 7.0,
		FieldLetterDepth:    4.0,
		FieldFont:           "Quicksand-Regular",
		FieldTextSize:       25.0,
		FieldLineSpacing:    35.0,
		FieldMaterial:       "PLA Standard",
		FieldFinish:         "Standard (as-printed)",
	}
}

// Has reports whether the field is present in the config.
func (c Config) Has(field string) bool {
	_, ok := c[field]
	return ok
}

// Number returns the numeric value of a field. Missing fields return (0,
// false, nil). A present value of a non-numeric type returns a structured
// INVALID_INPUT error instead of panicking, so callers can surface the
// mismatch rather than crash.
func (c Config) Number(field string) (float64, bool, error) {
	raw, ok := c[field]
	if !ok {
		return 0, false, nil
	}

	switch v := raw.(type) {
	case float64:
		return v, true, nil
	case float32:
		return float64(v), true, nil
	case int:
		return float64(v), true, nil
	case int64:
		return float64(v), true, nil
	case uint64:
		return float64(v), true, nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, true, pferrors.Newf(pferrors.ErrCodeInvalidInput,
				"field %q is not numeric (got %q)", field, v.String())
		}
		return f, true, nil
	default:
		return 0, true, pferrors.Newf(pferrors.ErrCodeInvalidInput,
			"field %q is not numeric (got %T)", field, raw)
	}
}

// Text returns the string value of a field, or "" when absent. A present
// non-string value returns a structured INVALID_INPUT error.
func (c Config) Text(field string) (string, error) {
	raw, ok := c[field]
	if !ok {
		return "", nil
	}

	s, ok := raw.(string)
	if !ok {
		return "", pferrors.Newf(pferrors.ErrCodeInvalidInput,
			"field %q is not text (got %T)", field, raw)
	}
	return s, nil
}

// Clone returns a shallow copy of the config. Values are plain scalars so a
// shallow copy is a full copy in practice.
func (c Config) Clone() Config {
	out := make(Config, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// MissingRequired returns the required fields absent from the config, in
// canonical order.
func (c Config) MissingRequired() []string {
	var missing []string
	for _, field := range RequiredFields {
		if !c.Has(field) {
			missing = append(missing, field)
		}
	}
	return missing
}

var titleCaser = cases.Title(language.English)

// Label renders a field name for human-readable messages:
// "plate_length" becomes "Plate Length".
func Label(field string) string {
	return titleCaser.String(strings.ReplaceAll(field, "_", " "))
}

// FormatValue renders a millimeter value the way it was entered: integral
// values print without a decimal point ("20"), fractional values keep their
// fraction ("2.5").
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatRatio renders an aspect ratio with one decimal place, e.g. "6.0:1".
func FormatRatio(ratio float64) string {
	return fmt.Sprintf("%.1f:1", ratio)
}
