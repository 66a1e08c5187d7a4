package validator

import "github.com/plateforge/plateforge/pkg/header"

const (
	// Kind is the resource kind for validation results.
	Kind = "ValidationResult"
)

// CheckKind categorizes a blocking validation failure.
type CheckKind string

const (
	// KindMissingField is a required field absent from the design.
	KindMissingField CheckKind = "missing_field"

	// KindOutOfRange is a numeric field outside its [min,max] bound.
	KindOutOfRange CheckKind = "out_of_range"

	// KindTextContent is an empty or over-long text line.
	KindTextContent CheckKind = "text_content"

	// KindRelational is a cross-field physical impossibility.
	KindRelational CheckKind = "relational"
)

// Result is the outcome of validating one design. Created fresh per call
// and never shared across calls.
type Result struct {
	header.Header `json:",inline" yaml:",inline"`

	// IsValid is true if and only if Errors is empty.
	IsValid bool `json:"is_valid" yaml:"is_valid"`

	// Errors are blocking failures in deterministic check order.
	Errors []string `json:"errors" yaml:"errors"`

	// Warnings are advisory only and never affect IsValid. The validator
	// leaves this empty; the report aggregator fills it from the advisor.
	Warnings []string `json:"warnings" yaml:"warnings"`
}

// NewResult creates an empty, valid Result.
func NewResult() *Result {
	return &Result{
		IsValid:  true,
		Errors:   []string{},
		Warnings: []string{},
	}
}

// addError records a blocking failure and flips IsValid.
func (r *Result) addError(kind CheckKind, msg string) {
	r.Errors = append(r.Errors, msg)
	r.IsValid = false
	validationErrorsTotal.WithLabelValues(string(kind)).Inc()
}
