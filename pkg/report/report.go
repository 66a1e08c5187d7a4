// Package report composes validator and advisor outputs into a single
// structure for any caller (CLI, HTTP API, batch jobs). It derives no rules
// of its own.
package report

import (
	"log/slog"

	"github.com/plateforge/plateforge/pkg/advisor"
	"github.com/plateforge/plateforge/pkg/design"
	"github.com/plateforge/plateforge/pkg/header"
	"github.com/plateforge/plateforge/pkg/validator"
)

const (
	// Kind is the resource kind for aggregated reports.
	Kind = "ValidationReport"
)

// Report is the uniform result shape consumed by every caller. Errors block
// generation; warnings and print issues are advisory.
type Report struct {
	header.Header `json:",inline" yaml:",inline"`

	// IsValid mirrors the structural validator: true iff Errors is empty.
	IsValid bool `json:"is_valid" yaml:"is_valid"`

	// Errors are blocking structural failures.
	Errors []string `json:"errors" yaml:"errors"`

	// Warnings are advisory printability notes.
	Warnings []string `json:"warnings" yaml:"warnings"`

	// Printable reports print feasibility: true iff PrintIssues is empty.
	Printable bool `json:"printable" yaml:"printable"`

	// PrintIssues are print-feasibility problems on a typical FDM printer.
	PrintIssues []string `json:"print_issues" yaml:"print_issues"`

	// Score is the heuristic 0-100 printability score.
	Score int `json:"score" yaml:"score"`
}

// Aggregator wraps a validator and an advisor behind a single call.
type Aggregator struct {
	// Version is stamped into report headers.
	Version string

	validator *validator.Validator
	advisor   *advisor.Advisor
}

// Option is a functional option for configuring Aggregator instances.
type Option func(*Aggregator)

// WithVersion returns an Option that sets the Aggregator version string.
func WithVersion(version string) Option {
	return func(g *Aggregator) {
		g.Version = version
	}
}

// New creates a new Aggregator with the provided options.
func New(opts ...Option) *Aggregator {
	g := &Aggregator{}
	for _, opt := range opts {
		opt(g)
	}
	g.validator = validator.New(validator.WithVersion(g.Version))
	g.advisor = advisor.New(advisor.WithValidator(g.validator))
	return g
}

// Build runs the full check suite over one design and composes the outputs.
// It re-derives nothing: every list comes verbatim from the owning package.
func (g *Aggregator) Build(cfg design.Config) (*Report, error) {
	result, err := g.validator.Validate(cfg)
	if err != nil {
		return nil, err
	}

	warnings, err := g.advisor.Warnings(cfg)
	if err != nil {
		return nil, err
	}

	printable, issues, err := g.advisor.ValidateForPrint(cfg)
	if err != nil {
		return nil, err
	}

	score, err := g.advisor.Score(cfg)
	if err != nil {
		return nil, err
	}

	r := &Report{
		IsValid:     result.IsValid,
		Errors:      result.Errors,
		Warnings:    warnings,
		Printable:   printable,
		PrintIssues: issues,
		Score:       score,
	}
	r.Init(Kind, g.Version)

	slog.Debug("report built",
		"is_valid", r.IsValid,
		"errors", len(r.Errors),
		"warnings", len(r.Warnings),
		"print_issues", len(r.PrintIssues),
		"score", r.Score)

	return r, nil
}
