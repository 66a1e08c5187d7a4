/*
Copyright © 2026 Plateforge Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/plateforge/plateforge/pkg/advisor"
	"github.com/plateforge/plateforge/pkg/validator"
)

// warningsResult is the advisory-only output of the warnings command.
type warningsResult struct {
	Warnings    []string `json:"warnings" yaml:"warnings"`
	Printable   bool     `json:"printable" yaml:"printable"`
	PrintIssues []string `json:"print_issues" yaml:"print_issues"`
}

func warningsCmd() *cli.Command {
	return &cli.Command{
		Name:                  "warnings",
		EnableShellCompletion: true,
		Usage:                 "Show advisory printability warnings for a design",
		Description: `Show advisory printability warnings for a design. Warnings never block
generation; they flag designs that are fragile, hard to read, or slow to
print on a typical FDM printer.`,
		Flags: []cli.Flag{
			designFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadDesign(cmd.String("design"))
			if err != nil {
				return err
			}

			service := advisor.New(
				advisor.WithValidator(validator.New(validator.WithVersion(version))),
			)

			warnings, err := service.Warnings(cfg)
			if err != nil {
				return fmt.Errorf("failed to derive warnings: %w", err)
			}
			printable, issues, err := service.ValidateForPrint(cfg)
			if err != nil {
				return fmt.Errorf("failed to check print feasibility: %w", err)
			}

			return serializeTo(ctx, cmd, warningsResult{
				Warnings:    warnings,
				Printable:   printable,
				PrintIssues: issues,
			})
		},
	}
}
