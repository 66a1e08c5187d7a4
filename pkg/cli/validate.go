/*
Copyright © 2026 Plateforge Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/plateforge/plateforge/pkg/report"
)

func validateCmd() *cli.Command {
	return &cli.Command{
		Name:                  "validate",
		EnableShellCompletion: true,
		Usage:                 "Validate a name-plate design against geometric constraints",
		Description: `Validate a name-plate design including:
  - Dimension range checks (plate, text, depth, spacing)
  - Relational checks (depth vs thickness, text fit, line spacing)
  - Printability warnings and print-feasibility issues
  - A 0-100 printability score

The report can be output in JSON, YAML, or table format.`,
		Flags: []cli.Flag{
			designFlag,
			&cli.BoolFlag{
				Name:  "fail-on-error",
				Usage: "exit with a non-zero status when the design has validation errors",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadDesign(cmd.String("design"))
			if err != nil {
				return err
			}

			aggregator := report.New(
				report.WithVersion(version),
			)

			r, err := aggregator.Build(cfg)
			if err != nil {
				return fmt.Errorf("failed to build validation report: %w", err)
			}

			if err := serializeTo(ctx, cmd, r); err != nil {
				return err
			}

			if cmd.Bool("fail-on-error") && !r.IsValid {
				return fmt.Errorf("design has %d validation error(s)", len(r.Errors))
			}
			return nil
		},
	}
}
