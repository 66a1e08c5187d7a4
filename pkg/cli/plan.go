/*
Copyright © 2026 Plateforge Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/plateforge/plateforge/pkg/events"
	"github.com/plateforge/plateforge/pkg/pipeline"
)

func planCmd() *cli.Command {
	return &cli.Command{
		Name:                  "plan",
		EnableShellCompletion: true,
		Usage:                 "Run the generation pipeline and write a build plan",
		Description: `Run the generation pipeline over a design. Stages run in order:
  - validate: structural constraint checks
  - layout: deterministic text placement in millimeters
  - plate: plate solid parameters
  - text: text placement records
  - export-plan: timestamped build plan file

The run report can be output in JSON, YAML, or table format.`,
		Flags: []cli.Flag{
			designFlag,
			&cli.StringFlag{
				Name:    "output-dir",
				Aliases: []string{"O"},
				Value:   ".",
				Usage:   "directory for the generated build plan",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadDesign(cmd.String("design"))
			if err != nil {
				return err
			}

			dispatcher := events.NewDispatcher()
			dispatcher.Subscribe(events.NameGenerationFinished, func(e events.Event) {
				if fin, ok := e.(events.GenerationFinished); ok && fin.OK {
					slog.Info("build plan written", "path", fin.PlanPath)
				}
			})

			generator := &pipeline.Generator{
				Version:    version,
				Factory:    pipeline.NewDefaultFactory(version),
				Dispatcher: dispatcher,
			}

			runReport, runErr := generator.Run(ctx, cfg, cmd.String("output-dir"))
			if runReport == nil {
				return fmt.Errorf("pipeline run failed: %w", runErr)
			}

			// The run report is written even for failed runs so that CI
			// logs show which stage broke.
			if err := serializeTo(ctx, cmd, runReport); err != nil {
				return err
			}
			if runErr != nil {
				return fmt.Errorf("generation failed: %s", runReport.Message)
			}
			return nil
		},
	}
}
