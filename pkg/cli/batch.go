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

	"github.com/plateforge/plateforge/pkg/batch"
	"github.com/plateforge/plateforge/pkg/events"
)

func batchCmd() *cli.Command {
	return &cli.Command{
		Name:                  "batch",
		EnableShellCompletion: true,
		Usage:                 "Validate (and optionally plan) a manifest of designs",
		Description: `Validate every design in a YAML or JSON manifest concurrently and
report an aggregate summary. With --plan, valid designs additionally get
a build plan written under the output directory, one subdirectory per
design.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "manifest",
				Aliases:  []string{"m"},
				Required: true,
				Usage:    "manifest file path (YAML or JSON)",
			},
			&cli.StringFlag{
				Name:    "output-dir",
				Aliases: []string{"O"},
				Value:   ".",
				Usage:   "directory for generated build plans",
			},
			&cli.IntFlag{
				Name:    "parallelism",
				Aliases: []string{"p"},
				Value:   batch.DefaultParallelism,
				Usage:   "maximum number of designs processed concurrently",
			},
			&cli.BoolFlag{
				Name:  "plan",
				Usage: "run the generation pipeline for valid designs",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			manifest, err := batch.LoadManifest(cmd.String("manifest"))
			if err != nil {
				return err
			}

			dispatcher := events.NewDispatcher()
			dispatcher.Subscribe(events.NameValidationCompleted, func(e events.Event) {
				if vc, ok := e.(events.ValidationCompleted); ok {
					slog.Debug("design validated",
						"is_valid", vc.IsValid,
						"errors", vc.ErrorCount,
						"warnings", vc.WarningCount)
				}
			})

			runner := &batch.Runner{
				Version:     version,
				Parallelism: cmd.Int("parallelism"),
				Plan:        cmd.Bool("plan"),
				Dispatcher:  dispatcher,
			}

			summary, err := runner.Run(ctx, manifest, cmd.String("output-dir"))
			if err != nil {
				return fmt.Errorf("batch run failed: %w", err)
			}

			if err := serializeTo(ctx, cmd, summary); err != nil {
				return err
			}
			if summary.Failed > 0 {
				return fmt.Errorf("%d of %d designs failed to process", summary.Failed, summary.Total)
			}
			return nil
		},
	}
}
