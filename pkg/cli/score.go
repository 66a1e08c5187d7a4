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
	"github.com/plateforge/plateforge/pkg/estimate"
	"github.com/plateforge/plateforge/pkg/validator"
)

// scoreResult pairs the printability score with print-cost estimates.
type scoreResult struct {
	Score        int     `json:"score" yaml:"score"`
	VolumeCm3    float64 `json:"volume_cm3" yaml:"volume_cm3"`
	PrintTime    string  `json:"print_time" yaml:"print_time"`
	MaterialCost float64 `json:"material_cost" yaml:"material_cost"`
}

func scoreCmd() *cli.Command {
	return &cli.Command{
		Name:                  "score",
		EnableShellCompletion: true,
		Usage:                 "Score a design and estimate print time and material cost",
		Description: `Score a design on a 0-100 printability scale and estimate the plate
volume, print duration, and PLA material cost at the given filament
price.`,
		Flags: []cli.Flag{
			designFlag,
			&cli.FloatFlag{
				Name:  "price-per-kg",
				Value: estimate.DefaultPricePerKg,
				Usage: "filament price in dollars per kilogram",
			},
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

			score, err := service.Score(cfg)
			if err != nil {
				return fmt.Errorf("failed to score design: %w", err)
			}
			volume, err := estimate.Volume(cfg)
			if err != nil {
				return fmt.Errorf("failed to compute plate volume: %w", err)
			}
			printTime, err := estimate.PrintTime(cfg)
			if err != nil {
				return fmt.Errorf("failed to estimate print time: %w", err)
			}
			cost, err := estimate.MaterialCost(cfg, cmd.Float("price-per-kg"))
			if err != nil {
				return fmt.Errorf("failed to estimate material cost: %w", err)
			}

			return serializeTo(ctx, cmd, scoreResult{
				Score:        score,
				VolumeCm3:    volume,
				PrintTime:    printTime,
				MaterialCost: cost,
			})
		},
	}
}
