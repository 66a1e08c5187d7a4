/*
 * SPDX-FileCopyrightText: Copyright (c) 2026 PlateForge Authors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package pipeline

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	generationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "plateforge_generation_duration_seconds",
			Help:    "Time taken by a complete build-plan generation run",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5},
		},
	)

	generationTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "plateforge_generation_total",
			Help: "Total number of generation runs",
		},
		[]string{"status"}, // success or error
	)

	stageDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "plateforge_stage_duration_seconds",
			Help:    "Time taken by individual pipeline stages",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"stage"}, // validate, layout, plate, text, export-plan
	)
)
