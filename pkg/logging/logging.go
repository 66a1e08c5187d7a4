/*
Copyright © 2025 Plateforge Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package logging configures the process-wide structured logger.
package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Options control handler selection and verbosity.
type Options struct {
	// Debug lowers the level to debug regardless of LOG_LEVEL.
	Debug bool

	// JSON selects the JSON handler instead of text.
	JSON bool
}

// SetDefaultStructuredLogger installs a slog default logger annotated with
// the service name and version. Level is taken from the LOG_LEVEL
// environment variable (debug, info, warn, error) unless opts.Debug is set.
func SetDefaultStructuredLogger(name, version string, opts ...Options) {
	var o Options
	if len(opts) > 0 {
		o = opts[0]
	}

	level := levelFromEnv()
	if o.Debug {
		level = slog.LevelDebug
	}

	handlerOpts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if o.JSON {
		handler = slog.NewJSONHandler(os.Stderr, handlerOpts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, handlerOpts)
	}

	logger := slog.New(handler).With(
		slog.String("service", name),
		slog.String("version", version),
	)
	slog.SetDefault(logger)
}

func levelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
