/*
Copyright © 2026 Plateforge Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/plateforge/plateforge/pkg/design"
	"github.com/plateforge/plateforge/pkg/project"
	"github.com/plateforge/plateforge/pkg/serializer"
)

// outputFlag and formatFlag are shared by commands that serialize
// results.
var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output file path (default: stdout)",
	}
	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   "yaml",
		Usage:   "output format (yaml, json, table)",
	}
	designFlag = &cli.StringFlag{
		Name:     "design",
		Aliases:  []string{"d"},
		Required: true,
		Usage:    "design file path (.json, .yaml, or .npproj project file)",
	}
)

// parseOutputFormat extracts and validates the output format from CLI flags.
// Returns the validated format or an error if the format is unknown.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	outFormat := serializer.Format(cmd.String("format"))
	if outFormat.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q, valid formats are: %s",
			outFormat, strings.Join(serializer.SupportedFormats(), ", "))
	}
	return outFormat, nil
}

// loadDesign reads a design from a file: .npproj files yield the
// project's embedded design, anything else is decoded as a bare design
// document.
func loadDesign(path string) (design.Config, error) {
	if strings.HasSuffix(path, project.Extension) {
		p, err := project.Load(path)
		if err != nil {
			return nil, err
		}
		return p.Design, nil
	}

	r, err := serializer.NewFileReader(serializer.FormatFromPath(path), path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var cfg design.Config
	if err := r.Deserialize(&cfg); err != nil {
		return nil, fmt.Errorf("failed to load design from %q: %w", path, err)
	}
	return cfg, nil
}

// serializeTo writes v to the configured output destination.
func serializeTo(ctx context.Context, cmd *cli.Command, v any) error {
	outFormat, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	ser, err := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
	if err != nil {
		return err
	}
	if closer, ok := ser.(serializer.Closer); ok {
		defer func() {
			if err := closer.Close(); err != nil {
				slog.Warn("failed to close serializer", "error", err)
			}
		}()
	}
	return ser.Serialize(ctx, v)
}
