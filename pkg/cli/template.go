/*
Copyright © 2026 Plateforge Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/plateforge/plateforge/pkg/template"
)

func templateCmd() *cli.Command {
	return &cli.Command{
		Name:                  "template",
		EnableShellCompletion: true,
		Usage:                 "List, show, and export built-in design templates",
		Commands: []*cli.Command{
			templateListCmd(),
			templateShowCmd(),
			templateExportCmd(),
		},
	}
}

// templateList is the list output: one row per template without the
// full design payload.
type templateList struct {
	Templates []templateListEntry `json:"templates" yaml:"templates"`
	Count     int                 `json:"count" yaml:"count"`
}

type templateListEntry struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Category    string `json:"category" yaml:"category"`
}

func templateListCmd() *cli.Command {
	return &cli.Command{
		Name:                  "list",
		EnableShellCompletion: true,
		Usage:                 "List available templates",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "category",
				Aliases: []string{"c"},
				Usage:   "only templates in this category",
			},
			&cli.StringFlag{
				Name:    "pattern",
				Aliases: []string{"p"},
				Usage:   "glob-style name pattern (e.g. \"*Sign\", \"Door*\")",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			store, err := template.NewStore()
			if err != nil {
				return err
			}

			var templates []template.Template
			switch {
			case cmd.String("category") != "":
				templates = store.ByCategory(cmd.String("category"))
			case cmd.String("pattern") != "":
				templates = store.Match(cmd.String("pattern"))
			default:
				templates = store.All()
			}

			out := templateList{Count: len(templates)}
			for _, tpl := range templates {
				out.Templates = append(out.Templates, templateListEntry{
					Name:        tpl.Name,
					Description: tpl.Description,
					Category:    tpl.Category,
				})
			}
			return serializeTo(ctx, cmd, out)
		},
	}
}

func templateShowCmd() *cli.Command {
	return &cli.Command{
		Name:                  "show",
		EnableShellCompletion: true,
		Usage:                 "Show a template including its full design",
		ArgsUsage:             "NAME",
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			name := cmd.Args().First()
			if name == "" {
				return fmt.Errorf("template name is required")
			}

			store, err := template.NewStore()
			if err != nil {
				return err
			}
			tpl, err := store.Get(name)
			if err != nil {
				return err
			}
			return serializeTo(ctx, cmd, tpl)
		},
	}
}

func templateExportCmd() *cli.Command {
	return &cli.Command{
		Name:                  "export",
		EnableShellCompletion: true,
		Usage:                 "Export templates as standalone JSON files",
		ArgsUsage:             "[NAME]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "all",
				Usage: "export every template",
			},
			&cli.StringFlag{
				Name:    "dir",
				Aliases: []string{"D"},
				Value:   ".",
				Usage:   "destination directory",
			},
			outputFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			store, err := template.NewStore()
			if err != nil {
				return err
			}

			if cmd.Bool("all") {
				return store.ExportAll(cmd.String("dir"))
			}

			name := cmd.Args().First()
			if name == "" {
				return fmt.Errorf("template name is required unless --all is set")
			}
			path := cmd.String("output")
			if path == "" {
				return fmt.Errorf("--output is required when exporting a single template")
			}
			return store.ExportToFile(name, path)
		},
	}
}
