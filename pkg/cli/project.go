/*
Copyright © 2026 Plateforge Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/plateforge/plateforge/pkg/project"
	"github.com/plateforge/plateforge/pkg/settings"
)

var settingsFlag = &cli.StringFlag{
	Name:  "settings",
	Usage: "settings file path (default: user config directory)",
}

// openSettings opens the settings store at the flag path or the
// per-user default location.
func openSettings(cmd *cli.Command) (*settings.Store, error) {
	path := cmd.String("settings")
	if path == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to locate user config directory: %w", err)
		}
		path = filepath.Join(base, "plateforge", "settings.yaml")
	}
	return settings.Open(path)
}

func projectCmd() *cli.Command {
	return &cli.Command{
		Name:                  "project",
		EnableShellCompletion: true,
		Usage:                 "Save, load, and inspect name-plate project files",
		Commands: []*cli.Command{
			projectSaveCmd(),
			projectLoadCmd(),
			projectInfoCmd(),
			projectRecentCmd(),
		},
	}
}

func projectSaveCmd() *cli.Command {
	return &cli.Command{
		Name:                  "save",
		EnableShellCompletion: true,
		Usage:                 "Save a design as a project file",
		ArgsUsage:             "PATH",
		Flags: []cli.Flag{
			designFlag,
			settingsFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.Args().First()
			if path == "" {
				return fmt.Errorf("project path is required")
			}
			cfg, err := loadDesign(cmd.String("design"))
			if err != nil {
				return err
			}

			saved, err := project.Save(path, cfg, nil)
			if err != nil {
				return err
			}
			slog.Info("project saved", "path", saved)

			store, err := openSettings(cmd)
			if err != nil {
				return err
			}
			return store.AddRecentProject(saved)
		},
	}
}

func projectLoadCmd() *cli.Command {
	return &cli.Command{
		Name:                  "load",
		EnableShellCompletion: true,
		Usage:                 "Load a project file and print its design",
		ArgsUsage:             "PATH",
		Flags: []cli.Flag{
			settingsFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.Args().First()
			if path == "" {
				return fmt.Errorf("project path is required")
			}

			p, err := project.Load(path)
			if err != nil {
				return err
			}

			store, err := openSettings(cmd)
			if err != nil {
				return err
			}
			if err := store.AddRecentProject(path); err != nil {
				slog.Warn("failed to record recent project", "error", err)
			}

			return serializeTo(ctx, cmd, p.Design)
		},
	}
}

func projectInfoCmd() *cli.Command {
	return &cli.Command{
		Name:                  "info",
		EnableShellCompletion: true,
		Usage:                 "Show project metadata without loading the design",
		ArgsUsage:             "PATH",
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.Args().First()
			if path == "" {
				return fmt.Errorf("project path is required")
			}
			info, err := project.GetInfo(path)
			if err != nil {
				return err
			}
			return serializeTo(ctx, cmd, info)
		},
	}
}

// recentList holds the recent-projects output.
type recentList struct {
	Projects []string `json:"projects" yaml:"projects"`
	Count    int      `json:"count" yaml:"count"`
}

func projectRecentCmd() *cli.Command {
	return &cli.Command{
		Name:                  "recent",
		EnableShellCompletion: true,
		Usage:                 "List recently opened projects",
		Flags: []cli.Flag{
			settingsFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			store, err := openSettings(cmd)
			if err != nil {
				return err
			}
			projects := store.RecentProjects(0)
			return serializeTo(ctx, cmd, recentList{Projects: projects, Count: len(projects)})
		},
	}
}
