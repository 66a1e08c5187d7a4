/*
 * SPDX-FileCopyrightText: Copyright (c) 2026 PlateForge Authors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package project persists plate designs as .npproj files: a JSON
// envelope carrying a format version, timestamps, free-form metadata,
// and the design itself. It also manages timestamped autosaves and
// bare design export/import without the envelope.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/plateforge/plateforge/pkg/design"
	pferrors "github.com/plateforge/plateforge/pkg/errors"
)

const (
	// Version is the current project file format version.
	Version = "1.0"
	// Extension is appended to save paths that lack it.
	Extension = ".npproj"
	// autosavePrefix names autosave files, followed by a timestamp.
	autosavePrefix = "autosave_"
	// AutosaveKeep is how many autosave files survive cleanup.
	AutosaveKeep = 10
)

// now is swapped out by tests for deterministic timestamps.
var now = time.Now

// Project is the on-disk envelope for a saved design.
type Project struct {
	Version      string         `json:"version"`
	CreatedDate  string         `json:"created_date"`
	ModifiedDate string         `json:"modified_date"`
	Metadata     map[string]any `json:"metadata"`
	Design       design.Config  `json:"design"`
}

// Info summarizes a project file without exposing the design payload.
type Info struct {
	Version      string         `json:"version"`
	CreatedDate  string         `json:"created_date"`
	ModifiedDate string         `json:"modified_date"`
	Metadata     map[string]any `json:"metadata"`
	HasDesign    bool           `json:"has_design"`
}

// Save writes the design to path, appending the .npproj extension when
// missing, and returns the path actually written. Each saved project
// gets a project-id in its metadata unless the caller supplied one.
func Save(path string, cfg design.Config, metadata map[string]any) (string, error) {
	if path == "" {
		return "", pferrors.New(pferrors.ErrCodeInvalidRequest, "project path must not be empty")
	}
	if !strings.HasSuffix(path, Extension) {
		path += Extension
	}

	meta := make(map[string]any, len(metadata)+1)
	for k, v := range metadata {
		meta[k] = v
	}
	if _, ok := meta["project-id"]; !ok {
		meta["project-id"] = uuid.NewString()
	}

	timestamp := now().Format(time.RFC3339)
	p := Project{
		Version:      Version,
		CreatedDate:  timestamp,
		ModifiedDate: timestamp,
		Metadata:     meta,
		Design:       cfg,
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", pferrors.Wrap(pferrors.ErrCodeInternal, fmt.Sprintf("failed to create project directory %q", dir), err)
		}
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return "", pferrors.Wrap(pferrors.ErrCodeInternal, "failed to marshal project", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", pferrors.Wrap(pferrors.ErrCodeInternal, fmt.Sprintf("failed to write project file %q", path), err)
	}
	return path, nil
}

// Load reads a project file and refreshes its modified date in memory.
// The file on disk is left untouched.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, pferrors.Newf(pferrors.ErrCodeNotFound, "project file %q not found", path)
		}
		return nil, pferrors.Wrap(pferrors.ErrCodeInternal, fmt.Sprintf("failed to read project file %q", path), err)
	}

	var p Project
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, pferrors.Wrap(pferrors.ErrCodeInvalidRequest, "invalid JSON in project file", err)
	}
	if p.Version == "" || p.Design == nil {
		return nil, pferrors.New(pferrors.ErrCodeInvalidRequest, "invalid project file format")
	}

	p.ModifiedDate = now().Format(time.RFC3339)
	return &p, nil
}

// GetInfo reads the envelope of a project file without requiring a
// valid design payload.
func GetInfo(path string) (*Info, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, pferrors.Newf(pferrors.ErrCodeNotFound, "project file %q not found", path)
		}
		return nil, pferrors.Wrap(pferrors.ErrCodeInternal, fmt.Sprintf("failed to read project file %q", path), err)
	}

	var p Project
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, pferrors.Wrap(pferrors.ErrCodeInvalidRequest, "invalid JSON in project file", err)
	}

	info := &Info{
		Version:      p.Version,
		CreatedDate:  p.CreatedDate,
		ModifiedDate: p.ModifiedDate,
		Metadata:     p.Metadata,
		HasDesign:    p.Design != nil,
	}
	if info.Version == "" {
		info.Version = "Unknown"
	}
	return info, nil
}

// Autosave writes cfg to a timestamped file under dir and prunes old
// autosaves down to AutosaveKeep. It returns the path written.
func Autosave(cfg design.Config, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", pferrors.Wrap(pferrors.ErrCodeInternal, fmt.Sprintf("failed to create autosave directory %q", dir), err)
	}

	timestamp := now().Format("20060102_150405")
	path := filepath.Join(dir, autosavePrefix+timestamp+Extension)

	saved, err := Save(path, cfg, map[string]any{
		"autosave":  true,
		"timestamp": timestamp,
	})
	if err != nil {
		return "", err
	}

	if err := CleanupAutosaves(dir, AutosaveKeep); err != nil {
		return "", err
	}
	return saved, nil
}

// CleanupAutosaves removes autosave files beyond the newest keep, by
// modification time.
func CleanupAutosaves(dir string, keep int) error {
	matches, err := filepath.Glob(filepath.Join(dir, autosavePrefix+"*"+Extension))
	if err != nil {
		return pferrors.Wrap(pferrors.ErrCodeInternal, "failed to list autosave files", err)
	}

	type aged struct {
		path    string
		modTime time.Time
	}
	files := make([]aged, 0, len(matches))
	for _, m := range matches {
		fi, err := os.Stat(m)
		if err != nil {
			continue
		}
		files = append(files, aged{path: m, modTime: fi.ModTime()})
	}

	sort.Slice(files, func(i, j int) bool {
		if files[i].modTime.Equal(files[j].modTime) {
			// Timestamped names order the same as mtime at
			// second granularity.
			return files[i].path > files[j].path
		}
		return files[i].modTime.After(files[j].modTime)
	})

	for _, old := range files[min(keep, len(files)):] {
		if err := os.Remove(old.path); err != nil {
			return pferrors.Wrap(pferrors.ErrCodeInternal, fmt.Sprintf("failed to remove autosave %q", old.path), err)
		}
	}
	return nil
}

// ExportDesign writes the bare design as JSON, without the project
// envelope.
func ExportDesign(cfg design.Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return pferrors.Wrap(pferrors.ErrCodeInternal, "failed to marshal design", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return pferrors.Wrap(pferrors.ErrCodeInternal, fmt.Sprintf("failed to write design file %q", path), err)
	}
	return nil
}

// importRequiredFields must all be present for an imported design to
// be accepted.
var importRequiredFields = []string{
	design.FieldTextLine1,
	design.FieldTextLine2,
	design.FieldPlateLength,
	design.FieldPlateWidth,
}

// ImportDesign reads a bare design from a JSON file.
func ImportDesign(path string) (design.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, pferrors.Newf(pferrors.ErrCodeNotFound, "design file %q not found", path)
		}
		return nil, pferrors.Wrap(pferrors.ErrCodeInternal, fmt.Sprintf("failed to read design file %q", path), err)
	}

	var cfg design.Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, pferrors.Wrap(pferrors.ErrCodeInvalidRequest, "invalid JSON in design file", err)
	}

	for _, field := range importRequiredFields {
		if _, ok := cfg[field]; !ok {
			return nil, pferrors.Newf(pferrors.ErrCodeInvalidRequest, "missing required field %q in design file", field)
		}
	}
	return cfg, nil
}
