/*
 * SPDX-FileCopyrightText: Copyright (c) 2026 PlateForge Authors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package settings stores user preferences and the recent-projects list
// in a YAML file, with sensible defaults when the file is absent.
package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/viper"

	pferrors "github.com/plateforge/plateforge/pkg/errors"
)

// Keys understood by the settings store. Unknown keys are allowed and
// round-trip through Persist untouched.
const (
	KeyAutosaveDir      = "autosave_dir"
	KeyAutosaveInterval = "autosave_interval_minutes"
	KeyDefaultTemplate  = "default_template"
	KeyOutputFormat     = "output_format"
	KeyRecentProjects   = "recent_projects"
)

// maxRecentProjects caps the recent-projects list.
const maxRecentProjects = 10

// fileExists is swapped out by tests that exercise the drop-missing
// behavior of the recent-projects list.
var fileExists = func(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Store is a mutex-guarded settings file. Set only mutates memory;
// Persist writes the file.
type Store struct {
	mu   sync.Mutex
	v    *viper.Viper
	path string
}

// Open loads settings from path, falling back to defaults when the
// file does not exist yet.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, pferrors.New(pferrors.ErrCodeInvalidRequest, "settings path must not be empty")
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault(KeyAutosaveDir, filepath.Join(filepath.Dir(path), "autosaves"))
	v.SetDefault(KeyAutosaveInterval, 5)
	v.SetDefault(KeyDefaultTemplate, "Library Sign")
	v.SetDefault(KeyOutputFormat, "yaml")
	v.SetDefault(KeyRecentProjects, []string{})

	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, pferrors.Wrap(pferrors.ErrCodeInvalidRequest, fmt.Sprintf("failed to read settings file %q", path), err)
			}
		}
	}

	return &Store{v: v, path: path}, nil
}

// GetString returns the string value for a key.
func (s *Store) GetString(key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.GetString(key)
}

// GetInt returns the integer value for a key.
func (s *Store) GetInt(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.GetInt(key)
}

// Set stores a value in memory. Call Persist to write it out.
func (s *Store) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.Set(key, value)
}

// Persist writes the current settings to disk, creating the parent
// directory when needed.
func (s *Store) Persist() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return pferrors.Wrap(pferrors.ErrCodeInternal, fmt.Sprintf("failed to create settings directory %q", dir), err)
		}
	}
	if err := s.v.WriteConfigAs(s.path); err != nil {
		return pferrors.Wrap(pferrors.ErrCodeInternal, fmt.Sprintf("failed to write settings file %q", s.path), err)
	}
	return nil
}

// RecentProjects returns up to max recent project paths, newest first,
// skipping files that no longer exist.
func (s *Store) RecentProjects(max int) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if max <= 0 || max > maxRecentProjects {
		max = maxRecentProjects
	}

	var out []string
	for _, p := range s.v.GetStringSlice(KeyRecentProjects) {
		if !fileExists(p) {
			continue
		}
		out = append(out, p)
		if len(out) == max {
			break
		}
	}
	return out
}

// AddRecentProject moves path to the front of the recent-projects list,
// deduplicating and capping it, then persists.
func (s *Store) AddRecentProject(path string) error {
	s.mu.Lock()

	recent := s.v.GetStringSlice(KeyRecentProjects)
	updated := make([]string, 0, len(recent)+1)
	updated = append(updated, path)
	for _, p := range recent {
		if p == path {
			continue
		}
		updated = append(updated, p)
		if len(updated) == maxRecentProjects {
			break
		}
	}
	s.v.Set(KeyRecentProjects, updated)
	s.mu.Unlock()

	return s.Persist()
}
