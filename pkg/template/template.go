/*
 * SPDX-FileCopyrightText: Copyright (c) 2026 PlateForge Authors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package template provides curated starting-point designs. Built-in
// templates are embedded at build time; custom templates can be
// registered at runtime and always land in the "Custom" category.
package template

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/agnivade/levenshtein"
	"gopkg.in/yaml.v3"

	"github.com/plateforge/plateforge/pkg/design"
	pferrors "github.com/plateforge/plateforge/pkg/errors"
)

// CategoryCustom is assigned to every runtime-registered template.
const CategoryCustom = "Custom"

var (
	//go:embed data/templates.yaml
	templateData []byte

	builtinOnce sync.Once
	builtinSet  []Template
	builtinErr  error
)

// Template is a named, categorized design preset.
type Template struct {
	Name        string        `json:"name" yaml:"name"`
	Description string        `json:"description" yaml:"description"`
	Category    string        `json:"category" yaml:"category"`
	Design      design.Config `json:"design" yaml:"design"`
}

type templateFile struct {
	Templates []Template `yaml:"templates"`
}

// loadBuiltins parses the embedded template data once per process.
func loadBuiltins() ([]Template, error) {
	builtinOnce.Do(func() {
		var file templateFile
		if err := yaml.Unmarshal(templateData, &file); err != nil {
			builtinErr = pferrors.Wrap(pferrors.ErrCodeInternal, "failed to unmarshal template data", err)
			return
		}
		builtinSet = file.Templates
	})
	return builtinSet, builtinErr
}

// Store holds the built-in templates plus any custom templates added at
// runtime. It is safe for concurrent use.
type Store struct {
	mu        sync.RWMutex
	templates []Template
	index     map[string]int
}

// NewStore returns a store seeded with the built-in templates.
func NewStore() (*Store, error) {
	builtins, err := loadBuiltins()
	if err != nil {
		return nil, err
	}

	s := &Store{
		templates: make([]Template, len(builtins)),
		index:     make(map[string]int, len(builtins)),
	}
	for i, t := range builtins {
		t.Design = t.Design.Clone()
		s.templates[i] = t
		s.index[t.Name] = i
	}
	return s, nil
}

// Names returns the template names in registration order.
func (s *Store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, len(s.templates))
	for i, t := range s.templates {
		names[i] = t.Name
	}
	return names
}

// All returns copies of every template in registration order.
func (s *Store) All() []Template {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Template, len(s.templates))
	for i, t := range s.templates {
		t.Design = t.Design.Clone()
		out[i] = t
	}
	return out
}

// Get returns the template with the given name. When the name is
// unknown, the error suggests the closest known name if one is within
// typo distance.
func (s *Store) Get(name string) (Template, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[name]
	if !ok {
		err := pferrors.Newf(pferrors.ErrCodeNotFound, "template %q not found", name)
		if suggestion := s.closest(name); suggestion != "" {
			err = err.WithDetail("did-you-mean", suggestion)
		}
		return Template{}, err
	}

	t := s.templates[i]
	t.Design = t.Design.Clone()
	return t, nil
}

// maxSuggestDistance caps how far a candidate may be from the input
// before a suggestion is noise rather than a likely typo.
const maxSuggestDistance = 5

// closest must be called with the lock held.
func (s *Store) closest(name string) string {
	best := ""
	bestDist := maxSuggestDistance + 1
	for _, t := range s.templates {
		d := levenshtein.ComputeDistance(strings.ToLower(name), strings.ToLower(t.Name))
		if d < bestDist {
			best = t.Name
			bestDist = d
		}
	}
	return best
}

// ByCategory returns the templates in the given category, in
// registration order.
func (s *Store) ByCategory(category string) []Template {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Template
	for _, t := range s.templates {
		if t.Category == category {
			t.Design = t.Design.Clone()
			out = append(out, t)
		}
	}
	return out
}

// Categories returns the distinct categories, sorted.
func (s *Store) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	var out []string
	for _, t := range s.templates {
		if _, ok := seen[t.Category]; !ok {
			seen[t.Category] = struct{}{}
			out = append(out, t.Category)
		}
	}
	sort.Strings(out)
	return out
}

// Match returns the templates whose name matches the wildcard pattern.
// Supported patterns:
//   - "prefix*" matches names starting with "prefix"
//   - "*suffix" matches names ending with "suffix"
//   - "*contains*" matches names containing "contains"
//   - "exact" matches names exactly
func (s *Store) Match(pattern string) []Template {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Template
	for _, t := range s.templates {
		if matchesPattern(t.Name, pattern) {
			t.Design = t.Design.Clone()
			out = append(out, t)
		}
	}
	return out
}

func matchesPattern(name, pattern string) bool {
	if !strings.Contains(pattern, "*") {
		return name == pattern
	}

	if strings.HasPrefix(pattern, "*") && strings.HasSuffix(pattern, "*") {
		return strings.Contains(name, strings.Trim(pattern, "*"))
	}
	if strings.HasPrefix(pattern, "*") {
		return strings.HasSuffix(name, strings.TrimPrefix(pattern, "*"))
	}
	if strings.HasSuffix(pattern, "*") {
		return strings.HasPrefix(name, strings.TrimSuffix(pattern, "*"))
	}
	return false
}

// AddCustom registers a custom template. The category is always
// CategoryCustom regardless of input, and registering over an existing
// name fails.
func (s *Store) AddCustom(name, description string, cfg design.Config) error {
	if name == "" {
		return pferrors.New(pferrors.ErrCodeInvalidRequest, "template name must not be empty")
	}
	if description == "" {
		description = "Custom template"
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.index[name]; ok {
		return pferrors.Newf(pferrors.ErrCodeInvalidRequest, "template %q already exists", name)
	}

	s.index[name] = len(s.templates)
	s.templates = append(s.templates, Template{
		Name:        name,
		Description: description,
		Category:    CategoryCustom,
		Design:      cfg.Clone(),
	})
	return nil
}

// ExportToFile writes one template to a JSON file.
func (s *Store) ExportToFile(name, path string) error {
	t, err := s.Get(name)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return pferrors.Wrap(pferrors.ErrCodeInternal, "failed to marshal template", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return pferrors.Wrap(pferrors.ErrCodeInternal, fmt.Sprintf("failed to write template file %q", path), err)
	}
	return nil
}

// ExportAll writes every template into the directory, one JSON file per
// template named after the lowercased, underscored template name.
func (s *Store) ExportAll(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return pferrors.Wrap(pferrors.ErrCodeInternal, fmt.Sprintf("failed to create export directory %q", dir), err)
	}

	for _, t := range s.All() {
		filename := strings.ToLower(strings.ReplaceAll(t.Name, " ", "_")) + ".json"
		if err := s.ExportToFile(t.Name, filepath.Join(dir, filename)); err != nil {
			return err
		}
	}
	return nil
}

// LoadFromFile reads a template from a JSON file and registers it as a
// custom template under its own name.
func (s *Store) LoadFromFile(path string) (Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Template{}, pferrors.Wrap(pferrors.ErrCodeNotFound, fmt.Sprintf("failed to read template file %q", path), err)
	}

	var t Template
	if err := json.Unmarshal(data, &t); err != nil {
		return Template{}, pferrors.Wrap(pferrors.ErrCodeInvalidRequest, "failed to unmarshal template", err)
	}
	if err := s.AddCustom(t.Name, t.Description, t.Design); err != nil {
		return Template{}, err
	}
	return s.Get(t.Name)
}
