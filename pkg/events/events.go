/*
 * SPDX-FileCopyrightText: Copyright (c) 2026 PlateForge Authors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package events provides synchronous in-process event dispatch. It
// lets the pipeline and batch runner report progress without coupling
// callers to any particular output surface.
package events

import "sync"

// Event names, used as subscription keys.
const (
	NameDesignChanged       = "design-changed"
	NameValidationCompleted = "validation-completed"
	NameGenerationFinished  = "generation-finished"
	NameProjectSaved        = "project-saved"
)

// Event is implemented by every event type.
type Event interface {
	Name() string
}

// DesignChanged fires when a design field is modified.
type DesignChanged struct {
	Field string
	Value any
}

func (DesignChanged) Name() string { return NameDesignChanged }

// ValidationCompleted fires after each validation run.
type ValidationCompleted struct {
	IsValid      bool
	ErrorCount   int
	WarningCount int
}

func (ValidationCompleted) Name() string { return NameValidationCompleted }

// GenerationFinished fires when a pipeline run ends, successfully or
// not.
type GenerationFinished struct {
	OK       bool
	PlanPath string
	Message  string
}

func (GenerationFinished) Name() string { return NameGenerationFinished }

// ProjectSaved fires after a project file is written.
type ProjectSaved struct {
	Path string
}

func (ProjectSaved) Name() string { return NameProjectSaved }

// Handler receives published events.
type Handler func(Event)

// Dispatcher routes events to subscribed handlers. Publish runs the
// handlers synchronously in subscription order, so handlers must not
// block. The zero value is not usable; call NewDispatcher.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
	all      []Handler
}

// NewDispatcher returns an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[string][]Handler)}
}

// Subscribe registers a handler for one event name.
func (d *Dispatcher) Subscribe(name string, h Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[name] = append(d.handlers[name], h)
}

// SubscribeAll registers a handler for every event.
func (d *Dispatcher) SubscribeAll(h Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.all = append(d.all, h)
}

// Publish delivers the event to matching handlers. A nil dispatcher
// drops events, so emitting code does not need nil checks.
func (d *Dispatcher) Publish(e Event) {
	if d == nil {
		return
	}

	d.mu.RLock()
	matched := d.handlers[e.Name()]
	all := d.all
	d.mu.RUnlock()

	for _, h := range matched {
		h(e)
	}
	for _, h := range all {
		h(e)
	}
}
