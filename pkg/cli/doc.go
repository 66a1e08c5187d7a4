// Copyright (c) 2026, PlateForge Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cli implements the command-line interface for the platectl tool.
//
// # Overview
//
// The platectl CLI covers the name-plate workflow end to end: validating a
// design against the constraint catalog, scoring its printability, running
// the generation pipeline to produce a build plan, and batch-processing
// whole manifests of designs. It also manages project files and built-in
// templates, and can serve the validation HTTP API.
//
// # Commands
//
// validate - Check a design against geometric constraints:
//
//	platectl validate --design plate.yaml [--fail-on-error] [--format yaml|json|table]
//	platectl validate --design office.npproj --format table
//
// warnings - Show advisory printability warnings:
//
//	platectl warnings --design plate.yaml
//
// score - Printability score plus print-time and material-cost estimates:
//
//	platectl score --design plate.yaml [--price-per-kg 25]
//
// plan - Run the generation pipeline and write a timestamped build plan:
//
//	platectl plan --design plate.yaml --output-dir ./plans
//
// batch - Process a manifest of designs concurrently:
//
//	platectl batch --manifest designs.yaml --plan --output-dir ./plans -p 8
//
// template - Inspect and export built-in templates:
//
//	platectl template list [--category Signage] [--pattern "*Sign"]
//	platectl template show "Library Sign"
//	platectl template export --all --dir ./templates
//
// project - Manage .npproj project files:
//
//	platectl project save office.npproj --design plate.yaml
//	platectl project load office.npproj
//	platectl project info office.npproj
//	platectl project recent
//
// serve - Run the validation HTTP API:
//
//	platectl serve
//
// Global flags --debug and --log-json control structured logging; most
// commands accept --output and --format for serialized results.
package cli
