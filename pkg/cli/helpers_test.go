/*
Copyright © 2026 Plateforge Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/urfave/cli/v3"

	"github.com/plateforge/plateforge/pkg/design"
	"github.com/plateforge/plateforge/pkg/project"
	"github.com/plateforge/plateforge/pkg/serializer"
)

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		want    serializer.Format
		wantErr bool
	}{
		{name: "yaml", format: "yaml", want: serializer.FormatYAML},
		{name: "json", format: "json", want: serializer.FormatJSON},
		{name: "table", format: "table", want: serializer.FormatTable},
		{name: "unknown", format: "xml", wantErr: true},
		{name: "empty", format: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got serializer.Format
			var parseErr error
			probe := &cli.Command{
				Name:  "probe",
				Flags: []cli.Flag{formatFlag},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					got, parseErr = parseOutputFormat(cmd)
					return nil
				},
			}
			if err := probe.Run(context.Background(), []string{"probe", "--format", tt.format}); err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			if (parseErr != nil) != tt.wantErr {
				t.Fatalf("parseOutputFormat() error = %v, wantErr %v", parseErr, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("parseOutputFormat() = %q, want %q", got, tt.want)
			}
		})
	}
}

func writeDesignFile(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	data, err := json.Marshal(design.DefaultConfig())
	if err != nil {
		t.Fatalf("marshal design: %v", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write design file: %v", err)
	}
	return path
}

func TestLoadDesign_BareFile(t *testing.T) {
	path := writeDesignFile(t, "plate.json")

	cfg, err := loadDesign(path)
	if err != nil {
		t.Fatalf("loadDesign() error = %v", err)
	}
	text, err := cfg.Text(design.FieldTextLine1)
	if err != nil {
		t.Fatalf("Text() error = %v", err)
	}
	if text != "KIRJASTO" {
		t.Errorf("text line 1 = %q, want %q", text, "KIRJASTO")
	}
}

func TestLoadDesign_ProjectFile(t *testing.T) {
	path, err := project.Save(filepath.Join(t.TempDir(), "office"), design.DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("project.Save() error = %v", err)
	}

	cfg, err := loadDesign(path)
	if err != nil {
		t.Fatalf("loadDesign() error = %v", err)
	}
	if !cfg.Has(design.FieldPlateLength) {
		t.Error("loaded design missing plate length")
	}
}

func TestLoadDesign_MissingFile(t *testing.T) {
	if _, err := loadDesign(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("loadDesign() expected error for missing file")
	}
}

func TestValidateCommand_WritesReport(t *testing.T) {
	designPath := writeDesignFile(t, "plate.json")
	outPath := filepath.Join(t.TempDir(), "report.json")

	err := New().Run(context.Background(), []string{
		"platectl", "validate",
		"--design", designPath,
		"--format", "json",
		"--output", outPath,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	var got struct {
		IsValid bool `json:"is_valid"`
		Score   int  `json:"score"`
	}
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal report: %v", err)
	}
	if !got.IsValid {
		t.Error("default design should be valid")
	}
	if got.Score != 100 {
		t.Errorf("score = %d, want 100", got.Score)
	}
}

func TestValidateCommand_FailOnError(t *testing.T) {
	cfg := design.DefaultConfig()
	cfg[design.FieldPlateLength] = 10.0
	path := filepath.Join(t.TempDir(), "short.json")
	data, err := json.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal design: %v", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write design file: %v", err)
	}
	outPath := filepath.Join(t.TempDir(), "report.json")

	err = New().Run(context.Background(), []string{
		"platectl", "validate",
		"--design", path,
		"--fail-on-error",
		"--format", "json",
		"--output", outPath,
	})
	if err == nil {
		t.Fatal("Run() expected non-nil error with --fail-on-error")
	}
	if !strings.Contains(err.Error(), "validation error") {
		t.Errorf("error = %q, want mention of validation errors", err)
	}
}

func TestPlanCommand_WritesBuildPlan(t *testing.T) {
	designPath := writeDesignFile(t, "plate.json")
	planDir := t.TempDir()
	outPath := filepath.Join(t.TempDir(), "run.json")

	err := New().Run(context.Background(), []string{
		"platectl", "plan",
		"--design", designPath,
		"--output-dir", planDir,
		"--format", "json",
		"--output", outPath,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	entries, err := os.ReadDir(planDir)
	if err != nil {
		t.Fatalf("read plan dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("plan dir has %d entries, want 1", len(entries))
	}
	if !strings.HasPrefix(entries[0].Name(), "nameplate_") || !strings.HasSuffix(entries[0].Name(), ".plan.json") {
		t.Errorf("unexpected plan file name %q", entries[0].Name())
	}
}

func TestTemplateListCommand(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "templates.json")

	err := New().Run(context.Background(), []string{
		"platectl", "template", "list",
		"--format", "json",
		"--output", outPath,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	var got templateList
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal output: %v", err)
	}
	if got.Count != 5 {
		t.Errorf("count = %d, want 5", got.Count)
	}
}
