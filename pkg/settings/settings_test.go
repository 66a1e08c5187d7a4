package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func TestOpen_Defaults(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "settings.yaml"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	if got := s.GetString(KeyDefaultTemplate); got != "Library Sign" {
		t.Errorf("default template = %q, want Library Sign", got)
	}
	if got := s.GetInt(KeyAutosaveInterval); got != 5 {
		t.Errorf("autosave interval = %d, want 5", got)
	}
	if got := s.GetString(KeyOutputFormat); got != "yaml" {
		t.Errorf("output format = %q, want yaml", got)
	}
}

func TestPersistRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.yaml")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	s.Set(KeyDefaultTemplate, "Door Plate")
	s.Set(KeyAutosaveInterval, 2)
	if err := s.Persist(); err != nil {
		t.Fatalf("Persist failed: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	if got := reopened.GetString(KeyDefaultTemplate); got != "Door Plate" {
		t.Errorf("default template = %q, want Door Plate", got)
	}
	if got := reopened.GetInt(KeyAutosaveInterval); got != 2 {
		t.Errorf("autosave interval = %d, want 2", got)
	}
}

func TestOpen_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("\t{not yaml"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Open(path); err == nil {
		t.Fatal("expected error for malformed settings file")
	}
}

func TestAddRecentProject(t *testing.T) {
	allExist(t)
	s, err := Open(filepath.Join(t.TempDir(), "settings.yaml"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	if err := s.AddRecentProject("/p/a.npproj"); err != nil {
		t.Fatalf("AddRecentProject failed: %v", err)
	}
	if err := s.AddRecentProject("/p/b.npproj"); err != nil {
		t.Fatalf("AddRecentProject failed: %v", err)
	}
	// Re-adding moves to front without duplicating.
	if err := s.AddRecentProject("/p/a.npproj"); err != nil {
		t.Fatalf("AddRecentProject failed: %v", err)
	}

	got := s.RecentProjects(0)
	want := []string{"/p/a.npproj", "/p/b.npproj"}
	if len(got) != len(want) {
		t.Fatalf("RecentProjects = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("RecentProjects[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestAddRecentProject_Cap(t *testing.T) {
	allExist(t)
	s, err := Open(filepath.Join(t.TempDir(), "settings.yaml"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	for i := 0; i < maxRecentProjects+5; i++ {
		if err := s.AddRecentProject(fmt.Sprintf("/p/%d.npproj", i)); err != nil {
			t.Fatalf("AddRecentProject failed: %v", err)
		}
	}

	got := s.RecentProjects(0)
	if len(got) != maxRecentProjects {
		t.Fatalf("RecentProjects returned %d entries, want %d", len(got), maxRecentProjects)
	}
	if got[0] != fmt.Sprintf("/p/%d.npproj", maxRecentProjects+4) {
		t.Errorf("newest entry = %q", got[0])
	}
}

func TestRecentProjects_DropsMissingFiles(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(filepath.Join(dir, "settings.yaml"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	real := filepath.Join(dir, "real.npproj")
	if err := os.WriteFile(real, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := s.AddRecentProject(filepath.Join(dir, "gone.npproj")); err != nil {
		t.Fatalf("AddRecentProject failed: %v", err)
	}
	if err := s.AddRecentProject(real); err != nil {
		t.Fatalf("AddRecentProject failed: %v", err)
	}

	got := s.RecentProjects(0)
	if len(got) != 1 || got[0] != real {
		t.Errorf("RecentProjects = %v, want just %q", got, real)
	}
}

// allExist makes every recent-projects path count as present.
func allExist(t *testing.T) {
	t.Helper()
	orig := fileExists
	fileExists = func(string) bool { return true }
	t.Cleanup(func() { fileExists = orig })
}
