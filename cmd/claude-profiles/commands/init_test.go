package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"claudeprofiles/internal/profile"
)

func setInitForce(t *testing.T, force bool) {
	t.Helper()
	orig := initForce
	initForce = force
	t.Cleanup(func() { initForce = orig })
}

func TestInitCommand_Metadata(t *testing.T) {
	if initCmd.Use != "init" {
		t.Errorf("Use = %q, want %q", initCmd.Use, "init")
	}
	if initCmd.Flags().Lookup("force") == nil {
		t.Error("--force flag should be defined")
	}
}

func TestRunInit_SeedsEmptyDir(t *testing.T) {
	overrides := t.TempDir()
	setProfilesDir(t, overrides)
	setInitForce(t, false)

	var buf bytes.Buffer
	if err := runInitWithWriter(&buf); err != nil {
		t.Fatalf("runInitWithWriter() error = %v", err)
	}
	if !strings.Contains(buf.String(), "Seeded 11 profiles") {
		t.Errorf("output should report the seeded count, got:\n%s", buf.String())
	}

	entries, err := os.ReadDir(overrides)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 11 {
		t.Errorf("seeded %d files, want 11", len(entries))
	}

	// Seeded copies shadow the built-ins
	p, err := profile.NewStore(overrides).Resolve("go")
	if err != nil {
		t.Fatalf("seeded profile should resolve: %v", err)
	}
	if want := filepath.Join(overrides, "go.json"); p.Source != want {
		t.Errorf("Source = %q, want %q", p.Source, want)
	}
}

func TestRunInit_CreatesMissingDir(t *testing.T) {
	overrides := filepath.Join(t.TempDir(), "nested", "profiles")
	setProfilesDir(t, overrides)
	setInitForce(t, false)

	var buf bytes.Buffer
	if err := runInitWithWriter(&buf); err != nil {
		t.Fatalf("runInitWithWriter() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(overrides, "python.json")); err != nil {
		t.Errorf("python.json should exist: %v", err)
	}
}

func TestRunInit_RefusesNonEmptyDir(t *testing.T) {
	overrides := t.TempDir()
	if err := os.WriteFile(filepath.Join(overrides, "go.json"), []byte(`{"display_name": "Mine"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	setProfilesDir(t, overrides)
	setInitForce(t, false)

	var buf bytes.Buffer
	if err := runInitWithWriter(&buf); err != nil {
		t.Fatalf("runInitWithWriter() error = %v", err)
	}
	if !strings.Contains(buf.String(), "is not empty") {
		t.Error("output should explain why nothing was seeded")
	}
	if !strings.Contains(buf.String(), "--force") {
		t.Error("output should point at --force")
	}

	entries, err := os.ReadDir(overrides)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("directory should be untouched, found %d files", len(entries))
	}
}

func TestRunInit_ForceOverwrites(t *testing.T) {
	overrides := t.TempDir()
	if err := os.WriteFile(filepath.Join(overrides, "go.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	setProfilesDir(t, overrides)
	setInitForce(t, true)

	var buf bytes.Buffer
	if err := runInitWithWriter(&buf); err != nil {
		t.Fatalf("runInitWithWriter() error = %v", err)
	}

	p, err := profile.NewStore(overrides).Resolve("go")
	if err != nil {
		t.Fatalf("re-seeded profile should resolve: %v", err)
	}
	if p.DisplayName != "Go" {
		t.Errorf("DisplayName = %q, want the built-in copy", p.DisplayName)
	}
}
