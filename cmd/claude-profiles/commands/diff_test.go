package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// setDiffFlags configures the diff command's flags for one test.
func setDiffFlags(t *testing.T, dir, variant string) {
	t.Helper()
	origDir, origVariant := diffDir, diffVariant
	diffDir, diffVariant = dir, variant
	t.Cleanup(func() {
		diffDir, diffVariant = origDir, origVariant
	})
}

func TestDiffCommand_Metadata(t *testing.T) {
	if diffCmd.Use != "diff <profile|auto>" {
		t.Errorf("Use = %q, want %q", diffCmd.Use, "diff <profile|auto>")
	}
	if diffCmd.Flags().Lookup("variant") == nil {
		t.Error("--variant flag should be defined")
	}
	if diffCmd.Flags().Lookup("dir") == nil {
		t.Error("--dir flag should be defined")
	}
}

func TestRunDiff_FreshProject(t *testing.T) {
	project := t.TempDir()
	if err := os.WriteFile(filepath.Join(project, "go.mod"), []byte("module example.com/m\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	setProfilesDir(t, t.TempDir())
	setDiffFlags(t, project, "")

	var buf bytes.Buffer
	if err := runDiffWithWriter(&buf, "auto"); err != nil {
		t.Fatalf("runDiffWithWriter() error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "+++") {
		t.Error("a fresh project should produce creation diffs")
	}
	if !strings.Contains(output, "CLAUDE.md") {
		t.Error("diff should cover the instructions artifact")
	}
}

func TestRunDiff_UpToDate(t *testing.T) {
	project := t.TempDir()
	if err := os.WriteFile(filepath.Join(project, "go.mod"), []byte("module example.com/m\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	setProfilesDir(t, t.TempDir())
	setApplyFlags(t, project, "", false)
	setDiffFlags(t, project, "")

	var applied bytes.Buffer
	if err := runApplyWithWriter(&applied, "auto"); err != nil {
		t.Fatalf("apply error = %v", err)
	}

	var buf bytes.Buffer
	if err := runDiffWithWriter(&buf, "auto"); err != nil {
		t.Fatalf("runDiffWithWriter() error = %v", err)
	}
	if !strings.Contains(buf.String(), "Everything up to date for go") {
		t.Errorf("diff after apply should report up to date, got:\n%s", buf.String())
	}
}

func TestRunDiff_ShowsEditedFile(t *testing.T) {
	project := t.TempDir()
	if err := os.WriteFile(filepath.Join(project, "go.mod"), []byte("module example.com/m\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	setProfilesDir(t, t.TempDir())
	setApplyFlags(t, project, "", false)
	setDiffFlags(t, project, "")

	var applied bytes.Buffer
	if err := runApplyWithWriter(&applied, "auto"); err != nil {
		t.Fatalf("apply error = %v", err)
	}

	settingsPath := filepath.Join(project, ".claude", "settings.json")
	if err := os.WriteFile(settingsPath, []byte("{\n  \"permissions\": {}\n}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	edited, err := os.ReadFile(settingsPath)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := runDiffWithWriter(&buf, "auto"); err != nil {
		t.Fatalf("runDiffWithWriter() error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "settings.json") {
		t.Error("diff should name the edited artifact")
	}
	if !strings.Contains(output, "1 of ") {
		t.Errorf("only the edited artifact should differ, got:\n%s", output)
	}

	// Diff never writes
	after, err := os.ReadFile(settingsPath)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(edited, after) {
		t.Error("diff must not modify project files")
	}
}
