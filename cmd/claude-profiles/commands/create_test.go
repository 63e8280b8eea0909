package commands

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	cperrors "claudeprofiles/internal/errors"
	"claudeprofiles/internal/profile"
)

// setCreateFlags configures the create command's flags for one test.
func setCreateFlags(t *testing.T, from, format string, force bool) {
	t.Helper()
	origFrom, origFormat, origForce := createFrom, createFormat, createForce
	createFrom, createFormat, createForce = from, format, force
	t.Cleanup(func() {
		createFrom, createFormat, createForce = origFrom, origFormat, origForce
	})
}

func TestCreateCommand_Metadata(t *testing.T) {
	if createCmd.Use != "create <name>" {
		t.Errorf("Use = %q, want %q", createCmd.Use, "create <name>")
	}
	for _, flag := range []string{"from", "format", "force"} {
		if createCmd.Flags().Lookup(flag) == nil {
			t.Errorf("--%s flag should be defined", flag)
		}
	}
}

func TestRunCreate_Scaffold(t *testing.T) {
	overrides := t.TempDir()
	setProfilesDir(t, overrides)
	setCreateFlags(t, "", "json", false)

	var buf bytes.Buffer
	if err := runCreateWithWriter(&buf, "zig"); err != nil {
		t.Fatalf("runCreateWithWriter() error = %v", err)
	}
	if !strings.Contains(buf.String(), "Created") {
		t.Error("output should confirm the created file")
	}

	// The scaffold is a loadable profile
	p, err := profile.NewStore(overrides).Resolve("zig")
	if err != nil {
		t.Fatalf("scaffolded profile should resolve: %v", err)
	}
	if p.DisplayName != "Zig" {
		t.Errorf("DisplayName = %q, want %q", p.DisplayName, "Zig")
	}
	if p.ClaudeMD == "" {
		t.Error("scaffold should include starter instructions")
	}
}

func TestRunCreate_YAML(t *testing.T) {
	overrides := t.TempDir()
	setProfilesDir(t, overrides)
	setCreateFlags(t, "", "yaml", false)

	var buf bytes.Buffer
	if err := runCreateWithWriter(&buf, "zig"); err != nil {
		t.Fatalf("runCreateWithWriter() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(overrides, "zig.yaml")); err != nil {
		t.Fatalf("zig.yaml should exist: %v", err)
	}
	if _, err := profile.NewStore(overrides).Resolve("zig"); err != nil {
		t.Errorf("YAML profile should resolve: %v", err)
	}
}

func TestRunCreate_FromBuiltin(t *testing.T) {
	overrides := t.TempDir()
	setProfilesDir(t, overrides)
	setCreateFlags(t, "python", "json", false)

	var buf bytes.Buffer
	if err := runCreateWithWriter(&buf, "py-ml"); err != nil {
		t.Fatalf("runCreateWithWriter() error = %v", err)
	}

	p, err := profile.NewStore(overrides).Resolve("py-ml")
	if err != nil {
		t.Fatalf("copied profile should resolve: %v", err)
	}
	if p.DisplayName != "Python" {
		t.Errorf("DisplayName = %q, want the base profile's", p.DisplayName)
	}
	if !p.HasVariant("fastapi") {
		t.Error("copy should carry the base profile's variants")
	}
	if _, ok := p.Skills["pytest-fixtures"]; !ok {
		t.Error("copy should carry the base profile's skills")
	}
}

func TestRunCreate_InvalidName(t *testing.T) {
	setProfilesDir(t, t.TempDir())
	setCreateFlags(t, "", "json", false)

	var buf bytes.Buffer
	err := runCreateWithWriter(&buf, "Not A Name")
	if err == nil {
		t.Fatal("expected an error for an invalid name")
	}
	if !errors.Is(err, cperrors.ErrInvalidName) {
		t.Errorf("error should wrap ErrInvalidName, got %v", err)
	}
}

func TestRunCreate_UnknownFormat(t *testing.T) {
	setProfilesDir(t, t.TempDir())
	setCreateFlags(t, "", "toml", false)

	var buf bytes.Buffer
	err := runCreateWithWriter(&buf, "zig")
	if err == nil {
		t.Fatal("expected an error for an unsupported format")
	}

	var exitErr *cperrors.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("error should be an ExitError, got %T", err)
	}
}

func TestRunCreate_RefusesExisting(t *testing.T) {
	overrides := t.TempDir()
	if err := os.WriteFile(filepath.Join(overrides, "zig.yaml"), []byte("display_name: Mine\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	setProfilesDir(t, overrides)
	setCreateFlags(t, "", "json", false)

	var buf bytes.Buffer
	if err := runCreateWithWriter(&buf, "zig"); err != nil {
		t.Fatalf("runCreateWithWriter() error = %v", err)
	}
	if !strings.Contains(buf.String(), "already exists") {
		t.Error("output should refuse to shadow the existing file")
	}
	if _, err := os.Stat(filepath.Join(overrides, "zig.json")); !errors.Is(err, os.ErrNotExist) {
		t.Error("no new file should be written without --force")
	}
}

func TestRunCreate_ForceOverwrites(t *testing.T) {
	overrides := t.TempDir()
	if err := os.WriteFile(filepath.Join(overrides, "zig.json"), []byte(`{"display_name": "Old"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	setProfilesDir(t, overrides)
	setCreateFlags(t, "", "json", true)

	var buf bytes.Buffer
	if err := runCreateWithWriter(&buf, "zig"); err != nil {
		t.Fatalf("runCreateWithWriter() error = %v", err)
	}

	p, err := profile.NewStore(overrides).Resolve("zig")
	if err != nil {
		t.Fatal(err)
	}
	if p.DisplayName != "Zig" {
		t.Errorf("DisplayName = %q, want the fresh scaffold", p.DisplayName)
	}
}

func TestDisplayTitle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"go", "Go"},
		{"typescript-node", "Typescript Node"},
		{"py-ml", "Py Ml"},
	}

	for _, tt := range tests {
		if got := displayTitle(tt.in); got != tt.want {
			t.Errorf("displayTitle(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
