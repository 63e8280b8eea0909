package profile

import (
	"strings"
	"testing"

	"github.com/cockroachdb/errors"

	cperrors "claudeprofiles/internal/errors"
)

func TestValidName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"go", true},
		{"ios-swift", true},
		{"typescript-node", true},
		{"a1", true},
		{"2fa", true},
		{strings.Repeat("a", 64), true},
		{"", false},
		{strings.Repeat("a", 65), false},
		{"Go", false},
		{"has space", false},
		{"-leading", false},
		{"trailing-", false},
		{"double--hyphen", false},
		{"under_score", false},
		{"dot.name", false},
		{"../escape", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidName(tt.name); got != tt.want {
				t.Errorf("ValidName(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestCheckName(t *testing.T) {
	if err := CheckName("go"); err != nil {
		t.Errorf("CheckName(go) = %v, want nil", err)
	}

	err := CheckName("Not Valid")
	if !errors.Is(err, cperrors.ErrInvalidName) {
		t.Fatalf("CheckName error = %v, want ErrInvalidName", err)
	}
	if !strings.Contains(err.Error(), "Not Valid") {
		t.Errorf("error %q should include the offending value", err.Error())
	}
}

func TestProfile_Validate(t *testing.T) {
	tests := []struct {
		name    string
		profile *Profile
		wantErr string
	}{
		{
			name: "valid document",
			profile: &Profile{
				Rules:  map[string]string{"style": "x"},
				Skills: map[string]string{"table-tests": "x"},
				Variants: map[string]*Variant{
					"api": {Rules: map[string]string{"http": "x"}},
				},
			},
		},
		{
			name:    "bad rule name",
			profile: &Profile{Source: "p.json", Rules: map[string]string{"Bad Rule": "x"}},
			wantErr: "rule name",
		},
		{
			name:    "bad skill name",
			profile: &Profile{Source: "p.json", Skills: map[string]string{"UPPER": "x"}},
			wantErr: "skill name",
		},
		{
			name:    "bad variant name",
			profile: &Profile{Source: "p.json", Variants: map[string]*Variant{"No Good": {}}},
			wantErr: "variant name",
		},
		{
			name:    "null variant",
			profile: &Profile{Source: "p.json", Variants: map[string]*Variant{"web": nil}},
			wantErr: "is empty",
		},
		{
			name:    "null mcp server",
			profile: &Profile{Source: "p.json", MCPServers: map[string]*MCPServer{"ctx": nil}},
			wantErr: `mcp server "ctx" is empty`,
		},
		{
			name: "null variant mcp server",
			profile: &Profile{
				Source: "p.json",
				Variants: map[string]*Variant{
					"api": {MCPServers: map[string]*MCPServer{"ctx": nil}},
				},
			},
			wantErr: `mcp server "ctx" is empty`,
		},
		{
			name: "bad variant rule name",
			profile: &Profile{
				Source: "p.json",
				Variants: map[string]*Variant{
					"api": {Rules: map[string]string{"bad rule": "x"}},
				},
			},
			wantErr: "rule name",
		},
		{
			name: "bad variant skill name",
			profile: &Profile{
				Source: "p.json",
				Variants: map[string]*Variant{
					"api": {Skills: map[string]string{"bad_skill": "x"}},
				},
			},
			wantErr: "skill name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.profile.validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, ErrMalformed) {
				t.Fatalf("validate() = %v, want ErrMalformed", err)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("validate() = %q, want it to contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}
