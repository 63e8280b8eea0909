package commands

import (
	"fmt"
	"io"
	"log/slog"
	"maps"
	"path/filepath"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"

	"claudeprofiles/internal/apply"
	"claudeprofiles/internal/detect"
	cperrors "claudeprofiles/internal/errors"
	"claudeprofiles/internal/profile"
)

// ANSI color codes for terminal output.
const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorCyan   = "\033[36m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
	colorGray   = "\033[90m"
)

// truncate shortens a string to maxLen characters, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

// sortedKeys returns the map's keys in sorted order.
func sortedKeys[M ~map[string]V, V any](m M) []string {
	keys := slices.Collect(maps.Keys(m))
	slices.Sort(keys)
	return keys
}

// overrideDir returns the profile override directory to read and write.
// The --profiles-dir flag wins over the configured directory.
func overrideDir() (string, error) {
	if profilesDir != "" {
		return profilesDir, nil
	}
	return cfg.ResolveProfilesDir()
}

// profileStore builds the store commands resolve profiles through.
func profileStore() (*profile.Store, error) {
	dir, err := overrideDir()
	if err != nil {
		return nil, err
	}
	return profile.NewStore(dir), nil
}

// resolveTarget resolves the profile argument of apply and diff. The literal
// "auto" detects the stack from dir; anything else names a profile directly.
// The returned variant is already checked against the profile.
func resolveTarget(store *profile.Store, arg, variantFlag, dir string) (*profile.Profile, string, error) {
	stack := arg
	if arg == "auto" {
		detected, ok := detect.Project(dir)
		if !ok {
			return nil, "", cperrors.NewUserError(
				errors.Newf("no known project type in %s", dir),
				"Pass a profile explicitly; 'claude-profiles list' shows what is available")
		}
		stack = detected
	}

	p, err := store.Resolve(stack)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return nil, "", cperrors.NewUserError(err, availableSuggestion(store))
		}
		return nil, "", err
	}

	return p, selectVariant(p, variantFlag, dir), nil
}

// selectVariant picks the variant to merge: an explicit flag wins, otherwise
// the project directory is inspected. Variants the profile does not define
// fall back to the base sections.
func selectVariant(p *profile.Profile, flag, dir string) string {
	if flag != "" {
		if !p.HasVariant(flag) {
			slog.Warn("profile does not define variant, applying base sections",
				"profile", p.Name, "variant", flag)
			return ""
		}
		return flag
	}

	v := detect.Variant(p.Name, dir)
	if v == "" {
		return ""
	}
	if !p.HasVariant(v) {
		slog.Debug("detected variant has no overrides in profile",
			"profile", p.Name, "variant", v)
		return ""
	}
	return v
}

// availableSuggestion names the profiles the store can resolve.
func availableSuggestion(store *profile.Store) string {
	stacks, err := store.List()
	if err != nil || len(stacks) == 0 {
		return "Run 'claude-profiles list' to see available profiles"
	}
	return "Available profiles: " + strings.Join(stacks, ", ")
}

// targetLabel formats a profile plus variant for report headers.
func targetLabel(p *profile.Profile, variant string) string {
	if variant != "" {
		return p.Name + "/" + variant
	}
	return p.Name
}

// printPlan writes one styled line per planned action.
func printPlan(w io.Writer, plan *apply.Plan) {
	for _, a := range plan.Actions {
		switch a.Kind {
		case apply.ActionCreate:
			fmt.Fprintf(w, "  %s+%s %s\n", colorGreen, colorReset, a.Artifact.Path)
		case apply.ActionSkip:
			fmt.Fprintf(w, "  %s=%s %s\n", colorGray, colorReset, a.Artifact.Path)
		case apply.ActionBackup:
			fmt.Fprintf(w, "  %s~%s %s %s(backup: %s)%s\n",
				colorYellow, colorReset, a.Artifact.Path,
				colorGray, filepath.Base(a.BackupPath), colorReset)
		default:
			fmt.Fprintf(w, "  %s~%s %s\n", colorYellow, colorReset, a.Artifact.Path)
		}
	}
}
