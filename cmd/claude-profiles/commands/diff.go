package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"claudeprofiles/internal/apply"
	cperrors "claudeprofiles/internal/errors"
	"claudeprofiles/internal/profile"
	"claudeprofiles/internal/render"
)

var (
	diffVariant string
	diffDir     string
)

func init() {
	diffCmd.Flags().StringVar(&diffVariant, "variant", "", "diff against this variant instead of the detected one")
	diffCmd.Flags().StringVarP(&diffDir, "dir", "d", ".", "project directory to compare against")
	rootCmd.AddCommand(diffCmd)
}

var diffCmd = &cobra.Command{
	Use:   "diff <profile|auto>",
	Short: "Show what apply would change",
	Long: `Show unified diffs between the project's current files and what the
resolved profile would write.

Resolution works exactly like apply: pass a profile name or "auto",
and use --variant to override the inspected variant. Nothing is
written.`,
	Example: `  # Diff the detected stack's profile
  claude-profiles diff auto

  # Diff a specific profile and variant
  claude-profiles diff python --variant fastapi`,
	Args: cobra.ExactArgs(1),
	RunE: runDiff,
}

func runDiff(_ *cobra.Command, args []string) error {
	return runDiffWithWriter(os.Stdout, args[0])
}

// runDiffWithWriter allows injecting a writer for testing.
func runDiffWithWriter(w io.Writer, arg string) error {
	store, err := profileStore()
	if err != nil {
		return err
	}

	p, variant, err := resolveTarget(store, arg, diffVariant, diffDir)
	if err != nil {
		return err
	}

	eff := profile.Merge(p, variant)
	artifacts, err := render.Render(eff)
	if err != nil {
		return err
	}

	ctrl := apply.New(diffDir)
	plan, err := ctrl.Plan(artifacts)
	if err != nil {
		return cperrors.NewSystemError(err, "Check permissions on the project directory")
	}

	diffs := ctrl.Diffs(plan)
	if len(diffs) == 0 {
		fmt.Fprintf(w, "Everything up to date for %s\n", targetLabel(p, variant))
		return nil
	}

	for i, d := range diffs {
		if i > 0 {
			fmt.Fprintln(w)
		}
		writeUnified(w, d.Unified)
	}
	fmt.Fprintf(w, "\n%d of %d artifacts differ\n", len(diffs), len(plan.Actions))
	return nil
}

// writeUnified prints a unified diff with conventional coloring.
func writeUnified(w io.Writer, unified string) {
	for line := range strings.Lines(unified) {
		line = strings.TrimSuffix(line, "\n")
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			fmt.Fprintf(w, "%s%s%s\n", colorBold, line, colorReset)
		case strings.HasPrefix(line, "@@"):
			fmt.Fprintf(w, "%s%s%s\n", colorCyan, line, colorReset)
		case strings.HasPrefix(line, "+"):
			fmt.Fprintf(w, "%s%s%s\n", colorGreen, line, colorReset)
		case strings.HasPrefix(line, "-"):
			fmt.Fprintf(w, "%s%s%s\n", colorRed, line, colorReset)
		default:
			fmt.Fprintln(w, line)
		}
	}
}
