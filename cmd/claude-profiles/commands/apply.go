package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"claudeprofiles/internal/apply"
	cperrors "claudeprofiles/internal/errors"
	"claudeprofiles/internal/profile"
	"claudeprofiles/internal/render"
)

var (
	applyVariant string
	applyDir     string
	applyDryRun  bool
)

func init() {
	applyCmd.Flags().StringVar(&applyVariant, "variant", "", "apply this variant instead of the detected one")
	applyCmd.Flags().StringVarP(&applyDir, "dir", "d", ".", "project directory to write into")
	applyCmd.Flags().BoolVar(&applyDryRun, "dry-run", false, "report planned changes without writing anything")
	rootCmd.AddCommand(applyCmd)
}

var applyCmd = &cobra.Command{
	Use:   "apply <profile|auto>",
	Short: "Write a profile's configuration into a project",
	Long: `Write the resolved profile's artifacts into the project directory.

Pass a profile name, or "auto" to use the detected stack. When the
profile defines variants, the project is inspected to pick one; the
--variant flag overrides the inspection.

Files already holding the planned content are left alone. An existing
CLAUDE.md that differs is moved to a timestamped .bak file before the
new one is written, and .gitignore only gains the entries it is
missing.`,
	Example: `  # Apply the profile for the detected stack
  claude-profiles apply auto

  # Apply a specific profile and variant
  claude-profiles apply python --variant fastapi

  # Preview without writing
  claude-profiles apply auto --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: runApply,
}

func runApply(_ *cobra.Command, args []string) error {
	return runApplyWithWriter(os.Stdout, args[0])
}

// runApplyWithWriter allows injecting a writer for testing.
func runApplyWithWriter(w io.Writer, arg string) error {
	store, err := profileStore()
	if err != nil {
		return err
	}

	p, variant, err := resolveTarget(store, arg, applyVariant, applyDir)
	if err != nil {
		return err
	}

	eff := profile.Merge(p, variant)
	artifacts, err := render.Render(eff)
	if err != nil {
		return err
	}

	ctrl := apply.New(applyDir)
	plan, err := ctrl.Plan(artifacts)
	if err != nil {
		return cperrors.NewSystemError(err, "Check permissions on the project directory")
	}

	fmt.Fprintf(w, "%sProfile: %s%s %s(%s)%s\n",
		colorCyan+colorBold, targetLabel(p, variant), colorReset,
		colorGray, p.Source, colorReset)
	printPlan(w, plan)

	if applyDryRun {
		fmt.Fprintf(w, "\nDry run: %d of %d artifacts would change\n",
			plan.Changes(), len(plan.Actions))
		return nil
	}

	if plan.Changes() == 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Everything up to date")
		return nil
	}

	if err := ctrl.Execute(plan); err != nil {
		return cperrors.NewSystemError(err, "Fix the underlying failure and re-run apply")
	}

	fmt.Fprintf(w, "\nApplied %d of %d artifacts\n", plan.Changes(), len(plan.Actions))
	return nil
}
