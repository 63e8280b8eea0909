package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"claudeprofiles/internal/detect"
)

var (
	detectDir  string
	detectJSON bool
)

func init() {
	detectCmd.Flags().StringVarP(&detectDir, "dir", "d", ".", "project directory to inspect")
	detectCmd.Flags().BoolVar(&detectJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(detectCmd)
}

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Detect the project stack",
	Long: `Inspect a project directory and report its stack.

Detection looks for marker files (go.mod, Cargo.toml, package.json,
pyproject.toml, and so on) in the directory's top level. Rules are
checked in a fixed order from most to least specific, and the first
match wins. When the matching profile distinguishes frameworks, the
directory is inspected further to pick a variant.

A directory with no recognized markers is a normal outcome, not an
error: the command reports it and exits zero.`,
	Example: `  # Detect the current directory
  claude-profiles detect

  # Detect another project
  claude-profiles detect -d ~/src/api

  # Machine-readable output
  claude-profiles detect --json`,
	Args: cobra.NoArgs,
	RunE: runDetect,
}

// detectOutput represents the JSON output format for detect.
type detectOutput struct {
	Stack   string `json:"stack,omitempty"`
	Variant string `json:"variant,omitempty"`
	Known   bool   `json:"known"`
}

func runDetect(_ *cobra.Command, _ []string) error {
	return runDetectWithWriter(os.Stdout)
}

// runDetectWithWriter allows injecting a writer for testing.
func runDetectWithWriter(w io.Writer) error {
	stack, ok := detect.Project(detectDir)

	var variant string
	if ok {
		variant = detect.Variant(stack, detectDir)
	}

	if detectJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(detectOutput{Stack: stack, Variant: variant, Known: ok})
	}

	if !ok {
		fmt.Fprintln(w, "No known project type detected.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Apply a profile explicitly with:")
		fmt.Fprintln(w, "  claude-profiles apply <profile>")
		return nil
	}

	fmt.Fprintf(w, "Stack:   %s%s%s\n", colorGreen, stack, colorReset)
	if variant != "" {
		fmt.Fprintf(w, "Variant: %s%s%s\n", colorGreen, variant, colorReset)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Apply this profile with:")
	fmt.Fprintf(w, "  claude-profiles apply %s\n", stack)
	return nil
}
