package commands

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"claudeprofiles/internal/paths"
	"claudeprofiles/internal/profile"
	"claudeprofiles/pkg/fileutil"
)

var initForce bool

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite existing profile files")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Seed the override directory with the built-in profiles",
	Long: `Copy every built-in profile into the override directory as editable
JSON files.

Edited copies shadow the built-ins, so this is the starting point for
customizing what apply writes. An override directory that already has
files in it is left alone unless --force is given.`,
	Example: `  # Seed ~/.claude-profiles
  claude-profiles init

  # Re-seed, overwriting edited copies
  claude-profiles init --force

  See Also: claude-profiles create, claude-profiles list`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func runInit(_ *cobra.Command, _ []string) error {
	return runInitWithWriter(os.Stdout)
}

// runInitWithWriter allows injecting a writer for testing.
func runInitWithWriter(w io.Writer) error {
	dir, err := overrideDir()
	if err != nil {
		return err
	}

	// Check if the directory already holds profiles
	entries, err := os.ReadDir(dir)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return errors.Wrapf(err, "reading %s", dir)
	}
	if len(entries) > 0 && !initForce {
		fmt.Fprintf(w, "Profile directory %s is not empty\n", dir)
		fmt.Fprintln(w, "Use --force to overwrite")
		return nil
	}

	if err := paths.EnsureDir(dir, 0); err != nil {
		return errors.Wrapf(err, "creating %s", dir)
	}

	builtins := profile.BuiltinFS()
	files, err := fs.ReadDir(builtins, ".")
	if err != nil {
		return errors.Wrap(err, "reading built-in profiles")
	}

	written := 0
	for _, e := range files {
		if e.IsDir() {
			continue
		}
		data, err := fs.ReadFile(builtins, e.Name())
		if err != nil {
			return errors.Wrapf(err, "reading built-in %s", e.Name())
		}
		target := filepath.Join(dir, e.Name())
		if err := fileutil.AtomicWriteFile(target, data, 0o644); err != nil {
			return errors.Wrapf(err, "writing %s", target)
		}
		fmt.Fprintf(w, "  %s+%s %s\n", colorGreen, colorReset, e.Name())
		written++
	}

	fmt.Fprintf(w, "\nSeeded %d profiles into %s\n", written, dir)
	return nil
}
