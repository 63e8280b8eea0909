package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	cperrors "claudeprofiles/internal/errors"
	"claudeprofiles/internal/paths"
	"claudeprofiles/internal/profile"
	"claudeprofiles/pkg/fileutil"
)

var (
	createFrom   string
	createFormat string
	createForce  bool
)

func init() {
	createCmd.Flags().StringVar(&createFrom, "from", "", "copy this profile as the starting point")
	createCmd.Flags().StringVar(&createFormat, "format", "json", "file format: json, yaml")
	createCmd.Flags().BoolVarP(&createForce, "force", "f", false, "Overwrite an existing profile of the same name")
	rootCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a profile in the override directory",
	Long: `Scaffold a new profile file in the override directory.

By default a minimal starter document is written. Pass --from to copy
an existing profile instead, which is the usual way to tweak a
built-in under a new name.

The name becomes both the file name and the stack identifier, so it
must be lowercase letters, digits, and hyphens.`,
	Example: `  # Scaffold an empty profile
  claude-profiles create zig

  # Start from the built-in go profile
  claude-profiles create go-grpc --from go

  # Write YAML instead of JSON
  claude-profiles create zig --format yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runCreate,
}

func runCreate(_ *cobra.Command, args []string) error {
	return runCreateWithWriter(os.Stdout, args[0])
}

// runCreateWithWriter allows injecting a writer for testing.
func runCreateWithWriter(w io.Writer, name string) error {
	if err := profile.CheckName(name); err != nil {
		return cperrors.NewUserError(err,
			"Profile names use lowercase letters, digits, and hyphens")
	}
	if createFormat != "json" && createFormat != "yaml" {
		return cperrors.NewUserError(errors.Newf("unknown format %q", createFormat),
			"Use --format json or --format yaml")
	}

	dir, err := overrideDir()
	if err != nil {
		return err
	}

	// Refuse to shadow an existing file regardless of its extension
	if !createForce {
		for _, ext := range []string{".json", ".yaml", ".yml"} {
			existing := filepath.Join(dir, name+ext)
			if _, err := os.Stat(existing); err == nil {
				fmt.Fprintf(w, "Profile %s already exists at %s\n", name, existing)
				fmt.Fprintln(w, "Use --force to overwrite")
				return nil
			}
		}
	}

	var doc *profile.Profile
	if createFrom != "" {
		store, err := profileStore()
		if err != nil {
			return err
		}
		base, err := store.Resolve(createFrom)
		if err != nil {
			if errors.Is(err, profile.ErrNotFound) {
				return cperrors.NewUserError(err, availableSuggestion(store))
			}
			return err
		}
		doc = base
	} else {
		doc = scaffold(name)
	}

	if err := paths.EnsureDir(dir, 0); err != nil {
		return errors.Wrapf(err, "creating %s", dir)
	}

	target := filepath.Join(dir, name+"."+createFormat)
	if createFormat == "json" {
		err = fileutil.AtomicWriteJSON(target, doc)
	} else {
		err = fileutil.AtomicWriteYAML(target, doc)
	}
	if err != nil {
		return errors.Wrapf(err, "writing %s", target)
	}

	fmt.Fprintf(w, "Created %s\n", target)
	fmt.Fprintf(w, "Edit it, then run: claude-profiles apply %s\n", name)
	return nil
}

// scaffold returns a minimal starter document for a new profile.
func scaffold(name string) *profile.Profile {
	return &profile.Profile{
		DisplayName: displayTitle(name),
		Description: "Custom profile",
		ClaudeMD: "# Project notes\n\n" +
			"Describe the conventions Claude should follow in this project.\n",
		Settings: map[string]any{
			"permissions": map[string]any{
				"allow": []any{},
			},
		},
	}
}

// displayTitle turns a stack identifier into a human-readable title,
// "typescript-node" becoming "Typescript Node".
func displayTitle(name string) string {
	words := strings.Split(name, "-")
	for i, word := range words {
		if word == "" {
			continue
		}
		r := []rune(word)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
