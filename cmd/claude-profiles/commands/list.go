package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"claudeprofiles/internal/profile"
)

var listJSON bool

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available profiles",
	Long: `List the profiles the store can resolve: the built-in set plus any
files in the override directory. An override shadows the built-in
profile of the same stack.

Profiles that fail to load are still listed, with the load error shown
in place of their description.`,
	Example: `  # List all profiles
  claude-profiles list

  # Output as JSON
  claude-profiles list --json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

// listEntry represents one profile in list output.
type listEntry struct {
	Stack       string   `json:"stack"`
	DisplayName string   `json:"display_name,omitempty"`
	Description string   `json:"description,omitempty"`
	Variants    []string `json:"variants,omitempty"`
	Source      string   `json:"source,omitempty"`
	Error       string   `json:"error,omitempty"`
}

func runList(_ *cobra.Command, _ []string) error {
	return runListWithWriter(os.Stdout)
}

// runListWithWriter allows injecting a writer for testing.
func runListWithWriter(w io.Writer) error {
	store, err := profileStore()
	if err != nil {
		return err
	}

	entries, err := collectListEntries(store)
	if err != nil {
		return err
	}

	if listJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}
	return outputListTabular(w, entries)
}

// collectListEntries resolves every listed stack, keeping load failures as
// per-entry errors so one broken override cannot hide the rest.
func collectListEntries(store *profile.Store) ([]listEntry, error) {
	stacks, err := store.List()
	if err != nil {
		return nil, err
	}

	entries := make([]listEntry, 0, len(stacks))
	for _, stack := range stacks {
		p, err := store.Resolve(stack)
		if err != nil {
			entries = append(entries, listEntry{Stack: stack, Error: err.Error()})
			continue
		}
		entries = append(entries, listEntry{
			Stack:       stack,
			DisplayName: p.DisplayName,
			Description: p.Description,
			Variants:    p.VariantNames(),
			Source:      p.Source,
		})
	}
	return entries, nil
}

// outputListTabular outputs profiles in tabular format.
func outputListTabular(w io.Writer, entries []listEntry) error {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No profiles found.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%sSTACK%s\t%sNAME%s\t%sVARIANTS%s\t%sDESCRIPTION%s\n",
		colorBold, colorReset,
		colorBold, colorReset,
		colorBold, colorReset,
		colorBold, colorReset)

	for _, e := range entries {
		if e.Error != "" {
			fmt.Fprintf(tw, "%s%s%s\t%s(load error)%s\t\t%s\n",
				colorGreen, e.Stack, colorReset,
				colorYellow, colorReset,
				truncate(e.Error, 60))
			continue
		}

		variants := strings.Join(e.Variants, ", ")
		if variants == "" {
			variants = "-"
		}
		fmt.Fprintf(tw, "%s%s%s\t%s\t%s\t%s\n",
			colorGreen, e.Stack, colorReset,
			e.DisplayName, variants,
			truncate(e.Description, 60))
	}

	return tw.Flush()
}
