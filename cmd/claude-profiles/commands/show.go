package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	cperrors "claudeprofiles/internal/errors"
	"claudeprofiles/internal/logging"
	"claudeprofiles/internal/profile"
	"claudeprofiles/internal/redact"
	"claudeprofiles/pkg/frontmatter"
)

var showJSON bool

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show [profile]",
	Short: "Show a profile's sections",
	Long: `Show what a profile contains: its MCP servers, instructions, rules,
skills, settings, and variants.

Secret-looking environment values and headers are masked in both text
and JSON output. Without an argument on a terminal, a fuzzy picker
lists the available profiles.`,
	Example: `  # Show the python profile
  claude-profiles show python

  # Pick a profile interactively
  claude-profiles show

  # Full document as JSON, secrets masked
  claude-profiles show go --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func runShow(_ *cobra.Command, args []string) error {
	store, err := profileStore()
	if err != nil {
		return err
	}

	var stack string
	if len(args) > 0 {
		stack = args[0]
	} else {
		stack, err = pickProfile(store)
		if err != nil {
			return err
		}
		if stack == "" {
			// Picker aborted
			return nil
		}
	}

	return runShowWithWriter(os.Stdout, store, stack)
}

// pickProfile lets the user choose a profile interactively.
// Returns "" when the picker is aborted.
func pickProfile(store *profile.Store) (string, error) {
	if !logging.IsTTY(os.Stdin) {
		return "", cperrors.NewUserError(errors.New("no profile given"),
			"Pass a profile name: claude-profiles show <profile>")
	}

	stacks, err := store.List()
	if err != nil {
		return "", err
	}
	if len(stacks) == 0 {
		return "", errors.New("no profiles found")
	}

	idx, err := fuzzyfinder.Find(
		stacks,
		func(i int) string {
			return stacks[i]
		},
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			p, err := store.Resolve(stacks[i])
			if err != nil {
				return err.Error()
			}
			return fmt.Sprintf("%s\n\n%s", p.DisplayName, p.Description)
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return "", nil
		}
		return "", errors.Wrap(err, "interactive profile selection failed")
	}

	return stacks[idx], nil
}

// runShowWithWriter allows injecting a writer and store for testing.
func runShowWithWriter(w io.Writer, store *profile.Store, stack string) error {
	p, err := store.Resolve(stack)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return cperrors.NewUserError(err, availableSuggestion(store))
		}
		return err
	}

	if showJSON {
		return outputShowJSON(w, p)
	}
	return outputShowText(w, p)
}

// outputShowJSON outputs the full profile document with secrets masked.
func outputShowJSON(w io.Writer, p *profile.Profile) error {
	out := struct {
		Stack  string `json:"stack"`
		Source string `json:"source"`
		*profile.Profile
	}{p.Name, p.Source, maskedCopy(p)}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// outputShowText outputs a section-by-section overview of the profile.
func outputShowText(w io.Writer, p *profile.Profile) error {
	m := maskedCopy(p)

	title := p.DisplayName
	if title == "" {
		title = p.Name
	}
	fmt.Fprintf(w, "%sProfile: %s%s %s(%s)%s\n",
		colorCyan+colorBold, title, colorReset,
		colorGray, p.Source, colorReset)
	if p.Description != "" {
		fmt.Fprintf(w, "  %s\n", p.Description)
	}

	// MCP servers
	fmt.Fprintf(w, "\n%sMCP Servers:%s", colorBold, colorReset)
	if len(m.MCPServers) == 0 {
		fmt.Fprintf(w, " %s(none)%s\n", colorGray, colorReset)
	} else {
		fmt.Fprintln(w)
		for _, name := range sortedKeys(m.MCPServers) {
			printServer(w, name, m.MCPServers[name])
		}
	}

	// Instructions
	fmt.Fprintf(w, "\n%sCLAUDE.md:%s", colorBold, colorReset)
	if p.ClaudeMD == "" {
		fmt.Fprintf(w, " %s(none)%s\n", colorGray, colorReset)
	} else {
		fmt.Fprintf(w, " %d lines\n", countLines(p.ClaudeMD))
	}

	// Rules
	fmt.Fprintf(w, "\n%sRules:%s", colorBold, colorReset)
	if len(p.Rules) == 0 {
		fmt.Fprintf(w, " %s(none)%s\n", colorGray, colorReset)
	} else {
		fmt.Fprintln(w)
		for _, name := range sortedKeys(p.Rules) {
			fmt.Fprintf(w, "  %s%s%s (%d lines)\n",
				colorGreen, name, colorReset, countLines(p.Rules[name]))
		}
	}

	// Skills
	fmt.Fprintf(w, "\n%sSkills:%s", colorBold, colorReset)
	if len(p.Skills) == 0 {
		fmt.Fprintf(w, " %s(none)%s\n", colorGray, colorReset)
	} else {
		fmt.Fprintln(w)
		for _, name := range sortedKeys(p.Skills) {
			fmt.Fprintf(w, "  %s%s%s", colorGreen, name, colorReset)
			if desc := skillDescription(p.Skills[name]); desc != "" {
				fmt.Fprintf(w, " - %s", truncate(desc, 60))
			}
			fmt.Fprintln(w)
		}
	}

	// Settings
	fmt.Fprintf(w, "\n%sSettings:%s", colorBold, colorReset)
	if len(p.Settings) == 0 {
		fmt.Fprintf(w, " %s(none)%s\n", colorGray, colorReset)
	} else {
		fmt.Fprintf(w, " %s\n", strings.Join(sortedKeys(p.Settings), ", "))
	}

	// Variants
	fmt.Fprintf(w, "\n%sVariants:%s", colorBold, colorReset)
	if len(p.Variants) == 0 {
		fmt.Fprintf(w, " %s(none)%s\n", colorGray, colorReset)
	} else {
		fmt.Fprintln(w)
		for _, id := range p.VariantNames() {
			v := p.Variants[id]
			fmt.Fprintf(w, "  %s%s%s", colorGreen, id, colorReset)
			if v != nil && v.DisplayName != "" {
				fmt.Fprintf(w, " - %s", v.DisplayName)
			}
			if sections := variantSections(v); len(sections) > 0 {
				fmt.Fprintf(w, " %s(overrides: %s)%s",
					colorGray, strings.Join(sections, ", "), colorReset)
			}
			fmt.Fprintln(w)
		}
	}

	return nil
}

// printServer writes one MCP server entry. The server is already masked.
func printServer(w io.Writer, name string, srv *profile.MCPServer) {
	if srv == nil {
		return
	}

	fmt.Fprintf(w, "  %s%s%s [%s]\n", colorGreen, name, colorReset, serverTransport(srv))
	if srv.Command != "" {
		cmdline := srv.Command
		if len(srv.Args) > 0 {
			cmdline += " " + strings.Join(srv.Args, " ")
		}
		fmt.Fprintf(w, "    Command: %s\n", cmdline)
	}
	if srv.URL != "" {
		fmt.Fprintf(w, "    URL: %s\n", srv.URL)
	}
	if len(srv.Env) > 0 {
		fmt.Fprintln(w, "    Env:")
		for _, k := range sortedKeys(srv.Env) {
			fmt.Fprintf(w, "      %s=%s\n", k, srv.Env[k])
		}
	}
	if len(srv.Headers) > 0 {
		fmt.Fprintln(w, "    Headers:")
		for _, k := range sortedKeys(srv.Headers) {
			fmt.Fprintf(w, "      %s: %s\n", k, srv.Headers[k])
		}
	}
	if srv.Disabled {
		fmt.Fprintf(w, "    %s(disabled)%s\n", colorGray, colorReset)
	}
}

// serverTransport names the transport a server uses.
func serverTransport(srv *profile.MCPServer) string {
	if srv.Type != "" {
		return srv.Type
	}
	if srv.URL != "" {
		return "http"
	}
	return "stdio"
}

// maskedCopy returns a deep enough copy of the profile with secret env
// values, headers, and URL credentials masked, in the base and in
// every variant.
func maskedCopy(p *profile.Profile) *profile.Profile {
	out := *p
	out.MCPServers = maskServers(p.MCPServers)

	if p.Variants != nil {
		vs := make(map[string]*profile.Variant, len(p.Variants))
		for id, v := range p.Variants {
			if v == nil {
				vs[id] = nil
				continue
			}
			vv := *v
			vv.MCPServers = maskServers(v.MCPServers)
			vs[id] = &vv
		}
		out.Variants = vs
	}

	return &out
}

func maskServers(servers map[string]*profile.MCPServer) map[string]*profile.MCPServer {
	if servers == nil {
		return nil
	}
	out := make(map[string]*profile.MCPServer, len(servers))
	for name, srv := range servers {
		c := srv.Clone()
		if c != nil {
			c.Env = redact.MaskSecrets(c.Env)
			c.Headers = redact.MaskSecrets(c.Headers)
			c.URL = redact.MaskURL(c.URL)
		}
		out[name] = c
	}
	return out
}

// skillHeader is the subset of skill frontmatter shown in listings.
type skillHeader struct {
	Description string `yaml:"description"`
}

// skillDescription extracts a one-line description from skill content:
// the frontmatter description when present, the first non-empty line
// otherwise.
func skillDescription(content string) string {
	if strings.HasPrefix(content, "---\n") || strings.HasPrefix(content, "---\r\n") {
		var h skillHeader
		if err := frontmatter.ParseHeader(strings.NewReader(content), &h); err == nil {
			return h.Description
		}
		return ""
	}

	for line := range strings.Lines(content) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		return strings.TrimSpace(strings.TrimLeft(line, "#"))
	}
	return ""
}

// countLines counts newline-terminated and trailing partial lines.
func countLines(s string) int {
	if s == "" {
		return 0
	}
	n := 0
	for range strings.Lines(s) {
		n++
	}
	return n
}
