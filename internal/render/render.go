package render

import (
	"bytes"
	"encoding/json"
	"maps"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"

	"claudeprofiles/internal/paths"
	"claudeprofiles/internal/profile"
	"claudeprofiles/pkg/frontmatter"
)

// Kind classifies how an artifact is written into a project.
type Kind int

const (
	// Replace artifacts are created or overwritten outright.
	Replace Kind = iota

	// Preserve artifacts are never silently overwritten: a differing
	// existing file is renamed to a backup before the new content lands.
	Preserve

	// Append artifacts contribute lines to a shared file instead of
	// owning it. Comment lines in the content are the block header;
	// the remaining lines are the entries to ensure are present.
	Append
)

// String returns the kind's lowercase name.
func (k Kind) String() string {
	switch k {
	case Replace:
		return "replace"
	case Preserve:
		return "preserve"
	case Append:
		return "append"
	}
	return "unknown"
}

// Artifact is one generated file: where it goes relative to the project
// root, its full content, and how a conflicting existing file is handled.
type Artifact struct {
	Path    string
	Content []byte
	Kind    Kind
}

// gitignoreHeader titles the block of generated ignore entries.
const gitignoreHeader = "# Claude Code (local)"

// gitignoreEntries are the local-override files that should never be
// committed.
var gitignoreEntries = []string{
	".claude/settings.local.json",
	".claude/CLAUDE.local.md",
}

// Render maps an effective configuration onto the fixed artifact layout.
// Artifacts come back in a stable order: the MCP manifest, the
// instructions file, rules and skills sorted by name, the settings file,
// and the ignore entries. Empty sections produce no artifact, so rendered
// bytes are identical for identical input.
func Render(cfg *profile.EffectiveConfig) ([]Artifact, error) {
	var artifacts []Artifact

	if len(cfg.MCPServers) > 0 {
		content, err := marshalJSON(struct {
			MCPServers map[string]*profile.MCPServer `json:"mcpServers"`
		}{cfg.MCPServers})
		if err != nil {
			return nil, errors.Wrap(err, "rendering MCP manifest")
		}
		artifacts = append(artifacts, Artifact{
			Path:    paths.MCPConfigPath(),
			Content: content,
			Kind:    Replace,
		})
	}

	if cfg.ClaudeMD != "" {
		artifacts = append(artifacts, Artifact{
			Path:    paths.InstructionsPath(),
			Content: ensureTrailingNewline([]byte(cfg.ClaudeMD)),
			Kind:    Preserve,
		})
	}

	for _, name := range sortedKeys(cfg.Rules) {
		artifacts = append(artifacts, Artifact{
			Path:    paths.RulePath(name),
			Content: ensureTrailingNewline([]byte(cfg.Rules[name])),
			Kind:    Replace,
		})
	}

	for _, name := range sortedKeys(cfg.Skills) {
		content, err := renderSkill(name, cfg.Skills[name])
		if err != nil {
			return nil, errors.Wrapf(err, "rendering skill %s", name)
		}
		artifacts = append(artifacts, Artifact{
			Path:    paths.SkillPath(name),
			Content: content,
			Kind:    Replace,
		})
	}

	if len(cfg.Settings) > 0 {
		content, err := marshalJSON(cfg.Settings)
		if err != nil {
			return nil, errors.Wrap(err, "rendering settings")
		}
		artifacts = append(artifacts, Artifact{
			Path:    paths.SettingsPath(),
			Content: content,
			Kind:    Replace,
		})
	}

	artifacts = append(artifacts, Artifact{
		Path:    paths.GitignorePath(),
		Content: gitignoreContent(),
		Kind:    Append,
	})

	return artifacts, nil
}

// skillMatter is the frontmatter generated for skills whose content does
// not carry its own.
type skillMatter struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
}

// renderSkill produces a complete SKILL.md. Content that already starts
// with a frontmatter block passes through verbatim; anything else is
// wrapped so every rendered skill has the header Claude Code expects.
func renderSkill(name, content string) ([]byte, error) {
	if hasFrontmatter(content) {
		return ensureTrailingNewline([]byte(content)), nil
	}
	return frontmatter.Format(skillMatter{
		Name:        name,
		Description: firstLineSummary(content),
	}, content)
}

func hasFrontmatter(content string) bool {
	return strings.HasPrefix(content, "---\n") || strings.HasPrefix(content, "---\r\n")
}

// firstLineSummary derives a one-line description from the first non-empty
// line of content, with any markdown heading marker stripped.
func firstLineSummary(content string) string {
	for line := range strings.Lines(content) {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "#")
		line = strings.TrimSpace(line)
		if line != "" {
			return line
		}
	}
	return ""
}

func gitignoreContent() []byte {
	var buf bytes.Buffer
	buf.WriteString(gitignoreHeader)
	buf.WriteByte('\n')
	for _, entry := range gitignoreEntries {
		buf.WriteString(entry)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

func marshalJSON(v any) ([]byte, error) {
	content, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(content, '\n'), nil
}

func ensureTrailingNewline(content []byte) []byte {
	if len(content) == 0 || content[len(content)-1] == '\n' {
		return content
	}
	return append(content, '\n')
}

// sortedKeys gives each section a stable artifact order.
func sortedKeys(m map[string]string) []string {
	keys := slices.Collect(maps.Keys(m))
	slices.Sort(keys)
	return keys
}
