// Package paths owns every file system location the claude-profiles CLI
// reads or writes.
//
// Two families of paths live here:
//
//   - Tool locations: the viper config directory under the XDG config home
//     and the user profile override directory (~/.claude-profiles by default).
//
//   - Artifact locations: the project-relative paths of the files an apply
//     run produces. These are fixed by Claude Code's layout and are the
//     stable output contract of the tool:
//
//	| Artifact        | Project-relative path          |
//	|-----------------|--------------------------------|
//	| MCP config      | .mcp.json                      |
//	| Instructions    | .claude/CLAUDE.md              |
//	| Rule <name>     | .claude/rules/<name>.md        |
//	| Skill <name>    | .claude/skills/<name>/SKILL.md |
//	| Settings        | .claude/settings.json          |
//	| Ignore entries  | .gitignore                     |
//
// Artifact helpers return paths relative to the project root; callers join
// them onto the root they operate on. Nothing in this package touches the
// file system except [EnsureDir].
package paths
