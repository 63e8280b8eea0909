// Package render maps an effective configuration onto the fixed set of
// files Claude Code reads from a project: the .mcp.json manifest,
// .claude/CLAUDE.md, per-name rule and skill files, .claude/settings.json,
// and a block of .gitignore entries for local overrides.
//
// Rendering is pure: it produces artifacts (path, content, conflict kind)
// and never touches the filesystem. The apply package decides what to do
// with them.
package render
