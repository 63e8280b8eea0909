// Package profile defines the profile document model and everything that
// operates on it: loading documents from disk or the embedded built-in set,
// and merging a base profile with one of its variants.
//
// A profile is one stack's Claude Code configuration: MCP servers, a
// CLAUDE.md body, named rules and skills, settings, and per-framework
// variants. Documents are JSON (built-ins) or JSON/YAML (user overrides in
// ~/.claude-profiles), resolved user-first so a user file shadows the
// built-in of the same stack.
//
// The merge result, [EffectiveConfig], is the sole input to the artifact
// renderer. Merging is total: any variant identifier, including unknown
// ones, yields a usable config.
package profile
