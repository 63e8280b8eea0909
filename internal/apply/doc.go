// Package apply turns rendered artifacts into filesystem changes.
//
// The three operations share one read-only planning step: Plan inspects
// the project and decides, per artifact, whether to create, replace,
// back-up-then-write, append, or skip. Execute carries a plan out with
// atomic per-file writes and stops at the first failure without rolling
// back. Diffs renders unified diffs from a plan instead of writing.
//
// CLAUDE.md is the one artifact treated as precious: a differing existing
// file is renamed to a timestamped .bak sibling before the new content is
// written, and a failed rename aborts the overwrite.
package apply
