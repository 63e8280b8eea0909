// Package frontmatter reads and writes the YAML frontmatter block at the
// top of Markdown documents such as SKILL.md files.
//
// A block is delimited by lines containing only "---". [Parse] splits a
// document into typed frontmatter and body, [ParseHeader] reads just the
// block, and [Format] assembles a document from frontmatter and body.
// Frontmatter is optional on the read side: documents without an opening
// delimiter pass through as pure body. Unix and Windows line endings are
// both accepted.
package frontmatter
