// Package detect identifies a project's technology stack from marker files
// in its root directory.
//
// Detection is a two step process. Match walks an ordered rule table and
// returns the stack of the first rule whose marker globs are satisfied;
// declaration order encodes specificity, so narrow stacks are listed before
// broad ones. Variant then refines the stack by inspecting well-known
// manifests (pom.xml, package.json, pyproject.toml) for framework signals.
//
// Both steps are read-only and total: an unrecognized project is reported
// as not detected rather than as an error, and malformed manifests are
// treated as carrying no signal.
package detect
