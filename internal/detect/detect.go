package detect

import (
	"os"
	"path/filepath"
)

// MatchPolicy controls how a rule's markers combine.
// The zero value is MatchAny.
type MatchPolicy int

const (
	// MatchAny satisfies the rule when at least one marker matches.
	MatchAny MatchPolicy = iota

	// MatchAll satisfies the rule only when every marker matches.
	MatchAll
)

// Rule ties a stack identifier to the marker patterns that identify it.
type Rule struct {
	// Stack is the identifier reported when the rule matches.
	Stack string

	// Markers are non-recursive glob patterns evaluated against the
	// project root. A pattern may name one subdirectory level, as in
	// "app/build.gradle*".
	Markers []string

	// Policy controls whether one marker or every marker must match.
	Policy MatchPolicy
}

// DefaultRules is the ordered detection table. Declaration order encodes
// specificity: a stack must precede any broader stack whose markers it
// shares, so an iOS project with a package.json still detects as ios-swift
// and a tsx project never falls through to plain typescript-node.
var DefaultRules = []Rule{
	{Stack: "ios-swift", Markers: []string{"*.xcodeproj", "*.xcworkspace", "Package.swift"}},
	// pubspec.yaml is unique to Dart.
	{Stack: "flutter", Markers: []string{"pubspec.yaml"}},
	// The app/ module directory separates Android from plain Gradle Java.
	{Stack: "android", Markers: []string{"app/build.gradle*", "app/build.gradle.kts"}},
	{Stack: "java", Markers: []string{"pom.xml"}},
	{Stack: "java", Markers: []string{"build.gradle", "build.gradle.kts", "gradlew"}},
	{Stack: "rust", Markers: []string{"Cargo.toml"}},
	{Stack: "go", Markers: []string{"go.mod"}},
	{Stack: "typescript-react", Markers: []string{"next.config.*", "*.tsx"}},
	// tsconfig without tsx is backend TypeScript.
	{Stack: "typescript-node", Markers: []string{"tsconfig.json"}},
	{Stack: "javascript-node", Markers: []string{"package.json"}},
	{Stack: "python", Markers: []string{"pyproject.toml", "setup.py", "requirements.txt", "Pipfile"}},
	{Stack: "cpp", Markers: []string{"CMakeLists.txt", "Makefile"}},
}

// Match evaluates rules in declared order against the project at root and
// returns the stack of the first satisfied rule. ok is false when no rule
// matches; that is a valid detection outcome, not an error.
func Match(root string, rules []Rule) (stack string, ok bool) {
	for _, r := range rules {
		if r.matches(root) {
			return r.Stack, true
		}
	}
	return "", false
}

// Project detects the stack of the project at root using DefaultRules.
func Project(root string) (string, bool) {
	return Match(root, DefaultRules)
}

// matches evaluates the rule's markers under root according to its policy.
func (r Rule) matches(root string) bool {
	if len(r.Markers) == 0 {
		return false
	}
	for _, marker := range r.Markers {
		hit := markerMatches(root, marker)
		if r.Policy == MatchAll && !hit {
			return false
		}
		if r.Policy == MatchAny && hit {
			return true
		}
	}
	return r.Policy == MatchAll
}

// markerMatches reports whether the glob pattern matches anything under
// root. Bad patterns and unreadable directories count as no match.
func markerMatches(root, marker string) bool {
	matches, err := filepath.Glob(filepath.Join(root, marker))
	return err == nil && len(matches) > 0
}

// fileExists reports whether path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
