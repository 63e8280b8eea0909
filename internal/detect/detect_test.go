package detect

import (
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestProject_DefaultRules(t *testing.T) {
	tests := []struct {
		name  string
		files []string
		want  string
	}{
		{"swift package", []string{"Package.swift"}, "ios-swift"},
		{"flutter", []string{"pubspec.yaml"}, "flutter"},
		{"android", []string{"app/build.gradle"}, "android"},
		{"android kotlin dsl", []string{"app/build.gradle.kts"}, "android"},
		{"maven", []string{"pom.xml"}, "java"},
		{"gradle", []string{"build.gradle"}, "java"},
		{"gradle wrapper only", []string{"gradlew"}, "java"},
		{"rust", []string{"Cargo.toml"}, "rust"},
		{"go", []string{"go.mod"}, "go"},
		{"next config", []string{"next.config.js", "package.json"}, "typescript-react"},
		{"tsx component", []string{"App.tsx", "tsconfig.json", "package.json"}, "typescript-react"},
		{"typescript backend", []string{"tsconfig.json", "package.json"}, "typescript-node"},
		{"plain javascript", []string{"package.json"}, "javascript-node"},
		{"python pyproject", []string{"pyproject.toml"}, "python"},
		{"python requirements", []string{"requirements.txt"}, "python"},
		{"python pipfile", []string{"Pipfile"}, "python"},
		{"cmake", []string{"CMakeLists.txt"}, "cpp"},
		{"makefile", []string{"Makefile"}, "cpp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			touch(t, root, tt.files...)

			stack, ok := Project(root)
			if !ok {
				t.Fatalf("Project() found nothing, want %q", tt.want)
			}
			if stack != tt.want {
				t.Errorf("Project() = %q, want %q", stack, tt.want)
			}
		})
	}
}

func TestProject_Unknown(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "README.md", "notes.txt")

	stack, ok := Project(root)
	if ok {
		t.Errorf("Project() = %q, want no detection in a markerless directory", stack)
	}
}

func TestProject_XcodeprojDirectory(t *testing.T) {
	// .xcodeproj markers are directories, not files; globs must still match.
	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, "App.xcodeproj"), 0o755); err != nil {
		t.Fatal(err)
	}
	touch(t, root, "package.json")

	stack, ok := Project(root)
	if !ok || stack != "ios-swift" {
		t.Errorf("Project() = (%q, %v), want ios-swift before the package.json rule", stack, ok)
	}
}

func TestProject_OrderEncodesSpecificity(t *testing.T) {
	// A project carrying markers for several stacks resolves to the rule
	// declared first, not to the broadest match.
	root := t.TempDir()
	touch(t, root, "pubspec.yaml", "package.json", "Makefile")

	stack, ok := Project(root)
	if !ok || stack != "flutter" {
		t.Errorf("Project() = (%q, %v), want flutter as the first declared match", stack, ok)
	}
}

func TestProject_AndroidBeforeJava(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "app/build.gradle", "build.gradle")

	stack, ok := Project(root)
	if !ok || stack != "android" {
		t.Errorf("Project() = (%q, %v), want android to win over java for app/build.gradle", stack, ok)
	}
}

func TestMatch_NarrowRuleBeforeBroad(t *testing.T) {
	rules := []Rule{
		{Stack: "narrow", Markers: []string{"a.txt"}},
		{Stack: "broad", Markers: []string{"a.txt", "b.txt"}},
	}
	root := t.TempDir()
	touch(t, root, "a.txt", "b.txt")

	stack, ok := Match(root, rules)
	if !ok || stack != "narrow" {
		t.Errorf("Match() = (%q, %v), want the first declared rule to win", stack, ok)
	}
}

func TestMatch_AllPolicy(t *testing.T) {
	rules := []Rule{
		{Stack: "both", Markers: []string{"a.txt", "b.txt"}, Policy: MatchAll},
		{Stack: "either", Markers: []string{"a.txt", "b.txt"}},
	}

	t.Run("all present", func(t *testing.T) {
		root := t.TempDir()
		touch(t, root, "a.txt", "b.txt")
		stack, ok := Match(root, rules)
		if !ok || stack != "both" {
			t.Errorf("Match() = (%q, %v), want both", stack, ok)
		}
	})

	t.Run("one missing", func(t *testing.T) {
		root := t.TempDir()
		touch(t, root, "a.txt")
		stack, ok := Match(root, rules)
		if !ok || stack != "either" {
			t.Errorf("Match() = (%q, %v), want fallthrough to the any rule", stack, ok)
		}
	})
}

func TestMatch_EmptyRule(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "a.txt")

	if stack, ok := Match(root, []Rule{{Stack: "empty", Policy: MatchAll}}); ok {
		t.Errorf("Match() = %q, want a rule without markers to never match", stack)
	}
	if stack, ok := Match(root, nil); ok {
		t.Errorf("Match() = %q, want no match for an empty rule list", stack)
	}
}

func TestMatch_Deterministic(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "tsconfig.json", "package.json", "Makefile")

	first, firstOK := Project(root)
	for range 10 {
		stack, ok := Project(root)
		if stack != first || ok != firstOK {
			t.Fatalf("Project() = (%q, %v), want stable (%q, %v)", stack, ok, first, firstOK)
		}
	}
}

func TestMatch_MissingRoot(t *testing.T) {
	stack, ok := Project(filepath.Join(t.TempDir(), "nope"))
	if ok {
		t.Errorf("Project() = %q, want no match for a missing directory", stack)
	}
}
