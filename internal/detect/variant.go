package detect

import (
	"encoding/json"
	"log/slog"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"claudeprofiles/pkg/fileutil"
)

// Variant refines a detected stack by inspecting well-known files under
// root. It returns "" when the stack has no variant logic or no signal is
// found. Inspection never fails: unreadable or malformed files count as no
// signal and are logged at debug level.
func Variant(stack, root string) string {
	switch stack {
	case "java":
		return javaVariant(root)
	case "typescript-react", "typescript-node", "javascript-node":
		return packageVariant(root)
	case "python":
		return pythonVariant(root)
	}
	return ""
}

func javaVariant(root string) string {
	if fileExists(filepath.Join(root, "pom.xml")) {
		return "maven"
	}
	for _, f := range []string{"build.gradle", "build.gradle.kts", "gradlew"} {
		if fileExists(filepath.Join(root, f)) {
			return "gradle"
		}
	}
	return ""
}

// packageJSON is the slice of package.json that dependency inspection needs.
type packageJSON struct {
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// jsFrameworks is the inspection priority order. More specific frameworks
// come first: a Next.js app also depends on react, so next must win.
var jsFrameworks = []struct {
	variant string
	deps    []string
}{
	{"nextjs", []string{"next"}},
	{"react", []string{"react"}},
	{"vue", []string{"vue"}},
	{"svelte", []string{"svelte", "@sveltejs/kit"}},
	{"api", []string{"express", "fastify", "koa"}},
}

func packageVariant(root string) string {
	path := filepath.Join(root, "package.json")
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		return ""
	}

	var pkg packageJSON
	if err := json.Unmarshal(data, &pkg); err != nil {
		slog.Debug("skipping unparseable package.json", "path", path, "error", err)
		return ""
	}

	has := func(name string) bool {
		if _, ok := pkg.Dependencies[name]; ok {
			return true
		}
		_, ok := pkg.DevDependencies[name]
		return ok
	}

	for _, fw := range jsFrameworks {
		for _, dep := range fw.deps {
			if has(dep) {
				return fw.variant
			}
		}
	}
	return ""
}

func pythonVariant(root string) string {
	if fileExists(filepath.Join(root, "manage.py")) {
		return "django"
	}
	if fileExists(filepath.Join(root, "app.py")) || fileExists(filepath.Join(root, "wsgi.py")) {
		return "flask"
	}
	if pyprojectDeclares(filepath.Join(root, "pyproject.toml"), "fastapi") {
		return "fastapi"
	}
	return ""
}

// pyproject is the slice of pyproject.toml that dependency inspection
// needs: PEP 621 [project] tables plus the poetry table.
type pyproject struct {
	Project struct {
		Dependencies         []string            `toml:"dependencies"`
		OptionalDependencies map[string][]string `toml:"optional-dependencies"`
	} `toml:"project"`
	Tool struct {
		Poetry struct {
			Dependencies map[string]any `toml:"dependencies"`
		} `toml:"poetry"`
	} `toml:"tool"`
}

// pyprojectDeclares reports whether the pyproject.toml at path declares a
// dependency on the named distribution, in any of the dependency tables.
func pyprojectDeclares(path, dist string) bool {
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		return false
	}

	var doc pyproject
	if err := toml.Unmarshal(data, &doc); err != nil {
		slog.Debug("skipping unparseable pyproject.toml", "path", path, "error", err)
		return false
	}

	for _, req := range doc.Project.Dependencies {
		if requirementName(req) == dist {
			return true
		}
	}
	for _, reqs := range doc.Project.OptionalDependencies {
		for _, req := range reqs {
			if requirementName(req) == dist {
				return true
			}
		}
	}
	for name := range doc.Tool.Poetry.Dependencies {
		if normalizeDistName(name) == dist {
			return true
		}
	}
	return false
}

var distNameRuns = regexp.MustCompile(`[-_.]+`)

// requirementName extracts the distribution name from a PEP 508 requirement
// string such as "fastapi[standard]>=0.100" and normalizes it. Extras,
// version specifiers, and environment markers are ignored.
func requirementName(req string) string {
	req = strings.TrimSpace(req)
	end := 0
	for end < len(req) && isDistNameByte(req[end]) {
		end++
	}
	return normalizeDistName(req[:end])
}

// normalizeDistName lowercases the name and collapses runs of "-", "_",
// and "." to a single hyphen, so "FastAPI" matches "fastapi" while
// "fastapi-users" stays distinct.
func normalizeDistName(name string) string {
	return distNameRuns.ReplaceAllString(strings.ToLower(name), "-")
}

func isDistNameByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '-', c == '_', c == '.':
		return true
	}
	return false
}
