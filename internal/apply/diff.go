package apply

import (
	"github.com/aymanbagabas/go-udiff"
)

// Diff is the unified diff for one planned change.
type Diff struct {
	// Path is the artifact's project-relative path.
	Path string

	// Unified holds the unified diff between the installed and planned
	// content.
	Unified string
}

// Diffs renders a unified diff for every action that would change a file.
// Skips produce no diff; an all-skip plan yields nothing, meaning the
// project is up to date.
func (c *Controller) Diffs(plan *Plan) []Diff {
	var diffs []Diff
	for _, action := range plan.Actions {
		if action.Kind == ActionSkip {
			continue
		}
		unified := udiff.Unified(
			"a/"+action.Artifact.Path,
			"b/"+action.Artifact.Path,
			string(action.Existing),
			string(action.Content),
		)
		diffs = append(diffs, Diff{Path: action.Artifact.Path, Unified: unified})
	}
	return diffs
}
