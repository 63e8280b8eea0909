package apply

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"claudeprofiles/internal/render"
)

// backupTimeFormat names backups after the moment they were taken.
const backupTimeFormat = "20060102T150405"

// Controller plans and executes artifact writes against one project root.
type Controller struct {
	root string
	now  func() time.Time
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock overrides the time source used for backup names.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		c.now = now
	}
}

// New creates a Controller operating on the project at root.
func New(root string, opts ...Option) *Controller {
	c := &Controller{
		root: root,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ActionKind classifies one planned filesystem step.
type ActionKind int

const (
	// ActionCreate writes an artifact whose target does not exist yet.
	ActionCreate ActionKind = iota

	// ActionSkip leaves an up-to-date target untouched.
	ActionSkip

	// ActionReplace overwrites a target whose content differs.
	ActionReplace

	// ActionBackup renames the existing target aside, then writes.
	ActionBackup

	// ActionAppend adds missing entries to a shared file.
	ActionAppend
)

// String returns the kind's lowercase name.
func (k ActionKind) String() string {
	switch k {
	case ActionCreate:
		return "create"
	case ActionSkip:
		return "skip"
	case ActionReplace:
		return "replace"
	case ActionBackup:
		return "backup"
	case ActionAppend:
		return "append"
	}
	return "unknown"
}

// Action is the planned step for one artifact.
type Action struct {
	// Artifact is the rendered file this action realizes.
	Artifact render.Artifact

	// Kind is what Execute will do.
	Kind ActionKind

	// Path is the absolute target path under the project root.
	Path string

	// BackupPath is where the existing file is moved first.
	// Set only for ActionBackup.
	BackupPath string

	// Existing is the target's current content, nil when it does not exist.
	Existing []byte

	// Content is the full content the target will hold afterwards.
	// Empty for ActionSkip.
	Content []byte
}

// Plan is the ordered set of actions one apply would perform. Building a
// plan reads the project but never writes to it, so it backs dry-run and
// diff as well as apply.
type Plan struct {
	Actions []Action
}

// Changes counts the actions that would modify the filesystem.
func (p *Plan) Changes() int {
	n := 0
	for _, a := range p.Actions {
		if a.Kind != ActionSkip {
			n++
		}
	}
	return n
}

// Plan computes what applying the artifacts to the project would do.
// Preserve artifacts with differing content get a backup path derived
// from the controller's clock; append artifacts contribute only their
// missing entries.
func (c *Controller) Plan(artifacts []render.Artifact) (*Plan, error) {
	plan := &Plan{Actions: make([]Action, 0, len(artifacts))}
	for _, a := range artifacts {
		action, err := c.planOne(a)
		if err != nil {
			return nil, err
		}
		plan.Actions = append(plan.Actions, action)
	}
	return plan, nil
}

func (c *Controller) planOne(a render.Artifact) (Action, error) {
	target := filepath.Join(c.root, a.Path)
	action := Action{Artifact: a, Path: target}

	existing, err := os.ReadFile(target)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return Action{}, errors.Wrapf(err, "reading %s", target)
		}
		action.Kind = ActionCreate
		action.Content = a.Content
		return action, nil
	}
	action.Existing = existing

	if a.Kind == render.Append {
		block := missingBlock(existing, a.Content)
		if block == nil {
			action.Kind = ActionSkip
			return action, nil
		}
		action.Kind = ActionAppend
		action.Content = append(bytes.Clone(existing), block...)
		return action, nil
	}

	if bytes.Equal(existing, a.Content) {
		action.Kind = ActionSkip
		return action, nil
	}

	action.Content = a.Content
	if a.Kind == render.Preserve {
		action.Kind = ActionBackup
		action.BackupPath = target + "." + c.now().Format(backupTimeFormat) + ".bak"
	} else {
		action.Kind = ActionReplace
	}
	return action, nil
}

// missingBlock builds the block to add to an append target: the artifact's
// comment header plus every entry line the existing content lacks. Returns
// nil when every entry is already present.
func missingBlock(existing, content []byte) []byte {
	present := make(map[string]bool)
	for _, line := range strings.Split(string(existing), "\n") {
		present[strings.TrimSpace(line)] = true
	}

	var header []string
	var missing []string
	for _, line := range strings.Split(strings.TrimRight(string(content), "\n"), "\n") {
		if strings.HasPrefix(line, "#") {
			header = append(header, line)
			continue
		}
		if line != "" && !present[line] {
			missing = append(missing, line)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	var buf bytes.Buffer
	if len(existing) > 0 && existing[len(existing)-1] != '\n' {
		buf.WriteByte('\n')
	}
	buf.WriteByte('\n')
	for _, line := range header {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	for _, line := range missing {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}
