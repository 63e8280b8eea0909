package apply

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"claudeprofiles/internal/paths"
	"claudeprofiles/pkg/fileutil"
)

// ErrBackupFailed indicates an existing file could not be moved aside.
// The overwrite is aborted: losing the ability to preserve existing
// content is worse than an incomplete apply.
var ErrBackupFailed = errors.New("backup failed")

// PartialApplyError reports an apply that stopped partway. Artifacts in
// Written were fully applied before the failure; nothing is rolled back.
type PartialApplyError struct {
	// Written lists the artifact paths applied before the failure.
	Written []string

	// Failed is the artifact path whose write failed.
	Failed string

	// Err is the underlying failure.
	Err error
}

// Error implements the error interface.
func (e *PartialApplyError) Error() string {
	return fmt.Sprintf("apply stopped at %s after %d written: %v", e.Failed, len(e.Written), e.Err)
}

// Unwrap returns the underlying error.
func (e *PartialApplyError) Unwrap() error {
	return e.Err
}

// Execute performs the plan's actions in artifact order. Writes are
// atomic per file; a Preserve conflict renames the old file to its backup
// path before anything lands on the target. A failure partway returns
// *PartialApplyError naming what was already written.
func (c *Controller) Execute(plan *Plan) error {
	var written []string
	for _, action := range plan.Actions {
		if action.Kind == ActionSkip {
			continue
		}
		if err := c.execute(action); err != nil {
			return &PartialApplyError{
				Written: written,
				Failed:  action.Artifact.Path,
				Err:     err,
			}
		}
		written = append(written, action.Artifact.Path)
	}
	return nil
}

func (c *Controller) execute(action Action) error {
	if err := paths.EnsureDir(filepath.Dir(action.Path), 0); err != nil {
		return errors.Wrapf(err, "creating parent of %s", action.Path)
	}

	if action.Kind == ActionBackup {
		if err := os.Rename(action.Path, action.BackupPath); err != nil {
			return errors.Wrapf(ErrBackupFailed, "moving %s aside: %v", action.Path, err)
		}
	}

	if err := fileutil.AtomicWriteFile(action.Path, action.Content, 0o644); err != nil {
		return errors.Wrapf(err, "writing %s", action.Path)
	}
	return nil
}
