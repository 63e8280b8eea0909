// Package fileutil provides atomic file writes and bounded reads for
// profile files and rendered artifacts.
package fileutil

import (
	"encoding/json"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/cockroachdb/errors"
)

// AtomicWriteFile writes data to path via a temp file and rename, so a
// reader never observes a partially written file and a failed write
// leaves any existing file untouched. The temp file lives in the same
// directory as path; the rename fails if that directory does not exist.
func AtomicWriteFile(path string, data []byte, perm os.FileMode) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".claude-profiles-*.tmp")
	if err != nil {
		return errors.Wrapf(err, "creating temp file in %s", dir)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return errors.Wrapf(err, "writing %s", tmp.Name())
	}
	if err = tmp.Chmod(perm); err != nil {
		return errors.Wrapf(err, "setting mode on %s", tmp.Name())
	}
	if err = tmp.Sync(); err != nil {
		return errors.Wrapf(err, "syncing %s", tmp.Name())
	}
	if err = tmp.Close(); err != nil {
		return errors.Wrapf(err, "closing %s", tmp.Name())
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return errors.Wrapf(err, "replacing %s", path)
	}
	return nil
}

// AtomicWriteJSON writes v to path as two-space indented JSON with a
// trailing newline, mode 0644. Profile files and rendered settings use
// this format so they diff cleanly.
func AtomicWriteJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshaling JSON")
	}
	return AtomicWriteFile(path, append(data, '\n'), 0o644)
}

// AtomicWriteYAML writes v to path as YAML, mode 0644.
func AtomicWriteYAML(path string, v any) error {
	data, err := marshalYAML(v)
	if err != nil {
		return err
	}
	return AtomicWriteFile(path, data, 0o644)
}

// marshalYAML converts the panic yaml.Marshal raises on unsupported
// types into an error.
func marshalYAML(v any) (data []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Newf("marshaling YAML: %v", r)
		}
	}()
	data, err = yaml.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "marshaling YAML")
	}
	return data, nil
}
