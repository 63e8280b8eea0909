package fileutil

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
)

// MaxFileSize caps how much ReadFileWithLimit loads into memory.
// Profile and marker files are small; anything past 1 MiB is treated
// as corrupt rather than read in full.
const MaxFileSize = 1 << 20

// ErrFileTooLarge is returned when a file exceeds MaxFileSize.
var ErrFileTooLarge = errors.Newf("file exceeds %d bytes", MaxFileSize)

// ReadFileWithLimit reads path in full, refusing files larger than
// MaxFileSize.
func ReadFileWithLimit(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	// Fail fast when the size is already known to be over the cap.
	if info, err := f.Stat(); err == nil && info.Size() > MaxFileSize {
		return nil, errors.Wrapf(ErrFileTooLarge, "%s", path)
	}

	data, err := io.ReadAll(io.LimitReader(f, MaxFileSize+1))
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	if len(data) > MaxFileSize {
		return nil, errors.Wrapf(ErrFileTooLarge, "%s", path)
	}
	return data, nil
}
