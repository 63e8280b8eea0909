package logging

import (
	"bytes"
	"log/slog"
	"testing"
)

// testWriter routes handler output through t.Log so records show up
// attached to the test that emitted them.
type testWriter struct {
	t *testing.T
}

func (w *testWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	// t.Log appends its own newline.
	w.t.Log(string(bytes.TrimSuffix(p, []byte("\n"))))
	return len(p), nil
}

// ForTest returns a logger wired to t.Log, enabled down to LevelTrace
// so a failing test shows every record the code emitted.
func ForTest(t *testing.T) *slog.Logger {
	t.Helper()
	return New(Config{
		Level:  LevelTrace,
		Format: FormatText,
		Output: &testWriter{t: t},
	})
}
