package logging

import (
	"io"
	"log/slog"
	"os"
)

// Format selects how log records are rendered.
type Format string

const (
	// FormatText renders human-readable lines for terminal use.
	FormatText Format = "text"
	// FormatJSON renders one JSON object per line for machine consumption.
	FormatJSON Format = "json"
)

// Config describes the logger New builds.
type Config struct {
	// Level is the minimum level that gets emitted.
	Level slog.Level
	// Format selects text or JSON rendering. Unknown values fall back to text.
	Format Format
	// Output receives the rendered records. Nil means os.Stderr.
	Output io.Writer
}

// New builds a logger from cfg.
func New(cfg Config) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: cfg.Level}
	if cfg.Format == FormatJSON {
		return slog.New(slog.NewJSONHandler(out, opts))
	}
	return slog.New(NewHandler(out, opts))
}

// Default returns the logger used before flag parsing has run: info
// level, text format, stderr.
func Default() *slog.Logger {
	return New(Config{Level: slog.LevelInfo})
}

// NewDiscard returns a logger that drops every record.
func NewDiscard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
