package logging

import "log/slog"

// LevelTrace is a custom level below slog.LevelDebug for very chatty
// diagnostics such as per-marker detection checks and merge decisions.
const LevelTrace = slog.LevelDebug - 4

// LevelFromVerbosity maps a -v flag count to a slog level.
// Zero or negative verbosity logs warnings and errors only.
func LevelFromVerbosity(verbosity int) slog.Level {
	switch {
	case verbosity <= 0:
		return slog.LevelWarn
	case verbosity == 1:
		return slog.LevelInfo
	case verbosity == 2:
		return slog.LevelDebug
	default:
		return LevelTrace
	}
}
