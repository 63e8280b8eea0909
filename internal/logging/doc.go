// Package logging configures slog for the CLI.
//
// Terminal output goes through [Handler], which colorizes level labels
// when the writer is a color-capable TTY and masks attribute values
// that look like secrets. A JSON debug file can run alongside the
// terminal handler via [MultiHandler]. Verbosity flags map to levels
// through [LevelFromVerbosity]; [LevelTrace] sits below
// slog.LevelDebug for the chattiest diagnostics.
//
// Commands put the configured logger on the context with [NewContext]
// and also install it as the slog default, so library code can log
// through plain slog calls.
package logging
