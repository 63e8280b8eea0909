package logging

import (
	"io"
	"os"

	"golang.org/x/term"
)

// IsTTY reports whether w is backed by a terminal. It recognizes
// os.File and any writer exposing an Fd method.
func IsTTY(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

// SupportsColor reports whether ANSI escapes should be written to w.
// NO_COLOR (https://no-color.org) and TERM=dumb disable color even on
// a terminal.
func SupportsColor(w io.Writer) bool {
	return colorAllowed(IsTTY(w))
}

func colorAllowed(isTTY bool) bool {
	if !isTTY {
		return false
	}
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return false
	}
	return os.Getenv("TERM") != "dumb"
}
