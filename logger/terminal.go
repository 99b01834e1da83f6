package logger

import (
	"io"
	"os"

	"golang.org/x/term"
)

type fder interface {
	Fd() uintptr
}

// IsTerminal reports whether w is a file descriptor attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(fder)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func colorize(mode ColorMode, w io.Writer) bool {
	switch mode {
	case ColorNever:
		return false
	case ColorAuto:
		if _, ok := os.LookupEnv("NO_COLOR"); ok {
			return false
		}
		return IsTerminal(w)
	}
	return true
}

// ParseColorMode parses "always", "never" or "auto".
func ParseColorMode(s string) (ColorMode, bool) {
	switch s {
	case "always":
		return ColorAlways, true
	case "never":
		return ColorNever, true
	case "auto":
		return ColorAuto, true
	}
	return ColorAlways, false
}
