package ui

import (
	"os"

	"golang.org/x/term"

	"github.com/rileyhilliard/dayline/internal/config"
)

// NoColorEnv turns color off in auto mode when set to any non-empty value.
const NoColorEnv = "NO_COLOR"

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// ColorEnabled resolves an output.color mode. "auto" colors only a terminal,
// and only when NO_COLOR is unset.
func ColorEnabled(mode string, tty bool) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return tty && os.Getenv(NoColorEnv) == ""
	}
}
