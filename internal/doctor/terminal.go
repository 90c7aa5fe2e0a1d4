package doctor

import (
	"fmt"
	"os"

	"github.com/muesli/termenv"

	"github.com/rileyhilliard/dayline/internal/config"
	"github.com/rileyhilliard/dayline/internal/ui"
)

// TerminalCheck reports whether the timeline will be drawn in color.
type TerminalCheck struct {
	Mode    string
	TTY     bool
	Profile termenv.Profile
}

func (c *TerminalCheck) Name() string     { return "terminal_color" }
func (c *TerminalCheck) Category() string { return CategoryTerminal }

func (c *TerminalCheck) Run() CheckResult {
	mode := c.Mode
	if mode == "" {
		mode = config.ColorAuto
	}

	if !ui.ColorEnabled(mode, c.TTY) {
		reason := "output.color is never"
		switch {
		case mode != config.ColorNever && !c.TTY:
			reason = "stdout is not a terminal"
		case mode != config.ColorNever:
			reason = ui.NoColorEnv + " is set"
		}
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass,
			Message: fmt.Sprintf("Color off (%s); occupied cells drawn as %c", reason, ui.SymbolBlock),
		}
	}

	// Tag colors are xterm-256 codes; richer profiles render them as-is.
	if c.Profile > termenv.ANSI256 {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    fmt.Sprintf("Color on (%s), but the terminal reports only %s", mode, profileName(c.Profile)),
			Suggestion: "Set TERM to a 256-color terminal type (e.g. xterm-256color), or use --no-color",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("Color on (%s, %s)", mode, profileName(c.Profile)),
	}
}

func (c *TerminalCheck) Fix() error {
	return nil
}

func profileName(p termenv.Profile) string {
	switch p {
	case termenv.TrueColor:
		return "true color"
	case termenv.ANSI256:
		return "256 colors"
	case termenv.ANSI:
		return "16 colors"
	default:
		return "no color"
	}
}

// NewTerminalChecks inspects stdout for the given output.color mode.
func NewTerminalChecks(mode string) []Check {
	return []Check{&TerminalCheck{
		Mode:    mode,
		TTY:     ui.IsTerminal(os.Stdout),
		Profile: termenv.NewOutput(os.Stdout).EnvColorProfile(),
	}}
}
