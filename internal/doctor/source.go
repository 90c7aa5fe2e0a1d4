package doctor

import (
	"fmt"
	"strings"

	"github.com/rileyhilliard/dayline/internal/errors"
	"github.com/rileyhilliard/dayline/internal/exec"
	"github.com/rileyhilliard/dayline/internal/source"
	"github.com/rileyhilliard/dayline/internal/util"
)

// SourceBinaryCheck verifies the export command's program is on PATH.
type SourceBinaryCheck struct {
	Command string
}

func (c *SourceBinaryCheck) Name() string     { return "source_binary" }
func (c *SourceBinaryCheck) Category() string { return CategorySource }

func (c *SourceBinaryCheck) Run() CheckResult {
	fields := strings.Fields(c.Command)
	if len(fields) == 0 {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    "No source command configured",
			Suggestion: "Set source.command in .dayline.yaml (default: timew export)",
		}
	}

	path, err := exec.LookPath(fields[0])
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("%s not found on PATH", fields[0]),
			Suggestion: "Install Timewarrior (brew install timewarrior / apt install timewarrior), or pass --input FILE",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("%s: %s", fields[0], path),
	}
}

func (c *SourceBinaryCheck) Fix() error {
	return nil // System package installation is out of scope
}

// SourceExportCheck runs the export command and checks its output decodes.
type SourceExportCheck struct {
	Command string
	WorkDir string
}

func (c *SourceExportCheck) Name() string     { return "source_export" }
func (c *SourceExportCheck) Category() string { return CategorySource }

func (c *SourceExportCheck) Run() CheckResult {
	src := source.NewCommandSource(c.Command, nil)
	src.WorkDir = c.WorkDir

	records, err := src.Fetch()
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    errors.MessageOf(err),
			Suggestion: "Run the command yourself to see the full output",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("'%s' returned %d %s", c.Command, len(records), util.Pluralize(len(records), "interval", "intervals")),
	}
}

func (c *SourceExportCheck) Fix() error {
	return nil
}

// NewSourceChecks creates the export command checks. The export itself is
// only attempted when the program exists.
func NewSourceChecks(command string) []Check {
	checks := []Check{&SourceBinaryCheck{Command: command}}
	if fields := strings.Fields(command); len(fields) > 0 {
		if _, err := exec.LookPath(fields[0]); err == nil {
			checks = append(checks, &SourceExportCheck{Command: command})
		}
	}
	return checks
}
