package exec

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/rileyhilliard/dayline/internal/errors"
)

// ExitCommandNotFound is the shell's exit status for a missing executable.
const ExitCommandNotFound = 127

// commandNotFoundPatterns match the "not found" messages of common shells.
var commandNotFoundPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)bash: (?:line \d+: )?(\S+): command not found`),
	regexp.MustCompile(`(?i)zsh: command not found: (\S+)`),
	regexp.MustCompile(`(?i)sh: \d+: (\S+): not found`),
	regexp.MustCompile(`(?i)fish: Unknown command:? '?([^\s']+)'?`),
	regexp.MustCompile(`(?i)(\S+): command not found`),
	regexp.MustCompile(`(?i)(\S+): not found`),
}

// IsCommandNotFound checks if the error output indicates a missing command.
// Returns the command name (if extractable) and whether it's a command-not-found error.
func IsCommandNotFound(stderr string, exitCode int) (string, bool) {
	if exitCode != ExitCommandNotFound {
		return "", false
	}

	for _, pattern := range commandNotFoundPatterns {
		if matches := pattern.FindStringSubmatch(stderr); len(matches) > 1 {
			return strings.TrimSuffix(matches[1], ":"), true
		}
	}

	// 127 without a recognizable message
	return "", true
}

// HandleExecError turns a missing export tool into a FETCH error that says
// what to install. It returns nil for any other failure.
func HandleExecError(cmd string, stderr string, exitCode int) error {
	name, notFound := IsCommandNotFound(stderr, exitCode)
	if !notFound {
		return nil
	}

	if name == "" {
		name = "command"
		if parts := strings.Fields(cmd); len(parts) > 0 {
			name = parts[0]
		}
	}

	suggestion := fmt.Sprintf(`'%s' isn't installed or isn't in your PATH.

Fixes:

1. Install Timewarrior (https://timewarrior.net), or whichever tool
   prints the export JSON

2. Point dayline at it in .dayline.yaml:
   source:
     command: /full/path/to/%s export

3. Or skip the command and read an export directly:
   %s export | dayline --input -`, name, name, name)

	return errors.New(errors.ErrFetch,
		fmt.Sprintf("'%s' not found in PATH", name),
		suggestion)
}
