package exec

import (
	"bytes"
	"os"
	"os/exec"

	"github.com/rileyhilliard/dayline/internal/errors"
)

// Result holds the captured output of a finished command.
type Result struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// shell returns $SHELL, falling back to /bin/sh.
func shell() string {
	if sh := os.Getenv("SHELL"); sh != "" {
		return sh
	}
	return "/bin/sh"
}

// CaptureLocal runs a command through the user's shell and captures all output.
// A non-zero exit is reported in Result.ExitCode, not as an error; the error
// is reserved for commands that could not be started at all.
func CaptureLocal(cmd string, workDir string) (*Result, error) {
	command := exec.Command(shell(), "-c", cmd)

	if workDir != "" {
		command.Dir = workDir
	}

	var stdout, stderr bytes.Buffer
	command.Stdout = &stdout
	command.Stderr = &stderr

	runErr := command.Run()
	res := &Result{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}
	if runErr != nil {
		if exitErr, ok := runErr.(*exec.ExitError); ok {
			res.ExitCode = exitErr.ExitCode()
			return res, nil
		}
		res.ExitCode = -1
		return res, errors.WrapWithCode(runErr, errors.ErrFetch,
			"Couldn't run the command locally",
			"Make sure the command exists and is executable.")
	}

	return res, nil
}

// LookPath reports where the first word of cmd resolves on PATH.
func LookPath(name string) (string, error) {
	return exec.LookPath(name)
}
