// Package source fetches raw interval records for the timeline, either by
// running the time tracker's export command or by reading exported JSON
// from a file or stdin.
package source

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rileyhilliard/dayline/internal/errors"
	"github.com/rileyhilliard/dayline/internal/exec"
	"github.com/rileyhilliard/dayline/internal/logger"
	"github.com/rileyhilliard/dayline/internal/timeline"
)

// StdinPath selects stdin for FileSource.
const StdinPath = "-"

// Source yields the raw records for one run. Fetch is called once.
type Source interface {
	Fetch() ([]timeline.RawRecord, error)
	Describe() string
}

// CommandSource runs an export command and decodes its stdout.
type CommandSource struct {
	Command string
	WorkDir string
	Logger  logger.Logger
}

// NewCommandSource creates a source for an export command such as "timew export".
func NewCommandSource(command string, log logger.Logger) *CommandSource {
	if log == nil {
		log = logger.Noop()
	}
	return &CommandSource{Command: command, Logger: log}
}

// Describe names the source for logs and errors.
func (s *CommandSource) Describe() string {
	return fmt.Sprintf("command '%s'", s.Command)
}

// Fetch runs the command once. A non-zero exit or undecodable output fails.
func (s *CommandSource) Fetch() ([]timeline.RawRecord, error) {
	if strings.TrimSpace(s.Command) == "" {
		return nil, errors.New(errors.ErrConfig,
			"No source command configured",
			"Set source.command in .dayline.yaml or pass --input.")
	}

	s.Logger.Debug("running %s", s.Command)
	res, err := exec.CaptureLocal(s.Command, s.WorkDir)
	if err != nil {
		return nil, err
	}

	if res.ExitCode != 0 {
		if err := exec.HandleExecError(s.Command, string(res.Stderr), res.ExitCode); err != nil {
			return nil, err
		}
		detail := strings.TrimSpace(string(res.Stderr))
		if detail == "" {
			detail = fmt.Sprintf("exit code %d", res.ExitCode)
		}
		return nil, errors.WrapWithCode(fmt.Errorf("%s", detail), errors.ErrFetch,
			fmt.Sprintf("'%s' failed with exit code %d", s.Command, res.ExitCode),
			"Run 'dayline doctor' to check that the time tracker is installed.")
	}

	records, err := Decode(bytes.NewReader(res.Stdout), s.Describe())
	if err != nil {
		return nil, err
	}
	s.Logger.Debug("decoded %d records from %s", len(records), s.Command)
	return records, nil
}

// FileSource reads exported JSON from a file, or from stdin when Path is "-".
type FileSource struct {
	Path   string
	Stdin  io.Reader
	Logger logger.Logger
}

// NewFileSource creates a source reading path ("-" for stdin).
func NewFileSource(path string, log logger.Logger) *FileSource {
	if log == nil {
		log = logger.Noop()
	}
	return &FileSource{Path: path, Stdin: os.Stdin, Logger: log}
}

// Describe names the source for logs and errors.
func (s *FileSource) Describe() string {
	if s.Path == StdinPath {
		return "stdin"
	}
	return fmt.Sprintf("file '%s'", s.Path)
}

// Fetch reads and decodes the whole input.
func (s *FileSource) Fetch() ([]timeline.RawRecord, error) {
	if s.Path == StdinPath {
		return Decode(s.Stdin, s.Describe())
	}

	f, err := os.Open(s.Path)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrFetch,
			fmt.Sprintf("Couldn't open %s", s.Describe()),
			"Check the --input path.")
	}
	defer f.Close()

	records, err := Decode(f, s.Describe())
	if err != nil {
		return nil, err
	}
	s.Logger.Debug("decoded %d records from %s", len(records), s.Path)
	return records, nil
}

// Decode parses a JSON array of records. Anything else, including empty
// input or trailing data, is a fetch error.
func Decode(r io.Reader, name string) ([]timeline.RawRecord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrFetch,
			fmt.Sprintf("Couldn't read %s", name), "")
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New(errors.ErrFetch,
			fmt.Sprintf("%s produced no output", name),
			"Expected a JSON array like the output of 'timew export'.")
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	var records []timeline.RawRecord
	if err := dec.Decode(&records); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrFetch,
			fmt.Sprintf("%s returned malformed JSON", name),
			"Expected a JSON array like the output of 'timew export'.")
	}
	if dec.More() {
		return nil, errors.New(errors.ErrFetch,
			fmt.Sprintf("%s returned trailing data after the JSON array", name),
			"Expected a single JSON array like the output of 'timew export'.")
	}
	if records == nil {
		records = []timeline.RawRecord{}
	}
	return records, nil
}
