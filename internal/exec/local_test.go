package exec

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptureLocal_SimpleCommand(t *testing.T) {
	res, err := CaptureLocal("echo hello", "")

	require.NoError(t, err)
	assert.Equal(t, 0, res.ExitCode)
	assert.Equal(t, "hello\n", string(res.Stdout))
	assert.Empty(t, res.Stderr)
}

func TestCaptureLocal_SeparatesStderr(t *testing.T) {
	res, err := CaptureLocal("echo out; echo err >&2", "")

	require.NoError(t, err)
	assert.Equal(t, "out\n", string(res.Stdout))
	assert.Equal(t, "err\n", string(res.Stderr))
}

func TestCaptureLocal_NonZeroExitCode(t *testing.T) {
	res, err := CaptureLocal("echo nope >&2; exit 3", "")

	require.NoError(t, err)
	assert.Equal(t, 3, res.ExitCode)
	assert.Equal(t, "nope\n", string(res.Stderr))
}

func TestCaptureLocal_WorkingDirectory(t *testing.T) {
	dir := t.TempDir()

	res, err := CaptureLocal("pwd", dir)

	require.NoError(t, err)
	assert.Contains(t, strings.TrimSpace(string(res.Stdout)), filepath.Base(dir))
}

func TestCaptureLocal_LargeStderrDoesNotBlock(t *testing.T) {
	t.Setenv("SHELL", "/bin/sh")
	res, err := CaptureLocal("i=0; while [ $i -lt 20000 ]; do echo xxxxxxxxxxxxxxxx >&2; i=$((i+1)); done; echo done", "")

	require.NoError(t, err)
	assert.Equal(t, "done\n", string(res.Stdout))
	assert.Greater(t, len(res.Stderr), 65536)
}

func TestCaptureLocal_MissingWorkDir(t *testing.T) {
	_, err := CaptureLocal("true", filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestShellFallback(t *testing.T) {
	t.Setenv("SHELL", "")
	assert.Equal(t, "/bin/sh", shell())

	t.Setenv("SHELL", "/bin/bash")
	assert.Equal(t, "/bin/bash", shell())
}

func TestLookPath(t *testing.T) {
	_, err := LookPath("sh")
	assert.NoError(t, err)

	_, err = LookPath("definitely-not-a-real-binary-" + filepath.Base(os.TempDir()))
	assert.Error(t, err)
}
