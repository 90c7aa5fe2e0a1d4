package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/dayline/internal/errors"
)

func TestIsUnknownCommandError(t *testing.T) {
	tests := []struct {
		msg  string
		want bool
	}{
		{`unknown command "doctr" for "dayline"`, true},
		{"unknown flag: --resolutoin", true},
		{"unknown shorthand flag: 'x' in -x", true},
		{"✗ Resolution must be between 1 and 60", false},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			assert.Equal(t, tt.want, isUnknownCommandError(fmt.Errorf("%s", tt.msg)))
		})
	}
}

func TestExtractUnknownCommand(t *testing.T) {
	assert.Equal(t, "doctr", extractUnknownCommand(fmt.Errorf(`unknown command "doctr" for "dayline"`)))
	assert.Empty(t, extractUnknownCommand(fmt.Errorf("unknown flag: --x")))
}

func TestErrorText(t *testing.T) {
	plain := fmt.Errorf(`invalid argument "x" for "-r, --resolution" flag: strconv.ParseInt: parsing "x": invalid syntax`)
	assert.Equal(t, plain.Error()+"\n", errorText(plain))

	structured := errors.New(errors.ErrConfig, "Resolution 0 is out of range", "Use 1-60.")
	assert.Equal(t, structured.Error(), errorText(structured))
	assert.True(t, strings.HasSuffix(errorText(structured), "\n"))
	assert.False(t, strings.HasSuffix(errorText(structured), "\n\n"))
}

func TestCommandNames(t *testing.T) {
	names := commandNames()
	assert.Contains(t, names, "init")
	assert.Contains(t, names, "doctor")
	assert.Contains(t, names, "version")
}

func TestRootCommand_RendersFromFlags(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".dayline.yaml"), []byte("timezone: UTC\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "export.json"), []byte(focusExport), 0644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"--input", "export.json", "--day", "2026-10-18", "--no-color", "-r", "2"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		renderFlags = RenderFlags{}
	})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "Timeline for Sun, 18 Oct 2026")
	assert.Contains(t, out.String(), "focus  1h30m")
}
