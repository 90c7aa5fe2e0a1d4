package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/dayline/internal/config"
	"github.com/rileyhilliard/dayline/internal/errors"
)

const focusExport = `[{"start":"20261018T000000Z","end":"20261018T013000Z","tags":["focus"]}]`

var renderNow = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

// setupRender runs the test from a temp dir holding a UTC config and the
// given export as export.json.
func setupRender(t *testing.T, export string) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, config.ConfigFileName), []byte("timezone: UTC\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "export.json"), []byte(export), 0644))
	return dir
}

func renderOptions(out *bytes.Buffer) RenderOptions {
	return RenderOptions{
		Day:    "2026-10-18",
		Input:  "export.json",
		Stdout: out,
		Now:    func() time.Time { return renderNow },
		TTY:    func() bool { return false },
	}
}

func TestRender_FromInputFile(t *testing.T) {
	setupRender(t, focusExport)
	var out bytes.Buffer

	require.NoError(t, Render(renderOptions(&out)))

	text := out.String()
	assert.Contains(t, text, "Timeline for Sun, 18 Oct 2026\n")
	assert.Contains(t, text, "│00:00 "+strings.Repeat("█", 118)+"focus")
	assert.Contains(t, text, "█████ focus  1h30m\n")
	assert.Contains(t, text, "Report generated on: 2026-10-18 12:00:00\n")
	assert.NotContains(t, text, "\x1b[")
}

func TestRender_Stdin(t *testing.T) {
	setupRender(t, "[]")
	var out bytes.Buffer
	opts := renderOptions(&out)
	opts.Input = "-"
	opts.Stdin = strings.NewReader(focusExport)

	require.NoError(t, Render(opts))
	assert.Contains(t, out.String(), "focus  1h30m")
}

func TestRender_SourceCommand(t *testing.T) {
	dir := setupRender(t, focusExport)
	cfg := "timezone: UTC\nsource:\n  command: cat export.json\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.ConfigFileName), []byte(cfg), 0644))

	var out bytes.Buffer
	opts := renderOptions(&out)
	opts.Input = ""

	require.NoError(t, Render(opts))
	assert.Contains(t, out.String(), "focus  1h30m")
}

func TestRender_EmptyExport(t *testing.T) {
	setupRender(t, "[]")
	var out bytes.Buffer

	require.NoError(t, Render(renderOptions(&out)))
	assert.Contains(t, out.String(), "(no tracked time)")
}

func TestRender_Overrides(t *testing.T) {
	setupRender(t, focusExport)
	var out bytes.Buffer
	opts := renderOptions(&out)
	res := 1
	opts.Resolution = &res
	opts.Layout = config.LayoutSplit

	require.NoError(t, Render(opts))

	lines := strings.Split(out.String(), "\n")
	// Title, top border, then the label line and block line of hour 0.
	assert.Equal(t, "│      "+strings.Repeat(" ", 28)+"focus"+strings.Repeat(" ", 27)+"│", lines[2])
	assert.Equal(t, "│00:00 "+strings.Repeat("█", 60)+"│", lines[3])
}

func TestRender_ColorAlways(t *testing.T) {
	dir := setupRender(t, focusExport)
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.ConfigFileName),
		[]byte("timezone: UTC\noutput:\n  color: always\n"), 0644))

	var out bytes.Buffer
	require.NoError(t, Render(renderOptions(&out)))
	assert.Contains(t, out.String(), "\x1b[")

	// --no-color beats the config.
	out.Reset()
	opts := renderOptions(&out)
	opts.Color = config.ColorNever
	require.NoError(t, Render(opts))
	assert.NotContains(t, out.String(), "\x1b[")
}

func TestRender_JSON(t *testing.T) {
	setupRender(t, focusExport)
	var out bytes.Buffer
	opts := renderOptions(&out)
	opts.JSON = true

	require.NoError(t, Render(opts))

	var env struct {
		Success bool         `json:"success"`
		Data    TimelineJSON `json:"data"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &env))
	assert.True(t, env.Success)
	assert.Equal(t, "2026-10-18", env.Data.Day)
	assert.Equal(t, 248, env.Data.Width)
	require.Len(t, env.Data.Rows, 24)
	require.Len(t, env.Data.Legend, 1)
	assert.Equal(t, int64(5400), env.Data.Legend[0].Seconds)
}

func TestRender_Errors(t *testing.T) {
	tests := []struct {
		name     string
		export   string
		mutate   func(*RenderOptions)
		wantCode string
	}{
		{
			name:   "bad resolution fails before fetching",
			export: "not even json",
			mutate: func(o *RenderOptions) {
				res := 0
				o.Resolution = &res
			},
			wantCode: errors.ErrConfig,
		},
		{
			name:     "bad day",
			export:   focusExport,
			mutate:   func(o *RenderOptions) { o.Day = "18/10/2026" },
			wantCode: errors.ErrConfig,
		},
		{
			name:     "bad layout",
			export:   focusExport,
			mutate:   func(o *RenderOptions) { o.Layout = "stacked" },
			wantCode: errors.ErrConfig,
		},
		{
			name:     "missing input",
			export:   focusExport,
			mutate:   func(o *RenderOptions) { o.Input = "nope.json" },
			wantCode: errors.ErrFetch,
		},
		{
			name:     "malformed export",
			export:   `{"start":`,
			wantCode: errors.ErrFetch,
		},
		{
			name:     "bad timestamp",
			export:   `[{"start":"2026-10-18 09:00"}]`,
			wantCode: errors.ErrParse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupRender(t, tt.export)
			var out bytes.Buffer
			opts := renderOptions(&out)
			if tt.mutate != nil {
				tt.mutate(&opts)
			}

			err := Render(opts)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, errors.CodeOf(err))
			assert.Empty(t, out.String())
		})
	}
}
