package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/dayline/internal/config"
	"github.com/rileyhilliard/dayline/internal/errors"
)

func TestInit_WritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".dayline.yaml")
	var out bytes.Buffer

	require.NoError(t, Init(InitOptions{Path: path, NonInteractive: true, Out: &out}))
	assert.Contains(t, out.String(), "Created "+path)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.NoError(t, config.Validate(cfg))
	assert.Equal(t, config.DefaultConfig().Resolution, cfg.Resolution)
	assert.Equal(t, config.DefaultConfig().Source.Command, cfg.Source.Command)
}

func TestInit_ExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".dayline.yaml")
	require.NoError(t, os.WriteFile(path, []byte("resolution: 9\n"), 0644))

	t.Run("refuses without overwrite", func(t *testing.T) {
		err := Init(InitOptions{Path: path, NonInteractive: true, Out: &bytes.Buffer{}})
		require.Error(t, err)
		assert.Equal(t, errors.ErrConfig, errors.CodeOf(err))
		assert.Contains(t, err.Error(), "--force")

		data, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		assert.Equal(t, "resolution: 9\n", string(data))
	})

	t.Run("overwrites with force", func(t *testing.T) {
		require.NoError(t, Init(InitOptions{Path: path, Overwrite: true, NonInteractive: true, Out: &bytes.Buffer{}}))

		cfg, err := config.Load(path)
		require.NoError(t, err)
		assert.Equal(t, config.DefaultResolution, cfg.Resolution)
	})
}

func TestInit_Locations(t *testing.T) {
	home := t.TempDir()
	cwd := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(cwd)

	require.NoError(t, Init(InitOptions{NonInteractive: true, Out: &bytes.Buffer{}}))
	assert.FileExists(t, filepath.Join(cwd, config.ConfigFileName))

	require.NoError(t, Init(InitOptions{Global: true, NonInteractive: true, Out: &bytes.Buffer{}}))
	assert.FileExists(t, config.GlobalConfigPath())
	assert.Equal(t, home, filepath.Dir(filepath.Dir(filepath.Dir(config.GlobalConfigPath()))))
}
