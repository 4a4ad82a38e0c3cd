package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"focuscycle/internal/settings"
	"focuscycle/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.Execute()
	return out.String(), err
}

func TestSettingsInitWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.yaml")

	out, err := executeRoot(t, "--config", path, "settings", "init")
	require.NoError(t, err)
	assert.Contains(t, out, path)

	loaded, err := storage.LoadSettingsFile(path)
	require.NoError(t, err)
	assert.Equal(t, settings.DefaultSettings(), loaded)
}

func TestSettingsInitRefusesOverwriteWithoutForce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	custom := settings.DefaultSettings()
	custom.DefaultMinutes = 40
	require.NoError(t, storage.SaveSettingsFile(path, custom))

	_, err := executeRoot(t, "--config", path, "settings", "init")
	require.Error(t, err)

	loaded, err := storage.LoadSettingsFile(path)
	require.NoError(t, err)
	assert.Equal(t, 40, loaded.DefaultMinutes)

	_, err = executeRoot(t, "--config", path, "settings", "init", "--force")
	require.NoError(t, err)

	loaded, err = storage.LoadSettingsFile(path)
	require.NoError(t, err)
	assert.Equal(t, settings.DefaultSettings().DefaultMinutes, loaded.DefaultMinutes)
}

func TestSettingsShowAppliesLogLevelFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	out, err := executeRoot(t, "--config", path, "--log-level", "debug", "settings")
	require.NoError(t, err)

	assert.Contains(t, out, "default minutes:  25")
	assert.Contains(t, out, "log level:        debug")
	assert.Contains(t, out, "Project 1, Project 2, Project 3")
}
