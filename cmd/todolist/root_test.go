package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sandeepkv93/todolist/internal/reconcile"
	"github.com/sandeepkv93/todolist/internal/update"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"TODOLIST_MODE", "TODOLIST_HIDE_COMPLETED", "TODOLIST_LOG_FILE",
		"TODOLIST_LOG_JSON", "TODOLIST_LOG_LEVEL", "TODOLIST_MARKDOWN_STYLE",
	} {
		t.Setenv(key, "")
	}
}

func execute(t *testing.T, args ...string) (update.Model, error) {
	t.Helper()
	var got update.Model
	cmd := newRootCmd(func(_ context.Context, m update.Model) error {
		got = m
		return nil
	})
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(t.Context())
	return got, err
}

func TestRootDefaults(t *testing.T) {
	clearEnv(t)
	m, err := execute(t)
	require.NoError(t, err)
	require.NotNil(t, m.Component)
	assert.Equal(t, reconcile.ModeKeyed, m.Component.Engine().Mode())
	assert.False(t, m.Component.HideCompleted())
	assert.Equal(t, 4, m.Component.Store().Len())
}

func TestRootFlagsOverrideConfigFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "todolist.yaml")
	content := `mode: keyed
hide_completed: false
markdown_style: notty
tasks:
  - id: 10
    label: write docs
  - id: 11
    label: ship
    completed: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	m, err := execute(t, "--config", path, "--mode", "positional", "--hide-completed")
	require.NoError(t, err)
	assert.Equal(t, reconcile.ModePositional, m.Component.Engine().Mode())
	assert.True(t, m.Component.HideCompleted())
	assert.Equal(t, 2, m.Component.Store().Len())
	task, ok := m.Component.Store().Task(11)
	require.True(t, ok)
	assert.True(t, task.Completed)
}

func TestRootEnvAppliesBeforeFlags(t *testing.T) {
	clearEnv(t)
	t.Setenv("TODOLIST_MODE", "positional")
	m, err := execute(t)
	require.NoError(t, err)
	assert.Equal(t, reconcile.ModePositional, m.Component.Engine().Mode())

	m, err = execute(t, "--mode", "keyed")
	require.NoError(t, err)
	assert.Equal(t, reconcile.ModeKeyed, m.Component.Engine().Mode())
}

func TestRootRejectsInvalidMode(t *testing.T) {
	clearEnv(t)
	_, err := execute(t, "--mode", "sideways")
	require.ErrorIs(t, err, reconcile.ErrInvalidMode)
}

func TestRootRejectsDuplicateTaskIDs(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "dup.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tasks:\n  - id: 1\n    label: a\n  - id: 1\n    label: b\n"), 0o600))
	_, err := execute(t, "--config", path)
	require.Error(t, err)
}

func TestRootWritesLogFile(t *testing.T) {
	clearEnv(t)
	logPath := filepath.Join(t.TempDir(), "todolist.log")
	_, err := execute(t, "--log-file", logPath, "--log-json")
	require.NoError(t, err)

	raw, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(raw), `"msg":"starting"`), string(raw))
	assert.Contains(t, string(raw), `"mode":"keyed"`)
}

func TestRootRejectsArgs(t *testing.T) {
	clearEnv(t)
	_, err := execute(t, "extra")
	require.Error(t, err)
}
