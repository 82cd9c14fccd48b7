package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sandeepkv93/todolist/internal/model"
	"github.com/sandeepkv93/todolist/internal/reconcile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuntimeDefaults(t *testing.T) {
	cfg := Default()
	if cfg.Mode != reconcile.ModeKeyed || cfg.HideCompleted {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.LogLevel != "info" || cfg.MarkdownStyle != "dark" {
		t.Fatalf("unexpected logging defaults: %+v", cfg)
	}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, model.DefaultSeed(), cfg.Seed())
}

func TestRuntimeFromEnv(t *testing.T) {
	t.Setenv("TODOLIST_MODE", "positional")
	t.Setenv("TODOLIST_HIDE_COMPLETED", "yes")
	t.Setenv("TODOLIST_LOG_FILE", "debug.log")
	t.Setenv("TODOLIST_LOG_JSON", "true")
	t.Setenv("TODOLIST_LOG_LEVEL", "debug")
	t.Setenv("TODOLIST_MARKDOWN_STYLE", "notty")

	cfg := FromEnv(Default())
	assert.Equal(t, reconcile.ModePositional, cfg.Mode)
	assert.True(t, cfg.HideCompleted)
	assert.Equal(t, "debug.log", cfg.LogFile)
	assert.True(t, cfg.LogJSON)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "notty", cfg.MarkdownStyle)
}

func TestRuntimeFromEnvIgnoresGarbage(t *testing.T) {
	t.Setenv("TODOLIST_HIDE_COMPLETED", "maybe")
	cfg := FromEnv(Default())
	assert.False(t, cfg.HideCompleted)
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todolist.yaml")
	content := strings.Join([]string{
		"mode: positional",
		"hide_completed: true",
		"tasks:",
		"  - id: 7",
		"    label: Water plants",
		"  - id: 8",
		"    label: Pay rent",
		"    completed: true",
		"",
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, reconcile.ModePositional, cfg.Mode)
	assert.True(t, cfg.HideCompleted)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, []model.Task{
		{ID: 7, Label: "Water plants"},
		{ID: 8, Label: "Pay rent", Completed: true},
	}, cfg.Seed())
}

func TestLoadKeepsNonASCIILabels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todolist.yaml")
	content := `tasks:
  - id: 1
    label: カプセル化と再利用性について学ぶ
    completed: true
  - id: 4
    label: Litの実践的な使い方を学ぶ
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, []model.Task{
		{ID: 1, Label: "カプセル化と再利用性について学ぶ", Completed: true},
		{ID: 4, Label: "Litの実践的な使い方を学ぶ"},
	}, cfg.Seed())
}

func TestLoadMissingOrEmptyFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	empty := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("  \n"), 0o644))
	cfg, err = Load(empty)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mode: [keyed\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrConfigParseFailed.Error())
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := Default()
	cfg.Mode = "sideways"
	require.ErrorIs(t, cfg.Validate(), reconcile.ErrInvalidMode)

	cfg = Default()
	cfg.LogLevel = "loud"
	require.ErrorIs(t, cfg.Validate(), ErrInvalidLogLevel)

	cfg = Default()
	cfg.Tasks = []TaskConfig{{ID: 1, Label: "a"}, {ID: 1, Label: "b"}}
	require.ErrorIs(t, cfg.Validate(), model.ErrDuplicateID)
}
