package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sandeepkv93/todolist/internal/model"
	"github.com/sandeepkv93/todolist/internal/reconcile"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var (
	ErrConfigReadFailed  = zerr.New("failed to read config file")
	ErrConfigParseFailed = zerr.New("failed to parse config file")
	ErrInvalidLogLevel   = zerr.New("invalid log level")
)

type TaskConfig struct {
	ID        int    `yaml:"id"`
	Label     string `yaml:"label"`
	Completed bool   `yaml:"completed"`
}

type Runtime struct {
	Mode          reconcile.Mode `yaml:"mode"`
	HideCompleted bool           `yaml:"hide_completed"`
	LogFile       string         `yaml:"log_file"`
	LogJSON       bool           `yaml:"log_json"`
	LogLevel      string         `yaml:"log_level"`
	MarkdownStyle string         `yaml:"markdown_style"`
	Tasks         []TaskConfig   `yaml:"tasks"`
}

func Default() Runtime {
	return Runtime{
		Mode:          reconcile.ModeKeyed,
		HideCompleted: false,
		LogLevel:      "info",
		MarkdownStyle: "dark",
	}
}

// Load overlays the YAML file at path onto the defaults. An empty path or
// a missing file yields the defaults.
func Load(path string) (Runtime, error) {
	cfg := Default()
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(trimmed)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Runtime{}, zerr.Wrap(err, ErrConfigReadFailed.Error())
	}
	if strings.TrimSpace(string(raw)) == "" {
		return cfg, nil
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Runtime{}, zerr.Wrap(err, ErrConfigParseFailed.Error())
	}
	return cfg, nil
}

func FromEnv(base Runtime) Runtime {
	cfg := base
	if v, ok := getEnvString("TODOLIST_MODE"); ok {
		cfg.Mode = reconcile.Mode(v)
	}
	if v, ok := getEnvBool("TODOLIST_HIDE_COMPLETED"); ok {
		cfg.HideCompleted = v
	}
	if v, ok := getEnvString("TODOLIST_LOG_FILE"); ok {
		cfg.LogFile = v
	}
	if v, ok := getEnvBool("TODOLIST_LOG_JSON"); ok {
		cfg.LogJSON = v
	}
	if v, ok := getEnvString("TODOLIST_LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := getEnvString("TODOLIST_MARKDOWN_STYLE"); ok {
		cfg.MarkdownStyle = v
	}
	return cfg
}

func (r Runtime) Validate() error {
	if _, err := reconcile.ParseMode(string(r.Mode)); err != nil {
		return err
	}
	switch strings.ToLower(r.LogLevel) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, r.LogLevel)
	}
	if len(r.Tasks) > 0 {
		return model.ValidateList(r.Seed())
	}
	return nil
}

// Seed returns the configured tasks, or the default dataset when the file
// does not declare any.
func (r Runtime) Seed() []model.Task {
	if len(r.Tasks) == 0 {
		return model.DefaultSeed()
	}
	out := make([]model.Task, 0, len(r.Tasks))
	for _, t := range r.Tasks {
		out = append(out, model.Task{ID: t.ID, Label: t.Label, Completed: t.Completed})
	}
	return out
}

func getEnvString(name string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return "", false
	}
	return raw, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		if v, err := strconv.ParseBool(raw); err == nil {
			return v, true
		}
		return false, false
	}
}
