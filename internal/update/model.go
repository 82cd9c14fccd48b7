package update

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/sandeepkv93/todolist/internal/config"
	"github.com/sandeepkv93/todolist/internal/host"
	"github.com/sandeepkv93/todolist/internal/views"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Up     string
	Down   string
	Toggle string
	Hide   string
	Help   string
	Quit   string
}

// Model hosts one checklist component inside a bubbletea program. The
// program's Update goroutine is the component's only execution context.
type Model struct {
	Component   *host.Component
	Status      StatusBar
	Keys        GlobalKeyMap
	HelpVisible bool
	Quitting    bool
	LastError   error
	cursor      int
	header      string
	helpModel   help.Model
	logger      *slog.Logger
}

// FlushMsg asks the model to run the render passes queued since the last
// flush.
type FlushMsg struct{}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

// SetHideCompletedMsg writes the host attribute from outside the
// component, the way a host document would.
type SetHideCompletedMsg struct {
	Value bool
}

func DefaultKeys() GlobalKeyMap {
	return GlobalKeyMap{
		Up:     "k",
		Down:   "j",
		Toggle: " ",
		Hide:   "h",
		Help:   "?",
		Quit:   "q",
	}
}

func NewModel(c *host.Component) Model {
	return NewModelWithOptions(c, "dark", nil)
}

func NewModelWithOptions(c *host.Component, markdownStyle string, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return Model{
		Component: c,
		Keys:      DefaultKeys(),
		header:    views.RenderMarkdown("# "+views.Heading, markdownStyle),
		helpModel: help.New(),
		logger:    logger,
	}
}

// NewModelWithConfig builds the component from cfg through a registry, the
// same path a host document takes.
func NewModelWithConfig(cfg config.Runtime, logger *slog.Logger) (Model, error) {
	if err := cfg.Validate(); err != nil {
		return Model{}, err
	}
	registry := host.NewRegistry()
	if err := host.Define(registry,
		host.WithMode(cfg.Mode),
		host.WithSeed(cfg.Seed()),
		host.WithHideCompleted(cfg.HideCompleted),
		host.WithLogger(logger),
	); err != nil {
		return Model{}, err
	}
	c, err := registry.Create(host.ElementName)
	if err != nil {
		return Model{}, err
	}
	return NewModelWithOptions(c, cfg.MarkdownStyle, logger), nil
}
