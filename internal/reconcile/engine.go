package reconcile

import (
	"log/slog"

	"github.com/sandeepkv93/todolist/internal/views"
)

type State int

const (
	StateIdle State = iota
	StateDirty
	StateRendering
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDirty:
		return "dirty"
	case StateRendering:
		return "rendering"
	default:
		return "unknown"
	}
}

// Scheduler defers a render pass to the end of the current tick.
type Scheduler interface {
	Schedule(fn func())
}

type BuildFunc func() *views.Node

// Pass summarizes one completed render pass.
type Pass struct {
	Seq     int
	Patches []Patch
}

type Option func(*Engine)

func WithMode(mode Mode) Option {
	return func(e *Engine) {
		if mode != "" {
			e.mode = mode
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithPassHook registers fn to run after every render pass.
func WithPassHook(fn func(Pass)) Option {
	return func(e *Engine) {
		e.onPass = fn
	}
}

// Engine runs the Idle -> Dirty -> Rendering -> Idle cycle. Any number of
// invalidations before a pass runs collapse into that one pass.
type Engine struct {
	surface *Surface
	sched   Scheduler
	build   BuildFunc
	mode    Mode
	state   State
	passes  int
	last    []Patch
	onPass  func(Pass)
	logger  *slog.Logger
}

func NewEngine(surface *Surface, sched Scheduler, build BuildFunc, opts ...Option) *Engine {
	e := &Engine{
		surface: surface,
		sched:   sched,
		build:   build,
		mode:    ModeKeyed,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) State() State         { return e.state }
func (e *Engine) Mode() Mode           { return e.mode }
func (e *Engine) Passes() int          { return e.passes }
func (e *Engine) LastPatches() []Patch { return e.last }
func (e *Engine) Surface() *Surface    { return e.surface }

// Invalidate marks the state dirty. Only the transition out of Idle
// schedules a pass; a pass in progress reschedules itself on completion.
func (e *Engine) Invalidate() {
	switch e.state {
	case StateIdle:
		e.state = StateDirty
		e.sched.Schedule(e.run)
	case StateRendering:
		e.state = StateDirty
	case StateDirty:
	}
}

func (e *Engine) run() {
	if e.state != StateDirty {
		return
	}
	e.state = StateRendering
	tree := e.build()
	e.last = e.surface.Apply(tree, e.mode)
	e.passes++
	e.logger.Debug("render pass", "seq", e.passes, "mode", string(e.mode), "patches", len(e.last))
	if e.onPass != nil {
		e.onPass(Pass{Seq: e.passes, Patches: e.last})
	}
	if e.state == StateDirty {
		e.sched.Schedule(e.run)
		return
	}
	e.state = StateIdle
}
