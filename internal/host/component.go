package host

import (
	"fmt"
	"log/slog"

	"github.com/sandeepkv93/todolist/internal/events"
	"github.com/sandeepkv93/todolist/internal/model"
	"github.com/sandeepkv93/todolist/internal/reconcile"
	"github.com/sandeepkv93/todolist/internal/scheduler"
	"github.com/sandeepkv93/todolist/internal/store"
	"github.com/sandeepkv93/todolist/internal/views"
	"go.trai.ch/zerr"
)

// ElementName is the name the checklist registers under.
const ElementName = "todo-list"

var ErrNoSuchElement = zerr.New("host: no element with key")

type options struct {
	mode   reconcile.Mode
	seed   []model.Task
	hide   bool
	logger *slog.Logger
	queue  *scheduler.Queue
}

type Option func(*options)

func WithMode(mode reconcile.Mode) Option {
	return func(o *options) { o.mode = mode }
}

// WithSeed replaces the default dataset. The list is validated when the
// component is constructed.
func WithSeed(tasks []model.Task) Option {
	return func(o *options) { o.seed = tasks }
}

// WithHideCompleted sets the initial hideCompleted property as if the host
// document had declared the attribute.
func WithHideCompleted(hide bool) Option {
	return func(o *options) { o.hide = hide }
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithQueue shares a render queue between components and their host loop.
func WithQueue(q *scheduler.Queue) Option {
	return func(o *options) {
		if q != nil {
			o.queue = q
		}
	}
}

// Component is the checklist widget: store, render engine, dispatcher and
// attribute reflection wired onto one host element.
type Component struct {
	host       *Element
	store      *store.Store
	surface    *reconcile.Surface
	engine     *reconcile.Engine
	queue      *scheduler.Queue
	dispatcher *events.Dispatcher
	reflector  *Reflector
	bindings   map[string]views.Binding
	logger     *slog.Logger
	connected  bool
}

func NewComponent(opts ...Option) (*Component, error) {
	o := options{
		mode:   reconcile.ModeKeyed,
		seed:   model.DefaultSeed(),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.queue == nil {
		o.queue = scheduler.NewQueue()
	}

	c := &Component{
		host:     NewElement(ElementName),
		store:    store.New(),
		surface:  reconcile.NewSurface(),
		queue:    o.queue,
		bindings: make(map[string]views.Binding),
		logger:   o.logger.With("element", ElementName),
	}
	if err := c.store.Initialize(o.seed); err != nil {
		return nil, err
	}
	c.engine = reconcile.NewEngine(c.surface, c.queue, c.render,
		reconcile.WithMode(o.mode),
		reconcile.WithLogger(c.logger),
	)
	c.reflector = NewReflector(c.host, AttrHideCompleted)
	c.dispatcher = events.NewDispatcher(events.Handlers{
		ToggleTask:       c.store.SetCompleted,
		SetHideCompleted: c.store.SetHideCompleted,
	})
	c.store.Subscribe(c.stateChanged)
	c.host.Observe(c.attributeChanged)
	if o.hide {
		c.store.SetHideCompleted(true)
	}
	return c, nil
}

// Define registers the checklist constructor under ElementName.
func Define(r *Registry, opts ...Option) error {
	return r.Define(ElementName, func() (*Component, error) {
		return NewComponent(opts...)
	})
}

func (c *Component) Host() *Element              { return c.host }
func (c *Component) Store() *store.Store         { return c.store }
func (c *Component) Surface() *reconcile.Surface { return c.surface }
func (c *Component) Engine() *reconcile.Engine   { return c.engine }
func (c *Component) Queue() *scheduler.Queue     { return c.queue }
func (c *Component) Connected() bool             { return c.connected }

// Bindings is the handler table of the last render pass.
func (c *Component) Bindings() map[string]views.Binding { return c.bindings }

// Connect schedules the first render pass.
func (c *Component) Connect() {
	if c.connected {
		return
	}
	c.connected = true
	c.engine.Invalidate()
}

// Disconnect schedules a pass that unmounts the surface.
func (c *Component) Disconnect() {
	if !c.connected {
		return
	}
	c.connected = false
	c.engine.Invalidate()
}

// HideCompleted and SetHideCompleted are the component's property
// accessors; the setter goes through the store like every other write.
func (c *Component) HideCompleted() bool { return c.store.HideCompleted() }

func (c *Component) SetHideCompleted(v bool) { c.store.SetHideCompleted(v) }

// stateChanged runs inside every accepted store mutation: reflect first,
// then mark the engine dirty, so attribute and frame change in one tick.
func (c *Component) stateChanged(ch store.Change) {
	if ch.Field == store.FieldHideCompleted {
		c.reflector.Reflect(c.store.HideCompleted())
	}
	c.logger.Debug("state changed", "field", string(ch.Field), "task", ch.TaskID)
	c.engine.Invalidate()
}

func (c *Component) attributeChanged(name, _ string, present bool) {
	if name != AttrHideCompleted {
		return
	}
	c.store.SetHideCompleted(present)
}

func (c *Component) render() *views.Node {
	if !c.connected {
		c.bindings = make(map[string]views.Binding)
		return nil
	}
	v := views.Build(views.State{
		Tasks:         c.store.VisibleTasks(),
		HideCompleted: c.store.HideCompleted(),
	})
	c.bindings = v.Bindings
	return v.Tree
}

// Dispatch routes ev through the current binding table. Errors are logged
// and returned to the caller.
func (c *Component) Dispatch(ev events.Event) error {
	err := c.dispatcher.Dispatch(ev, c.bindings)
	if err != nil {
		c.logger.Error("dispatch failed", "event", string(ev.Type), "error", err)
	}
	return err
}

// Click performs a user click on the element with key: a checkbox flips
// its checked state first, then click and change are delivered to
// whichever of them is bound.
func (c *Component) Click(key string) error {
	el := c.surface.Find(key)
	if el == nil {
		return fmt.Errorf("%w: %q", ErrNoSuchElement, key)
	}
	isCheckbox := el.ControlKind() == "checkbox"
	if isCheckbox {
		el.SetChecked(!el.IsChecked())
	}
	if err := c.fire(el, views.EventClick); err != nil {
		return err
	}
	if isCheckbox {
		return c.fire(el, views.EventChange)
	}
	return nil
}

func (c *Component) fire(el *reconcile.Element, typ views.EventType) error {
	b, ok := c.bindings[el.Key]
	if !ok || b.Event != typ {
		return nil
	}
	return c.Dispatch(events.Event{Type: typ, Target: el})
}

// Checkboxes lists the checkbox elements of the live surface in document
// order.
func (c *Component) Checkboxes() []*reconcile.Element {
	out := make([]*reconcile.Element, 0)
	c.surface.Root().Walk(func(el *reconcile.Element) bool {
		if el.ControlKind() == "checkbox" {
			out = append(out, el)
		}
		return true
	})
	return out
}
