package events

import (
	"fmt"

	"github.com/sandeepkv93/todolist/internal/views"
)

type Handlers struct {
	ToggleTask       func(id int, checked bool)
	SetHideCompleted func(checked bool)
}

// Dispatcher routes events through a binding table produced by the view
// builder to the store mutations in Handlers.
type Dispatcher struct {
	Handlers Handlers
}

func NewDispatcher(h Handlers) *Dispatcher {
	return &Dispatcher{Handlers: h}
}

// Dispatch validates ev and invokes the handler bound to its target's key.
// Nothing is mutated when an error is returned.
func (d *Dispatcher) Dispatch(ev Event, bindings map[string]views.Binding) error {
	keyed, ok := ev.Target.(Keyed)
	if !ok {
		if _, err := CheckedState(ev.Target); err != nil {
			return err
		}
		return &DispatchError{Code: ErrCodeUnbound, Message: "target has no key"}
	}
	b, ok := bindings[keyed.ElementKey()]
	if !ok || b.Event != ev.Type {
		if _, err := CheckedState(ev.Target); err != nil {
			return err
		}
		return &DispatchError{Code: ErrCodeUnbound, Message: fmt.Sprintf("no %s binding for %q", ev.Type, keyed.ElementKey())}
	}
	switch b.Action {
	case views.ActionToggleTask:
		return d.HandleTaskClick(ev, b.TaskID)
	case views.ActionHideCompleted:
		return d.HandleHideCompletedChange(ev)
	default:
		return &DispatchError{Code: ErrCodeUnbound, Message: fmt.Sprintf("unknown action %s", b.Action)}
	}
}

// HandleTaskClick handles a click on the checkbox of task id.
func (d *Dispatcher) HandleTaskClick(ev Event, id int) error {
	checked, err := CheckedState(ev.Target)
	if err != nil {
		return err
	}
	if d.Handlers.ToggleTask == nil {
		return &DispatchError{Code: ErrCodeHandlerMissing, Message: "toggle handler not configured"}
	}
	d.Handlers.ToggleTask(id, checked)
	return nil
}

// HandleHideCompletedChange handles a change of the hide-completed checkbox.
func (d *Dispatcher) HandleHideCompletedChange(ev Event) error {
	checked, err := CheckedState(ev.Target)
	if err != nil {
		return err
	}
	if d.Handlers.SetHideCompleted == nil {
		return &DispatchError{Code: ErrCodeHandlerMissing, Message: "hide-completed handler not configured"}
	}
	d.Handlers.SetHideCompleted(checked)
	return nil
}
