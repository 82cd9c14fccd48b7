package events

import (
	"fmt"

	"github.com/sandeepkv93/todolist/internal/views"
	"go.trai.ch/zerr"
)

var ErrTargetMismatch = zerr.New("events: target is not a checkbox")

type ErrorCode string

const (
	ErrCodeTargetMismatch ErrorCode = "target_mismatch"
	ErrCodeUnbound        ErrorCode = "unbound_target"
	ErrCodeHandlerMissing ErrorCode = "handler_missing"
)

type DispatchError struct {
	Code    ErrorCode
	Message string
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap lets errors.Is match ErrTargetMismatch.
func (e *DispatchError) Unwrap() error {
	if e.Code == ErrCodeTargetMismatch {
		return ErrTargetMismatch
	}
	return nil
}

// Event is a user interaction. Target is whatever the surface reports as
// the origin; its shape is checked before any handler runs.
type Event struct {
	Type   views.EventType
	Target any
}

// Control is implemented by targets that can report what kind of control
// they are ("checkbox", "#text", ...).
type Control interface {
	ControlKind() string
}

// Checkable is implemented by targets carrying a boolean checked state.
type Checkable interface {
	IsChecked() bool
}

// Keyed is implemented by targets that carry an element key.
type Keyed interface {
	ElementKey() string
}

// CheckedState verifies that target is checkbox-shaped and returns its
// checked state.
func CheckedState(target any) (bool, error) {
	ctl, ok := target.(Control)
	if !ok {
		return false, &DispatchError{Code: ErrCodeTargetMismatch, Message: fmt.Sprintf("target %T has no control kind", target)}
	}
	if kind := ctl.ControlKind(); kind != "checkbox" {
		return false, &DispatchError{Code: ErrCodeTargetMismatch, Message: fmt.Sprintf("target is %q, want checkbox", kind)}
	}
	chk, ok := target.(Checkable)
	if !ok {
		return false, &DispatchError{Code: ErrCodeTargetMismatch, Message: fmt.Sprintf("target %T has no checked state", target)}
	}
	return chk.IsChecked(), nil
}
