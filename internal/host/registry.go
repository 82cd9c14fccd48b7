package host

import (
	"fmt"
	"slices"
	"sync"

	"go.trai.ch/zerr"
)

var (
	ErrAlreadyDefined = zerr.New("host: element already defined")
	ErrUnknownElement = zerr.New("host: unknown element")
)

// Constructor builds a fresh, unconnected element instance.
type Constructor func() (*Component, error)

// Registry maps element names to constructors.
type Registry struct {
	mu    sync.RWMutex
	ctors map[string]Constructor
}

func NewRegistry() *Registry {
	return &Registry{ctors: make(map[string]Constructor)}
}

func (r *Registry) Define(name string, ctor Constructor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.ctors[name]; ok {
		return fmt.Errorf("%w: %s", ErrAlreadyDefined, name)
	}
	r.ctors[name] = ctor
	return nil
}

func (r *Registry) Create(name string) (*Component, error) {
	r.mu.RLock()
	ctor, ok := r.ctors[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownElement, name)
	}
	return ctor()
}

func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.ctors))
	for n := range r.ctors {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}
