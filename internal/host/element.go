package host

import (
	"maps"
	"slices"
	"strings"
)

// Element is the host node a component is mounted on. It owns the
// externally visible attributes.
type Element struct {
	name     string
	attrs    map[string]string
	observer func(name string, value string, present bool)
}

func NewElement(name string) *Element {
	return &Element{name: name, attrs: make(map[string]string)}
}

func (e *Element) Name() string { return e.name }

// Observe registers fn to be told about every attribute write.
func (e *Element) Observe(fn func(name string, value string, present bool)) {
	e.observer = fn
}

func (e *Element) SetAttribute(name, value string) {
	if cur, ok := e.attrs[name]; ok && cur == value {
		return
	}
	e.attrs[name] = value
	if e.observer != nil {
		e.observer(name, value, true)
	}
}

func (e *Element) RemoveAttribute(name string) {
	if _, ok := e.attrs[name]; !ok {
		return
	}
	delete(e.attrs, name)
	if e.observer != nil {
		e.observer(name, "", false)
	}
}

func (e *Element) Attribute(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

func (e *Element) HasAttribute(name string) bool {
	_, ok := e.attrs[name]
	return ok
}

// String renders the attributes as they would appear on a start tag.
func (e *Element) String() string {
	names := slices.Sorted(maps.Keys(e.attrs))
	parts := make([]string, 0, len(names))
	for _, n := range names {
		if v := e.attrs[n]; v != "" {
			parts = append(parts, n+"="+v)
		} else {
			parts = append(parts, n)
		}
	}
	return strings.Join(parts, " ")
}
