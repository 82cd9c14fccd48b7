package reconcile

import (
	"slices"
	"strings"

	"github.com/sandeepkv93/todolist/internal/views"
)

// Element is a node of the live surface. Its ID is assigned at creation and
// survives every in-place patch, so holders of an *Element (focus, event
// targets) stay valid until the element is removed.
type Element struct {
	ID       uint64
	Kind     views.NodeKind
	Tag      string
	Key      string
	Text     string
	Children []*Element
	Parent   *Element

	attrs   map[string]string
	applied uint64
}

func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

// Attrs returns the element's attributes sorted by name.
func (e *Element) Attrs() []views.Attr {
	out := make([]views.Attr, 0, len(e.attrs))
	for name, value := range e.attrs {
		out = append(out, views.Attr{Name: name, Value: value})
	}
	slices.SortFunc(out, func(a, b views.Attr) int { return strings.Compare(a.Name, b.Name) })
	return out
}

func (e *Element) HasClass(class string) bool {
	v, ok := e.attrs["class"]
	return ok && slices.Contains(strings.Fields(v), class)
}

// ControlKind is "#text" for text nodes, the type attribute for inputs and
// the tag otherwise. A nil element has no kind.
func (e *Element) ControlKind() string {
	if e == nil {
		return ""
	}
	if e.Kind == views.TextNode {
		return "#text"
	}
	if e.Tag == "input" {
		if t, ok := e.attrs["type"]; ok {
			return t
		}
		return "text"
	}
	return e.Tag
}

func (e *Element) IsChecked() bool {
	if e == nil {
		return false
	}
	_, ok := e.attrs["checked"]
	return ok
}

func (e *Element) ElementKey() string {
	if e == nil {
		return ""
	}
	return e.Key
}

// SetChecked changes the checked state the way a user interaction does,
// outside of reconciliation.
func (e *Element) SetChecked(checked bool) {
	if e.IsChecked() == checked {
		return
	}
	if checked {
		e.attrs["checked"] = ""
	} else {
		delete(e.attrs, "checked")
	}
	for p := e; p != nil; p = p.Parent {
		p.applied = 0
	}
}

// TextContent concatenates the text of every text node in the subtree.
func (e *Element) TextContent() string {
	if e.Kind == views.TextNode {
		return e.Text
	}
	var b strings.Builder
	for _, c := range e.Children {
		b.WriteString(c.TextContent())
	}
	return b.String()
}

func (e *Element) Find(key string) *Element {
	if e == nil {
		return nil
	}
	if e.Key == key {
		return e
	}
	for _, c := range e.Children {
		if found := c.Find(key); found != nil {
			return found
		}
	}
	return nil
}

// Walk visits the subtree in document order until fn returns false.
func (e *Element) Walk(fn func(*Element) bool) bool {
	if e == nil {
		return true
	}
	if !fn(e) {
		return false
	}
	for _, c := range e.Children {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}

func (e *Element) contains(other *Element) bool {
	for p := other; p != nil; p = p.Parent {
		if p == e {
			return true
		}
	}
	return false
}

// Surface is the live element tree a component renders into.
type Surface struct {
	root    *Element
	nextID  uint64
	focused *Element
	created int
	removed int
}

func NewSurface() *Surface {
	return &Surface{}
}

func (s *Surface) Root() *Element {
	return s.root
}

func (s *Surface) Find(key string) *Element {
	return s.root.Find(key)
}

func (s *Surface) Focused() *Element {
	return s.focused
}

// Focus moves focus to el, which must belong to this surface. A nil el
// clears focus.
func (s *Surface) Focus(el *Element) bool {
	if el != nil && (s.root == nil || !s.root.contains(el)) {
		return false
	}
	s.focused = el
	return true
}

// Created and Removed count elements (not patches) over the surface's life.
func (s *Surface) Created() int { return s.created }
func (s *Surface) Removed() int { return s.removed }

func (s *Surface) newElement(n *views.Node) *Element {
	s.nextID++
	s.created++
	el := &Element{
		ID:    s.nextID,
		Kind:  n.Kind,
		Tag:   n.Tag,
		Key:   n.Key,
		Text:  n.Text,
		attrs: make(map[string]string, len(n.Attrs)),
	}
	for _, a := range n.Attrs {
		el.attrs[a.Name] = a.Value
	}
	return el
}

func (s *Surface) release(el *Element) {
	el.Walk(func(e *Element) bool {
		s.removed++
		if s.focused == e {
			s.focused = nil
		}
		return true
	})
	el.Parent = nil
}
