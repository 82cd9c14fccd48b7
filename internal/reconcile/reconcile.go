package reconcile

import (
	"slices"

	"github.com/sandeepkv93/todolist/internal/views"
)

type reconciler struct {
	s       *Surface
	mode    Mode
	patches []Patch
	prints  map[*views.Node]uint64
}

// Apply brings the live surface in line with tree and returns the patches
// it applied. A nil tree unmounts the surface.
func (s *Surface) Apply(tree *views.Node, mode Mode) []Patch {
	r := &reconciler{s: s, mode: mode, prints: make(map[*views.Node]uint64)}
	switch {
	case tree == nil && s.root == nil:
	case tree == nil:
		r.remove(s.root)
		s.root = nil
	case s.root == nil:
		s.root = r.create(tree, nil, 0)
	case !sameType(s.root, tree):
		old := s.root
		s.root = r.create(tree, nil, 0)
		r.replaced(old, s.root)
	default:
		r.patch(s.root, tree)
	}
	return r.patches
}

func sameType(el *Element, n *views.Node) bool {
	return el.Kind == n.Kind && el.Tag == n.Tag
}

func (r *reconciler) fingerprint(n *views.Node) uint64 {
	if fp, ok := r.prints[n]; ok {
		return fp
	}
	fp := n.FingerprintWith(r.fingerprint)
	r.prints[n] = fp
	return fp
}

func (r *reconciler) emit(p Patch) {
	r.patches = append(r.patches, p)
}

func (r *reconciler) create(n *views.Node, parent *Element, index int) *Element {
	el := r.build(n, parent)
	r.emit(Patch{Op: OpCreate, ElementID: el.ID, Key: el.Key, Index: index})
	return el
}

func (r *reconciler) build(n *views.Node, parent *Element) *Element {
	el := r.s.newElement(n)
	el.Parent = parent
	el.Children = make([]*Element, 0, len(n.Children))
	for _, c := range n.Children {
		el.Children = append(el.Children, r.build(c, el))
	}
	el.applied = r.fingerprint(n)
	return el
}

func (r *reconciler) remove(el *Element) {
	r.emit(Patch{Op: OpRemove, ElementID: el.ID, Key: el.Key})
	r.s.release(el)
}

func (r *reconciler) replaced(old, el *Element) {
	r.emit(Patch{Op: OpReplace, ElementID: el.ID, Key: el.Key, Value: old.Key})
	r.s.release(old)
}

// patch updates el in place to match n. Subtrees whose last applied
// fingerprint matches n are left untouched.
func (r *reconciler) patch(el *Element, n *views.Node) {
	fp := r.fingerprint(n)
	if el.applied == fp && fp != 0 {
		return
	}
	if el.Key != n.Key {
		el.Key = n.Key
		r.emit(Patch{Op: OpSetKey, ElementID: el.ID, Value: n.Key})
	}
	r.attrs(el, n)
	if el.Text != n.Text {
		el.Text = n.Text
		r.emit(Patch{Op: OpSetText, ElementID: el.ID, Key: el.Key, Value: n.Text})
	}
	if r.mode == ModePositional {
		r.positional(el, n.Children)
	} else {
		r.keyed(el, n.Children)
	}
	el.applied = fp
}

func (r *reconciler) attrs(el *Element, n *views.Node) {
	want := make(map[string]struct{}, len(n.Attrs))
	for _, a := range n.Attrs {
		want[a.Name] = struct{}{}
		if cur, ok := el.attrs[a.Name]; ok && cur == a.Value {
			continue
		}
		el.attrs[a.Name] = a.Value
		r.emit(Patch{Op: OpSetAttr, ElementID: el.ID, Key: el.Key, Name: a.Name, Value: a.Value})
	}
	stale := make([]string, 0)
	for name := range el.attrs {
		if _, ok := want[name]; !ok {
			stale = append(stale, name)
		}
	}
	slices.Sort(stale)
	for _, name := range stale {
		delete(el.attrs, name)
		r.emit(Patch{Op: OpRemoveAttr, ElementID: el.ID, Key: el.Key, Name: name})
	}
}

// positional matches children by index. A type change at an index replaces
// the element; length differences create or remove trailing elements.
func (r *reconciler) positional(parent *Element, nodes []*views.Node) {
	old := parent.Children
	next := make([]*Element, 0, len(nodes))
	for i, n := range nodes {
		if i >= len(old) {
			next = append(next, r.create(n, parent, i))
			continue
		}
		el := old[i]
		if !sameType(el, n) {
			fresh := r.build(n, parent)
			r.replaced(el, fresh)
			next = append(next, fresh)
			continue
		}
		r.patch(el, n)
		next = append(next, el)
	}
	for _, el := range old[min(len(nodes), len(old)):] {
		r.remove(el)
	}
	parent.Children = next
}

// keyed matches keyed children by key regardless of position and falls back
// to in-order matching for unkeyed siblings.
func (r *reconciler) keyed(parent *Element, nodes []*views.Node) {
	old := parent.Children
	byKey := make(map[string]*Element, len(old))
	unkeyed := make([]*Element, 0)
	for _, el := range old {
		if el.Key != "" {
			byKey[el.Key] = el
		} else {
			unkeyed = append(unkeyed, el)
		}
	}

	used := make(map[*Element]bool, len(old))
	next := make([]*Element, 0, len(nodes))
	cursor := 0
	for i, n := range nodes {
		var el *Element
		if n.Key != "" {
			if cand, ok := byKey[n.Key]; ok && sameType(cand, n) {
				el = cand
				delete(byKey, n.Key)
			}
		} else {
			for cursor < len(unkeyed) {
				cand := unkeyed[cursor]
				cursor++
				if sameType(cand, n) {
					el = cand
					break
				}
			}
		}
		if el == nil {
			next = append(next, r.create(n, parent, i))
			continue
		}
		used[el] = true
		r.patch(el, n)
		next = append(next, el)
	}

	survivors := make([]*Element, 0, len(used))
	for _, el := range old {
		if used[el] {
			survivors = append(survivors, el)
		} else {
			r.remove(el)
		}
	}

	j := 0
	for i, el := range next {
		if !used[el] {
			continue
		}
		if survivors[j] != el {
			r.emit(Patch{Op: OpMove, ElementID: el.ID, Key: el.Key, Index: i})
		}
		j++
	}
	parent.Children = next
}
