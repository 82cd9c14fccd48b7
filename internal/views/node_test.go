package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestElSortsAttributes(t *testing.T) {
	a := El("input", "k", []Attr{{Name: "type", Value: "checkbox"}, {Name: "checked"}})
	b := El("input", "k", []Attr{{Name: "checked"}, {Name: "type", Value: "checkbox"}})

	assert.Equal(t, []Attr{{Name: "checked"}, {Name: "type", Value: "checkbox"}}, a.Attrs)
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
}

func TestFingerprintSeparatesFields(t *testing.T) {
	a := El("li", "ab", nil, Text("c"))
	b := El("li", "a", nil, Text("bc"))
	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())
	assert.False(t, a.Equal(b))
}

func TestHasClass(t *testing.T) {
	n := El("li", "", []Attr{{Name: "class", Value: "completed urgent"}})
	assert.True(t, n.HasClass("completed"))
	assert.True(t, n.HasClass("urgent"))
	assert.False(t, n.HasClass("complete"))
	assert.False(t, El("li", "", nil).HasClass("completed"))
}

func TestEqualNil(t *testing.T) {
	var n *Node
	assert.True(t, n.Equal(nil))
	assert.False(t, n.Equal(Text("x")))
	assert.Equal(t, uint64(0), n.Fingerprint())
	assert.Nil(t, n.Find("x"))
}

func TestFingerprintWithTakesChildPrintsFromCaller(t *testing.T) {
	tree := El("ul", "list", nil,
		El("li", "task-1", nil, Text("one")),
		El("li", "task-2", nil, Text("two")),
	)

	calls := make(map[*Node]int)
	got := tree.FingerprintWith(func(c *Node) uint64 {
		calls[c]++
		return c.Fingerprint()
	})

	assert.Equal(t, tree.Fingerprint(), got)
	assert.Len(t, calls, 2)
	for _, c := range tree.Children {
		assert.Equal(t, 1, calls[c])
	}
}
