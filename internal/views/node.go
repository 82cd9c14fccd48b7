package views

import (
	"encoding/binary"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
)

type NodeKind int

const (
	ElementNode NodeKind = iota
	TextNode
)

type Attr struct {
	Name  string
	Value string
}

// Node is one entry of a view description. Element nodes keep their
// attributes sorted by name so equal views compare and hash equally.
type Node struct {
	Kind     NodeKind
	Tag      string
	Key      string
	Attrs    []Attr
	Text     string
	Children []*Node
}

func El(tag, key string, attrs []Attr, children ...*Node) *Node {
	sorted := slices.Clone(attrs)
	slices.SortStableFunc(sorted, func(a, b Attr) int { return strings.Compare(a.Name, b.Name) })
	return &Node{Kind: ElementNode, Tag: tag, Key: key, Attrs: sorted, Children: children}
}

func Text(s string) *Node {
	return &Node{Kind: TextNode, Tag: "#text", Text: s}
}

func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

func (n *Node) HasClass(class string) bool {
	v, ok := n.Attr("class")
	if !ok {
		return false
	}
	return slices.Contains(strings.Fields(v), class)
}

// Find returns the first node in n's subtree (n included) with the given key.
func (n *Node) Find(key string) *Node {
	if n == nil {
		return nil
	}
	if n.Key == key {
		return n
	}
	for _, c := range n.Children {
		if found := c.Find(key); found != nil {
			return found
		}
	}
	return nil
}

// Equal reports structural equality of two trees.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n.Kind != o.Kind || n.Tag != o.Tag || n.Key != o.Key || n.Text != o.Text {
		return false
	}
	if !slices.Equal(n.Attrs, o.Attrs) || len(n.Children) != len(o.Children) {
		return false
	}
	for i := range n.Children {
		if !n.Children[i].Equal(o.Children[i]) {
			return false
		}
	}
	return true
}

// Fingerprint hashes the node and its subtree. Structurally equal trees
// always share a fingerprint.
func (n *Node) Fingerprint() uint64 {
	return n.FingerprintWith((*Node).Fingerprint)
}

// FingerprintWith hashes the node, taking each child's fingerprint from
// child. Callers that cache child fingerprints hash every node once.
func (n *Node) FingerprintWith(child func(*Node) uint64) uint64 {
	if n == nil {
		return 0
	}
	d := xxhash.New()
	buf := make([]byte, 0, 64)
	buf = append(buf, byte(n.Kind))
	buf = appendField(buf, n.Tag)
	buf = appendField(buf, n.Key)
	buf = appendField(buf, n.Text)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(n.Attrs)))
	for _, a := range n.Attrs {
		buf = appendField(buf, a.Name)
		buf = appendField(buf, a.Value)
	}
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(n.Children)))
	for _, c := range n.Children {
		buf = binary.LittleEndian.AppendUint64(buf, child(c))
	}
	_, _ = d.Write(buf)
	return d.Sum64()
}

func appendField(buf []byte, s string) []byte {
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(s)))
	return append(buf, s...)
}
