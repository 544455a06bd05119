package tree

import (
	"errors"

	"github.com/0xalexb/varconf/scalar"
)

// Child is a named entry in a node's child list.
type Child struct {
	Name string
	Node *Node
}

// Node holds one scalar value and an ordered list of named children.
type Node struct {
	value    scalar.Value
	children []Child
	rootPath string
}

// New returns an empty node with a null value.
func New() *Node {
	return &Node{}
}

// NewValue returns a childless node holding v.
func NewValue(v scalar.Value) *Node {
	return &Node{value: v}
}

// Value returns the node's own value.
func (n *Node) Value() scalar.Value { return n.value }

// SetValue replaces the node's own value.
func (n *Node) SetValue(v scalar.Value) { n.value = v }

// Children returns the child list in insertion order. The slice is owned by
// the node; callers may modify the child nodes but not the slice.
func (n *Node) Children() []Child { return n.children }

// Len returns the number of direct children.
func (n *Node) Len() int { return len(n.children) }

// Child returns the first direct child with the given name, or nil.
func (n *Node) Child(name string) *Node {
	if i := n.indexOf(name); i >= 0 {
		return n.children[i].Node
	}

	return nil
}

// AddChild appends child under name, keeping any existing children with the
// same name, and returns child.
func (n *Node) AddChild(name string, child *Node) *Node {
	n.children = append(n.children, Child{Name: name, Node: child})

	return child
}

// RootPath returns the path of this subtree within the full configuration,
// used to qualify diagnostics. It is empty for a top-level tree.
func (n *Node) RootPath() string { return n.rootPath }

// SetRootPath records the path of this subtree within the full configuration.
func (n *Node) SetRootPath(p string) { n.rootPath = p }

// Clone returns a deep copy of the node.
func (n *Node) Clone() *Node {
	dst := &Node{value: n.value, rootPath: n.rootPath}

	if len(n.children) > 0 {
		dst.children = make([]Child, len(n.children))
		for i, c := range n.children {
			dst.children[i] = Child{Name: c.Name, Node: c.Node.Clone()}
		}
	}

	return dst
}

// Equal reports whether both trees have equal values and equally named,
// equally ordered children. Root paths are ignored.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}

	if !n.value.Equal(o.value) || len(n.children) != len(o.children) {
		return false
	}

	for i, c := range n.children {
		if c.Name != o.children[i].Name || !c.Node.Equal(o.children[i].Node) {
			return false
		}
	}

	return true
}

func (n *Node) indexOf(name string) int {
	for i, c := range n.children {
		if c.Name == name {
			return i
		}
	}

	return -1
}

func (n *Node) match(seg segment) int {
	if !seg.hasFilter {
		return n.indexOf(seg.name)
	}

	for i, c := range n.children {
		if seg.name != "" && c.Name != seg.name {
			continue
		}

		if !c.Node.value.IsNull() && c.Node.value.String() == seg.filter {
			return i
		}
	}

	return -1
}

func (n *Node) qualify(path string) string {
	return Join(n.rootPath, path, DefaultSeparator)
}

type navMode int

const (
	navRead navMode = iota
	navPut
	navAdd
	navPutChild
)

// navigate resolves p below n. In read mode a missing node yields nil without
// error. In the write modes missing nodes are created, val is stored at the
// terminal node (navPut, navAdd) or sub replaces it (navPutChild).
func (n *Node) navigate(p Path, mode navMode, val scalar.Value, sub *Node) (*Node, error) {
	segs, err := p.parse(mode != navRead)
	if err != nil {
		var pathErr *PathError
		if errors.As(err, &pathErr) {
			pathErr.Path = n.qualify(pathErr.Path)
		}

		return nil, err
	}

	cur := n

	for i, seg := range segs {
		last := i == len(segs)-1

		if last && mode == navAdd {
			return cur.AddChild(seg.name, NewValue(val)), nil
		}

		idx := cur.match(seg)

		switch {
		case idx >= 0 && last && mode == navPut:
			cur = cur.children[idx].Node
			cur.value = val
		case idx >= 0 && last && mode == navPutChild:
			cur.children[idx].Node = sub
			cur = sub
		case idx >= 0:
			cur = cur.children[idx].Node
		case mode == navRead:
			return nil, nil
		case !last:
			next := New()
			if seg.hasFilter {
				next.value = scalar.String(seg.filter)
			}

			cur = cur.AddChild(seg.name, next)
		case mode == navPutChild:
			cur = cur.AddChild(seg.name, sub)
		default:
			cur = cur.AddChild(seg.name, NewValue(val))
		}
	}

	return cur, nil
}
