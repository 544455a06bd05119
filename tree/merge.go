package tree

import "github.com/0xalexb/varconf/scalar"

// MergeFunc computes the value stored at path from the value found in the tree
// being merged in.
type MergeFunc func(path string, value scalar.Value) scalar.Value

// UpdateFunc may modify the value at path in place.
type UpdateFunc func(path string, value *scalar.Value)

// KeepValue is the MergeFunc that copies values unchanged.
func KeepValue(_ string, value scalar.Value) scalar.Value { return value }

// SniffText is a MergeFunc that coerces string values with scalar.Sniff, turning
// loader text into typed values.
func SniffText(_ string, value scalar.Value) scalar.Value {
	if value.IsString() {
		return scalar.Sniff(value.String())
	}

	return value
}

// Merge folds other into n. Children are merged first; each child of other is
// merged into the first same-named child of n, which is created when missing.
// Then the node's own value is overwritten with fn(path, other's value). A nil
// fn copies values unchanged.
func (n *Node) Merge(other *Node, fn MergeFunc) {
	if fn == nil {
		fn = KeepValue
	}

	n.merge("", other, fn)
}

func (n *Node) merge(path string, other *Node, fn MergeFunc) {
	for _, c := range other.children {
		target := n.Child(c.Name)
		if target == nil {
			target = n.AddChild(c.Name, New())
		}

		target.merge(Join(path, c.Name, DefaultSeparator), c.Node, fn)
	}

	n.value = fn(path, other.value)
}

// Update calls fn for every node in pre-order, the root included (with an
// empty path), letting fn rewrite values in place.
func (n *Node) Update(fn UpdateFunc) {
	n.update("", fn)
}

func (n *Node) update(path string, fn UpdateFunc) {
	fn(path, &n.value)

	for _, c := range n.children {
		c.Node.update(Join(path, c.Name, DefaultSeparator), fn)
	}
}
