package tree

import (
	"github.com/0xalexb/varconf/scalar"
)

// FindPath resolves p below n. It returns nil without error when no node matches.
func (n *Node) FindPath(p Path) (*Node, error) {
	return n.navigate(p, navRead, scalar.Null(), nil)
}

// GetChildOptional resolves path and reports whether a node was found.
func (n *Node) GetChildOptional(path string) (*Node, bool, error) {
	child, err := n.FindPath(defaultPath(path))
	if err != nil {
		return nil, false, err
	}

	return child, child != nil, nil
}

// GetChild resolves path or fails with a *NotFoundError.
func (n *Node) GetChild(path string) (*Node, error) {
	child, ok, err := n.GetChildOptional(path)
	if err != nil {
		return nil, err
	}

	if !ok {
		return nil, &NotFoundError{Path: n.qualify(path)}
	}

	return child, nil
}

// GetChildOr resolves path, returning def when no node matches.
func (n *Node) GetChildOr(path string, def *Node) (*Node, error) {
	child, ok, err := n.GetChildOptional(path)
	if err != nil {
		return nil, err
	}

	if !ok {
		return def, nil
	}

	return child, nil
}

// Put stores v at path, overwriting the value of the first matching node or
// creating the node and any missing intermediates. It returns the written node.
func (n *Node) Put(path string, v scalar.Value) (*Node, error) {
	return n.PutPath(defaultPath(path), v)
}

// PutPath is Put with an explicit Path.
func (n *Node) PutPath(p Path, v scalar.Value) (*Node, error) {
	return n.navigate(p, navPut, v, nil)
}

// Add appends a new node holding v at path even when a node with the same
// name already exists there. Missing intermediates are created.
func (n *Node) Add(path string, v scalar.Value) (*Node, error) {
	return n.AddPath(defaultPath(path), v)
}

// AddPath is Add with an explicit Path.
func (n *Node) AddPath(p Path, v scalar.Value) (*Node, error) {
	return n.navigate(p, navAdd, v, nil)
}

// PutChild installs sub at path, replacing the first matching node or
// appending it. Missing intermediates are created. It returns sub.
func (n *Node) PutChild(path string, sub *Node) (*Node, error) {
	return n.PutChildPath(defaultPath(path), sub)
}

// PutChildPath is PutChild with an explicit Path.
func (n *Node) PutChildPath(p Path, sub *Node) (*Node, error) {
	if sub == nil {
		sub = New()
	}

	return n.navigate(p, navPutChild, scalar.Null(), sub)
}

// ValueAs converts the node's own value to T.
func ValueAs[T scalar.Type](n *Node) (T, error) {
	out, err := scalar.Convert[T](n.value)
	if err != nil {
		return out, &ConversionError{Path: n.rootPath, Type: scalar.TypeName[T](), Err: err}
	}

	return out, nil
}

// Get returns the value at path converted to T.
func Get[T scalar.Type](n *Node, path string) (T, error) {
	return GetPath[T](n, defaultPath(path))
}

// GetPath is Get with an explicit Path.
func GetPath[T scalar.Type](n *Node, p Path) (T, error) {
	var zero T

	child, err := n.FindPath(p)
	if err != nil {
		return zero, err
	}

	if child == nil {
		return zero, &NotFoundError{Path: n.qualify(p.String())}
	}

	return convertAt[T](child, n.qualify(p.String()))
}

// GetOr returns the value at path converted to T, or def when no node matches.
func GetOr[T scalar.Type](n *Node, path string, def T) (T, error) {
	out, ok, err := GetOptional[T](n, path)
	if err != nil {
		return out, err
	}

	if !ok {
		return def, nil
	}

	return out, nil
}

// GetOptional returns the value at path converted to T and whether the node
// exists.
func GetOptional[T scalar.Type](n *Node, path string) (T, bool, error) {
	var zero T

	child, err := n.FindPath(defaultPath(path))
	if err != nil || child == nil {
		return zero, false, err
	}

	out, err := convertAt[T](child, n.qualify(path))
	if err != nil {
		return zero, false, err
	}

	return out, true, nil
}

func convertAt[T scalar.Type](child *Node, path string) (T, error) {
	out, err := scalar.Convert[T](child.value)
	if err != nil {
		return out, &ConversionError{Path: path, Type: scalar.TypeName[T](), Err: err}
	}

	return out, nil
}
