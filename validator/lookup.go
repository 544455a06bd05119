package validator

import (
	"fmt"
	"strings"

	"github.com/0xalexb/varconf/scalar"
	"github.com/0xalexb/varconf/schema"
	"github.com/0xalexb/varconf/tree"
)

// Find returns the option describing path, where path is relative to a node
// located at nodeRoot. An empty nodeRoot means the node sits at the validator
// root. Filters in path are ignored and anonymous options match any segment.
func (v *Validator) Find(path, nodeRoot string) (*schema.Option, bool, error) {
	rel, err := v.stripRoot(v.absolute(path, nodeRoot))
	if err != nil {
		return nil, false, err
	}

	if rel == "" {
		return nil, false, nil
	}

	segs, err := tree.NewPath(rel, tree.DefaultSeparator).Segments()
	if err != nil {
		return nil, false, fmt.Errorf("resolving option: %w", err)
	}

	opts := v.options

	var opt *schema.Option

	for _, seg := range segs {
		o, ok := opts.Get(seg)
		if !ok {
			o, ok = opts.Anonymous()
		}

		if !ok {
			return nil, false, nil
		}

		opt = o
		opts = o.Children
	}

	return opt, true, nil
}

// DefaultValue returns the default of the option describing path.
func (v *Validator) DefaultValue(path, nodeRoot string) (scalar.Value, error) {
	opt, ok, err := v.Find(path, nodeRoot)
	if err != nil {
		return scalar.Null(), err
	}

	if !ok || opt.Default.IsNull() {
		return scalar.Null(), schemaErrorf(v.absolute(path, nodeRoot), "required option doesn't have default value")
	}

	return opt.Default, nil
}

// Get returns the value at path in node converted to T. A missing or null
// value falls back to the schema default.
func Get[T scalar.Type](v *Validator, path string, node *tree.Node) (T, error) {
	var zero T

	child, ok, err := node.GetChildOptional(path)
	if err != nil {
		return zero, err
	}

	if ok && !child.Value().IsNull() {
		return tree.ValueAs[T](qualified(child, v.absolute(path, node.RootPath())))
	}

	def, err := v.DefaultValue(path, node.RootPath())
	if err != nil {
		return zero, err
	}

	out, err := scalar.Convert[T](def)
	if err != nil {
		return zero, &tree.ConversionError{Path: v.absolute(path, node.RootPath()), Type: scalar.TypeName[T](), Err: err}
	}

	return out, nil
}

// GetChild returns the node at path. When it is absent, a required option
// without default is reported as a *SchemaError, an option unknown to the
// schema as a *tree.NotFoundError, and any other option yields a detached node
// holding its default.
func (v *Validator) GetChild(path string, node *tree.Node) (*tree.Node, error) {
	child, ok, err := node.GetChildOptional(path)
	if err != nil {
		return nil, err
	}

	if ok {
		return child, nil
	}

	abs := v.absolute(path, node.RootPath())

	opt, found, err := v.Find(path, node.RootPath())
	if err != nil {
		return nil, err
	}

	if !found {
		return nil, &tree.NotFoundError{Path: abs}
	}

	if opt.Required && opt.Default.IsNull() {
		return nil, schemaErrorf(abs, "missing required option with no default")
	}

	empty := tree.NewValue(opt.Default)
	empty.SetRootPath(abs)

	return empty, nil
}

func (v *Validator) absolute(path, nodeRoot string) string {
	if nodeRoot == "" {
		nodeRoot = v.root
	}

	return tree.Join(nodeRoot, path, tree.DefaultSeparator)
}

// stripRoot removes the validator root from an absolute path:
// root "a/b" and path "a/b/c/d" give "c/d".
func (v *Validator) stripRoot(abs string) (string, error) {
	switch {
	case v.root == "":
		return abs, nil
	case abs == v.root:
		return "", nil
	case strings.HasPrefix(abs, v.root+string(tree.DefaultSeparator)):
		return abs[len(v.root)+1:], nil
	default:
		return "", fmt.Errorf("%w: %q is not under %q", ErrRootMismatch, abs, v.root)
	}
}

// qualified returns a shallow view of n whose root path is p, so conversion
// errors name the absolute path.
func qualified(n *tree.Node, p string) *tree.Node {
	view := tree.NewValue(n.Value())
	view.SetRootPath(p)

	return view
}
