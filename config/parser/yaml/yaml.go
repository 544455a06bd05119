package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"math"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
	"github.com/goccy/go-yaml/token"

	"github.com/0xalexb/varconf/scalar"
	"github.com/0xalexb/varconf/tree"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrNotMapping is returned when the document root is not a mapping.
var ErrNotMapping = errors.New("document root is not a mapping")

// ErrUnsupported is returned for YAML constructs that have no tree form.
var ErrUnsupported = errors.New("unsupported YAML construct")

// DefaultValueKey is the mapping key that holds the value of a node that also
// has children.
const DefaultValueKey = "_value"

// Parser implements config.Parser for YAML data.
// It walks the goccy/go-yaml AST so document order is kept.
type Parser struct {
	valueKey string
}

// NewParser creates a new YAML parser instance.
func NewParser() *Parser {
	return &Parser{valueKey: DefaultValueKey}
}

// WithValueKey returns a copy of the parser that reads node values from key
// instead of DefaultValueKey.
func (p *Parser) WithValueKey(key string) *Parser {
	return &Parser{valueKey: key}
}

// Parse parses the first YAML document in data into a tree.
func (p *Parser) Parse(data []byte) (*tree.Node, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyData
	}

	file, err := parser.ParseBytes(data, 0)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	root := tree.New()

	if len(file.Docs) == 0 || file.Docs[0] == nil {
		return root, nil
	}

	dec := &decoder{valueKey: p.valueKey, anchors: make(map[string]ast.Node)}

	err = dec.section(root, file.Docs[0].Body)
	if err != nil {
		return nil, err
	}

	return root, nil
}

type decoder struct {
	valueKey string
	anchors  map[string]ast.Node
}

// resolve follows anchors and aliases to the node they stand for.
func (d *decoder) resolve(n ast.Node) (ast.Node, error) {
	for {
		switch t := n.(type) {
		case *ast.AnchorNode:
			d.anchors[t.Name.GetToken().Value] = t.Value
			n = t.Value
		case *ast.AliasNode:
			name := t.Value.GetToken().Value

			target, ok := d.anchors[name]
			if !ok {
				return nil, fmt.Errorf("%w: unknown alias %q", ErrUnsupported, name)
			}

			n = target
		default:
			return n, nil
		}
	}
}

// section adds the entries of a mapping to parent.
func (d *decoder) section(parent *tree.Node, n ast.Node) error {
	n, err := d.resolve(n)
	if err != nil {
		return err
	}

	switch t := n.(type) {
	case nil, *ast.NullNode, *ast.CommentGroupNode:
		return nil
	case *ast.MappingNode:
		for _, mv := range t.Values {
			err := d.entry(parent, mv)
			if err != nil {
				return err
			}
		}

		return nil
	case *ast.MappingValueNode:
		return d.entry(parent, t)
	default:
		return fmt.Errorf("%w: got %s at line %d", ErrNotMapping, n.Type(), n.GetToken().Position.Line)
	}
}

func (d *decoder) entry(parent *tree.Node, mv *ast.MappingValueNode) error {
	if _, ok := mv.Key.(*ast.MergeKeyNode); ok {
		return d.merge(parent, mv.Value)
	}

	name := keyName(mv.Key)

	if name == d.valueKey {
		val, err := d.scalar(mv.Value)
		if err != nil {
			return fmt.Errorf("value of %q: %w", name, err)
		}

		parent.SetValue(val)

		return nil
	}

	return d.add(parent, name, mv.Value)
}

// merge handles "<<" keys: a mapping or a sequence of mappings whose entries
// are added to parent.
func (d *decoder) merge(parent *tree.Node, n ast.Node) error {
	n, err := d.resolve(n)
	if err != nil {
		return err
	}

	seq, ok := n.(*ast.SequenceNode)
	if !ok {
		return d.section(parent, n)
	}

	for _, item := range seq.Values {
		err := d.section(parent, item)
		if err != nil {
			return err
		}
	}

	return nil
}

// add appends the YAML value n to parent under name. Every item of a sequence
// becomes its own child, so repeated options are written as lists.
func (d *decoder) add(parent *tree.Node, name string, n ast.Node) error {
	n, err := d.resolve(n)
	if err != nil {
		return err
	}

	switch t := n.(type) {
	case *ast.SequenceNode:
		for _, item := range t.Values {
			item, err := d.resolve(item)
			if err != nil {
				return err
			}

			if _, nested := item.(*ast.SequenceNode); nested {
				return fmt.Errorf("%w: nested sequence under %q", ErrUnsupported, name)
			}

			err = d.add(parent, name, item)
			if err != nil {
				return err
			}
		}

		return nil
	case *ast.MappingNode, *ast.MappingValueNode:
		child := tree.New()

		err := d.section(child, t)
		if err != nil {
			return err
		}

		parent.AddChild(name, child)

		return nil
	default:
		val, err := d.scalar(n)
		if err != nil {
			return fmt.Errorf("value of %q: %w", name, err)
		}

		parent.AddChild(name, tree.NewValue(val))

		return nil
	}
}

// scalar converts a YAML scalar. Quoted strings stay strings; plain strings
// are sniffed so that "64K" reads as an integer.
func (d *decoder) scalar(n ast.Node) (scalar.Value, error) {
	n, err := d.resolve(n)
	if err != nil {
		return scalar.Null(), err
	}

	switch t := n.(type) {
	case nil, *ast.NullNode:
		return scalar.Null(), nil
	case *ast.BoolNode:
		return scalar.Bool(t.Value), nil
	case *ast.IntegerNode:
		return scalar.FromAny(t.Value)
	case *ast.FloatNode:
		return scalar.Float(t.Value), nil
	case *ast.InfinityNode:
		return scalar.Float(t.Value), nil
	case *ast.NanNode:
		return scalar.Float(math.NaN()), nil
	case *ast.StringNode:
		if quoted(t.Token) {
			return scalar.String(t.Value), nil
		}

		return scalar.Sniff(t.Value), nil
	case *ast.LiteralNode:
		return scalar.String(t.Value.Value), nil
	case *ast.TagNode:
		if t.Start.Value == "!!str" {
			return scalar.String(t.Value.GetToken().Value), nil
		}

		return d.scalar(t.Value)
	default:
		return scalar.Null(), fmt.Errorf("%w: %s at line %d", ErrUnsupported, n.Type(), n.GetToken().Position.Line)
	}
}

func keyName(k ast.MapKeyNode) string {
	if s, ok := k.(*ast.StringNode); ok {
		return s.Value
	}

	return k.GetToken().Value
}

func quoted(tk *token.Token) bool {
	return tk != nil && (tk.Type == token.DoubleQuoteType || tk.Type == token.SingleQuoteType)
}
