package toml

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/0xalexb/varconf/scalar"
	"github.com/0xalexb/varconf/tree"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrUnsupported is returned for TOML constructs that have no tree form.
var ErrUnsupported = errors.New("unsupported TOML construct")

// DefaultValueKey is the key that holds the value of a table.
const DefaultValueKey = "_value"

// Parser implements config.Parser for TOML data.
type Parser struct {
	valueKey string
}

// NewParser creates a new TOML parser instance.
func NewParser() *Parser {
	return &Parser{valueKey: DefaultValueKey}
}

// WithValueKey returns a copy of the parser that reads table values from key
// instead of DefaultValueKey.
func (p *Parser) WithValueKey(key string) *Parser {
	return &Parser{valueKey: key}
}

// Parse parses a TOML document into a tree. Keys keep their document order.
func (p *Parser) Parse(data []byte) (*tree.Node, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyData
	}

	var doc map[string]any

	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	dec := &decoder{valueKey: p.valueKey, order: make(map[string]int)}

	for i, key := range md.Keys() {
		if _, seen := dec.order[key.String()]; !seen {
			dec.order[key.String()] = i
		}
	}

	root := tree.New()

	err = dec.table(root, nil, doc)
	if err != nil {
		return nil, err
	}

	return root, nil
}

type decoder struct {
	valueKey string
	// order maps a dotted key to its first position in the document.
	order map[string]int
}

func (d *decoder) table(parent *tree.Node, prefix toml.Key, m map[string]any) error {
	for _, name := range d.sorted(prefix, m) {
		key := join(prefix, name)

		if name == d.valueKey {
			val, err := value(m[name])
			if err != nil {
				return fmt.Errorf("value of %q: %w", key, err)
			}

			parent.SetValue(val)

			continue
		}

		err := d.add(parent, key, m[name])
		if err != nil {
			return err
		}
	}

	return nil
}

func (d *decoder) sorted(prefix toml.Key, m map[string]any) []string {
	names := slices.Collect(maps.Keys(m))

	slices.SortFunc(names, func(a, b string) int {
		return cmp.Or(cmp.Compare(d.rank(join(prefix, a)), d.rank(join(prefix, b))), strings.Compare(a, b))
	})

	return names
}

func (d *decoder) rank(key toml.Key) int {
	if i, ok := d.order[key.String()]; ok {
		return i
	}

	return math.MaxInt
}

// add appends v to parent under the last part of key. Every element of an
// array becomes its own child.
func (d *decoder) add(parent *tree.Node, key toml.Key, v any) error {
	name := key[len(key)-1]

	switch t := v.(type) {
	case map[string]any:
		child := tree.New()

		err := d.table(child, key, t)
		if err != nil {
			return err
		}

		parent.AddChild(name, child)
	case []map[string]any:
		for _, item := range t {
			err := d.add(parent, key, item)
			if err != nil {
				return err
			}
		}
	case []any:
		for _, item := range t {
			if _, nested := item.([]any); nested {
				return fmt.Errorf("%w: nested array under %q", ErrUnsupported, key)
			}

			err := d.add(parent, key, item)
			if err != nil {
				return err
			}
		}
	default:
		val, err := value(v)
		if err != nil {
			return fmt.Errorf("value of %q: %w", key, err)
		}

		parent.AddChild(name, tree.NewValue(val))
	}

	return nil
}

func value(v any) (scalar.Value, error) {
	if t, ok := v.(time.Time); ok {
		return scalar.String(t.Format(time.RFC3339Nano)), nil
	}

	val, err := scalar.FromAny(v)
	if err != nil {
		return scalar.Null(), fmt.Errorf("%w: %w", ErrUnsupported, err)
	}

	return val, nil
}

func join(prefix toml.Key, name string) toml.Key {
	return append(slices.Clip(prefix), name)
}
