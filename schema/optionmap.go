package schema

import (
	"errors"
	"fmt"
	"iter"

	"github.com/speakeasy-api/openapi/sequencedmap"
)

// ErrDuplicateOption is returned when two options in one map share a name.
var ErrDuplicateOption = errors.New("duplicate option name")

// ErrMultipleAnonymous is returned when a map holds more than one anonymous option.
var ErrMultipleAnonymous = errors.New("more than one anonymous option")

// OptionMap is an ordered set of options keyed by name. Declaration order is
// kept for matching precedence and documentation output. A nil *OptionMap is
// an empty map.
type OptionMap struct {
	options *sequencedmap.Map[string, *Option]
}

// NewOptionMap returns a map holding opts in the given order.
func NewOptionMap(opts ...*Option) (*OptionMap, error) {
	m := &OptionMap{options: sequencedmap.New[string, *Option]()}

	for _, o := range opts {
		err := m.Add(o)
		if err != nil {
			return nil, err
		}
	}

	return m, nil
}

// MustOptionMap is NewOptionMap that panics on error. It is meant for schemas
// declared as package-level literals.
func MustOptionMap(opts ...*Option) *OptionMap {
	m, err := NewOptionMap(opts...)
	if err != nil {
		panic(err)
	}

	return m
}

// Add appends o to the map.
func (m *OptionMap) Add(o *Option) error {
	if m.options == nil {
		m.options = sequencedmap.New[string, *Option]()
	}

	if _, exists := m.options.Get(o.Name); exists {
		return fmt.Errorf("%w: %q", ErrDuplicateOption, o.Name)
	}

	m.options.Set(o.Name, o)

	return nil
}

// Get returns the option with the given name.
func (m *OptionMap) Get(name string) (*Option, bool) {
	if m == nil || m.options == nil {
		return nil, false
	}

	return m.options.Get(name)
}

// Len returns the number of options.
func (m *OptionMap) Len() int {
	if m == nil || m.options == nil {
		return 0
	}

	return m.options.Len()
}

// All iterates over the options in declaration order.
func (m *OptionMap) All() iter.Seq2[string, *Option] {
	if m == nil || m.options == nil {
		return func(func(string, *Option) bool) {}
	}

	return m.options.All()
}

// Anonymous returns the first anonymous option, if any.
func (m *OptionMap) Anonymous() (*Option, bool) {
	for _, o := range m.All() {
		if o.Role == Anonymous {
			return o, true
		}
	}

	return nil, false
}

// Mixed reports whether the map holds an anonymous option together with
// at least one option of another role.
func (m *OptionMap) Mixed() bool {
	_, hasAnonymous := m.Anonymous()

	return hasAnonymous && m.Len() > 1
}

// Check verifies, recursively, that no map holds more than one anonymous option.
func (m *OptionMap) Check() error {
	return m.check("")
}

func (m *OptionMap) check(prefix string) error {
	anonymous := 0

	for name, o := range m.All() {
		if o.Role == Anonymous {
			anonymous++
		}

		if anonymous > 1 {
			return fmt.Errorf("%w: %q", ErrMultipleAnonymous, joinName(prefix, name))
		}

		err := o.Children.check(joinName(prefix, name))
		if err != nil {
			return err
		}
	}

	return nil
}

func joinName(prefix, name string) string {
	if prefix == "" {
		return name
	}

	return prefix + "/" + name
}
