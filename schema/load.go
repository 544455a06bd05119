package schema

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/0xalexb/varconf/scalar"
)

// ErrInvalidSchema is returned when a schema document cannot be turned into options.
var ErrInvalidSchema = errors.New("invalid schema")

// ErrEmptySchema is returned when the schema document is empty.
var ErrEmptySchema = errors.New("empty schema")

type optionDecl struct {
	Name        string       `yaml:"name"`
	Role        string       `yaml:"role"`
	Type        string       `yaml:"type"`
	Description string       `yaml:"description"`
	Required    bool         `yaml:"required"`
	Unique      bool         `yaml:"unique"`
	Default     any          `yaml:"default"`
	Min         any          `yaml:"min"`
	Max         any          `yaml:"max"`
	Names       []string     `yaml:"names"`
	Values      []any        `yaml:"values"`
	Children    []optionDecl `yaml:"children"`
}

// Load builds an OptionMap from a YAML document holding a list of options.
func Load(data []byte) (*OptionMap, error) {
	if len(data) == 0 {
		return nil, ErrEmptySchema
	}

	var decls []optionDecl

	err := yaml.Unmarshal(data, &decls)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSchema, err)
	}

	return buildMap(decls, "")
}

func buildMap(decls []optionDecl, prefix string) (*OptionMap, error) {
	m, err := NewOptionMap()
	if err != nil {
		return nil, err
	}

	for _, decl := range decls {
		opt, err := decl.build(prefix)
		if err != nil {
			return nil, err
		}

		err = m.Add(opt)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidSchema, err)
		}
	}

	return m, nil
}

func (s optionDecl) build(prefix string) (*Option, error) {
	name := joinName(prefix, s.Name)

	if s.Name == "" {
		return nil, fmt.Errorf("%w: option under %q has no name", ErrInvalidSchema, prefix)
	}

	role, err := parseRole(s.Role)
	if err != nil {
		return nil, fmt.Errorf("%w: option %q: %w", ErrInvalidSchema, name, err)
	}

	kind, err := parseKind(s.Type)
	if err != nil {
		return nil, fmt.Errorf("%w: option %q: %w", ErrInvalidSchema, name, err)
	}

	opt := &Option{
		Name:        s.Name,
		Role:        role,
		Kind:        kind,
		Description: strings.TrimSpace(s.Description),
		Required:    s.Required,
		Unique:      s.Unique,
		NameChoices: s.Names,
	}

	boundKind := kind
	if kind == String {
		boundKind = Int
	}

	fields := []struct {
		label string
		raw   any
		kind  Kind
		dst   *scalar.Value
	}{
		{label: "default", raw: s.Default, kind: kind, dst: &opt.Default},
		{label: "min", raw: s.Min, kind: boundKind, dst: &opt.Min},
		{label: "max", raw: s.Max, kind: boundKind, dst: &opt.Max},
	}

	for _, f := range fields {
		*f.dst, err = decodeValue(f.raw, f.kind)
		if err != nil {
			return nil, fmt.Errorf("%w: option %q %s: %w", ErrInvalidSchema, name, f.label, err)
		}
	}

	for _, raw := range s.Values {
		v, err := decodeValue(raw, kind)
		if err != nil {
			return nil, fmt.Errorf("%w: option %q values: %w", ErrInvalidSchema, name, err)
		}

		opt.ValueChoices = append(opt.ValueChoices, v)
	}

	if len(s.Children) > 0 {
		opt.Children, err = buildMap(s.Children, name)
		if err != nil {
			return nil, err
		}
	}

	return opt, nil
}

func parseRole(text string) (Role, error) {
	switch strings.ToLower(text) {
	case "", "named":
		return Named, nil
	case "anonymous":
		return Anonymous, nil
	case "branch":
		return Branch, nil
	default:
		return Named, fmt.Errorf("unknown role %q", text)
	}
}

func parseKind(text string) (Kind, error) {
	switch strings.ToLower(text) {
	case "", "undef", "undefined":
		return Undef, nil
	case "string":
		return String, nil
	case "int", "integer":
		return Int, nil
	case "bool", "boolean":
		return Bool, nil
	case "float", "double":
		return Float, nil
	default:
		return Undef, fmt.Errorf("unknown type %q", text)
	}
}

// decodeValue converts a YAML-decoded value to a scalar of the given kind,
// widening integers to floats and rendering plain scalars for string options.
func decodeValue(raw any, kind Kind) (scalar.Value, error) {
	v, err := scalar.FromAny(raw)
	if err != nil || v.IsNull() {
		return v, err
	}

	switch {
	case kind == Float && v.Kind() == scalar.KindInt:
		f, _ := v.ToFloat()

		return scalar.Float(f), nil
	case kind == String && v.Kind() != scalar.KindString:
		return scalar.String(v.String()), nil
	default:
		return v, nil
	}
}
