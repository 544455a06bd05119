package validator

import (
	"errors"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/0xalexb/varconf/scalar"
	"github.com/0xalexb/varconf/schema"
	"github.com/0xalexb/varconf/tree"
)

// Validator checks trees located at a root path against an option map.
type Validator struct {
	root    string
	options *schema.OptionMap
	logger  *slog.Logger
}

// Option configures a Validator.
type Option func(*Validator)

// WithLogger sets the logger used to report applied defaults.
// By default slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(v *Validator) {
		v.logger = logger
	}
}

// New returns a Validator for trees located at root. It fails when an option
// map in the schema holds more than one anonymous option.
func New(root string, options *schema.OptionMap, opts ...Option) (*Validator, error) {
	err := options.Check()
	if err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}

	v := &Validator{
		root:    root,
		options: options,
		logger:  nil,
	}

	for _, apply := range opts {
		apply(v)
	}

	if v.logger == nil {
		v.logger = slog.Default()
	}

	return v, nil
}

// Root returns the path of the configuration subtree the schema describes.
func (v *Validator) Root() string { return v.root }

// Options returns the schema.
func (v *Validator) Options() *schema.OptionMap { return v.options }

// Usage renders the schema as documentation text.
func (v *Validator) Usage(indent string) string {
	return v.options.Usage(indent)
}

// Validate checks node, the subtree at the validator root, and with
// fillDefaults writes defaults into it.
func (v *Validator) Validate(node *tree.Node, fillDefaults bool) error {
	return v.validate(v.root, node, v.options, fillDefaults)
}

func (v *Validator) validate(root string, node *tree.Node, opts *schema.OptionMap, fill bool) error {
	if node.Len() > 0 && opts.Mixed() {
		anon, _ := opts.Anonymous()
		first := node.Children()[0]

		return schemaErrorf(locate(root, anon, first.Name, first.Node.Value()),
			"cannot mix anonymous and named options in one section")
	}

	err := checkUnique(root, node, opts)
	if err != nil {
		return err
	}

	err = checkRequired(root, node, opts)
	if err != nil {
		return err
	}

	for _, child := range node.Children() {
		opt := match(opts, child.Name)
		if opt == nil {
			return schemaErrorf(tree.Join(root, child.Name, tree.DefaultSeparator), "unsupported config option")
		}

		err = v.checkOption(root, child, opt, fill)
		if err != nil {
			return err
		}
	}

	if fill {
		return v.insertDefaults(root, node, opts)
	}

	return nil
}

// match returns the first option, in declaration order, that claims name.
func match(opts *schema.OptionMap, name string) *schema.Option {
	for _, o := range opts.All() {
		if o.Role == schema.Anonymous || o.Name == name {
			return o
		}
	}

	return nil
}

// locate builds the diagnostic path root/option[/name][value].
func locate(root string, o *schema.Option, name string, value scalar.Value) string {
	p := tree.Join(root, o.Name, tree.DefaultSeparator)
	if name != "" && name != o.Name {
		p = tree.Join(p, name, tree.DefaultSeparator)
	}

	return tree.WithFilter(p, value.String())
}

func checkUnique(root string, node *tree.Node, opts *schema.OptionMap) error {
	seen := make(map[string]struct{}, node.Len())

	for _, child := range node.Children() {
		if _, dup := seen[child.Name]; !dup {
			seen[child.Name] = struct{}{}

			continue
		}

		if o, ok := opts.Get(child.Name); ok && o.Unique {
			return schemaErrorf(locate(root, o, child.Name, child.Node.Value()), "non-unique config option found")
		}
	}

	return nil
}

func checkRequired(root string, node *tree.Node, opts *schema.OptionMap) error {
	for _, o := range opts.All() {
		if o.Required && o.Default.IsNull() {
			err := checkPresent(root, node, o)
			if err != nil {
				return err
			}
		}

		if o.Role == schema.Anonymous {
			for _, child := range node.Children() {
				if match(opts, child.Name) != o {
					continue
				}

				loc := locate(root, o, child.Name, child.Node.Value())

				if !o.HasChildren() && child.Node.Len() > 0 {
					return schemaErrorf(loc, "option is not allowed to have child nodes")
				}

				err := checkRequired(loc, child.Node, o.Children)
				if err != nil {
					return err
				}
			}

			continue
		}

		err := checkDescendants(root, node, o)
		if err != nil {
			return err
		}
	}

	return nil
}

// checkPresent verifies that a required option without a default has a usable entry.
func checkPresent(root string, node *tree.Node, o *schema.Option) error {
	if o.Role == schema.Anonymous {
		if node.Len() == 0 {
			return schemaErrorf(locate(root, o, "", scalar.Null()), "missing required value of anonymous option")
		}

		return nil
	}

	found := false

	for _, child := range node.Children() {
		if child.Name != o.Name {
			continue
		}

		found = true

		if o.Role != schema.Branch && child.Node.Value().IsNull() {
			return schemaErrorf(locate(root, o, child.Name, scalar.Null()),
				"missing value of the required option and no default provided")
		}

		if o.Unique {
			break
		}
	}

	if found {
		return nil
	}

	if o.Role == schema.Branch {
		return schemaErrorf(locate(root, o, "", scalar.Null()), "missing required branch with no default")
	}

	return schemaErrorf(locate(root, o, "", scalar.Null()), "missing required option with no default")
}

// checkDescendants verifies the entries of a named or branch option against
// the required options declared below it.
func checkDescendants(root string, node *tree.Node, o *schema.Option) error {
	required, hasRequired := requiredChild(o.Children, "")
	found := false

	for _, child := range node.Children() {
		if child.Name != o.Name {
			continue
		}

		found = true
		loc := locate(root, o, child.Name, child.Node.Value())

		if hasRequired {
			if child.Node.Len() == 0 {
				return schemaErrorf(loc, "option is missing required child option %s", required)
			}

			err := checkRequired(loc, child.Node, o.Children)
			if err != nil {
				return err
			}
		}

		if !o.HasChildren() && child.Node.Len() > 0 {
			return schemaErrorf(loc, "option is not allowed to have child nodes")
		}
	}

	if !found && hasRequired {
		return schemaErrorf(locate(root, o, "", scalar.Null()),
			"missing required branch: child option %s has no default", required)
	}

	return nil
}

// requiredChild returns the path of the first required option without a
// default found in opts or below it.
func requiredChild(opts *schema.OptionMap, prefix string) (string, bool) {
	for _, o := range opts.All() {
		p := tree.Join(prefix, o.Name, tree.DefaultSeparator)

		if o.Required && o.Default.IsNull() {
			return p, true
		}

		if found, ok := requiredChild(o.Children, p); ok {
			return found, true
		}
	}

	return "", false
}

// checkOption checks one child against its matched option, then validates the
// child's subtree. Violations found here are qualified with the child's locator.
func (v *Validator) checkOption(root string, child tree.Child, o *schema.Option, fill bool) error {
	loc := locate(root, o, child.Name, child.Node.Value())

	err := v.checkValue(loc, child, o, fill)
	if err != nil {
		var schemaErr *SchemaError
		if errors.As(err, &schemaErr) {
			return err
		}

		return &SchemaError{Path: loc, Reason: err.Error()}
	}

	if o.HasChildren() {
		return v.validate(loc, child.Node, o.Children, fill)
	}

	return nil
}

func (v *Validator) checkValue(loc string, child tree.Child, o *schema.Option, fill bool) error {
	val := child.Node.Value()

	if !o.Required && val.IsNull() {
		if o.Default.IsNull() && o.Role != schema.Branch {
			return reason("optional option is missing a default value")
		}

		if !o.Default.IsNull() {
			err := checkDefaultKind(o)
			if err != nil {
				return err
			}

			if fill {
				child.Node.SetValue(o.Default)
				v.logger.Debug("default applied", slog.String("path", loc), slog.String("value", o.Default.Quoted()))
			}

			val = o.Default
		}
	}

	if o.Required && o.Role == schema.Named && val.IsNull() {
		return reason("required value missing")
	}

	if child.Name == "" {
		return reason("expected non-empty name")
	}

	switch o.Role {
	case schema.Named, schema.Anonymous, schema.Branch:
	default:
		return reason("unsupported type of option: " + o.Role.String())
	}

	// An optional branch keeps a null value.
	if !val.IsNull() || o.Role != schema.Branch || o.Required {
		err := checkKind(o, val)
		if err != nil {
			return err
		}
	}

	if len(o.NameChoices) > 0 {
		if o.Role != schema.Anonymous {
			return reason("non-anonymous option cannot have name choices")
		}

		if !o.HasNameChoice(child.Name) {
			return reason("invalid name given to anonymous option")
		}
	}

	if len(o.ValueChoices) > 0 && !o.HasValueChoice(val) {
		return reason("value is not allowed for option")
	}

	return nil
}

func checkDefaultKind(o *schema.Option) error {
	if schema.KindOf(o.Default.Kind()) != o.Kind {
		return reason(fmt.Sprintf("default value kind %s does not match option kind %s",
			o.Default.TypeName(), o.Kind))
	}

	return nil
}

func checkKind(o *schema.Option, val scalar.Value) error {
	switch o.Kind {
	case schema.String:
		if val.Kind() != scalar.KindString {
			return reason("wrong type - expected string")
		}

		length := scalar.Int(int64(utf8.RuneCountInString(val.String())))

		return checkBounds(o, length, "string value too short", "string value too long")
	case schema.Int:
		if val.Kind() != scalar.KindInt {
			return reason("wrong type - expected integer")
		}

		return checkBounds(o, val, "value too small", "value too large")
	case schema.Bool:
		if val.Kind() != scalar.KindBool {
			return reason("wrong type - expected boolean true/false")
		}

		return nil
	case schema.Float:
		if val.Kind() != scalar.KindFloat {
			return reason("wrong type - expected float")
		}

		return checkBounds(o, val, "value too small", "value too large")
	case schema.Undef:
		if o.Structural() {
			return nil
		}

		return reason("option's value kind undefined is invalid")
	default:
		return reason("option's value kind " + o.Kind.String() + " is invalid")
	}
}

func checkBounds(o *schema.Option, val scalar.Value, tooSmall, tooLarge string) error {
	if !o.Min.IsNull() {
		c, err := val.Compare(o.Min)
		if err != nil {
			return reason("invalid min bound: " + err.Error())
		}

		if c < 0 {
			return reason(tooSmall)
		}
	}

	if !o.Max.IsNull() {
		c, err := val.Compare(o.Max)
		if err != nil {
			return reason("invalid max bound: " + err.Error())
		}

		if c > 0 {
			return reason(tooLarge)
		}
	}

	return nil
}

// insertDefaults adds a child for every named option with a default that has
// no entry in node.
func (v *Validator) insertDefaults(root string, node *tree.Node, opts *schema.OptionMap) error {
	for _, o := range opts.All() {
		if o.Role != schema.Named || o.Default.IsNull() || node.Child(o.Name) != nil {
			continue
		}

		loc := locate(root, o, "", scalar.Null())

		err := checkDefaultKind(o)
		if err != nil {
			return &SchemaError{Path: loc, Reason: err.Error()}
		}

		node.AddChild(o.Name, tree.NewValue(o.Default))
		v.logger.Debug("default applied", slog.String("path", loc), slog.String("value", o.Default.Quoted()))
	}

	return nil
}
