package schema

import (
	"strconv"
	"strings"

	"github.com/0xalexb/varconf/scalar"
)

// Role is the structural role of an option.
type Role uint8

// Option roles.
const (
	// Named options match children by exact name.
	Named Role = iota
	// Anonymous options match any child; the child name is data.
	Anonymous
	// Branch options group child options and need no value of their own.
	Branch
)

func (r Role) String() string {
	switch r {
	case Named:
		return "named"
	case Anonymous:
		return "anonymous"
	case Branch:
		return "branch"
	default:
		return "role(" + strconv.Itoa(int(r)) + ")"
	}
}

// Kind is the scalar kind an option's value must have.
type Kind uint8

// Option kinds.
const (
	Undef Kind = iota
	String
	Int
	Bool
	Float
)

func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Int:
		return "int"
	case Bool:
		return "bool"
	case Float:
		return "float"
	case Undef:
		return "undefined"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// KindOf maps a scalar kind to the option kind that accepts it.
func KindOf(k scalar.Kind) Kind {
	switch k {
	case scalar.KindString:
		return String
	case scalar.KindInt:
		return Int
	case scalar.KindBool:
		return Bool
	case scalar.KindFloat:
		return Float
	case scalar.KindNull:
		return Undef
	default:
		return Undef
	}
}

// Option describes one permitted configuration entry.
type Option struct {
	Name        string
	Role        Role
	Kind        Kind
	Description string
	Required    bool
	Unique      bool
	Default     scalar.Value
	// Min and Max bound numeric values, or string length for String options.
	Min scalar.Value
	Max scalar.Value
	// NameChoices lists accepted child names. Only valid on Anonymous options.
	NameChoices  []string
	ValueChoices []scalar.Value
	Children     *OptionMap
}

// HasChildren reports whether the option declares child options.
func (o *Option) HasChildren() bool {
	return o.Children.Len() > 0
}

// Structural reports whether the option is Anonymous or Branch.
func (o *Option) Structural() bool {
	return o.Role == Anonymous || o.Role == Branch
}

// HasNameChoice reports whether name is one of the option's NameChoices.
func (o *Option) HasNameChoice(name string) bool {
	for _, n := range o.NameChoices {
		if n == name {
			return true
		}
	}

	return false
}

// HasValueChoice reports whether v equals one of the option's ValueChoices.
func (o *Option) HasValueChoice(v scalar.Value) bool {
	for _, c := range o.ValueChoices {
		if c.Equal(v) {
			return true
		}
	}

	return false
}

// String renders the option on one line, children on indented lines.
func (o *Option) String() string {
	var sb strings.Builder

	sb.WriteString("option{name=")
	sb.WriteString(o.Name)
	sb.WriteString(",type=")
	sb.WriteString(o.typeName())

	if o.Description != "" {
		sb.WriteString(",desc=")
		sb.WriteString(strconv.Quote(o.Description))
	}

	if len(o.NameChoices) > 0 {
		quoted := make([]string, len(o.NameChoices))
		for i, n := range o.NameChoices {
			quoted[i] = strconv.Quote(n)
		}

		sb.WriteString(",names=[" + strings.Join(quoted, ";") + "]")
	}

	if len(o.ValueChoices) > 0 {
		rendered := make([]string, len(o.ValueChoices))
		for i, v := range o.ValueChoices {
			rendered[i] = v.Quoted()
		}

		sb.WriteString(",values=[" + strings.Join(rendered, ";") + "]")
	}

	if !o.Default.IsNull() {
		sb.WriteString(",default=" + o.Default.Quoted())
	}

	minLabel, maxLabel := ",min=", ",max="
	if o.Kind == String {
		minLabel, maxLabel = ",min_length=", ",max_length="
	}

	if !o.Min.IsNull() {
		sb.WriteString(minLabel + o.Min.Quoted())
	}

	if !o.Max.IsNull() {
		sb.WriteString(maxLabel + o.Max.Quoted())
	}

	sb.WriteString(",required=" + strconv.FormatBool(o.Required))
	sb.WriteString(",unique=" + strconv.FormatBool(o.Unique))

	if o.HasChildren() {
		sb.WriteString(",children=[")

		first := true
		for _, child := range o.Children.All() {
			if !first {
				sb.WriteString(",")
			}

			first = false

			sb.WriteString("\n  " + child.String())
		}

		sb.WriteString("\n]")
	}

	sb.WriteString("}")

	return sb.String()
}

func (o *Option) typeName() string {
	switch o.Role {
	case Anonymous, Branch:
		return o.Role.String()
	case Named:
		return o.Kind.String()
	default:
		return o.Role.String()
	}
}
