package schema

import (
	"fmt"
	"strings"
)

// Usage renders the map as indented documentation text, one block per option
// and child options nested below their parent.
func (m *OptionMap) Usage(indent string) string {
	var sb strings.Builder

	m.usage(&sb, indent, 0)

	return sb.String()
}

func (m *OptionMap) usage(sb *strings.Builder, indent string, level int) {
	prefix := indent + strings.Repeat(" ", level)

	for _, o := range m.All() {
		sb.WriteString(prefix + o.Name)

		switch o.Role {
		case Anonymous:
			sb.WriteString(" (anonymous)")
		case Branch:
			sb.WriteString(" (branch)")
		case Named:
		}

		sb.WriteString(": " + o.Kind.String() + "\n")

		if o.Description != "" {
			usageLine(sb, prefix, "Description", o.Description)
		}

		if o.Unique {
			usageLine(sb, prefix, "Unique", "true")
		}

		if o.Required {
			usageLine(sb, prefix, "Required", "true")
		} else if !o.Default.IsNull() {
			usageLine(sb, prefix, "Default", o.Default.Quoted())
		}

		minLabel, maxLabel := "Min", "Max"
		if o.Kind == String {
			minLabel, maxLabel = "MinLength", "MaxLength"
		}

		if !o.Min.IsNull() {
			usageLine(sb, prefix, minLabel, o.Min.Quoted())
		}

		if !o.Max.IsNull() {
			usageLine(sb, prefix, maxLabel, o.Max.Quoted())
		}

		if len(o.NameChoices) > 0 {
			usageLine(sb, prefix, "Names", strings.Join(o.NameChoices, ", "))
		}

		if len(o.ValueChoices) > 0 {
			values := make([]string, len(o.ValueChoices))
			for i, v := range o.ValueChoices {
				values[i] = v.Quoted()
			}

			usageLine(sb, prefix, "Values", strings.Join(values, ", "))
		}

		o.Children.usage(sb, indent, level+2)
	}
}

func usageLine(sb *strings.Builder, prefix, label, value string) {
	fmt.Fprintf(sb, "%s%13s: %s\n", prefix, label, value)
}
