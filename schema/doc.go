// Package schema describes the permitted structure of a configuration tree.
//
// An OptionMap is an ordered set of uniquely named Options. Each Option has a
// structural Role (Named, Anonymous or Branch), a scalar Kind, cardinality flags
// (Required, Unique), an optional default, bounds, name and value choices and a
// nested OptionMap for its children. Bounds are numeric ranges for Int and
// Float options and length limits for String options.
//
// A map must not mix an Anonymous option with Named ones, and must hold at most
// one Anonymous option.
//
// Schemas are usually built in code with NewOptionMap, or loaded from YAML with
// Load:
//
//   - name: server
//     role: anonymous
//     type: string
//     names: [primary, backup]
//     children:
//       - name: port
//         type: int
//         default: 8080
//         min: 1
//         max: 65535
//
// Usage renders a schema as indented text for documentation.
package schema
