// Package validator checks configuration trees against a schema.
//
// A Validator is built once from a root path and a schema.OptionMap and is
// immutable afterwards. Validate walks a tree and its schema together:
//
//  1. among direct children, a repeated name that matches a Unique option fails;
//  2. every required option (through anonymous and branch options too) must be
//     present with a value;
//  3. each child is matched to an option: a Named option by exact name, an
//     Anonymous option by anything. Children that match nothing fail as
//     unsupported; unknown keys are never ignored;
//  4. each matched pair is checked for kind, bounds, name and value choices,
//     and the child subtree is validated against the option's children.
//
// With fillDefaults, defaults are written into null values and absent optional
// options are added. Validation stops at the first violation and is not
// transactional: a tree that failed validation may already hold some defaults.
// Validate a Clone and keep it only on success when that matters.
//
// Every violation is a *SchemaError whose Path locates the offending entry as
// root/option[/child-name][value].
//
// Get and GetChild read a tree with schema awareness: absent values fall back to
// the option's default, and absent required options are reported as such rather
// than as a plain not-found error.
package validator
