// Package scalar provides the value type carried by every configuration tree node.
//
// A Value is a discriminated union of five kinds: null, bool, int (int64),
// float (float64) and string. The zero Value is null. Conversions between kinds
// are explicit and may fail with ErrConversion; there is no implicit promotion
// when values of different kinds are compared.
//
// # Free-text Sniffing
//
// Configuration formats that only carry text (XML attributes, INI values,
// plain YAML scalars) are coerced into typed values with Sniff:
//
//	""      -> null
//	"42"    -> int 42
//	"4K"    -> int 4096 (K, M, G multipliers, case-insensitive)
//	"1.5"   -> float 1.5
//	"true"  -> bool true
//	"abc"   -> string "abc"
package scalar
