package scalar

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrConversion is returned when a value cannot be converted to the requested kind.
var ErrConversion = errors.New("conversion failed")

// ErrIncomparable is returned when two values of different kinds are ordered.
var ErrIncomparable = errors.New("values are not comparable")

// Kind identifies which member of the union a Value holds.
type Kind uint8

// Value kinds.
const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
)

// String returns the kind name used in dumps and error messages.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is a null, bool, int64, float64 or string scalar.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
}

// Null returns the null value.
func Null() Value { return Value{} }

// Bool returns a bool value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int returns an integer value.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float returns a floating-point value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Kind returns the kind of v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// IsString reports whether v holds a string.
func (v Value) IsString() bool { return v.kind == KindString }

// TypeName returns the name of the kind held by v.
func (v Value) TypeName() string { return v.kind.String() }

// String renders v as text. Null renders as the empty string.
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindString:
		return v.s
	case KindNull:
		return ""
	default:
		return ""
	}
}

// Quoted renders v like String but wraps strings in double quotes with escapes.
func (v Value) Quoted() string {
	if v.kind == KindString {
		return strconv.Quote(v.s)
	}

	return v.String()
}

// GoString implements fmt.GoStringer.
func (v Value) GoString() string {
	return v.kind.String() + "(" + v.Quoted() + ")"
}

// ToBool converts v to a bool. Integers convert by comparing to zero and
// strings must be "true" or "false".
func (v Value) ToBool() (bool, error) {
	switch v.kind {
	case KindBool:
		return v.b, nil
	case KindInt:
		return v.i != 0, nil
	case KindString:
		switch v.s {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
	case KindNull, KindFloat:
	}

	return false, v.conversionError(KindBool)
}

// ToInt converts v to an int64. Floats must be integral and in range.
func (v Value) ToInt() (int64, error) {
	switch v.kind {
	case KindInt:
		return v.i, nil
	case KindBool:
		if v.b {
			return 1, nil
		}

		return 0, nil
	case KindFloat:
		if v.f == math.Trunc(v.f) && v.f >= math.MinInt64 && v.f < math.MaxInt64 {
			return int64(v.f), nil
		}
	case KindString:
		n, err := strconv.ParseInt(v.s, 10, 64)
		if err == nil {
			return n, nil
		}
	case KindNull:
	}

	return 0, v.conversionError(KindInt)
}

// ToFloat converts v to a float64.
func (v Value) ToFloat() (float64, error) {
	switch v.kind {
	case KindFloat:
		return v.f, nil
	case KindInt:
		return float64(v.i), nil
	case KindString:
		f, err := strconv.ParseFloat(v.s, 64)
		if err == nil {
			return f, nil
		}
	case KindNull, KindBool:
	}

	return 0, v.conversionError(KindFloat)
}

// ToString converts v to a string. Only null fails.
func (v Value) ToString() (string, error) {
	if v.kind == KindNull {
		return "", v.conversionError(KindString)
	}

	return v.String(), nil
}

// Equal reports whether v and o have the same kind and the same value.
// NaN equals NaN.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}

	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == o.b
	case KindInt:
		return v.i == o.i
	case KindFloat:
		return v.f == o.f || (math.IsNaN(v.f) && math.IsNaN(o.f))
	case KindString:
		return v.s == o.s
	default:
		return false
	}
}

// Compare orders v relative to o, returning -1, 0 or +1. Both values must be of
// the same kind; otherwise ErrIncomparable is returned. Null equals null and
// false sorts before true.
func (v Value) Compare(o Value) (int, error) {
	if v.kind != o.kind {
		return 0, fmt.Errorf("%w: %s and %s", ErrIncomparable, v.kind, o.kind)
	}

	switch v.kind {
	case KindNull:
		return 0, nil
	case KindBool:
		return cmp.Compare(boolRank(v.b), boolRank(o.b)), nil
	case KindInt:
		return cmp.Compare(v.i, o.i), nil
	case KindFloat:
		return cmp.Compare(v.f, o.f), nil
	case KindString:
		return cmp.Compare(v.s, o.s), nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrIncomparable, v.kind)
	}
}

func (v Value) conversionError(to Kind) error {
	if v.kind == KindNull {
		return fmt.Errorf("%w: null to %s", ErrConversion, to)
	}

	return fmt.Errorf("%w: %s %s to %s", ErrConversion, v.kind, v.Quoted(), to)
}

func boolRank(b bool) int {
	if b {
		return 1
	}

	return 0
}
