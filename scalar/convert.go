package scalar

import (
	"fmt"
	"math"
)

// Type lists the Go types a Value can be converted to with Convert.
type Type interface {
	bool | int | int64 | float64 | string | Value
}

// Convert converts v to T using the conversion rules of the To* methods.
func Convert[T Type](v Value) (T, error) {
	var out T

	switch p := any(&out).(type) {
	case *bool:
		b, err := v.ToBool()
		if err != nil {
			return out, err
		}

		*p = b
	case *int:
		n, err := v.ToInt()
		if err != nil {
			return out, err
		}

		if n > math.MaxInt || n < math.MinInt {
			return out, fmt.Errorf("%w: %d overflows int", ErrConversion, n)
		}

		*p = int(n)
	case *int64:
		n, err := v.ToInt()
		if err != nil {
			return out, err
		}

		*p = n
	case *float64:
		f, err := v.ToFloat()
		if err != nil {
			return out, err
		}

		*p = f
	case *string:
		s, err := v.ToString()
		if err != nil {
			return out, err
		}

		*p = s
	case *Value:
		*p = v
	}

	return out, nil
}

// From wraps a Go value of one of the supported types into a Value.
func From[T Type](x T) Value {
	switch t := any(x).(type) {
	case bool:
		return Bool(t)
	case int:
		return Int(int64(t))
	case int64:
		return Int(t)
	case float64:
		return Float(t)
	case string:
		return String(t)
	case Value:
		return t
	default:
		return Null()
	}
}

// TypeName returns the name of T for error messages.
func TypeName[T Type]() string {
	var zero T

	switch any(zero).(type) {
	case bool:
		return "bool"
	case int:
		return "int"
	case int64:
		return "int64"
	case float64:
		return "float64"
	case string:
		return "string"
	default:
		return "value"
	}
}
