package scalar

import (
	"fmt"
	"math"
	"strconv"
)

// Sniff coerces free text into the most specific Value it denotes.
//
// The text is tried, in order, as a fully consumed base-10 integer, as an
// integer followed by a single K, M or G multiplier (powers of 1024,
// case-insensitive), as a fully consumed finite float, and as the literals "true" or
// "false". Anything else stays a string. Empty text is null.
func Sniff(text string) Value {
	if text == "" {
		return Null()
	}

	n, err := strconv.ParseInt(text, 10, 64)
	if err == nil {
		return Int(n)
	}

	if n, ok := parseScaled(text); ok {
		return Int(n)
	}

	f, err := strconv.ParseFloat(text, 64)
	if err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
		return Float(f)
	}

	switch text {
	case "true":
		return Bool(true)
	case "false":
		return Bool(false)
	}

	return String(text)
}

func parseScaled(text string) (int64, bool) {
	if len(text) < 2 {
		return 0, false
	}

	var mult int64

	switch text[len(text)-1] {
	case 'k', 'K':
		mult = 1 << 10
	case 'm', 'M':
		mult = 1 << 20
	case 'g', 'G':
		mult = 1 << 30
	default:
		return 0, false
	}

	n, err := strconv.ParseInt(text[:len(text)-1], 10, 64)
	if err != nil {
		return 0, false
	}

	if n > math.MaxInt64/mult || n < math.MinInt64/mult {
		return 0, false
	}

	return n * mult, true
}

// FromAny converts a decoded Go value into a Value. It accepts nil, bool,
// signed and unsigned integers, floats and strings.
func FromAny(x any) (Value, error) {
	switch t := x.(type) {
	case nil:
		return Null(), nil
	case Value:
		return t, nil
	case bool:
		return Bool(t), nil
	case int:
		return Int(int64(t)), nil
	case int8:
		return Int(int64(t)), nil
	case int16:
		return Int(int64(t)), nil
	case int32:
		return Int(int64(t)), nil
	case int64:
		return Int(t), nil
	case uint:
		return fromUint(uint64(t))
	case uint8:
		return Int(int64(t)), nil
	case uint16:
		return Int(int64(t)), nil
	case uint32:
		return Int(int64(t)), nil
	case uint64:
		return fromUint(t)
	case float32:
		return Float(float64(t)), nil
	case float64:
		return Float(t), nil
	case string:
		return String(t), nil
	default:
		return Null(), fmt.Errorf("%w: unsupported type %T", ErrConversion, x)
	}
}

func fromUint(u uint64) (Value, error) {
	if u > math.MaxInt64 {
		return Null(), fmt.Errorf("%w: %d overflows int64", ErrConversion, u)
	}

	return Int(int64(u)), nil
}
