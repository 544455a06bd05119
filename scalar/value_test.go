package scalar_test

import (
	"math"
	"testing"

	"github.com/0xalexb/varconf/scalar"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSniff(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		text     string
		expected scalar.Value
	}{
		{name: "empty is null", text: "", expected: scalar.Null()},
		{name: "integer", text: "42", expected: scalar.Int(42)},
		{name: "negative integer", text: "-7", expected: scalar.Int(-7)},
		{name: "kilo", text: "4K", expected: scalar.Int(4096)},
		{name: "lowercase kilo", text: "4k", expected: scalar.Int(4096)},
		{name: "mega", text: "2M", expected: scalar.Int(2097152)},
		{name: "giga", text: "1G", expected: scalar.Int(1073741824)},
		{name: "unknown suffix stays string", text: "4X", expected: scalar.String("4X")},
		{name: "two suffix chars stay string", text: "4KB", expected: scalar.String("4KB")},
		{name: "bare suffix stays string", text: "K", expected: scalar.String("K")},
		{name: "float", text: "1.5", expected: scalar.Float(1.5)},
		{name: "exponent float", text: "1e3", expected: scalar.Float(1000)},
		{name: "true", text: "true", expected: scalar.Bool(true)},
		{name: "false", text: "false", expected: scalar.Bool(false)},
		{name: "capitalized bool stays string", text: "True", expected: scalar.String("True")},
		{name: "plain string", text: "abc", expected: scalar.String("abc")},
		{name: "nan stays string", text: "nan", expected: scalar.String("nan")},
		{name: "inf stays string", text: "inf", expected: scalar.String("inf")},
		{name: "infinity stays string", text: "-Infinity", expected: scalar.String("-Infinity")},
		{name: "float overflow stays string", text: "1e400", expected: scalar.String("1e400")},
		{name: "trailing space stays string", text: "12 ", expected: scalar.String("12 ")},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got := scalar.Sniff(testCase.text)
			assert.True(t, testCase.expected.Equal(got), "want %#v, got %#v", testCase.expected, got)
		})
	}
}

func TestSniff_ScaledOverflowFallsBack(t *testing.T) {
	t.Parallel()

	got := scalar.Sniff("9223372036854775807G")
	assert.Equal(t, scalar.KindString, got.Kind())
}

func TestValue_Conversions(t *testing.T) {
	t.Parallel()

	n, err := scalar.String("12").ToInt()
	require.NoError(t, err)
	assert.Equal(t, int64(12), n)

	n, err = scalar.Float(3).ToInt()
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	_, err = scalar.Float(3.5).ToInt()
	require.ErrorIs(t, err, scalar.ErrConversion)

	f, err := scalar.Int(2).ToFloat()
	require.NoError(t, err)
	assert.InDelta(t, 2.0, f, 0)

	b, err := scalar.String("true").ToBool()
	require.NoError(t, err)
	assert.True(t, b)

	_, err = scalar.String("yes").ToBool()
	require.ErrorIs(t, err, scalar.ErrConversion)

	s, err := scalar.Int(5).ToString()
	require.NoError(t, err)
	assert.Equal(t, "5", s)

	_, err = scalar.Null().ToString()
	require.ErrorIs(t, err, scalar.ErrConversion)

	_, err = scalar.Float(math.Inf(1)).ToInt()
	require.ErrorIs(t, err, scalar.ErrConversion)
}

func TestConvert(t *testing.T) {
	t.Parallel()

	i, err := scalar.Convert[int](scalar.Int(10))
	require.NoError(t, err)
	assert.Equal(t, 10, i)

	s, err := scalar.Convert[string](scalar.Bool(true))
	require.NoError(t, err)
	assert.Equal(t, "true", s)

	v, err := scalar.Convert[scalar.Value](scalar.Null())
	require.NoError(t, err)
	assert.True(t, v.IsNull())

	_, err = scalar.Convert[float64](scalar.String("abc"))
	require.ErrorIs(t, err, scalar.ErrConversion)

	assert.Equal(t, "float64", scalar.TypeName[float64]())
	assert.True(t, scalar.Int(3).Equal(scalar.From(3)))
}

func TestValue_EqualAndCompare(t *testing.T) {
	t.Parallel()

	assert.True(t, scalar.Int(1).Equal(scalar.Int(1)))
	assert.False(t, scalar.Int(1).Equal(scalar.Float(1)), "no cross-kind equality")
	assert.True(t, scalar.Null().Equal(scalar.Null()))
	assert.True(t, scalar.Float(math.NaN()).Equal(scalar.Float(math.NaN())))
	assert.False(t, scalar.Float(math.NaN()).Equal(scalar.Float(0)))

	c, err := scalar.Int(1).Compare(scalar.Int(2))
	require.NoError(t, err)
	assert.Equal(t, -1, c)

	c, err = scalar.String("b").Compare(scalar.String("a"))
	require.NoError(t, err)
	assert.Equal(t, 1, c)

	c, err = scalar.Bool(false).Compare(scalar.Bool(true))
	require.NoError(t, err)
	assert.Equal(t, -1, c)

	_, err = scalar.Int(1).Compare(scalar.Float(2))
	require.ErrorIs(t, err, scalar.ErrIncomparable)
}

func TestValue_Rendering(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", scalar.Null().String())
	assert.Equal(t, "1.5", scalar.Float(1.5).String())
	assert.Equal(t, `"a\"b"`, scalar.String(`a"b`).Quoted())
	assert.Equal(t, "7", scalar.Int(7).Quoted())
	assert.Equal(t, "string", scalar.String("").TypeName())
}

func TestFromAny(t *testing.T) {
	t.Parallel()

	v, err := scalar.FromAny(uint64(7))
	require.NoError(t, err)
	assert.True(t, scalar.Int(7).Equal(v))

	v, err = scalar.FromAny(nil)
	require.NoError(t, err)
	assert.True(t, v.IsNull())

	_, err = scalar.FromAny(uint64(math.MaxUint64))
	require.ErrorIs(t, err, scalar.ErrConversion)

	_, err = scalar.FromAny([]int{1})
	require.ErrorIs(t, err, scalar.ErrConversion)
}
