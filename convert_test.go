package bignum

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringRoundTripAllBases(t *testing.T) {
	values := []string{"0", "1", "-1", "255", "-255", "123456789012345678901234567890", "-98765432109876543210"}
	for base := 2; base <= 36; base++ {
		for _, v := range values {
			x := mustFromString(t, v, 10)
			s := ToString(x, base)
			y, err := FromString(s, base)
			require.NoError(t, err)
			assert.True(t, Equal(x, y), "base=%d v=%s s=%s", base, v, s)
		}
	}
}

func TestFromStringParseFailure(t *testing.T) {
	_, err := FromString("", 10)
	assert.ErrorIs(t, err, ErrParse)

	_, err = FromString("   ", 10)
	assert.ErrorIs(t, err, ErrParse)

	_, err = FromString("+", 16)
	assert.ErrorIs(t, err, ErrParse)
}

func TestFromStringAcceptsValidPrefix(t *testing.T) {
	x, err := FromString("123abc", 10)
	require.NoError(t, err)
	assert.True(t, Equal(x, FromInt32(123)))
}

func TestFromStringWhitespaceAndSign(t *testing.T) {
	x, err := FromString("  -42", 10)
	require.NoError(t, err)
	assert.True(t, Equal(x, FromInt32(-42)))
}

func TestFromStringBase36CaseInsensitive(t *testing.T) {
	x, err := FromString("ZZ", 36)
	require.NoError(t, err)
	y, err := FromString("zz", 36)
	require.NoError(t, err)
	assert.True(t, Equal(x, y))
	assert.True(t, Equal(x, FromInt32(35*36+35)))
}

func TestToStringCanonicalForm(t *testing.T) {
	assert.Equal(t, "0", ToString(Zero(), 10))
	assert.Equal(t, "-1", ToString(FromInt32(-1), 10))
	assert.Equal(t, "ff", ToString(FromInt32(255), 16))
}

func TestInt64RoundTripProperty(t *testing.T) {
	vals := []int64{0, 1, -1, math.MaxInt64, math.MinInt64, 1 << 40, -(1 << 40)}
	for _, v := range vals {
		x := FromInt64(v)
		got, ok := ToInt64(x)
		require.True(t, ok)
		assert.True(t, Equal(FromInt64(got), x))
	}
}

func TestToInt32OverflowReported(t *testing.T) {
	_, ok := ToInt32(FromInt64(math.MaxInt32 + 1))
	assert.False(t, ok)
	_, ok = ToInt32(FromInt64(math.MinInt32 - 1))
	assert.False(t, ok)
	v, ok := ToInt32(FromInt64(math.MinInt32))
	assert.True(t, ok)
	assert.Equal(t, int32(math.MinInt32), v)
}

func TestToUint64Negative(t *testing.T) {
	_, ok := ToUint64(FromInt32(-1))
	assert.False(t, ok)
}

func TestToDoubleSmallValues(t *testing.T) {
	assert.Equal(t, 0.0, ToDouble(Zero()))
	assert.Equal(t, 42.0, ToDouble(FromInt32(42)))
	assert.Equal(t, -42.0, ToDouble(FromInt32(-42)))
}

func TestBitLength(t *testing.T) {
	assert.Equal(t, 0, BitLength(Zero()))
	assert.Equal(t, 1, BitLength(One()))
	assert.Equal(t, 8, BitLength(FromInt32(255)))
	assert.Equal(t, 9, BitLength(FromInt32(256)))
}
