package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/numlab/internal/model"
)

// TestCheckOverflow_Int64MaxPlusOne verifies the canonical demonstration:
// at width 64, the maximum representable value plus one wraps to the
// minimum representable value, while the exact result is 2^63.
func TestCheckOverflow_Int64MaxPlusOne(t *testing.T) {
	report, err := CheckOverflow(64, math.MaxInt64, 1)
	require.NoError(t, err)

	assert.True(t, report.Overflowed)
	assert.Equal(t, int64(math.MinInt64), report.Wrapped,
		"2^63-1 + 1 must wrap to -2^63")
	assert.Equal(t, "9223372036854775808", report.Exact,
		"arbitrary precision must yield 2^63")
	assert.Equal(t, int64(math.MinInt64), report.MinValue)
	assert.Equal(t, int64(math.MaxInt64), report.MaxValue)
}

// TestCheckOverflow_NegativeWraparound verifies wraparound in the other
// direction: the minimum value minus one wraps to the maximum value.
func TestCheckOverflow_NegativeWraparound(t *testing.T) {
	report, err := CheckOverflow(64, math.MinInt64, -1)
	require.NoError(t, err)

	assert.True(t, report.Overflowed)
	assert.Equal(t, int64(math.MaxInt64), report.Wrapped)
	assert.Equal(t, "-9223372036854775809", report.Exact)
}

// TestCheckOverflow_NoOverflow verifies that an in-range addition reports
// the same value on both sides and no wraparound.
func TestCheckOverflow_NoOverflow(t *testing.T) {
	report, err := CheckOverflow(64, 40, 2)
	require.NoError(t, err)

	assert.False(t, report.Overflowed)
	assert.Equal(t, int64(42), report.Wrapped)
	assert.Equal(t, "42", report.Exact)
}

// TestCheckOverflow_Width8 verifies the wraparound semantics at a narrow
// width: 127 + 1 wraps to -128 in 8-bit two's complement.
func TestCheckOverflow_Width8(t *testing.T) {
	report, err := CheckOverflow(8, 127, 1)
	require.NoError(t, err)

	assert.True(t, report.Overflowed)
	assert.Equal(t, int64(-128), report.Wrapped)
	assert.Equal(t, "128", report.Exact)
	assert.Equal(t, int64(-128), report.MinValue)
	assert.Equal(t, int64(127), report.MaxValue)
}

// TestCheckOverflow_Width16 verifies an overflow crossing the 16-bit
// boundary: 30000 + 10000 = 40000, which wraps past 32767 to -25536.
func TestCheckOverflow_Width16(t *testing.T) {
	report, err := CheckOverflow(16, 30000, 10000)
	require.NoError(t, err)

	assert.True(t, report.Overflowed)
	assert.Equal(t, int64(40000-65536), report.Wrapped)
	assert.Equal(t, "40000", report.Exact)
}

// TestCheckOverflow_InvalidWidth verifies that widths outside 2-64 are
// rejected with ErrInvalidBitWidth.
func TestCheckOverflow_InvalidWidth(t *testing.T) {
	for _, width := range []uint{0, 1, 65, 128} {
		_, err := CheckOverflow(width, 1, 1)
		require.Error(t, err, "width %d must be rejected", width)
		assert.ErrorIs(t, err, model.ErrInvalidBitWidth)
	}
}

// TestCheckOverflow_OperandOutOfRange verifies that operands not
// representable at the requested width are rejected before any
// arithmetic happens.
func TestCheckOverflow_OperandOutOfRange(t *testing.T) {
	_, err := CheckOverflow(8, 128, 0)
	assert.ErrorIs(t, err, model.ErrOperandOutOfRange)

	_, err = CheckOverflow(8, 0, -129)
	assert.ErrorIs(t, err, model.ErrOperandOutOfRange)

	// The exact boundary values are fine.
	_, err = CheckOverflow(8, 127, -128)
	assert.NoError(t, err)
}

// TestCheckOverflow_MinimumWidth verifies the narrowest supported width:
// a 2-bit signed integer holds -2..1, and 1 + 1 wraps to -2.
func TestCheckOverflow_MinimumWidth(t *testing.T) {
	report, err := CheckOverflow(2, 1, 1)
	require.NoError(t, err)

	assert.True(t, report.Overflowed)
	assert.Equal(t, int64(-2), report.Wrapped)
	assert.Equal(t, "2", report.Exact)
}
