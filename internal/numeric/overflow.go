package numeric

import (
	"fmt"
	"math/big"

	"github.com/mmr-tortoise/numlab/internal/model"
)

const (
	// minBitWidth is the narrowest supported two's-complement width.
	// A 1-bit signed integer holds only {-1, 0}, which makes addition
	// demonstrations degenerate, so 2 is the floor.
	minBitWidth = 2

	// maxBitWidth is the widest supported two's-complement width.
	// Operands and wrapped results are carried as int64, so 64 is the
	// natural ceiling; the arbitrary-precision side has no limit.
	maxBitWidth = 64
)

// CheckOverflow adds two operands under two's-complement wraparound at
// the given bit width and compares the result against the same addition
// performed in arbitrary precision.
//
// Algorithm:
//  1. Validate the bit width (2-64) and check both operands are
//     representable at that width.
//  2. Compute the exact sum with math/big.
//  3. Reduce the exact sum modulo 2^w, then re-interpret the low w bits
//     as a signed value: results at or above 2^(w-1) wrap around to the
//     negative range by subtracting 2^w.
//  4. Overflow occurred exactly when the wrapped value differs from the
//     exact sum.
//
// The canonical demonstration: at width 64, adding 1 to 2^63-1 wraps to
// -2^63, while the exact result is 2^63.
//
// Invalid widths return model.ErrInvalidBitWidth (wrapped with detail);
// unrepresentable operands return model.ErrOperandOutOfRange.
func CheckOverflow(bitWidth uint, a, b int64) (*model.OverflowReport, error) {
	if bitWidth < minBitWidth || bitWidth > maxBitWidth {
		return nil, fmt.Errorf("%w: %d (supported: %d-%d)",
			model.ErrInvalidBitWidth, bitWidth, minBitWidth, maxBitWidth)
	}

	minVal, maxVal := signedBounds(bitWidth)
	if a < minVal || a > maxVal {
		return nil, fmt.Errorf("%w: %d not representable at width %d (%d to %d)",
			model.ErrOperandOutOfRange, a, bitWidth, minVal, maxVal)
	}
	if b < minVal || b > maxVal {
		return nil, fmt.Errorf("%w: %d not representable at width %d (%d to %d)",
			model.ErrOperandOutOfRange, b, bitWidth, minVal, maxVal)
	}

	// Exact sum in arbitrary precision. Two int64 operands can at most
	// need 65 bits, but math/big keeps the code identical for any width.
	exact := new(big.Int).Add(big.NewInt(a), big.NewInt(b))

	wrapped := wrapToWidth(exact, bitWidth)

	// Overflow happened iff wrapping changed the value.
	overflowed := exact.Cmp(big.NewInt(wrapped)) != 0

	return &model.OverflowReport{
		BitWidth:   bitWidth,
		A:          a,
		B:          b,
		Wrapped:    wrapped,
		Exact:      exact.String(),
		Overflowed: overflowed,
		MinValue:   minVal,
		MaxValue:   maxVal,
	}, nil
}

// signedBounds returns the representable range of a w-bit two's-complement
// integer: [-2^(w-1), 2^(w-1)-1]. Callers must have validated w in 2-64.
func signedBounds(w uint) (minVal, maxVal int64) {
	if w == 64 {
		// 1<<63 overflows int64, so the 64-bit bounds come from the
		// unsigned side.
		return int64(-1 << 63), int64(^uint64(0) >> 1)
	}
	return -(1 << (w - 1)), (1 << (w - 1)) - 1
}

// wrapToWidth reduces v modulo 2^w and re-interprets the low w bits as a
// signed two's-complement value.
//
// big.Int's Mod always returns a non-negative remainder, which is exactly
// the unsigned bit pattern of the low w bits; values in the upper half of
// that range represent negative numbers and are shifted down by 2^w.
func wrapToWidth(v *big.Int, w uint) int64 {
	modulus := new(big.Int).Lsh(big.NewInt(1), w) // 2^w
	half := new(big.Int).Rsh(modulus, 1)          // 2^(w-1)

	r := new(big.Int).Mod(v, modulus)
	if r.Cmp(half) >= 0 {
		r.Sub(r, modulus)
	}

	// After reduction r is within [-2^(w-1), 2^(w-1)-1] for w <= 64,
	// so Int64 is exact.
	return r.Int64()
}
