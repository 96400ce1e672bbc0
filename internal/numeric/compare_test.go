package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/numlab/internal/model"
)

// decayStable and decayNaive are the canonical cancellation pair used
// throughout these tests: 2^-x evaluated directly, and the same quantity
// recovered by adding it to 1 and subtracting 1 again. The second form
// loses low-order bits as x grows and collapses to zero once 2^-x drops
// below half an epsilon (x >= 53).
func decayStable(x float64) float64 { return math.Exp2(-x) }
func decayNaive(x float64) float64  { return (1 + math.Exp2(-x)) - 1 }

// TestCompareFormulas_AgreementRegime verifies that outside the
// cancellation regime the two formulations differ by at most a small
// multiple of machine epsilon relative to the larger operand, and no
// point is flagged.
func TestCompareFormulas_AgreementRegime(t *testing.T) {
	domain := model.Domain{Min: 0, Max: 40, Points: 41}

	result, err := CompareFormulas(domain, decayStable, decayNaive, model.DefaultRelTolerance)
	require.NoError(t, err)
	require.Len(t, result.Points, 41)

	assert.Zero(t, result.FlaggedCount, "no point below x=41 should be flagged at 1%% tolerance")

	for _, p := range result.Points {
		require.True(t, p.RelDefined, "both values are nonzero in this regime at x=%g", p.X)
		// The naive form's rounding error is bounded by eps/2 on the
		// 1+t intermediate, so the error relative to t grows as t
		// shrinks: roughly eps * 2^x / 2. Up to x=40 that is at most
		// about 2^-13, comfortably below the 1% flag threshold.
		assert.LessOrEqual(t, p.RelError, 1e-3,
			"x=%g: relative error %g unexpectedly large", p.X, p.RelError)
	}
}

// TestCompareFormulas_CancellationRegime verifies the documented
// catastrophic-cancellation behavior: at x >= 53 the naive form has lost
// every significant bit (the intermediate 1 + 2^-x rounds to exactly 1),
// so the relative error reaches 100% — far beyond the 10% the regime is
// documented to exceed.
func TestCompareFormulas_CancellationRegime(t *testing.T) {
	domain := model.Domain{Min: 53, Max: 60, Points: 8}

	result, err := CompareFormulas(domain, decayStable, decayNaive, model.DefaultRelTolerance)
	require.NoError(t, err)

	assert.Equal(t, len(result.Points), result.FlaggedCount,
		"every point at x>=53 should be flagged")
	assert.Equal(t, 53.0, result.FirstFlaggedX)
	assert.Greater(t, result.MaxRelError, 0.1,
		"cancellation regime relative error must exceed 10%%")

	for _, p := range result.Points {
		assert.Zero(t, p.B, "naive form collapses to exactly zero at x=%g", p.X)
		assert.True(t, p.Flagged)
		assert.InDelta(t, 1.0, p.RelError, 1e-15,
			"total cancellation means 100%% relative error")
	}
}

// TestCompareFormulas_BothUnderflowToZero verifies the edge-case policy:
// when both formulas underflow to exactly zero, the point reports zero
// absolute error and an undefined relative error, and is not flagged.
// 2^-x underflows past the smallest subnormal at x > 1074.
func TestCompareFormulas_BothUnderflowToZero(t *testing.T) {
	domain := model.Domain{Min: 1080, Max: 1090, Points: 11}

	result, err := CompareFormulas(domain, decayStable, decayNaive, model.DefaultRelTolerance)
	require.NoError(t, err)

	assert.Zero(t, result.FlaggedCount, "underflow-to-zero points must not be flagged")

	for _, p := range result.Points {
		assert.Zero(t, p.A, "x=%g: stable form should underflow", p.X)
		assert.Zero(t, p.B, "x=%g: naive form should underflow", p.X)
		assert.Zero(t, p.AbsError, "zero absolute error by definition")
		assert.False(t, p.RelDefined, "relative error is undefined, not zero")
		assert.False(t, p.Flagged)
	}
}

// TestCompareFormulas_NonFiniteFlagged verifies that a formula producing
// a non-finite value flags the point with an undefined relative error.
func TestCompareFormulas_NonFiniteFlagged(t *testing.T) {
	inf := func(x float64) float64 { return math.Inf(1) }
	finite := func(x float64) float64 { return x }

	result, err := CompareFormulas(model.Domain{Min: 1, Max: 1, Points: 1}, inf, finite, model.DefaultRelTolerance)
	require.NoError(t, err)
	require.Len(t, result.Points, 1)

	p := result.Points[0]
	assert.True(t, p.Flagged, "non-finite disagreement is a divergence")
	assert.False(t, p.RelDefined)
	assert.Equal(t, 1, result.FlaggedCount)
}

// TestCompareFormulas_SinglePointDomain verifies that a one-sample domain
// evaluates exactly at Min.
func TestCompareFormulas_SinglePointDomain(t *testing.T) {
	domain := model.Domain{Min: 7, Max: 100, Points: 1}

	result, err := CompareFormulas(domain, decayStable, decayNaive, model.DefaultRelTolerance)
	require.NoError(t, err)
	require.Len(t, result.Points, 1)
	assert.Equal(t, 7.0, result.Points[0].X)
}

// TestCompareFormulas_GridEndpoints verifies that the sample grid
// includes both domain endpoints and is evenly spaced.
func TestCompareFormulas_GridEndpoints(t *testing.T) {
	domain := model.Domain{Min: 0, Max: 10, Points: 11}

	result, err := CompareFormulas(domain, decayStable, decayStable, model.DefaultRelTolerance)
	require.NoError(t, err)
	require.Len(t, result.Points, 11)

	assert.Equal(t, 0.0, result.Points[0].X)
	assert.Equal(t, 10.0, result.Points[10].X)
	assert.Equal(t, 5.0, result.Points[5].X)
}

// TestCompareFormulas_IdenticalFormulas verifies the degenerate case of
// comparing a formula against itself: zero error everywhere, relative
// error defined wherever the value is nonzero.
func TestCompareFormulas_IdenticalFormulas(t *testing.T) {
	domain := model.Domain{Min: 0, Max: 20, Points: 21}

	result, err := CompareFormulas(domain, decayStable, decayStable, model.DefaultRelTolerance)
	require.NoError(t, err)

	assert.Zero(t, result.FlaggedCount)
	assert.Zero(t, result.MaxAbsError)
	assert.Zero(t, result.MaxRelError)
}

// TestCompareFormulas_InvalidInputs verifies that a bad domain or a bad
// tolerance is rejected with the matching sentinel error.
func TestCompareFormulas_InvalidInputs(t *testing.T) {
	_, err := CompareFormulas(model.Domain{Min: 1, Max: 0, Points: 5}, decayStable, decayNaive, 0.01)
	assert.ErrorIs(t, err, model.ErrInvalidDomain)

	valid := model.Domain{Min: 0, Max: 1, Points: 2}

	_, err = CompareFormulas(valid, decayStable, decayNaive, -0.5)
	assert.ErrorIs(t, err, model.ErrInvalidTolerance)

	_, err = CompareFormulas(valid, decayStable, decayNaive, math.NaN())
	assert.ErrorIs(t, err, model.ErrInvalidTolerance)
}
