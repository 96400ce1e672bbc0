package numeric

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/mmr-tortoise/numlab/internal/model"
)

// Formula is a single-variable real function. The two formulas handed to
// CompareFormulas must be mathematically identical in infinite precision;
// the harness exists to show where they stop being identical in float64.
type Formula func(x float64) float64

// CompareFormulas evaluates two mathematically equivalent formulas across
// a sampled domain and reports, point by point, how far floating-point
// evaluation pulls them apart.
//
// Algorithm:
//  1. Validate the domain and tolerance.
//  2. Build the sample grid: domain.Points evenly spaced x values across
//     [domain.Min, domain.Max] (both endpoints included).
//  3. At each x, evaluate both formulas and record the signed pointwise
//     difference fa(x) - fb(x) and the relative error scaled by the
//     larger operand.
//  4. Flag points whose relative error exceeds relTolerance.
//
// Edge cases:
//   - Both values exactly zero (common deep in an underflow tail): the
//     point reports zero absolute error and RelDefined=false rather than
//     dividing by zero. Such points are never flagged.
//   - Either value non-finite: RelDefined=false and the point is flagged,
//     since equivalent formulas disagreeing on finiteness is itself a
//     divergence worth surfacing. Non-finite differences are excluded
//     from MaxAbsError.
//
// The function is pure: it has no side effects and the returned result
// holds everything a consumer (table printer, JSON encoder, plotter)
// needs.
func CompareFormulas(domain model.Domain, fa, fb Formula, relTolerance float64) (*model.ComparisonResult, error) {
	if err := domain.Validate(); err != nil {
		return nil, err
	}
	if relTolerance < 0 || math.IsNaN(relTolerance) || math.IsInf(relTolerance, 0) {
		return nil, model.ErrInvalidTolerance
	}

	xs := sampleDomain(domain)

	result := &model.ComparisonResult{
		Domain:       domain,
		RelTolerance: relTolerance,
		Points:       make([]model.ComparisonPoint, 0, len(xs)),
	}

	for _, x := range xs {
		a := fa(x)
		b := fb(x)

		point := model.ComparisonPoint{
			X:        x,
			A:        a,
			B:        b,
			AbsError: a - b,
		}

		rel, defined := RelativeError(a, b)
		point.RelError = rel
		point.RelDefined = defined

		switch {
		case !isFinite(a) || !isFinite(b):
			// Equivalent formulas disagreeing on finiteness is a
			// divergence, even though no relative error can be quoted.
			point.Flagged = true
		case defined && rel > relTolerance:
			point.Flagged = true
		}

		if point.Flagged {
			if result.FlaggedCount == 0 {
				result.FirstFlaggedX = x
			}
			result.FlaggedCount++
		}

		if isFinite(point.AbsError) && math.Abs(point.AbsError) > result.MaxAbsError {
			result.MaxAbsError = math.Abs(point.AbsError)
		}
		if defined && rel > result.MaxRelError {
			result.MaxRelError = rel
		}

		result.Points = append(result.Points, point)
	}

	return result, nil
}

// sampleDomain builds the evenly spaced sample grid for a validated
// domain. gonum's floats.Span requires a destination of at least two
// elements, so the single-point grid is handled separately.
func sampleDomain(domain model.Domain) []float64 {
	if domain.Points == 1 {
		return []float64{domain.Min}
	}
	xs := make([]float64, domain.Points)
	floats.Span(xs, domain.Min, domain.Max)
	return xs
}

// isFinite reports whether x is neither NaN nor an infinity.
func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
