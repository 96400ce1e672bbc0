package numeric

import (
	"math"
	"math/rand"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/mmr-tortoise/numlab/internal/model"
)

// vectorSeed fixes the pseudo-random operand data so repeated runs of the
// vectorize command produce identical inputs, timings aside.
const vectorSeed = 1

// AddVectorized computes dst[i] = a[i] + b[i] through gonum's batched
// elementwise addition. All three slices must have equal length.
func AddVectorized(dst, a, b []float64) {
	floats.AddTo(dst, a, b)
}

// AddScalar computes dst[i] = a[i] + b[i] with an explicit index loop.
// This is the path AddVectorized is measured against: IEEE-754 addition
// is deterministic per element, so the two must agree bit-for-bit.
func AddScalar(dst, a, b []float64) {
	for i := range a {
		dst[i] = a[i] + b[i]
	}
}

// CompareVectorScalar performs one elementwise addition over size-element
// operands through both the vectorized and the scalar path, times each,
// and verifies the results are bit-for-bit identical.
//
// The operands are deterministic pseudo-random values from a fixed seed,
// so the computation itself is reproducible; only the timings vary run to
// run. Timings are single-shot wall-clock measurements meant to
// illustrate relative cost, not benchmark statistics.
//
// Because both paths perform the same float64 additions in the same
// order, BitIdentical is expected to always be true; the report exists to
// demonstrate that vectorization changes cost, not results.
func CompareVectorScalar(size int) (*model.VectorReport, error) {
	if size < 1 {
		return nil, model.ErrInvalidSize
	}

	rng := rand.New(rand.NewSource(vectorSeed))

	a := make([]float64, size)
	b := make([]float64, size)
	for i := range a {
		// Spread values across several orders of magnitude so the
		// addition exercises varied exponents, not just [0,1).
		a[i] = (rng.Float64() - 0.5) * 1e6
		b[i] = (rng.Float64() - 0.5) * 1e6
	}

	vecDst := make([]float64, size)
	scalarDst := make([]float64, size)

	start := time.Now()
	AddVectorized(vecDst, a, b)
	vecNs := time.Since(start).Nanoseconds()

	start = time.Now()
	AddScalar(scalarDst, a, b)
	scalarNs := time.Since(start).Nanoseconds()

	report := &model.VectorReport{
		Size:          size,
		BitIdentical:  true,
		MismatchIndex: -1,
		VectorizedNs:  vecNs,
		ScalarNs:      scalarNs,
	}

	// Compare bit patterns, not values: NaN != NaN under ==, and -0.0
	// compares equal to +0.0, so Float64bits is the only comparison that
	// actually means "identical result".
	for i := range vecDst {
		if math.Float64bits(vecDst[i]) != math.Float64bits(scalarDst[i]) {
			report.BitIdentical = false
			report.MismatchIndex = i
			break
		}
	}

	return report, nil
}
