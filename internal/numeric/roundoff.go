package numeric

import (
	"fmt"
	"strconv"

	"github.com/mmr-tortoise/numlab/internal/model"
)

// RoundoffExamples computes the canned IEEE-754 rounding demonstrations
// live and returns them as a report list. Each example is an expression a
// reader would expect to be exact in decimal arithmetic, together with
// what double precision actually produces.
//
// The values are computed at call time, not quoted as string literals, so
// the examples are honest: the formatting below renders the real float64
// results via strconv's shortest round-trip representation.
func RoundoffExamples() []model.RoundoffExample {
	var examples []model.RoundoffExample

	// 0.1 is not representable in binary: the nearest float64 is
	// slightly above 0.1, and three of those rounding errors survive
	// the subtraction.
	residual := 0.1 + 0.1 + 0.1 - 0.3
	examples = append(examples, model.RoundoffExample{
		Expression: "0.1 + 0.1 + 0.1 - 0.3",
		Value:      formatFloat(residual),
		Note:       "three accumulated representation errors of 0.1 do not cancel against 0.3",
	})

	// The classic equality trap, and the rescaling that sidesteps it:
	// 1, 0.7, and 0.3 each round independently, but 10, 7, and 3 are
	// all exact integers in float64.
	examples = append(examples, model.RoundoffExample{
		Expression: "(1 - 0.7) == 0.3",
		Value:      strconv.FormatBool((1-0.7) == 0.3),
		Note:       fmt.Sprintf("1 - 0.7 evaluates to %s", formatFloat(1-0.7)),
	})
	examples = append(examples, model.RoundoffExample{
		Expression: "(10 - 7) == 3",
		Value:      strconv.FormatBool((10.0 - 7.0) == 3.0),
		Note:       "scaling both sides by 10 makes every operand exactly representable",
	})

	eps := MachineEpsilon()
	examples = append(examples, model.RoundoffExample{
		Expression: "machine epsilon",
		Value:      formatFloat(eps),
		Note:       "gap between 1.0 and the next representable float64 (2^-52)",
	})

	// 1 + eps/2 sits exactly halfway between 1 and 1+eps; round-to-
	// nearest-even resolves the tie to 1.
	examples = append(examples, model.RoundoffExample{
		Expression: "(1 + eps/2) == 1",
		Value:      strconv.FormatBool(1+eps/2 == 1),
		Note:       "additions below half an epsilon vanish against 1.0 (ties round to even)",
	})

	return examples
}

// formatFloat renders a float64 with the shortest decimal representation
// that round-trips exactly, matching how the discrepancies are usually
// quoted (e.g. 5.551115123125783e-17).
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
