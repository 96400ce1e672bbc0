// Package cli — compare.go implements the "numlab compare" command.
//
// The compare command sweeps a named formula pair across a sampled domain
// and reports, point by point, where the two mathematically equivalent
// formulations diverge in float64. Points whose relative error exceeds
// the tolerance are marked, and a summary line gives the flagged count
// and the worst absolute and relative errors.
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/numlab/internal/formula"
	"github.com/mmr-tortoise/numlab/internal/model"
)

// compareFlags holds the flag values for the compare command.
// These are bound to cobra flags in NewCompareCommand.
type compareFlags struct {
	min    float64 // --min: domain lower bound
	max    float64 // --max: domain upper bound
	points int     // --points: number of samples
	relTol float64 // --rel-tol: flagging threshold
}

// NewCompareCommand creates the "compare" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewCompareCommand() *cobra.Command {
	flags := &compareFlags{}

	cmd := &cobra.Command{
		Use:   "compare <pair>",
		Short: "Sweep a formula pair and report floating-point divergence",
		Long: `Evaluate both formulations of a built-in formula pair across a domain
of exponents and report the pointwise difference, relative error, and
which points exceed the tolerance.

If none of --min/--max/--points are given, the pair's suggested domain
is used. Run "numlab pairs" to list the available pairs.

Examples:
  numlab compare decay
  numlab compare decay --min 40 --max 60 --points 21
  numlab compare expm1 --rel-tol 0.001 --json`,

		// Exactly one positional argument: the pair name.
		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			domainSet := cmd.Flags().Changed("min") ||
				cmd.Flags().Changed("max") ||
				cmd.Flags().Changed("points")
			return runCompare(args[0], flags, domainSet)
		},
	}

	cmd.Flags().Float64Var(&flags.min, "min", 0, "Domain lower bound (exponent)")
	cmd.Flags().Float64Var(&flags.max, "max", 60, "Domain upper bound (exponent)")
	cmd.Flags().IntVar(&flags.points, "points", 61, "Number of evenly spaced samples")
	cmd.Flags().Float64Var(&flags.relTol, "rel-tol", model.DefaultRelTolerance,
		"Relative-error threshold above which a point is flagged")

	return cmd
}

// runCompare is the main logic function for the compare command.
// It resolves the pair, picks the domain, runs the harness, and prints
// the result in the appropriate format.
func runCompare(pairName string, flags *compareFlags, domainSet bool) error {
	pair, err := formula.Lookup(pairName)
	if err != nil {
		return err
	}

	domain := model.Domain{Min: flags.min, Max: flags.max, Points: flags.points}
	if !domainSet {
		// No explicit domain flags: use the sweep the pair was designed
		// around, which covers both the agreeing and diverging regimes.
		domain = pair.SuggestedDomain
	}

	VerboseLog("Comparing pair %q over %s with tolerance %g", pair.Name, domain, flags.relTol)

	result, err := formula.Compare(pair.Name, domain, flags.relTol)
	if err != nil {
		return err
	}

	printCompareResult(result)
	return nil
}

// printCompareResult outputs a comparison result in text or JSON format,
// depending on the global --json flag.
func printCompareResult(result *model.ComparisonResult) {
	if IsJSONOutput() {
		// The result type is designed for direct serialization; the
		// Points slice is always non-nil, so empty sweeps render as [].
		data, _ := json.MarshalIndent(result, "", "  ")
		fmt.Println(string(data))
		return
	}

	printCompareResultText(result)
}

// printCompareResultText outputs the point table and summary as
// human-readable text with aligned columns.
//
// The table format is:
//
//	X        A              B              ABS-ERR        REL-ERR
//	50       8.8818e-16     8.8818e-16     0              0
//	53       1.1102e-16     0              1.1102e-16     1            FLAGGED
func printCompareResultText(result *model.ComparisonResult) {
	fmt.Printf("pair: %s  domain: %s  tolerance: %g\n\n",
		result.PairName, result.Domain, result.RelTolerance)

	fmt.Printf("%-10s %-14s %-14s %-14s %-12s %s\n",
		"X", "A", "B", "ABS-ERR", "REL-ERR", "")

	for _, p := range result.Points {
		marker := ""
		if p.Flagged {
			marker = "FLAGGED"
		}
		fmt.Printf("%-10.4g %-14.6g %-14.6g %-14.6g %-12s %s\n",
			p.X, p.A, p.B, p.AbsError, FormatRelError(p), marker)
	}

	fmt.Println()
	if result.FlaggedCount > 0 {
		fmt.Printf("%d of %d points flagged (first at x=%g); max abs error %.6g, max rel error %.6g\n",
			result.FlaggedCount, len(result.Points), result.FirstFlaggedX,
			result.MaxAbsError, result.MaxRelError)
	} else {
		fmt.Printf("no points flagged; max abs error %.6g, max rel error %.6g\n",
			result.MaxAbsError, result.MaxRelError)
	}
}

// FormatRelError renders a point's relative error for the text table.
// Points where the relative error is undefined (both formulas underflowed
// to zero, or a non-finite value appeared) render as "undefined" rather
// than a number.
//
// This function is exported for testing purposes (tested in compare_test.go).
func FormatRelError(p model.ComparisonPoint) string {
	if !p.RelDefined {
		return "undefined"
	}
	return fmt.Sprintf("%.6g", p.RelError)
}
