// Package cli — roundoff.go implements the "numlab roundoff" command.
//
// The roundoff command prints the canned IEEE-754 rounding
// demonstrations: decimal expressions a reader would expect to be exact,
// together with the values double precision actually produces. All
// values are computed live, not quoted.
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/numlab/internal/model"
	"github.com/mmr-tortoise/numlab/internal/numeric"
)

// NewRoundoffCommand creates the "roundoff" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewRoundoffCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "roundoff",
		Short: "Show classic IEEE-754 rounding surprises",
		Long: `Compute and print the classic double-precision rounding surprises:
the non-zero residual of 0.1 + 0.1 + 0.1 - 0.3, the failing equality
(1 - 0.7) == 0.3 and its integer-scaled fix, machine epsilon, and the
vanishing half-epsilon addition.

Examples:
  numlab roundoff
  numlab roundoff --json`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			printRoundoffExamples(numeric.RoundoffExamples())
			return nil
		},
	}
}

// printRoundoffExamples outputs the demonstrations in text or JSON
// format, depending on the global --json flag.
func printRoundoffExamples(examples []model.RoundoffExample) {
	if IsJSONOutput() {
		type resultJSON struct {
			Examples []model.RoundoffExample `json:"examples"`
		}
		// Use an empty slice instead of nil to ensure JSON output shows []
		// instead of null if the example list is ever empty.
		result := resultJSON{Examples: make([]model.RoundoffExample, 0, len(examples))}
		result.Examples = append(result.Examples, examples...)

		data, _ := json.MarshalIndent(result, "", "  ")
		fmt.Println(string(data))
		return
	}

	for _, ex := range examples {
		fmt.Printf("%-24s = %s\n", ex.Expression, ex.Value)
		fmt.Printf("%24s   %s\n", "", ex.Note)
	}
}
