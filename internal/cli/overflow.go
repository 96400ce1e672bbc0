// Package cli — overflow.go implements the "numlab overflow" command.
//
// The overflow command adds two integers under two's-complement
// wraparound at a chosen bit width and compares the result against the
// arbitrary-precision sum, reporting whether wraparound occurred.
package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/numlab/internal/model"
	"github.com/mmr-tortoise/numlab/internal/numeric"
)

// overflowFlags holds the flag values for the overflow command.
type overflowFlags struct {
	width uint // --width: two's-complement bit width
}

// NewOverflowCommand creates the "overflow" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewOverflowCommand() *cobra.Command {
	flags := &overflowFlags{}

	cmd := &cobra.Command{
		Use:   "overflow <a> <b>",
		Short: "Check a fixed-width addition for wraparound",
		Long: `Add two signed integers under two's-complement wraparound at the given
bit width and compare against the arbitrary-precision result.

The canonical demonstration at width 64: the maximum representable value
plus one wraps to the minimum representable value.

Examples:
  numlab overflow 9223372036854775807 1
  numlab overflow --width 8 127 1
  numlab overflow --width 16 30000 10000 --json`,

		// Exactly two positional arguments: the operands.
		Args: cobra.ExactArgs(2),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runOverflow(args[0], args[1], flags)
		},
	}

	cmd.Flags().UintVar(&flags.width, "width", 64, "Two's-complement bit width (2-64)")

	return cmd
}

// runOverflow is the main logic function for the overflow command.
// It parses the operands, runs the checker, and prints the report.
func runOverflow(aStr, bStr string, flags *overflowFlags) error {
	a, err := strconv.ParseInt(aStr, 10, 64)
	if err != nil {
		return model.WrapCLIError(model.ExitInvalidArgument,
			fmt.Sprintf("invalid operand %q: must be a signed 64-bit integer", aStr), err)
	}
	b, err := strconv.ParseInt(bStr, 10, 64)
	if err != nil {
		return model.WrapCLIError(model.ExitInvalidArgument,
			fmt.Sprintf("invalid operand %q: must be a signed 64-bit integer", bStr), err)
	}

	VerboseLog("Checking %d + %d at width %d", a, b, flags.width)

	report, err := numeric.CheckOverflow(flags.width, a, b)
	if err != nil {
		return err // sentinel errors are mapped to exit codes in Execute
	}

	printOverflowReport(report)
	return nil
}

// printOverflowReport outputs the overflow report in text or JSON format,
// depending on the global --json flag.
func printOverflowReport(report *model.OverflowReport) {
	if IsJSONOutput() {
		data, _ := json.MarshalIndent(report, "", "  ")
		fmt.Println(string(data))
		return
	}

	fmt.Printf("width:      %d-bit signed (range %d to %d)\n",
		report.BitWidth, report.MinValue, report.MaxValue)
	fmt.Printf("operands:   %d + %d\n", report.A, report.B)
	fmt.Printf("wrapped:    %d\n", report.Wrapped)
	fmt.Printf("exact:      %s\n", report.Exact)

	if report.Overflowed {
		fmt.Println("overflow:   yes — the fixed-width result wrapped around")
	} else {
		fmt.Println("overflow:   no")
	}
}
