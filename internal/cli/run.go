// Package cli — run.go implements the "numlab run" command.
//
// The run command executes a scenario file: a YAML or JSONC document
// naming one or more formula-pair sweeps with their domains and
// tolerances. Each scenario produces a summary line (or full JSON), and
// --fail-on-flagged turns any flagged point into a non-zero exit.
//
// Orchestration steps:
//  1. Load the scenario file (format chosen by extension)
//  2. Validate it (names, known pairs, domains, tolerances)
//  3. Run every scenario in file order
//  4. Output per-scenario summaries (text or JSON)
//  5. Map flagged points to the exit code when --fail-on-flagged is set
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/numlab/internal/model"
	"github.com/mmr-tortoise/numlab/internal/scenario"
)

// runFlags holds the flag values for the run command.
type runFlags struct {
	failOnFlagged bool // --fail-on-flagged: non-zero exit when points are flagged
}

// NewRunCommand creates the "run" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewRunCommand() *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:   "run <scenario-file>",
		Short: "Run the sweeps described in a scenario file",
		Long: `Load a scenario file (.yaml, .yml, .json, or .jsonc) and run every
sweep it describes. Each scenario names a formula pair, a domain, and an
optional relative tolerance (default 1%).

Example scenario file:

  scenarios:
    - name: cancellation-sweep
      pair: decay
      domain: {min: 0, max: 70, points: 71}
      relTolerance: 0.01

Examples:
  numlab run sweeps.yaml
  numlab run sweeps.jsonc --fail-on-flagged`,

		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenarios(args[0], flags)
		},
	}

	cmd.Flags().BoolVar(&flags.failOnFlagged, "fail-on-flagged", false,
		"Exit non-zero if any scenario produced flagged points")

	return cmd
}

// runScenarios is the main logic function for the run command.
func runScenarios(path string, flags *runFlags) error {
	// Step 1: Load the file. Read/parse failures map to the scenario
	// exit code so scripts can distinguish bad files from bad math.
	file, err := scenario.Load(path)
	if err != nil {
		return model.WrapCLIError(model.ExitScenarioError,
			fmt.Sprintf("cannot load scenario file %s", path), err)
	}
	VerboseLog("Loaded %d scenario(s) from %s", len(file.Scenarios), path)

	// Step 2: Validate before running anything, so a bad third scenario
	// doesn't leave the first two half-reported.
	if err := file.Validate(); err != nil {
		return model.WrapCLIError(model.ExitScenarioError,
			fmt.Sprintf("invalid scenario file %s", path), err)
	}

	// Step 3: Run every scenario in file order.
	results, err := file.Run()
	if err != nil {
		return err
	}

	// Step 4: Output.
	totalFlagged := printRunResults(file, results)

	// Step 5: Optional flagged-points exit code.
	if flags.failOnFlagged && totalFlagged > 0 {
		return model.NewCLIError(model.ExitFlaggedPoints,
			fmt.Sprintf("%d point(s) flagged across %d scenario(s)", totalFlagged, len(results)))
	}

	return nil
}

// runScenarioJSON is the JSON output structure for a single scenario's
// result in the run command. The full point list is included so JSON
// consumers get the same data the compare command would give them.
type runScenarioJSON struct {
	Name   string                  `json:"name"`
	Result *model.ComparisonResult `json:"result"`
}

// printRunResults outputs all scenario results and returns the total
// flagged-point count across scenarios.
func printRunResults(file *scenario.File, results []*model.ComparisonResult) int {
	totalFlagged := 0
	for _, r := range results {
		totalFlagged += r.FlaggedCount
	}

	if IsJSONOutput() {
		type resultJSON struct {
			Scenarios    []runScenarioJSON `json:"scenarios"`
			TotalFlagged int               `json:"totalFlagged"`
		}

		out := resultJSON{
			Scenarios:    make([]runScenarioJSON, 0, len(results)),
			TotalFlagged: totalFlagged,
		}
		for i, r := range results {
			out.Scenarios = append(out.Scenarios, runScenarioJSON{
				Name:   file.Scenarios[i].Name,
				Result: r,
			})
		}

		data, _ := json.MarshalIndent(out, "", "  ")
		fmt.Println(string(data))
		return totalFlagged
	}

	// Text format: one summary line per scenario.
	//
	//	SCENARIO             PAIR         DOMAIN         FLAGGED   MAX-REL-ERR
	//	cancellation-sweep   decay        [0, 70] x71    18/71     1
	fmt.Printf("%-20s %-12s %-14s %-9s %s\n",
		"SCENARIO", "PAIR", "DOMAIN", "FLAGGED", "MAX-REL-ERR")

	for i, r := range results {
		fmt.Printf("%-20s %-12s %-14s %-9s %.6g\n",
			file.Scenarios[i].Name,
			r.PairName,
			r.Domain,
			fmt.Sprintf("%d/%d", r.FlaggedCount, len(r.Points)),
			r.MaxRelError,
		)
	}

	return totalFlagged
}
