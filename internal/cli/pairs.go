// Package cli — pairs.go implements the "numlab pairs" command.
//
// The pairs command lists the built-in formula pairs with their
// descriptions and suggested domains, as a text table or JSON array.
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/numlab/internal/formula"
)

// NewPairsCommand creates the "pairs" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewPairsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pairs",
		Short: "List the built-in formula pairs",
		Long: `List every built-in formula pair with its description and the domain
its sweep was designed around. Pair names are accepted by the compare
command and by scenario files.

Examples:
  numlab pairs
  numlab pairs --json`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			printPairs(formula.All())
			return nil
		},
	}
}

// pairJSON is the JSON output structure for a single formula pair.
// The callables themselves are not serializable; the listing carries
// only name, description, and suggested domain.
type pairJSON struct {
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	DomainMin       float64 `json:"domainMin"`
	DomainMax       float64 `json:"domainMax"`
	DomainPoints    int     `json:"domainPoints"`
	SuggestedDomain string  `json:"suggestedDomain"`
}

// printPairs outputs the pair catalog in text or JSON format,
// depending on the global --json flag.
func printPairs(all []formula.Pair) {
	if IsJSONOutput() {
		type resultJSON struct {
			Pairs []pairJSON `json:"pairs"`
		}

		result := resultJSON{Pairs: make([]pairJSON, 0, len(all))}
		for _, p := range all {
			result.Pairs = append(result.Pairs, pairJSON{
				Name:            p.Name,
				Description:     p.Description,
				DomainMin:       p.SuggestedDomain.Min,
				DomainMax:       p.SuggestedDomain.Max,
				DomainPoints:    p.SuggestedDomain.Points,
				SuggestedDomain: p.SuggestedDomain.String(),
			})
		}

		data, _ := json.MarshalIndent(result, "", "  ")
		fmt.Println(string(data))
		return
	}

	fmt.Printf("%-14s %-14s %s\n", "NAME", "DOMAIN", "DESCRIPTION")
	for _, p := range all {
		fmt.Printf("%-14s %-14s %s\n", p.Name, p.SuggestedDomain, p.Description)
	}
}
