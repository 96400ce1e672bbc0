package formula

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/mmr-tortoise/numlab/internal/model"
	"github.com/mmr-tortoise/numlab/internal/numeric"
)

// Pair is one catalog entry: two formulas that are identical in infinite
// precision, with the stable evaluation as A and the cancellation-prone
// evaluation as B. The suggested domain covers the sweep from "both agree
// to a few ULPs" through the regime where B has lost every significant
// bit.
type Pair struct {
	// Name is the short identifier used on the command line and in
	// scenario files.
	Name string

	// Description is a one-line summary shown by the pairs command.
	Description string

	// A is the numerically stable formulation.
	A numeric.Formula

	// B is the mathematically equivalent but cancellation-prone
	// formulation.
	B numeric.Formula

	// SuggestedDomain is a sweep that shows both the agreeing and the
	// diverging regime for this pair.
	SuggestedDomain model.Domain
}

// pairs is the built-in catalog, keyed by Name. Registration happens
// statically here rather than via an init-time Register function: the
// catalog is closed, and a literal map keeps every entry visible in one
// place.
var pairs = map[string]Pair{
	"decay": {
		Name:        "decay",
		Description: "2^-x versus (1 + 2^-x) - 1, the canonical cancellation demo",
		A: func(x float64) float64 {
			return math.Exp2(-x)
		},
		B: func(x float64) float64 {
			return (1 + math.Exp2(-x)) - 1
		},
		// At x >= 53 the intermediate 1 + 2^-x rounds to exactly 1 and
		// B collapses to zero while A stays exact; past x = 1074 even A
		// underflows and both sides are zero.
		SuggestedDomain: model.Domain{Min: 0, Max: 70, Points: 71},
	},
	"expm1": {
		Name:        "expm1",
		Description: "Expm1(t) versus Exp(t) - 1 for t = 2^-x",
		A: func(x float64) float64 {
			return math.Expm1(math.Exp2(-x))
		},
		B: func(x float64) float64 {
			return math.Exp(math.Exp2(-x)) - 1
		},
		SuggestedDomain: model.Domain{Min: 0, Max: 60, Points: 61},
	},
	"log1p": {
		Name:        "log1p",
		Description: "Log1p(t) versus Log(1 + t) for t = 2^-x",
		A: func(x float64) float64 {
			return math.Log1p(math.Exp2(-x))
		},
		B: func(x float64) float64 {
			return math.Log(1 + math.Exp2(-x))
		},
		SuggestedDomain: model.Domain{Min: 0, Max: 60, Points: 61},
	},
	"sqrt-cancel": {
		Name:        "sqrt-cancel",
		Description: "t/(sqrt(1+t)+1) versus sqrt(1+t) - 1 for t = 2^-x",
		A: func(x float64) float64 {
			t := math.Exp2(-x)
			return t / (math.Sqrt(1+t) + 1)
		},
		B: func(x float64) float64 {
			return math.Sqrt(1+math.Exp2(-x)) - 1
		},
		SuggestedDomain: model.Domain{Min: 0, Max: 60, Points: 61},
	},
}

// Lookup resolves a pair by name. Unknown names return an error wrapping
// model.ErrUnknownPair that lists the valid names, so the CLI can show it
// to the user verbatim and map it to the right exit code via errors.Is.
func Lookup(name string) (Pair, error) {
	p, ok := pairs[name]
	if !ok {
		return Pair{}, fmt.Errorf("%w: %q (valid: %s)",
			model.ErrUnknownPair, name, strings.Join(Names(), ", "))
	}
	return p, nil
}

// Names returns the catalog's pair names in sorted order.
func Names() []string {
	names := make([]string, 0, len(pairs))
	for name := range pairs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns the catalog entries sorted by name, for listing.
func All() []Pair {
	all := make([]Pair, 0, len(pairs))
	for _, name := range Names() {
		all = append(all, pairs[name])
	}
	return all
}

// Compare runs the comparison harness over a named pair. Domain and
// tolerance follow the same validation rules as numeric.CompareFormulas;
// the returned result carries the pair's name.
func Compare(name string, domain model.Domain, relTolerance float64) (*model.ComparisonResult, error) {
	p, err := Lookup(name)
	if err != nil {
		return nil, err
	}

	result, err := numeric.CompareFormulas(domain, p.A, p.B, relTolerance)
	if err != nil {
		return nil, err
	}
	result.PairName = p.Name
	return result, nil
}
