package scenario

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/mmr-tortoise/numlab/internal/formula"
	"github.com/mmr-tortoise/numlab/internal/model"
)

// Scenario describes one named comparison run: a formula pair, the
// domain to sweep it over, and the relative tolerance for flagging.
type Scenario struct {
	// Name identifies the scenario in output. Must be non-empty and
	// unique within a file.
	Name string `json:"name" yaml:"name"`

	// Pair is the formula-pair name, resolved against the built-in
	// registry at validation time.
	Pair string `json:"pair" yaml:"pair"`

	// Domain is the sampling grid. If Points is omitted it stays zero
	// and fails validation, which is deliberate: a sweep without an
	// explicit resolution is probably a mistake.
	Domain model.Domain `json:"domain" yaml:"domain"`

	// RelTolerance is the flagging threshold. Zero means "unset" and is
	// replaced by model.DefaultRelTolerance during validation; an
	// explicit zero tolerance would flag every point with any rounding
	// noise at all, which no sweep wants.
	RelTolerance float64 `json:"relTolerance" yaml:"relTolerance"`
}

// File is the top-level structure of a scenario file.
type File struct {
	// Scenarios lists the runs in file order. Must be non-empty.
	Scenarios []Scenario `json:"scenarios" yaml:"scenarios"`
}

// Load reads a scenario file and parses it according to its extension.
//
// YAML files go straight through yaml.v3. JSON and JSONC files are
// comment-stripped with jsonc.ToJSON first and then parsed with the
// standard encoding/json, the same pipeline the file format was designed
// around. Unknown extensions are an error rather than a guess.
//
// Load parses only; call (*File).Validate before running anything.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file %s: %w", path, err)
	}

	var file File

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse scenario YAML %s: %w", path, err)
		}
	case ".json", ".jsonc":
		// Strip comments and trailing commas, then hand the clean bytes
		// to encoding/json.
		clean := jsonc.ToJSON(data)
		if err := json.Unmarshal(clean, &file); err != nil {
			return nil, fmt.Errorf("failed to parse scenario JSON %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported scenario file extension %q (supported: .yaml, .yml, .json, .jsonc)", ext)
	}

	return &file, nil
}

// Validate checks every scenario in the file and applies defaults.
//
// Checks performed:
//   - the file contains at least one scenario
//   - every scenario has a non-empty name, unique within the file
//   - every pair name resolves against the formula registry
//   - every domain validates
//   - tolerances are non-negative; zero is replaced with the default
//
// Validation stops at the first failure so the error points at exactly
// one scenario.
func (f *File) Validate() error {
	if len(f.Scenarios) == 0 {
		return fmt.Errorf("scenario file contains no scenarios")
	}

	seen := make(map[string]bool)

	for i := range f.Scenarios {
		s := &f.Scenarios[i]

		if s.Name == "" {
			return fmt.Errorf("scenario %d: name must not be empty", i+1)
		}
		if seen[s.Name] {
			return fmt.Errorf("scenario %q: duplicate scenario name", s.Name)
		}
		seen[s.Name] = true

		if _, err := formula.Lookup(s.Pair); err != nil {
			return fmt.Errorf("scenario %q: %w", s.Name, err)
		}

		if err := s.Domain.Validate(); err != nil {
			return fmt.Errorf("scenario %q: %w", s.Name, err)
		}

		if s.RelTolerance < 0 {
			return fmt.Errorf("scenario %q: %w: %g", s.Name, model.ErrInvalidTolerance, s.RelTolerance)
		}
		if s.RelTolerance == 0 {
			s.RelTolerance = model.DefaultRelTolerance
		}
	}

	return nil
}

// Run executes every scenario in file order and returns the results,
// one per scenario. The file must have been validated first; Run relies
// on Validate having resolved defaults and checked pair names.
func (f *File) Run() ([]*model.ComparisonResult, error) {
	results := make([]*model.ComparisonResult, 0, len(f.Scenarios))

	for _, s := range f.Scenarios {
		result, err := formula.Compare(s.Pair, s.Domain, s.RelTolerance)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
		}
		results = append(results, result)
	}

	return results, nil
}
