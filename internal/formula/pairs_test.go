package formula

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/numlab/internal/model"
)

// TestLookup_Known verifies that every cataloged name resolves and the
// returned pair is fully populated.
func TestLookup_Known(t *testing.T) {
	for _, name := range Names() {
		p, err := Lookup(name)
		require.NoError(t, err, "built-in pair %q must resolve", name)

		assert.Equal(t, name, p.Name)
		assert.NotEmpty(t, p.Description)
		assert.NotNil(t, p.A)
		assert.NotNil(t, p.B)
		assert.NoError(t, p.SuggestedDomain.Validate(),
			"suggested domain for %q must itself validate", name)
	}
}

// TestLookup_Unknown verifies that an unknown name returns
// ErrUnknownPair and the message lists the valid names for the user.
func TestLookup_Unknown(t *testing.T) {
	_, err := Lookup("nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrUnknownPair)
	assert.Contains(t, err.Error(), "decay", "error should list valid pair names")
}

// TestNames_Sorted verifies the catalog listing order and content.
func TestNames_Sorted(t *testing.T) {
	names := Names()
	assert.Equal(t, []string{"decay", "expm1", "log1p", "sqrt-cancel"}, names)

	all := All()
	require.Len(t, all, len(names))
	for i, p := range all {
		assert.Equal(t, names[i], p.Name, "All must follow Names order")
	}
}

// TestCompare_SetsPairName verifies that registry-driven comparisons
// stamp the pair name onto the result for output layers.
func TestCompare_SetsPairName(t *testing.T) {
	result, err := Compare("decay", model.Domain{Min: 0, Max: 10, Points: 11}, model.DefaultRelTolerance)
	require.NoError(t, err)
	assert.Equal(t, "decay", result.PairName)
	require.Len(t, result.Points, 11)
}

// TestCompare_UnknownPair verifies error propagation from Lookup.
func TestCompare_UnknownPair(t *testing.T) {
	_, err := Compare("bogus", model.Domain{Min: 0, Max: 1, Points: 2}, 0.01)
	assert.ErrorIs(t, err, model.ErrUnknownPair)
}

// TestPairs_AgreeInStableRegime verifies that every pair's two
// formulations agree to well under the default tolerance across the low
// end of its suggested domain, where no cancellation has set in yet.
func TestPairs_AgreeInStableRegime(t *testing.T) {
	for _, p := range All() {
		// The stable regime: the first third of the suggested sweep.
		domain := model.Domain{
			Min:    p.SuggestedDomain.Min,
			Max:    p.SuggestedDomain.Min + (p.SuggestedDomain.Max-p.SuggestedDomain.Min)/3,
			Points: 10,
		}

		result, err := Compare(p.Name, domain, model.DefaultRelTolerance)
		require.NoError(t, err)
		assert.Zero(t, result.FlaggedCount,
			"pair %q should not diverge in its stable regime %s", p.Name, domain)
	}
}

// TestPairs_DecayDiverges verifies that the canonical pair is flagged
// across the cancellation regime of its suggested domain: past x=53 the
// naive form has lost every significant bit.
func TestPairs_DecayDiverges(t *testing.T) {
	p, err := Lookup("decay")
	require.NoError(t, err)

	result, err := Compare("decay", p.SuggestedDomain, model.DefaultRelTolerance)
	require.NoError(t, err)

	assert.Greater(t, result.FlaggedCount, 0, "the suggested sweep must cross into cancellation")
	assert.Equal(t, 53.0, result.FirstFlaggedX)
	assert.Greater(t, result.MaxRelError, 0.1)
}
