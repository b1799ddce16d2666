package report

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tm-migrator/internal/sentinel"
)

func sample() Counts {
	return Counts{
		Territory:          10,
		AssignmentRule:     4,
		AssignmentRuleItem: 9,
		UserAssignment:     12,
		RecordShare:        3,
		SharingRules:       2,
	}
}

func TestCompareAllMatch(t *testing.T) {
	r := Compare(sample(), sample())

	assert.True(t, r.AllMatch(), spew.Sdump(r))
	require.NoError(t, r.Err())
	assert.Len(t, r.Checks, len(Kinds))
	assert.False(t, r.Diagnostics.HasWarnings())
}

func TestCompareTerritoryShortfall(t *testing.T) {
	actual := sample()
	actual.Territory = 8

	r := Compare(sample(), actual)

	assert.False(t, r.AllMatch())
	assert.False(t, r.Match(KindTerritory), spew.Sdump(r))

	for _, kind := range Kinds[1:] {
		assert.True(t, r.Match(kind), "kind %s should match", kind)
	}

	c, ok := r.Check(KindTerritory)
	require.True(t, ok)
	assert.Equal(t, Check{Kind: KindTerritory, Expected: 10, Actual: 8}, c)

	mismatches := r.Diagnostics.ByCode("count_mismatch")
	require.Len(t, mismatches, 1)
	assert.Equal(t, KindTerritory, mismatches[0].Kind)
	assert.False(t, r.Diagnostics.HasErrors())

	assert.Equal(t, []string{KindTerritory}, r.Mismatched())
	assert.Equal(t, actual, r.Actual())
	assert.ErrorIs(t, r.Err(), sentinel.ErrCountMismatch)
}

func TestMatchUnknownKind(t *testing.T) {
	r := Compare(sample(), sample())
	assert.False(t, r.Match("bogus"))
}

func TestCountsTotal(t *testing.T) {
	assert.Equal(t, 40, sample().Total())
	assert.Equal(t, 0, sample().Get("bogus"))
}
