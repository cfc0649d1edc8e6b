package regulation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gostudiom/learn-api/internal/model"
)

func TestStateName(t *testing.T) {
	assert.Equal(t, "Texas", StateName("TX"))
	assert.Equal(t, "District of Columbia", StateName("DC"))
	assert.Equal(t, "California", StateName("ca")) // case-insensitive
	// unknown codes pass through unchanged
	assert.Equal(t, "ZZ", StateName("ZZ"))
}

func listing(slug, state, stateName string) model.MarketListing {
	return model.MarketListing{Jurisdiction: model.Jurisdiction{
		Slug: slug, StateCode: state, StateName: stateName,
	}}
}

func TestGroupByState(t *testing.T) {
	groups := GroupByState([]model.MarketListing{
		listing("austin", "TX", "Texas"),
		listing("denver", "CO", "Colorado"),
		listing("houston", "TX", "Texas"),
	})
	require.Len(t, groups, 2)

	// sorted by state name: Colorado before Texas
	assert.Equal(t, "CO", groups[0].StateCode)
	assert.Equal(t, "TX", groups[1].StateCode)

	// input order preserved within a group
	require.Len(t, groups[1].Markets, 2)
	assert.Equal(t, "austin", groups[1].Markets[0].Jurisdiction.Slug)
	assert.Equal(t, "houston", groups[1].Markets[1].Jurisdiction.Slug)
}

func TestGroupByStateEmpty(t *testing.T) {
	assert.Empty(t, GroupByState(nil))
}
