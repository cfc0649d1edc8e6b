package regulation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gostudiom/learn-api/internal/model"
)

func TestGroupKnowledgeDisplayOrder(t *testing.T) {
	items := []model.RegulationKnowledge{
		{ID: 1, KnowledgeType: "penalty", Content: "fines up to $5,000"},
		{ID: 2, KnowledgeType: "eligibility", Content: "primary residence only"},
		{ID: 3, KnowledgeType: "fee", Content: "$250 application fee"},
		{ID: 4, KnowledgeType: "fee", Content: "$50 annual renewal"},
		{ID: 5, KnowledgeType: "tax", Content: "14% occupancy tax"},
	}
	groups := GroupKnowledge(items)
	require.Len(t, groups, 4)

	// display order: eligibility before fee before tax before penalty
	assert.Equal(t, KnowledgeEligibility, groups[0].Type)
	assert.Equal(t, KnowledgeFee, groups[1].Type)
	assert.Equal(t, KnowledgeTax, groups[2].Type)
	assert.Equal(t, KnowledgePenalty, groups[3].Type)

	// input order preserved within a group
	require.Len(t, groups[1].Items, 2)
	assert.Equal(t, uint64(3), groups[1].Items[0].ID)
	assert.Equal(t, uint64(4), groups[1].Items[1].ID)

	assert.Equal(t, "Fees & Costs", groups[1].Label)
}

func TestGroupKnowledgeDropsUnknownTypes(t *testing.T) {
	items := []model.RegulationKnowledge{
		{ID: 1, KnowledgeType: "rumor", Content: "heard from a neighbor"},
		{ID: 2, KnowledgeType: "safety", Content: "smoke detectors required"},
	}
	groups := GroupKnowledge(items)
	require.Len(t, groups, 1)
	assert.Equal(t, KnowledgeSafety, groups[0].Type)
}

func TestGroupKnowledgeEmpty(t *testing.T) {
	assert.Empty(t, GroupKnowledge(nil))
}

func TestKnowledgeLabel(t *testing.T) {
	assert.Equal(t, "Application Process", KnowledgeLabel(KnowledgeProcess))
	assert.Equal(t, "Exemptions", KnowledgeLabel(KnowledgeExemption))
	// unknown types fall back to the raw string
	assert.Equal(t, "rumor", KnowledgeLabel(KnowledgeType("rumor")))
}

func TestIsValidKnowledgeType(t *testing.T) {
	for _, typ := range []string{
		"eligibility", "exemption", "fee", "limit", "penalty",
		"process", "requirement", "safety", "tax",
	} {
		assert.True(t, IsValidKnowledgeType(typ), typ)
	}
	assert.False(t, IsValidKnowledgeType("rumor"))
	assert.False(t, IsValidKnowledgeType(""))
}
