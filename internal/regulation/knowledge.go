package regulation

import "github.com/gostudiom/learn-api/internal/model"

// KnowledgeType classifies an atomic researched fact. The set is fixed;
// the research pipeline rejects anything else at ingest.
type KnowledgeType string

const (
	KnowledgeEligibility KnowledgeType = "eligibility"
	KnowledgeExemption   KnowledgeType = "exemption"
	KnowledgeFee         KnowledgeType = "fee"
	KnowledgeLimit       KnowledgeType = "limit"
	KnowledgePenalty     KnowledgeType = "penalty"
	KnowledgeProcess     KnowledgeType = "process"
	KnowledgeRequirement KnowledgeType = "requirement"
	KnowledgeSafety      KnowledgeType = "safety"
	KnowledgeTax         KnowledgeType = "tax"
)

// knowledgeLabels maps each type to its section heading.
var knowledgeLabels = map[KnowledgeType]string{
	KnowledgeEligibility: "Eligibility",
	KnowledgeExemption:   "Exemptions",
	KnowledgeFee:         "Fees & Costs",
	KnowledgeLimit:       "Limits & Restrictions",
	KnowledgePenalty:     "Penalties",
	KnowledgeProcess:     "Application Process",
	KnowledgeRequirement: "Requirements",
	KnowledgeSafety:      "Safety Requirements",
	KnowledgeTax:         "Taxes",
}

// knowledgeDisplayOrder fixes the order sections appear in on a market
// page: who can operate, what they must do, what it costs, what limits
// apply, and finally what happens when they don't comply.
var knowledgeDisplayOrder = []KnowledgeType{
	KnowledgeEligibility,
	KnowledgeRequirement,
	KnowledgeProcess,
	KnowledgeFee,
	KnowledgeTax,
	KnowledgeLimit,
	KnowledgeSafety,
	KnowledgePenalty,
	KnowledgeExemption,
}

// KnowledgeLabel returns the section heading for a type, or the type
// string itself for anything outside the fixed set.
func KnowledgeLabel(t KnowledgeType) string {
	if label, ok := knowledgeLabels[t]; ok {
		return label
	}
	return string(t)
}

// IsValidKnowledgeType reports membership in the fixed type set.
func IsValidKnowledgeType(t string) bool {
	_, ok := knowledgeLabels[KnowledgeType(t)]
	return ok
}

// KnowledgeGroup is one displayed section of knowledge items.
type KnowledgeGroup struct {
	Type  KnowledgeType              `json:"type"`
	Label string                     `json:"label"`
	Items []model.RegulationKnowledge `json:"-"`
}

// GroupKnowledge buckets items by knowledge type and returns the non-empty
// groups in display order. Items of a type outside the fixed set are
// dropped; they have no section to live in. Input order is preserved
// within each group.
func GroupKnowledge(items []model.RegulationKnowledge) []KnowledgeGroup {
	buckets := make(map[KnowledgeType][]model.RegulationKnowledge)
	for _, item := range items {
		t := KnowledgeType(item.KnowledgeType)
		buckets[t] = append(buckets[t], item)
	}

	var groups []KnowledgeGroup
	for _, t := range knowledgeDisplayOrder {
		if bucket := buckets[t]; len(bucket) > 0 {
			groups = append(groups, KnowledgeGroup{
				Type:  t,
				Label: KnowledgeLabel(t),
				Items: bucket,
			})
		}
	}
	return groups
}
