package model

import "time"

// RegulationKnowledge is an atomic researched fact about a jurisdiction's
// STR rules, stored in the `regulations_knowledge` table. Each item carries
// a knowledge type from a fixed set (see internal/regulation/knowledge.go)
// and free-text content.
type RegulationKnowledge struct {
	ID             uint64    // regulations_knowledge.id
	JurisdictionID uint64    // regulations_knowledge.jurisdiction_id
	RegulationID   uint64    // regulations_knowledge.regulation_id
	KnowledgeType  string    // regulations_knowledge.knowledge_type
	Content        string    // regulations_knowledge.content
	CreatedAt      time.Time // regulations_knowledge.created_at
}

// RegulationSource is an official source document backing the research for
// a jurisdiction, stored in the `regulation_sources` table. Only rows with
// status "active" are served.
type RegulationSource struct {
	ID             uint64    // regulation_sources.id
	JurisdictionID uint64    // regulation_sources.jurisdiction_id
	Title          string    // regulation_sources.title
	URL            string    // regulation_sources.url
	SourceType     string    // regulation_sources.source_type (e.g. "ordinance", "faq")
	Status         string    // regulation_sources.status
	LastCheckedAt  time.Time // regulation_sources.last_checked_at
}
