package repository

import (
	"context"
	"database/sql"

	"github.com/gostudiom/learn-api/internal/model"
)

// KnowledgeRepo reads the `regulations_knowledge` table of atomic
// researched facts.
type KnowledgeRepo struct{ DB *sql.DB }

func NewKnowledgeRepo(db *sql.DB) *KnowledgeRepo { return &KnowledgeRepo{DB: db} }

// ListByJurisdiction returns all knowledge items for a jurisdiction,
// ordered by knowledge type so the grouping step sees stable input.
func (r *KnowledgeRepo) ListByJurisdiction(ctx context.Context, jurisdictionID uint64) ([]model.RegulationKnowledge, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, jurisdiction_id, regulation_id, knowledge_type, content, created_at
		 FROM regulations_knowledge
		 WHERE jurisdiction_id = $1
		 ORDER BY knowledge_type, id`,
		jurisdictionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.RegulationKnowledge
	for rows.Next() {
		var k model.RegulationKnowledge
		if err := rows.Scan(&k.ID, &k.JurisdictionID, &k.RegulationID,
			&k.KnowledgeType, &k.Content, &k.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, k)
	}
	return out, rows.Err()
}
