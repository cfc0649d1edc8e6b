package repository

import (
	"context"
	"database/sql"

	"github.com/gostudiom/learn-api/internal/model"
)

// SourceRepo reads the `regulation_sources` table of official source
// documents backing the research.
type SourceRepo struct{ DB *sql.DB }

func NewSourceRepo(db *sql.DB) *SourceRepo { return &SourceRepo{DB: db} }

// ListActiveByJurisdiction returns the active sources for a jurisdiction.
// Sources that went stale (status != 'active') are kept in the table for
// the research pipeline but never served.
func (r *SourceRepo) ListActiveByJurisdiction(ctx context.Context, jurisdictionID uint64) ([]model.RegulationSource, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, jurisdiction_id, title, url, source_type, status, last_checked_at
		 FROM regulation_sources
		 WHERE jurisdiction_id = $1 AND status = 'active'
		 ORDER BY id`,
		jurisdictionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.RegulationSource
	for rows.Next() {
		var s model.RegulationSource
		if err := rows.Scan(&s.ID, &s.JurisdictionID, &s.Title, &s.URL,
			&s.SourceType, &s.Status, &s.LastCheckedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
