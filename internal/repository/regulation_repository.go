package repository

import (
	"context"
	"database/sql"

	"github.com/gostudiom/learn-api/internal/model"
)

// RegulationRepo reads the `regulations` table. The nested JSONB columns
// are decoded into the typed structures in internal/model; a column that
// is NULL or fails to decode simply stays nil, per the "missing data is
// unknown, never fatal" contract.
type RegulationRepo struct{ DB *sql.DB }

func NewRegulationRepo(db *sql.DB) *RegulationRepo { return &RegulationRepo{DB: db} }

// GetByJurisdiction fetches the regulation record for a jurisdiction.
// Returns (nil, nil) when no regulation exists yet; callers render the
// permissive default in that case.
func (r *RegulationRepo) GetByJurisdiction(ctx context.Context, jurisdictionID uint64) (*model.Regulation, error) {
	var (
		reg        model.Regulation
		regJSON    [5][]byte
		listJSON   [2][]byte
		summary    sql.NullString
		plain      sql.NullString
		confidence sql.NullFloat64
		status     sql.NullString
		updatedAt  sql.NullTime
	)
	err := r.DB.QueryRowContext(ctx,
		`SELECT id, jurisdiction_id, registration, eligibility, limits, taxes, penalties,
		        summary, plain_english, key_gotchas, application_steps,
		        confidence_score, status, updated_at
		 FROM regulations
		 WHERE jurisdiction_id = $1
		 LIMIT 1`,
		jurisdictionID).
		Scan(&reg.ID, &reg.JurisdictionID,
			&regJSON[0], &regJSON[1], &regJSON[2], &regJSON[3], &regJSON[4],
			&summary, &plain, &listJSON[0], &listJSON[1],
			&confidence, &status, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	decodeJSONB(regJSON[0], &reg.Registration)
	decodeJSONB(regJSON[1], &reg.Eligibility)
	decodeJSONB(regJSON[2], &reg.Limits)
	decodeJSONB(regJSON[3], &reg.Taxes)
	decodeJSONB(regJSON[4], &reg.Penalties)
	decodeJSONB(listJSON[0], &reg.KeyGotchas)
	decodeJSONB(listJSON[1], &reg.ApplicationSteps)
	if summary.Valid {
		reg.Summary = &summary.String
	}
	if plain.Valid {
		reg.PlainEnglish = &plain.String
	}
	if confidence.Valid {
		reg.ConfidenceScore = &confidence.Float64
	}
	if status.Valid {
		reg.Status = &status.String
	}
	if updatedAt.Valid {
		reg.UpdatedAt = updatedAt.Time
	}
	return &reg, nil
}
