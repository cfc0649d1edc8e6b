package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/lib/pq"

	"github.com/gostudiom/learn-api/internal/model"
)

// coveredStatuses are the coverage_status values for which a jurisdiction
// is considered researched enough to serve. Rows outside this set stay
// invisible to every endpoint.
var coveredStatuses = []string{"partial", "full", "verified"}

// JurisdictionRepo reads the `jurisdictions` table and its regulation
// join. All jurisdiction data is maintained by an external research
// pipeline; there are no write methods.
type JurisdictionRepo struct{ DB *sql.DB }

func NewJurisdictionRepo(db *sql.DB) *JurisdictionRepo { return &JurisdictionRepo{DB: db} }

// GetBySlug fetches a covered jurisdiction by its slug. Returns
// ErrJurisdictionNotFound when the slug is unknown or not yet covered.
func (r *JurisdictionRepo) GetBySlug(ctx context.Context, slug string) (model.Jurisdiction, error) {
	var j model.Jurisdiction
	var population sql.NullInt64
	var fullName sql.NullString
	err := r.DB.QueryRowContext(ctx,
		`SELECT id, slug, name, COALESCE(full_name,''), state_code, state_name,
		        jurisdiction_type, population, coverage_status, created_at
		 FROM jurisdictions
		 WHERE slug = $1 AND coverage_status = ANY($2)
		 LIMIT 1`,
		slug, pq.Array(coveredStatuses)).
		Scan(&j.ID, &j.Slug, &j.Name, &fullName, &j.StateCode, &j.StateName,
			&j.JurisdictionType, &population, &j.CoverageStatus, &j.CreatedAt)
	if err == sql.ErrNoRows {
		return model.Jurisdiction{}, ErrJurisdictionNotFound
	}
	if err != nil {
		return model.Jurisdiction{}, err
	}
	j.FullName = fullName.String
	if population.Valid {
		j.Population = &population.Int64
	}
	return j, nil
}

// directorySelect is the shared column list for listing queries: the
// jurisdiction plus the regulation fields the directory needs for
// strictness derivation and card display.
const directorySelect = `
	SELECT j.id, j.slug, j.name, COALESCE(j.full_name,''), j.state_code, j.state_name,
	       j.jurisdiction_type, j.population, j.coverage_status, j.created_at,
	       r.id, r.registration, r.eligibility, r.limits, r.taxes, r.penalties,
	       r.summary, r.confidence_score, r.status, r.updated_at
	FROM jurisdictions j
	LEFT JOIN regulations r ON r.jurisdiction_id = j.id`

// ListDirectory returns every covered jurisdiction with its regulation,
// most populous first, for the market directory.
func (r *JurisdictionRepo) ListDirectory(ctx context.Context) ([]model.MarketListing, error) {
	rows, err := r.DB.QueryContext(ctx,
		directorySelect+`
		 WHERE j.coverage_status = ANY($1)
		 ORDER BY j.population DESC NULLS LAST, j.name ASC`,
		pq.Array(coveredStatuses))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanListings(rows)
}

// ListRelated returns up to limit covered jurisdictions in the same state,
// excluding one jurisdiction (the page currently shown), most populous
// first. Used for the "other markets in this state" sidebar.
func (r *JurisdictionRepo) ListRelated(ctx context.Context, stateCode string, excludeID uint64, limit int) ([]model.MarketListing, error) {
	rows, err := r.DB.QueryContext(ctx,
		directorySelect+`
		 WHERE j.coverage_status = ANY($1) AND j.state_code = $2 AND j.id <> $3
		 ORDER BY j.population DESC NULLS LAST, j.name ASC
		 LIMIT $4`,
		pq.Array(coveredStatuses), stateCode, excludeID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanListings(rows)
}

// SearchByName finds covered jurisdictions whose name, full name or state
// name matches the query, most populous first.
func (r *JurisdictionRepo) SearchByName(ctx context.Context, q string, limit int) ([]model.MarketListing, error) {
	pattern := "%" + q + "%"
	rows, err := r.DB.QueryContext(ctx,
		directorySelect+`
		 WHERE j.coverage_status = ANY($1)
		   AND (j.name ILIKE $2 OR j.full_name ILIKE $2 OR j.state_name ILIKE $2)
		 ORDER BY j.population DESC NULLS LAST, j.name ASC
		 LIMIT $3`,
		pq.Array(coveredStatuses), pattern, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanListings(rows)
}

// scanListings scans directorySelect rows. The regulation side of the join
// is nullable; a jurisdiction without a regulation row yields a listing
// with a nil Regulation.
func scanListings(rows *sql.Rows) ([]model.MarketListing, error) {
	var out []model.MarketListing
	for rows.Next() {
		var (
			j          model.Jurisdiction
			population sql.NullInt64
			regID      sql.NullInt64
			regJSON    [5][]byte
			summary    sql.NullString
			confidence sql.NullFloat64
			status     sql.NullString
			updatedAt  sql.NullTime
		)
		err := rows.Scan(&j.ID, &j.Slug, &j.Name, &j.FullName, &j.StateCode, &j.StateName,
			&j.JurisdictionType, &population, &j.CoverageStatus, &j.CreatedAt,
			&regID, &regJSON[0], &regJSON[1], &regJSON[2], &regJSON[3], &regJSON[4],
			&summary, &confidence, &status, &updatedAt)
		if err != nil {
			return nil, err
		}
		if population.Valid {
			j.Population = &population.Int64
		}

		listing := model.MarketListing{Jurisdiction: j}
		if regID.Valid {
			reg := &model.Regulation{
				ID:             uint64(regID.Int64),
				JurisdictionID: j.ID,
			}
			decodeJSONB(regJSON[0], &reg.Registration)
			decodeJSONB(regJSON[1], &reg.Eligibility)
			decodeJSONB(regJSON[2], &reg.Limits)
			decodeJSONB(regJSON[3], &reg.Taxes)
			decodeJSONB(regJSON[4], &reg.Penalties)
			if summary.Valid {
				reg.Summary = &summary.String
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
			listing.Regulation = reg
		}
		out = append(out, listing)
	}
	return out, rows.Err()
}

// decodeJSONB unmarshals a nullable JSONB column into dst. A NULL column
// or malformed JSON leaves dst untouched: a fact we cannot read is a fact
// we do not have, never a failed page.
func decodeJSONB(data []byte, dst any) {
	if len(data) == 0 {
		return
	}
	_ = json.Unmarshal(data, dst)
}
