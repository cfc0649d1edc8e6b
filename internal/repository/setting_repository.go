package repository

import (
	"context"
	"database/sql"
)

// SettingRepo reads and writes the `user_settings` table. The selected
// regulation market is the single piece of state the access tiering
// persists. It satisfies access.SettingStore.
type SettingRepo struct{ DB *sql.DB }

func NewSettingRepo(db *sql.DB) *SettingRepo { return &SettingRepo{DB: db} }

// GetSelectedMarket returns the market slug a free user locked in, or ""
// when the user has not chosen one yet (no row or NULL column).
func (r *SettingRepo) GetSelectedMarket(ctx context.Context, userID uint64) (string, error) {
	var slug sql.NullString
	err := r.DB.QueryRowContext(ctx,
		`SELECT selected_regulation_market FROM user_settings WHERE user_id = $1 LIMIT 1`,
		userID).Scan(&slug)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return slug.String, nil
}

// UpsertSelectedMarket stores the user's selected market. Last write wins:
// the row is keyed by user id, so concurrent calls need no transaction
// discipline. The write-once business rule lives above this layer.
func (r *SettingRepo) UpsertSelectedMarket(ctx context.Context, userID uint64, slug string) error {
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO user_settings (user_id, selected_regulation_market, updated_at)
		 VALUES ($1, $2, NOW())
		 ON CONFLICT (user_id) DO UPDATE
		 SET selected_regulation_market = EXCLUDED.selected_regulation_market,
		     updated_at = NOW()`,
		userID, slug)
	return err
}
