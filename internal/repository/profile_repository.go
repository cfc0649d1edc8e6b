package repository

import (
	"context"
	"database/sql"

	"github.com/gostudiom/learn-api/internal/access"
)

// ProfileRepo reads the subscription columns of the `profiles` table,
// which the billing system keeps up to date. It satisfies
// access.ProfileStore.
type ProfileRepo struct{ DB *sql.DB }

func NewProfileRepo(db *sql.DB) *ProfileRepo { return &ProfileRepo{DB: db} }

// GetSubscription returns a user's subscription tier and status. A user
// without a profile row is simply on the free tier; that is not an error.
func (r *ProfileRepo) GetSubscription(ctx context.Context, userID uint64) (access.Subscription, error) {
	var sub access.Subscription
	err := r.DB.QueryRowContext(ctx,
		`SELECT COALESCE(subscription_tier,'free'), COALESCE(subscription_status,'')
		 FROM profiles
		 WHERE user_id = $1
		 LIMIT 1`,
		userID).Scan(&sub.Tier, &sub.Status)
	if err == sql.ErrNoRows {
		return access.Subscription{Tier: "free"}, nil
	}
	if err != nil {
		return access.Subscription{}, err
	}
	return sub, nil
}
