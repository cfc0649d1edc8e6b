package model

import "time"

// User represents an application user record as stored in the `users`
// table. The json tags are omitted because these structs are used
// internally by the repository layer; handlers define separate response
// types with appropriate JSON tags.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Email        – unique email address.
//  PasswordHash – bcrypt hashed password.
//  IsActive     – whether the account is active.
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type User struct {
	ID           uint64    // users.id
	Email        string    // users.email
	PasswordHash string    // users.password_hash
	IsActive     bool      // users.is_active
	CreatedAt    time.Time // users.created_at
	UpdatedAt    time.Time // users.updated_at
}

// Profile mirrors the subscription columns of the `profiles` table, which
// is written by the billing system and read here to classify viewers into
// access tiers. SubscriptionTier is "free", "starter" or "pro";
// SubscriptionStatus is the billing status string (e.g. "active",
// "past_due", "canceled").
type Profile struct {
	UserID             uint64 // profiles.user_id
	SubscriptionTier   string // profiles.subscription_tier
	SubscriptionStatus string // profiles.subscription_status
}

// UserSetting models a row in the `user_settings` table. The only setting
// this service touches is the free tier's selected regulation market, which
// is written once when a free user first views full content for a market
// and gates every later visit.
//
// Fields:
//  UserID         – owner of the settings row (primary key).
//  SelectedMarket – jurisdiction slug locked in by a free user; empty when
//                   the user has not chosen a market yet.
//  UpdatedAt      – timestamp of last update.
type UserSetting struct {
	UserID         uint64    // user_settings.user_id
	SelectedMarket string    // user_settings.selected_regulation_market
	UpdatedAt      time.Time // user_settings.updated_at
}

// RefreshToken models an entry in the `refresh_tokens` table. Each refresh
// token belongs to a user; only its SHA-256 hash is stored.
type RefreshToken struct {
	ID        uint64     // refresh_tokens.id
	UserID    uint64     // refresh_tokens.user_id
	TokenHash string     // refresh_tokens.token_hash
	ExpiresAt time.Time  // refresh_tokens.expires_at
	RevokedAt *time.Time // refresh_tokens.revoked_at (nullable)
	CreatedAt time.Time  // refresh_tokens.created_at
}
