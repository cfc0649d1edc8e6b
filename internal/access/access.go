// Package access classifies viewers into regulation access tiers and
// answers whether a viewer may see full content for a given market.
//
// Three tiers exist:
//
//	public – no session; sees only the SEO layer (summary, badges, flags).
//	free   – logged in without an active paid plan; full content for ONE
//	         market of their choice, locked in on first visit.
//	pro    – active paid plan; full access to every market plus the
//	         step-by-step application guides.
//
// Access is recomputed from the stores on every request and never cached;
// the free tier's selected market is the only persisted state. On any
// store failure the resolver degrades to the most restrictive applicable
// answer rather than granting access.
package access

import (
	"context"
	"log"
)

// Tier is a viewer's regulation access level.
type Tier string

const (
	TierPublic Tier = "public"
	TierFree   Tier = "free"
	TierPro    Tier = "pro"
)

// paidTiers are the subscription tiers that unlock pro access when the
// subscription status is active.
var paidTiers = map[string]bool{
	"starter": true,
	"pro":     true,
}

// Access is the resolved capability set for one request. It is derived,
// never persisted; SelectedMarket is empty for everyone except free-tier
// users who have locked in a market.
type Access struct {
	Tier                    Tier   `json:"tier"`
	UserID                  uint64 `json:"-"`
	CanViewFullContent      bool   `json:"can_view_full_content"`
	CanViewApplicationSteps bool   `json:"can_view_application_steps"`
	CanViewAllMarkets       bool   `json:"can_view_all_markets"`
	SelectedMarket          string `json:"selected_market,omitempty"`
}

// Subscription is the billing state read from the profile store.
type Subscription struct {
	Tier   string
	Status string
}

// ProfileStore reads a user's subscription state.
type ProfileStore interface {
	GetSubscription(ctx context.Context, userID uint64) (Subscription, error)
}

// SettingStore reads and writes the free tier's selected market. An empty
// slug from GetSelectedMarket means the user has not chosen a market yet.
// UpsertSelectedMarket is a last-write-wins upsert keyed by user id, so
// concurrent calls for the same user are safe without extra locking.
type SettingStore interface {
	GetSelectedMarket(ctx context.Context, userID uint64) (string, error)
	UpsertSelectedMarket(ctx context.Context, userID uint64, slug string) error
}

// Resolver computes Access values from the profile and setting stores.
// Publish, when set, is invoked after a market is locked in; failures
// there are ignored since the event is informational.
type Resolver struct {
	Profiles ProfileStore
	Settings SettingStore
	Publish  func(ctx context.Context, userID uint64, slug string, tier Tier)
}

// NewResolver builds a Resolver over the given stores.
func NewResolver(profiles ProfileStore, settings SettingStore) *Resolver {
	return &Resolver{Profiles: profiles, Settings: settings}
}

// Resolve classifies the viewer identified by userID (0 means no session).
// Store read failures degrade: an unreadable subscription counts as free,
// an unreadable setting counts as no market selected. Resolve never
// returns an error; the worst outcome of a failure is under-disclosure.
func (r *Resolver) Resolve(ctx context.Context, userID uint64) Access {
	if userID == 0 {
		return Access{Tier: TierPublic}
	}

	var sub Subscription
	if s, err := r.Profiles.GetSubscription(ctx, userID); err == nil {
		sub = s
	} else {
		log.Printf("access: subscription lookup failed for user %d: %v", userID, err)
	}

	if paidTiers[sub.Tier] && sub.Status == "active" {
		return Access{
			Tier:                    TierPro,
			UserID:                  userID,
			CanViewFullContent:      true,
			CanViewApplicationSteps: true,
			CanViewAllMarkets:       true,
		}
	}

	selected := ""
	if m, err := r.Settings.GetSelectedMarket(ctx, userID); err == nil {
		selected = m
	} else {
		log.Printf("access: selected market lookup failed for user %d: %v", userID, err)
	}

	return Access{
		Tier:               TierFree,
		UserID:             userID,
		CanViewFullContent: true,
		SelectedMarket:     selected,
	}
}

// CanAccessMarket reports whether the viewer may see full content for the
// market identified by slug. Pro bypasses every restriction, public never
// sees full content, and free sees exactly one market: the first one they
// visit (no selection yet) or the one already locked in.
func CanAccessMarket(a Access, slug string) bool {
	if a.CanViewAllMarkets {
		return true
	}
	if a.Tier == TierPublic {
		return false
	}
	return a.SelectedMarket == "" || a.SelectedMarket == slug
}

// Result reports the outcome of a market selection write. Failures are
// carried as data instead of an error so the page layer can decide whether
// to block or proceed.
type Result struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// SetFreeUserMarket locks in a free user's market. The underlying write is
// an idempotent upsert; once a market is set the caller must not offer a
// different one without an upgrade (the write-once rule is enforced at the
// handler layer, which can see the previously resolved Access).
func (r *Resolver) SetFreeUserMarket(ctx context.Context, userID uint64, slug string) Result {
	if err := r.Settings.UpsertSelectedMarket(ctx, userID, slug); err != nil {
		log.Printf("access: set market failed for user %d: %v", userID, err)
		return Result{Success: false, Error: err.Error()}
	}
	if r.Publish != nil {
		r.Publish(ctx, userID, slug, TierFree)
	}
	return Result{Success: true}
}
