// Package queue defines message payloads exchanged over the message broker.
package queue

// MarketSelectedEvent is published when a free user locks in their one
// regulation market. Downstream consumers use it for conversion analytics
// (a locked-in market is the strongest upgrade signal this product has)
// without querying the primary database.
type MarketSelectedEvent struct {
	UserID     uint64 `json:"user_id"`
	MarketSlug string `json:"market_slug"`
	Tier       string `json:"tier"`
	SelectedAt string `json:"selected_at"`
}
