package model

import "time"

// Jurisdiction represents a geographic entity (city, county or state) for
// which short-term rental regulations may be documented, as stored in the
// `jurisdictions` table. Rows are created and maintained by an external
// research pipeline; this service only ever reads them.
//
// Fields:
//  ID               – primary key identifier of the jurisdiction.
//  Slug             – stable URL slug (e.g. "miami-beach-fl").
//  Name             – display name (e.g. "Miami Beach").
//  FullName         – full legal name, may be empty.
//  StateCode        – two-letter state code (e.g. "FL").
//  StateName        – full state name (e.g. "Florida").
//  JurisdictionType – "city", "county" or "state".
//  Population       – population count, nil when unknown.
//  CoverageStatus   – research completeness ("none", "partial", "full", "verified").
//  CreatedAt        – timestamp of creation.
type Jurisdiction struct {
	ID               uint64    // jurisdictions.id
	Slug             string    // jurisdictions.slug
	Name             string    // jurisdictions.name
	FullName         string    // jurisdictions.full_name
	StateCode        string    // jurisdictions.state_code
	StateName        string    // jurisdictions.state_name
	JurisdictionType string    // jurisdictions.jurisdiction_type
	Population       *int64    // jurisdictions.population (nullable)
	CoverageStatus   string    // jurisdictions.coverage_status
	CreatedAt        time.Time // jurisdictions.created_at
}

// MarketListing pairs a jurisdiction with its regulation record (if any) for
// directory views. Regulation is nil when no regulation row exists yet; the
// strictness engine treats that as fully permissive.
type MarketListing struct {
	Jurisdiction Jurisdiction
	Regulation   *Regulation
}
