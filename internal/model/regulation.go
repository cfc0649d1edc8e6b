package model

import "time"

// Regulation mirrors a row of the `regulations` table. There is at most one
// regulation per jurisdiction. The nested structures below are stored as
// independently nullable JSONB columns filled in by the research pipeline,
// so every field at every nesting level may be absent. Consumers must treat
// a missing field as "this fact is unknown" and never fail because of it;
// the accessor functions in internal/regulation encode that contract.
//
// Fields:
//  ID               – primary key identifier.
//  JurisdictionID   – owning jurisdiction.
//  Registration     – per-level permit requirements (nullable).
//  Eligibility      – zoning and occupancy eligibility rules (nullable).
//  Limits           – per-level night caps and stay limits (nullable).
//  Taxes            – per-level tax rates plus precomputed totals (nullable).
//  Penalties        – per-level fine amounts (nullable).
//  Summary          – short public summary (nullable).
//  PlainEnglish     – long-form plain English guide (nullable).
//  KeyGotchas       – list of commonly missed requirements.
//  ApplicationSteps – ordered permit application steps.
//  ConfidenceScore  – research confidence in [0,1] (nullable).
//  Status           – "draft", "published", "archived", or an explicit
//                     prohibition marker such as "prohibited"/"banned".
//  UpdatedAt        – timestamp of last research update.
type Regulation struct {
	ID               uint64        // regulations.id
	JurisdictionID   uint64        // regulations.jurisdiction_id
	Registration     *Registration // regulations.registration (jsonb)
	Eligibility      *Eligibility  // regulations.eligibility (jsonb)
	Limits           *Limits       // regulations.limits (jsonb)
	Taxes            *Taxes        // regulations.taxes (jsonb)
	Penalties        *Penalties    // regulations.penalties (jsonb)
	Summary          *string       // regulations.summary
	PlainEnglish     *string       // regulations.plain_english
	KeyGotchas       []string      // regulations.key_gotchas (jsonb array)
	ApplicationSteps []string      // regulations.application_steps (jsonb array)
	ConfidenceScore  *float64      // regulations.confidence_score
	Status           *string       // regulations.status
	UpdatedAt        time.Time     // regulations.updated_at
}

// Registration holds per-level permit requirements. Either level may be
// absent when the corresponding government does not regulate STRs.
type Registration struct {
	City   *RegistrationLevel `json:"city,omitempty"`
	County *RegistrationLevel `json:"county,omitempty"`
}

// RegistrationLevel describes permit requirements at a single government
// level. All fields are optional.
type RegistrationLevel struct {
	Required                 *bool    `json:"required,omitempty"`
	Allowed                  *bool    `json:"allowed,omitempty"`
	Fee                      *float64 `json:"fee,omitempty"`
	PermitName               *string  `json:"permit_name,omitempty"`
	ProcessingTime           *string  `json:"processing_time,omitempty"`
	RequiredDocuments        []string `json:"required_documents,omitempty"`
	PrimaryResidenceRequired *bool    `json:"primary_residence_required,omitempty"`
}

// Eligibility describes who may operate an STR in the jurisdiction.
type Eligibility struct {
	PrimaryResidenceRequired *bool   `json:"primary_residence_required,omitempty"`
	ZoningRestrictions       *string `json:"zoning_restrictions,omitempty"`
	OwnerOccupiedOnly        *bool   `json:"owner_occupied_only,omitempty"`
	MaxOccupancy             *int    `json:"max_occupancy,omitempty"`
}

// Limits holds per-level rental limits.
type Limits struct {
	City   *LimitLevel `json:"city,omitempty"`
	County *LimitLevel `json:"county,omitempty"`
}

// LimitLevel describes rental limits at a single government level.
type LimitLevel struct {
	NightsPerYear *int `json:"nights_per_year,omitempty"`
	MinStayNights *int `json:"min_stay_nights,omitempty"`
	MaxStayNights *int `json:"max_stay_nights,omitempty"`
}

// Taxes holds tax rates that apply to STR revenue. The totals are
// precomputed by the research pipeline; StateSalesTax is informational only
// and is never used as a fallback for the totals.
type Taxes struct {
	TotalTaxRateCity   *float64 `json:"total_tax_rate_city,omitempty"`
	TotalTaxRateCounty *float64 `json:"total_tax_rate_county,omitempty"`
	StateSalesTax      *float64 `json:"state_sales_tax,omitempty"`
	OccupancyTax       *float64 `json:"occupancy_tax,omitempty"`
}

// Penalties holds per-level fine information for non-compliance.
type Penalties struct {
	City   *PenaltyLevel `json:"city,omitempty"`
	County *PenaltyLevel `json:"county,omitempty"`
}

// PenaltyLevel describes fines at a single government level.
type PenaltyLevel struct {
	MaxFine    *float64 `json:"max_fine,omitempty"`
	DailyFine  *float64 `json:"daily_fine,omitempty"`
	Escalation *string  `json:"escalation,omitempty"`
}
