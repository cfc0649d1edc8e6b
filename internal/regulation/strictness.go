// Package regulation derives display-ready facts from a jurisdiction's
// regulation record: a three-level strictness rating, public-safe boolean
// flags, and formatting helpers. Every function in this package accepts
// partially populated data and treats any missing field as "unknown"
// rather than failing; the record's nested structures are all optional.
package regulation

import "github.com/gostudiom/learn-api/internal/model"

// Strictness is a qualitative rating of how restrictive a jurisdiction's
// STR rules are.
type Strictness string

const (
	Strict     Strictness = "strict"
	Moderate   Strictness = "moderate"
	Permissive Strictness = "permissive"
)

// Meta carries display metadata for a strictness level.
type Meta struct {
	Label       string `json:"label"`
	Description string `json:"description"`
}

// StrictnessMeta maps each level to its display metadata.
var StrictnessMeta = map[Strictness]Meta{
	Strict:     {Label: "Strict", Description: "Heavy restrictions on STR operations"},
	Moderate:   {Label: "Moderate", Description: "Some restrictions with clear permit process"},
	Permissive: {Label: "Permissive", Description: "Relatively few restrictions on STR operations"},
}

// ExtractFee returns the registration fee, preferring the city level over
// the county level. A city fee always wins when both are present, even a
// zero fee. Returns nil when neither level specifies a fee.
func ExtractFee(reg *model.Registration) *float64 {
	if reg == nil {
		return nil
	}
	if reg.City != nil && reg.City.Fee != nil {
		return reg.City.Fee
	}
	if reg.County != nil && reg.County.Fee != nil {
		return reg.County.Fee
	}
	return nil
}

// ExtractMaxFine returns the larger of the city and county maximum fines.
// Unlike fees there is no city precedence; the operator is exposed to
// whichever fine is worse. Returns nil when neither level specifies a fine.
func ExtractMaxFine(pen *model.Penalties) *float64 {
	if pen == nil {
		return nil
	}
	var cityFine, countyFine float64
	if pen.City != nil && pen.City.MaxFine != nil {
		cityFine = *pen.City.MaxFine
	}
	if pen.County != nil && pen.County.MaxFine != nil {
		countyFine = *pen.County.MaxFine
	}
	max := cityFine
	if countyFine > max {
		max = countyFine
	}
	if max > 0 {
		return &max
	}
	return nil
}

// HasNightCap reports whether an annual night cap applies at either level.
// The cap's value is irrelevant here; presence alone counts.
func HasNightCap(lim *model.Limits) bool {
	if lim == nil {
		return false
	}
	return (lim.City != nil && lim.City.NightsPerYear != nil) ||
		(lim.County != nil && lim.County.NightsPerYear != nil)
}

// IsPrimaryResidenceRequired reports whether the property must be the
// operator's primary residence. The eligibility record is checked first,
// then the city and county registration levels; the first true wins.
func IsPrimaryResidenceRequired(elig *model.Eligibility, reg *model.Registration) bool {
	if elig != nil && elig.PrimaryResidenceRequired != nil && *elig.PrimaryResidenceRequired {
		return true
	}
	if reg != nil {
		if reg.City != nil && reg.City.PrimaryResidenceRequired != nil && *reg.City.PrimaryResidenceRequired {
			return true
		}
		if reg.County != nil && reg.County.PrimaryResidenceRequired != nil && *reg.County.PrimaryResidenceRequired {
			return true
		}
	}
	return false
}

// IsPermitRequired reports whether a permit or license is required at
// either level.
func IsPermitRequired(reg *model.Registration) bool {
	if reg == nil {
		return false
	}
	return (reg.City != nil && reg.City.Required != nil && *reg.City.Required) ||
		(reg.County != nil && reg.County.Required != nil && *reg.County.Required)
}

// TotalTaxRate returns the precomputed total tax rate, preferring the city
// total over the county total. The state sales tax is never used as a
// fallback; it is informational only.
func TotalTaxRate(taxes *model.Taxes) *float64 {
	if taxes == nil {
		return nil
	}
	if taxes.TotalTaxRateCity != nil {
		return taxes.TotalTaxRateCity
	}
	if taxes.TotalTaxRateCounty != nil {
		return taxes.TotalTaxRateCounty
	}
	return nil
}

// DeriveStrictness rates a regulation record on a fixed additive score:
//
//	fee > 500             +2   (else fee > 100  +1)
//	night cap present     +2
//	primary residence     +2
//	max fine >= 10000     +2   (else fine >= 1000  +1)
//	permit required       +1
//
// Score >= 5 is strict, >= 2 moderate, otherwise permissive. A nil
// regulation is permissive. The breakpoints are a fixed contract; existing
// ratings across the directory depend on them staying put.
func DeriveStrictness(r *model.Regulation) Strictness {
	if r == nil {
		return Permissive
	}

	score := 0

	if fee := ExtractFee(r.Registration); fee != nil {
		if *fee > 500 {
			score += 2
		} else if *fee > 100 {
			score += 1
		}
	}

	if HasNightCap(r.Limits) {
		score += 2
	}

	if IsPrimaryResidenceRequired(r.Eligibility, r.Registration) {
		score += 2
	}

	if fine := ExtractMaxFine(r.Penalties); fine != nil {
		if *fine >= 10000 {
			score += 2
		} else if *fine >= 1000 {
			score += 1
		}
	}

	if IsPermitRequired(r.Registration) {
		score += 1
	}

	if score >= 5 {
		return Strict
	}
	if score >= 2 {
		return Moderate
	}
	return Permissive
}

// Flags bundles the public-safe facts shown on the ungated SEO layer of a
// market page. GotchaCount is supplied by the caller (the length of the
// gotcha list the viewer may not be allowed to read).
type Flags struct {
	PermitRequired       bool    `json:"permit_required"`
	NightLimitsApply     bool    `json:"night_limits_apply"`
	PrimaryResidenceOnly bool    `json:"primary_residence_only"`
	TotalTaxRate         *string `json:"total_tax_rate"`
	GotchaCount          int     `json:"gotcha_count"`
}

// ExtractPublicFlags derives the public flag set from a regulation record.
// A nil regulation yields the zero flag set.
func ExtractPublicFlags(r *model.Regulation, gotchaCount int) Flags {
	if r == nil {
		return Flags{}
	}
	return Flags{
		PermitRequired:       IsPermitRequired(r.Registration),
		NightLimitsApply:     HasNightCap(r.Limits),
		PrimaryResidenceOnly: IsPrimaryResidenceRequired(r.Eligibility, r.Registration),
		TotalTaxRate:         FormatTaxRate(TotalTaxRate(r.Taxes)),
		GotchaCount:          gotchaCount,
	}
}

// STRsAllowed reports whether short-term rentals are allowed at all.
// Absence of data means "assume allowed"; only an explicit prohibition
// flips this to false. Note the asymmetry with access gating, which fails
// closed: content display defaults permissive, monetization defaults
// strict.
func STRsAllowed(r *model.Regulation) bool {
	if r == nil {
		return true
	}
	if r.Status != nil && (*r.Status == "prohibited" || *r.Status == "banned") {
		return false
	}
	if r.Registration != nil {
		if lv := r.Registration.City; lv != nil && lv.Allowed != nil && !*lv.Allowed {
			return false
		}
		if lv := r.Registration.County; lv != nil && lv.Allowed != nil && !*lv.Allowed {
			return false
		}
	}
	return true
}

// PermitName returns the display name of the required permit, preferring
// the city level, then the county, then a generic default.
func PermitName(reg *model.Registration) string {
	if reg != nil {
		if reg.City != nil && reg.City.PermitName != nil && *reg.City.PermitName != "" {
			return *reg.City.PermitName
		}
		if reg.County != nil && reg.County.PermitName != nil && *reg.County.PermitName != "" {
			return *reg.County.PermitName
		}
	}
	return "STR Permit"
}

// ProcessingTime returns the expected permit processing time, city first.
func ProcessingTime(reg *model.Registration) *string {
	if reg == nil {
		return nil
	}
	if reg.City != nil && reg.City.ProcessingTime != nil && *reg.City.ProcessingTime != "" {
		return reg.City.ProcessingTime
	}
	if reg.County != nil && reg.County.ProcessingTime != nil && *reg.County.ProcessingTime != "" {
		return reg.County.ProcessingTime
	}
	return nil
}

// RequiredDocuments merges the city and county document lists, city first,
// dropping duplicates while preserving order.
func RequiredDocuments(reg *model.Registration) []string {
	if reg == nil {
		return nil
	}
	seen := make(map[string]bool)
	var out []string
	appendDocs := func(docs []string) {
		for _, d := range docs {
			if !seen[d] {
				seen[d] = true
				out = append(out, d)
			}
		}
	}
	if reg.City != nil {
		appendDocs(reg.City.RequiredDocuments)
	}
	if reg.County != nil {
		appendDocs(reg.County.RequiredDocuments)
	}
	return out
}
