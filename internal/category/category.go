// Package category maps between the six content category labels as stored
// in the database (Title Case with spaces, e.g. "Getting Started") and the
// kebab-case slugs used in URLs (e.g. "getting-started").
package category

import (
	"regexp"
	"strings"
)

// Canonical category labels as stored in the database.
const (
	GettingStarted        = "Getting Started"
	YourListing           = "Your Listing"
	PricingProfitability  = "Pricing & Profitability"
	HostingOperations     = "Hosting Operations"
	RegulationsCompliance = "Regulations & Compliance"
	GrowthMarketing       = "Growth & Marketing"
)

// categorySlugs maps a database label to its URL slug.
var categorySlugs = map[string]string{
	GettingStarted:        "getting-started",
	YourListing:           "your-listing",
	PricingProfitability:  "pricing-profitability",
	HostingOperations:     "hosting-operations",
	RegulationsCompliance: "regulations-compliance",
	GrowthMarketing:       "growth-marketing",
}

// slugCategories is the reverse mapping, URL slug to database label.
var slugCategories = map[string]string{
	"getting-started":        GettingStarted,
	"your-listing":           YourListing,
	"pricing-profitability":  PricingProfitability,
	"hosting-operations":     HostingOperations,
	"regulations-compliance": RegulationsCompliance,
	"growth-marketing":       GrowthMarketing,
}

// AllSlugs lists every valid category slug, in display order.
var AllSlugs = []string{
	"getting-started",
	"your-listing",
	"pricing-profitability",
	"hosting-operations",
	"regulations-compliance",
	"growth-marketing",
}

// Info carries display metadata for a category.
type Info struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Meta maps each category slug to its display metadata.
var Meta = map[string]Info{
	"getting-started": {
		Name:        GettingStarted,
		Description: "First property, platform basics, initial setup for new STR hosts",
		Icon:        "rocket",
	},
	"your-listing": {
		Name:        YourListing,
		Description: "Photos, descriptions, amenities, staging and optimization",
		Icon:        "home",
	},
	"pricing-profitability": {
		Name:        PricingProfitability,
		Description: "Rates, expenses, bookkeeping, taxes and revenue management",
		Icon:        "dollar-sign",
	},
	"hosting-operations": {
		Name:        HostingOperations,
		Description: "Cleaning, maintenance, guest communication and day-to-day hosting",
		Icon:        "settings",
	},
	"regulations-compliance": {
		Name:        RegulationsCompliance,
		Description: "Laws, permits, insurance, LLC and legal considerations",
		Icon:        "shield",
	},
	"growth-marketing": {
		Name:        GrowthMarketing,
		Description: "Direct booking, scaling, automation and marketing strategies",
		Icon:        "trending-up",
	},
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// ToSlug converts a database category label to its URL slug. An empty
// label yields an empty slug. Unknown labels fall back to lowercasing,
// replacing whitespace runs with hyphens and stripping ampersands. The
// ampersand is stripped, not replaced, so "Test & Category" becomes
// "test--category"; URLs in the wild depend on that exact artifact, so it
// must not be "fixed".
func ToSlug(label string) string {
	if label == "" {
		return ""
	}
	if slug, ok := categorySlugs[label]; ok {
		return slug
	}
	slug := whitespaceRun.ReplaceAllString(strings.ToLower(label), "-")
	return strings.ReplaceAll(slug, "&", "")
}

// FromSlug converts a URL slug back to the database category label.
// Unknown slugs are returned unchanged, not normalized.
func FromSlug(slug string) string {
	if label, ok := slugCategories[slug]; ok {
		return label
	}
	return slug
}

// IsValidSlug reports whether slug is one of the six known category slugs.
func IsValidSlug(slug string) bool {
	_, ok := slugCategories[slug]
	return ok
}
