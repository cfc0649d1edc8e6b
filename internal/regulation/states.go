package regulation

import (
	"sort"
	"strings"

	"github.com/gostudiom/learn-api/internal/model"
)

// stateNames maps USPS state codes to full names, including DC and the
// territories that appear in the jurisdictions table.
var stateNames = map[string]string{
	"AL": "Alabama", "AK": "Alaska", "AZ": "Arizona", "AR": "Arkansas",
	"CA": "California", "CO": "Colorado", "CT": "Connecticut", "DE": "Delaware",
	"FL": "Florida", "GA": "Georgia", "HI": "Hawaii", "ID": "Idaho",
	"IL": "Illinois", "IN": "Indiana", "IA": "Iowa", "KS": "Kansas",
	"KY": "Kentucky", "LA": "Louisiana", "ME": "Maine", "MD": "Maryland",
	"MA": "Massachusetts", "MI": "Michigan", "MN": "Minnesota", "MS": "Mississippi",
	"MO": "Missouri", "MT": "Montana", "NE": "Nebraska", "NV": "Nevada",
	"NH": "New Hampshire", "NJ": "New Jersey", "NM": "New Mexico", "NY": "New York",
	"NC": "North Carolina", "ND": "North Dakota", "OH": "Ohio", "OK": "Oklahoma",
	"OR": "Oregon", "PA": "Pennsylvania", "RI": "Rhode Island", "SC": "South Carolina",
	"SD": "South Dakota", "TN": "Tennessee", "TX": "Texas", "UT": "Utah",
	"VT": "Vermont", "VA": "Virginia", "WA": "Washington", "WV": "West Virginia",
	"WI": "Wisconsin", "WY": "Wyoming", "DC": "District of Columbia",
	"PR": "Puerto Rico", "VI": "Virgin Islands", "GU": "Guam",
}

// StateName resolves a state code to its full name. Unknown codes come
// back unchanged rather than erroring; the directory should still render
// if the research pipeline ever ships an unexpected code.
func StateName(code string) string {
	if name, ok := stateNames[strings.ToUpper(code)]; ok {
		return name
	}
	return code
}

// StateGroup is one state's slice of the market directory.
type StateGroup struct {
	StateCode string
	StateName string
	Markets   []model.MarketListing
}

// GroupByState buckets directory listings by state code and returns the
// groups sorted by state name. Listing order within a group is preserved
// from the input (the directory query orders by population).
func GroupByState(listings []model.MarketListing) []StateGroup {
	index := make(map[string]int)
	var groups []StateGroup
	for _, l := range listings {
		code := l.Jurisdiction.StateCode
		i, ok := index[code]
		if !ok {
			i = len(groups)
			index[code] = i
			groups = append(groups, StateGroup{
				StateCode: code,
				StateName: l.Jurisdiction.StateName,
			})
		}
		groups[i].Markets = append(groups[i].Markets, l)
	}
	sort.Slice(groups, func(a, b int) bool {
		return groups[a].StateName < groups[b].StateName
	})
	return groups
}
