// Package generator produces Business Model Canvas section content for a
// facility's industry and sector. Generators are pure: they never touch the
// store and always return a non-empty, freshly allocated slice.
//
// Datasets are keyed by "INDUSTRY/SECTOR", then by sector alone, then
// GENERIC; the first key present wins. The shipped datasets are all mining
// sectors, so today the industry only matters for an industry-qualified
// entry.
package generator

import "strings"

// Canvas section names. They double as table names in the store.
const (
	ValuePropositionsSection = "value_propositions"
	CustomerSegmentsSection  = "customer_segments"
	ChannelsSection          = "channels"
	RevenueStreamsSection    = "revenue_streams"
	KeyResourcesSection      = "key_resources"
	KeyActivitiesSection     = "key_activities"
	KeyPartnershipsSection   = "key_partnerships"
	CostStructuresSection    = "cost_structures"
)

// Sections lists every canvas section in canvas order.
var Sections = []string{
	ValuePropositionsSection,
	CustomerSegmentsSection,
	ChannelsSection,
	RevenueStreamsSection,
	KeyResourcesSection,
	KeyActivitiesSection,
	KeyPartnershipsSection,
	CostStructuresSection,
}

const generic = "GENERIC"

type Item struct {
	Name        string
	Description string
	Category    string
	Priority    string
}

// Classification identifies which dataset a canvas draws from.
type Classification struct {
	Industry string
	Sector   string
}

var sectorAliases = map[string]string{
	"IRON ORE":           "IRON_ORE",
	"IRON-ORE":           "IRON_ORE",
	"IRONORE":            "IRON_ORE",
	"AU":                 "GOLD",
	"CU":                 "COPPER",
	"LI":                 "LITHIUM",
	"U":                  "URANIUM",
	"THERMAL_COAL":       "COAL",
	"METALLURGICAL_COAL": "COAL",
}

// Normalize upper-cases both fields and resolves sector aliases.
func (c Classification) Normalize() Classification {
	industry := strings.ToUpper(strings.TrimSpace(c.Industry))
	sector := strings.ToUpper(strings.TrimSpace(c.Sector))
	if alias, ok := sectorAliases[sector]; ok {
		sector = alias
	}
	return Classification{Industry: industry, Sector: sector}
}

func ValuePropositions(c Classification) []Item {
	return lookup(valuePropositions, c)
}

func CustomerSegments(c Classification) []Item {
	return lookup(customerSegments, c)
}

func Channels(c Classification) []Item {
	return lookup(channels, c)
}

func RevenueStreams(c Classification) []Item {
	return lookup(revenueStreams, c)
}

func KeyResources(c Classification) []Item {
	return lookup(keyResources, c)
}

func KeyActivities(c Classification) []Item {
	return lookup(keyActivities, c)
}

func KeyPartnerships(c Classification) []Item {
	return lookup(keyPartnerships, c)
}

func CostStructures(c Classification) []Item {
	return lookup(costStructures, c)
}

var bySection = map[string]func(Classification) []Item{
	ValuePropositionsSection: ValuePropositions,
	CustomerSegmentsSection:  CustomerSegments,
	ChannelsSection:          Channels,
	RevenueStreamsSection:    RevenueStreams,
	KeyResourcesSection:      KeyResources,
	KeyActivitiesSection:     KeyActivities,
	KeyPartnershipsSection:   KeyPartnerships,
	CostStructuresSection:    CostStructures,
}

// ForSection dispatches to the generator for section. Unknown sections
// return nil and false.
func ForSection(section string, c Classification) ([]Item, bool) {
	fn, ok := bySection[section]
	if !ok {
		return nil, false
	}
	return fn(c), true
}

func lookup(datasets map[string][]Item, c Classification) []Item {
	c = c.Normalize()
	items, ok := datasets[c.Industry+"/"+c.Sector]
	if !ok {
		items, ok = datasets[c.Sector]
	}
	if !ok {
		items = datasets[generic]
	}
	out := make([]Item, len(items))
	copy(out, items)
	return out
}
