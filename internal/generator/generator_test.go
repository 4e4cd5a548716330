package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   Classification
		want Classification
	}{
		{Classification{"mining_metals", "copper"}, Classification{"MINING_METALS", "COPPER"}},
		{Classification{"MINING_METALS", "Iron Ore"}, Classification{"MINING_METALS", "IRON_ORE"}},
		{Classification{"MINING_METALS", "iron-ore"}, Classification{"MINING_METALS", "IRON_ORE"}},
		{Classification{"", " au "}, Classification{"", "GOLD"}},
		{Classification{"", "Cu"}, Classification{"", "COPPER"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.in.Normalize(), "Normalize(%+v)", tt.in)
	}
}

func TestUnknownSectorFallsBackToGeneric(t *testing.T) {
	unknown := Classification{Industry: "AGRICULTURE", Sector: "WHEAT"}
	for _, section := range Sections {
		items, ok := ForSection(section, unknown)
		require.True(t, ok, section)
		assert.NotEmpty(t, items, section)
	}
	assert.Equal(t, valuePropositions[generic], ValuePropositions(unknown))
}

func TestLookupPrefersIndustryQualifiedKey(t *testing.T) {
	datasets := map[string][]Item{
		"ENERGY/COAL": {{Name: "Power station supply"}},
		"COAL":        {{Name: "Export coal"}},
		generic:       {{Name: "Generic"}},
	}

	assert.Equal(t, "Power station supply", lookup(datasets, Classification{"energy", "coal"})[0].Name)
	assert.Equal(t, "Export coal", lookup(datasets, Classification{"MINING_METALS", "thermal_coal"})[0].Name)
	assert.Equal(t, "Generic", lookup(datasets, Classification{"ENERGY", "GAS"})[0].Name)

	// the shipped datasets are sector keyed, so any industry gets them
	assert.Equal(t, valuePropositions["COPPER"], ValuePropositions(Classification{"AGRICULTURE", "COPPER"}))
}

func TestCommodityDatasets(t *testing.T) {
	for _, sector := range []string{"COAL", "COPPER", "GOLD", "IRON_ORE", "LITHIUM", "URANIUM"} {
		c := Classification{Industry: "MINING_METALS", Sector: sector}
		assert.Equal(t, valuePropositions[sector], ValuePropositions(c), sector)
		assert.Equal(t, customerSegments[sector], CustomerSegments(c), sector)
		assert.Equal(t, revenueStreams[sector], RevenueStreams(c), sector)
		// sections without commodity data use the generic set
		assert.Equal(t, keyResources[generic], KeyResources(c), sector)
	}
	assert.Equal(t, valuePropositions["IRON_ORE"], ValuePropositions(Classification{Sector: "iron ore"}))
}

func TestGeneratorsReturnFreshSlices(t *testing.T) {
	c := Classification{Sector: "COPPER"}
	first := ValuePropositions(c)
	first[0].Name = "mutated"

	second := ValuePropositions(c)
	assert.NotEqual(t, "mutated", second[0].Name)
}

func TestItemNamesAreUniquePerSection(t *testing.T) {
	for _, sector := range []string{"COAL", "COPPER", "GOLD", "IRON_ORE", "LITHIUM", "URANIUM", "OTHER"} {
		for _, section := range Sections {
			items, _ := ForSection(section, Classification{Sector: sector})
			seen := map[string]bool{}
			for _, item := range items {
				assert.False(t, seen[item.Name], "%s/%s duplicate %q", sector, section, item.Name)
				seen[item.Name] = true
				assert.NotEmpty(t, item.Priority)
			}
		}
	}
}

func TestForSectionUnknown(t *testing.T) {
	items, ok := ForSection("unknown", Classification{})
	assert.False(t, ok)
	assert.Nil(t, items)
}

func TestFakerIsDeterministic(t *testing.T) {
	a := NewFaker(DefaultSeed, "capopt.test").People(5)
	b := NewFaker(DefaultSeed, "capopt.test").People(5)
	assert.Equal(t, a, b)

	emails := map[string]bool{}
	for _, p := range a {
		assert.Contains(t, p.Email, "@capopt.test")
		assert.False(t, emails[p.Email], "duplicate email %s", p.Email)
		emails[p.Email] = true
	}
}
