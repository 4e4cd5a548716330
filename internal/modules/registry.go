// Package modules holds the domain seed modules and the static chunk
// registry the orchestrator runs.
package modules

import (
	"fmt"
	"sort"
	"strings"

	"github.com/capopt/platform/internal/generator"
	"github.com/capopt/platform/internal/seeder"
)

const (
	ChunkUsers                = "users"
	ChunkIndustries           = "industries"
	ChunkFacilityTypes        = "facility-types"
	ChunkOperationalStreams   = "operational-streams"
	ChunkRegulatoryFrameworks = "regulatory-frameworks"
	ChunkEnterprise           = "enterprise"
	ChunkControls             = "controls"
	ChunkOperational          = "operational"
	ChunkFoundationCanvases   = "foundation-canvases"
	ChunkTemplates            = "templates"
)

// SectionChunk names the chunk that fills a canvas section table.
func SectionChunk(section string) string {
	return strings.ReplaceAll(section, "_", "-")
}

// Registry returns every chunk in declaration order.
func Registry() []seeder.Chunk {
	chunks := []seeder.Chunk{
		{
			Name:        ChunkUsers,
			Description: "Platform accounts and generated test users",
			Tables:      []string{"users"},
			Run:         seedUsers,
		},
		{
			Name:        ChunkIndustries,
			Description: "Industries and their sectors",
			Tables:      []string{"industries", "sectors"},
			Run:         seedIndustries,
		},
		{
			Name:        ChunkFacilityTypes,
			Description: "Facility type reference data",
			Tables:      []string{"facility_types"},
			Run:         seedFacilityTypes,
		},
		{
			Name:        ChunkOperationalStreams,
			Description: "Operational stream reference data",
			Tables:      []string{"operational_streams"},
			Run:         seedOperationalStreams,
		},
		{
			Name:        ChunkRegulatoryFrameworks,
			Description: "Regulatory framework reference data",
			Tables:      []string{"regulatory_frameworks"},
			Run:         seedRegulatoryFrameworks,
		},
		{
			Name:         ChunkEnterprise,
			Description:  "Demo enterprise, facilities, business units and departments",
			Dependencies: []string{ChunkUsers, ChunkIndustries, ChunkFacilityTypes},
			Tables:       []string{"enterprises", "facilities", "business_units", "departments"},
			Run:          seedEnterprise,
		},
		{
			Name:         ChunkControls,
			Description:  "Risk categories and critical controls",
			Dependencies: []string{ChunkUsers},
			Tables:       []string{"risk_categories", "critical_controls"},
			Run:          seedControls,
		},
		{
			Name:         ChunkOperational,
			Description:  "Operational processes",
			Dependencies: []string{ChunkUsers, ChunkEnterprise},
			Tables:       []string{"processes"},
			Run:          seedOperational,
		},
		{
			Name:         ChunkFoundationCanvases,
			Description:  "One business canvas per facility",
			Dependencies: []string{ChunkUsers, ChunkEnterprise},
			Tables:       []string{"business_canvases"},
			Run:          seedFoundationCanvases,
		},
	}

	for _, section := range generator.Sections {
		chunks = append(chunks, seeder.Chunk{
			Name:         SectionChunk(section),
			Description:  fmt.Sprintf("Canvas %s from the generators", section),
			Dependencies: []string{ChunkFoundationCanvases},
			Tables:       []string{section},
			Run:          sectionChunk(section),
		})
	}

	return append(chunks, seeder.Chunk{
		Name:         ChunkTemplates,
		Description:  "Reusable canvas templates",
		Dependencies: []string{ChunkUsers},
		Tables:       []string{"canvas_templates"},
		Run:          seedTemplates,
	})
}

const (
	StrategyFull       = "full"
	StrategyMasterData = "master-data"
	StrategyBMC        = "bmc"
	StrategyFacility   = "facility"
)

// Strategy returns the chunk names a named strategy runs. An empty result
// means every chunk.
func Strategy(name string) ([]string, error) {
	switch name {
	case "", StrategyFull:
		return nil, nil
	case StrategyMasterData:
		return []string{ChunkIndustries, ChunkFacilityTypes, ChunkOperationalStreams, ChunkRegulatoryFrameworks}, nil
	case StrategyBMC, StrategyFacility:
		names := []string{ChunkFoundationCanvases}
		for _, section := range generator.Sections {
			names = append(names, SectionChunk(section))
		}
		return names, nil
	default:
		return nil, fmt.Errorf("unknown strategy %q (available: %v)", name, Strategies())
	}
}

func Strategies() []string {
	names := []string{StrategyFull, StrategyMasterData, StrategyBMC, StrategyFacility}
	sort.Strings(names)
	return names
}

// Select narrows a strategy by an allow-list. With no strategy chunks the
// allow-list alone decides; with no allow-list the strategy is unchanged.
func Select(strategy, allow []string) ([]string, error) {
	if len(allow) == 0 {
		return strategy, nil
	}
	if len(strategy) == 0 {
		return allow, nil
	}
	allowed := make(map[string]bool, len(allow))
	for _, name := range allow {
		allowed[name] = true
	}
	var out []string
	for _, name := range strategy {
		if allowed[name] {
			out = append(out, name)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("none of %v is part of this strategy", allow)
	}
	return out, nil
}
