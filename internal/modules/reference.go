package modules

import (
	"context"
	"fmt"

	"github.com/capopt/platform/internal/catalog"
	"github.com/capopt/platform/internal/seeder"
	"github.com/capopt/platform/internal/store"
)

func seedIndustries(ctx context.Context, st *store.Store, opts *seeder.Options) (seeder.Result, error) {
	cat, err := catalog.Default()
	if err != nil {
		return seeder.Result{}, err
	}

	var tally seeder.Tally
	sectors := 0
	for _, ind := range cat.Industries {
		out, err := st.Upsert(ctx, "industries", store.Key{"code": ind.Code}, store.Record{
			"name":        ind.Name,
			"description": ind.Description,
			"category":    ind.Category,
		})
		if err != nil {
			return tally.Partial(), fmt.Errorf("industry %s: %w", ind.Code, err)
		}
		tally.Add(out)

		for _, s := range ind.Sectors {
			sout, err := st.Upsert(ctx, "sectors", store.Key{"industry_id": out.ID, "code": s.Code}, store.Record{
				"name":         s.Name,
				"sector_type":  s.Type,
				"description":  s.Description,
				"risk_profile": s.RiskProfile,
			})
			if err != nil {
				return tally.Partial(), fmt.Errorf("sector %s/%s: %w", ind.Code, s.Code, err)
			}
			tally.Add(sout)
			sectors++
		}
	}

	return tally.Result(fmt.Sprintf("%d industries, %d sectors", len(cat.Industries), sectors)), nil
}

func seedFacilityTypes(ctx context.Context, st *store.Store, opts *seeder.Options) (seeder.Result, error) {
	cat, err := catalog.Default()
	if err != nil {
		return seeder.Result{}, err
	}

	var tally seeder.Tally
	for _, ft := range cat.FacilityTypes {
		out, err := st.Upsert(ctx, "facility_types", store.Key{"code": ft.Code}, store.Record{
			"name":         ft.Name,
			"category":     ft.Category,
			"description":  ft.Description,
			"risk_profile": ft.RiskProfile,
		})
		if err != nil {
			return tally.Partial(), fmt.Errorf("facility type %s: %w", ft.Code, err)
		}
		tally.Add(out)
	}
	return tally.Result(fmt.Sprintf("%d facility types", len(cat.FacilityTypes))), nil
}

func seedOperationalStreams(ctx context.Context, st *store.Store, opts *seeder.Options) (seeder.Result, error) {
	cat, err := catalog.Default()
	if err != nil {
		return seeder.Result{}, err
	}

	var tally seeder.Tally
	for _, s := range cat.OperationalStreams {
		out, err := st.Upsert(ctx, "operational_streams", store.Key{"code": s.Code}, store.Record{
			"name":        s.Name,
			"category":    s.Category,
			"description": s.Description,
		})
		if err != nil {
			return tally.Partial(), fmt.Errorf("operational stream %s: %w", s.Code, err)
		}
		tally.Add(out)
	}
	return tally.Result(fmt.Sprintf("%d operational streams", len(cat.OperationalStreams))), nil
}

func seedRegulatoryFrameworks(ctx context.Context, st *store.Store, opts *seeder.Options) (seeder.Result, error) {
	cat, err := catalog.Default()
	if err != nil {
		return seeder.Result{}, err
	}

	var tally seeder.Tally
	for _, f := range cat.RegulatoryFrameworks {
		out, err := st.Upsert(ctx, "regulatory_frameworks", store.Key{"code": f.Code}, store.Record{
			"name":         f.Name,
			"jurisdiction": f.Jurisdiction,
			"category":     f.Category,
			"description":  f.Description,
		})
		if err != nil {
			return tally.Partial(), fmt.Errorf("regulatory framework %s: %w", f.Code, err)
		}
		tally.Add(out)
	}
	return tally.Result(fmt.Sprintf("%d regulatory frameworks", len(cat.RegulatoryFrameworks))), nil
}
