package modules

import (
	"context"
	"fmt"

	"github.com/capopt/platform/internal/generator"
	"github.com/capopt/platform/internal/seeder"
	"github.com/capopt/platform/internal/store"
)

const canvasVersion = "1.0"

// seedFoundationCanvases gives every facility (or only opts.Facility) one
// business canvas classified by the enterprise industry and the facility
// commodity.
func seedFoundationCanvases(ctx context.Context, st *store.Store, opts *seeder.Options) (seeder.Result, error) {
	adminID, err := requireAdmin(ctx, st)
	if err != nil {
		return seeder.Result{}, err
	}

	facilities, err := selectFacilities(ctx, st, opts.Facility)
	if err != nil {
		return seeder.Result{}, err
	}

	industries, err := enterpriseIndustries(ctx, st)
	if err != nil {
		return seeder.Result{}, err
	}

	var tally seeder.Tally
	for _, f := range facilities {
		enterpriseID := f.String("enterprise_id")
		class := generator.Classification{
			Industry: industries[enterpriseID],
			Sector:   f.String("commodity"),
		}.Normalize()

		out, err := st.Upsert(ctx, "business_canvases",
			store.Key{"facility_id": f.String("id"), "name": canvasName(f.String("name"))},
			store.Record{
				"enterprise_id": enterpriseID,
				"description":   fmt.Sprintf("Business model for %s (%s)", f.String("name"), f.String("code")),
				"industry":      class.Industry,
				"sector":        class.Sector,
				"status":        "ACTIVE",
				"version":       canvasVersion,
				"is_active":     true,
				"created_by_id": adminID,
			})
		if err != nil {
			return tally.Partial(), fmt.Errorf("canvas for facility %s: %w", f.String("code"), err)
		}
		tally.Add(out)
	}

	return tally.Result(fmt.Sprintf("%d canvases", len(facilities))), nil
}

func canvasName(facility string) string {
	return facility + " Business Model Canvas"
}

func selectFacilities(ctx context.Context, st *store.Store, code string) ([]store.Row, error) {
	var where store.Key
	if code != "" {
		where = store.Key{"code": code}
	}
	rows, err := st.Select(ctx, "facilities", []string{"id", "enterprise_id", "code", "name", "commodity"}, where, "code")
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		if code != "" {
			return nil, fmt.Errorf("%w: facility %s", store.ErrMissingPrerequisite, code)
		}
		return nil, fmt.Errorf("%w: no facilities, seed the enterprise first", store.ErrMissingPrerequisite)
	}
	return rows, nil
}

// enterpriseIndustries maps enterprise id to industry code.
func enterpriseIndustries(ctx context.Context, st *store.Store) (map[string]string, error) {
	industries, err := st.Select(ctx, "industries", []string{"id", "code"}, nil)
	if err != nil {
		return nil, err
	}
	codes := make(map[string]string, len(industries))
	for _, r := range industries {
		codes[r.String("id")] = r.String("code")
	}

	enterprises, err := st.Select(ctx, "enterprises", []string{"id", "industry_id"}, nil)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(enterprises))
	for _, r := range enterprises {
		out[r.String("id")] = codes[r.String("industry_id")]
	}
	return out, nil
}
