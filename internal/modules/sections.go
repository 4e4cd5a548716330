package modules

import (
	"context"
	"fmt"

	"github.com/capopt/platform/internal/generator"
	"github.com/capopt/platform/internal/seeder"
	"github.com/capopt/platform/internal/store"
)

// sectionChunk returns the chunk function that fills one canvas section
// for every canvas from the generators.
func sectionChunk(section string) seeder.ChunkFunc {
	return func(ctx context.Context, st *store.Store, opts *seeder.Options) (seeder.Result, error) {
		canvases, err := selectCanvases(ctx, st, opts.Facility)
		if err != nil {
			return seeder.Result{}, err
		}

		var tally seeder.Tally
		for _, c := range canvases {
			class := generator.Classification{Industry: c.String("industry"), Sector: c.String("sector")}
			items, ok := generator.ForSection(section, class)
			if !ok {
				return tally.Partial(), fmt.Errorf("no generator for section %s", section)
			}

			for _, item := range items {
				out, err := st.Upsert(ctx, section,
					store.Key{"business_canvas_id": c.String("id"), "name": item.Name},
					store.Record{
						"description": item.Description,
						"category":    item.Category,
						"priority":    item.Priority,
					})
				if err != nil {
					return tally.Partial(), fmt.Errorf("%s %q: %w", section, item.Name, err)
				}
				tally.Add(out)
			}
		}

		return tally.Result(fmt.Sprintf("%d %s across %d canvases",
			tally.Created+tally.Updated, section, len(canvases))), nil
	}
}

func selectCanvases(ctx context.Context, st *store.Store, facility string) ([]store.Row, error) {
	var where store.Key
	if facility != "" {
		facilities, err := selectFacilities(ctx, st, facility)
		if err != nil {
			return nil, err
		}
		ids := make([]string, 0, len(facilities))
		for _, f := range facilities {
			ids = append(ids, f.String("id"))
		}
		where = store.Key{"facility_id": ids}
	}

	canvases, err := st.Select(ctx, "business_canvases", []string{"id", "industry", "sector"}, where, "name")
	if err != nil {
		return nil, err
	}
	if len(canvases) == 0 {
		return nil, fmt.Errorf("%w: no business canvases, seed foundation-canvases first", store.ErrMissingPrerequisite)
	}
	return canvases, nil
}
