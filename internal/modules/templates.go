package modules

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/capopt/platform/internal/catalog"
	"github.com/capopt/platform/internal/seeder"
	"github.com/capopt/platform/internal/store"
)

func seedTemplates(ctx context.Context, st *store.Store, opts *seeder.Options) (seeder.Result, error) {
	cat, err := catalog.Default()
	if err != nil {
		return seeder.Result{}, err
	}
	adminID, err := requireAdmin(ctx, st)
	if err != nil {
		return seeder.Result{}, err
	}

	var tally seeder.Tally
	for _, t := range cat.Templates {
		sections, err := json.Marshal(t.Sections)
		if err != nil {
			return tally.Partial(), fmt.Errorf("template %q: %w", t.Name, err)
		}

		var sector interface{}
		if t.Sector != "" {
			sector = t.Sector
		}

		out, err := st.Upsert(ctx, "canvas_templates", store.Key{"name": t.Name}, store.Record{
			"description":   t.Description,
			"industry":      t.Industry,
			"sector":        sector,
			"sections":      string(sections),
			"is_public":     t.Public,
			"created_by_id": adminID,
		})
		if err != nil {
			return tally.Partial(), fmt.Errorf("template %q: %w", t.Name, err)
		}
		tally.Add(out)
	}
	return tally.Result(fmt.Sprintf("%d canvas templates", len(cat.Templates))), nil
}
