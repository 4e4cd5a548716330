package modules

import (
	"context"
	"fmt"

	"github.com/capopt/platform/internal/catalog"
	"github.com/capopt/platform/internal/seeder"
	"github.com/capopt/platform/internal/store"
)

func seedOperational(ctx context.Context, st *store.Store, opts *seeder.Options) (seeder.Result, error) {
	cat, err := catalog.Default()
	if err != nil {
		return seeder.Result{}, err
	}
	adminID, err := requireAdmin(ctx, st)
	if err != nil {
		return seeder.Result{}, err
	}

	var tally seeder.Tally
	enterprises := make(map[string]string)
	for _, p := range cat.Processes {
		if e, ok := cat.Enterprise(p.Enterprise); ok && e.Sample && !opts.IncludeSampleData {
			continue
		}

		enterpriseID, ok := enterprises[p.Enterprise]
		if !ok {
			enterpriseID, err = st.Require(ctx, "enterprises", store.Key{"abn": p.Enterprise}, "enterprise")
			if err != nil {
				return tally.Partial(), err
			}
			enterprises[p.Enterprise] = enterpriseID
		}

		out, err := st.Upsert(ctx, "processes", store.Key{"enterprise_id": enterpriseID, "name": p.Name}, store.Record{
			"description":   p.Description,
			"category":      p.Category,
			"status":        p.Status,
			"priority":      p.Priority,
			"created_by_id": adminID,
		})
		if err != nil {
			return tally.Partial(), fmt.Errorf("process %q: %w", p.Name, err)
		}
		tally.Add(out)
	}

	return tally.Result(fmt.Sprintf("%d processes", tally.Created+tally.Updated)), nil
}
