package modules

import (
	"context"
	"fmt"

	"github.com/capopt/platform/internal/catalog"
	"github.com/capopt/platform/internal/seeder"
	"github.com/capopt/platform/internal/store"
)

func seedControls(ctx context.Context, st *store.Store, opts *seeder.Options) (seeder.Result, error) {
	cat, err := catalog.Default()
	if err != nil {
		return seeder.Result{}, err
	}
	adminID, err := requireAdmin(ctx, st)
	if err != nil {
		return seeder.Result{}, err
	}

	var tally seeder.Tally
	for _, rc := range cat.RiskCategories {
		out, err := st.Upsert(ctx, "risk_categories", store.Key{"name": rc.Name}, store.Record{
			"description": rc.Description,
			"color":       rc.Color,
		})
		if err != nil {
			return tally.Partial(), fmt.Errorf("risk category %s: %w", rc.Name, err)
		}
		tally.Add(out)
	}

	for _, cc := range cat.CriticalControls {
		categoryID, err := st.Require(ctx, "risk_categories", store.Key{"name": cc.RiskCategory}, "risk category")
		if err != nil {
			return tally.Partial(), err
		}
		out, err := st.Upsert(ctx, "critical_controls", store.Key{"name": cc.Name}, store.Record{
			"description":       cc.Description,
			"risk_category_id":  categoryID,
			"control_type":      cc.ControlType,
			"effectiveness":     cc.Effectiveness,
			"compliance_status": cc.ComplianceStatus,
			"priority":          cc.Priority,
			"created_by_id":     adminID,
		})
		if err != nil {
			return tally.Partial(), fmt.Errorf("critical control %q: %w", cc.Name, err)
		}
		tally.Add(out)
	}

	return tally.Result(fmt.Sprintf("%d risk categories, %d critical controls",
		len(cat.RiskCategories), len(cat.CriticalControls))), nil
}
