package modules

import (
	"context"
	"fmt"

	"github.com/capopt/platform/internal/catalog"
	"github.com/capopt/platform/internal/seeder"
	"github.com/capopt/platform/internal/store"
)

// seedEnterprise writes each enterprise with its facilities and
// organisational structure. Sample enterprises need IncludeSampleData.
func seedEnterprise(ctx context.Context, st *store.Store, opts *seeder.Options) (seeder.Result, error) {
	cat, err := catalog.Default()
	if err != nil {
		return seeder.Result{}, err
	}
	adminID, err := requireAdmin(ctx, st)
	if err != nil {
		return seeder.Result{}, err
	}

	var tally seeder.Tally
	seeded, facilities := 0, 0
	for _, e := range cat.Enterprises {
		if e.Sample && !opts.IncludeSampleData {
			continue
		}

		industryID, err := st.Require(ctx, "industries", store.Key{"code": e.Industry}, "industry")
		if err != nil {
			return tally.Partial(), err
		}

		out, err := st.Upsert(ctx, "enterprises", store.Key{"abn": e.ABN}, store.Record{
			"name":          e.Name,
			"legal_name":    e.LegalName,
			"industry_id":   industryID,
			"sector_code":   e.Sector,
			"address":       e.Address,
			"created_by_id": adminID,
		})
		if err != nil {
			return tally.Partial(), fmt.Errorf("enterprise %s: %w", e.Name, err)
		}
		tally.Add(out)
		seeded++

		if err := seedFacilities(ctx, st, out.ID, e.Facilities, &tally); err != nil {
			return tally.Partial(), err
		}
		facilities += len(e.Facilities)

		if err := seedBusinessUnits(ctx, st, out.ID, e.BusinessUnits, &tally); err != nil {
			return tally.Partial(), err
		}
	}

	return tally.Result(fmt.Sprintf("%d enterprises, %d facilities", seeded, facilities)), nil
}

func seedFacilities(ctx context.Context, st *store.Store, enterpriseID string, facilities []catalog.Facility, tally *seeder.Tally) error {
	typeIDs := make(map[string]string)
	for _, f := range facilities {
		typeID, ok := typeIDs[f.Type]
		if !ok {
			var err error
			typeID, err = st.Require(ctx, "facility_types", store.Key{"code": f.Type}, "facility type")
			if err != nil {
				return err
			}
			typeIDs[f.Type] = typeID
		}

		out, err := st.Upsert(ctx, "facilities", store.Key{"enterprise_id": enterpriseID, "code": f.Code}, store.Record{
			"facility_type_id": typeID,
			"name":             f.Name,
			"location":         f.Location,
			"commodity":        f.Commodity,
			"status":           f.Status,
			"capacity":         f.Capacity,
		})
		if err != nil {
			return fmt.Errorf("facility %s: %w", f.Code, err)
		}
		tally.Add(out)
	}
	return nil
}

func seedBusinessUnits(ctx context.Context, st *store.Store, enterpriseID string, units []catalog.BusinessUnit, tally *seeder.Tally) error {
	for _, bu := range units {
		out, err := st.Upsert(ctx, "business_units", store.Key{"enterprise_id": enterpriseID, "code": bu.Code}, store.Record{
			"name":        bu.Name,
			"unit_type":   bu.Type,
			"description": bu.Description,
		})
		if err != nil {
			return fmt.Errorf("business unit %s: %w", bu.Code, err)
		}
		tally.Add(out)

		for _, d := range bu.Departments {
			dout, err := st.Upsert(ctx, "departments", store.Key{"business_unit_id": out.ID, "code": d.Code}, store.Record{
				"name":            d.Name,
				"department_type": d.Type,
			})
			if err != nil {
				return fmt.Errorf("department %s/%s: %w", bu.Code, d.Code, err)
			}
			tally.Add(dout)
		}
	}
	return nil
}
