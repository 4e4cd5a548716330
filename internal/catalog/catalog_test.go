package catalog

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.NotEmpty(t, c.Industries)
	assert.NotEmpty(t, c.CriticalControls)

	var admin bool
	for _, u := range c.Users {
		if u.Email == "admin@capopt.com" && u.Role == "ADMIN" {
			admin = true
		}
	}
	assert.True(t, admin, "catalog must define the admin user")

	primary := 0
	for _, e := range c.Enterprises {
		if !e.Sample {
			primary++
		}
	}
	assert.Positive(t, primary, "at least one enterprise must not be sample-only")
}

func TestDefaultCatalogNaturalKeysAreUnique(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, u := range c.Users {
		assert.False(t, seen[u.Email], "duplicate user %s", u.Email)
		seen[u.Email] = true
	}
	seen = map[string]bool{}
	for _, cc := range c.CriticalControls {
		assert.False(t, seen[cc.Name], "duplicate control %s", cc.Name)
		seen[cc.Name] = true
	}
	for _, e := range c.Enterprises {
		codes := map[string]bool{}
		for _, f := range e.Facilities {
			assert.False(t, codes[f.Code], "duplicate facility %s", f.Code)
			codes[f.Code] = true
		}
	}
}

const minimal = `
users: [{email: a@b.com, name: A, role: ADMIN}]
industries: [{code: MINING_METALS, name: Mining, category: EXTRACTIVE, sectors: [{code: GOLD, name: Gold, type: PRIMARY}]}]
facility_types: [{code: OPEN_PIT_MINE, name: Pit, category: MINING}]
operational_streams: [{code: MINING, name: Mining, category: EXTRACTION}]
regulatory_frameworks: [{code: WHS, name: WHS, jurisdiction: AU, category: SAFETY}]
risk_categories: [{name: Safety}]
enterprises:
  - abn: "1"
    name: E
    legal_name: E Pty Ltd
    industry: MINING_METALS
    sector: GOLD
    facilities: [{code: F1, name: F, type: OPEN_PIT_MINE, commodity: GOLD, status: ACTIVE}]
`

func TestLoadRejectsUnknownRiskCategory(t *testing.T) {
	fsys := fstest.MapFS{
		"data/base.yaml": {Data: []byte(minimal + `
critical_controls:
  - {name: C, risk_category: Missing, control_type: PREVENTIVE, effectiveness: EFFECTIVE, compliance_status: COMPLIANT, priority: HIGH}
`)},
	}
	_, err := Load(fsys, "data")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown risk category")
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	fsys := fstest.MapFS{
		"data/base.yaml": {Data: []byte(minimal + "\nsurprise: true\n")},
	}
	_, err := Load(fsys, "data")
	require.Error(t, err)
}

func TestLoadRejectsInvalidEnum(t *testing.T) {
	fsys := fstest.MapFS{
		"data/base.yaml": {Data: []byte(minimal + `
critical_controls:
  - {name: C, risk_category: Safety, control_type: MAGIC, effectiveness: EFFECTIVE, compliance_status: COMPLIANT, priority: HIGH}
`)},
	}
	_, err := Load(fsys, "data")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ControlType")
}

func TestLoadMergesFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"data/a.yaml": {Data: []byte(minimal)},
		"data/b.yaml": {Data: []byte(`
critical_controls:
  - {name: C, risk_category: Safety, control_type: PREVENTIVE, effectiveness: EFFECTIVE, compliance_status: COMPLIANT, priority: HIGH}
`)},
		"data/readme.txt": {Data: []byte("ignored")},
	}
	c, err := Load(fsys, "data")
	require.NoError(t, err)
	assert.Len(t, c.CriticalControls, 1)
	assert.Len(t, c.Enterprises, 1)

	e, ok := c.Enterprise("1")
	require.True(t, ok)
	assert.Equal(t, "E Pty Ltd", e.LegalName)
}
