// Package catalog holds the literal datasets written by the seed modules.
// The data lives in embedded YAML files so the modules only carry logic.
package catalog

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var dataFS embed.FS

type User struct {
	Email string `yaml:"email" validate:"required,email"`
	Name  string `yaml:"name" validate:"required"`
	Role  string `yaml:"role" validate:"required,oneof=ADMIN MANAGER USER VIEWER"`
	Phone string `yaml:"phone"`
}

type Sector struct {
	Code        string `yaml:"code" validate:"required"`
	Name        string `yaml:"name" validate:"required"`
	Type        string `yaml:"type" validate:"required,oneof=PRIMARY SECONDARY SERVICES"`
	RiskProfile string `yaml:"risk_profile" validate:"omitempty,oneof=LOW MEDIUM HIGH EXTREME"`
	Description string `yaml:"description"`
}

type Industry struct {
	Code        string   `yaml:"code" validate:"required"`
	Name        string   `yaml:"name" validate:"required"`
	Category    string   `yaml:"category" validate:"required"`
	Description string   `yaml:"description"`
	Sectors     []Sector `yaml:"sectors" validate:"required,min=1,dive"`
}

type FacilityType struct {
	Code        string `yaml:"code" validate:"required"`
	Name        string `yaml:"name" validate:"required"`
	Category    string `yaml:"category" validate:"required"`
	RiskProfile string `yaml:"risk_profile" validate:"omitempty,oneof=LOW MEDIUM HIGH EXTREME"`
	Description string `yaml:"description"`
}

type OperationalStream struct {
	Code        string `yaml:"code" validate:"required"`
	Name        string `yaml:"name" validate:"required"`
	Category    string `yaml:"category" validate:"required"`
	Description string `yaml:"description"`
}

type RegulatoryFramework struct {
	Code         string `yaml:"code" validate:"required"`
	Name         string `yaml:"name" validate:"required"`
	Jurisdiction string `yaml:"jurisdiction" validate:"required"`
	Category     string `yaml:"category" validate:"required"`
	Description  string `yaml:"description"`
}

type RiskCategory struct {
	Name        string `yaml:"name" validate:"required"`
	Color       string `yaml:"color" validate:"omitempty,hexcolor"`
	Description string `yaml:"description"`
}

type CriticalControl struct {
	Name             string `yaml:"name" validate:"required"`
	Description      string `yaml:"description"`
	RiskCategory     string `yaml:"risk_category" validate:"required"`
	ControlType      string `yaml:"control_type" validate:"required,oneof=PREVENTIVE DETECTIVE CORRECTIVE"`
	Effectiveness    string `yaml:"effectiveness" validate:"required,oneof=EFFECTIVE PARTIALLY_EFFECTIVE INEFFECTIVE"`
	ComplianceStatus string `yaml:"compliance_status" validate:"required,oneof=COMPLIANT PARTIALLY_COMPLIANT NON_COMPLIANT UNDER_REVIEW"`
	Priority         string `yaml:"priority" validate:"required,oneof=LOW MEDIUM HIGH CRITICAL"`
}

type Facility struct {
	Code      string `yaml:"code" validate:"required"`
	Name      string `yaml:"name" validate:"required"`
	Type      string `yaml:"type" validate:"required"`
	Location  string `yaml:"location"`
	Commodity string `yaml:"commodity" validate:"required"`
	Status    string `yaml:"status" validate:"required,oneof=ACTIVE DEVELOPMENT CARE_AND_MAINTENANCE CLOSED"`
	Capacity  string `yaml:"capacity"`
}

type Department struct {
	Code string `yaml:"code" validate:"required"`
	Name string `yaml:"name" validate:"required"`
	Type string `yaml:"type" validate:"required"`
}

type BusinessUnit struct {
	Code        string       `yaml:"code" validate:"required"`
	Name        string       `yaml:"name" validate:"required"`
	Type        string       `yaml:"type" validate:"required"`
	Description string       `yaml:"description"`
	Departments []Department `yaml:"departments" validate:"dive"`
}

type Enterprise struct {
	ABN           string         `yaml:"abn" validate:"required"`
	Name          string         `yaml:"name" validate:"required"`
	LegalName     string         `yaml:"legal_name" validate:"required"`
	Industry      string         `yaml:"industry" validate:"required"`
	Sector        string         `yaml:"sector" validate:"required"`
	Address       string         `yaml:"address"`
	Sample        bool           `yaml:"sample"`
	Facilities    []Facility     `yaml:"facilities" validate:"required,min=1,dive"`
	BusinessUnits []BusinessUnit `yaml:"business_units" validate:"dive"`
}

type Process struct {
	Enterprise  string `yaml:"enterprise" validate:"required"`
	Name        string `yaml:"name" validate:"required"`
	Description string `yaml:"description"`
	Category    string `yaml:"category" validate:"required"`
	Status      string `yaml:"status" validate:"required,oneof=DRAFT ACTIVE RETIRED"`
	Priority    string `yaml:"priority" validate:"required,oneof=LOW MEDIUM HIGH CRITICAL"`
}

type Template struct {
	Name        string              `yaml:"name" validate:"required"`
	Description string              `yaml:"description"`
	Industry    string              `yaml:"industry" validate:"required"`
	Sector      string              `yaml:"sector"`
	Public      bool                `yaml:"public"`
	Sections    map[string][]string `yaml:"sections" validate:"required,min=1"`
}

// Catalog is the union of every data file.
type Catalog struct {
	Users                []User                `yaml:"users" validate:"required,min=1,dive"`
	Industries           []Industry            `yaml:"industries" validate:"required,min=1,dive"`
	FacilityTypes        []FacilityType        `yaml:"facility_types" validate:"required,min=1,dive"`
	OperationalStreams   []OperationalStream   `yaml:"operational_streams" validate:"required,min=1,dive"`
	RegulatoryFrameworks []RegulatoryFramework `yaml:"regulatory_frameworks" validate:"required,min=1,dive"`
	RiskCategories       []RiskCategory        `yaml:"risk_categories" validate:"required,min=1,dive"`
	CriticalControls     []CriticalControl     `yaml:"critical_controls" validate:"required,min=1,dive"`
	Enterprises          []Enterprise          `yaml:"enterprises" validate:"required,min=1,dive"`
	Processes            []Process             `yaml:"processes" validate:"dive"`
	Templates            []Template            `yaml:"templates" validate:"dive"`
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the embedded catalog, parsed and validated once.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = Load(dataFS, "data")
	})
	return defaultCatalog, defaultErr
}

// Load decodes every .yaml file in dir into one Catalog and validates it.
// Unknown keys are rejected so a typo in a data file fails loudly.
func Load(fsys fs.FS, dir string) (*Catalog, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog directory: %w", err)
	}

	var c Catalog
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".yaml" {
			continue
		}
		data, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", entry.Name(), err)
		}

		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&c); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", entry.Name(), err)
		}
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field rules and the references between datasets.
func (c *Catalog) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid catalog: %w", err)
	}

	industries := make(map[string]map[string]bool)
	for _, ind := range c.Industries {
		sectors := make(map[string]bool)
		for _, s := range ind.Sectors {
			sectors[s.Code] = true
		}
		industries[ind.Code] = sectors
	}
	facilityTypes := make(map[string]bool)
	for _, ft := range c.FacilityTypes {
		facilityTypes[ft.Code] = true
	}
	categories := make(map[string]bool)
	for _, rc := range c.RiskCategories {
		categories[rc.Name] = true
	}
	enterprises := make(map[string]bool)

	for _, e := range c.Enterprises {
		if enterprises[e.ABN] {
			return fmt.Errorf("invalid catalog: duplicate enterprise %s", e.ABN)
		}
		enterprises[e.ABN] = true

		sectors, ok := industries[e.Industry]
		if !ok {
			return fmt.Errorf("invalid catalog: enterprise %s references unknown industry %s", e.Name, e.Industry)
		}
		if !sectors[e.Sector] {
			return fmt.Errorf("invalid catalog: enterprise %s references unknown sector %s", e.Name, e.Sector)
		}
		for _, f := range e.Facilities {
			if !facilityTypes[f.Type] {
				return fmt.Errorf("invalid catalog: facility %s references unknown facility type %s", f.Code, f.Type)
			}
		}
	}
	for _, cc := range c.CriticalControls {
		if !categories[cc.RiskCategory] {
			return fmt.Errorf("invalid catalog: control %q references unknown risk category %q", cc.Name, cc.RiskCategory)
		}
	}
	for _, p := range c.Processes {
		if !enterprises[p.Enterprise] {
			return fmt.Errorf("invalid catalog: process %q references unknown enterprise %s", p.Name, p.Enterprise)
		}
	}
	return nil
}

// Enterprise returns the enterprise with the given ABN.
func (c *Catalog) Enterprise(abn string) (Enterprise, bool) {
	for _, e := range c.Enterprises {
		if e.ABN == abn {
			return e, true
		}
	}
	return Enterprise{}, false
}
