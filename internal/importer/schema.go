package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// ImportSchema is the top-level JSON structure for initiative batch import.
type ImportSchema struct {
	Initiatives []InitiativeImport `json:"initiatives"`
}

// InitiativeImport defines one initiative record in the import file.
// Strategic value is optional and defaults to the midpoint when omitted.
type InitiativeImport struct {
	ID                   string   `json:"id,omitempty"`
	Name                 string   `json:"name"`
	ProblemStatement     string   `json:"problem_statement,omitempty"`
	KPIs                 []string `json:"kpis,omitempty"`
	InitialCost          float64  `json:"initial_cost"`
	AnnualOperatingCost  float64  `json:"annual_operating_cost"`
	AnnualBenefit        float64  `json:"annual_benefit"`
	ImplementationMonths int      `json:"implementation_months"`
	Effort               string   `json:"effort"`
	Impact               string   `json:"impact"`
	Risk                 string   `json:"risk"`
	StrategicValue       *float64 `json:"strategic_value,omitempty"`
	Dependencies         []string `json:"dependencies,omitempty"`
	SkillsRequired       []string `json:"skills_required,omitempty"`
	TechnologyRequired   []string `json:"technology_required,omitempty"`
	SoftBenefits         []string `json:"soft_benefits,omitempty"`
	RiskFactors          []string `json:"risk_factors,omitempty"`
}

// LoadImportSchema reads and parses an initiative import JSON file.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema ImportSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
