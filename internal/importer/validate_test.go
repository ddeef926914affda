package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validImport(name string) InitiativeImport {
	return InitiativeImport{
		Name:                 name,
		InitialCost:          10000,
		AnnualOperatingCost:  2000,
		AnnualBenefit:        8000,
		ImplementationMonths: 3,
		Effort:               "Low",
		Impact:               "High",
		Risk:                 "Medium",
	}
}

func TestValidateImportSchema_Valid(t *testing.T) {
	schema := &ImportSchema{Initiatives: []InitiativeImport{
		validImport("Invoice triage"),
		validImport("Support chatbot"),
	}}
	assert.Empty(t, ValidateImportSchema(schema))
}

func TestValidateImportSchema_EmptyBatch(t *testing.T) {
	errs := ValidateImportSchema(&ImportSchema{})
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "empty")
}

func TestValidateImportSchema_CollectsAllErrors(t *testing.T) {
	bad := InitiativeImport{
		Name:                 "",
		InitialCost:          -5,
		AnnualOperatingCost:  -1,
		AnnualBenefit:        -1,
		ImplementationMonths: 0,
		Effort:               "Huge",
		Impact:               "",
		Risk:                 "Risky",
	}

	errs := ValidateImportSchema(&ImportSchema{Initiatives: []InitiativeImport{bad}})
	assert.Len(t, errs, 8)
}

func TestValidateImportSchema_FieldErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*InitiativeImport)
		want   string
	}{
		{"negative initial cost", func(in *InitiativeImport) { in.InitialCost = -100 }, "initial_cost"},
		{"negative operating cost", func(in *InitiativeImport) { in.AnnualOperatingCost = -1 }, "annual_operating_cost"},
		{"negative benefit", func(in *InitiativeImport) { in.AnnualBenefit = -1 }, "annual_benefit"},
		{"zero months", func(in *InitiativeImport) { in.ImplementationMonths = 0 }, "implementation_months"},
		{"bad effort", func(in *InitiativeImport) { in.Effort = "low" }, "effort"},
		{"bad impact", func(in *InitiativeImport) { in.Impact = "Huge" }, "impact"},
		{"bad risk", func(in *InitiativeImport) { in.Risk = "None" }, "risk"},
		{"strategic too high", func(in *InitiativeImport) { v := 150.0; in.StrategicValue = &v }, "strategic_value"},
		{"strategic negative", func(in *InitiativeImport) { v := -1.0; in.StrategicValue = &v }, "strategic_value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validImport("x")
			tt.mutate(&in)
			errs := ValidateImportSchema(&ImportSchema{Initiatives: []InitiativeImport{in}})
			require.Len(t, errs, 1)
			assert.Contains(t, errs[0].Error(), tt.want)
		})
	}
}

func TestValidateImportSchema_Duplicates(t *testing.T) {
	a := validImport("Same name")
	a.ID = "id-1"
	b := validImport("Same name")
	b.ID = "id-1"

	errs := ValidateImportSchema(&ImportSchema{Initiatives: []InitiativeImport{a, b}})
	require.Len(t, errs, 2)
	assert.Contains(t, errs[0].Error(), "duplicate id")
	assert.Contains(t, errs[1].Error(), "duplicate name")
}
