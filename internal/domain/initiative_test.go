package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validInitiative() Initiative {
	return Initiative{
		ID:                   "a1b2c3d4-0000-0000-0000-000000000000",
		Name:                 "Invoice Automation",
		InitialCost:          80000,
		AnnualOperatingCost:  25000,
		AnnualBenefit:        180000,
		ImplementationMonths: 2,
		Effort:               EffortLow,
		Impact:               ImpactMedium,
		Risk:                 RiskLow,
		StrategicValue:       60,
	}
}

func TestInitiativeValidate_OK(t *testing.T) {
	i := validInitiative()
	assert.NoError(t, i.Validate())
}

func TestInitiativeValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Initiative)
		want   string
	}{
		{"empty name", func(i *Initiative) { i.Name = "" }, "name is required"},
		{"negative initial cost", func(i *Initiative) { i.InitialCost = -1 }, "initial cost"},
		{"negative operating cost", func(i *Initiative) { i.AnnualOperatingCost = -0.5 }, "operating cost"},
		{"negative benefit", func(i *Initiative) { i.AnnualBenefit = -100 }, "annual benefit"},
		{"zero months", func(i *Initiative) { i.ImplementationMonths = 0 }, "implementation months"},
		{"negative months", func(i *Initiative) { i.ImplementationMonths = -3 }, "implementation months"},
		{"bad effort", func(i *Initiative) { i.Effort = "huge" }, "effort"},
		{"bad impact", func(i *Initiative) { i.Impact = "" }, "impact"},
		{"bad risk", func(i *Initiative) { i.Risk = "low" }, "risk"},
		{"strategic value too high", func(i *Initiative) { i.StrategicValue = 101 }, "strategic value"},
		{"strategic value negative", func(i *Initiative) { i.StrategicValue = -1 }, "strategic value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i := validInitiative()
			tt.mutate(&i)
			err := i.Validate()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestDisplayID(t *testing.T) {
	i := validInitiative()
	assert.Equal(t, "a1b2c3d4", i.DisplayID())

	short := Initiative{ID: "abc"}
	assert.Equal(t, "abc", short.DisplayID())
}
