package domain

import (
	"fmt"
	"time"
)

// Initiative is one proposed AI use case, captured via the interview form,
// manual entry, or JSON import. Once handed to the analysis pipeline it is
// treated as immutable: every stage produces derived records and never
// writes back.
type Initiative struct {
	ID               string
	Name             string
	ProblemStatement string
	KPIs             []string

	InitialCost          float64
	AnnualOperatingCost  float64
	AnnualBenefit        float64
	ImplementationMonths int

	Effort         EffortLevel
	Impact         ImpactLevel
	Risk           RiskLevel
	StrategicValue float64 // 0-100

	Dependencies       []string
	SkillsRequired     []string
	TechnologyRequired []string
	SoftBenefits       []string
	RiskFactors        []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the domain invariants. It is called at every ingestion
// boundary (form, flags, import) so the pipeline never sees a bad record.
func (i *Initiative) Validate() error {
	if i.Name == "" {
		return fmt.Errorf("name is required")
	}
	if i.InitialCost < 0 {
		return fmt.Errorf("initial cost must be >= 0, got %.2f", i.InitialCost)
	}
	if i.AnnualOperatingCost < 0 {
		return fmt.Errorf("annual operating cost must be >= 0, got %.2f", i.AnnualOperatingCost)
	}
	if i.AnnualBenefit < 0 {
		return fmt.Errorf("annual benefit must be >= 0, got %.2f", i.AnnualBenefit)
	}
	if i.ImplementationMonths <= 0 {
		return fmt.Errorf("implementation months must be > 0, got %d", i.ImplementationMonths)
	}
	if !ValidLevels[string(i.Effort)] {
		return fmt.Errorf("effort: invalid level %q (expected Low, Medium or High)", i.Effort)
	}
	if !ValidLevels[string(i.Impact)] {
		return fmt.Errorf("impact: invalid level %q (expected Low, Medium or High)", i.Impact)
	}
	if !ValidLevels[string(i.Risk)] {
		return fmt.Errorf("risk: invalid level %q (expected Low, Medium or High)", i.Risk)
	}
	if i.StrategicValue < 0 || i.StrategicValue > 100 {
		return fmt.Errorf("strategic value must be in [0, 100], got %.1f", i.StrategicValue)
	}
	return nil
}

// DisplayID returns a short identifier for display, truncating UUIDs to
// 8 characters.
func (i *Initiative) DisplayID() string {
	if len(i.ID) >= 8 {
		return i.ID[:8]
	}
	return i.ID
}
