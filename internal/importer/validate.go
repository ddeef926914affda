package importer

import (
	"fmt"

	"github.com/dmaselli/roicanvas/internal/domain"
)

// ValidateImportSchema checks the import schema before conversion.
// Returns a slice of all validation errors found so a batch with several
// problems reports them in one pass.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error

	if len(schema.Initiatives) == 0 {
		return []error{fmt.Errorf("initiatives list is empty")}
	}

	ids := make(map[string]bool)
	names := make(map[string]bool)

	for i, in := range schema.Initiatives {
		prefix := fmt.Sprintf("initiatives[%d]", i)

		if in.ID != "" {
			if ids[in.ID] {
				errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", prefix, in.ID))
			}
			ids[in.ID] = true
		}

		if in.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		} else {
			if names[in.Name] {
				errs = append(errs, fmt.Errorf("%s.name: duplicate name %q", prefix, in.Name))
			}
			names[in.Name] = true
		}

		if in.InitialCost < 0 {
			errs = append(errs, fmt.Errorf("%s.initial_cost must be >= 0, got %.2f", prefix, in.InitialCost))
		}
		if in.AnnualOperatingCost < 0 {
			errs = append(errs, fmt.Errorf("%s.annual_operating_cost must be >= 0, got %.2f", prefix, in.AnnualOperatingCost))
		}
		if in.AnnualBenefit < 0 {
			errs = append(errs, fmt.Errorf("%s.annual_benefit must be >= 0, got %.2f", prefix, in.AnnualBenefit))
		}
		if in.ImplementationMonths <= 0 {
			errs = append(errs, fmt.Errorf("%s.implementation_months must be > 0, got %d", prefix, in.ImplementationMonths))
		}

		if !domain.ValidLevels[in.Effort] {
			errs = append(errs, fmt.Errorf("%s.effort: invalid value %q (expected Low, Medium or High)", prefix, in.Effort))
		}
		if !domain.ValidLevels[in.Impact] {
			errs = append(errs, fmt.Errorf("%s.impact: invalid value %q (expected Low, Medium or High)", prefix, in.Impact))
		}
		if !domain.ValidLevels[in.Risk] {
			errs = append(errs, fmt.Errorf("%s.risk: invalid value %q (expected Low, Medium or High)", prefix, in.Risk))
		}

		if in.StrategicValue != nil && (*in.StrategicValue < 0 || *in.StrategicValue > 100) {
			errs = append(errs, fmt.Errorf("%s.strategic_value must be in [0, 100], got %.1f", prefix, *in.StrategicValue))
		}
	}

	return errs
}
