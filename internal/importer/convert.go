package importer

import (
	"time"

	"github.com/dmaselli/roicanvas/internal/domain"
	"github.com/google/uuid"
)

// Default strategic value when the import record omits one.
const defaultStrategicValue = 50

// Convert transforms a validated ImportSchema into domain initiatives ready
// for persistence. Call ValidateImportSchema first; Convert assumes the
// schema is valid.
func Convert(schema *ImportSchema) []domain.Initiative {
	now := time.Now().UTC()

	out := make([]domain.Initiative, 0, len(schema.Initiatives))
	for _, in := range schema.Initiatives {
		id := in.ID
		if id == "" {
			id = uuid.New().String()
		}

		strategic := float64(defaultStrategicValue)
		if in.StrategicValue != nil {
			strategic = *in.StrategicValue
		}

		out = append(out, domain.Initiative{
			ID:                   id,
			Name:                 in.Name,
			ProblemStatement:     in.ProblemStatement,
			KPIs:                 in.KPIs,
			InitialCost:          in.InitialCost,
			AnnualOperatingCost:  in.AnnualOperatingCost,
			AnnualBenefit:        in.AnnualBenefit,
			ImplementationMonths: in.ImplementationMonths,
			Effort:               domain.EffortLevel(in.Effort),
			Impact:               domain.ImpactLevel(in.Impact),
			Risk:                 domain.RiskLevel(in.Risk),
			StrategicValue:       strategic,
			Dependencies:         in.Dependencies,
			SkillsRequired:       in.SkillsRequired,
			TechnologyRequired:   in.TechnologyRequired,
			SoftBenefits:         in.SoftBenefits,
			RiskFactors:          in.RiskFactors,
			CreatedAt:            now,
			UpdatedAt:            now,
		})
	}

	return out
}
