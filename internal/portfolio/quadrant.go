package portfolio

import "github.com/dmaselli/roicanvas/internal/domain"

// Quadrant is one cell of the 3x3 impact-effort matrix.
type Quadrant struct {
	Label string
	Tier  domain.PriorityTier
}

type quadrantKey struct {
	Impact domain.ImpactLevel
	Effort domain.EffortLevel
}

// quadrantTable is the fixed impact-effort dispatch table. Rows are impact,
// columns are effort.
var quadrantTable = map[quadrantKey]Quadrant{
	{domain.ImpactHigh, domain.EffortLow}:    {"Quick Win", domain.TierP1},
	{domain.ImpactHigh, domain.EffortMedium}: {"Strategic", domain.TierP2},
	{domain.ImpactHigh, domain.EffortHigh}:   {"Major", domain.TierP3},

	{domain.ImpactMedium, domain.EffortLow}:    {"Easy Win", domain.TierP2},
	{domain.ImpactMedium, domain.EffortMedium}: {"Balanced", domain.TierP3},
	{domain.ImpactMedium, domain.EffortHigh}:   {"Resource Heavy", domain.TierP4},

	{domain.ImpactLow, domain.EffortLow}:    {"Fill-in", domain.TierP3},
	{domain.ImpactLow, domain.EffortMedium}: {"Low Priority", domain.TierP4},
	{domain.ImpactLow, domain.EffortHigh}:   {"Avoid", domain.TierP5},
}

// QuadrantFor looks up the quadrant for an impact/effort pair. Inputs are
// validated at ingestion, so unknown pairs fall back to the center cell.
func QuadrantFor(impact domain.ImpactLevel, effort domain.EffortLevel) Quadrant {
	if q, ok := quadrantTable[quadrantKey{impact, effort}]; ok {
		return q
	}
	return Quadrant{"Balanced", domain.TierP3}
}
