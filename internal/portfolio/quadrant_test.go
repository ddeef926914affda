package portfolio

import (
	"testing"

	"github.com/dmaselli/roicanvas/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestQuadrantTable(t *testing.T) {
	tests := []struct {
		impact domain.ImpactLevel
		effort domain.EffortLevel
		label  string
		tier   domain.PriorityTier
	}{
		{domain.ImpactHigh, domain.EffortLow, "Quick Win", domain.TierP1},
		{domain.ImpactHigh, domain.EffortMedium, "Strategic", domain.TierP2},
		{domain.ImpactHigh, domain.EffortHigh, "Major", domain.TierP3},
		{domain.ImpactMedium, domain.EffortLow, "Easy Win", domain.TierP2},
		{domain.ImpactMedium, domain.EffortMedium, "Balanced", domain.TierP3},
		{domain.ImpactMedium, domain.EffortHigh, "Resource Heavy", domain.TierP4},
		{domain.ImpactLow, domain.EffortLow, "Fill-in", domain.TierP3},
		{domain.ImpactLow, domain.EffortMedium, "Low Priority", domain.TierP4},
		{domain.ImpactLow, domain.EffortHigh, "Avoid", domain.TierP5},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			q := QuadrantFor(tt.impact, tt.effort)
			assert.Equal(t, tt.label, q.Label)
			assert.Equal(t, tt.tier, q.Tier)
		})
	}
}

func TestQuadrantFor_UnknownFallsBackToCenter(t *testing.T) {
	q := QuadrantFor("", "")
	assert.Equal(t, "Balanced", q.Label)
	assert.Equal(t, domain.TierP3, q.Tier)
}
