package domain

type EffortLevel string

const (
	EffortLow    EffortLevel = "Low"
	EffortMedium EffortLevel = "Medium"
	EffortHigh   EffortLevel = "High"
)

type ImpactLevel string

const (
	ImpactLow    ImpactLevel = "Low"
	ImpactMedium ImpactLevel = "Medium"
	ImpactHigh   ImpactLevel = "High"
)

type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// ValidLevels is the canonical set of accepted effort/impact/risk strings.
var ValidLevels = map[string]bool{
	"Low": true, "Medium": true, "High": true,
}

type Horizon string

const (
	HorizonQ1    Horizon = "Q1"
	HorizonYear1 Horizon = "Year1"
	HorizonYear3 Horizon = "Year3"
)

// PriorityTier ranks an impact-effort quadrant from P1 (best) to P5 (worst).
type PriorityTier string

const (
	TierP1 PriorityTier = "P1"
	TierP2 PriorityTier = "P2"
	TierP3 PriorityTier = "P3"
	TierP4 PriorityTier = "P4"
	TierP5 PriorityTier = "P5"
)
