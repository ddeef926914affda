package testutil

import (
	"time"

	"github.com/dmaselli/roicanvas/internal/domain"
	"github.com/google/uuid"
)

// Initiative options
type InitiativeOption func(*domain.Initiative)

func WithCosts(initial, annualOperating float64) InitiativeOption {
	return func(in *domain.Initiative) {
		in.InitialCost = initial
		in.AnnualOperatingCost = annualOperating
	}
}

func WithBenefit(annual float64) InitiativeOption {
	return func(in *domain.Initiative) {
		in.AnnualBenefit = annual
	}
}

func WithLevels(effort domain.EffortLevel, impact domain.ImpactLevel, risk domain.RiskLevel) InitiativeOption {
	return func(in *domain.Initiative) {
		in.Effort = effort
		in.Impact = impact
		in.Risk = risk
	}
}

func WithMonths(m int) InitiativeOption {
	return func(in *domain.Initiative) {
		in.ImplementationMonths = m
	}
}

func WithStrategicValue(v float64) InitiativeOption {
	return func(in *domain.Initiative) {
		in.StrategicValue = v
	}
}

// NewTestInitiative builds a valid initiative with sensible defaults.
func NewTestInitiative(name string, opts ...InitiativeOption) *domain.Initiative {
	now := time.Now().UTC()
	in := &domain.Initiative{
		ID:                   uuid.New().String(),
		Name:                 name,
		ProblemStatement:     "Manual process consuming staff hours",
		KPIs:                 []string{"Processing Time", "Error Rate"},
		InitialCost:          100000,
		AnnualOperatingCost:  25000,
		AnnualBenefit:        200000,
		ImplementationMonths: 4,
		Effort:               domain.EffortMedium,
		Impact:               domain.ImpactMedium,
		Risk:                 domain.RiskMedium,
		StrategicValue:       50,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// SampleInitiatives returns a small realistic portfolio for integration
// tests, spanning quick wins, mid-size bets and a heavy transformation.
func SampleInitiatives() []*domain.Initiative {
	return []*domain.Initiative{
		NewTestInitiative("Customer Service Chatbot",
			WithCosts(150000, 50000),
			WithBenefit(250000),
			WithMonths(3),
			WithLevels(domain.EffortMedium, domain.ImpactHigh, domain.RiskMedium),
			WithStrategicValue(70),
		),
		NewTestInitiative("Predictive Maintenance System",
			WithCosts(400000, 100000),
			WithBenefit(800000),
			WithMonths(9),
			WithLevels(domain.EffortHigh, domain.ImpactHigh, domain.RiskMedium),
			WithStrategicValue(85),
		),
		NewTestInitiative("Invoice Processing Automation",
			WithCosts(80000, 25000),
			WithBenefit(180000),
			WithMonths(2),
			WithLevels(domain.EffortLow, domain.ImpactMedium, domain.RiskLow),
			WithStrategicValue(40),
		),
		NewTestInitiative("Demand Forecasting Engine",
			WithCosts(250000, 75000),
			WithBenefit(500000),
			WithMonths(6),
			WithLevels(domain.EffortMedium, domain.ImpactHigh, domain.RiskMedium),
			WithStrategicValue(75),
		),
		NewTestInitiative("Employee Onboarding Assistant",
			WithCosts(60000, 20000),
			WithBenefit(120000),
			WithMonths(2),
			WithLevels(domain.EffortLow, domain.ImpactLow, domain.RiskLow),
			WithStrategicValue(30),
		),
	}
}
