package finance

import (
	"math"
	"testing"

	"github.com/dmaselli/roicanvas/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chatbot() domain.Initiative {
	return domain.Initiative{
		ID:                   "uc-1",
		Name:                 "Support Chatbot",
		InitialCost:          10000,
		AnnualOperatingCost:  2000,
		AnnualBenefit:        8000,
		ImplementationMonths: 2,
		Effort:               domain.EffortLow,
		Impact:               domain.ImpactMedium,
		Risk:                 domain.RiskMedium,
	}
}

func TestCompute_ReferenceScenario(t *testing.T) {
	m := Compute(DefaultPolicy(), chatbot())

	// 10000 + 2000*3
	assert.InDelta(t, 16000, m.ThreeYearCost, 1e-9)

	// 34 effective benefit months at 8000/12 per month.
	assert.InDelta(t, 8000.0/12*34, m.ThreeYearBenefit, 1e-9)

	assert.False(t, m.ROIUndefined)
	wantROI := (8000.0/12*34 - 16000) / 16000 * 100
	assert.InDelta(t, wantROI, m.ROIPercent, 1e-9)

	// Risk-adjusted value is NPV scaled by the Medium multiplier.
	assert.InDelta(t, m.NPV*0.80, m.RiskAdjustedValue, 1e-9)

	// Payback: 2 months implementation + 10000 / (6000/12).
	assert.False(t, m.PaybackNever)
	assert.InDelta(t, 2+10000.0/500, m.PaybackMonths, 1e-9)
}

func TestCompute_ZeroCostROIUndefined(t *testing.T) {
	in := chatbot()
	in.InitialCost = 0
	in.AnnualOperatingCost = 0

	m := Compute(DefaultPolicy(), in)

	assert.True(t, m.ROIUndefined)
	assert.Zero(t, m.ROIPercent)
	assert.False(t, math.IsNaN(m.ROIPercent))
	assert.False(t, math.IsInf(m.NPV, 0))
}

func TestCompute_PaybackNever(t *testing.T) {
	in := chatbot()
	in.AnnualBenefit = 1000 // below operating cost

	m := Compute(DefaultPolicy(), in)

	assert.True(t, m.PaybackNever)
	assert.Zero(t, m.PaybackMonths)
}

func TestCompute_ZeroInitialCostPaysBackAtGoLive(t *testing.T) {
	in := chatbot()
	in.InitialCost = 0

	m := Compute(DefaultPolicy(), in)

	require.False(t, m.PaybackNever)
	assert.InDelta(t, float64(in.ImplementationMonths), m.PaybackMonths, 1e-9)
}

func TestCashFlows_Shape(t *testing.T) {
	p := DefaultPolicy()
	flows := CashFlows(p, chatbot())

	require.Len(t, flows, 36)

	// Month 0: initial cost plus one month of opex, no benefit yet.
	assert.InDelta(t, -10000-2000.0/12, flows[0], 1e-9)

	// Month 1: still implementing.
	assert.InDelta(t, -2000.0/12, flows[1], 1e-9)

	// Month 2 onward: benefit net of opex.
	assert.InDelta(t, 8000.0/12-2000.0/12, flows[2], 1e-9)
	assert.InDelta(t, flows[2], flows[35], 1e-9)
}

func TestCashFlows_LongImplementationNeverBenefits(t *testing.T) {
	in := chatbot()
	in.ImplementationMonths = 40 // beyond the window

	p := DefaultPolicy()
	for _, f := range CashFlows(p, in) {
		assert.LessOrEqual(t, f, 0.0)
	}
	m := Compute(p, in)
	assert.Zero(t, m.ThreeYearBenefit)
}

func TestNPV_MonotoneInDiscountRate(t *testing.T) {
	in := chatbot()
	p := DefaultPolicy()
	flows := CashFlows(p, in)

	prev := math.Inf(1)
	for _, annual := range []float64{0.0, 0.05, 0.10, 0.20, 0.50} {
		rate := math.Pow(1+annual, 1.0/12) - 1
		npv := NPV(rate, flows)
		assert.LessOrEqual(t, npv, prev, "NPV must not increase with the discount rate")
		prev = npv
	}
}

func TestNPV_ZeroRateSumsFlows(t *testing.T) {
	flows := []float64{-100, 50, 60}
	assert.InDelta(t, 10, NPV(0, flows), 1e-9)
}

func TestRiskMultipliers(t *testing.T) {
	p := DefaultPolicy()
	base := chatbot()

	levels := map[domain.RiskLevel]float64{
		domain.RiskLow:    0.95,
		domain.RiskMedium: 0.80,
		domain.RiskHigh:   0.60,
	}
	for level, mult := range levels {
		in := base
		in.Risk = level
		m := Compute(p, in)
		assert.InDelta(t, m.NPV*mult, m.RiskAdjustedValue, 1e-9, "risk %s", level)
	}
}

func TestComputeBatch_PreservesOrder(t *testing.T) {
	a := chatbot()
	b := chatbot()
	b.ID = "uc-2"

	out := ComputeBatch(DefaultPolicy(), []domain.Initiative{a, b})
	require.Len(t, out, 2)
	assert.Equal(t, "uc-1", out[0].InitiativeID)
	assert.Equal(t, "uc-2", out[1].InitiativeID)
}
