package finance

import (
	"math"

	"github.com/dmaselli/roicanvas/internal/domain"
)

// Policy holds the evaluation constants for financial analysis. The defaults
// model a 3-year window at a 10% annual discount rate.
type Policy struct {
	AnnualDiscountRate float64
	AnalysisYears      int
	RiskMultipliers    map[domain.RiskLevel]float64
}

func DefaultPolicy() Policy {
	return Policy{
		AnnualDiscountRate: 0.10,
		AnalysisYears:      3,
		RiskMultipliers: map[domain.RiskLevel]float64{
			domain.RiskLow:    0.95,
			domain.RiskMedium: 0.80,
			domain.RiskHigh:   0.60,
		},
	}
}

// MonthlyRate converts the annual discount rate to its monthly equivalent:
// (1+r)^(1/12) - 1.
func (p Policy) MonthlyRate() float64 {
	return math.Pow(1+p.AnnualDiscountRate, 1.0/12) - 1
}

// Months returns the length of the evaluation window in months.
func (p Policy) Months() int {
	return p.AnalysisYears * 12
}

func (p Policy) riskMultiplier(r domain.RiskLevel) float64 {
	if m, ok := p.RiskMultipliers[r]; ok {
		return m
	}
	return p.RiskMultipliers[domain.RiskMedium]
}

// Metrics are the derived financial figures for one initiative. Arithmetic
// edge cases are carried as explicit sentinels (ROIUndefined, PaybackNever)
// rather than NaN or infinity so they survive serialization and rank
// deterministically downstream.
type Metrics struct {
	InitiativeID string

	ROIPercent   float64
	ROIUndefined bool

	NPV float64

	PaybackMonths float64
	PaybackNever  bool

	RiskAdjustedValue float64

	ThreeYearBenefit float64
	ThreeYearCost    float64
	AnnualNetBenefit float64
}

// Compute derives all financial metrics for a single initiative. It is a
// pure function of the record and the policy; it never fails for records
// that pass domain validation.
func Compute(p Policy, in domain.Initiative) Metrics {
	m := Metrics{InitiativeID: in.ID}

	m.ThreeYearCost = in.InitialCost + in.AnnualOperatingCost*float64(p.AnalysisYears)
	m.ThreeYearBenefit = totalBenefit(p, in)
	m.AnnualNetBenefit = in.AnnualBenefit - in.AnnualOperatingCost

	if m.ThreeYearCost == 0 {
		m.ROIUndefined = true
	} else {
		m.ROIPercent = (m.ThreeYearBenefit - m.ThreeYearCost) / m.ThreeYearCost * 100
	}

	m.NPV = NPV(p.MonthlyRate(), CashFlows(p, in))

	monthlyNet := m.AnnualNetBenefit / 12
	if monthlyNet <= 0 {
		m.PaybackNever = true
	} else {
		m.PaybackMonths = float64(in.ImplementationMonths) + in.InitialCost/monthlyNet
	}

	m.RiskAdjustedValue = m.NPV * p.riskMultiplier(in.Risk)

	return m
}

// ComputeBatch derives metrics for every initiative in input order.
func ComputeBatch(p Policy, initiatives []domain.Initiative) []Metrics {
	out := make([]Metrics, 0, len(initiatives))
	for _, in := range initiatives {
		out = append(out, Compute(p, in))
	}
	return out
}

// CashFlows returns the monthly cash flows over the evaluation window:
// the initial cost as an outflow at month 0, operating cost spread monthly,
// and benefits starting once implementation completes.
func CashFlows(p Policy, in domain.Initiative) []float64 {
	months := p.Months()
	flows := make([]float64, months)
	for month := 0; month < months; month++ {
		flow := -in.AnnualOperatingCost / 12
		if month == 0 {
			flow -= in.InitialCost
		}
		if month >= in.ImplementationMonths {
			flow += in.AnnualBenefit / 12
		}
		flows[month] = flow
	}
	return flows
}

// NPV discounts each monthly cash flow back to present value and sums:
// sum(cf_t / (1+r)^t) with t 0-indexed.
func NPV(monthlyRate float64, flows []float64) float64 {
	var npv float64
	for t, cf := range flows {
		npv += cf / math.Pow(1+monthlyRate, float64(t))
	}
	return npv
}

// totalBenefit sums benefits over the window, prorating for the months lost
// to implementation. No benefit accrues while the initiative is being built.
func totalBenefit(p Policy, in domain.Initiative) float64 {
	benefitMonths := p.Months() - in.ImplementationMonths
	if benefitMonths < 0 {
		benefitMonths = 0
	}
	return in.AnnualBenefit / 12 * float64(benefitMonths)
}
