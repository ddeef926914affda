package finance

// PortfolioSummary aggregates metrics across a set of initiatives.
type PortfolioSummary struct {
	Count                  int
	TotalNPV               float64
	TotalThreeYearBenefit  float64
	TotalThreeYearCost     float64
	TotalRiskAdjustedValue float64
	AverageROIPercent      float64

	// PortfolioROIPercent is computed on summed benefits and costs, not
	// averaged per-initiative ROI. Undefined when total cost is zero.
	PortfolioROIPercent   float64
	PortfolioROIUndefined bool

	// AveragePaybackMonths covers only initiatives that pay back at all.
	AveragePaybackMonths float64
	NeverPaybackCount    int
}

// Summarize rolls a batch of metrics up into portfolio-level figures.
func Summarize(metrics []Metrics) PortfolioSummary {
	s := PortfolioSummary{Count: len(metrics)}
	if len(metrics) == 0 {
		s.PortfolioROIUndefined = true
		return s
	}

	var roiSum, paybackSum float64
	var paybackCount int
	for _, m := range metrics {
		s.TotalNPV += m.NPV
		s.TotalThreeYearBenefit += m.ThreeYearBenefit
		s.TotalThreeYearCost += m.ThreeYearCost
		s.TotalRiskAdjustedValue += m.RiskAdjustedValue
		if !m.ROIUndefined {
			roiSum += m.ROIPercent
		}
		if m.PaybackNever {
			s.NeverPaybackCount++
		} else {
			paybackSum += m.PaybackMonths
			paybackCount++
		}
	}

	s.AverageROIPercent = roiSum / float64(len(metrics))
	if paybackCount > 0 {
		s.AveragePaybackMonths = paybackSum / float64(paybackCount)
	}

	if s.TotalThreeYearCost == 0 {
		s.PortfolioROIUndefined = true
	} else {
		s.PortfolioROIPercent = (s.TotalThreeYearBenefit - s.TotalThreeYearCost) / s.TotalThreeYearCost * 100
	}

	return s
}
