package portfolio

import (
	"fmt"

	"github.com/dmaselli/roicanvas/internal/domain"
	"github.com/dmaselli/roicanvas/internal/finance"
)

// Weights control the composite priority score. They are expected to sum
// to 1.0.
type Weights struct {
	ROI          float64
	NPV          float64
	RiskAdjusted float64
	Payback      float64
	Strategic    float64
}

func DefaultWeights() Weights {
	return Weights{
		ROI:          0.30,
		NPV:          0.25,
		RiskAdjusted: 0.20,
		Payback:      0.15,
		Strategic:    0.10,
	}
}

// ScoredInitiative pairs an initiative with its metrics, composite score and
// matrix placement. InputOrder records the position in the scoring batch and
// is the final tie-break key.
type ScoredInitiative struct {
	Initiative domain.Initiative
	Metrics    finance.Metrics

	PriorityScore float64 // 0-100
	Quadrant      Quadrant
	InputOrder    int
}

// ScoreBatch computes priority scores for a whole batch at once. Sub-scores
// are min-max scaled across the batch, so a score is only meaningful
// relative to the batch it was computed with: callers must pass the full
// candidate set, never a single initiative in isolation.
func ScoreBatch(initiatives []domain.Initiative, metrics []finance.Metrics, w Weights) ([]ScoredInitiative, error) {
	if len(initiatives) == 0 {
		return nil, fmt.Errorf("scoring requires a non-empty batch")
	}
	if len(initiatives) != len(metrics) {
		return nil, fmt.Errorf("initiative/metrics length mismatch: %d vs %d", len(initiatives), len(metrics))
	}

	roiScores := scaleMetric(metrics, func(m finance.Metrics) (float64, bool) {
		return m.ROIPercent, !m.ROIUndefined
	}, false)
	npvScores := scaleMetric(metrics, func(m finance.Metrics) (float64, bool) {
		return m.NPV, true
	}, false)
	riskAdjScores := scaleMetric(metrics, func(m finance.Metrics) (float64, bool) {
		return m.RiskAdjustedValue, true
	}, false)
	paybackScores := scaleMetric(metrics, func(m finance.Metrics) (float64, bool) {
		return m.PaybackMonths, !m.PaybackNever
	}, true)

	scored := make([]ScoredInitiative, 0, len(initiatives))
	for i, in := range initiatives {
		strategic := clampScore(in.StrategicValue)

		score := roiScores[i]*w.ROI +
			npvScores[i]*w.NPV +
			riskAdjScores[i]*w.RiskAdjusted +
			paybackScores[i]*w.Payback +
			strategic*w.Strategic

		scored = append(scored, ScoredInitiative{
			Initiative:    in,
			Metrics:       metrics[i],
			PriorityScore: score,
			Quadrant:      QuadrantFor(in.Impact, in.Effort),
			InputOrder:    i,
		})
	}

	return scored, nil
}

// scaleMetric min-max scales one metric across the batch to 0-100. Entries
// whose value is an arithmetic sentinel (ok == false) are pinned to 0, the
// lowest rank, and excluded from the min/max bounds. When every defined
// value is identical the scale is degenerate and all defined entries get 50.
// invert flips the scale for metrics where smaller is better (payback).
func scaleMetric(metrics []finance.Metrics, value func(finance.Metrics) (float64, bool), invert bool) []float64 {
	lo, hi := 0.0, 0.0
	seen := false
	for _, m := range metrics {
		v, ok := value(m)
		if !ok {
			continue
		}
		if !seen || v < lo {
			lo = v
		}
		if !seen || v > hi {
			hi = v
		}
		seen = true
	}

	out := make([]float64, len(metrics))
	for i, m := range metrics {
		v, ok := value(m)
		if !ok {
			out[i] = 0
			continue
		}
		if hi == lo {
			out[i] = 50
			continue
		}
		s := (v - lo) / (hi - lo) * 100
		if invert {
			s = 100 - s
		}
		out[i] = s
	}
	return out
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
