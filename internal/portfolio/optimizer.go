package portfolio

import "fmt"

// Config holds the selection constraints.
type Config struct {
	MinROIThreshold float64 // percent, >= 0
	BudgetLimit     float64 // > 0, covers initial + 3-year operating cost
	MaxProjects     int     // > 0
}

// ConfigError reports an invalid selection configuration. Configuration
// problems are batch-fatal: no partial portfolio is ever returned.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("portfolio config: %s: %s", e.Field, e.Message)
}

// Validate fails fast on out-of-domain constraints.
func (c Config) Validate() error {
	if c.MinROIThreshold < 0 {
		return &ConfigError{"min_roi_threshold", fmt.Sprintf("must be >= 0, got %.2f", c.MinROIThreshold)}
	}
	if c.BudgetLimit <= 0 {
		return &ConfigError{"budget_limit", fmt.Sprintf("must be > 0, got %.2f", c.BudgetLimit)}
	}
	if c.MaxProjects <= 0 {
		return &ConfigError{"max_projects", fmt.Sprintf("must be > 0, got %d", c.MaxProjects)}
	}
	return nil
}

// RejectReason tags why an initiative was not funded.
type RejectReason string

const (
	ReasonBelowThreshold RejectReason = "below-threshold"
	ReasonBudgetExceeded RejectReason = "budget-exceeded"
	ReasonCountExceeded  RejectReason = "count-exceeded"
)

// Rejection is a scored initiative left out of the portfolio, with the
// constraint that excluded it.
type Rejection struct {
	ScoredInitiative
	Reason    RejectReason
	Rationale string
}

// Portfolio is the funded subset plus everything that was turned down.
// Accepted order is acceptance order; totals cover the accepted set only.
type Portfolio struct {
	Accepted []ScoredInitiative
	Rejected []Rejection

	TotalCost             float64 // initial + 3-year operating, accepted set
	TotalBenefit          float64 // 3-year benefit, accepted set
	TotalNPV              float64
	PortfolioROIPercent   float64
	PortfolioROIUndefined bool
}

// Count returns the number of funded initiatives.
func (p *Portfolio) Count() int {
	return len(p.Accepted)
}

// Select applies threshold, budget and count constraints over the scored
// batch. Candidates are ranked canonically, then accepted greedily first-fit:
// an initiative that would breach the budget is skipped but cheaper ones
// further down the ranking are still considered. Deterministic for identical
// inputs and config.
func Select(scored []ScoredInitiative, cfg Config) (*Portfolio, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	p := &Portfolio{}

	candidates := make([]ScoredInitiative, 0, len(scored))
	for _, s := range scored {
		if s.Metrics.ROIUndefined || s.Metrics.ROIPercent < cfg.MinROIThreshold {
			p.Rejected = append(p.Rejected, Rejection{
				ScoredInitiative: s,
				Reason:           ReasonBelowThreshold,
				Rationale:        fmt.Sprintf("ROI %s below threshold %.1f%%", roiLabel(s), cfg.MinROIThreshold),
			})
			continue
		}
		candidates = append(candidates, s)
	}

	CanonicalSort(candidates)

	var totalCost float64
	for _, s := range candidates {
		cost := s.Metrics.ThreeYearCost
		if totalCost+cost > cfg.BudgetLimit {
			p.Rejected = append(p.Rejected, Rejection{
				ScoredInitiative: s,
				Reason:           ReasonBudgetExceeded,
				Rationale:        fmt.Sprintf("3-year cost %.0f exceeds remaining budget %.0f", cost, cfg.BudgetLimit-totalCost),
			})
			continue
		}
		if len(p.Accepted) >= cfg.MaxProjects {
			p.Rejected = append(p.Rejected, Rejection{
				ScoredInitiative: s,
				Reason:           ReasonCountExceeded,
				Rationale:        fmt.Sprintf("project limit %d reached", cfg.MaxProjects),
			})
			continue
		}

		p.Accepted = append(p.Accepted, s)
		totalCost += cost
		p.TotalBenefit += s.Metrics.ThreeYearBenefit
		p.TotalNPV += s.Metrics.NPV
	}

	p.TotalCost = totalCost
	if totalCost == 0 {
		p.PortfolioROIUndefined = true
	} else {
		p.PortfolioROIPercent = (p.TotalBenefit - p.TotalCost) / p.TotalCost * 100
	}

	return p, nil
}

func roiLabel(s ScoredInitiative) string {
	if s.Metrics.ROIUndefined {
		return "undefined"
	}
	return fmt.Sprintf("%.1f%%", s.Metrics.ROIPercent)
}
