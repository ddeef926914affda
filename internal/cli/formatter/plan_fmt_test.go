package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/dmaselli/roicanvas/internal/canvas"
	"github.com/dmaselli/roicanvas/internal/domain"
	"github.com/dmaselli/roicanvas/internal/finance"
	"github.com/dmaselli/roicanvas/internal/portfolio"
	"github.com/dmaselli/roicanvas/internal/roadmap"
	"github.com/stretchr/testify/assert"
)

func scoredFixture(name string, score float64, impact domain.ImpactLevel, effort domain.EffortLevel) portfolio.ScoredInitiative {
	return portfolio.ScoredInitiative{
		Initiative: domain.Initiative{
			ID:     name + "-id",
			Name:   name,
			Impact: impact,
			Effort: effort,
		},
		Metrics: finance.Metrics{
			ROIPercent:       120,
			NPV:              50000,
			ThreeYearCost:    100000,
			ThreeYearBenefit: 220000,
			PaybackMonths:    14,
		},
		PriorityScore: score,
		Quadrant:      portfolio.QuadrantFor(impact, effort),
	}
}

func TestFormatScoreTable_RanksByScore(t *testing.T) {
	scored := []portfolio.ScoredInitiative{
		scoredFixture("Low scorer", 30, domain.ImpactLow, domain.EffortHigh),
		scoredFixture("Top scorer", 90, domain.ImpactHigh, domain.EffortLow),
	}

	out := FormatScoreTable(scored)

	assert.Contains(t, out, "Top scorer")
	assert.Contains(t, out, "Low scorer")
	assert.Contains(t, out, "Quick Win")
	assert.Less(t, strings.Index(out, "Top scorer"), strings.Index(out, "Low scorer"))
}

func TestFormatPortfolio(t *testing.T) {
	p := &portfolio.Portfolio{
		Accepted: []portfolio.ScoredInitiative{
			scoredFixture("Funded", 80, domain.ImpactHigh, domain.EffortLow),
		},
		Rejected: []portfolio.Rejection{
			{
				ScoredInitiative: scoredFixture("Too expensive", 60, domain.ImpactHigh, domain.EffortHigh),
				Reason:           portfolio.ReasonBudgetExceeded,
				Rationale:        "3-year cost 500000 exceeds remaining budget 100000",
			},
		},
		TotalCost:           100000,
		TotalBenefit:        220000,
		TotalNPV:            50000,
		PortfolioROIPercent: 120,
	}

	out := FormatPortfolio(p)

	assert.Contains(t, out, "Funded")
	assert.Contains(t, out, "Too expensive")
	assert.Contains(t, out, "budget-exceeded")
	assert.Contains(t, out, "120.0%")
}

func TestFormatPortfolio_Empty(t *testing.T) {
	p := &portfolio.Portfolio{PortfolioROIUndefined: true}
	out := FormatPortfolio(p)
	assert.Contains(t, out, "No initiatives met the selection constraints")
	assert.Contains(t, out, "n/a")
}

func TestFormatSummary(t *testing.T) {
	out := FormatSummary(finance.PortfolioSummary{
		Count:                 3,
		TotalThreeYearBenefit: 900000,
		TotalThreeYearCost:    400000,
		TotalNPV:              300000,
		AverageROIPercent:     85,
		PortfolioROIPercent:   125,
		NeverPaybackCount:     1,
	})

	assert.Contains(t, out, "3")
	assert.Contains(t, out, "$900.0K")
	assert.Contains(t, out, "125.0%")
	assert.Contains(t, out, "Never pay back")
}

func TestFormatMatrix(t *testing.T) {
	scored := []portfolio.ScoredInitiative{
		scoredFixture("Chatbot", 80, domain.ImpactHigh, domain.EffortLow),
		scoredFixture("Big bet", 55, domain.ImpactHigh, domain.EffortHigh),
	}

	out := FormatMatrix(scored)

	assert.Contains(t, out, "Chatbot")
	assert.Contains(t, out, "Big bet")
	assert.Contains(t, out, "Quick Win")
	assert.Contains(t, out, "Avoid")
}

func TestFormatRoadmap(t *testing.T) {
	start := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)
	entries := []roadmap.Entry{
		{
			ScoredInitiative: scoredFixture("Chatbot", 80, domain.ImpactHigh, domain.EffortLow),
			Horizon:          domain.HorizonQ1,
			StartDate:        start,
			EndDate:          start.AddDate(0, 3, 0),
			Milestones:       []string{"Project Kickoff", "UAT & Validation", "Production Deployment", "Benefits Realization Review"},
			Rationale:        "Quick win: Low effort with High impact, 3 month implementation",
		},
	}

	out := FormatRoadmap(entries)

	assert.Contains(t, out, "Quick Wins")
	assert.Contains(t, out, "Chatbot")
	assert.Contains(t, out, "2026-04-01")
	assert.Contains(t, out, "2026-07-01")
	assert.Contains(t, out, "...")
	assert.Contains(t, out, "Quick win:")
}

func TestFormatRoadmap_Empty(t *testing.T) {
	assert.Contains(t, FormatRoadmap(nil), "Roadmap is empty")
}

func TestFormatCanvas(t *testing.T) {
	c := &canvas.Canvas{
		Header: canvas.Header{
			Title:        canvas.DefaultTitle,
			Organization: "Acme Corp",
			Version:      canvas.Version,
			Date:         time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC),
		},
		Objectives: canvas.Objectives{PrimaryGoal: "Automate operations"},
		Impacts:    canvas.Impacts{TotalThreeYearBenefit: 500000, TotalNPV: 120000, AverageROIPercent: 80},
		Costs:      canvas.Costs{NearTerm: 100000, LongTerm: 300000, AnnualMaintenance: 50000},
		Benefits:   canvas.Benefits{NearTerm: 60000, LongTerm: 500000},
		PortfolioROI: canvas.PortfolioROI{
			NearTermPercent: -40,
			LongTermPercent: 25,
			Note:            "Portfolio of 2 initiatives",
		},
		Footer: canvas.Footer{CreditLine: "Generated by roicanvas"},
	}

	out := FormatCanvas(c)

	assert.Contains(t, out, "AI ROI & Roadmap Canvas")
	assert.Contains(t, out, "Acme Corp")
	assert.Contains(t, out, "Automate operations")
	assert.Contains(t, out, "$500.0K")
	assert.Contains(t, out, "25.0%")
	assert.Contains(t, out, "Generated by roicanvas")
}
