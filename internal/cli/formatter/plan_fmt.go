package formatter

import (
	"fmt"
	"strings"

	"github.com/dmaselli/roicanvas/internal/finance"
	"github.com/dmaselli/roicanvas/internal/portfolio"
)

// FormatScoreTable renders the scored batch ranked by priority.
func FormatScoreTable(scored []portfolio.ScoredInitiative) string {
	ranked := make([]portfolio.ScoredInitiative, len(scored))
	copy(ranked, scored)
	portfolio.CanonicalSort(ranked)

	headers := []string{"RANK", "NAME", "SCORE", "QUADRANT", "TIER", "ROI", "NPV", "PAYBACK"}
	rows := make([][]string, 0, len(ranked))
	for i, s := range ranked {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			Bold(s.Initiative.Name),
			Score(s.PriorityScore),
			s.Quadrant.Label,
			TierStyle(s.Quadrant.Tier).Render(string(s.Quadrant.Tier)),
			ROI(s.Metrics),
			Money(s.Metrics.NPV),
			Payback(s.Metrics),
		})
	}

	return RenderBox("Priority Ranking", RenderTable(headers, rows))
}

// FormatPortfolio renders the funded set, the rejections and the totals.
func FormatPortfolio(p *portfolio.Portfolio) string {
	var b strings.Builder

	if p.Count() == 0 {
		b.WriteString(StyleRed.Render("No initiatives met the selection constraints."))
		b.WriteString("\n\n")
	} else {
		headers := []string{"NAME", "SCORE", "3YR COST", "3YR BENEFIT", "NPV"}
		rows := make([][]string, 0, p.Count())
		for _, s := range p.Accepted {
			rows = append(rows, []string{
				Bold(s.Initiative.Name),
				Score(s.PriorityScore),
				Money(s.Metrics.ThreeYearCost),
				Money(s.Metrics.ThreeYearBenefit),
				Money(s.Metrics.NPV),
			})
		}
		b.WriteString(RenderTable(headers, rows))
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("%s %s", Dim("Total cost:"), Money(p.TotalCost)))
	b.WriteString(fmt.Sprintf("   %s %s", Dim("Total benefit:"), Money(p.TotalBenefit)))
	b.WriteString(fmt.Sprintf("   %s %s", Dim("Total NPV:"), Money(p.TotalNPV)))
	if p.PortfolioROIUndefined {
		b.WriteString(fmt.Sprintf("   %s %s", Dim("Portfolio ROI:"), Dim("n/a")))
	} else {
		b.WriteString(fmt.Sprintf("   %s %s", Dim("Portfolio ROI:"), Percent(p.PortfolioROIPercent)))
	}
	b.WriteString("\n")

	if len(p.Rejected) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Not funded"))
		b.WriteString("\n\n")
		for _, r := range p.Rejected {
			b.WriteString(fmt.Sprintf("%s %s %s\n",
				StyleRed.Render("✗"),
				Bold(r.Initiative.Name),
				Dim(fmt.Sprintf("(%s: %s)", r.Reason, r.Rationale)),
			))
		}
	}

	return RenderBox("Selected Portfolio", b.String())
}

// FormatSummary renders workbook-wide financial aggregates.
func FormatSummary(s finance.PortfolioSummary) string {
	var b strings.Builder

	field := func(label, value string) {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim(label+":"), value))
	}

	field("Initiatives", fmt.Sprintf("%d", s.Count))
	field("Total 3-year benefit", Money(s.TotalThreeYearBenefit))
	field("Total 3-year cost", Money(s.TotalThreeYearCost))
	field("Total NPV", Money(s.TotalNPV))
	field("Total risk-adjusted value", Money(s.TotalRiskAdjustedValue))
	field("Average ROI", Percent(s.AverageROIPercent))
	if s.PortfolioROIUndefined {
		field("Portfolio ROI", Dim("n/a"))
	} else {
		field("Portfolio ROI", Percent(s.PortfolioROIPercent))
	}
	if s.NeverPaybackCount > 0 {
		field("Never pay back", StyleRed.Render(fmt.Sprintf("%d", s.NeverPaybackCount)))
	}

	return RenderBox("Workbook Summary", b.String())
}
