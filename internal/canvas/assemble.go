package canvas

import (
	"fmt"

	"github.com/dmaselli/roicanvas/internal/domain"
	"github.com/dmaselli/roicanvas/internal/portfolio"
	"github.com/dmaselli/roicanvas/internal/roadmap"
)

// Section list caps keep the canvas readable when many initiatives
// contribute overlapping skills, risks and benefits.
const (
	maxSkills       = 10
	maxRisks        = 8
	maxSoftImpacts  = 8
	maxSoftBenefits = 5
)

var defaultResources = []string{
	"Budget allocation", "Computing infrastructure", "Data assets",
}

var defaultExternalSupport = []string{
	"AI/ML consultants", "Technology vendors", "Training providers",
}

var defaultMitigations = []string{
	"Phased implementation approach",
	"Regular progress reviews",
	"Change management program",
	"Technical proof-of-concepts",
}

// Assemble merges the pipeline outputs into canvas sections. Initiatives is
// the full captured set (aggregated capabilities draw on everything, not
// just the funded subset); entries cover the funded subset only.
func Assemble(meta Meta, initiatives []domain.Initiative, p *portfolio.Portfolio, entries []roadmap.Entry) Canvas {
	var skills, tech, risks, soft []string
	for _, in := range initiatives {
		skills = append(skills, in.SkillsRequired...)
		tech = append(tech, in.TechnologyRequired...)
		risks = append(risks, in.RiskFactors...)
		soft = append(soft, in.SoftBenefits...)
	}
	skills = dedupCap(skills, maxSkills)
	tech = dedupCap(tech, maxSkills)
	risks = dedupCap(risks, maxRisks)

	costs, benefits := horizonSplit(entries)
	benefits.SoftBenefits = dedupCap(soft, maxSoftBenefits)

	var totalRAV float64
	for _, s := range p.Accepted {
		totalRAV += s.Metrics.RiskAdjustedValue
	}

	return Canvas{
		Header: Header{
			Title:        DefaultTitle,
			Organization: meta.Organization,
			DesignedBy:   meta.DesignedBy,
			DesignedFor:  meta.DesignedFor,
			Date:         meta.Date,
			Version:      Version,
		},
		Objectives: Objectives{
			PrimaryGoal:    meta.PrimaryGoal,
			StrategicFocus: meta.StrategicFocus,
		},
		Inputs: Inputs{
			Resources:       defaultResources,
			Personnel:       skills,
			ExternalSupport: defaultExternalSupport,
		},
		Impacts: Impacts{
			TotalThreeYearBenefit: p.TotalBenefit,
			TotalNPV:              p.TotalNPV,
			AverageROIPercent:     averageROI(p),
			SoftBenefits:          dedupCap(soft, maxSoftImpacts),
		},
		Timeline: timelineRows(entries),
		Risks: Risks{
			Risks:       risks,
			Mitigations: defaultMitigations,
		},
		Capabilities: Capabilities{
			SkillsNeeded: skills,
			Technology:   tech,
		},
		Costs:    costs,
		Benefits: benefits,
		PortfolioROI: portfolioROI(costs, benefits,
			fmt.Sprintf("Portfolio of %d initiatives with risk-adjusted value of %.0f", p.Count(), totalRAV)),
		Footer: Footer{CreditLine: creditLine},
	}
}

// horizonSplit computes the cost and benefit sections. Near-term counts Q1
// initial outlay and a quarter of the annual net benefit; long-term counts
// the post-Q1 total cost of ownership and the full 3-year benefit of every
// scheduled initiative.
func horizonSplit(entries []roadmap.Entry) (Costs, Benefits) {
	var c Costs
	var b Benefits
	for _, e := range entries {
		in := e.Initiative
		c.AnnualMaintenance += in.AnnualOperatingCost
		b.LongTerm += e.Metrics.ThreeYearBenefit

		if e.Horizon == domain.HorizonQ1 {
			c.NearTerm += in.InitialCost
			b.NearTerm += e.Metrics.AnnualNetBenefit * 0.25
		} else {
			c.LongTerm += in.InitialCost + in.AnnualOperatingCost*3
		}
	}
	return c, b
}

func portfolioROI(c Costs, b Benefits, note string) PortfolioROI {
	roi := PortfolioROI{Note: note}

	if c.NearTerm == 0 {
		roi.NearTermUndefined = true
	} else {
		roi.NearTermPercent = (b.NearTerm - c.NearTerm) / c.NearTerm * 100
	}

	totalCost := c.NearTerm + c.LongTerm
	if totalCost == 0 {
		roi.LongTermUndefined = true
	} else {
		roi.LongTermPercent = (b.LongTerm - totalCost) / totalCost * 100
	}

	return roi
}

func averageROI(p *portfolio.Portfolio) float64 {
	if len(p.Accepted) == 0 {
		return 0
	}
	var sum float64
	var n int
	for _, s := range p.Accepted {
		if s.Metrics.ROIUndefined {
			continue
		}
		sum += s.Metrics.ROIPercent
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

func timelineRows(entries []roadmap.Entry) []TimelineRow {
	rows := make([]TimelineRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, TimelineRow{
			Initiative: e.Initiative.Name,
			Horizon:    e.Horizon,
			StartDate:  e.StartDate,
			EndDate:    e.EndDate,
			Milestones: e.Milestones,
		})
	}
	return rows
}

// dedupCap drops duplicates preserving first-seen order and truncates to n.
// First-seen order keeps the canvas deterministic across runs.
func dedupCap(items []string, n int) []string {
	seen := map[string]bool{}
	out := make([]string, 0, len(items))
	for _, s := range items {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
		if len(out) == n {
			break
		}
	}
	return out
}
