package formatter

import (
	"fmt"
	"strings"

	"github.com/dmaselli/roicanvas/internal/canvas"
)

// FormatCanvas renders the assembled canvas document for the terminal.
func FormatCanvas(c *canvas.Canvas) string {
	var b strings.Builder

	b.WriteString(StyleHeader.Render(c.Header.Title))
	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("%s · v%s · %s", c.Header.Organization, c.Header.Version, Date(c.Header.Date))))
	if c.Header.DesignedBy != "" || c.Header.DesignedFor != "" {
		b.WriteString("\n")
		b.WriteString(Dim(fmt.Sprintf("Designed by %s for %s", c.Header.DesignedBy, c.Header.DesignedFor)))
	}
	b.WriteString("\n\n")

	section := func(title string) {
		b.WriteString(Header(title))
		b.WriteString("\n")
	}
	list := func(items []string) {
		for _, item := range items {
			b.WriteString(fmt.Sprintf("  %s %s\n", Dim("•"), item))
		}
	}

	section("Objectives")
	b.WriteString(fmt.Sprintf("  %s\n", Bold(c.Objectives.PrimaryGoal)))
	list(c.Objectives.StrategicFocus)
	b.WriteString("\n")

	section("Inputs")
	list(c.Inputs.Resources)
	list(c.Inputs.Personnel)
	b.WriteString("\n")

	section("Impacts")
	b.WriteString(fmt.Sprintf("  %s %s\n", Dim("3-year benefit:"), Money(c.Impacts.TotalThreeYearBenefit)))
	b.WriteString(fmt.Sprintf("  %s %s\n", Dim("Total NPV:"), Money(c.Impacts.TotalNPV)))
	b.WriteString(fmt.Sprintf("  %s %s\n", Dim("Average ROI:"), Percent(c.Impacts.AverageROIPercent)))
	list(c.Impacts.SoftBenefits)
	b.WriteString("\n")

	if len(c.Timeline) > 0 {
		section("Timeline")
		headers := []string{"INITIATIVE", "HORIZON", "START", "END"}
		rows := make([][]string, 0, len(c.Timeline))
		for _, row := range c.Timeline {
			rows = append(rows, []string{
				Bold(row.Initiative),
				string(row.Horizon),
				FullDate(row.StartDate),
				FullDate(row.EndDate),
			})
		}
		b.WriteString(RenderTable(headers, rows))
		b.WriteString("\n")
	}

	section("Risks")
	list(c.Risks.Risks)
	b.WriteString("\n")

	section("Capabilities")
	list(c.Capabilities.SkillsNeeded)
	list(c.Capabilities.Technology)
	b.WriteString("\n")

	section("Costs")
	b.WriteString(fmt.Sprintf("  %s %s\n", Dim("Near-term:"), Money(c.Costs.NearTerm)))
	b.WriteString(fmt.Sprintf("  %s %s\n", Dim("Long-term:"), Money(c.Costs.LongTerm)))
	b.WriteString(fmt.Sprintf("  %s %s\n", Dim("Annual maintenance:"), Money(c.Costs.AnnualMaintenance)))
	b.WriteString("\n")

	section("Benefits")
	b.WriteString(fmt.Sprintf("  %s %s\n", Dim("Near-term:"), Money(c.Benefits.NearTerm)))
	b.WriteString(fmt.Sprintf("  %s %s\n", Dim("Long-term:"), Money(c.Benefits.LongTerm)))
	b.WriteString("\n")

	section("Portfolio ROI")
	if c.PortfolioROI.NearTermUndefined {
		b.WriteString(fmt.Sprintf("  %s %s\n", Dim("Near-term:"), Dim("n/a")))
	} else {
		b.WriteString(fmt.Sprintf("  %s %s\n", Dim("Near-term:"), Percent(c.PortfolioROI.NearTermPercent)))
	}
	if c.PortfolioROI.LongTermUndefined {
		b.WriteString(fmt.Sprintf("  %s %s\n", Dim("Long-term:"), Dim("n/a")))
	} else {
		b.WriteString(fmt.Sprintf("  %s %s\n", Dim("Long-term:"), Percent(c.PortfolioROI.LongTermPercent)))
	}
	b.WriteString(fmt.Sprintf("  %s\n\n", Dim(c.PortfolioROI.Note)))

	b.WriteString(Dim(c.Footer.CreditLine))

	return RenderBox("", b.String())
}
