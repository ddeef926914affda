package formatter

import (
	"fmt"
	"strings"

	"github.com/dmaselli/roicanvas/internal/domain"
	"github.com/dmaselli/roicanvas/internal/finance"
)

// FormatInitiativeList renders the captured workbook as a table.
func FormatInitiativeList(initiatives []*domain.Initiative) string {
	if len(initiatives) == 0 {
		return Dim("No initiatives captured yet. Use 'roicanvas capture' or 'roicanvas initiative add'.")
	}

	headers := []string{"ID", "NAME", "INITIAL", "ANNUAL BENEFIT", "MONTHS", "EFFORT", "IMPACT", "RISK"}
	rows := make([][]string, 0, len(initiatives))
	for _, in := range initiatives {
		rows = append(rows, []string{
			Dim(in.DisplayID()),
			Bold(in.Name),
			Money(in.InitialCost),
			Money(in.AnnualBenefit),
			fmt.Sprintf("%d", in.ImplementationMonths),
			string(in.Effort),
			string(in.Impact),
			RiskStyle(in.Risk).Render(string(in.Risk)),
		})
	}

	return RenderBox("Initiatives", RenderTable(headers, rows))
}

// FormatInitiativeInspect renders one initiative with its financial metrics.
func FormatInitiativeInspect(in *domain.Initiative, m finance.Metrics) string {
	var b strings.Builder

	b.WriteString(Header(in.Name))
	b.WriteString("\n\n")

	if in.ProblemStatement != "" {
		b.WriteString(StyleFg.Render(in.ProblemStatement))
		b.WriteString("\n\n")
	}

	field := func(label, value string) {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim(label+":"), value))
	}

	field("ID", in.DisplayID())
	field("Initial cost", Money(in.InitialCost))
	field("Annual operating cost", Money(in.AnnualOperatingCost))
	field("Annual benefit", Money(in.AnnualBenefit))
	field("Implementation", fmt.Sprintf("%d months", in.ImplementationMonths))
	field("Effort", string(in.Effort))
	field("Impact", string(in.Impact))
	field("Risk", RiskStyle(in.Risk).Render(string(in.Risk)))
	field("Strategic value", fmt.Sprintf("%.0f/100", in.StrategicValue))

	b.WriteString("\n")
	b.WriteString(Header("Financials"))
	b.WriteString("\n\n")
	field("3-year ROI", ROI(m))
	field("NPV", Money(m.NPV))
	field("Risk-adjusted value", Money(m.RiskAdjustedValue))
	field("Payback", Payback(m))
	field("3-year benefit", Money(m.ThreeYearBenefit))
	field("3-year cost", Money(m.ThreeYearCost))

	appendList := func(label string, items []string) {
		if len(items) == 0 {
			return
		}
		b.WriteString(fmt.Sprintf("\n%s %s\n", Dim(label+":"), strings.Join(items, ", ")))
	}
	appendList("KPIs", in.KPIs)
	appendList("Dependencies", in.Dependencies)
	appendList("Skills", in.SkillsRequired)
	appendList("Technology", in.TechnologyRequired)
	appendList("Soft benefits", in.SoftBenefits)
	appendList("Risk factors", in.RiskFactors)

	return RenderBox("", b.String())
}
