package formatter

import (
	"fmt"
	"strings"

	"github.com/dmaselli/roicanvas/internal/domain"
	"github.com/dmaselli/roicanvas/internal/portfolio"
)

// FormatMatrix renders the impact-effort quadrant grid with the initiatives
// placed in their cells. Rows run from High impact down to Low, columns from
// Low effort to High.
func FormatMatrix(scored []portfolio.ScoredInitiative) string {
	impacts := []domain.ImpactLevel{domain.ImpactHigh, domain.ImpactMedium, domain.ImpactLow}
	efforts := []domain.EffortLevel{domain.EffortLow, domain.EffortMedium, domain.EffortHigh}

	cells := map[domain.ImpactLevel]map[domain.EffortLevel][]string{}
	for _, imp := range impacts {
		cells[imp] = map[domain.EffortLevel][]string{}
	}
	for _, s := range scored {
		cells[s.Initiative.Impact][s.Initiative.Effort] = append(
			cells[s.Initiative.Impact][s.Initiative.Effort], s.Initiative.Name)
	}

	headers := []string{"IMPACT \\ EFFORT", "LOW", "MEDIUM", "HIGH"}
	rows := make([][]string, 0, len(impacts))
	for _, imp := range impacts {
		row := []string{Bold(string(imp))}
		for _, eff := range efforts {
			q := portfolio.QuadrantFor(imp, eff)
			names := cells[imp][eff]
			if len(names) == 0 {
				row = append(row, Dim(fmt.Sprintf("%s (%s)", q.Label, q.Tier)))
				continue
			}
			label := TierStyle(q.Tier).Render(fmt.Sprintf("%s (%s)", q.Label, q.Tier))
			row = append(row, fmt.Sprintf("%s: %s", label, strings.Join(names, ", ")))
		}
		rows = append(rows, row)
	}

	return RenderBox("Impact-Effort Matrix", RenderTable(headers, rows))
}
