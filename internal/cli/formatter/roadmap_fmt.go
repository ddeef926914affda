package formatter

import (
	"fmt"
	"strings"

	"github.com/dmaselli/roicanvas/internal/domain"
	"github.com/dmaselli/roicanvas/internal/roadmap"
)

var horizonOrder = []domain.Horizon{domain.HorizonQ1, domain.HorizonYear1, domain.HorizonYear3}

func horizonTitle(h domain.Horizon) string {
	switch h {
	case domain.HorizonQ1:
		return "Q1 — Quick Wins"
	case domain.HorizonYear1:
		return "Year 1 — Strategic Initiatives"
	default:
		return "Years 2-3 — Transformational Projects"
	}
}

// FormatRoadmap renders the dated roadmap grouped by horizon.
func FormatRoadmap(entries []roadmap.Entry) string {
	if len(entries) == 0 {
		return Dim("Roadmap is empty: no initiatives were funded.")
	}

	grouped := roadmap.GroupByHorizon(entries)

	var b strings.Builder
	for _, h := range horizonOrder {
		bucket := grouped[h]
		if len(bucket) == 0 {
			continue
		}

		b.WriteString(Header(horizonTitle(h)))
		b.WriteString("\n\n")

		headers := []string{"NAME", "START", "END", "SCORE", "MILESTONES"}
		rows := make([][]string, 0, len(bucket))
		for _, e := range bucket {
			milestones := strings.Join(e.Milestones, ", ")
			if len(e.Milestones) > 3 {
				milestones = strings.Join(e.Milestones[:3], ", ") + ", ..."
			}
			rows = append(rows, []string{
				Bold(e.Initiative.Name),
				FullDate(e.StartDate),
				FullDate(e.EndDate),
				Score(e.PriorityScore),
				Dim(milestones),
			})
		}
		b.WriteString(RenderTable(headers, rows))

		for _, e := range bucket {
			b.WriteString(fmt.Sprintf("%s %s\n", Dim("·"), Dim(e.Rationale)))
		}
		b.WriteString("\n")
	}

	return RenderBox("Implementation Roadmap", strings.TrimRight(b.String(), "\n"))
}
