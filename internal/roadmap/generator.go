// Package roadmap schedules a funded portfolio onto calendar time horizons.
package roadmap

import (
	"fmt"
	"time"

	"github.com/dmaselli/roicanvas/internal/domain"
	"github.com/dmaselli/roicanvas/internal/portfolio"
)

// Policy holds the horizon-assignment thresholds and the per-horizon
// scheduling offsets. Offsets and stagger steps are expressed in half-month
// units so the Year1 1.5-month stagger stays integral.
type Policy struct {
	Q1ScoreCutoff       float64
	Q1MaxMonths         int
	Year1ScoreCutoff    float64
	Year3MonthsBoundary int

	Offsets  map[domain.Horizon]int // half-months from plan start to the bucket's first slot
	Staggers map[domain.Horizon]int // half-months between consecutive entries in a bucket
}

// DefaultPolicy schedules Q1 from plan start with monthly slots, Year1 from
// month 4 with 1.5-month slots and Year3 from month 13 with quarterly slots.
func DefaultPolicy() Policy {
	return Policy{
		Q1ScoreCutoff:       60,
		Q1MaxMonths:         3,
		Year1ScoreCutoff:    40,
		Year3MonthsBoundary: 12,
		Offsets: map[domain.Horizon]int{
			domain.HorizonQ1:    0,
			domain.HorizonYear1: 8,
			domain.HorizonYear3: 26,
		},
		Staggers: map[domain.Horizon]int{
			domain.HorizonQ1:    2,
			domain.HorizonYear1: 3,
			domain.HorizonYear3: 6,
		},
	}
}

// Entry is a funded initiative placed on the roadmap.
type Entry struct {
	portfolio.ScoredInitiative

	Horizon    domain.Horizon
	StartDate  time.Time
	EndDate    time.Time
	Milestones []string
	Rationale  string
}

// Generate assigns every accepted initiative to exactly one horizon and
// computes its calendar dates. Entries keep the portfolio's acceptance order;
// within a horizon, each entry starts one stagger step after the previous one.
func Generate(p Policy, accepted []portfolio.ScoredInitiative, planStart time.Time) []Entry {
	entries := make([]Entry, 0, len(accepted))
	slot := map[domain.Horizon]int{}

	for _, s := range accepted {
		h := horizonFor(p, s)

		start := addHalfMonths(planStart, p.Offsets[h]+slot[h]*p.Staggers[h])
		slot[h]++

		entries = append(entries, Entry{
			ScoredInitiative: s,
			Horizon:          h,
			StartDate:        start,
			EndDate:          start.AddDate(0, s.Initiative.ImplementationMonths, 0),
			Milestones:       milestonesFor(s.Initiative.ImplementationMonths),
			Rationale:        rationaleFor(s, h),
		})
	}

	return entries
}

// horizonFor applies the assignment rules in fixed priority order. The
// High-effort / long-timeline check runs before the Year1 rules, so a
// high-scoring 14-month project still lands in Year3.
func horizonFor(p Policy, s portfolio.ScoredInitiative) domain.Horizon {
	in := s.Initiative
	switch {
	case in.Effort == domain.EffortLow && s.PriorityScore >= p.Q1ScoreCutoff && in.ImplementationMonths <= p.Q1MaxMonths:
		return domain.HorizonQ1
	case in.Effort == domain.EffortHigh || in.ImplementationMonths > p.Year3MonthsBoundary:
		return domain.HorizonYear3
	case in.Effort == domain.EffortMedium && s.PriorityScore >= p.Year1ScoreCutoff:
		return domain.HorizonYear1
	default:
		return domain.HorizonYear1
	}
}

func rationaleFor(s portfolio.ScoredInitiative, h domain.Horizon) string {
	in := s.Initiative
	switch h {
	case domain.HorizonQ1:
		return fmt.Sprintf("Quick win: %s effort with %s impact, %d month implementation",
			in.Effort, in.Impact, in.ImplementationMonths)
	case domain.HorizonYear1:
		return fmt.Sprintf("Strategic initiative: %s effort, score %.1f, targeting first-year delivery",
			in.Effort, s.PriorityScore)
	default:
		return fmt.Sprintf("Transformational project: %s effort, %d month timeline, long-term strategic value",
			in.Effort, in.ImplementationMonths)
	}
}

// addHalfMonths advances t by h half-months, counting a half-month as the
// calendar 15th so month-length drift stays bounded.
func addHalfMonths(t time.Time, h int) time.Time {
	return t.AddDate(0, h/2, (h%2)*15)
}

// GroupByHorizon buckets entries without disturbing their relative order.
func GroupByHorizon(entries []Entry) map[domain.Horizon][]Entry {
	grouped := map[domain.Horizon][]Entry{}
	for _, e := range entries {
		grouped[e.Horizon] = append(grouped[e.Horizon], e)
	}
	return grouped
}
