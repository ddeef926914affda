package portfolio

import "sort"

// Less is the canonical ranking order for scored initiatives:
// 1. Priority score: higher first
// 2. Initial cost: lower first
// 3. Input order: earlier first
// The chain is total for any batch produced by ScoreBatch, so ranking is
// bit-identical across runs.
func Less(a, b ScoredInitiative) bool {
	if a.PriorityScore != b.PriorityScore {
		return a.PriorityScore > b.PriorityScore
	}
	if a.Initiative.InitialCost != b.Initiative.InitialCost {
		return a.Initiative.InitialCost < b.Initiative.InitialCost
	}
	return a.InputOrder < b.InputOrder
}

// CanonicalSort sorts scored initiatives in place by the canonical order.
func CanonicalSort(items []ScoredInitiative) {
	sort.SliceStable(items, func(i, j int) bool {
		return Less(items[i], items[j])
	})
}
