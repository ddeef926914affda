package portfolio

import (
	"testing"

	"github.com/dmaselli/roicanvas/internal/domain"
	"github.com/stretchr/testify/assert"
)

func scoredItem(id string, score, initialCost float64, order int) ScoredInitiative {
	return ScoredInitiative{
		Initiative:    domain.Initiative{ID: id, InitialCost: initialCost},
		PriorityScore: score,
		InputOrder:    order,
	}
}

func TestCanonicalSort_ScoreDescending(t *testing.T) {
	items := []ScoredInitiative{
		scoredItem("low", 20, 0, 0),
		scoredItem("high", 80, 0, 1),
		scoredItem("mid", 50, 0, 2),
	}
	CanonicalSort(items)

	assert.Equal(t, "high", items[0].Initiative.ID)
	assert.Equal(t, "mid", items[1].Initiative.ID)
	assert.Equal(t, "low", items[2].Initiative.ID)
}

func TestCanonicalSort_TieBreaksOnCost(t *testing.T) {
	// Both score 70: the cheaper one ranks first.
	items := []ScoredInitiative{
		scoredItem("pricey", 70, 50000, 0),
		scoredItem("cheap", 70, 10000, 1),
	}
	CanonicalSort(items)

	assert.Equal(t, "cheap", items[0].Initiative.ID)
	assert.Equal(t, "pricey", items[1].Initiative.ID)
}

func TestCanonicalSort_TieBreaksOnInputOrder(t *testing.T) {
	items := []ScoredInitiative{
		scoredItem("second", 70, 10000, 1),
		scoredItem("first", 70, 10000, 0),
	}
	CanonicalSort(items)

	assert.Equal(t, "first", items[0].Initiative.ID)
	assert.Equal(t, "second", items[1].Initiative.ID)
}
