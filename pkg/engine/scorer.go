package engine

import (
	"sort"

	"github.com/stefanpenner/wrangle/pkg/item"
)

// Scoring weights. Priority is the primary key: one priority tier (200)
// outweighs every bonus combined (105), so no stack of bonuses can flip a
// tier comparison.
const (
	priorityWeight = 200
	bugBonus       = 50
	quickWinBonus  = 25
	urgentTagBonus = 30

	// quickWinHours is the remaining-work threshold under which an item
	// counts as a quick win. Unknown remaining work (0) never qualifies.
	quickWinHours = 2.0
)

// ScoredCandidate pairs a work item with its rank score. Lower scores rank
// higher. Scores are only comparable within one snapshot.
type ScoredCandidate struct {
	Item  item.WorkItem
	Score int
}

// Score computes the rank score for a single work item. Missing priority or
// remaining work never errors: normalization has already coerced them to the
// lowest urgency tier and "unknown" respectively.
func Score(it item.WorkItem) int {
	prio := it.Priority
	if prio < item.HighestPriority {
		prio = item.LowestPriority
	}
	score := prio * priorityWeight

	if it.Type == item.TypeBug {
		score -= bugBonus
	}
	if it.Remaining > 0 && it.Remaining <= quickWinHours {
		score -= quickWinBonus
	}
	if it.HasTag("critical") || it.HasTag("urgent") {
		score -= urgentTagBonus
	}
	return score
}

// ScoreAndRank scores the ready subset of the snapshot and returns it sorted
// ascending by score. The sort is stable, so ties keep snapshot order.
func ScoreAndRank(items []item.WorkItem) []ScoredCandidate {
	ready, _ := ResolveReadiness(items)

	candidates := make([]ScoredCandidate, 0, len(ready))
	for _, it := range ready {
		candidates = append(candidates, ScoredCandidate{Item: it, Score: Score(it)})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score < candidates[j].Score
	})
	return candidates
}
