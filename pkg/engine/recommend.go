package engine

import (
	"context"
	"fmt"

	"github.com/stefanpenner/wrangle/pkg/item"
)

// maxAlternatives bounds the runner-up list in a recommendation.
const maxAlternatives = 3

// Recommendation is the result of best-task selection. Best is nil when
// nothing is actionable; callers render a "no available tasks" message.
type Recommendation struct {
	Best         *item.WorkItem
	Reasons      []string
	Alternatives []item.WorkItem
	Warnings     []string
}

// DependencyChecker optionally confirms, against a remote tracker, that an
// item has no outstanding dependency links. Implementations must treat this
// as advisory: the recommender fails open on any error.
type DependencyChecker interface {
	// CheckDependencyLinks reports whether the item has unresolved
	// dependency links on the remote side.
	CheckDependencyLinks(ctx context.Context, id string) (bool, error)
}

// RecommendNext selects the best next task from the snapshot: the ready item
// with the minimum score, ties broken by snapshot order. Alternatives are
// the next-ranked ready items, never including the best item itself.
func RecommendNext(items []item.WorkItem) Recommendation {
	return recommend(ScoreAndRank(items), nil)
}

// RecommendNextChecked is RecommendNext with an optional per-candidate
// remote dependency check. A candidate whose check reports outstanding links
// is skipped; a check that errors is treated as "no dependency" and recorded
// as a warning, never as a failure of the whole recommendation.
func RecommendNextChecked(ctx context.Context, items []item.WorkItem, checker DependencyChecker) Recommendation {
	ranked := ScoreAndRank(items)
	if checker == nil {
		return recommend(ranked, nil)
	}

	var warnings []string
	kept := ranked[:0]
	for _, c := range ranked {
		linked, err := checker.CheckDependencyLinks(ctx, c.Item.ID)
		if err != nil {
			// Fail open: availability beats strict correctness here.
			warnings = append(warnings, fmt.Sprintf("dependency check failed for %s: %v (treating as unblocked)", c.Item.ID, err))
			kept = append(kept, c)
			continue
		}
		if !linked {
			kept = append(kept, c)
		}
	}
	return recommend(kept, warnings)
}

func recommend(ranked []ScoredCandidate, warnings []string) Recommendation {
	rec := Recommendation{Warnings: warnings}
	if len(ranked) == 0 {
		return rec
	}

	best := ranked[0].Item
	rec.Best = &best
	rec.Reasons = Reasons(best)

	for _, c := range ranked[1:] {
		if c.Item.ID == best.ID {
			continue
		}
		rec.Alternatives = append(rec.Alternatives, c.Item)
		if len(rec.Alternatives) == maxAlternatives {
			break
		}
	}
	return rec
}

// Reasons derives the human-readable justification for recommending an item.
// It is pure presentation over the same predicates the scorer uses.
func Reasons(it item.WorkItem) []string {
	var reasons []string
	if it.Type == item.TypeBug {
		reasons = append(reasons, "bug, needs immediate attention")
	}
	if it.Priority == item.HighestPriority {
		reasons = append(reasons, "highest priority")
	}
	if it.Remaining > 0 && it.Remaining <= quickWinHours {
		reasons = append(reasons, fmt.Sprintf("quick win (%.0fh remaining)", it.Remaining))
	}
	if it.HasTag("critical") {
		reasons = append(reasons, "tagged as critical")
	}
	if it.HasTag("urgent") {
		reasons = append(reasons, "tagged as urgent")
	}
	if len(reasons) == 0 {
		reasons = append(reasons, fmt.Sprintf("top of the ready queue (priority %d)", it.Priority))
	}
	return reasons
}
