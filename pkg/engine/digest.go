package engine

import "github.com/stefanpenner/wrangle/pkg/item"

// Digest aggregates resolver and scorer output into the shapes the reporting
// commands (standup, blocked, board) render. It adds no semantics of its
// own.
type Digest struct {
	InProgress  []item.WorkItem
	Ready       []ScoredCandidate // ascending by score
	Blocked     []Blocked         // graph-blocked, with reasons
	Tagged      []item.WorkItem   // manually tagged as blocked
	ClosedCount int
	TotalCount  int
	Recommended Recommendation
}

// BuildDigest runs the full readiness/scoring pass over a snapshot and
// gathers everything a status report needs.
func BuildDigest(items []item.WorkItem) Digest {
	d := Digest{
		TotalCount:  len(items),
		Ready:       ScoreAndRank(items),
		Tagged:      TaggedBlocked(items),
		Recommended: RecommendNext(items),
	}

	_, d.Blocked = ResolveReadiness(items)

	for _, it := range items {
		switch it.Status {
		case item.StatusInProgress:
			d.InProgress = append(d.InProgress, it)
		case item.StatusClosed:
			d.ClosedCount++
		}
	}
	return d
}

// ReadyCount returns the number of actionable items in the digest.
func (d Digest) ReadyCount() int { return len(d.Ready) }

// BlockedCount returns the number of graph-blocked items in the digest.
func (d Digest) BlockedCount() int { return len(d.Blocked) }
