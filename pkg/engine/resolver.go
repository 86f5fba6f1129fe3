// Package engine implements the readiness and prioritization core: given a
// snapshot of work items with declared dependencies, it determines which are
// actionable now, which are blocked and why, and recommends a single best
// next task. Everything here is a pure, single-pass function over one
// snapshot; no state survives between calls.
package engine

import "github.com/stefanpenner/wrangle/pkg/item"

// BlockedTag marks items manually flagged as blocked, independent of the
// dependency graph.
const BlockedTag = "blocked"

// Readiness is the per-item result of dependency resolution.
type Readiness struct {
	ID        string
	Ready     bool
	BlockedBy []string // dependency ids that are unresolved or missing
}

// Blocked pairs a blocked item with the dependency ids holding it back.
type Blocked struct {
	Item    item.WorkItem
	Reasons []string
}

// Resolve computes readiness for every open item in the snapshot. Items that
// are not open appear in neither result; a closed item is simply out of
// scope, not "blocked".
//
// A dependency resolves only when the referenced item exists in the snapshot
// and is closed. Ids that point outside the snapshot block the dependent
// item and are reported in BlockedBy alongside unresolved in-snapshot ids.
func Resolve(items []item.WorkItem) []Readiness {
	byID := make(map[string]*item.WorkItem, len(items))
	for i := range items {
		byID[items[i].ID] = &items[i]
	}

	var results []Readiness
	for i := range items {
		it := &items[i]
		if !it.IsOpen() {
			continue
		}

		var blockedBy []string
		for _, dep := range it.DependsOn {
			target, ok := byID[dep]
			if !ok || !target.IsClosed() {
				blockedBy = append(blockedBy, dep)
			}
		}

		results = append(results, Readiness{
			ID:        it.ID,
			Ready:     len(blockedBy) == 0,
			BlockedBy: blockedBy,
		})
	}
	return results
}

// ResolveReadiness partitions the snapshot into the ready set and the
// blocked set, in snapshot order.
func ResolveReadiness(items []item.WorkItem) (ready []item.WorkItem, blocked []Blocked) {
	byID := make(map[string]item.WorkItem, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}

	for _, r := range Resolve(items) {
		it := byID[r.ID]
		if r.Ready {
			ready = append(ready, it)
		} else {
			blocked = append(blocked, Blocked{Item: it, Reasons: r.BlockedBy})
		}
	}
	return ready, blocked
}

// TaggedBlocked returns open items carrying the "blocked" tag. This is the
// manual-flag filter used by reporting commands; it ignores the dependency
// graph entirely.
func TaggedBlocked(items []item.WorkItem) []item.WorkItem {
	var out []item.WorkItem
	for _, it := range items {
		if it.IsOpen() && it.HasTag(BlockedTag) {
			out = append(out, it)
		}
	}
	return out
}
