// Package item defines the normalized work-item model shared by the local
// markdown store, the remote tracker clients, and the readiness engine.
package item

import "strings"

// Status is the canonical lifecycle state of a work item. Source vocabularies
// vary wildly ("to do", "active", "done", ...); everything is collapsed to
// one of three states before the engine sees it.
type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusClosed     Status = "closed"
)

// Type classifies a work item. The set is open; unknown types behave like
// Task for scoring purposes.
type Type string

const (
	TypeTask      Type = "task"
	TypeBug       Type = "bug"
	TypeUserStory Type = "user_story"
	TypeFeature   Type = "feature"
	TypeEpic      Type = "epic"
)

// Priority bounds. 1 is the most urgent tier; items that arrive without a
// priority are coerced to LowestPriority during normalization.
const (
	HighestPriority = 1
	LowestPriority  = 4
)

// WorkItem is a read-only snapshot record of a task, bug, story, feature, or
// epic. Snapshots are rebuilt from a Source on every invocation; nothing in
// this repository mutates one after normalization.
type WorkItem struct {
	ID        string
	Title     string
	Type      Type
	Status    Status
	DependsOn []string
	Priority  int     // 1 = highest urgency
	Remaining float64 // hours; 0 means unknown
	Tags      []string
	Parallel  bool // can be worked concurrently with siblings; informational
}

// IsOpen reports whether the item is in the canonical open state.
func (w *WorkItem) IsOpen() bool { return w.Status == StatusOpen }

// IsClosed reports whether the item is resolved.
func (w *WorkItem) IsClosed() bool { return w.Status == StatusClosed }

// HasTag reports whether the item carries the given tag, case-insensitively.
func (w *WorkItem) HasTag(tag string) bool {
	for _, t := range w.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// Normalize coerces missing optional fields to their neutral values: unset
// or out-of-range priority becomes the lowest urgency tier, negative
// remaining work becomes unknown. It returns the item for chaining.
func (w *WorkItem) Normalize() *WorkItem {
	if w.Priority < HighestPriority {
		w.Priority = LowestPriority
	}
	if w.Remaining < 0 {
		w.Remaining = 0
	}
	if w.Type == "" {
		w.Type = TypeTask
	}
	return w
}

// CanonicalStatus maps a source-vocabulary status string onto the canonical
// three-state lifecycle. Unrecognized strings are treated as open so that
// data-quality problems degrade to "available" rather than hiding work.
func CanonicalStatus(raw string) Status {
	switch strings.ToLower(strings.TrimSpace(strings.ReplaceAll(raw, "-", "_"))) {
	case "in_progress", "in progress", "inprogress", "active", "started", "doing":
		return StatusInProgress
	case "closed", "done", "completed", "complete", "finished", "resolved", "removed":
		return StatusClosed
	default:
		// "open", "new", "to do", "todo", "proposed", "" and anything else.
		return StatusOpen
	}
}

// CanonicalType maps a source-vocabulary type string onto Type.
func CanonicalType(raw string) Type {
	switch strings.ToLower(strings.TrimSpace(strings.ReplaceAll(raw, " ", "_"))) {
	case "bug", "defect", "issue":
		return TypeBug
	case "user_story", "story":
		return TypeUserStory
	case "feature":
		return TypeFeature
	case "epic":
		return TypeEpic
	case "", "task":
		return TypeTask
	default:
		return Type(strings.ToLower(raw))
	}
}

// Source produces work-item snapshots, already normalized into this model.
// Implemented by the markdown store and by the remote tracker clients.
type Source interface {
	// List returns a fresh snapshot of candidate work items.
	List() ([]WorkItem, error)
}
