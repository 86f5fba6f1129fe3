package item

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalStatus(t *testing.T) {
	cases := map[string]Status{
		"open":         StatusOpen,
		"new":          StatusOpen,
		"To Do":        StatusOpen,
		"":             StatusOpen,
		"what-is-this": StatusOpen,
		"in_progress":  StatusInProgress,
		"In Progress":  StatusInProgress,
		"active":       StatusInProgress,
		"started":      StatusInProgress,
		"closed":       StatusClosed,
		"Done":         StatusClosed,
		"completed":    StatusClosed,
		"finished":     StatusClosed,
		"Resolved":     StatusClosed,
	}

	for raw, want := range cases {
		assert.Equal(t, want, CanonicalStatus(raw), "raw=%q", raw)
	}
}

func TestCanonicalType(t *testing.T) {
	assert.Equal(t, TypeBug, CanonicalType("Bug"))
	assert.Equal(t, TypeBug, CanonicalType("defect"))
	assert.Equal(t, TypeUserStory, CanonicalType("User Story"))
	assert.Equal(t, TypeTask, CanonicalType(""))
	assert.Equal(t, Type("spike"), CanonicalType("Spike"))
}

func TestNormalizeDefaults(t *testing.T) {
	w := (&WorkItem{ID: "1", Remaining: -3}).Normalize()
	assert.Equal(t, LowestPriority, w.Priority)
	assert.Zero(t, w.Remaining)
	assert.Equal(t, TypeTask, w.Type)
}

func TestHasTagCaseInsensitive(t *testing.T) {
	w := WorkItem{Tags: []string{"Critical", "backend"}}
	assert.True(t, w.HasTag("critical"))
	assert.False(t, w.HasTag("urgent"))
}
