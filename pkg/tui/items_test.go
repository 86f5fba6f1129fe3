package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stefanpenner/wrangle/pkg/engine"
	"github.com/stefanpenner/wrangle/pkg/item"
)

func boardDigest() engine.Digest {
	items := []item.WorkItem{
		{ID: "active", Title: "active", Status: item.StatusInProgress, Priority: 2},
		{ID: "ready", Title: "ready", Status: item.StatusOpen, Priority: 1},
		{ID: "stuck", Title: "stuck", Status: item.StatusOpen, Priority: 3, DependsOn: []string{"active"}},
	}
	return engine.BuildDigest(items)
}

func TestBuildBoardItemsSections(t *testing.T) {
	rows := BuildBoardItems(boardDigest())

	var headers, ids []string
	for _, r := range rows {
		if r.IsSectionHeader {
			headers = append(headers, r.Title)
		} else {
			ids = append(ids, r.ID)
		}
	}

	assert.Equal(t, []string{"IN PROGRESS", "READY", "BLOCKED"}, headers)
	assert.Equal(t, []string{"active", "ready", "stuck"}, ids)
}

func TestBuildBoardItemsBlockedBy(t *testing.T) {
	rows := BuildBoardItems(boardDigest())

	for _, r := range rows {
		if r.ID == "stuck" {
			assert.Equal(t, []string{"active"}, r.BlockedBy)
			return
		}
	}
	t.Fatal("blocked row missing")
}

func TestBuildBoardItemsEmpty(t *testing.T) {
	rows := BuildBoardItems(engine.BuildDigest(nil))
	assert.Empty(t, rows)
}

func TestSelectableNavigation(t *testing.T) {
	rows := BuildBoardItems(boardDigest())

	first := FirstSelectable(rows)
	require.NotEqual(t, -1, first)
	assert.Equal(t, "active", rows[first].ID)

	next := NextSelectable(rows, first, 1)
	assert.Equal(t, "ready", rows[next].ID)

	// Moving down skips the BLOCKED header.
	next = NextSelectable(rows, next, 1)
	assert.Equal(t, "stuck", rows[next].ID)

	// At the bottom edge the cursor stays put.
	assert.Equal(t, next, NextSelectable(rows, next, 1))

	// And moving back up skips headers too.
	assert.Equal(t, "ready", rows[NextSelectable(rows, next, -1)].ID)
}

func TestFirstSelectableAllHeaders(t *testing.T) {
	rows := []BoardItem{{Title: "READY", IsSectionHeader: true}}
	assert.Equal(t, -1, FirstSelectable(rows))
}
