package tui

import (
	"github.com/stefanpenner/wrangle/pkg/engine"
	"github.com/stefanpenner/wrangle/pkg/item"
)

// BoardItem is one row of the board: a work item or a section header.
type BoardItem struct {
	ID              string
	Title           string
	Item            item.WorkItem
	BlockedBy       []string
	IsSectionHeader bool
}

// BuildBoardItems flattens a digest into board rows, grouped under
// IN PROGRESS / READY / BLOCKED section headers. Empty sections are
// omitted.
func BuildBoardItems(d engine.Digest) []BoardItem {
	var rows []BoardItem

	section := func(title string) {
		rows = append(rows, BoardItem{ID: "__header_" + title, Title: title, IsSectionHeader: true})
	}

	if len(d.InProgress) > 0 {
		section("IN PROGRESS")
		for _, it := range d.InProgress {
			rows = append(rows, BoardItem{ID: it.ID, Title: it.Title, Item: it})
		}
	}

	if len(d.Ready) > 0 {
		section("READY")
		for _, c := range d.Ready {
			rows = append(rows, BoardItem{ID: c.Item.ID, Title: c.Item.Title, Item: c.Item})
		}
	}

	if d.BlockedCount() > 0 {
		section("BLOCKED")
		for _, bl := range d.Blocked {
			rows = append(rows, BoardItem{
				ID:        bl.Item.ID,
				Title:     bl.Item.Title,
				Item:      bl.Item,
				BlockedBy: bl.Reasons,
			})
		}
	}

	if len(d.Tagged) > 0 {
		section("FLAGGED")
		for _, it := range d.Tagged {
			rows = append(rows, BoardItem{ID: it.ID, Title: it.Title, Item: it})
		}
	}

	return rows
}

// NextSelectable returns the index of the next non-header row from idx in
// the given direction, or idx if there is none.
func NextSelectable(rows []BoardItem, idx, delta int) int {
	for i := idx + delta; i >= 0 && i < len(rows); i += delta {
		if !rows[i].IsSectionHeader {
			return i
		}
	}
	return idx
}

// FirstSelectable returns the index of the first non-header row, or -1.
func FirstSelectable(rows []BoardItem) int {
	for i, r := range rows {
		if !r.IsSectionHeader {
			return i
		}
	}
	return -1
}
