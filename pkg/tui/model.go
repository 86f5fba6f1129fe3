package tui

import (
	"bytes"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stefanpenner/wrangle/pkg/engine"
	"github.com/stefanpenner/wrangle/pkg/item"
	"github.com/stefanpenner/wrangle/pkg/store"
	gsync "github.com/stefanpenner/wrangle/pkg/sync"
)

// FileChangedMsg is sent when the file watcher detects changes.
type FileChangedMsg struct{}

// SyncDoneMsg is sent when git sync completes.
type SyncDoneMsg struct {
	Err error
}

// Model is the Bubble Tea model for the board.
type Model struct {
	store  *store.Store
	keys   KeyMap
	width  int
	height int

	digest engine.Digest
	rows   []BoardItem
	cursor int

	showHelp bool

	// Status message
	statusMsg     string
	statusTimeout time.Time
}

// NewModel creates a new board model.
func NewModel(s *store.Store) Model {
	m := Model{
		store: s,
		keys:  DefaultKeyMap(),
	}
	m.reload()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.WindowSize()
}

// reload rebuilds the digest and board rows from disk, keeping the cursor
// on the same item when possible.
func (m *Model) reload() {
	selectedID := ""
	if m.cursor >= 0 && m.cursor < len(m.rows) {
		selectedID = m.rows[m.cursor].ID
	}

	items, err := m.store.List()
	if err != nil {
		m.setStatus("load failed: " + err.Error())
		return
	}

	m.digest = engine.BuildDigest(items)
	m.rows = BuildBoardItems(m.digest)

	m.cursor = FirstSelectable(m.rows)
	if selectedID != "" {
		for i, r := range m.rows {
			if !r.IsSectionHeader && r.ID == selectedID {
				m.cursor = i
				break
			}
		}
	}
}

func (m *Model) setStatus(msg string) {
	m.statusMsg = msg
	m.statusTimeout = time.Now().Add(3 * time.Second)
}

func (m *Model) selected() (BoardItem, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return BoardItem{}, false
	}
	row := m.rows[m.cursor]
	if row.IsSectionHeader {
		return BoardItem{}, false
	}
	return row, true
}

func (m *Model) setSelectedStatus(status item.Status) {
	row, ok := m.selected()
	if !ok {
		return
	}
	if _, err := m.store.SetStatus(row.ID, status); err != nil {
		m.setStatus(err.Error())
		return
	}
	m.reload()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case FileChangedMsg:
		m.reload()
		return m, nil

	case SyncDoneMsg:
		if msg.Err != nil {
			m.setStatus("sync failed: " + msg.Err.Error())
		} else {
			m.setStatus("sync complete")
		}
		m.reload()
		return m, nil

	case tea.KeyMsg:
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			m.cursor = NextSelectable(m.rows, m.cursor, -1)

		case key.Matches(msg, m.keys.Down):
			m.cursor = NextSelectable(m.rows, m.cursor, 1)

		case key.Matches(msg, m.keys.Start):
			m.setSelectedStatus(item.StatusInProgress)

		case key.Matches(msg, m.keys.Done):
			m.setSelectedStatus(item.StatusClosed)

		case key.Matches(msg, m.keys.Reopen):
			m.setSelectedStatus(item.StatusOpen)

		case key.Matches(msg, m.keys.Reload):
			m.reload()

		case key.Matches(msg, m.keys.Sync):
			m.setStatus("syncing…")
			root := m.store.Root
			return m, func() tea.Msg {
				var buf bytes.Buffer
				return SyncDoneMsg{Err: gsync.SyncRepo(&buf, root)}
			}

		case key.Matches(msg, m.keys.Help):
			m.showHelp = true
		}
	}

	return m, nil
}
