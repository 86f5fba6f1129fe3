package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the board.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Start  key.Binding
	Done   key.Binding
	Reopen key.Binding
	Reload key.Binding
	Sync   key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Start: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "start"),
		),
		Done: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "done"),
		),
		Reopen: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "reopen"),
		),
		Reload: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "reload"),
		),
		Sync: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "git sync"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the footer help text.
func (k KeyMap) ShortHelp() string {
	return "↑↓ nav  s start  d done  o reopen  S sync  R reload  ? help  q quit"
}

// FullHelp returns all key bindings for the help overlay.
func (k KeyMap) FullHelp() [][]string {
	return [][]string{
		{"↑/k", "Move up"},
		{"↓/j", "Move down"},
		{"s", "Mark selected task in progress"},
		{"d", "Mark selected task done"},
		{"o", "Reopen selected task"},
		{"S", "Git sync the data directory"},
		{"R", "Reload from filesystem"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
}
