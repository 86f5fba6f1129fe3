package tui

import "github.com/charmbracelet/lipgloss"

// Color palette — shared with pkg/render, duplicated here so the board can
// tune shades independently.
var (
	ColorPurple      = lipgloss.Color("#7D56F4")
	ColorGreen       = lipgloss.Color("#25A065")
	ColorRed         = lipgloss.Color("#E05252")
	ColorYellow      = lipgloss.Color("#E5C07B")
	ColorGray        = lipgloss.Color("#626262")
	ColorWhite       = lipgloss.Color("#FFFFFF")
	ColorOffWhite    = lipgloss.Color("#D0D0D0")
	ColorSelectionBg = lipgloss.Color("#2D3B4D")
)

var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPurple)

	HeaderCountStyle = lipgloss.NewStyle().
				Foreground(ColorGray)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	SectionHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorOffWhite)

	SelectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWhite).
			Background(ColorSelectionBg)

	ReadyStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	InProgressStyle = lipgloss.NewStyle().
			Foreground(ColorYellow)

	BlockedStyle = lipgloss.NewStyle().
			Foreground(ColorRed)

	DimStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPurple).
			Padding(1, 2)
)

// Status icons
const (
	IconReady      = "○"
	IconInProgress = "◐"
	IconBlocked    = "✗"
)
