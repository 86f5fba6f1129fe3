package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/stefanpenner/wrangle/pkg/item"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.showHelp {
		return m.helpView()
	}

	var b strings.Builder

	b.WriteString(HeaderStyle.Render("wrangle"))
	b.WriteString(HeaderCountStyle.Render(fmt.Sprintf("  %d ready · %d blocked · %d in progress",
		m.digest.ReadyCount(), m.digest.BlockedCount(), len(m.digest.InProgress))))
	b.WriteString("\n\n")

	if len(m.rows) == 0 {
		b.WriteString(DimStyle.Render("No work items. Add one with: wrangle add -t \"...\""))
		b.WriteString("\n")
	}

	for i, row := range m.rows {
		if row.IsSectionHeader {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(SectionHeaderStyle.Render(row.Title))
			b.WriteString("\n")
			continue
		}
		b.WriteString(m.renderRow(row, i == m.cursor))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.statusMsg != "" && time.Now().Before(m.statusTimeout) {
		b.WriteString(FooterStyle.Render(m.statusMsg))
	} else {
		b.WriteString(FooterStyle.Render(m.keys.ShortHelp()))
	}

	return b.String()
}

func (m Model) renderRow(row BoardItem, selected bool) string {
	icon, style := m.rowDecoration(row)

	line := fmt.Sprintf("  %s %s", style.Render(icon), row.Title)

	meta := fmt.Sprintf("P%d", row.Item.Priority)
	if len(row.BlockedBy) > 0 {
		meta += "  waiting on " + strings.Join(row.BlockedBy, ", ")
	}
	line += DimStyle.Render("  " + meta)

	if selected {
		return SelectedStyle.Render(line)
	}
	return line
}

func (m Model) rowDecoration(row BoardItem) (string, lipgloss.Style) {
	switch {
	case len(row.BlockedBy) > 0:
		return IconBlocked, BlockedStyle
	case row.Item.Status == item.StatusInProgress:
		return IconInProgress, InProgressStyle
	default:
		return IconReady, ReadyStyle
	}
}

func (m Model) helpView() string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render("Keys"))
	b.WriteString("\n\n")
	for _, pair := range m.keys.FullHelp() {
		b.WriteString(fmt.Sprintf("  %-8s %s\n", pair[0], pair[1]))
	}
	b.WriteString("\n")
	b.WriteString(DimStyle.Render("press any key to close"))
	return ModalStyle.Render(b.String())
}
