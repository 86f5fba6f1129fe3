// Package render formats engine output for the console. All styling lives
// here so the CLI commands and the board share one look.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/stefanpenner/wrangle/pkg/engine"
	"github.com/stefanpenner/wrangle/pkg/item"
)

// Color palette
var (
	ColorPurple   = lipgloss.Color("#7D56F4")
	ColorGreen    = lipgloss.Color("#25A065")
	ColorRed      = lipgloss.Color("#E05252")
	ColorYellow   = lipgloss.Color("#E5C07B")
	ColorGray     = lipgloss.Color("#626262")
	ColorOffWhite = lipgloss.Color("#D0D0D0")
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPurple)

	SectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorOffWhite)

	ReadyStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	BlockedStyle = lipgloss.NewStyle().
			Foreground(ColorRed)

	InProgressStyle = lipgloss.NewStyle().
			Foreground(ColorYellow)

	DimStyle = lipgloss.NewStyle().
			Foreground(ColorGray)
)

// Status icons
const (
	IconOpen       = "○"
	IconInProgress = "◐"
	IconClosed     = "✓"
	IconBlocked    = "✗"
)

// StatusIcon returns the glyph for a canonical status.
func StatusIcon(s item.Status) string {
	switch s {
	case item.StatusInProgress:
		return IconInProgress
	case item.StatusClosed:
		return IconClosed
	default:
		return IconOpen
	}
}

// Line renders one work item as a single console row.
func Line(w item.WorkItem) string {
	var extras []string
	if w.Type != item.TypeTask {
		extras = append(extras, string(w.Type))
	}
	extras = append(extras, fmt.Sprintf("P%d", w.Priority))
	if w.Remaining > 0 {
		extras = append(extras, fmt.Sprintf("%.0fh", w.Remaining))
	}
	if len(w.Tags) > 0 {
		extras = append(extras, strings.Join(w.Tags, ","))
	}

	return fmt.Sprintf("%s %s  %s", StatusIcon(w.Status), w.Title,
		DimStyle.Render("["+w.ID+" "+strings.Join(extras, " ")+"]"))
}

// Recommendation renders the best-task pick with reasons and alternatives.
func Recommendation(rec engine.Recommendation) string {
	var b strings.Builder

	for _, warn := range rec.Warnings {
		b.WriteString(DimStyle.Render("warning: " + warn))
		b.WriteString("\n")
	}

	if rec.Best == nil {
		b.WriteString("No available tasks found.\n")
		return b.String()
	}

	b.WriteString(TitleStyle.Render("Next up: " + rec.Best.Title))
	b.WriteString("\n")
	b.WriteString(DimStyle.Render("  id " + rec.Best.ID))
	b.WriteString("\n")
	for _, reason := range rec.Reasons {
		b.WriteString(ReadyStyle.Render("  • " + reason))
		b.WriteString("\n")
	}

	if len(rec.Alternatives) > 0 {
		b.WriteString("\n")
		b.WriteString(SectionStyle.Render("Also ready:"))
		b.WriteString("\n")
		for _, alt := range rec.Alternatives {
			b.WriteString("  " + Line(alt) + "\n")
		}
	}

	return b.String()
}

// BlockedReport renders graph-blocked items with their reasons, then the
// manually tagged ones.
func BlockedReport(blocked []engine.Blocked, tagged []item.WorkItem) string {
	var b strings.Builder

	if len(blocked) == 0 && len(tagged) == 0 {
		b.WriteString("Nothing is blocked.\n")
		return b.String()
	}

	if len(blocked) > 0 {
		b.WriteString(SectionStyle.Render(fmt.Sprintf("Blocked by dependencies (%d):", len(blocked))))
		b.WriteString("\n")
		for _, bl := range blocked {
			b.WriteString("  " + BlockedStyle.Render(IconBlocked) + " " + bl.Item.Title)
			b.WriteString(DimStyle.Render("  waiting on " + strings.Join(bl.Reasons, ", ")))
			b.WriteString("\n")
		}
	}

	if len(tagged) > 0 {
		if len(blocked) > 0 {
			b.WriteString("\n")
		}
		b.WriteString(SectionStyle.Render(fmt.Sprintf("Flagged as blocked (%d):", len(tagged))))
		b.WriteString("\n")
		for _, it := range tagged {
			b.WriteString("  " + Line(it) + "\n")
		}
	}

	return b.String()
}

// Standup renders the daily digest.
func Standup(d engine.Digest) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Standup"))
	b.WriteString(DimStyle.Render(fmt.Sprintf("  %d items · %d ready · %d blocked · %d done",
		d.TotalCount, d.ReadyCount(), d.BlockedCount(), d.ClosedCount)))
	b.WriteString("\n\n")

	if len(d.InProgress) > 0 {
		b.WriteString(SectionStyle.Render("In progress:"))
		b.WriteString("\n")
		for _, it := range d.InProgress {
			b.WriteString("  " + InProgressStyle.Render(IconInProgress) + " " + it.Title + "\n")
		}
		b.WriteString("\n")
	}

	if len(d.Ready) > 0 {
		b.WriteString(SectionStyle.Render("Ready:"))
		b.WriteString("\n")
		for _, c := range d.Ready {
			b.WriteString("  " + Line(c.Item) + "\n")
		}
		b.WriteString("\n")
	}

	if d.BlockedCount() > 0 || len(d.Tagged) > 0 {
		b.WriteString(BlockedReport(d.Blocked, d.Tagged))
		b.WriteString("\n")
	}

	b.WriteString(Recommendation(d.Recommended))
	return b.String()
}
