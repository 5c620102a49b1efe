package components

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/larder/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// StatusInfo is what the status bar reports besides the key hints.
type StatusInfo struct {
	Date        string  // date the dashboard is showing
	DataAge     string  // how long the last load took
	SpentPct    float64 // percent of the monthly budget spent
	HasBudget   bool
	Refreshing  bool
	AutoRefresh bool
}

// RenderStatusBar renders the bottom status bar.
func RenderStatusBar(width int, info StatusInfo) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Width(width)

	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)
	textStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	left := textStyle.Render(" ") +
		keyStyle.Render("[?]") + textStyle.Render("help  ") +
		keyStyle.Render("[ ]") + textStyle.Render("date  ") +
		keyStyle.Render("[q]") + textStyle.Render("uit")

	middle := ""
	if info.HasBudget {
		middle = CompactSpendBar("Budget", info.SpentPct, 24)
	}

	var right []string
	if info.Date != "" {
		right = append(right, info.Date)
	}
	switch {
	case info.Refreshing:
		right = append(right, "↻ refreshing")
	case info.AutoRefresh:
		right = append(right, "↻ auto")
	}
	if info.DataAge != "" {
		right = append(right, fmt.Sprintf("Data: %s", info.DataAge))
	}
	rightStr := textStyle.Render(strings.Join(right, " · ") + " ")

	// Pad around the middle section
	free := width - lipgloss.Width(left) - lipgloss.Width(middle) - lipgloss.Width(rightStr)
	if free < 0 {
		middle = ""
		free = width - lipgloss.Width(left) - lipgloss.Width(rightStr)
		if free < 0 {
			free = 0
		}
	}
	leftPad := free / 2
	rightPad := free - leftPad

	bar := left +
		spaceStyle.Render(strings.Repeat(" ", leftPad)) +
		middle +
		spaceStyle.Render(strings.Repeat(" ", rightPad)) +
		rightStr

	return style.Render(bar)
}
