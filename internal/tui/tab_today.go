package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/larder/internal/cli"
	"github.com/theirongolddev/larder/internal/model"
	"github.com/theirongolddev/larder/internal/nutrition"
	"github.com/theirongolddev/larder/internal/pipeline"
	"github.com/theirongolddev/larder/internal/tui/components"
	"github.com/theirongolddev/larder/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderTodayTab(cw int) string {
	t := theme.Active
	day := a.snap.Total
	if a.person != "" && len(a.snap.People) == 1 {
		day = a.snap.People[0]
	}

	var b strings.Builder

	// Metric cards
	target := day.Target()
	targetNote := fmt.Sprintf("of %s target", cli.FormatKcal(float64(target)))
	if day.Needs.Defaulted {
		targetNote += " (default)"
	}
	b.WriteString(components.MetricCardRow([]components.Metric{
		{Label: "Consumed", Value: cli.FormatKcal(day.Consumed.Calories), Delta: targetNote},
		{Label: "Planned", Value: cli.FormatKcal(day.Planned.Calories), Delta: "Δ " + cli.FormatDelta(day.Consumed.Calories, day.Planned.Calories) + " kcal"},
		{Label: "Food Cost", Value: cli.FormatMoney(day.Consumed.Cost, a.currency), Delta: "planned " + cli.FormatMoney(day.Planned.Cost, a.currency)},
		{Label: "Entries", Value: cli.FormatNumber(int64(day.Entries)), Delta: plural(a.snap.Foods, "food", "foods") + " on file"},
	}, cw))
	b.WriteString("\n")

	// Nutrients vs. targets, and meals by slot
	if a.isCompactLayout() {
		b.WriteString(components.ContentCard("Nutrients", a.renderNutrientCard(day, cw), cw))
		b.WriteString("\n")
		b.WriteString(components.ContentCard("Meals", a.renderSlotCard(day, cw), cw))
	} else {
		widths := components.LayoutRow(cw, 2)
		b.WriteString(components.CardRow([]string{
			components.ContentCard("Nutrients", a.renderNutrientCard(day, widths[0]), widths[0]),
			components.ContentCard("Meals", a.renderSlotCard(day, widths[1]), widths[1]),
		}))
	}

	// Per-person rows when showing the whole household
	if a.person == "" && len(a.snap.People) > 1 {
		b.WriteString("\n")
		b.WriteString(components.ContentCard("Household", a.renderHouseholdRows(cw), cw))
	}

	if len(a.snap.People) == 0 {
		muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Background)
		b.WriteString("\n")
		b.WriteString(muted.Render(" No people yet. Add one with `larder add person`."))
	}

	return b.String()
}

func (a App) renderNutrientCard(day pipeline.PersonDay, outerW int) string {
	innerW := components.CardInnerWidth(outerW)
	labelW := 10
	// label, bar, " 100%", two spaces, detail
	barW := innerW - labelW - 1 - 1 - 5 - 2 - 22
	if barW < 8 {
		barW = 8
	}

	var lines []string
	for _, l := range nutrition.Breakdown(day.Consumed, float64(day.Target())) {
		detail := fmt.Sprintf("%s / %s %s", formatAmount(l.Amount), formatAmount(l.Target), l.Unit)
		lines = append(lines, components.TargetBar(l.Name, l.Percent, detail, labelW, barW))
	}
	return strings.Join(lines, "\n")
}

func (a App) renderSlotCard(day pipeline.PersonDay, outerW int) string {
	t := theme.Active
	innerW := components.CardInnerWidth(outerW)

	headStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Bold(true)
	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	valStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	barColor := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)

	maxKcal := 0.0
	for _, slot := range model.Slots {
		if v := day.Slots[slot].Calories; v > maxKcal {
			maxKcal = v
		}
	}

	barW := innerW - 10 - 10 - 8 - 10 - 4
	if barW < 4 {
		barW = 4
	}

	var b strings.Builder
	b.WriteString(headStyle.Render(fmt.Sprintf("%-10s %9s %7s %9s", "Meal", "kcal", "protein", "cost")))
	for _, slot := range model.Slots {
		s := day.Slots[slot]
		b.WriteString("\n")
		b.WriteString(nameStyle.Render(fmt.Sprintf("%-10s", cli.Title(string(slot)))))
		b.WriteString(valStyle.Render(fmt.Sprintf(" %9s %7s %9s ",
			cli.FormatNumber(int64(s.Calories+0.5)),
			cli.FormatGrams(s.Protein, "g"),
			cli.FormatMoney(s.Cost, a.currency))))
		if maxKcal > 0 {
			n := int(s.Calories / maxKcal * float64(barW))
			b.WriteString(barColor.Render(strings.Repeat("▇", n)))
		}
	}
	return b.String()
}

func (a App) renderHouseholdRows(cw int) string {
	t := theme.Active
	innerW := components.CardInnerWidth(cw)
	nameW := 16
	barW := innerW - nameW - 1 - 1 - 5 - 2 - 24
	if barW < 8 {
		barW = 8
	}

	warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)

	var lines []string
	for _, d := range a.snap.People {
		detail := fmt.Sprintf("%s / %s kcal", cli.FormatNumber(int64(d.Consumed.Calories+0.5)), cli.FormatNumber(int64(d.Target())))
		line := components.TargetBar(truncStr(d.Person.DisplayName(), nameW), d.Percent.Calories, detail, nameW, barW)
		if d.NeedsErr != nil {
			line += warnStyle.Render("  ⚠ default target")
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// formatAmount prints whole numbers without decimals and keeps one
// decimal for small amounts.
func formatAmount(v float64) string {
	if v >= 100 {
		return cli.FormatNumber(int64(v + 0.5))
	}
	return fmt.Sprintf("%.1f", v)
}
