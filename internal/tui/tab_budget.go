package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/larder/internal/cli"
	"github.com/theirongolddev/larder/internal/tui/components"
	"github.com/theirongolddev/larder/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderBudgetTab(cw int) string {
	t := theme.Active
	p := a.snap.Projection
	money := func(v float64) string { return cli.FormatMoney(v, a.currency) }

	var b strings.Builder

	spentNote := "no budget set"
	if p.Budget > 0 {
		spentNote = "of " + money(p.Budget)
	}
	remainingNote := ""
	if p.Remaining < 0 {
		remainingNote = "over budget"
	}
	estimateNote := "month closed"
	if p.CurrentMonth {
		estimateNote = fmt.Sprintf("day %d of %d", p.ElapsedDays, p.DaysInMonth)
	}

	b.WriteString(components.MetricCardRow([]components.Metric{
		{Label: "Spent " + p.Month, Value: money(p.CombinedSpend), Delta: spentNote},
		{Label: "Remaining", Value: money(p.Remaining), Delta: remainingNote},
		{Label: "Month-End Estimate", Value: money(p.EstimatedMonthEnd), Delta: estimateNote},
		{Label: "Daily Average", Value: money(p.DailyAverage), Delta: "projected left " + money(p.ProjectedRemaining)},
	}, cw))
	b.WriteString("\n")

	innerW := components.CardInnerWidth(cw)
	labelW := 10
	barW := innerW - labelW - 1 - 1 - 4
	if barW > 60 {
		barW = 60
	}

	var bars strings.Builder
	if p.Budget > 0 {
		bars.WriteString(components.SpendBar("Spent", p.SpentPercent, labelW, barW))
		bars.WriteString("\n")
		bars.WriteString(components.SpendBar("Projected", p.ProjectedPercent, labelW, barW))
	} else {
		muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
		bars.WriteString(muted.Render("No monthly budget. Set one in Settings or with `larder budget set <amount>`."))
	}
	b.WriteString(components.ContentCard("Budget", bars.String(), cw))
	b.WriteString("\n")

	// Where the money went
	split := cli.RenderHorizontalBar(fmt.Sprintf("%-8s", "Expenses"), p.ExpenseTotal, p.CombinedSpend, barW/2) +
		"  " + money(p.ExpenseTotal) + "\n" +
		cli.RenderHorizontalBar(fmt.Sprintf("%-8s", "Meals"), p.MealCostTotal, p.CombinedSpend, barW/2) +
		"  " + money(p.MealCostTotal)
	b.WriteString(components.ContentCard("Spend", split, cw))

	if len(a.snap.MealCosts) > 0 {
		values := make([]float64, len(a.snap.MealCosts))
		labels := make([]string, len(a.snap.MealCosts))
		for i, c := range a.snap.MealCosts {
			values[i] = c.Cost
			labels[i] = c.Date
		}
		chart := components.BarChart(values, nil, chartDateLabels(labels), t.Green, innerW, 6)
		b.WriteString("\n")
		b.WriteString(components.ContentCard("Daily Meal Cost", chart, cw))
	}

	return b.String()
}
