package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/larder/internal/cli"
	"github.com/theirongolddev/larder/internal/report"
	"github.com/theirongolddev/larder/internal/tui/components"
	"github.com/theirongolddev/larder/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderHistoryTab(cw int) string {
	t := theme.Active
	r := a.snap.Report

	var b strings.Builder
	b.WriteString(a.renderReportTypePicker(cw))
	b.WriteString("\n")

	if r.IsEmpty() || !r.Aligned() {
		muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Background)
		b.WriteString(muted.Render(" Nothing to report for this period yet."))
		return b.String()
	}

	planned, consumed := report.Totals(r)
	days := float64(len(r.Labels))
	b.WriteString(components.MetricCardRow([]components.Metric{
		{Label: "Consumed", Value: cli.FormatKcal(consumed.Calories), Delta: cli.FormatKcal(consumed.Calories/days) + " / day"},
		{Label: "Planned", Value: cli.FormatKcal(planned.Calories), Delta: "Δ " + cli.FormatDelta(consumed.Calories, planned.Calories) + " kcal"},
		{Label: "Protein", Value: cli.FormatGrams(consumed.Protein, "g"), Delta: "planned " + cli.FormatGrams(planned.Protein, "g")},
		{Label: "Food Cost", Value: cli.FormatMoney(consumed.Cost, a.currency), Delta: "planned " + cli.FormatMoney(planned.Cost, a.currency)},
	}, cw))
	b.WriteString("\n")

	chartW := components.CardInnerWidth(cw)
	chart := components.BarChart(r.Calories.Consumed, r.Calories.Planned, chartDateLabels(r.Labels), t.Accent, chartW, 10)
	chartBody := chart + "\n" + components.ChartLegend(t.Accent)
	b.WriteString(components.ContentCard("Calories", chartBody, cw))
	b.WriteString("\n")

	b.WriteString(components.ContentCard("By Day", a.renderReportRows(cw), cw))
	return b.String()
}

func (a App) renderReportTypePicker(cw int) string {
	t := theme.Active
	active := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceHover).Bold(true).Padding(0, 1)
	inactive := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Padding(0, 1)
	key := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)

	var parts []string
	for _, rt := range report.Types {
		name := cli.Title(string(rt))
		if rt == a.reportType {
			parts = append(parts, active.Render(name))
			continue
		}
		parts = append(parts, inactive.Render(key.Render(name[:1])+name[1:]))
	}
	return lipgloss.NewStyle().Background(t.Surface).Width(cw).Render(strings.Join(parts, " "))
}

func (a App) renderReportRows(cw int) string {
	t := theme.Active
	r := a.snap.Report

	headStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Bold(true)
	dateStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	valStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	overStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)
	underStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface)

	compact := a.isCompactLayout()

	var b strings.Builder
	if compact {
		b.WriteString(headStyle.Render(fmt.Sprintf("%-14s %9s %9s %8s", "Date", "Eaten", "Planned", "Δ")))
	} else {
		b.WriteString(headStyle.Render(fmt.Sprintf("%-14s %9s %9s %8s %8s %8s %8s %10s",
			"Date", "Eaten", "Planned", "Δ", "Protein", "Carbs", "Fat", "Cost")))
	}

	// newest first
	for i := len(r.Labels) - 1; i >= 0; i-- {
		label := r.Labels[i]
		if d, err := time.Parse(report.DateLayout, label); err == nil {
			label = cli.FormatDayOfWeek(int(d.Weekday())) + " " + label
		}
		eaten := r.Calories.Consumed[i]
		plan := r.Calories.Planned[i]

		deltaStyle := valStyle
		switch {
		case plan > 0 && eaten > plan*1.1:
			deltaStyle = overStyle
		case plan > 0 && eaten >= plan*0.9:
			deltaStyle = underStyle
		}

		b.WriteString("\n")
		b.WriteString(dateStyle.Render(fmt.Sprintf("%-14s", label)))
		b.WriteString(valStyle.Render(fmt.Sprintf(" %9s %9s ", cli.FormatNumber(int64(eaten+0.5)), cli.FormatNumber(int64(plan+0.5)))))
		b.WriteString(deltaStyle.Render(fmt.Sprintf("%8s", cli.FormatDelta(eaten, plan))))
		if !compact {
			b.WriteString(valStyle.Render(fmt.Sprintf(" %8s %8s %8s %10s",
				cli.FormatGrams(r.Protein.Consumed[i], "g"),
				cli.FormatGrams(r.Carbs.Consumed[i], "g"),
				cli.FormatGrams(r.Fat.Consumed[i], "g"),
				cli.FormatMoney(r.Cost.Consumed[i], a.currency))))
		}
	}
	return b.String()
}
