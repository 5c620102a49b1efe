package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/larder/internal/cli"
	"github.com/theirongolddev/larder/internal/energy"
	"github.com/theirongolddev/larder/internal/pipeline"
	"github.com/theirongolddev/larder/internal/tui/components"
	"github.com/theirongolddev/larder/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// peopleState tracks the people tab cursor.
type peopleState struct {
	cursor int
}

func (s *peopleState) up() {
	if s.cursor > 0 {
		s.cursor--
	}
}

func (s *peopleState) down(n int) {
	if s.cursor < n-1 {
		s.cursor++
	}
}

func (s *peopleState) clamp(n int) {
	if s.cursor >= n {
		s.cursor = n - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}

// selectedID returns the id under the cursor, or "" when there is none or
// the row is not a stored person.
func (s peopleState) selectedID(snap *pipeline.Snapshot) string {
	if snap == nil || s.cursor < 0 || s.cursor >= len(snap.People) {
		return ""
	}
	d := snap.People[s.cursor]
	if !d.Known {
		return ""
	}
	return d.Person.ID
}

func (a App) renderPeopleTab(cw int) string {
	t := theme.Active

	headStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceHover).Bold(true)
	warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	innerW := components.CardInnerWidth(cw)

	var b strings.Builder
	b.WriteString(headStyle.Render(fmt.Sprintf("  %-18s %-7s %4s %9s %9s %-12s %6s %7s",
		"Name", "Gender", "Age", "Weight", "Height", "Activity", "BMR", "TDEE")))

	if len(a.snap.People) == 0 {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("  No people on file."))
	}

	for i, d := range a.snap.People {
		p := d.Person
		bmr := "-"
		if d.Needs.BMR > 0 {
			bmr = cli.FormatNumber(int64(d.Needs.BMR))
		}
		weight, height := "-", "-"
		if p.Weight > 0 {
			weight = fmt.Sprintf("%.1f %s", p.Weight, unitOr(p.WeightUnit, "kg"))
		}
		if p.Height > 0 {
			height = fmt.Sprintf("%.0f %s", p.Height, unitOr(p.HeightUnit, "cm"))
		}
		age := "-"
		if p.Age > 0 {
			age = fmt.Sprint(p.Age)
		}
		activity := cli.Title(strings.ToLower(string(p.ActivityLevel)))
		if activity == "" {
			activity = "Moderate"
		}

		marker := "  "
		style := rowStyle
		if i == a.people.cursor {
			marker = "▸ "
			style = selStyle
		}
		if p.ID == a.person {
			marker = "● "
		}

		row := fmt.Sprintf("%s%-18s %-7s %4s %9s %9s %-12s %6s %7s",
			marker,
			truncStr(p.DisplayName(), 18),
			truncStr(cli.Title(p.Gender), 7),
			age, weight, height,
			truncStr(activity, 12),
			bmr,
			cli.FormatNumber(int64(d.Needs.TDEE)))
		b.WriteString("\n")
		b.WriteString(style.Render(row))
		if d.NeedsErr != nil {
			b.WriteString("\n")
			b.WriteString(warnStyle.Render("    ⚠ " + truncStr(needsHint(d.NeedsErr), innerW-6)))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("  [enter] focus person  [a] whole household"))

	title := "People"
	if a.snap.Household > 0 {
		title = fmt.Sprintf("People (%d)", a.snap.Household)
	}
	return components.ContentCard(title, b.String(), cw)
}

func needsHint(err error) string {
	return fmt.Sprintf("using %d kcal: %v", energy.DefaultCalories, err)
}

func unitOr(unit, def string) string {
	if unit == "" {
		return def
	}
	return unit
}
