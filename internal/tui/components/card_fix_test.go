package components

import (
	"strings"
	"testing"

	"github.com/theirongolddev/larder/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	// Without a color profile lipgloss renders plain text and the
	// background checks below have nothing to find.
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestCardRow_PadsShorterCards(t *testing.T) {
	theme.SetActive("flexoki-dark")

	nutrients := ContentCard("Nutrients", "Calories\nProtein\nCarbs\nFat\nFiber", 24)
	meals := ContentCard("Meals", "Breakfast", 24)
	tall := strings.Count(nutrients, "\n") + 1
	short := strings.Count(meals, "\n") + 1
	if short >= tall {
		t.Fatalf("fixture: meals card has %d lines, nutrients %d", short, tall)
	}

	lines := strings.Split(CardRow([]string{nutrients, meals}), "\n")
	if len(lines) != tall {
		t.Fatalf("row height = %d, want %d", len(lines), tall)
	}

	want := lipgloss.Width(lines[0])
	for i, line := range lines {
		if w := lipgloss.Width(line); w != want {
			t.Errorf("line %d width = %d, want %d", i, w, want)
		}
		if i >= short && !strings.Contains(line, "\x1b[") {
			t.Errorf("padding line %d has no styling: %q", i, line)
		}
	}
}

func TestCardRow_Empty(t *testing.T) {
	if got := CardRow(nil); got != "" {
		t.Errorf("CardRow(nil) = %q, want empty", got)
	}
}

func TestMetricCard_Width(t *testing.T) {
	theme.SetActive("flexoki-dark")

	card := MetricCard(Metric{Label: "Consumed", Value: "1,820 kcal", Delta: "91% of target"}, 30)
	for i, line := range strings.Split(card, "\n") {
		if w := lipgloss.Width(line); w != 30 {
			t.Errorf("line %d width = %d, want 30", i, w)
		}
	}
}
