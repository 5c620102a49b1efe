package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/theirongolddev/larder/internal/tui/theme"
)

func TestTabIdxByKey(t *testing.T) {
	tests := []struct {
		key  rune
		want int
	}{
		{'t', TabToday},
		{'h', TabHistory},
		{'b', TabBudget},
		{'p', TabPeople},
		{'x', TabSettings},
		{'q', -1},
	}
	for _, tt := range tests {
		if got := TabIdxByKey(tt.key); got != tt.want {
			t.Errorf("TabIdxByKey(%q) = %d, want %d", tt.key, got, tt.want)
		}
	}
}

func TestRenderTabBar_WidthMatchesTabs(t *testing.T) {
	theme.SetActive("flexoki-dark")
	for active := range Tabs {
		want := len(Tabs) - 1 // separators
		for i, tab := range Tabs {
			want += TabVisualWidth(tab, i == active)
		}
		bar := RenderTabBar(active, want)
		if got := lipgloss.Width(bar); got != want {
			t.Errorf("active=%d: bar width = %d, want %d", active, got, want)
		}
	}
}

func TestLayoutRow(t *testing.T) {
	got := LayoutRow(10, 3)
	if len(got) != 3 || got[0] != 4 || got[1] != 3 || got[2] != 3 {
		t.Fatalf("LayoutRow(10, 3) = %v, want [4 3 3]", got)
	}
	if LayoutRow(10, 0) != nil {
		t.Fatal("LayoutRow(10, 0) should be nil")
	}
}

func TestBarChart_DrawsPlannedMarker(t *testing.T) {
	theme.SetActive("flexoki-dark")
	out := BarChart([]float64{100, 200}, []float64{400, 200}, []string{"Mon", "Tue"}, theme.Active.Accent, 40, 8)
	if !strings.Contains(out, "╌") {
		t.Fatalf("chart missing planned marker:\n%s", out)
	}

	plain := BarChart([]float64{100, 200}, nil, nil, theme.Active.Accent, 40, 8)
	if strings.Contains(plain, "╌") {
		t.Fatal("chart without planned values should have no marker")
	}
}

func TestBarChart_MisalignedPlannedIgnored(t *testing.T) {
	out := BarChart([]float64{1, 2, 3}, []float64{9}, nil, theme.Active.Accent, 40, 8)
	if strings.Contains(out, "╌") {
		t.Fatal("misaligned planned series should be ignored")
	}
}

func TestColorForIntake(t *testing.T) {
	th := theme.Active
	tests := []struct {
		pct  int
		want string
	}{
		{10, string(th.TextMuted)},
		{60, string(th.Yellow)},
		{100, string(th.Green)},
		{150, string(th.Orange)},
	}
	for _, tt := range tests {
		if got := ColorForIntake(tt.pct); got != tt.want {
			t.Errorf("ColorForIntake(%d) = %s, want %s", tt.pct, got, tt.want)
		}
	}
}

func TestTargetBar_ShowsPercentAndDetail(t *testing.T) {
	out := TargetBar("Protein", 135, "81 / 60 g", 10, 20)
	if !strings.Contains(out, "135%") || !strings.Contains(out, "81 / 60 g") {
		t.Fatalf("TargetBar = %q", out)
	}
}

func TestRenderStatusBar_FillsWidth(t *testing.T) {
	bar := RenderStatusBar(100, StatusInfo{Date: "2024-03-20", DataAge: "0.1s", HasBudget: true, SpentPct: 40})
	if got := lipgloss.Width(bar); got != 100 {
		t.Fatalf("status bar width = %d, want 100", got)
	}
	if !strings.Contains(bar, "2024-03-20") {
		t.Fatal("status bar should show the date")
	}
}
