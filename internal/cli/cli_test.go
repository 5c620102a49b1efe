package cli

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		amount   float64
		currency string
		want     string
	}{
		{1234.5, "USD", "$1,234.50"},
		{0.1 + 0.2, "usd", "$0.30"},
		{0, "", "$0.00"},
		{12.345, "NOPE", "$12.35"},
	}
	for _, tt := range tests {
		if got := FormatMoney(tt.amount, tt.currency); got != tt.want {
			t.Fatalf("FormatMoney(%v, %q) = %q, want %q", tt.amount, tt.currency, got, tt.want)
		}
	}
}

func TestTitle(t *testing.T) {
	tests := map[string]string{
		"VERY_ACTIVE": "Very Active",
		"breakfast":   "Breakfast",
		"weekly":      "Weekly",
	}
	for in, want := range tests {
		if got := Title(in); got != want {
			t.Fatalf("Title(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := map[int64]string{0: "0", 999: "999", 1000: "1,000", -1234567: "-1,234,567"}
	for in, want := range tests {
		if got := FormatNumber(in); got != want {
			t.Fatalf("FormatNumber(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatDelta(t *testing.T) {
	if got := FormatDelta(2100, 2000); got != "+100.0" {
		t.Fatalf("FormatDelta = %q, want +100.0", got)
	}
	if got := FormatDelta(1950.5, 2000); got != "-49.5" {
		t.Fatalf("FormatDelta = %q, want -49.5", got)
	}
	if got := FormatDelta(10, 10.01); got != "±0" {
		t.Fatalf("FormatDelta = %q, want ±0", got)
	}
}

func TestFormatServingsAndKcal(t *testing.T) {
	if got := FormatServings(1.5); got != "1.5" {
		t.Fatalf("FormatServings(1.5) = %q", got)
	}
	if got := FormatServings(2); got != "2" {
		t.Fatalf("FormatServings(2) = %q", got)
	}
	if got := FormatKcal(2450.6); got != "2,451 kcal" {
		t.Fatalf("FormatKcal = %q", got)
	}
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable(Table{
		Headers: []string{"Date", "Calories"},
		Rows: [][]string{
			{"2024-03-01", "1,850"},
			{"---"},
			{"Total", "1,850"},
		},
	})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 7 {
		t.Fatalf("table has %d lines, want 7:\n%s", len(lines), out)
	}
	if !strings.Contains(out, "2024-03-01") || !strings.Contains(out, "Total") {
		t.Fatalf("table missing rows:\n%s", out)
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != lipgloss.Width(lines[0]) {
			t.Errorf("line %d width = %d, want %d", i, w, lipgloss.Width(lines[0]))
		}
	}
}

func TestRenderTable_Empty(t *testing.T) {
	if got := RenderTable(Table{}); got != "" {
		t.Fatalf("empty table = %q", got)
	}
}

func TestRenderPercentBar(t *testing.T) {
	if got := RenderPercentBar(50, 0); got != "" {
		t.Fatalf("zero width = %q, want empty", got)
	}
	out := RenderPercentBar(150, 10)
	if strings.Count(out, "█") != 10 || !strings.Contains(out, "150%") {
		t.Fatalf("RenderPercentBar(150) = %q", out)
	}
	out = RenderPercentBar(30, 10)
	if strings.Count(out, "█") != 3 || strings.Count(out, "░") != 7 {
		t.Fatalf("RenderPercentBar(30) = %q", out)
	}
}

func TestRenderSparkline(t *testing.T) {
	if got := RenderSparkline([]float64{0, 7}); got != "▁█" {
		t.Fatalf("RenderSparkline = %q, want ▁█", got)
	}
}
