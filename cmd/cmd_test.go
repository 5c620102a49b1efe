package cmd

import (
	"testing"
	"time"

	"github.com/theirongolddev/larder/internal/model"
)

var testNow = time.Date(2024, 3, 20, 10, 0, 0, 0, time.UTC)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "2024-03-20"},
		{"today", "2024-03-20"},
		{"Yesterday", "2024-03-19"},
		{"2024-02-29", "2024-02-29"},
	}
	for _, tt := range tests {
		got, err := parseDate(tt.in, testNow)
		if err != nil {
			t.Fatalf("parseDate(%q): %v", tt.in, err)
		}
		if got.Format(dateLayout) != tt.want {
			t.Errorf("parseDate(%q) = %s, want %s", tt.in, got.Format(dateLayout), tt.want)
		}
	}

	if _, err := parseDate("03/20/2024", testNow); err == nil {
		t.Error("expected error for non-ISO date")
	}
}

func TestResolvePerson(t *testing.T) {
	tests := []struct {
		flag, configured, want string
	}{
		{"", "", ""},
		{"", "ana", "ana"},
		{"ben", "ana", "ben"},
		{"all", "ana", ""},
		{"", "ALL", ""},
		{" ben ", "", "ben"},
	}
	for _, tt := range tests {
		if got := resolvePerson(tt.flag, tt.configured); got != tt.want {
			t.Errorf("resolvePerson(%q, %q) = %q, want %q", tt.flag, tt.configured, got, tt.want)
		}
	}
}

func TestPersonLabel(t *testing.T) {
	people := []model.Person{{ID: "a1", Name: "Ana"}, {ID: "b2"}}
	if got := personLabel(people, ""); got != "Household" {
		t.Errorf("empty selector = %q", got)
	}
	if got := personLabel(people, "a1"); got != "Ana" {
		t.Errorf("a1 = %q, want Ana", got)
	}
	if got := personLabel(people, "zz"); got != "zz" {
		t.Errorf("unknown id = %q, want zz", got)
	}
}

func TestParseActivity(t *testing.T) {
	for in, want := range map[string]model.ActivityLevel{
		"moderate":    model.Moderate,
		"VERY_ACTIVE": model.VeryActive,
		"very-active": model.VeryActive,
		"very active": model.VeryActive,
		" light ":     model.Light,
	} {
		got, err := parseActivity(in)
		if err != nil || got != want {
			t.Errorf("parseActivity(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := parseActivity("couch"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestFilterFoods(t *testing.T) {
	items := []model.FoodItem{
		{ID: "3", Name: "rice"},
		{ID: "1", Name: "Oatmeal"},
		{ID: "oat-bar", Name: "Granola Bar"},
	}

	all := filterFoods(items, "")
	if len(all) != 3 || all[0].Name != "Granola Bar" || all[2].Name != "rice" {
		t.Errorf("unfiltered order = %v", all)
	}

	oat := filterFoods(items, "OAT")
	if len(oat) != 2 {
		t.Fatalf("search oat matched %d, want 2 (name and id)", len(oat))
	}
}

func TestReportRows(t *testing.T) {
	r := model.EmptyReport()
	r.Append("2024-03-18", model.NutritionTotals{Calories: 2000}, model.NutritionTotals{Calories: 1800, Protein: 90, Cost: 4.5})
	r.Append("2024-03-19", model.NutritionTotals{Calories: 2000}, model.NutritionTotals{Calories: 2100, Protein: 100, Cost: 5})

	rows := reportRows(r, "USD")
	if len(rows) != 4 {
		t.Fatalf("rows = %d, want 2 dates + separator + total", len(rows))
	}
	if rows[0][1] != "Mon" {
		t.Errorf("day = %q, want Mon", rows[0][1])
	}
	if rows[0][4] != "-200.0" || rows[1][4] != "+100.0" {
		t.Errorf("deltas = %q, %q", rows[0][4], rows[1][4])
	}
	if rows[2][0] != "---" {
		t.Errorf("separator = %v", rows[2])
	}
	total := rows[3]
	if total[0] != "Total" || total[3] != "3,900 kcal" || total[8] != "$9.50" {
		t.Errorf("total row = %v", total)
	}
}

func TestReportRows_MisalignedReport(t *testing.T) {
	r := model.EmptyReport()
	r.Append("2024-03-18", model.NutritionTotals{Calories: 2000}, model.NutritionTotals{Calories: 1800})
	r.Labels = append(r.Labels, "2024-03-19")

	if rows := reportRows(r, "USD"); rows != nil {
		t.Fatalf("rows = %v, want none for a misaligned report", rows)
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		v    float64
		unit string
		want string
	}{
		{2450.4, "kcal", "2,450 kcal"},
		{31.24, "g", "31.2g"},
		{1499.6, "mg", "1,500mg"},
		{900, "mcg", "900mcg"},
	}
	for _, tt := range tests {
		if got := formatAmount(tt.v, tt.unit); got != tt.want {
			t.Errorf("formatAmount(%v, %q) = %q, want %q", tt.v, tt.unit, got, tt.want)
		}
	}
}
