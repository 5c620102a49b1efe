package budget

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/theirongolddev/larder/internal/model"
)

var march2024 = Month{Year: 2024, Month: time.March}

// 2024-03-10: day 10 of 31.
var testNow = time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestParseMonth(t *testing.T) {
	m, err := ParseMonth("2024-02")
	if err != nil {
		t.Fatalf("ParseMonth error: %v", err)
	}
	if m != (Month{Year: 2024, Month: time.February}) {
		t.Fatalf("ParseMonth = %+v", m)
	}
	if m.String() != "2024-02" {
		t.Fatalf("String = %q, want 2024-02", m.String())
	}
	for _, bad := range []string{"2024-13", "2024/02", "March", ""} {
		if _, err := ParseMonth(bad); err == nil {
			t.Fatalf("ParseMonth(%q) should fail", bad)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		m    Month
		want int
	}{
		{Month{2024, time.February}, 29},
		{Month{2023, time.February}, 28},
		{Month{2024, time.April}, 30},
		{Month{2024, time.December}, 31},
	}
	for _, tt := range tests {
		if got := DaysInMonth(tt.m); got != tt.want {
			t.Fatalf("DaysInMonth(%s) = %d, want %d", tt.m, got, tt.want)
		}
		if got := len(tt.m.Dates()); got != tt.want {
			t.Fatalf("len(%s.Dates()) = %d, want %d", tt.m, got, tt.want)
		}
	}
}

func TestElapsedDays(t *testing.T) {
	if got := ElapsedDays(march2024, testNow); got != 10 {
		t.Fatalf("current month ElapsedDays = %d, want 10", got)
	}
	if got := ElapsedDays(Month{2024, time.February}, testNow); got != 29 {
		t.Fatalf("past month ElapsedDays = %d, want 29", got)
	}
	if got := ElapsedDays(Month{2024, time.June}, testNow); got != 30 {
		t.Fatalf("future month ElapsedDays = %d, want 30", got)
	}
}

func TestEstimatedMonthEndTotal_CurrentMonth(t *testing.T) {
	spend := 250.0
	got := EstimatedMonthEndTotal(spend, march2024, testNow)
	want := spend * 31 / 10
	if !near(got, want) {
		t.Fatalf("EstimatedMonthEndTotal = %v, want %v", got, want)
	}
	if avg := DailyAverage(spend, march2024, testNow); !near(avg, 25) {
		t.Fatalf("DailyAverage = %v, want 25", avg)
	}
}

func TestEstimatedMonthEndTotal_OtherMonthsUnchanged(t *testing.T) {
	for _, m := range []Month{{2024, time.February}, {2023, time.March}, {2024, time.April}} {
		if got := EstimatedMonthEndTotal(123.45, m, testNow); got != 123.45 {
			t.Fatalf("EstimatedMonthEndTotal(%s) = %v, want 123.45", m, got)
		}
	}
	if avg := DailyAverage(290, Month{2024, time.February}, testNow); !near(avg, 10) {
		t.Fatalf("past DailyAverage = %v, want 10", avg)
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		spend, budget, want float64
	}{
		{50, 200, 25},
		{300, 200, 100},
		{0, 0, 0},
		{10, 0, 100},
		{0, 500, 0},
	}
	for _, tt := range tests {
		if got := Percent(tt.spend, tt.budget); got != tt.want {
			t.Fatalf("Percent(%v, %v) = %v, want %v", tt.spend, tt.budget, got, tt.want)
		}
	}
}

func TestMonthlyExpenseTotal(t *testing.T) {
	expenses := []model.Expense{
		{ID: "a", Date: "2024-03-01", Amount: 0.1},
		{ID: "b", Date: "2024-03-15", Amount: 0.2},
		{ID: "c", Date: "2024-02-29", Amount: 99},
		{ID: "d", Date: "2023-03-05", Amount: 50},
		{ID: "e", Date: "2024-03-31", Amount: 12.5},
	}
	if got := MonthlyExpenseTotal(expenses, march2024); got != 12.8 {
		t.Fatalf("MonthlyExpenseTotal = %v, want 12.8", got)
	}
	if got := MonthlyExpenseTotal(nil, march2024); got != 0 {
		t.Fatalf("MonthlyExpenseTotal(nil) = %v, want 0", got)
	}
}

func TestMonthlyExpenseTotal_IgnoresNonPositiveAmounts(t *testing.T) {
	expenses := []model.Expense{
		{ID: "a", Date: "2024-03-04", Amount: 40},
		{ID: "refund", Date: "2024-03-09", Amount: -100},
		{ID: "zero", Date: "2024-03-10", Amount: 0},
	}
	if got := MonthlyExpenseTotal(expenses, march2024); got != 40 {
		t.Fatalf("MonthlyExpenseTotal = %v, want 40", got)
	}
}

type memSource struct {
	foods    []model.FoodItem
	meals    map[string]model.DayMealSet
	expenses []model.Expense
	err      error
}

func (m *memSource) FoodCatalog() ([]model.FoodItem, error) { return m.foods, m.err }

func (m *memSource) DayMealSet(date, personID string, kind model.MealKind) (model.DayMealSet, error) {
	return m.meals[date+"|"+personID+"|"+string(kind)], nil
}

func (m *memSource) Expenses() ([]model.Expense, error) { return m.expenses, m.err }

func testSource() *memSource {
	entry := func(id string, servings float64) model.MealEntry {
		return model.MealEntry{FoodID: model.FoodID(id), Servings: servings}
	}
	return &memSource{
		foods: []model.FoodItem{
			{ID: "1", Name: "Bread", CostPerServing: 0.4},
			{ID: "2", Name: "Salmon", CostPerServing: 3.75},
		},
		meals: map[string]model.DayMealSet{
			"2024-03-02|ana|consumed": {model.Breakfast: {entry("1", 2)}},
			"2024-03-02|ben|consumed": {model.Dinner: {entry("2", 1)}},
			"2024-03-02|ben|planned":  {model.Dinner: {entry("2", 10)}},
			"2024-03-05|ana|consumed": {model.Lunch: {entry("2", 0.5), entry("ghost", 1)}},
			"2024-04-01|ana|consumed": {model.Lunch: {entry("2", 4)}},
		},
		expenses: []model.Expense{
			{ID: "x", Date: "2024-03-03", Amount: 40},
			{ID: "y", Date: "2024-03-08", Amount: 20.05},
			{ID: "z", Date: "2024-04-02", Amount: 500},
		},
	}
}

var household = []model.Person{{ID: "ana"}, {ID: "ben"}}

func TestMealCosts(t *testing.T) {
	p := New(testSource(), nil, WithClock(func() time.Time { return testNow }))

	costs, err := p.MealCosts(march2024, model.AllPeople, household)
	if err != nil {
		t.Fatalf("MealCosts error: %v", err)
	}
	if len(costs) != 31 {
		t.Fatalf("len(costs) = %d, want 31", len(costs))
	}
	if costs[1].Date != "2024-03-02" || costs[1].Cost != 4.55 {
		t.Fatalf("costs[1] = %+v, want 2024-03-02 4.55", costs[1])
	}
	if costs[4].Cost != 1.88 { // 3.75 * 0.5 rounded to cents
		t.Fatalf("costs[4] = %+v, want 1.88", costs[4])
	}

	ana, _ := p.MealCosts(march2024, "ana", household)
	if ana[1].Cost != 0.8 {
		t.Fatalf("ana costs[1] = %+v, want 0.8", ana[1])
	}
}

func TestProject_CurrentMonth(t *testing.T) {
	p := New(testSource(), nil, WithClock(func() time.Time { return testNow }))

	proj, err := p.Project(march2024, 400, model.AllPeople, household)
	if err != nil {
		t.Fatalf("Project error: %v", err)
	}
	if !proj.CurrentMonth || proj.ElapsedDays != 10 || proj.DaysInMonth != 31 {
		t.Fatalf("month info = %+v", proj)
	}
	if proj.ExpenseTotal != 60.05 {
		t.Fatalf("ExpenseTotal = %v, want 60.05", proj.ExpenseTotal)
	}
	if proj.MealCostTotal != 6.43 { // 4.55 + 1.88
		t.Fatalf("MealCostTotal = %v, want 6.43", proj.MealCostTotal)
	}
	if proj.CombinedSpend != 66.48 {
		t.Fatalf("CombinedSpend = %v, want 66.48", proj.CombinedSpend)
	}
	if !near(proj.EstimatedMonthEnd, 66.48*31/10) {
		t.Fatalf("EstimatedMonthEnd = %v, want %v", proj.EstimatedMonthEnd, 66.48*31/10)
	}
	if !near(proj.Remaining, 400-66.48) {
		t.Fatalf("Remaining = %v", proj.Remaining)
	}
	if !near(proj.SpentPercent, 66.48/400*100) {
		t.Fatalf("SpentPercent = %v", proj.SpentPercent)
	}
	if proj.ProjectedPercent != 100 && !near(proj.ProjectedPercent, proj.EstimatedMonthEnd/400*100) {
		t.Fatalf("ProjectedPercent = %v", proj.ProjectedPercent)
	}
}

// countingSource counts meal set reads.
type countingSource struct {
	*memSource
	reads int
}

func (c *countingSource) DayMealSet(date, personID string, kind model.MealKind) (model.DayMealSet, error) {
	c.reads++
	return c.memSource.DayMealSet(date, personID, kind)
}

func TestProjectDaily_ReadsMonthOnce(t *testing.T) {
	src := &countingSource{memSource: testSource()}
	p := New(src, nil, WithClock(func() time.Time { return testNow }))

	proj, costs, err := p.ProjectDaily(march2024, 400, model.AllPeople, household)
	if err != nil {
		t.Fatalf("ProjectDaily error: %v", err)
	}
	if want := 31 * len(household); src.reads != want {
		t.Fatalf("meal set reads = %d, want %d", src.reads, want)
	}
	if len(costs) != 31 || costs[1].Cost != 4.55 {
		t.Fatalf("costs = %+v", costs)
	}
	if proj.MealCostTotal != 6.43 {
		t.Fatalf("MealCostTotal = %v, want 6.43", proj.MealCostTotal)
	}

	src.memSource.err = errors.New("locked")
	_, costs, err = p.ProjectDaily(march2024, 400, model.AllPeople, household)
	if err == nil || costs == nil || len(costs) != 0 {
		t.Fatalf("on error: costs = %v, err = %v; want empty non-nil slice and error", costs, err)
	}
}

func TestProject_PastMonthNotExtrapolated(t *testing.T) {
	p := New(testSource(), nil, WithClock(func() time.Time { return time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC) }))

	proj, err := p.Project(march2024, 0, "", household)
	if err != nil {
		t.Fatalf("Project error: %v", err)
	}
	if proj.CurrentMonth || proj.ElapsedDays != 31 {
		t.Fatalf("past month info = %+v", proj)
	}
	if proj.EstimatedMonthEnd != proj.CombinedSpend {
		t.Fatalf("EstimatedMonthEnd = %v, want CombinedSpend %v", proj.EstimatedMonthEnd, proj.CombinedSpend)
	}
	if proj.SpentPercent != 100 {
		t.Fatalf("SpentPercent with zero budget = %v, want 100", proj.SpentPercent)
	}
}

func TestProject_ErrorReturnsZeroProjection(t *testing.T) {
	src := testSource()
	src.err = errors.New("locked")
	p := New(src, nil, WithClock(func() time.Time { return testNow }))

	proj, err := p.Project(march2024, 400, model.AllPeople, household)
	if err == nil {
		t.Fatal("expected error")
	}
	want := model.Projection{Month: "2024-03", Budget: 400}
	if proj != want {
		t.Fatalf("Project = %+v, want %+v", proj, want)
	}
}
