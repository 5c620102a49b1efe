package nutrition

import (
	"encoding/json"
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/theirongolddev/larder/internal/model"
)

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	raw := `[
		{"id": 1, "name": "Oatmeal", "calories": 150, "protein": 5, "carbs": 27, "fat": 3, "fiber": 4, "costPerServing": 0.35},
		{"id": "egg", "name": "Egg", "calories": 78, "protein": 6.3, "carbs": 0.6, "fat": 5.3, "sodium": 62, "costPerServing": 0.25},
		{"id": "salt", "name": "Pinch of salt", "calories": 0, "protein": 0.04, "carbs": 0, "fat": 0, "sodium": 155}
	]`
	var items []model.FoodItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		t.Fatalf("decode catalog: %v", err)
	}
	return NewCatalog(items)
}

func entry(id string, servings float64) model.MealEntry {
	return model.MealEntry{FoodID: model.FoodID(id), Servings: servings}
}

func TestAggregateEntries_ScalesByServings(t *testing.T) {
	cat := testCatalog(t)

	got, err := AggregateEntries([]model.MealEntry{entry("1", 2)}, cat)
	if err != nil {
		t.Fatalf("AggregateEntries error: %v", err)
	}
	if got.Calories != 300 {
		t.Fatalf("Calories = %v, want 300", got.Calories)
	}
	if got.Cost != 0.7 {
		t.Fatalf("Cost = %v, want 0.7", got.Cost)
	}
	if got.Fiber != 8 {
		t.Fatalf("Fiber = %v, want 8", got.Fiber)
	}
}

func TestAggregateEntries_TolerantIDMatch(t *testing.T) {
	cat := testCatalog(t)

	var e model.MealEntry
	if err := json.Unmarshal([]byte(`{"foodId": 1.0, "servings": "1"}`), &e); err != nil {
		t.Fatalf("decode entry: %v", err)
	}
	got, _ := AggregateEntries([]model.MealEntry{e, entry(" 1 ", 1)}, cat)
	if got.Calories != 300 {
		t.Fatalf("Calories = %v, want 300 (numeric and string ids should match)", got.Calories)
	}
}

func TestAggregateEntries_SkipsUnknownFoods(t *testing.T) {
	cat := testCatalog(t)

	withUnknown, err := AggregateEntries([]model.MealEntry{entry("1", 1), entry("nope", 3), entry("egg", 2)}, cat)
	if err != nil {
		t.Fatalf("AggregateEntries error: %v", err)
	}
	without, _ := AggregateEntries([]model.MealEntry{entry("1", 1), entry("egg", 2)}, cat)
	if withUnknown != without {
		t.Fatalf("unknown entry changed totals:\n got  %+v\n want %+v", withUnknown, without)
	}
}

func TestAggregateEntries_DefaultsInvalidServings(t *testing.T) {
	cat := testCatalog(t)
	for _, s := range []float64{0, -2, math.NaN(), math.Inf(1)} {
		got, err := AggregateEntries([]model.MealEntry{entry("egg", s)}, cat)
		if err != nil {
			t.Fatalf("servings %v: error %v", s, err)
		}
		if got.Calories != 78 {
			t.Fatalf("servings %v: Calories = %v, want 78", s, got.Calories)
		}
	}
}

func TestAggregateEntries_RoundsOnceAtEnd(t *testing.T) {
	cat := testCatalog(t)
	entries := []model.MealEntry{entry("salt", 1), entry("salt", 1), entry("salt", 1)}

	got, _ := AggregateEntries(entries, cat)
	// Per-entry rounding would give 0.0 + 0.0 + 0.0.
	if got.Protein != 0.1 {
		t.Fatalf("Protein = %v, want 0.1", got.Protein)
	}
	if got.Sodium != 465 {
		t.Fatalf("Sodium = %v, want 465", got.Sodium)
	}
}

func TestAggregateEntries_OneDecimal(t *testing.T) {
	cat := testCatalog(t)
	got, _ := AggregateEntries([]model.MealEntry{entry("egg", 1.37)}, cat)

	for name, v := range map[string]float64{
		"calories": got.Calories, "protein": got.Protein, "carbs": got.Carbs,
		"fat": got.Fat, "sodium": got.Sodium, "cost": got.Cost,
	} {
		if math.Abs(v*10-math.Round(v*10)) > 1e-9 {
			t.Fatalf("%s = %v, not rounded to one decimal", name, v)
		}
	}
	if got.Calories != 106.9 { // 78 * 1.37 = 106.86
		t.Fatalf("Calories = %v, want 106.9", got.Calories)
	}
}

func TestAggregateEntries_NonFiniteIsCalculationError(t *testing.T) {
	cat := NewCatalog([]model.FoodItem{{ID: "big", Calories: math.MaxFloat64}})

	got, err := AggregateEntries([]model.MealEntry{entry("big", 10)}, cat)
	if !errors.Is(err, ErrCalculation) {
		t.Fatalf("error = %v, want ErrCalculation", err)
	}
	if got != (model.NutritionTotals{}) {
		t.Fatalf("totals = %+v, want zero-filled", got)
	}
}

func TestAggregateEntries_DoesNotMutateInputs(t *testing.T) {
	items := []model.FoodItem{{ID: "1", Calories: 100}, {ID: "2", Calories: 50}}
	entries := []model.MealEntry{entry("1", 0), entry("2", 3)}

	itemsBefore := append([]model.FoodItem(nil), items...)
	entriesBefore := append([]model.MealEntry(nil), entries...)

	cat := NewCatalog(items)
	first, _ := AggregateEntries(entries, cat)
	second, _ := AggregateEntries(entries, cat)

	if first != second {
		t.Fatalf("repeated aggregation differs: %+v vs %+v", first, second)
	}
	if !reflect.DeepEqual(items, itemsBefore) {
		t.Fatal("catalog input was mutated")
	}
	if !reflect.DeepEqual(entries, entriesBefore) {
		t.Fatal("entries input was mutated")
	}
}

func TestAggregateDay_SumsSlots(t *testing.T) {
	cat := testCatalog(t)
	day := model.DayMealSet{
		model.Breakfast: {entry("1", 1), entry("egg", 2)},
		model.Dinner:    {entry("egg", 1)},
	}

	got, err := AggregateDay(day, cat)
	if err != nil {
		t.Fatalf("AggregateDay error: %v", err)
	}
	if got.Calories != 384 { // 150 + 78*3
		t.Fatalf("Calories = %v, want 384", got.Calories)
	}
	if got.Protein != 23.9 { // 5 + 6.3*3
		t.Fatalf("Protein = %v, want 23.9", got.Protein)
	}
}

func TestAggregateDay_NonArraySlotIsEmpty(t *testing.T) {
	cat := testCatalog(t)
	var day model.DayMealSet
	raw := `{"breakfast": [{"foodId": 1, "servings": 1}], "lunch": "oops", "dinner": null, "brunch": [{"foodId": 1}]}`
	if err := json.Unmarshal([]byte(raw), &day); err != nil {
		t.Fatalf("decode day: %v", err)
	}

	got, _ := AggregateDay(day, cat)
	if got.Calories != 150 {
		t.Fatalf("Calories = %v, want 150", got.Calories)
	}
}

func TestSlotTotals(t *testing.T) {
	cat := testCatalog(t)
	day := model.DayMealSet{model.Lunch: {entry("egg", 2)}}

	got, err := SlotTotals(day, cat)
	if err != nil {
		t.Fatalf("SlotTotals error: %v", err)
	}
	if len(got) != len(model.Slots) {
		t.Fatalf("SlotTotals has %d slots, want %d", len(got), len(model.Slots))
	}
	if got[model.Lunch].Calories != 156 || got[model.Breakfast].Calories != 0 {
		t.Fatalf("SlotTotals = %+v", got)
	}
}

func TestPercentagesOf(t *testing.T) {
	p := PercentagesOf(model.NutritionTotals{Calories: 2000}, 2000)
	if p.Calories != 100 {
		t.Fatalf("Calories%% = %d, want 100", p.Calories)
	}

	totals := model.NutritionTotals{
		Calories: 1000, Protein: 75, Carbs: 275, Fat: 50,
		Fiber: 12.5, Sodium: 2300, Calcium: 250, Iron: 9, VitaminA: 450, VitaminC: 180,
	}
	got := PercentagesOf(totals, 2000)
	want := model.Percentages{
		Calories: 50, Protein: 100, Carbs: 100, Fat: 75,
		Fiber: 50, Sodium: 100, Calcium: 25, Iron: 50, VitaminA: 50, VitaminC: 200,
	}
	if got != want {
		t.Fatalf("PercentagesOf = %+v, want %+v", got, want)
	}
}

func TestPercentagesOf_ZeroTargetDefaults(t *testing.T) {
	withZero := PercentagesOf(model.NutritionTotals{Calories: 1500, Protein: 30}, 0)
	withDefault := PercentagesOf(model.NutritionTotals{Calories: 1500, Protein: 30}, 2000)
	if withZero != withDefault {
		t.Fatalf("zero target = %+v, want same as 2000 target %+v", withZero, withDefault)
	}
	if withZero.Calories != 75 {
		t.Fatalf("Calories%% = %d, want 75", withZero.Calories)
	}
}

func TestCatalog_FirstDuplicateWins(t *testing.T) {
	cat := NewCatalog([]model.FoodItem{{ID: "1", Name: "first"}, {ID: "1", Name: "second"}})
	item, ok := cat.Lookup("1")
	if !ok || item.Name != "first" {
		t.Fatalf("Lookup = %+v, %v; want first", item, ok)
	}
	if cat.Len() != 2 {
		t.Fatalf("Len = %d, want 2", cat.Len())
	}
}

func TestCatalog_LookupTrimsIDs(t *testing.T) {
	cat := NewCatalog([]model.FoodItem{{ID: " 42 ", Name: "oats"}, {ID: "7", Name: "rice"}})
	for _, id := range []model.FoodID{"42", " 42", "42\t"} {
		item, ok := cat.Lookup(id)
		if !ok || item.Name != "oats" {
			t.Errorf("Lookup(%q) = %+v, %v; want oats", id, item, ok)
		}
	}
	if _, ok := cat.Lookup("4"); ok {
		t.Error("Lookup(4) matched, want miss")
	}
	var nilCat *Catalog
	if _, ok := nilCat.Lookup("42"); ok {
		t.Error("nil catalog Lookup matched")
	}
}

func TestBreakdown_MatchesPercentages(t *testing.T) {
	totals := model.NutritionTotals{Calories: 1000, Protein: 75, Fat: 50, VitaminC: 45}
	lines := Breakdown(totals, 2000)
	if len(lines) != 10 {
		t.Fatalf("len(Breakdown) = %d, want 10", len(lines))
	}
	want := map[string]int{"Calories": 50, "Protein": 100, "Fat": 75, "Vitamin C": 50, "Iron": 0}
	for _, l := range lines {
		if p, ok := want[l.Name]; ok && l.Percent != p {
			t.Errorf("%s percent = %d, want %d", l.Name, l.Percent, p)
		}
	}
	if lines[1].Target != 75 || lines[1].Unit != "g" {
		t.Errorf("protein line = %+v, want target 75 g", lines[1])
	}
}
