package model

import (
	"encoding/json"
	"math"
	"testing"
	"time"
)

func TestFoodID_Decode(t *testing.T) {
	tests := []struct {
		raw  string
		want FoodID
	}{
		{`"42"`, "42"},
		{`42`, "42"},
		{`42.0`, "42"},
		{`4.2e1`, "42"},
		{`1.5`, "1.5"},
		{`"abc"`, "abc"},
		{`null`, ""},
	}
	for _, tt := range tests {
		var id FoodID
		if err := json.Unmarshal([]byte(tt.raw), &id); err != nil {
			t.Fatalf("Unmarshal(%s) error: %v", tt.raw, err)
		}
		if id != tt.want {
			t.Fatalf("Unmarshal(%s) = %q, want %q", tt.raw, id, tt.want)
		}
	}
	var id FoodID
	if err := json.Unmarshal([]byte(`{"x":1}`), &id); err == nil {
		t.Fatal("object id should fail")
	}
}

func TestSameID(t *testing.T) {
	if !SameID("42", " 42 ") {
		t.Fatal("SameID should ignore surrounding space")
	}
	if SameID("42", "042") {
		t.Fatal("SameID(42, 042) should be false")
	}
}

func TestPerServing_DropsInvalidValues(t *testing.T) {
	f := FoodItem{Calories: 120, Protein: -3, Fat: math.NaN(), CostPerServing: 0.5}
	got := f.PerServing()
	if got.Calories != 120 || got.Protein != 0 || got.Fat != 0 || got.Cost != 0.5 {
		t.Fatalf("PerServing = %+v", got)
	}
}

func TestMealEntry_Decode(t *testing.T) {
	var e MealEntry
	raw := `{"id":"m1","foodId":7,"servings":"1.5","notes":"half","timestamp":"2024-03-01T08:30:00Z","status":"planned"}`
	if err := json.Unmarshal([]byte(raw), &e); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if e.FoodID != "7" || e.Servings != 1.5 || e.Notes != "half" || e.Status != Planned {
		t.Fatalf("entry = %+v", e)
	}
	if want := time.Date(2024, 3, 1, 8, 30, 0, 0, time.UTC); !e.Timestamp.Equal(want) {
		t.Fatalf("Timestamp = %v, want %v", e.Timestamp, want)
	}
}

func TestEffectiveServings(t *testing.T) {
	tests := []struct {
		servings float64
		want     float64
	}{
		{2, 2},
		{0.25, 0.25},
		{0, 1},
		{-1, 1},
		{math.NaN(), 1},
		{math.Inf(1), 1},
	}
	for _, tt := range tests {
		if got := (MealEntry{Servings: tt.servings}).EffectiveServings(); got != tt.want {
			t.Fatalf("EffectiveServings(%v) = %v, want %v", tt.servings, got, tt.want)
		}
	}

	var e MealEntry
	_ = json.Unmarshal([]byte(`{"foodId":"1","servings":"lots"}`), &e)
	if e.EffectiveServings() != 1 {
		t.Fatalf("unparseable servings = %v, want 1", e.EffectiveServings())
	}
}

func TestDayMealSet_Decode(t *testing.T) {
	var d DayMealSet
	raw := `{
		"breakfast": [{"foodId": 1}, "garbage", {"foodId": "2", "servings": 2}],
		"lunch": {"foodId": 3},
		"snacks": [],
		"elevenses": [{"foodId": 4}]
	}`
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if len(d[Breakfast]) != 2 {
		t.Fatalf("breakfast = %+v, want 2 entries", d[Breakfast])
	}
	if len(d[Lunch]) != 0 {
		t.Fatalf("lunch = %+v, want empty", d[Lunch])
	}
	if _, ok := d["elevenses"]; ok {
		t.Fatal("unknown slot should be dropped")
	}
	if d.Count() != 2 || len(d.Entries()) != 2 {
		t.Fatalf("Count = %d, want 2", d.Count())
	}
}

func TestPerson_Decode(t *testing.T) {
	var p Person
	raw := `{"id":"p1","name":"Kai","gender":"Male","age":"41","weight":"180","weightUnit":"lb","height":70,"heightUnit":"in","activityLevel":"ACTIVE"}`
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if p.Age != 41 || p.Weight != 180 || p.Height != 70 || !p.IsMale() || p.ActivityLevel != Active {
		t.Fatalf("person = %+v", p)
	}
	if (Person{ID: "x"}).DisplayName() != "x" {
		t.Fatal("DisplayName should fall back to id")
	}
}

func TestPersonIDs(t *testing.T) {
	people := []Person{{ID: "a"}, {ID: "b"}}
	if got := PersonIDs(AllPeople, people); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("PersonIDs(all) = %v", got)
	}
	if got := PersonIDs("", people); len(got) != 2 {
		t.Fatalf("PersonIDs(\"\") = %v", got)
	}
	if got := PersonIDs("z", people); len(got) != 1 || got[0] != "z" {
		t.Fatalf("PersonIDs(z) = %v", got)
	}
}

func TestExpense_Decode(t *testing.T) {
	var e Expense
	if err := json.Unmarshal([]byte(`{"id":"e","date":"2024-03-01","amount":"12.75"}`), &e); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if e.Amount != 12.75 {
		t.Fatalf("Amount = %v, want 12.75", e.Amount)
	}
}

func TestNutritionTotals_Round1(t *testing.T) {
	got := NutritionTotals{Calories: 100.04, Protein: 0.05, Cost: 2.349}.Round1()
	if got.Calories != 100 || got.Protein != 0.1 || got.Cost != 2.3 {
		t.Fatalf("Round1 = %+v", got)
	}
	if (NutritionTotals{Fat: math.Inf(1)}).IsFinite() {
		t.Fatal("IsFinite should be false for +Inf")
	}
}

func TestReport_AppendKeepsAlignment(t *testing.T) {
	r := EmptyReport()
	if !r.IsEmpty() || !r.Aligned() {
		t.Fatal("empty report should be empty and aligned")
	}
	r.Append("2024-03-01", NutritionTotals{Calories: 1}, NutritionTotals{Calories: 2, Cost: 3})
	r.Append("2024-03-02", NutritionTotals{}, NutritionTotals{})
	if r.IsEmpty() || !r.Aligned() || len(r.Labels) != 2 {
		t.Fatalf("report = %+v", r)
	}
	if r.Calories.Consumed[0] != 2 || r.Cost.Consumed[0] != 3 {
		t.Fatalf("series = %+v / %+v", r.Calories, r.Cost)
	}
	if len(r.Metrics()) != 5 {
		t.Fatalf("Metrics = %d, want 5", len(r.Metrics()))
	}

	r.Fat.Planned = r.Fat.Planned[:1]
	if r.Aligned() {
		t.Fatal("truncated series should not be aligned")
	}
}
