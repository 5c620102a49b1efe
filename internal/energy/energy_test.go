package energy

import (
	"errors"
	"testing"

	"github.com/theirongolddev/larder/internal/model"
)

func adult() model.Person {
	return model.Person{
		ID:            "p1",
		Gender:        "male",
		Age:           32,
		Weight:        75,
		WeightUnit:    model.UnitKg,
		Height:        180,
		HeightUnit:    model.UnitCm,
		ActivityLevel: model.Moderate,
	}
}

func TestComputeBMR_HarrisBenedict(t *testing.T) {
	tests := []struct {
		name string
		p    model.Person
		want int
	}{
		// 88.362 + 13.397*75 + 4.799*180 - 5.677*32 = 1775.293
		{"male metric", adult(), 1775},
		// 447.593 + 9.247*60 + 3.098*165 - 4.330*30 = 1383.683
		{"female metric", model.Person{Gender: "female", Age: 30, Weight: 60, WeightUnit: "kg", Height: 165, HeightUnit: "cm"}, 1384},
		// 200 lb = 90.7184 kg, 70 in = 177.8 cm
		{"male imperial", model.Person{Gender: "male", Age: 40, Weight: 200, WeightUnit: "lb", Height: 70, HeightUnit: "in"}, 1930},
		{"gender case-insensitive", model.Person{Gender: "MALE", Age: 32, Weight: 75, Height: 180}, 1775},
		{"unrecognized gender uses female branch", model.Person{Gender: "other", Age: 30, Weight: 60, Height: 165}, 1384},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeBMR(tt.p)
			if err != nil {
				t.Fatalf("ComputeBMR error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("ComputeBMR = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestComputeBMR_Deterministic(t *testing.T) {
	p := adult()
	first, _ := ComputeBMR(p)
	for i := 0; i < 10; i++ {
		if got, _ := ComputeBMR(p); got != first {
			t.Fatalf("ComputeBMR run %d = %d, want %d", i, got, first)
		}
	}
}

func TestComputeBMR_MissingData(t *testing.T) {
	p := adult()
	p.Weight = 0
	p.Gender = ""

	bmr, err := ComputeBMR(p)
	if !errors.Is(err, ErrMissingData) {
		t.Fatalf("ComputeBMR error = %v, want ErrMissingData", err)
	}
	if bmr != 0 {
		t.Fatalf("ComputeBMR = %d on missing data, want 0", bmr)
	}
}

func TestComputeTDEE(t *testing.T) {
	tests := []struct {
		bmr   int
		level model.ActivityLevel
		want  int
	}{
		{1775, model.Sedentary, 2130},  // 2130.0
		{1775, model.Light, 2441},      // 2440.625
		{1775, model.Moderate, 2751},   // 2751.25
		{1775, model.Active, 3062},     // 3061.875
		{1000, model.VeryActive, 1900}, // 1900.0
		{1775, "", 2751},
		{1775, "couch", 2751},
		{1000, "very_active", 1900},
	}
	for _, tt := range tests {
		if got := ComputeTDEE(tt.bmr, tt.level); got != tt.want {
			t.Fatalf("ComputeTDEE(%d, %q) = %d, want %d", tt.bmr, tt.level, got, tt.want)
		}
	}
}

func TestDailyCalorieNeeds(t *testing.T) {
	got, err := DailyCalorieNeeds(adult())
	if err != nil {
		t.Fatalf("DailyCalorieNeeds error: %v", err)
	}
	if got != 2751 {
		t.Fatalf("DailyCalorieNeeds = %d, want 2751", got)
	}
}

func TestDailyCalorieNeeds_DefaultsOnMissingData(t *testing.T) {
	p := adult()
	p.Age = 0

	got, err := DailyCalorieNeeds(p)
	if err == nil {
		t.Fatal("DailyCalorieNeeds returned nil error for missing age")
	}
	if got != DefaultCalories {
		t.Fatalf("DailyCalorieNeeds = %d, want default %d", got, DefaultCalories)
	}
}

func TestProfile(t *testing.T) {
	n, err := Profile(adult())
	if err != nil {
		t.Fatalf("Profile error: %v", err)
	}
	if n.BMR != 1775 || n.TDEE != 2751 || n.Defaulted {
		t.Fatalf("Profile = %+v, want BMR 1775 TDEE 2751", n)
	}

	n, err = Profile(model.Person{ID: "kid"})
	if err == nil || !n.Defaulted || n.TDEE != DefaultCalories {
		t.Fatalf("Profile(empty) = %+v, %v; want defaulted 2000", n, err)
	}
}
