package nutrition

import (
	"math"

	"github.com/theirongolddev/larder/internal/model"
)

// DefaultCalorieTarget replaces a missing or zero calorie target.
const DefaultCalorieTarget = 2000

// Macro shares of the calorie target and their energy density in kcal/g.
const (
	proteinShare = 0.15
	carbsShare   = 0.55
	fatShare     = 0.30

	proteinKcalPerGram = 4
	carbsKcalPerGram   = 4
	fatKcalPerGram     = 9
)

// Daily values for micronutrients.
const (
	FiberDV    = 25   // g
	SodiumDV   = 2300 // mg
	CalciumDV  = 1000 // mg
	IronDV     = 18   // mg
	VitaminADV = 900  // mcg
	VitaminCDV = 90   // mg
)

// Targets holds the gram/milligram amounts a day's intake is compared against.
type Targets struct {
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
}

// MacroTargets derives recommended macro grams from a calorie target.
func MacroTargets(calorieTarget float64) Targets {
	if calorieTarget <= 0 || math.IsNaN(calorieTarget) || math.IsInf(calorieTarget, 0) {
		calorieTarget = DefaultCalorieTarget
	}
	return Targets{
		Calories: calorieTarget,
		Protein:  calorieTarget * proteinShare / proteinKcalPerGram,
		Carbs:    calorieTarget * carbsShare / carbsKcalPerGram,
		Fat:      calorieTarget * fatShare / fatKcalPerGram,
	}
}

// PercentagesOf expresses totals as whole-number percentages of the calorie
// target, the derived macro targets, and the fixed micronutrient daily values.
func PercentagesOf(t model.NutritionTotals, calorieTarget float64) model.Percentages {
	tg := MacroTargets(calorieTarget)
	return model.Percentages{
		Calories: pct(t.Calories, tg.Calories),
		Protein:  pct(t.Protein, tg.Protein),
		Carbs:    pct(t.Carbs, tg.Carbs),
		Fat:      pct(t.Fat, tg.Fat),
		Fiber:    pct(t.Fiber, FiberDV),
		Sodium:   pct(t.Sodium, SodiumDV),
		Calcium:  pct(t.Calcium, CalciumDV),
		Iron:     pct(t.Iron, IronDV),
		VitaminA: pct(t.VitaminA, VitaminADV),
		VitaminC: pct(t.VitaminC, VitaminCDV),
	}
}

func pct(actual, target float64) int {
	p := actual / target * 100
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return 0
	}
	return int(math.Round(p))
}

// Line is one nutrient of a day's intake set against its daily target.
type Line struct {
	Name    string
	Unit    string
	Amount  float64
	Target  float64
	Percent int
}

// Breakdown lists every nutrient of t with its target and percentage, in
// display order. Percentages match PercentagesOf.
func Breakdown(t model.NutritionTotals, calorieTarget float64) []Line {
	tg := MacroTargets(calorieTarget)
	p := PercentagesOf(t, calorieTarget)
	return []Line{
		{"Calories", "kcal", t.Calories, tg.Calories, p.Calories},
		{"Protein", "g", t.Protein, tg.Protein, p.Protein},
		{"Carbs", "g", t.Carbs, tg.Carbs, p.Carbs},
		{"Fat", "g", t.Fat, tg.Fat, p.Fat},
		{"Fiber", "g", t.Fiber, FiberDV, p.Fiber},
		{"Sodium", "mg", t.Sodium, SodiumDV, p.Sodium},
		{"Calcium", "mg", t.Calcium, CalciumDV, p.Calcium},
		{"Iron", "mg", t.Iron, IronDV, p.Iron},
		{"Vitamin A", "mcg", t.VitaminA, VitaminADV, p.VitaminA},
		{"Vitamin C", "mg", t.VitaminC, VitaminCDV, p.VitaminC},
	}
}
