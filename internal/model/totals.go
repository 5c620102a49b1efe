package model

import "math"

// NutritionTotals holds summed nutrients and cost. Every field is always
// present; absent source values contribute zero.
type NutritionTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Sodium   float64 `json:"sodium"`
	Calcium  float64 `json:"calcium"`
	Iron     float64 `json:"iron"`
	VitaminA float64 `json:"vitaminA"`
	VitaminC float64 `json:"vitaminC"`
	Cost     float64 `json:"cost"`
}

// Add returns the field-by-field sum of t and o.
func (t NutritionTotals) Add(o NutritionTotals) NutritionTotals {
	return NutritionTotals{
		Calories: t.Calories + o.Calories,
		Protein:  t.Protein + o.Protein,
		Carbs:    t.Carbs + o.Carbs,
		Fat:      t.Fat + o.Fat,
		Fiber:    t.Fiber + o.Fiber,
		Sodium:   t.Sodium + o.Sodium,
		Calcium:  t.Calcium + o.Calcium,
		Iron:     t.Iron + o.Iron,
		VitaminA: t.VitaminA + o.VitaminA,
		VitaminC: t.VitaminC + o.VitaminC,
		Cost:     t.Cost + o.Cost,
	}
}

// Scale multiplies every field by k.
func (t NutritionTotals) Scale(k float64) NutritionTotals {
	return NutritionTotals{
		Calories: t.Calories * k,
		Protein:  t.Protein * k,
		Carbs:    t.Carbs * k,
		Fat:      t.Fat * k,
		Fiber:    t.Fiber * k,
		Sodium:   t.Sodium * k,
		Calcium:  t.Calcium * k,
		Iron:     t.Iron * k,
		VitaminA: t.VitaminA * k,
		VitaminC: t.VitaminC * k,
		Cost:     t.Cost * k,
	}
}

// Round1 rounds every field to one decimal place.
func (t NutritionTotals) Round1() NutritionTotals {
	return NutritionTotals{
		Calories: Round1(t.Calories),
		Protein:  Round1(t.Protein),
		Carbs:    Round1(t.Carbs),
		Fat:      Round1(t.Fat),
		Fiber:    Round1(t.Fiber),
		Sodium:   Round1(t.Sodium),
		Calcium:  Round1(t.Calcium),
		Iron:     Round1(t.Iron),
		VitaminA: Round1(t.VitaminA),
		VitaminC: Round1(t.VitaminC),
		Cost:     Round1(t.Cost),
	}
}

// IsFinite reports whether every field is a finite number.
func (t NutritionTotals) IsFinite() bool {
	for _, v := range []float64{
		t.Calories, t.Protein, t.Carbs, t.Fat, t.Fiber, t.Sodium,
		t.Calcium, t.Iron, t.VitaminA, t.VitaminC, t.Cost,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Round1 rounds v to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Percentages holds each nutrient as a whole-number percent of its daily target.
type Percentages struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
	Fiber    int `json:"fiber"`
	Sodium   int `json:"sodium"`
	Calcium  int `json:"calcium"`
	Iron     int `json:"iron"`
	VitaminA int `json:"vitaminA"`
	VitaminC int `json:"vitaminC"`
}
