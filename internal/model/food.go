// Package model defines domain types for larder meals, people, and budgets.
package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FoodID identifies a FoodItem. Stored data holds ids as either JSON numbers
// or JSON strings; both decode to the same canonical text so 42 and "42"
// refer to the same food.
type FoodID string

// UnmarshalJSON accepts a JSON string, a JSON number, or null.
func (id *FoodID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*id = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("food id: %w", err)
		}
		*id = FoodID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("food id: %w", err)
	}
	*id = FoodID(canonicalNumber(n.String()))
	return nil
}

// NormalizeID returns the comparison form of an id.
func NormalizeID(id FoodID) string {
	return strings.TrimSpace(string(id))
}

// SameID reports whether two ids refer to the same food.
func SameID(a, b FoodID) bool {
	return NormalizeID(a) == NormalizeID(b)
}

// canonicalNumber formats a numeric literal the shortest way, so 42, 42.0
// and 4.2e1 all become "42".
func canonicalNumber(s string) string {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return s
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// FoodItem holds per-serving nutrient and cost facts for one food.
type FoodItem struct {
	ID          FoodID `json:"id"`
	Name        string `json:"name"`
	ServingSize string `json:"servingSize,omitempty"`

	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`

	Fiber    float64 `json:"fiber,omitempty"`
	Sodium   float64 `json:"sodium,omitempty"`
	Calcium  float64 `json:"calcium,omitempty"`
	Iron     float64 `json:"iron,omitempty"`
	VitaminA float64 `json:"vitaminA,omitempty"`
	VitaminC float64 `json:"vitaminC,omitempty"`

	CostPerServing float64 `json:"costPerServing,omitempty"`
}

// PerServing returns the item's contribution for one serving as totals.
// Negative or non-finite source values count as absent.
func (f FoodItem) PerServing() NutritionTotals {
	return NutritionTotals{
		Calories: nonNegative(f.Calories),
		Protein:  nonNegative(f.Protein),
		Carbs:    nonNegative(f.Carbs),
		Fat:      nonNegative(f.Fat),
		Fiber:    nonNegative(f.Fiber),
		Sodium:   nonNegative(f.Sodium),
		Calcium:  nonNegative(f.Calcium),
		Iron:     nonNegative(f.Iron),
		VitaminA: nonNegative(f.VitaminA),
		VitaminC: nonNegative(f.VitaminC),
		Cost:     nonNegative(f.CostPerServing),
	}
}

func nonNegative(v float64) float64 {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
