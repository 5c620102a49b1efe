// Package energy computes basal metabolic rate and daily energy expenditure.
package energy

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/theirongolddev/larder/internal/model"
)

// DefaultCalories is the daily target used when a person's needs cannot be computed.
const DefaultCalories = 2000

// ErrMissingData is returned when a person lacks a field the formula needs.
var ErrMissingData = errors.New("missing person data")

const (
	lbToKg = 0.453592
	inToCm = 2.54
)

// activityFactors maps activity levels to their TDEE multiplier.
var activityFactors = map[model.ActivityLevel]float64{
	model.Sedentary:  1.2,
	model.Light:      1.375,
	model.Moderate:   1.55,
	model.Active:     1.725,
	model.VeryActive: 1.9,
}

// ActivityFactor returns the multiplier for level. Unknown or empty levels
// use MODERATE.
func ActivityFactor(level model.ActivityLevel) float64 {
	key := model.ActivityLevel(strings.ToUpper(strings.TrimSpace(string(level))))
	if f, ok := activityFactors[key]; ok {
		return f
	}
	return activityFactors[model.Moderate]
}

// ComputeBMR applies the Harris-Benedict equation, branching on gender.
// Weight and height are converted to kg and cm first. The result is rounded
// to whole kcal.
func ComputeBMR(p model.Person) (int, error) {
	var missing []string
	if strings.TrimSpace(p.Gender) == "" {
		missing = append(missing, "gender")
	}
	if p.Weight <= 0 {
		missing = append(missing, "weight")
	}
	if p.Height <= 0 {
		missing = append(missing, "height")
	}
	if p.Age < 1 {
		missing = append(missing, "age")
	}
	if len(missing) > 0 {
		return 0, fmt.Errorf("%w: %s", ErrMissingData, strings.Join(missing, ", "))
	}

	kg := WeightKg(p.Weight, p.WeightUnit)
	cm := HeightCm(p.Height, p.HeightUnit)
	age := float64(p.Age)

	var bmr float64
	if p.IsMale() {
		bmr = 88.362 + 13.397*kg + 4.799*cm - 5.677*age
	} else {
		bmr = 447.593 + 9.247*kg + 3.098*cm - 4.330*age
	}
	return int(math.Round(bmr)), nil
}

// ComputeTDEE scales a BMR by the activity factor and rounds to whole kcal.
func ComputeTDEE(bmr int, level model.ActivityLevel) int {
	return int(math.Round(float64(bmr) * ActivityFactor(level)))
}

// DailyCalorieNeeds returns the person's TDEE. When it cannot be computed the
// result is DefaultCalories and err explains why; the value is always usable.
func DailyCalorieNeeds(p model.Person) (int, error) {
	bmr, err := ComputeBMR(p)
	if err != nil {
		return DefaultCalories, err
	}
	tdee := ComputeTDEE(bmr, p.ActivityLevel)
	if tdee <= 0 {
		return DefaultCalories, fmt.Errorf("non-positive energy expenditure %d for %q", tdee, p.DisplayName())
	}
	return tdee, nil
}

// Needs summarizes a person's energy requirement.
type Needs struct {
	BMR       int
	TDEE      int
	Factor    float64
	Defaulted bool // TDEE is DefaultCalories because data was missing
}

// Profile computes BMR and TDEE together for display.
func Profile(p model.Person) (Needs, error) {
	n := Needs{Factor: ActivityFactor(p.ActivityLevel)}
	bmr, err := ComputeBMR(p)
	if err != nil {
		n.TDEE = DefaultCalories
		n.Defaulted = true
		return n, err
	}
	n.BMR = bmr
	n.TDEE, err = DailyCalorieNeeds(p)
	n.Defaulted = err != nil
	return n, err
}

// WeightKg converts a weight to kilograms.
func WeightKg(w float64, unit string) float64 {
	switch strings.ToLower(strings.TrimSpace(unit)) {
	case "lb", "lbs":
		return w * lbToKg
	}
	return w
}

// HeightCm converts a height to centimeters.
func HeightCm(h float64, unit string) float64 {
	switch strings.ToLower(strings.TrimSpace(unit)) {
	case "in", "inch", "inches":
		return h * inToCm
	}
	return h
}
