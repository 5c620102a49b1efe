package nutrition

import (
	"errors"

	"github.com/theirongolddev/larder/internal/model"
)

// ErrCalculation is returned when aggregation produces a non-finite value.
var ErrCalculation = errors.New("nutrient calculation produced a non-finite value")

// AggregateEntries sums each entry's per-serving facts scaled by its servings.
// Entries whose food is not in the catalog are skipped. Fields are rounded to
// one decimal once, after summing.
func AggregateEntries(entries []model.MealEntry, cat *Catalog) (model.NutritionTotals, error) {
	return finish(sumEntries(entries, cat))
}

// AggregateDay sums all four meal slots of a day.
func AggregateDay(day model.DayMealSet, cat *Catalog) (model.NutritionTotals, error) {
	var raw model.NutritionTotals
	for _, slot := range model.Slots {
		raw = raw.Add(sumEntries(day[slot], cat))
	}
	return finish(raw)
}

// SlotTotals aggregates each meal slot separately.
func SlotTotals(day model.DayMealSet, cat *Catalog) (map[model.MealSlot]model.NutritionTotals, error) {
	out := make(map[model.MealSlot]model.NutritionTotals, len(model.Slots))
	for _, slot := range model.Slots {
		t, err := AggregateEntries(day[slot], cat)
		if err != nil {
			return map[model.MealSlot]model.NutritionTotals{}, err
		}
		out[slot] = t
	}
	return out, nil
}

func sumEntries(entries []model.MealEntry, cat *Catalog) model.NutritionTotals {
	var sum model.NutritionTotals
	for _, e := range entries {
		food, ok := cat.Lookup(e.FoodID)
		if !ok {
			continue
		}
		sum = sum.Add(food.PerServing().Scale(e.EffectiveServings()))
	}
	return sum
}

func finish(raw model.NutritionTotals) (model.NutritionTotals, error) {
	if !raw.IsFinite() {
		return model.NutritionTotals{}, ErrCalculation
	}
	return raw.Round1(), nil
}
