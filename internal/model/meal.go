package model

import (
	"encoding/json"
	"math"
	"time"
)

// MealSlot is one of the four meals of a day.
type MealSlot string

const (
	Breakfast MealSlot = "breakfast"
	Lunch     MealSlot = "lunch"
	Dinner    MealSlot = "dinner"
	Snacks    MealSlot = "snacks"
)

// Slots lists the meal slots in display order.
var Slots = []MealSlot{Breakfast, Lunch, Dinner, Snacks}

// ParseSlot returns the slot with the given name.
func ParseSlot(s string) (MealSlot, bool) {
	for _, slot := range Slots {
		if string(slot) == s {
			return slot, true
		}
	}
	return "", false
}

// MealKind separates what was eaten from what is planned.
type MealKind string

const (
	Consumed MealKind = "consumed"
	Planned  MealKind = "planned"
)

// MealEntry is one food logged against a meal slot.
type MealEntry struct {
	ID        string    `json:"id,omitempty"`
	FoodID    FoodID    `json:"foodId"`
	Servings  float64   `json:"servings"`
	Notes     string    `json:"notes,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Status    MealKind  `json:"status,omitempty"`
}

// UnmarshalJSON tolerates servings stored as strings and timestamps stored
// as epoch milliseconds.
func (e *MealEntry) UnmarshalJSON(b []byte) error {
	type alias MealEntry
	aux := struct {
		*alias
		Servings  json.RawMessage `json:"servings"`
		Timestamp json.RawMessage `json:"timestamp"`
	}{alias: (*alias)(e)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	e.Servings, _ = flexNumber(aux.Servings)
	e.Timestamp = flexTime(aux.Timestamp)
	return nil
}

// EffectiveServings returns the serving multiplier, defaulting to 1 when the
// stored value is absent, non-positive, or not a number.
func (e MealEntry) EffectiveServings() float64 {
	s := e.Servings
	if s <= 0 || math.IsNaN(s) || math.IsInf(s, 0) {
		return 1
	}
	return s
}

// DayMealSet maps each meal slot to its ordered entries.
type DayMealSet map[MealSlot][]MealEntry

// UnmarshalJSON keeps known slots only. A slot whose value is not an array
// decodes as empty, and entries that fail to decode are dropped.
func (d *DayMealSet) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	out := make(DayMealSet, len(Slots))
	for _, slot := range Slots {
		var items []json.RawMessage
		if err := json.Unmarshal(raw[string(slot)], &items); err != nil {
			continue
		}
		entries := make([]MealEntry, 0, len(items))
		for _, item := range items {
			var e MealEntry
			if err := json.Unmarshal(item, &e); err != nil {
				continue
			}
			entries = append(entries, e)
		}
		out[slot] = entries
	}
	*d = out
	return nil
}

// Entries returns all entries in slot order.
func (d DayMealSet) Entries() []MealEntry {
	var all []MealEntry
	for _, slot := range Slots {
		all = append(all, d[slot]...)
	}
	return all
}

// Count returns the number of entries across all slots.
func (d DayMealSet) Count() int {
	n := 0
	for _, slot := range Slots {
		n += len(d[slot])
	}
	return n
}
