package source

import (
	"time"

	"github.com/theirongolddev/larder/internal/model"
)

// Dump is a full snapshot of larder data. Sections left nil were absent from
// the source document and are not written by Apply.
type Dump struct {
	FoodCatalog []model.FoodItem               `json:"foodCatalog,omitempty"`
	People      []model.Person                 `json:"people,omitempty"`
	Expenses    []model.Expense                `json:"expenses,omitempty"`
	Budget      *model.Budget                  `json:"budget,omitempty"`
	Meals       map[string]map[string]MealPair `json:"meals,omitempty"` // date -> person id -> meals
}

// MealPair holds one person's consumed and planned meals for a date.
type MealPair struct {
	Consumed model.DayMealSet `json:"consumed,omitempty"`
	Planned  model.DayMealSet `json:"planned,omitempty"`
}

// Get returns the set of the given kind.
func (p MealPair) Get(kind model.MealKind) model.DayMealSet {
	if kind == model.Planned {
		return p.Planned
	}
	return p.Consumed
}

// MealDays counts (date, person) pairs holding at least one entry.
func (d Dump) MealDays() int {
	n := 0
	for _, byPerson := range d.Meals {
		for _, pair := range byPerson {
			if pair.Consumed.Count()+pair.Planned.Count() > 0 {
				n++
			}
		}
	}
	return n
}

// DiscoveredFile is a dump file found by ScanDir.
type DiscoveredFile struct {
	Path    string
	ModTime time.Time
	Size    int64
}
