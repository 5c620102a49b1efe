package source

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/theirongolddev/larder/internal/model"
	"github.com/theirongolddev/larder/internal/store"
)

// Writer persists dump sections.
type Writer interface {
	SaveFoodCatalog(items []model.FoodItem) error
	SavePeople(people []model.Person) error
	SaveExpenses(expenses []model.Expense) error
	SaveBudget(b model.Budget) error
	SaveDayMealSet(date, personID string, kind model.MealKind, day model.DayMealSet) error
}

// Reader loads everything Export needs.
type Reader interface {
	FoodCatalog() ([]model.FoodItem, error)
	People() ([]model.Person, error)
	Expenses() ([]model.Expense, error)
	Budget() (model.Budget, error)
	MealKeys() ([]string, error)
	DayMealSet(date, personID string, kind model.MealKind) (model.DayMealSet, error)
}

// ApplyStats counts what Apply wrote.
type ApplyStats struct {
	Foods    int
	People   int
	Expenses int
	Budget   bool
	MealSets int
}

// Apply writes every section present in d, replacing stored values.
func Apply(d Dump, w Writer) (ApplyStats, error) {
	var st ApplyStats
	if d.FoodCatalog != nil {
		if err := w.SaveFoodCatalog(d.FoodCatalog); err != nil {
			return st, fmt.Errorf("saving food catalog: %w", err)
		}
		st.Foods = len(d.FoodCatalog)
	}
	if d.People != nil {
		if err := w.SavePeople(d.People); err != nil {
			return st, fmt.Errorf("saving people: %w", err)
		}
		st.People = len(d.People)
	}
	if d.Expenses != nil {
		if err := w.SaveExpenses(d.Expenses); err != nil {
			return st, fmt.Errorf("saving expenses: %w", err)
		}
		st.Expenses = len(d.Expenses)
	}
	if d.Budget != nil {
		if err := w.SaveBudget(*d.Budget); err != nil {
			return st, fmt.Errorf("saving budget: %w", err)
		}
		st.Budget = true
	}
	for date, byPerson := range d.Meals {
		for personID, pair := range byPerson {
			for _, kind := range []model.MealKind{model.Consumed, model.Planned} {
				day := pair.Get(kind)
				if day == nil {
					continue
				}
				if err := w.SaveDayMealSet(date, personID, kind, day); err != nil {
					return st, fmt.Errorf("saving %s meals for %s on %s: %w", kind, personID, date, err)
				}
				if day.Count() > 0 {
					st.MealSets++
				}
			}
		}
	}
	return st, nil
}

// Export builds a dump of everything in r.
func Export(r Reader) (Dump, error) {
	var (
		d   Dump
		err error
	)
	if d.FoodCatalog, err = r.FoodCatalog(); err != nil {
		return Dump{}, err
	}
	if d.People, err = r.People(); err != nil {
		return Dump{}, err
	}
	if d.Expenses, err = r.Expenses(); err != nil {
		return Dump{}, err
	}
	budget, err := r.Budget()
	if err != nil {
		return Dump{}, err
	}
	d.Budget = &budget

	keys, err := r.MealKeys()
	if err != nil {
		return Dump{}, err
	}
	d.Meals = make(map[string]map[string]MealPair)
	for _, key := range keys {
		date, personID, kind, ok := store.ParseMealKey(key)
		if !ok {
			continue
		}
		day, err := r.DayMealSet(date, personID, kind)
		if err != nil {
			return Dump{}, err
		}
		if d.Meals[date] == nil {
			d.Meals[date] = make(map[string]MealPair)
		}
		pair := d.Meals[date][personID]
		if kind == model.Planned {
			pair.Planned = day
		} else {
			pair.Consumed = day
		}
		d.Meals[date][personID] = pair
	}
	return d, nil
}

// EncodeDump writes d as indented JSON.
func EncodeDump(w io.Writer, d Dump) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}

// WriteDump writes d to path, creating parent directories.
func WriteDump(path string, d Dump) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating dump dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := EncodeDump(f, d); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing dump: %w", err)
	}
	return f.Close()
}
