package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/theirongolddev/larder/internal/model"
)

// Well-known keys.
const (
	KeyFoodCatalog = "foodCatalog"
	KeyPeople      = "people"
	KeyExpenses    = "expenses"
	KeyBudget      = "budget"

	mealPrefix = "meals:"
)

// MealKey returns the key of one person's consumed or planned meals on date.
func MealKey(date, personID string, kind model.MealKind) string {
	return mealPrefix + date + ":" + personID + ":" + string(kind)
}

// ParseMealKey splits a meal key into its date, person, and kind.
func ParseMealKey(key string) (date, personID string, kind model.MealKind, ok bool) {
	rest, found := strings.CutPrefix(key, mealPrefix)
	if !found {
		return "", "", "", false
	}
	first := strings.Index(rest, ":")
	last := strings.LastIndex(rest, ":")
	if first < 0 || last <= first {
		return "", "", "", false
	}
	kind = model.MealKind(rest[last+1:])
	if kind != model.Consumed && kind != model.Planned {
		return "", "", "", false
	}
	return rest[:first], rest[first+1 : last], kind, true
}

// FoodCatalog returns every food item.
func (s *Store) FoodCatalog() ([]model.FoodItem, error) {
	items := []model.FoodItem{}
	if _, err := s.Get(KeyFoodCatalog, &items); err != nil {
		return []model.FoodItem{}, err
	}
	return items, nil
}

// DayMealSet returns one person's meals of the given kind on date. Missing
// days return an empty set.
func (s *Store) DayMealSet(date, personID string, kind model.MealKind) (model.DayMealSet, error) {
	day := model.DayMealSet{}
	if _, err := s.Get(MealKey(date, personID, kind), &day); err != nil {
		return model.DayMealSet{}, err
	}
	return day, nil
}

// People returns the household members.
func (s *Store) People() ([]model.Person, error) {
	people := []model.Person{}
	if _, err := s.Get(KeyPeople, &people); err != nil {
		return []model.Person{}, err
	}
	return people, nil
}

// Expenses returns every manual expense.
func (s *Store) Expenses() ([]model.Expense, error) {
	expenses := []model.Expense{}
	if _, err := s.Get(KeyExpenses, &expenses); err != nil {
		return []model.Expense{}, err
	}
	return expenses, nil
}

// Budget returns the monthly budget, zero when unset.
func (s *Store) Budget() (model.Budget, error) {
	var b model.Budget
	if _, err := s.Get(KeyBudget, &b); err != nil {
		return model.Budget{}, err
	}
	return b, nil
}

// SaveFoodCatalog replaces the food catalog.
func (s *Store) SaveFoodCatalog(items []model.FoodItem) error {
	return s.Put(KeyFoodCatalog, nonNil(items))
}

// SavePeople replaces the household members.
func (s *Store) SavePeople(people []model.Person) error {
	return s.Put(KeyPeople, nonNil(people))
}

// SaveExpenses replaces the expense list.
func (s *Store) SaveExpenses(expenses []model.Expense) error {
	return s.Put(KeyExpenses, nonNil(expenses))
}

// SaveBudget stores the monthly budget.
func (s *Store) SaveBudget(b model.Budget) error {
	return s.Put(KeyBudget, b)
}

// SaveDayMealSet replaces one person's meals of a kind on date. An empty set
// removes the key.
func (s *Store) SaveDayMealSet(date, personID string, kind model.MealKind, day model.DayMealSet) error {
	key := MealKey(date, personID, kind)
	if day.Count() == 0 {
		return s.Delete(key)
	}
	return s.Put(key, day)
}

// AddMealEntry appends e to a meal slot, assigning an id and timestamp when
// they are missing. It returns the stored entry.
func (s *Store) AddMealEntry(date, personID string, kind model.MealKind, slot model.MealSlot, e model.MealEntry) (model.MealEntry, error) {
	if _, ok := model.ParseSlot(string(slot)); !ok {
		return model.MealEntry{}, fmt.Errorf("unknown meal slot %q", slot)
	}
	day, err := s.DayMealSet(date, personID, kind)
	if err != nil {
		return model.MealEntry{}, err
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now().UTC()
	}
	e.Servings = e.EffectiveServings()
	e.Status = kind

	next := make(model.DayMealSet, len(day)+1)
	for k, v := range day {
		next[k] = v
	}
	next[slot] = append(append([]model.MealEntry(nil), day[slot]...), e)
	if err := s.SaveDayMealSet(date, personID, kind, next); err != nil {
		return model.MealEntry{}, err
	}
	return e, nil
}

// AddExpense appends an expense, assigning an id when missing.
func (s *Store) AddExpense(e model.Expense) (model.Expense, error) {
	if e.Amount <= 0 {
		return model.Expense{}, fmt.Errorf("expense amount must be positive, got %v", e.Amount)
	}
	if _, err := time.Parse("2006-01-02", e.Date); err != nil {
		return model.Expense{}, fmt.Errorf("expense date %q: want YYYY-MM-DD", e.Date)
	}
	expenses, err := s.Expenses()
	if err != nil {
		return model.Expense{}, err
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if err := s.SaveExpenses(append(expenses, e)); err != nil {
		return model.Expense{}, err
	}
	return e, nil
}

// AddPerson appends a household member, assigning an id when missing.
func (s *Store) AddPerson(p model.Person) (model.Person, error) {
	people, err := s.People()
	if err != nil {
		return model.Person{}, err
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if _, dup := model.FindPerson(people, p.ID); dup {
		return model.Person{}, fmt.Errorf("person %q already exists", p.ID)
	}
	if err := s.SavePeople(append(people, p)); err != nil {
		return model.Person{}, err
	}
	return p, nil
}

// MealKeys returns the keys of every stored meal set.
func (s *Store) MealKeys() ([]string, error) {
	return s.Keys(mealPrefix)
}

func nonNil[T any](v []T) []T {
	if v == nil {
		return []T{}
	}
	return v
}
