// Package source reads and writes JSON snapshots of larder data.
package source

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sort"
	"time"

	"github.com/theirongolddev/larder/internal/model"
)

// Top-level section names of a dump document.
const (
	SectionFoodCatalog = "foodCatalog"
	SectionPeople      = "people"
	SectionExpenses    = "expenses"
	SectionBudget      = "budget"
	SectionMeals       = "meals"
)

// SectionError reports a section that could not be decoded.
type SectionError struct {
	Section string
	Err     error
}

func (e *SectionError) Error() string {
	return fmt.Sprintf("%s: %v", e.Section, e.Err)
}

func (e *SectionError) Unwrap() error { return e.Err }

// ParseResult holds a decoded dump and the sections that failed to decode.
type ParseResult struct {
	Dump        Dump
	ParseErrors []error
	Err         error
}

// ReadDump reads and parses the dump at path.
func ReadDump(path string) ParseResult {
	b, err := os.ReadFile(path)
	if err != nil {
		return ParseResult{Err: err}
	}
	return ParseDump(b)
}

// ParseDump decodes a dump document. A malformed section is recorded in
// ParseErrors and the remaining sections are still decoded; only a document
// that is not a JSON object sets Err.
//
// Section values may themselves be JSON-encoded strings, which is how
// browser local storage exports persist them.
func ParseDump(b []byte) ParseResult {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(b, &top); err != nil {
		return ParseResult{Err: fmt.Errorf("dump is not a JSON object: %w", err)}
	}

	var res ParseResult
	fail := func(section string, err error) {
		res.ParseErrors = append(res.ParseErrors, &SectionError{Section: section, Err: err})
	}

	if raw, ok := section(top, SectionFoodCatalog); ok {
		if err := json.Unmarshal(raw, &res.Dump.FoodCatalog); err != nil {
			fail(SectionFoodCatalog, err)
			res.Dump.FoodCatalog = nil
		}
	}
	if raw, ok := section(top, SectionPeople); ok {
		if err := json.Unmarshal(raw, &res.Dump.People); err != nil {
			fail(SectionPeople, err)
			res.Dump.People = nil
		}
	}
	if raw, ok := section(top, SectionExpenses); ok {
		var expenses []model.Expense
		if err := json.Unmarshal(raw, &expenses); err != nil {
			fail(SectionExpenses, err)
		} else {
			kept, errs := validExpenses(expenses)
			res.Dump.Expenses = kept
			for _, err := range errs {
				fail(SectionExpenses, err)
			}
		}
	}
	if raw, ok := section(top, SectionBudget); ok {
		var budget model.Budget
		if err := decodeBudget(raw, &budget); err != nil {
			fail(SectionBudget, err)
		} else {
			res.Dump.Budget = &budget
		}
	}
	if raw, ok := section(top, SectionMeals); ok {
		meals, errs := decodeMeals(raw)
		res.Dump.Meals = meals
		for _, err := range errs {
			fail(SectionMeals, err)
		}
	}
	return res
}

// section returns a top-level value, unwrapping a JSON-encoded string.
// Absent and null sections report false.
func section(top map[string]json.RawMessage, name string) (json.RawMessage, bool) {
	raw, ok := top[name]
	raw = bytes.TrimSpace(raw)
	if !ok || len(raw) == 0 || string(raw) == "null" {
		return nil, false
	}
	if raw[0] == '"' {
		var inner string
		if err := json.Unmarshal(raw, &inner); err == nil {
			return json.RawMessage(inner), true
		}
	}
	return raw, true
}

// decodeBudget accepts {"monthly": n} or a bare number.
func decodeBudget(raw json.RawMessage, b *model.Budget) error {
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		b.Monthly = n
		return nil
	}
	var obj struct {
		Monthly json.Number `json:"monthly"`
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&obj); err != nil {
		return err
	}
	if obj.Monthly == "" {
		return nil
	}
	v, err := obj.Monthly.Float64()
	if err != nil {
		return fmt.Errorf("monthly: %w", err)
	}
	b.Monthly = v
	return nil
}

// validExpenses drops expenses without a positive amount or a YYYY-MM-DD
// date, reporting each one.
func validExpenses(in []model.Expense) ([]model.Expense, []error) {
	out := make([]model.Expense, 0, len(in))
	var errs []error
	for _, e := range in {
		if _, err := time.Parse("2006-01-02", e.Date); err != nil {
			errs = append(errs, fmt.Errorf("expense %q: date %q: want YYYY-MM-DD", e.ID, e.Date))
			continue
		}
		if !(e.Amount > 0) || math.IsInf(e.Amount, 0) {
			errs = append(errs, fmt.Errorf("expense %q: amount %v: want a positive number", e.ID, e.Amount))
			continue
		}
		out = append(out, e)
	}
	return out, errs
}

// decodeMeals decodes date -> person -> {consumed, planned}. Dates that are
// not YYYY-MM-DD and person entries that fail to decode are skipped and
// reported.
func decodeMeals(raw json.RawMessage) (map[string]map[string]MealPair, []error) {
	var byDate map[string]map[string]json.RawMessage
	if err := json.Unmarshal(raw, &byDate); err != nil {
		return nil, []error{err}
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	var errs []error
	out := make(map[string]map[string]MealPair, len(byDate))
	for _, date := range dates {
		if _, err := time.Parse("2006-01-02", date); err != nil {
			errs = append(errs, fmt.Errorf("date %q: want YYYY-MM-DD", date))
			continue
		}
		people := make(map[string]MealPair, len(byDate[date]))
		for personID, pr := range byDate[date] {
			var pair MealPair
			if err := json.Unmarshal(pr, &pair); err != nil {
				errs = append(errs, fmt.Errorf("%s/%s: %w", date, personID, err))
				continue
			}
			people[personID] = pair
		}
		out[date] = people
	}
	return out, errs
}
