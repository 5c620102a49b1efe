package pipeline

import (
	"errors"
	"fmt"
	"time"

	"github.com/theirongolddev/larder/internal/budget"
	"github.com/theirongolddev/larder/internal/energy"
	"github.com/theirongolddev/larder/internal/model"
	"github.com/theirongolddev/larder/internal/nutrition"
	"github.com/theirongolddev/larder/internal/report"
)

// HouseholdID labels the summed household row of a snapshot.
const HouseholdID = model.AllPeople

// PersonDay is one person's energy needs and meal totals for a date.
type PersonDay struct {
	Person   model.Person
	Known    bool // Person was found in the household list
	Needs    energy.Needs
	NeedsErr error // why Needs fell back to the default target
	CalcErr  error // aggregation failure; totals are zero

	Consumed model.NutritionTotals
	Planned  model.NutritionTotals
	Slots    map[model.MealSlot]model.NutritionTotals // consumed, by slot
	Percent  model.Percentages                        // consumed vs. needs
	Entries  int                                      // consumed entries logged
}

// Target returns the calorie target used for percentages.
func (d PersonDay) Target() int {
	return d.Needs.TDEE
}

// Snapshot is everything the dashboard and the today view show.
type Snapshot struct {
	Date      string // YYYY-MM-DD
	Person    string // selector the snapshot was built for
	Household int    // number of people on file
	Foods     int    // catalog size
	People    []PersonDay
	Total     PersonDay

	ReportType report.Type
	Report     model.Report
	Budget     model.Budget
	Projection model.Projection
	MealCosts  []budget.DailyCost // consumed meal cost per day of the month

	Warnings []error
	LoadTime time.Duration
}

// Err joins the snapshot's warnings.
func (s *Snapshot) Err() error {
	return errors.Join(s.Warnings...)
}

func loadPersonDay(src Source, cat *nutrition.Catalog, people []model.Person, id, date string) (PersonDay, error) {
	p, known := model.FindPerson(people, id)
	if !known {
		p = model.Person{ID: id}
	}
	d := PersonDay{Person: p, Known: known}
	d.Needs, d.NeedsErr = energy.Profile(p)

	consumed, err := src.DayMealSet(date, id, model.Consumed)
	if err != nil {
		return PersonDay{}, fmt.Errorf("loading consumed meals for %s on %s: %w", id, date, err)
	}
	planned, err := src.DayMealSet(date, id, model.Planned)
	if err != nil {
		return PersonDay{}, fmt.Errorf("loading planned meals for %s on %s: %w", id, date, err)
	}
	d.Entries = consumed.Count()

	if d.Consumed, err = nutrition.AggregateDay(consumed, cat); err != nil {
		d.CalcErr = err
	}
	if d.Planned, err = nutrition.AggregateDay(planned, cat); err != nil && d.CalcErr == nil {
		d.CalcErr = err
	}
	if d.Slots, err = nutrition.SlotTotals(consumed, cat); err != nil && d.CalcErr == nil {
		d.CalcErr = err
	}
	d.Percent = nutrition.PercentagesOf(d.Consumed, float64(d.Target()))
	return d, nil
}

// householdDay sums days into one row. The calorie target is the sum of
// each person's target.
func householdDay(days []PersonDay) PersonDay {
	total := PersonDay{
		Person: model.Person{ID: HouseholdID, Name: "Household"},
		Known:  true,
		Slots:  make(map[model.MealSlot]model.NutritionTotals, len(model.Slots)),
	}
	for _, d := range days {
		total.Consumed = total.Consumed.Add(d.Consumed)
		total.Planned = total.Planned.Add(d.Planned)
		for slot, t := range d.Slots {
			total.Slots[slot] = total.Slots[slot].Add(t)
		}
		total.Needs.BMR += d.Needs.BMR
		total.Needs.TDEE += d.Needs.TDEE
		total.Needs.Defaulted = total.Needs.Defaulted || d.Needs.Defaulted
		total.Entries += d.Entries
	}
	total.Consumed = total.Consumed.Round1()
	total.Planned = total.Planned.Round1()
	for slot, t := range total.Slots {
		total.Slots[slot] = t.Round1()
	}
	total.Percent = nutrition.PercentagesOf(total.Consumed, float64(total.Target()))
	return total
}
