// Package report builds planned vs. consumed nutrition time series over a
// day, week, or month for one person or the whole household.
package report

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/theirongolddev/larder/internal/model"
	"github.com/theirongolddev/larder/internal/nutrition"
)

// AllPeople selects every household member.
const AllPeople = model.AllPeople

// Source supplies the food catalog and per-day meal sets.
type Source interface {
	FoodCatalog() ([]model.FoodItem, error)
	DayMealSet(date, personID string, kind model.MealKind) (model.DayMealSet, error)
}

// Generator produces reports from a Source.
type Generator struct {
	src Source
	log *zap.Logger
	now func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock sets the function used to decide which dates are in the future.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

// New returns a Generator reading from src. A nil logger discards output.
func New(src Source, log *zap.Logger, opts ...Option) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	g := &Generator{src: src, log: log, now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate builds a report of type t anchored at anchor for the person named
// by selector, or for everyone in people when selector is AllPeople.
//
// Household totals are summed field by field after each person's day has
// been aggregated. On any failure Generate returns an empty report and the
// error; it never returns a partial report.
func (g *Generator) Generate(t Type, selector string, anchor time.Time, people []model.Person) (model.Report, error) {
	r, err := g.generate(t, selector, anchor, people)
	if err != nil {
		g.log.Warn("report generation failed",
			zap.String("type", string(t)),
			zap.String("person", selector),
			zap.String("anchor", anchor.Format(DateLayout)),
			zap.Error(err))
		return model.EmptyReport(), err
	}
	g.log.Debug("report generated",
		zap.String("type", string(t)),
		zap.String("person", selector),
		zap.Int("days", len(r.Labels)))
	return r, nil
}

func (g *Generator) generate(t Type, selector string, anchor time.Time, people []model.Person) (model.Report, error) {
	if g.src == nil {
		return model.Report{}, errors.New("report: no data source")
	}
	labels, err := Dates(t, anchor, g.now())
	if err != nil {
		return model.Report{}, err
	}
	foods, err := g.src.FoodCatalog()
	if err != nil {
		return model.Report{}, fmt.Errorf("loading food catalog: %w", err)
	}
	cat := nutrition.NewCatalog(foods)
	ids := model.PersonIDs(selector, people)

	r := model.EmptyReport()
	for _, date := range labels {
		planned, err := g.dayTotals(cat, date, ids, model.Planned)
		if err != nil {
			return model.Report{}, err
		}
		consumed, err := g.dayTotals(cat, date, ids, model.Consumed)
		if err != nil {
			return model.Report{}, err
		}
		r.Append(date, planned, consumed)
	}
	return r, nil
}

// dayTotals sums one kind of meal set across ids for a single date.
func (g *Generator) dayTotals(cat *nutrition.Catalog, date string, ids []string, kind model.MealKind) (model.NutritionTotals, error) {
	var sum model.NutritionTotals
	for _, id := range ids {
		day, err := g.src.DayMealSet(date, id, kind)
		if err != nil {
			return model.NutritionTotals{}, fmt.Errorf("loading %s meals for %s on %s: %w", kind, id, date, err)
		}
		totals, err := nutrition.AggregateDay(day, cat)
		if err != nil {
			return model.NutritionTotals{}, fmt.Errorf("%s on %s: %w", id, date, err)
		}
		sum = sum.Add(totals)
	}
	return sum.Round1(), nil
}

// Totals sums each series of r across its dates. Fields a report does not
// track stay zero.
func Totals(r model.Report) (planned, consumed model.NutritionTotals) {
	for i := range r.Labels {
		planned = planned.Add(model.NutritionTotals{
			Calories: at(r.Calories.Planned, i),
			Protein:  at(r.Protein.Planned, i),
			Carbs:    at(r.Carbs.Planned, i),
			Fat:      at(r.Fat.Planned, i),
			Cost:     at(r.Cost.Planned, i),
		})
		consumed = consumed.Add(model.NutritionTotals{
			Calories: at(r.Calories.Consumed, i),
			Protein:  at(r.Protein.Consumed, i),
			Carbs:    at(r.Carbs.Consumed, i),
			Fat:      at(r.Fat.Consumed, i),
			Cost:     at(r.Cost.Consumed, i),
		})
	}
	return planned.Round1(), consumed.Round1()
}

func at(vals []float64, i int) float64 {
	if i < len(vals) {
		return vals[i]
	}
	return 0
}
