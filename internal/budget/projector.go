package budget

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/theirongolddev/larder/internal/model"
	"github.com/theirongolddev/larder/internal/nutrition"
)

// Source supplies the data a projection reads.
type Source interface {
	FoodCatalog() ([]model.FoodItem, error)
	DayMealSet(date, personID string, kind model.MealKind) (model.DayMealSet, error)
	Expenses() ([]model.Expense, error)
}

// DailyCost is the consumed meal cost of one date.
type DailyCost struct {
	Date string  `json:"date"`
	Cost float64 `json:"cost"`
}

// Projector computes month spend and projections from a Source.
type Projector struct {
	src Source
	log *zap.Logger
	now func() time.Time
}

// Option configures a Projector.
type Option func(*Projector)

// WithClock sets the function that decides which month is current.
func WithClock(now func() time.Time) Option {
	return func(p *Projector) {
		if now != nil {
			p.now = now
		}
	}
}

// New returns a Projector reading from src. A nil logger discards output.
func New(src Source, log *zap.Logger, opts ...Option) *Projector {
	if log == nil {
		log = zap.NewNop()
	}
	p := &Projector{src: src, log: log, now: time.Now}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// MealCosts returns the consumed meal cost of every day in m, summed over
// the people personFilter selects.
func (p *Projector) MealCosts(m Month, personFilter string, people []model.Person) ([]DailyCost, error) {
	if p.src == nil {
		return []DailyCost{}, errors.New("budget: no data source")
	}
	foods, err := p.src.FoodCatalog()
	if err != nil {
		return []DailyCost{}, fmt.Errorf("loading food catalog: %w", err)
	}
	cat := nutrition.NewCatalog(foods)
	ids := model.PersonIDs(personFilter, people)

	dates := m.Dates()
	out := make([]DailyCost, 0, len(dates))
	for _, date := range dates {
		total := decimal.Zero
		for _, id := range ids {
			day, err := p.src.DayMealSet(date, id, model.Consumed)
			if err != nil {
				return []DailyCost{}, fmt.Errorf("loading meals for %s on %s: %w", id, date, err)
			}
			total = total.Add(entryCost(day.Entries(), cat))
		}
		out = append(out, DailyCost{Date: date, Cost: total.Round(2).InexactFloat64()})
	}
	return out, nil
}

// entryCost sums costPerServing × servings over entries found in cat.
func entryCost(entries []model.MealEntry, cat *nutrition.Catalog) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range entries {
		food, ok := cat.Lookup(e.FoodID)
		if !ok {
			continue
		}
		price := decimal.NewFromFloat(food.PerServing().Cost)
		sum = sum.Add(price.Mul(decimal.NewFromFloat(e.EffectiveServings())))
	}
	return sum
}

// Project combines m's expenses and meal costs against budget. On failure
// it returns a zero projection carrying only the month and budget.
func (p *Projector) Project(m Month, budget float64, personFilter string, people []model.Person) (model.Projection, error) {
	proj, _, err := p.ProjectDaily(m, budget, personFilter, people)
	return proj, err
}

// ProjectDaily is Project that also returns the per-day meal costs the
// projection was built from, so callers showing both read the month once.
// On failure the costs are an empty slice.
func (p *Projector) ProjectDaily(m Month, budget float64, personFilter string, people []model.Person) (model.Projection, []DailyCost, error) {
	proj, costs, err := p.project(m, budget, personFilter, people)
	if err != nil {
		p.log.Warn("budget projection failed",
			zap.String("month", m.String()),
			zap.String("person", personFilter),
			zap.Error(err))
		return model.Projection{Month: m.String(), Budget: budget}, []DailyCost{}, err
	}
	return proj, costs, nil
}

func (p *Projector) project(m Month, budget float64, personFilter string, people []model.Person) (model.Projection, []DailyCost, error) {
	if p.src == nil {
		return model.Projection{}, nil, errors.New("budget: no data source")
	}
	now := p.now()

	expenses, err := p.src.Expenses()
	if err != nil {
		return model.Projection{}, nil, fmt.Errorf("loading expenses: %w", err)
	}
	costs, err := p.MealCosts(m, personFilter, people)
	if err != nil {
		return model.Projection{}, nil, err
	}

	mealTotal := decimal.Zero
	for _, c := range costs {
		mealTotal = mealTotal.Add(decimal.NewFromFloat(c.Cost))
	}
	expenseTotal := MonthlyExpenseTotal(expenses, m)
	combined := decimal.NewFromFloat(expenseTotal).Add(mealTotal).InexactFloat64()
	estimate := EstimatedMonthEndTotal(combined, m, now)

	return model.Projection{
		Month:        m.String(),
		Budget:       budget,
		CurrentMonth: IsCurrent(m, now),
		ElapsedDays:  ElapsedDays(m, now),
		DaysInMonth:  DaysInMonth(m),

		ExpenseTotal:  expenseTotal,
		MealCostTotal: mealTotal.InexactFloat64(),
		CombinedSpend: combined,

		DailyAverage:       DailyAverage(combined, m, now),
		EstimatedMonthEnd:  estimate,
		Remaining:          budget - combined,
		ProjectedRemaining: budget - estimate,
		SpentPercent:       Percent(combined, budget),
		ProjectedPercent:   Percent(estimate, budget),
	}, costs, nil
}
