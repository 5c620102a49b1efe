// Package pipeline loads a day's household snapshot from the store: each
// person's energy needs and meal totals, the period report, and the budget
// projection.
package pipeline

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/theirongolddev/larder/internal/budget"
	"github.com/theirongolddev/larder/internal/model"
	"github.com/theirongolddev/larder/internal/nutrition"
	"github.com/theirongolddev/larder/internal/report"
)

// Source supplies everything a snapshot reads.
type Source interface {
	budget.Source
	People() ([]model.Person, error)
	Budget() (model.Budget, error)
}

// ProgressFunc is called during loading to report progress.
// current is the number of steps finished so far, total is the step count.
type ProgressFunc func(current, total int)

// Options selects what a snapshot covers.
type Options struct {
	Date       time.Time    // day to summarize; zero means today
	Person     string       // person id, or "" / model.AllPeople for everyone
	ReportType report.Type  // defaults to weekly
	WeekStart  time.Weekday // first day of weekly reports
	Now        func() time.Time
	Log        *zap.Logger
}

// Load builds a Snapshot. Per-person days are computed on a bounded worker
// pool. Failures reading people or the food catalog are fatal; report and
// projection failures are recorded in Snapshot.Warnings and leave those
// sections at their zero defaults.
func Load(src Source, opts Options, progressFn ProgressFunc) (*Snapshot, error) {
	if src == nil {
		return nil, errors.New("pipeline: no data source")
	}
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	nowFn := opts.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	start := time.Now()
	now := nowFn()
	clock := func() time.Time { return now }

	date := opts.Date
	if date.IsZero() {
		date = now
	}
	rtype := opts.ReportType
	if rtype == "" {
		rtype = report.Weekly
	}

	people, err := src.People()
	if err != nil {
		return nil, fmt.Errorf("loading people: %w", err)
	}
	foods, err := src.FoodCatalog()
	if err != nil {
		return nil, fmt.Errorf("loading food catalog: %w", err)
	}
	cat := nutrition.NewCatalog(foods)
	ids := model.PersonIDs(opts.Person, people)

	snap := &Snapshot{
		Date:       date.Format(report.DateLayout),
		Person:     opts.Person,
		ReportType: rtype,
		People:     make([]PersonDay, len(ids)),
		Foods:      cat.Len(),
		Household:  len(people),
		Report:     model.EmptyReport(),
	}

	// ids + report + projection
	total := len(ids) + 2
	var done atomic.Int64
	step := func() {
		n := done.Add(1)
		if progressFn != nil {
			progressFn(int(n), total)
		}
	}

	errs := make([]error, len(ids))
	if len(ids) > 0 {
		numWorkers := runtime.GOMAXPROCS(0)
		if numWorkers < 1 {
			numWorkers = 4
		}
		if numWorkers > len(ids) {
			numWorkers = len(ids)
		}

		work := make(chan int, len(ids))
		for i := range ids {
			work <- i
		}
		close(work)

		var wg sync.WaitGroup
		wg.Add(numWorkers)
		for w := 0; w < numWorkers; w++ {
			go func() {
				defer wg.Done()
				for idx := range work {
					snap.People[idx], errs[idx] = loadPersonDay(src, cat, people, ids[idx], snap.Date)
					step()
				}
			}()
		}
		wg.Wait()
	}
	for i, err := range errs {
		if err != nil {
			return nil, err
		}
		if pd := snap.People[i]; pd.CalcErr != nil {
			snap.Warnings = append(snap.Warnings, fmt.Errorf("%s: %w", pd.Person.DisplayName(), pd.CalcErr))
		}
	}
	snap.Total = householdDay(snap.People)

	gen := report.New(src, log, report.WithClock(clock))
	anchor := report.Anchor(rtype, date, opts.WeekStart)
	if snap.Report, err = gen.Generate(rtype, opts.Person, anchor, people); err != nil {
		snap.Warnings = append(snap.Warnings, fmt.Errorf("report: %w", err))
	}
	step()

	b, err := src.Budget()
	if err != nil {
		snap.Warnings = append(snap.Warnings, fmt.Errorf("budget: %w", err))
	}
	snap.Budget = b
	month := budget.MonthOf(date)
	proj := budget.New(src, log, budget.WithClock(clock))
	if snap.Projection, snap.MealCosts, err = proj.ProjectDaily(month, b.Monthly, opts.Person, people); err != nil {
		snap.Warnings = append(snap.Warnings, fmt.Errorf("projection: %w", err))
	}
	step()
	snap.LoadTime = time.Since(start)

	log.Debug("snapshot loaded",
		zap.String("date", snap.Date),
		zap.Int("people", len(snap.People)),
		zap.Int("warnings", len(snap.Warnings)),
		zap.Duration("elapsed", snap.LoadTime))
	return snap, nil
}
