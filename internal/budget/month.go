// Package budget totals a month's expenses and meal costs and projects
// month-end spend.
package budget

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/larder/internal/model"
)

// MonthLayout is the YYYY-MM month selector format.
const MonthLayout = "2006-01"

// Month is a calendar month.
type Month struct {
	Year  int
	Month time.Month
}

// ParseMonth parses a YYYY-MM selector.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse(MonthLayout, strings.TrimSpace(s))
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q (want YYYY-MM): %w", s, err)
	}
	return MonthOf(t), nil
}

// MonthOf returns the month containing t.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// String formats m as YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// First returns midnight UTC on the first day of m.
func (m Month) First() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// Dates returns every YYYY-MM-DD date in m.
func (m Month) Dates() []string {
	n := DaysInMonth(m)
	out := make([]string, 0, n)
	for d := m.First(); d.Month() == m.Month; d = d.AddDate(0, 0, 1) {
		out = append(out, d.Format("2006-01-02"))
	}
	return out
}

// DaysInMonth returns the number of days in m.
func DaysInMonth(m Month) int {
	return m.First().AddDate(0, 1, -1).Day()
}

// IsCurrent reports whether m is the month containing now.
func IsCurrent(m Month, now time.Time) bool {
	return MonthOf(now) == m
}

// ElapsedDays is today's day of month when m is the current month, and the
// full length of m otherwise.
func ElapsedDays(m Month, now time.Time) int {
	if IsCurrent(m, now) {
		return now.Day()
	}
	return DaysInMonth(m)
}

// DailyAverage divides spend by the elapsed days of m.
func DailyAverage(spend float64, m Month, now time.Time) float64 {
	return spend / float64(ElapsedDays(m, now))
}

// EstimatedMonthEndTotal extrapolates spend to the end of the current month.
// Any other month returns spend unchanged.
func EstimatedMonthEndTotal(spend float64, m Month, now time.Time) float64 {
	if !IsCurrent(m, now) {
		return spend
	}
	remaining := DaysInMonth(m) - ElapsedDays(m, now)
	return spend + DailyAverage(spend, m, now)*float64(remaining)
}

// Percent returns spend as a percentage of budget, capped at 100. A zero
// budget with zero spend is 0%.
func Percent(spend, budget float64) float64 {
	p := spend / budget * 100
	switch {
	case math.IsNaN(p), p < 0:
		return 0
	case p > 100:
		return 100
	}
	return p
}

// MonthlyExpenseTotal sums the expenses dated within m. Amounts that are
// not positive are ignored.
func MonthlyExpenseTotal(expenses []model.Expense, m Month) float64 {
	prefix := m.String()
	total := decimal.Zero
	for _, e := range expenses {
		if !strings.HasPrefix(strings.TrimSpace(e.Date), prefix) {
			continue
		}
		if !(e.Amount > 0) || math.IsInf(e.Amount, 0) {
			continue
		}
		total = total.Add(decimal.NewFromFloat(e.Amount))
	}
	return total.InexactFloat64()
}
