package model

import "encoding/json"

// Expense is a manually entered household expense.
type Expense struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"` // YYYY-MM-DD
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// UnmarshalJSON accepts amounts stored as numeric strings.
func (e *Expense) UnmarshalJSON(b []byte) error {
	type alias Expense
	aux := struct {
		*alias
		Amount json.RawMessage `json:"amount"`
	}{alias: (*alias)(e)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	e.Amount, _ = flexNumber(aux.Amount)
	return nil
}

// Budget holds the household's monthly spending limit.
type Budget struct {
	Monthly float64 `json:"monthly"`
}

// Projection holds month-to-date spend and the month-end forecast.
type Projection struct {
	Month        string  `json:"month"` // YYYY-MM
	Budget       float64 `json:"budget"`
	CurrentMonth bool    `json:"currentMonth"`
	ElapsedDays  int     `json:"elapsedDays"`
	DaysInMonth  int     `json:"daysInMonth"`

	ExpenseTotal  float64 `json:"expenseTotal"`
	MealCostTotal float64 `json:"mealCostTotal"`
	CombinedSpend float64 `json:"combinedSpend"`

	DailyAverage       float64 `json:"dailyAverage"`
	EstimatedMonthEnd  float64 `json:"estimatedMonthEnd"`
	Remaining          float64 `json:"remaining"`
	ProjectedRemaining float64 `json:"projectedRemaining"`
	SpentPercent       float64 `json:"spentPercent"`
	ProjectedPercent   float64 `json:"projectedPercent"`
}
