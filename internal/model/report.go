package model

// Series holds index-aligned planned and consumed values for one metric.
type Series struct {
	Planned  []float64 `json:"planned"`
	Consumed []float64 `json:"consumed"`
}

// Report is a planned vs. consumed time series keyed by ISO date labels.
type Report struct {
	Labels   []string `json:"labels"`
	Calories Series   `json:"calories"`
	Protein  Series   `json:"protein"`
	Carbs    Series   `json:"carbs"`
	Fat      Series   `json:"fat"`
	Cost     Series   `json:"cost"`
}

// EmptyReport returns a report with no labels. Slices are non-nil so the
// report serializes as empty arrays.
func EmptyReport() Report {
	empty := func() Series { return Series{Planned: []float64{}, Consumed: []float64{}} }
	return Report{
		Labels:   []string{},
		Calories: empty(),
		Protein:  empty(),
		Carbs:    empty(),
		Fat:      empty(),
		Cost:     empty(),
	}
}

// IsEmpty reports whether the report has no dates.
func (r Report) IsEmpty() bool {
	return len(r.Labels) == 0
}

// Append adds one date with its planned and consumed totals.
func (r *Report) Append(label string, planned, consumed NutritionTotals) {
	r.Labels = append(r.Labels, label)
	r.Calories.Planned = append(r.Calories.Planned, planned.Calories)
	r.Calories.Consumed = append(r.Calories.Consumed, consumed.Calories)
	r.Protein.Planned = append(r.Protein.Planned, planned.Protein)
	r.Protein.Consumed = append(r.Protein.Consumed, consumed.Protein)
	r.Carbs.Planned = append(r.Carbs.Planned, planned.Carbs)
	r.Carbs.Consumed = append(r.Carbs.Consumed, consumed.Carbs)
	r.Fat.Planned = append(r.Fat.Planned, planned.Fat)
	r.Fat.Consumed = append(r.Fat.Consumed, consumed.Fat)
	r.Cost.Planned = append(r.Cost.Planned, planned.Cost)
	r.Cost.Consumed = append(r.Cost.Consumed, consumed.Cost)
}

// Metrics returns the report's series in display order with their names.
func (r Report) Metrics() []NamedSeries {
	return []NamedSeries{
		{Name: "calories", Unit: "kcal", Series: r.Calories},
		{Name: "protein", Unit: "g", Series: r.Protein},
		{Name: "carbs", Unit: "g", Series: r.Carbs},
		{Name: "fat", Unit: "g", Series: r.Fat},
		{Name: "cost", Unit: "", Series: r.Cost},
	}
}

// Aligned reports whether every series has one value per label.
func (r Report) Aligned() bool {
	n := len(r.Labels)
	for _, m := range r.Metrics() {
		if len(m.Series.Planned) != n || len(m.Series.Consumed) != n {
			return false
		}
	}
	return true
}

// NamedSeries pairs a series with its metric name and display unit.
type NamedSeries struct {
	Name   string
	Unit   string
	Series Series
}
