package cmd

import (
	"fmt"
	"math"

	"github.com/theirongolddev/larder/internal/cli"
	"github.com/theirongolddev/larder/internal/model"
	"github.com/theirongolddev/larder/internal/nutrition"
	"github.com/theirongolddev/larder/internal/pipeline"
	"github.com/theirongolddev/larder/internal/report"

	"github.com/spf13/cobra"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Nutrition, meals, and budget for one day",
	RunE:  runToday,
}

func init() {
	rootCmd.AddCommand(todayCmd)
}

func runToday(_ *cobra.Command, _ []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	defer e.close()

	st, err := e.openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	snap, err := e.loadSnapshot(st, report.Daily)
	if err != nil {
		return err
	}

	var people []model.Person
	for _, d := range snap.People {
		people = append(people, d.Person)
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf(" LARDER  %s  %s ", snap.Date, personLabel(people, e.person))))
	fmt.Println()

	total := snap.Total
	target := float64(total.Target())
	planned := nutrition.Breakdown(total.Planned, target)

	rows := make([][]string, 0, len(planned)+2)
	for i, line := range nutrition.Breakdown(total.Consumed, target) {
		rows = append(rows, []string{
			line.Name,
			formatAmount(line.Amount, line.Unit),
			formatAmount(line.Target, line.Unit),
			fmt.Sprintf("%d%%", line.Percent),
			formatAmount(planned[i].Amount, line.Unit),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{
		"Cost",
		cli.FormatMoney(total.Consumed.Cost, e.currency()),
		"",
		"",
		cli.FormatMoney(total.Planned.Cost, e.currency()),
	})

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Nutrition",
		Headers: []string{"Nutrient", "Eaten", "Target", "%", "Planned"},
		Rows:    rows,
	}))
	if total.Needs.Defaulted {
		fmt.Println("  Target uses the default for people with incomplete profiles.")
	}
	fmt.Println()

	slotRows := make([][]string, 0, len(model.Slots))
	for _, slot := range model.Slots {
		t := total.Slots[slot]
		slotRows = append(slotRows, []string{
			cli.Title(string(slot)),
			cli.FormatKcal(t.Calories),
			cli.FormatGrams(t.Protein, "g"),
			cli.FormatGrams(t.Carbs, "g"),
			cli.FormatGrams(t.Fat, "g"),
			cli.FormatMoney(t.Cost, e.currency()),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Meals",
		Headers: []string{"Slot", "Calories", "Protein", "Carbs", "Fat", "Cost"},
		Rows:    slotRows,
	}))
	fmt.Println()

	if len(snap.People) > 1 {
		printHousehold(snap, e.currency())
		fmt.Println()
	}

	if snap.Budget.Monthly > 0 {
		p := snap.Projection
		fmt.Printf("  Budget %s  %s of %s spent  ",
			p.Month,
			cli.FormatMoney(p.CombinedSpend, e.currency()),
			cli.FormatMoney(p.Budget, e.currency()),
		)
		fmt.Println(cli.RenderPercentBar(p.SpentPercent, 20))
		fmt.Println()
	}

	for _, w := range snap.Warnings {
		fmt.Printf("  warning: %v\n", w)
	}
	return nil
}

func printHousehold(snap *pipeline.Snapshot, currency string) {
	rows := make([][]string, 0, len(snap.People))
	for _, d := range snap.People {
		target := cli.FormatKcal(float64(d.Target()))
		if d.Needs.Defaulted {
			target += "*"
		}
		rows = append(rows, []string{
			d.Person.DisplayName(),
			cli.FormatKcal(d.Consumed.Calories),
			target,
			fmt.Sprintf("%d%%", d.Percent.Calories),
			cli.FormatNumber(int64(d.Entries)),
			cli.FormatMoney(d.Consumed.Cost, currency),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Household",
		Headers: []string{"Person", "Eaten", "Target", "%", "Entries", "Cost"},
		Rows:    rows,
	}))
}

// formatAmount renders a nutrient amount in its unit.
func formatAmount(v float64, unit string) string {
	if unit == "kcal" {
		return cli.FormatKcal(v)
	}
	if unit == "mg" || unit == "mcg" {
		return cli.FormatNumber(int64(math.Round(v))) + unit
	}
	return cli.FormatGrams(v, unit)
}
