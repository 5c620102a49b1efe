package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/theirongolddev/larder/internal/cli"
	"github.com/theirongolddev/larder/internal/model"
	"github.com/theirongolddev/larder/internal/report"

	"github.com/spf13/cobra"
)

var flagReportJSON bool

var reportCmd = &cobra.Command{
	Use:       "report [daily|weekly|monthly]",
	Short:     "Planned vs. consumed nutrition over a day, week, or month",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{string(report.Daily), string(report.Weekly), string(report.Monthly)},
	RunE:      runReport,
}

func init() {
	reportCmd.Flags().BoolVar(&flagReportJSON, "json", false, "Print the report as JSON")
	rootCmd.AddCommand(reportCmd)
}

func runReport(_ *cobra.Command, args []string) error {
	rtype := report.Weekly
	if len(args) == 1 {
		t, err := report.ParseType(args[0])
		if err != nil {
			return err
		}
		rtype = t
	}

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

	people, err := st.People()
	if err != nil {
		return err
	}

	gen := report.New(st, e.log, report.WithClock(e.clock()))
	anchor := report.Anchor(rtype, e.date, e.weekStart)
	r, err := gen.Generate(rtype, e.person, anchor, people)
	if err != nil {
		return err
	}

	if flagReportJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf(" %s REPORT  %s ", cli.Title(string(rtype)), personLabel(people, e.person))))
	fmt.Println()

	if r.IsEmpty() {
		fmt.Println("  No dates up to today in this period.")
		fmt.Println()
		return nil
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Day", "Planned", "Eaten", "Delta", "Protein", "Carbs", "Fat", "Cost"},
		Rows:    reportRows(r, e.currency()),
	}))
	fmt.Println()
	if len(r.Labels) > 1 {
		fmt.Printf("  Calories  %s\n\n", cli.RenderSparkline(r.Calories.Consumed))
	}
	return nil
}

// reportRows lays out one row per date followed by a totals row. A report
// whose series do not line up with its labels yields no rows.
func reportRows(r model.Report, currency string) [][]string {
	if !r.Aligned() {
		return nil
	}
	rows := make([][]string, 0, len(r.Labels)+2)
	for i, label := range r.Labels {
		day := ""
		if t, err := time.Parse(dateLayout, label); err == nil {
			day = cli.FormatDayOfWeek(int(t.Weekday()))
		}
		rows = append(rows, []string{
			label,
			day,
			cli.FormatKcal(r.Calories.Planned[i]),
			cli.FormatKcal(r.Calories.Consumed[i]),
			cli.FormatDelta(r.Calories.Consumed[i], r.Calories.Planned[i]),
			cli.FormatGrams(r.Protein.Consumed[i], "g"),
			cli.FormatGrams(r.Carbs.Consumed[i], "g"),
			cli.FormatGrams(r.Fat.Consumed[i], "g"),
			cli.FormatMoney(r.Cost.Consumed[i], currency),
		})
	}

	planned, consumed := report.Totals(r)
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{
		"Total",
		"",
		cli.FormatKcal(planned.Calories),
		cli.FormatKcal(consumed.Calories),
		cli.FormatDelta(consumed.Calories, planned.Calories),
		cli.FormatGrams(consumed.Protein, "g"),
		cli.FormatGrams(consumed.Carbs, "g"),
		cli.FormatGrams(consumed.Fat, "g"),
		cli.FormatMoney(consumed.Cost, currency),
	})
	return rows
}
