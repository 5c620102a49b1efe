package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/theirongolddev/larder/internal/budget"
	"github.com/theirongolddev/larder/internal/cli"
	"github.com/theirongolddev/larder/internal/model"

	"github.com/spf13/cobra"
)

var flagBudgetJSON bool

var budgetCmd = &cobra.Command{
	Use:   "budget [YYYY-MM]",
	Short: "Month-to-date spend and month-end projection",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runBudget,
}

var budgetSetCmd = &cobra.Command{
	Use:   "set <amount>",
	Short: "Set the monthly household budget (0 clears it)",
	Args:  cobra.ExactArgs(1),
	RunE:  runBudgetSet,
}

func init() {
	budgetCmd.Flags().BoolVar(&flagBudgetJSON, "json", false, "Print the projection as JSON")
	budgetCmd.AddCommand(budgetSetCmd)
	rootCmd.AddCommand(budgetCmd)
}

func runBudget(_ *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	defer e.close()

	month := budget.MonthOf(e.date)
	if len(args) == 1 {
		if month, err = budget.ParseMonth(args[0]); err != nil {
			return err
		}
	}

	st, err := e.openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	people, err := st.People()
	if err != nil {
		return err
	}
	b, err := st.Budget()
	if err != nil {
		return err
	}

	proj := budget.New(st, e.log, budget.WithClock(e.clock()))
	p, costs, err := proj.ProjectDaily(month, b.Monthly, e.person, people)
	if err != nil {
		return err
	}

	if flagBudgetJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(p)
	}

	cur := e.currency()
	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf(" BUDGET  %s  %s ", p.Month, personLabel(people, e.person))))
	fmt.Println()

	budgetCell := "(not set)"
	if p.Budget > 0 {
		budgetCell = cli.FormatMoney(p.Budget, cur)
	}
	rows := [][]string{
		{"Budget", budgetCell},
		{"Expenses", cli.FormatMoney(p.ExpenseTotal, cur)},
		{"Meals", cli.FormatMoney(p.MealCostTotal, cur)},
		{"---"},
		{"Spent", cli.FormatMoney(p.CombinedSpend, cur)},
		{"Days", fmt.Sprintf("%d / %d", p.ElapsedDays, p.DaysInMonth)},
		{"Daily Average", cli.FormatMoney(p.DailyAverage, cur)},
		{"Est. Month End", cli.FormatMoney(p.EstimatedMonthEnd, cur)},
	}
	if p.Budget > 0 {
		rows = append(rows,
			[]string{"---"},
			[]string{"Remaining", cli.FormatMoney(p.Remaining, cur)},
			[]string{"Projected Remaining", cli.FormatMoney(p.ProjectedRemaining, cur)},
		)
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"", cli.Title(month.First().Month().String())},
		Rows:    rows,
	}))
	fmt.Println()

	if p.Budget > 0 {
		fmt.Printf("  Spent      %s\n", cli.RenderPercentBar(p.SpentPercent, 30))
		fmt.Printf("  Projected  %s\n", cli.RenderPercentBar(p.ProjectedPercent, 30))
		fmt.Println()
	}

	daily := make([]float64, len(costs))
	for i, c := range costs {
		daily[i] = c.Cost
	}
	if len(daily) > 0 {
		fmt.Printf("  Meal cost by day  %s\n\n", cli.RenderSparkline(daily))
	}

	expenses, err := st.Expenses()
	if err != nil {
		return err
	}
	printMonthExpenses(expenses, month, cur)
	return nil
}

func printMonthExpenses(expenses []model.Expense, month budget.Month, currency string) {
	prefix := month.String() + "-"
	var inMonth []model.Expense
	for _, x := range expenses {
		if strings.HasPrefix(strings.TrimSpace(x.Date), prefix) {
			inMonth = append(inMonth, x)
		}
	}
	if len(inMonth) == 0 {
		return
	}
	sort.SliceStable(inMonth, func(i, j int) bool { return inMonth[i].Date < inMonth[j].Date })

	rows := make([][]string, 0, len(inMonth))
	for _, x := range inMonth {
		rows = append(rows, []string{x.Date, x.Description, cli.FormatMoney(x.Amount, currency)})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Expenses",
		Headers: []string{"Date", "Description", "Amount"},
		Rows:    rows,
	}))
	fmt.Println()
}

func runBudgetSet(_ *cobra.Command, args []string) error {
	amount, err := strconv.ParseFloat(strings.TrimSpace(args[0]), 64)
	if err != nil || amount < 0 {
		return fmt.Errorf("invalid budget %q: want a non-negative amount", args[0])
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

	if err := st.SaveBudget(model.Budget{Monthly: amount}); err != nil {
		return err
	}
	if amount == 0 {
		fmt.Println("  Monthly budget cleared.")
		return nil
	}
	fmt.Printf("  Monthly budget set to %s.\n", cli.FormatMoney(amount, e.currency()))
	return nil
}
