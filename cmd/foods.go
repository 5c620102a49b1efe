package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/theirongolddev/larder/internal/cli"
	"github.com/theirongolddev/larder/internal/model"

	"github.com/spf13/cobra"
)

var flagFoodSearch string

var foodsCmd = &cobra.Command{
	Use:   "foods",
	Short: "List the food catalog",
	RunE:  runFoods,
}

func init() {
	foodsCmd.Flags().StringVarP(&flagFoodSearch, "search", "s", "", "Filter by name or id (substring match)")
	rootCmd.AddCommand(foodsCmd)
}

func runFoods(_ *cobra.Command, _ []string) error {
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

	items, err := st.FoodCatalog()
	if err != nil {
		return err
	}
	items = filterFoods(items, flagFoodSearch)

	fmt.Println()
	fmt.Println(cli.RenderTitle(" FOOD CATALOG "))
	fmt.Println()

	if len(items) == 0 {
		fmt.Println("  No foods found. Import a data file with: larder import <file>")
		fmt.Println()
		return nil
	}

	rows := make([][]string, 0, len(items))
	for _, f := range items {
		serving := f.ServingSize
		if serving == "" {
			serving = "-"
		}
		rows = append(rows, []string{
			string(f.ID),
			f.Name,
			serving,
			cli.FormatKcal(f.Calories),
			cli.FormatGrams(f.Protein, "g"),
			cli.FormatGrams(f.Carbs, "g"),
			cli.FormatGrams(f.Fat, "g"),
			cli.FormatMoney(f.CostPerServing, e.currency()),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"ID", "Name", "Serving", "Calories", "Protein", "Carbs", "Fat", "Cost"},
		Rows:    rows,
	}))
	fmt.Printf("  %s foods\n\n", cli.FormatNumber(int64(len(items))))
	return nil
}

// filterFoods keeps items whose name or id contains q, sorted by name.
func filterFoods(items []model.FoodItem, q string) []model.FoodItem {
	q = strings.ToLower(strings.TrimSpace(q))
	out := make([]model.FoodItem, 0, len(items))
	for _, f := range items {
		if q == "" ||
			strings.Contains(strings.ToLower(f.Name), q) ||
			strings.Contains(strings.ToLower(string(f.ID)), q) {
			out = append(out, f)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}
