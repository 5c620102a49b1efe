package cmd

import (
	"fmt"
	"strconv"

	"github.com/theirongolddev/larder/internal/cli"
	"github.com/theirongolddev/larder/internal/energy"
	"github.com/theirongolddev/larder/internal/model"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var needsCmd = &cobra.Command{
	Use:   "needs",
	Short: "Daily energy needs (BMR and TDEE) per person",
	RunE:  runNeeds,
}

func init() {
	rootCmd.AddCommand(needsCmd)
}

func runNeeds(_ *cobra.Command, _ []string) error {
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
	ids := model.PersonIDs(e.person, people)
	if len(ids) == 0 {
		fmt.Println("\n  No people on file. Add one with: larder add person <name>")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(" ENERGY NEEDS "))
	fmt.Println()

	var rows [][]string
	var missing int
	var total int
	for _, id := range ids {
		p, ok := model.FindPerson(people, id)
		if !ok {
			return fmt.Errorf("unknown person %q", id)
		}
		n, err := energy.Profile(p)
		bmr := cli.FormatKcal(float64(n.BMR))
		tdee := cli.FormatKcal(float64(n.TDEE))
		if err != nil {
			e.log.Debug("energy needs defaulted", zap.String("person", id), zap.Error(err))
			missing++
			if n.BMR == 0 {
				bmr = "-"
			}
			tdee += "*"
		}
		total += n.TDEE

		rows = append(rows, []string{
			p.DisplayName(),
			cli.Title(p.Gender),
			ageOrDash(p.Age),
			measureOrDash(p.Weight, p.WeightUnit, model.UnitKg),
			measureOrDash(p.Height, p.HeightUnit, model.UnitCm),
			cli.Title(string(p.ActivityLevel)),
			strconv.FormatFloat(n.Factor, 'f', -1, 64),
			bmr,
			tdee,
		})
	}
	if len(rows) > 1 {
		rows = append(rows, []string{"---"})
		rows = append(rows, []string{"Household", "", "", "", "", "", "", "", cli.FormatKcal(float64(total))})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Person", "Gender", "Age", "Weight", "Height", "Activity", "Factor", "BMR", "TDEE"},
		Rows:    rows,
	}))
	if missing > 0 {
		fmt.Printf("  * %d with incomplete profiles use the default of %s\n",
			missing, cli.FormatKcal(energy.DefaultCalories))
	}
	fmt.Println()
	return nil
}

func ageOrDash(age int) string {
	if age <= 0 {
		return "-"
	}
	return strconv.Itoa(age)
}

func measureOrDash(v float64, unit, fallback string) string {
	if v <= 0 {
		return "-"
	}
	if unit == "" {
		unit = fallback
	}
	return strconv.FormatFloat(v, 'f', -1, 64) + " " + unit
}
