package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/larder/internal/cli"
	"github.com/theirongolddev/larder/internal/energy"
	"github.com/theirongolddev/larder/internal/model"
	"github.com/theirongolddev/larder/internal/nutrition"

	"github.com/spf13/cobra"
)

var (
	flagMealSlot    string
	flagMealPlanned bool
	flagMealNotes   string

	flagPersonID         string
	flagPersonGender     string
	flagPersonAge        int
	flagPersonWeight     float64
	flagPersonWeightUnit string
	flagPersonHeight     float64
	flagPersonHeightUnit string
	flagPersonActivity   string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a meal, an expense, or a household member",
}

var addMealCmd = &cobra.Command{
	Use:   "meal <food-id> [servings]",
	Short: "Log a food against a meal slot for --person on --date",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runAddMeal,
}

var addExpenseCmd = &cobra.Command{
	Use:   "expense <amount> <description...>",
	Short: "Record a household expense on --date",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runAddExpense,
}

var addPersonCmd = &cobra.Command{
	Use:   "person <name>",
	Short: "Add a household member",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAddPerson,
}

func init() {
	addMealCmd.Flags().StringVar(&flagMealSlot, "slot", string(model.Snacks), "Meal slot: breakfast, lunch, dinner, snacks")
	addMealCmd.Flags().BoolVar(&flagMealPlanned, "planned", false, "Add to the meal plan instead of what was eaten")
	addMealCmd.Flags().StringVar(&flagMealNotes, "notes", "", "Free-form note")

	addPersonCmd.Flags().StringVar(&flagPersonID, "id", "", "Person id (generated when empty)")
	addPersonCmd.Flags().StringVar(&flagPersonGender, "gender", "", "male or female")
	addPersonCmd.Flags().IntVar(&flagPersonAge, "age", 0, "Age in years")
	addPersonCmd.Flags().Float64Var(&flagPersonWeight, "weight", 0, "Body weight")
	addPersonCmd.Flags().StringVar(&flagPersonWeightUnit, "weight-unit", model.UnitKg, "kg or lb")
	addPersonCmd.Flags().Float64Var(&flagPersonHeight, "height", 0, "Height")
	addPersonCmd.Flags().StringVar(&flagPersonHeightUnit, "height-unit", model.UnitCm, "cm or in")
	addPersonCmd.Flags().StringVar(&flagPersonActivity, "activity", string(model.Moderate), "sedentary, light, moderate, active, very_active")

	addCmd.AddCommand(addMealCmd, addExpenseCmd, addPersonCmd)
	rootCmd.AddCommand(addCmd)
}

func runAddMeal(_ *cobra.Command, args []string) error {
	slot, ok := model.ParseSlot(strings.ToLower(strings.TrimSpace(flagMealSlot)))
	if !ok {
		return fmt.Errorf("unknown meal slot %q (want breakfast, lunch, dinner, or snacks)", flagMealSlot)
	}
	servings := 1.0
	if len(args) == 2 {
		s, err := strconv.ParseFloat(args[1], 64)
		if err != nil || s <= 0 {
			return fmt.Errorf("invalid servings %q", args[1])
		}
		servings = s
	}
	kind := model.Consumed
	if flagMealPlanned {
		kind = model.Planned
	}

	e, err := newEnv()
	if err != nil {
		return err
	}
	defer e.close()
	if e.person == "" {
		return fmt.Errorf("meals are logged per person: pass --person or set default_person")
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
	if _, ok := model.FindPerson(people, e.person); !ok {
		return fmt.Errorf("unknown person %q", e.person)
	}

	items, err := st.FoodCatalog()
	if err != nil {
		return err
	}
	food, ok := nutrition.NewCatalog(items).Lookup(model.FoodID(args[0]))
	if !ok {
		return fmt.Errorf("food %q is not in the catalog (see larder foods)", args[0])
	}

	date := e.date.Format(dateLayout)
	entry, err := st.AddMealEntry(date, e.person, kind, slot, model.MealEntry{
		FoodID:   food.ID,
		Servings: servings,
		Notes:    flagMealNotes,
	})
	if err != nil {
		return err
	}

	t := food.PerServing().Scale(entry.Servings)
	fmt.Printf("  %s %s × %s to %s %s on %s (%s, %s)\n",
		verbFor(kind),
		cli.FormatServings(entry.Servings),
		food.Name,
		e.person,
		slot,
		date,
		cli.FormatKcal(t.Calories),
		cli.FormatMoney(t.Cost, e.currency()),
	)
	return nil
}

func verbFor(kind model.MealKind) string {
	if kind == model.Planned {
		return "Planned"
	}
	return "Logged"
}

func runAddExpense(_ *cobra.Command, args []string) error {
	amount, err := strconv.ParseFloat(strings.TrimSpace(args[0]), 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q", args[0])
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

	x, err := st.AddExpense(model.Expense{
		Date:        e.date.Format(dateLayout),
		Description: strings.Join(args[1:], " "),
		Amount:      amount,
	})
	if err != nil {
		return err
	}
	fmt.Printf("  Recorded %s for %q on %s\n", cli.FormatMoney(x.Amount, e.currency()), x.Description, x.Date)
	return nil
}

func runAddPerson(_ *cobra.Command, args []string) error {
	level, err := parseActivity(flagPersonActivity)
	if err != nil {
		return err
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

	p, err := st.AddPerson(model.Person{
		ID:            strings.TrimSpace(flagPersonID),
		Name:          strings.Join(args, " "),
		Gender:        strings.ToLower(strings.TrimSpace(flagPersonGender)),
		Age:           flagPersonAge,
		Weight:        flagPersonWeight,
		WeightUnit:    flagPersonWeightUnit,
		Height:        flagPersonHeight,
		HeightUnit:    flagPersonHeightUnit,
		ActivityLevel: level,
	})
	if err != nil {
		return err
	}

	fmt.Printf("  Added %s (id %s)\n", p.DisplayName(), p.ID)
	if n, err := energy.Profile(p); err != nil {
		fmt.Printf("  Energy needs default to %s: %v\n", cli.FormatKcal(float64(n.TDEE)), err)
	} else {
		fmt.Printf("  BMR %s, TDEE %s\n", cli.FormatKcal(float64(n.BMR)), cli.FormatKcal(float64(n.TDEE)))
	}
	return nil
}

// parseActivity accepts level names in any case, with - or space for _.
func parseActivity(s string) (model.ActivityLevel, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	name = strings.NewReplacer("-", "_", " ", "_").Replace(name)
	for _, l := range model.ActivityLevels {
		if string(l) == name {
			return l, nil
		}
	}
	return "", fmt.Errorf("unknown activity level %q", s)
}
