package tui

import (
	"errors"
	"strconv"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/charmbracelet/huh"

	"github.com/theirongolddev/larder/internal/config"
	"github.com/theirongolddev/larder/internal/pipeline"
	"github.com/theirongolddev/larder/internal/report"
	"github.com/theirongolddev/larder/internal/tui/theme"
)

// setupValues holds the answers of the first-run form.
type setupValues struct {
	person      string
	weekStart   string
	currency    string
	theme       string
	autoRefresh bool
}

func defaultSetupValues(person string) setupValues {
	def := config.DefaultConfig()
	return setupValues{
		person:      person,
		weekStart:   def.General.WeekStart,
		currency:    def.Budget.Currency,
		theme:       def.Appearance.Theme,
		autoRefresh: def.TUI.AutoRefresh,
	}
}

// newSetupForm builds the first-run form. snap supplies the household so
// the default person can be picked from a list; it may be nil.
func newSetupForm(snap *pipeline.Snapshot, vals *setupValues) *huh.Form {
	personOpts := []huh.Option[string]{huh.NewOption("Whole household", "")}
	if snap != nil {
		for _, d := range snap.People {
			if d.Known {
				personOpts = append(personOpts, huh.NewOption(d.Person.DisplayName(), d.Person.ID))
			}
		}
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to larder").
				Description(welcomeText(snap)),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Whose day should open by default?").
				Options(personOpts...).
				Value(&vals.person),
			huh.NewSelect[string]().
				Title("Weeks start on").
				Options(
					huh.NewOption("Sunday", "sunday"),
					huh.NewOption("Monday", "monday"),
				).
				Value(&vals.weekStart),
			huh.NewInput().
				Title("Currency").
				Description("ISO 4217 code used to display costs").
				Placeholder("USD").
				Validate(validateCurrency).
				Value(&vals.currency),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Theme").
				Options(huh.NewOptions(theme.Names()...)...).
				Value(&vals.theme),
			huh.NewConfirm().
				Title("Refresh the dashboard automatically?").
				Value(&vals.autoRefresh),
		),
	).WithShowHelp(true)
}

func welcomeText(snap *pipeline.Snapshot) string {
	if snap == nil || snap.Household == 0 {
		return "No household data yet. Import a dump with `larder import` or add people with `larder add person`."
	}
	var b strings.Builder
	b.WriteString("Found ")
	b.WriteString(plural(snap.Household, "person", "people"))
	b.WriteString(" and ")
	b.WriteString(plural(snap.Foods, "food", "foods"))
	b.WriteString(". Let's set a few preferences.")
	return b.String()
}

func validateCurrency(s string) error {
	code := strings.ToUpper(strings.TrimSpace(s))
	if code == "" {
		return nil
	}
	if money.GetCurrency(code) == nil {
		return errors.New("unknown currency code")
	}
	return nil
}

// saveSetupConfig writes the form answers and applies them to the app.
func (a *App) saveSetupConfig() error {
	cfg := loadConfigOrDefault()
	v := a.setupVals

	cfg.General.DefaultPerson = v.person
	cfg.General.WeekStart = v.weekStart
	if code := strings.ToUpper(strings.TrimSpace(v.currency)); code != "" {
		cfg.Budget.Currency = code
	}
	if theme.Exists(v.theme) {
		cfg.Appearance.Theme = v.theme
	}
	cfg.TUI.AutoRefresh = v.autoRefresh

	theme.SetActive(cfg.Appearance.Theme)
	a.person = v.person
	a.currency = cfg.Budget.Currency
	a.autoRefresh = v.autoRefresh
	if wd, err := report.ParseWeekday(v.weekStart); err == nil {
		a.weekStart = wd
	}

	return config.Save(cfg)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return "1 " + one
	}
	return strconv.Itoa(n) + " " + many
}
