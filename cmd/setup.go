package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/theirongolddev/larder/internal/config"
	"github.com/theirongolddev/larder/internal/logging"
	"github.com/theirongolddev/larder/internal/store"
	"github.com/theirongolddev/larder/internal/tui/theme"

	"github.com/Rhymond/go-money"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	// Load existing config or defaults
	cfg, _ := config.Load()

	dataDir := cfg.General.DataDir
	if flagDataDir != "" {
		dataDir = flagDataDir
	}
	person := cfg.General.DefaultPerson
	weekStart := cfg.General.WeekStart
	currency := cfg.Budget.Currency
	logLevel := orDefault(cfg.General.LogLevel, "warn")
	themeName := cfg.Appearance.Theme

	personOpts := []huh.Option[string]{huh.NewOption("Whole household", "")}
	if st, err := store.OpenDir(orDefault(dataDir, config.DefaultDataDir())); err == nil {
		people, _ := st.People()
		st.Close()
		for _, p := range people {
			personOpts = append(personOpts, huh.NewOption(p.DisplayName(), p.ID))
		}
	}

	dataDirHelp := fmt.Sprintf("Where the larder database lives. Empty uses %s", config.DefaultDataDir())

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Data directory").
				Description(dataDirHelp).
				Value(&dataDir),
			huh.NewSelect[string]().
				Title("Default person").
				Options(personOpts...).
				Value(&person),
			huh.NewSelect[string]().
				Title("Weeks start on").
				Options(
					huh.NewOption("Sunday", "sunday"),
					huh.NewOption("Monday", "monday"),
				).
				Value(&weekStart),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Currency").
				Description("ISO 4217 code used to display costs").
				Validate(func(s string) error {
					if money.GetCurrency(strings.ToUpper(strings.TrimSpace(s))) == nil {
						return errors.New("unknown currency code")
					}
					return nil
				}).
				Value(&currency),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(huh.NewOptions(theme.Names()...)...).
				Value(&themeName),
			huh.NewSelect[string]().
				Title("Log level").
				Options(huh.NewOptions("debug", "info", "warn", "error")...).
				Validate(func(s string) error {
					_, err := logging.ParseLevel(s)
					return err
				}).
				Value(&logLevel),
		),
	)
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("  Setup cancelled.")
			return nil
		}
		return fmt.Errorf("setup form: %w", err)
	}

	cfg.General.DataDir = strings.TrimSpace(dataDir)
	cfg.General.DefaultPerson = person
	cfg.General.WeekStart = weekStart
	cfg.General.LogLevel = logLevel
	cfg.Budget.Currency = strings.ToUpper(strings.TrimSpace(currency))
	cfg.Appearance.Theme = themeName

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `larder setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
