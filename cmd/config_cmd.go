package cmd

import (
	"fmt"

	"github.com/theirongolddev/larder/internal/cli"
	"github.com/theirongolddev/larder/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	defer e.close()
	cfg := e.cfg

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Printf("  Env file:    %s\n", config.EnvPath())
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Data directory: %s\n", e.dataDir)
	if cfg.General.DefaultPerson != "" {
		fmt.Printf("    Default person: %s\n", cfg.General.DefaultPerson)
	} else {
		fmt.Println("    Default person: whole household")
	}
	fmt.Printf("    Week starts:    %s\n", cli.Title(e.weekStart.String()))
	fmt.Printf("    Log level:      %s\n", orDefault(cfg.General.LogLevel, "warn"))
	fmt.Println()

	fmt.Println("  [Budget]")
	fmt.Printf("    Currency: %s\n", cfg.Budget.Currency)
	if st, err := e.openStore(); err == nil {
		b, err := st.Budget()
		st.Close()
		switch {
		case err != nil:
			fmt.Printf("    Monthly budget: unreadable (%v)\n", err)
		case b.Monthly > 0:
			fmt.Printf("    Monthly budget: %s\n", cli.FormatMoney(b.Monthly, cfg.Budget.Currency))
		default:
			fmt.Println("    Monthly budget: not set")
		}
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [TUI]")
	fmt.Printf("    Auto refresh:     %v\n", cfg.TUI.AutoRefresh)
	fmt.Printf("    Refresh interval: %ds\n", cfg.TUI.RefreshIntervalSec)
	fmt.Println()

	fmt.Println("  Run `larder setup` to reconfigure.")
	return nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
