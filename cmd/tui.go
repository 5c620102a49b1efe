package cmd

import (
	"fmt"
	"time"

	"github.com/theirongolddev/larder/internal/logging"
	"github.com/theirongolddev/larder/internal/report"
	"github.com/theirongolddev/larder/internal/tui"
	"github.com/theirongolddev/larder/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var flagTUIReport string

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive TUI dashboard",
	RunE:  runTUI,
}

func init() {
	tuiCmd.Flags().StringVar(&flagTUIReport, "report", string(report.Weekly), "History report type: daily, weekly, monthly")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	defer e.close()

	rtype, err := report.ParseType(flagTUIReport)
	if err != nil {
		return err
	}

	// The alt screen owns the terminal, so the dashboard logs to a file.
	level := e.cfg.General.LogLevel
	if flagLogLevel != "" {
		level = flagLogLevel
	}
	log, err := logging.NewFile(level, e.dataDir)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()
	log.Info("starting dashboard", zap.String("data_dir", e.dataDir), zap.String("person", e.person))

	theme.SetActive(e.cfg.Appearance.Theme)

	// Force TrueColor profile so all background styling produces ANSI codes
	// Without this, lipgloss may default to Ascii profile (no colors)
	lipgloss.SetColorProfile(termenv.TrueColor)

	// Without --date the dashboard follows the clock across midnight.
	var date time.Time
	if flagDate != "" {
		date = e.date
	}

	app := tui.NewApp(tui.Options{
		DataDir:    e.dataDir,
		Person:     e.person,
		Date:       date,
		ReportType: rtype,
		Log:        log,
	})
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
