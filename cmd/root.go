// Package cmd implements the larder CLI commands.
package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/theirongolddev/larder/internal/cli"
	"github.com/theirongolddev/larder/internal/config"
	"github.com/theirongolddev/larder/internal/logging"
	"github.com/theirongolddev/larder/internal/model"
	"github.com/theirongolddev/larder/internal/pipeline"
	"github.com/theirongolddev/larder/internal/report"
	"github.com/theirongolddev/larder/internal/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const dateLayout = report.DateLayout

var (
	flagDataDir  string
	flagPerson   string
	flagDate     string
	flagQuiet    bool
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:   "larder",
	Short: "Household meal and budget tracker",
	Long:  "Track what your household eats and spends: nutrition against energy needs, planned vs. consumed reports, and month-end budget projections.",
	RunE:  runToday,

	SilenceUsage: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Data directory (default from config)")
	rootCmd.PersistentFlags().StringVarP(&flagPerson, "person", "p", "", `Person id, or "all" for the household (default from config)`)
	rootCmd.PersistentFlags().StringVar(&flagDate, "date", "", "Date as YYYY-MM-DD, today, or yesterday")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
}

// env is the state every command shares: config, logger, and the clock
// reading taken once at startup.
type env struct {
	cfg       config.Config
	log       *zap.Logger
	now       time.Time
	date      time.Time
	person    string
	weekStart time.Weekday
	dataDir   string
}

// newEnv loads config and resolves the persistent flags. A broken config
// file is reported and defaults are used.
func newEnv() (*env, error) {
	cfg, cfgErr := config.Load()

	level := cfg.General.LogLevel
	if flagLogLevel != "" {
		level = flagLogLevel
	}
	log, err := logging.New(level)
	if err != nil {
		return nil, err
	}
	if cfgErr != nil {
		log.Warn("using default config", zap.Error(cfgErr))
	}

	now := time.Now()
	date, err := parseDate(flagDate, now)
	if err != nil {
		return nil, err
	}

	weekStart, err := report.ParseWeekday(cfg.General.WeekStart)
	if err != nil {
		log.Warn("invalid week_start, using sunday", zap.Error(err))
		weekStart = time.Sunday
	}

	dataDir := flagDataDir
	if dataDir == "" {
		dataDir = cfg.DataDir()
	}

	return &env{
		cfg:       cfg,
		log:       log,
		now:       now,
		date:      date,
		person:    resolvePerson(flagPerson, cfg.General.DefaultPerson),
		weekStart: weekStart,
		dataDir:   dataDir,
	}, nil
}

// clock returns a clock fixed at the startup reading so every section of
// one command agrees on "today".
func (e *env) clock() func() time.Time {
	now := e.now
	return func() time.Time { return now }
}

func (e *env) currency() string {
	return e.cfg.Budget.Currency
}

func (e *env) openStore() (*store.Store, error) {
	st, err := store.OpenDir(e.dataDir)
	if err != nil {
		return nil, fmt.Errorf("opening data in %s: %w", e.dataDir, err)
	}
	return st, nil
}

func (e *env) close() {
	_ = e.log.Sync()
}

// loadSnapshot is the shared data loading path of the overview commands.
func (e *env) loadSnapshot(st *store.Store, rtype report.Type) (*pipeline.Snapshot, error) {
	progressFn := func(current, total int) {
		if flagQuiet {
			return
		}
		fmt.Fprintf(os.Stderr, "\r  Loading [%d/%d]", current, total)
	}

	snap, err := pipeline.Load(st, pipeline.Options{
		Date:       e.date,
		Person:     e.person,
		ReportType: rtype,
		WeekStart:  e.weekStart,
		Now:        e.clock(),
		Log:        e.log,
	}, progressFn)
	if err != nil {
		return nil, err
	}

	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "\r  Loaded %s people, %s foods in %s    \n",
			cli.FormatNumber(int64(snap.Household)),
			cli.FormatNumber(int64(snap.Foods)),
			snap.LoadTime.Round(time.Millisecond),
		)
	}
	for _, w := range snap.Warnings {
		e.log.Warn("snapshot incomplete", zap.Error(w))
	}
	return snap, nil
}

// parseDate resolves a --date value against now.
func parseDate(s string, now time.Time) (time.Time, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "today":
		return now, nil
	case "yesterday":
		return now.AddDate(0, 0, -1), nil
	}
	t, err := time.ParseInLocation(dateLayout, strings.TrimSpace(s), now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	return t, nil
}

// resolvePerson picks the flag over the configured default. Both empty and
// "all" select the whole household.
func resolvePerson(flag, configured string) string {
	p := strings.TrimSpace(flag)
	if p == "" {
		p = strings.TrimSpace(configured)
	}
	if strings.EqualFold(p, model.AllPeople) {
		return ""
	}
	return p
}

// personLabel names the selection in titles.
func personLabel(people []model.Person, id string) string {
	if id == "" {
		return "Household"
	}
	if p, ok := model.FindPerson(people, id); ok {
		return p.DisplayName()
	}
	return id
}
