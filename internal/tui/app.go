// Package tui provides the interactive Bubble Tea dashboard for larder.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/larder/internal/config"
	"github.com/theirongolddev/larder/internal/model"
	"github.com/theirongolddev/larder/internal/pipeline"
	"github.com/theirongolddev/larder/internal/report"
	"github.com/theirongolddev/larder/internal/store"
	"github.com/theirongolddev/larder/internal/tui/components"
	"github.com/theirongolddev/larder/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// DataLoadedMsg is sent when the first snapshot load finishes.
type DataLoadedMsg struct {
	Snapshot *pipeline.Snapshot
	Err      error
	LoadTime time.Duration
}

// ProgressMsg reports snapshot loading progress.
type ProgressMsg struct {
	Current int
	Total   int
}

// RefreshDataMsg is sent when a background reload completes.
type RefreshDataMsg struct {
	Snapshot *pipeline.Snapshot
	Err      error
	LoadTime time.Duration
}

// Options configures the dashboard.
type Options struct {
	DataDir    string
	Person     string    // person id, or "" for the whole household
	Date       time.Time // zero follows the clock
	ReportType report.Type
	Log        *zap.Logger
}

// App is the root Bubble Tea model.
type App struct {
	// Data
	snap     *pipeline.Snapshot
	loaded   bool
	loadErr  error
	loadTime time.Duration

	// Auto-refresh state
	autoRefresh     bool
	refreshInterval time.Duration
	lastRefresh     time.Time
	refreshing      bool

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// What the snapshot covers
	dataDir    string
	person     string
	date       time.Time
	reportType report.Type
	weekStart  time.Weekday
	currency   string
	log        *zap.Logger

	// Per-tab state
	people   peopleState
	settings settingsState

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals setupValues
	needSetup bool

	// Loading: channel-based progress subscription
	spinner     spinner.Model
	progress    int
	progressMax int
	loadSub     chan tea.Msg
}

const (
	minTerminalWidth = 80
	compactWidth     = 120
	maxContentWidth  = 180
	minContentHeight = 5

	minRefreshInterval = 10 * time.Second
)

// loadConfigOrDefault loads config, returning defaults on error so the
// dashboard can always start.
func loadConfigOrDefault() config.Config {
	cfg, err := config.Load()
	if err != nil {
		return config.DefaultConfig()
	}
	return cfg
}

// NewApp creates a new dashboard model.
func NewApp(opts Options) App {
	cfg := loadConfigOrDefault()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent).Background(theme.Active.Surface)

	refreshInterval := time.Duration(cfg.TUI.RefreshIntervalSec) * time.Second
	if refreshInterval < minRefreshInterval {
		refreshInterval = 60 * time.Second
	}

	weekStart, err := report.ParseWeekday(cfg.General.WeekStart)
	if err != nil {
		weekStart = time.Sunday
	}

	rtype := opts.ReportType
	if rtype == "" {
		rtype = report.Weekly
	}

	person := opts.Person
	if person == model.AllPeople {
		person = ""
	}

	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}

	return App{
		dataDir:         opts.DataDir,
		person:          person,
		date:            opts.Date,
		reportType:      rtype,
		weekStart:       weekStart,
		currency:        cfg.Budget.Currency,
		log:             log,
		needSetup:       !config.Exists(),
		autoRefresh:     cfg.TUI.AutoRefresh,
		refreshInterval: refreshInterval,
		spinner:         sp,
		loadSub:         make(chan tea.Msg, 1),
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnableMouseCellMotion,
		loadDataCmd(a.dataDir, a.loadOptions(), a.loadSub),
		a.spinner.Tick,
		tickCmd(),
	)
}

// loadOptions describes the snapshot the current view state needs.
func (a App) loadOptions() pipeline.Options {
	return pipeline.Options{
		Date:       a.date,
		Person:     a.person,
		ReportType: a.reportType,
		WeekStart:  a.weekStart,
		Log:        a.log,
	}
}

// reload starts a background refresh unless one is already running.
func (a *App) reload() tea.Cmd {
	if a.refreshing {
		return nil
	}
	a.refreshing = true
	return refreshDataCmd(a.dataDir, a.loadOptions())
}

// viewDate is the date the dashboard is showing.
func (a App) viewDate() time.Time {
	if a.date.IsZero() {
		return time.Now()
	}
	return a.date
}

// shiftDate moves the viewed date by n periods of the active tab: days on
// Today, report periods on History, months on Budget.
func (a *App) shiftDate(n int) {
	d := a.viewDate()
	switch {
	case a.activeTab == components.TabBudget:
		d = time.Date(d.Year(), d.Month()+time.Month(n), 1, 0, 0, 0, 0, d.Location())
	case a.activeTab == components.TabHistory && a.reportType == report.Weekly:
		d = d.AddDate(0, 0, 7*n)
	case a.activeTab == components.TabHistory && a.reportType == report.Monthly:
		d = time.Date(d.Year(), d.Month()+time.Month(n), 1, 0, 0, 0, 0, d.Location())
	default:
		d = d.AddDate(0, 0, n)
	}
	// the future has no consumed meals yet; clamp to today
	if today := time.Now(); d.After(today) {
		d = time.Time{}
	}
	a.date = d
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		if !a.loaded || a.showHelp || (a.needSetup && a.setupForm != nil) {
			return a, nil
		}

		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if a.activeTab == components.TabPeople {
				a.people.up()
			}
			return a, nil

		case tea.MouseButtonWheelDown:
			if a.activeTab == components.TabPeople {
				a.people.down(a.householdSize())
			}
			return a, nil

		case tea.MouseButtonLeft:
			if msg.Y == 0 {
				if tab := a.tabAtX(msg.X); tab >= 0 && tab < len(components.Tabs) {
					a.activeTab = tab
				}
			}
			return a, nil
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		if !a.loaded {
			return a, nil
		}

		// First-run setup intercepts all keys
		if a.needSetup && a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		// Settings tab has its own keybindings while editing
		if a.activeTab == components.TabSettings && a.settings.editing {
			return a.updateSettingsInput(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}

		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		switch a.activeTab {
		case components.TabHistory:
			if t, ok := reportTypeKeys[key]; ok {
				if t != a.reportType {
					a.reportType = t
					return a, a.reload()
				}
				return a, nil
			}

		case components.TabPeople:
			switch key {
			case "j", "down":
				a.people.down(a.householdSize())
				return a, nil
			case "k", "up":
				a.people.up()
				return a, nil
			case "enter":
				if id := a.people.selectedID(a.snap); id != "" && id != a.person {
					a.person = id
					return a, a.reload()
				}
				return a, nil
			case "a":
				if a.person != "" {
					a.person = ""
					return a, a.reload()
				}
				return a, nil
			}

		case components.TabSettings:
			switch key {
			case "j", "down":
				if a.settings.cursor < settingsFieldCount-1 {
					a.settings.cursor++
				}
				return a, nil
			case "k", "up":
				if a.settings.cursor > 0 {
					a.settings.cursor--
				}
				return a, nil
			case "enter":
				return a.settingsStartEdit()
			}
		}

		switch key {
		case "q":
			return a, tea.Quit

		case "r":
			return a, a.reload()

		case "R":
			a.autoRefresh = !a.autoRefresh
			// Persist to config (best-effort)
			cfg := loadConfigOrDefault()
			cfg.TUI.AutoRefresh = a.autoRefresh
			if err := config.Save(cfg); err != nil {
				a.log.Warn("saving auto-refresh setting", zap.Error(err))
			}
			return a, nil

		case "[":
			a.shiftDate(-1)
			return a, a.reload()

		case "]":
			a.shiftDate(1)
			return a, a.reload()

		case "T":
			if !a.date.IsZero() {
				a.date = time.Time{}
				return a, a.reload()
			}
			return a, nil

		case "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
			return a, nil

		case "right":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			return a, nil
		}

		if len(msg.Runes) == 1 {
			if idx := components.TabIdxByKey(msg.Runes[0]); idx >= 0 {
				a.activeTab = idx
			}
		}
		return a, nil

	case DataLoadedMsg:
		a.snap = msg.Snapshot
		a.loadErr = msg.Err
		a.loaded = true
		a.loadTime = msg.LoadTime
		a.lastRefresh = time.Now()
		a.people.clamp(a.householdSize())

		// Activate first-run setup after data loads
		if a.needSetup {
			a.setupVals = defaultSetupValues(a.person)
			a.setupForm = newSetupForm(a.snap, &a.setupVals)
			if a.width > 0 {
				a.setupForm = a.setupForm.WithWidth(a.width).WithHeight(a.height)
			}
			return a, a.setupForm.Init()
		}
		return a, nil

	case ProgressMsg:
		a.progress = msg.Current
		a.progressMax = msg.Total
		return a, waitForLoadMsg(a.loadSub)

	case spinner.TickMsg:
		if !a.loaded {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil

	case tickMsg:
		cmds := []tea.Cmd{tickCmd()}
		if a.loaded && a.autoRefresh && !a.refreshing {
			if time.Since(a.lastRefresh) >= a.refreshInterval {
				cmds = append(cmds, a.reload())
			}
		}
		return a, tea.Batch(cmds...)

	case RefreshDataMsg:
		a.refreshing = false
		a.lastRefresh = time.Now()
		a.loadErr = msg.Err
		if msg.Snapshot != nil {
			a.snap = msg.Snapshot
			a.loadTime = msg.LoadTime
			a.people.clamp(a.householdSize())
		}
		return a, nil
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	return a, nil
}

var reportTypeKeys = map[string]report.Type{
	"d": report.Daily,
	"w": report.Weekly,
	"m": report.Monthly,
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		if err := a.saveSetupConfig(); err != nil {
			a.log.Warn("saving setup", zap.Error(err))
		}
		a.needSetup = false
		a.setupForm = nil
		return a, a.reload()
	}

	if a.setupForm.State == huh.StateAborted {
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

func (a App) householdSize() int {
	if a.snap == nil {
		return 0
	}
	return len(a.snap.People)
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if !a.loaded {
		return a.viewLoading()
	}

	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.snap == nil {
		return a.viewLoadError()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  larder needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewLoading() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(2, 4)

	logoStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	spinnerStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(logoStyle.Render("◈ larder"))
	b.WriteString(subtitleStyle.Render(" · Household Meals & Budget"))
	b.WriteString("\n\n")
	b.WriteString(spinnerStyle.Render(a.spinner.View()))

	if a.progressMax > 0 {
		barW := 40
		if barW > a.width-30 {
			barW = a.width - 30
		}
		if barW < 20 {
			barW = 20
		}
		b.WriteString(subtitleStyle.Render(" Totting up the household\n\n"))
		b.WriteString(components.ProgressBar(float64(a.progress)/float64(a.progressMax), barW))
	} else {
		b.WriteString(subtitleStyle.Render(" Opening the larder..."))
	}

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewLoadError() string {
	t := theme.Active
	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Red).
		Background(t.Surface).
		Padding(1, 3)
	errStyle := lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	body := errStyle.Render("Could not load data") + "\n\n" +
		dimStyle.Render(fmt.Sprint(a.loadErr)) + "\n\n" +
		dimStyle.Render("Press r to retry or q to quit")

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(body),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Cyan).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	sections := []struct {
		title    string
		bindings []struct{ key, desc string }
	}{
		{"Navigation", []struct{ key, desc string }{
			{"t h b p x", "Jump to tab"},
			{"← →", "Previous / Next tab"},
			{"[ ]", "Previous / Next day, period, or month"},
			{"T", "Back to today"},
			{"j k", "Move through lists"},
		}},
		{"History", []struct{ key, desc string }{
			{"d w m", "Daily / Weekly / Monthly report"},
		}},
		{"People", []struct{ key, desc string }{
			{"Enter", "Focus on person"},
			{"a", "Whole household"},
		}},
		{"Actions", []struct{ key, desc string }{
			{"Enter", "Edit setting"},
			{"Esc", "Cancel edit"},
			{"r", "Refresh data"},
			{"R", "Toggle auto-refresh"},
			{"?", "Toggle help"},
			{"q", "Quit"},
		}},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n")
	for _, sec := range sections {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render(sec.title))
		b.WriteString("\n")
		for _, bind := range sec.bindings {
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
				descStyle.Render(bind.desc))
		}
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	// 1. Header: tab bar + filter pill
	pillStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	accentStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	who := "household"
	if a.person != "" {
		who = a.personName(a.person)
	}
	filterStr := pillStyle.Render(" ") +
		accentStyle.Render(a.snap.Date) +
		pillStyle.Render(" │ ") + accentStyle.Render(who) +
		pillStyle.Render(" │ ") + accentStyle.Render(string(a.reportType))
	if a.date.IsZero() {
		filterStr += pillStyle.Render(" │ live")
	}
	filterStr += pillStyle.Render(" ")

	filterRowStyle := lipgloss.NewStyle().
		Background(t.Surface).
		Width(w)

	header := components.RenderTabBar(a.activeTab, w) + "\n" +
		filterRowStyle.Render(filterStr)

	// 2. Status bar
	statusBar := components.RenderStatusBar(w, components.StatusInfo{
		Date:        a.snap.Date,
		DataAge:     fmt.Sprintf("%.1fs", a.loadTime.Seconds()),
		SpentPct:    a.snap.Projection.SpentPercent,
		HasBudget:   a.snap.Budget.Monthly > 0,
		Refreshing:  a.refreshing,
		AutoRefresh: a.autoRefresh,
	})

	// 3. Content zone height
	contentH := h - lipgloss.Height(header) - lipgloss.Height(statusBar)
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	// 4. Tab content
	var content string
	switch a.activeTab {
	case components.TabToday:
		content = a.renderTodayTab(cw)
	case components.TabHistory:
		content = a.renderHistoryTab(cw)
	case components.TabBudget:
		content = a.renderBudgetTab(cw)
	case components.TabPeople:
		content = a.renderPeopleTab(cw)
	case components.TabSettings:
		content = a.renderSettingsTab(cw)
	}
	if a.loadErr != nil {
		content = a.renderWarning(cw) + "\n" + content
	}

	// 5. Truncate + pad to exactly contentH lines
	content = padHeight(truncateHeight(content, contentH), contentH)

	// 6. Fill each line to full width with background
	content = fillLinesWithBackground(content, cw, t.Background)

	// 7. Center when the terminal is wider than the content
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) renderWarning(cw int) string {
	t := theme.Active
	style := lipgloss.NewStyle().
		Foreground(t.Orange).
		Background(t.Surface).
		Width(cw)
	return style.Render(" ⚠ " + truncStr(a.loadErr.Error(), cw-4))
}

// personName resolves an id to a display name from the loaded snapshot.
func (a App) personName(id string) string {
	if a.snap != nil {
		for _, d := range a.snap.People {
			if d.Person.ID == id {
				return d.Person.DisplayName()
			}
		}
	}
	return id
}

// ─── Loading ────────────────────────────────────────────────────

type tickMsg struct{}

func tickCmd() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

// loadDataCmd builds the snapshot in a background goroutine. It streams
// ProgressMsg updates and a final DataLoadedMsg through sub.
func loadDataCmd(dataDir string, opts pipeline.Options, sub chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		go func() {
			start := time.Now()

			// Non-blocking send: a full channel drops this update and the
			// next one catches up.
			progressFn := func(current, total int) {
				select {
				case sub <- ProgressMsg{Current: current, Total: total}:
				default:
				}
			}

			snap, err := loadSnapshot(dataDir, opts, progressFn)
			sub <- DataLoadedMsg{Snapshot: snap, Err: err, LoadTime: time.Since(start)}
		}()

		// Block until the first message (either ProgressMsg or DataLoadedMsg)
		return <-sub
	}
}

// waitForLoadMsg blocks until the next message arrives from the loader goroutine.
func waitForLoadMsg(sub chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-sub
	}
}

// refreshDataCmd reloads the snapshot in the background (no progress UI).
func refreshDataCmd(dataDir string, opts pipeline.Options) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		snap, err := loadSnapshot(dataDir, opts, nil)
		return RefreshDataMsg{Snapshot: snap, Err: err, LoadTime: time.Since(start)}
	}
}

// loadSnapshot opens the store for the duration of one load. A snapshot
// with warnings is still returned; its warnings become the error.
func loadSnapshot(dataDir string, opts pipeline.Options, progressFn pipeline.ProgressFunc) (*pipeline.Snapshot, error) {
	st, err := store.OpenDir(dataDir)
	if err != nil {
		return nil, err
	}
	defer st.Close()

	snap, err := pipeline.Load(st, opts, progressFn)
	if err != nil {
		return nil, err
	}
	return snap, snap.Err()
}

// ─── Helpers ────────────────────────────────────────────────────

// chartDateLabels builds compact X-axis labels for ISO date labels.
// First label and month boundaries show the month abbreviation; everything
// else shows the day number.
func chartDateLabels(dates []string) []string {
	labels := make([]string, len(dates))
	prevMonth := time.Month(0)
	for i, s := range dates {
		d, err := time.Parse(report.DateLayout, s)
		if err != nil {
			labels[i] = s
			continue
		}
		if i == 0 || d.Month() != prevMonth {
			labels[i] = d.Format("Jan")
		} else {
			labels[i] = d.Format("2")
		}
		prevMonth = d.Month()
	}
	return labels
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

// ─── Mouse Support ──────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)

		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW

		// Separator is one column between tabs.
		if i < len(components.Tabs)-1 {
			pos++
		}
	}
	return -1
}
