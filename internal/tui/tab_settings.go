package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/theirongolddev/larder/internal/cli"
	"github.com/theirongolddev/larder/internal/config"
	"github.com/theirongolddev/larder/internal/model"
	"github.com/theirongolddev/larder/internal/report"
	"github.com/theirongolddev/larder/internal/store"
	"github.com/theirongolddev/larder/internal/tui/components"
	"github.com/theirongolddev/larder/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	settingsFieldTheme = iota
	settingsFieldPerson
	settingsFieldWeekStart
	settingsFieldCurrency
	settingsFieldBudget
	settingsFieldAutoRefresh
	settingsFieldRefreshInterval
	settingsFieldCount // sentinel
)

// settingsState tracks the settings tab state.
type settingsState struct {
	cursor  int
	editing bool
	input   textinput.Model
	saved   bool  // flash "saved" message briefly
	saveErr error // non-nil if last save failed
}

func newSettingsInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 64
	ti.Width = 40
	return ti
}

func (a App) settingsStartEdit() (tea.Model, tea.Cmd) {
	cfg := loadConfigOrDefault()
	a.settings.editing = true
	a.settings.saved = false

	ti := newSettingsInput()

	switch a.settings.cursor {
	case settingsFieldTheme:
		ti.Placeholder = strings.Join(theme.Names(), ", ")
		ti.SetValue(cfg.Appearance.Theme)
	case settingsFieldPerson:
		ti.Placeholder = "person id, empty for the whole household"
		ti.SetValue(cfg.General.DefaultPerson)
	case settingsFieldWeekStart:
		ti.Placeholder = "sunday or monday"
		ti.SetValue(cfg.General.WeekStart)
	case settingsFieldCurrency:
		ti.Placeholder = "USD"
		ti.SetValue(cfg.Budget.Currency)
	case settingsFieldBudget:
		ti.Placeholder = "500 (monthly, 0 to clear)"
		if a.snap != nil && a.snap.Budget.Monthly > 0 {
			ti.SetValue(strconv.FormatFloat(a.snap.Budget.Monthly, 'f', -1, 64))
		}
	case settingsFieldAutoRefresh:
		ti.Placeholder = "true or false"
		ti.SetValue(strconv.FormatBool(a.autoRefresh))
	case settingsFieldRefreshInterval:
		ti.Placeholder = "60 (seconds, minimum 10)"
		ti.SetValue(strconv.Itoa(int(a.refreshInterval.Seconds())))
	}

	ti.Focus()
	a.settings.input = ti
	return a, ti.Cursor.BlinkCmd()
}

func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		cmd := a.settingsSave()
		a.settings.editing = false
		a.settings.saved = a.settings.saveErr == nil
		return a, cmd
	case "esc":
		a.settings.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

// settingsSave applies the edited field. It returns a reload command when
// the change affects what the snapshot contains.
func (a *App) settingsSave() tea.Cmd {
	cfg := loadConfigOrDefault()
	val := strings.TrimSpace(a.settings.input.Value())
	a.settings.saveErr = nil

	var reload bool
	switch a.settings.cursor {
	case settingsFieldTheme:
		if !theme.Exists(val) {
			a.settings.saveErr = fmt.Errorf("unknown theme %q", val)
			return nil
		}
		cfg.Appearance.Theme = val
		theme.SetActive(val)
	case settingsFieldPerson:
		cfg.General.DefaultPerson = val
		a.person = val
		reload = true
	case settingsFieldWeekStart:
		wd, err := report.ParseWeekday(val)
		if err != nil {
			a.settings.saveErr = err
			return nil
		}
		cfg.General.WeekStart = strings.ToLower(wd.String())
		a.weekStart = wd
		reload = true
	case settingsFieldCurrency:
		if err := validateCurrency(val); err != nil || val == "" {
			a.settings.saveErr = fmt.Errorf("unknown currency %q", val)
			return nil
		}
		cfg.Budget.Currency = strings.ToUpper(val)
		a.currency = cfg.Budget.Currency
	case settingsFieldBudget:
		amount, err := strconv.ParseFloat(val, 64)
		if val == "" {
			amount, err = 0, nil
		}
		if err != nil || amount < 0 {
			a.settings.saveErr = fmt.Errorf("invalid budget %q", val)
			return nil
		}
		a.settings.saveErr = a.saveBudget(amount)
		return a.reload()
	case settingsFieldAutoRefresh:
		on, err := strconv.ParseBool(val)
		if err != nil {
			on = val == "yes" || val == "on"
		}
		cfg.TUI.AutoRefresh = on
		a.autoRefresh = on
	case settingsFieldRefreshInterval:
		interval, err := strconv.Atoi(val)
		if err != nil || interval < int(minRefreshInterval.Seconds()) {
			a.settings.saveErr = fmt.Errorf("refresh interval must be at least %d seconds", int(minRefreshInterval.Seconds()))
			return nil
		}
		cfg.TUI.RefreshIntervalSec = interval
		a.refreshInterval = time.Duration(interval) * time.Second
	}

	a.settings.saveErr = config.Save(cfg)
	if reload {
		return a.reload()
	}
	return nil
}

// saveBudget writes the monthly budget to the store.
func (a *App) saveBudget(amount float64) error {
	st, err := store.OpenDir(a.dataDir)
	if err != nil {
		return err
	}
	defer st.Close()
	return st.SaveBudget(model.Budget{Monthly: amount})
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active
	cfg := loadConfigOrDefault()

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceBright).Bold(true)
	accentStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface)
	greenStyle := lipgloss.NewStyle().Foreground(t.GreenBright).Background(t.Surface)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)

	type field struct {
		label string
		value string
	}

	person := "(whole household)"
	if cfg.General.DefaultPerson != "" {
		person = cfg.General.DefaultPerson
	}
	budget := "(not set)"
	if a.snap != nil && a.snap.Budget.Monthly > 0 {
		budget = cli.FormatMoney(a.snap.Budget.Monthly, a.currency)
	}

	fields := []field{
		{"Theme", cfg.Appearance.Theme},
		{"Default Person", person},
		{"Week Starts", cli.Title(cfg.General.WeekStart)},
		{"Currency", cfg.Budget.Currency},
		{"Monthly Budget", budget},
		{"Auto Refresh", strconv.FormatBool(a.autoRefresh)},
		{"Refresh Interval", fmt.Sprintf("%ds", int(a.refreshInterval.Seconds()))},
	}

	innerW := components.CardInnerWidth(cw)

	var formBody strings.Builder
	for i, f := range fields {
		if a.settings.editing && i == a.settings.cursor {
			formBody.WriteString(markerStyle.Render("▸ "))
			formBody.WriteString(accentStyle.Render(fmt.Sprintf("%-18s ", f.label)))
			formBody.WriteString(a.settings.input.View())
			formBody.WriteString("\n")
			continue
		}

		if i == a.settings.cursor {
			marker := markerStyle.Render("▸ ")
			label := selectedLabelStyle.Render(fmt.Sprintf("%-18s ", f.label+":"))
			value := selectedStyle.Render(f.value)
			formBody.WriteString(marker + label + value)
			padLen := innerW - lipgloss.Width(marker) - lipgloss.Width(label) - lipgloss.Width(value)
			if padLen > 0 {
				formBody.WriteString(lipgloss.NewStyle().Background(t.SurfaceBright).Render(strings.Repeat(" ", padLen)))
			}
		} else {
			formBody.WriteString(lipgloss.NewStyle().Background(t.Surface).Render("  "))
			formBody.WriteString(labelStyle.Render(fmt.Sprintf("%-18s ", f.label+":")))
			formBody.WriteString(valueStyle.Render(f.value))
		}
		formBody.WriteString("\n")
	}

	if a.settings.saveErr != nil {
		warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)
		formBody.WriteString("\n")
		formBody.WriteString(warnStyle.Render(fmt.Sprintf("Save failed: %s", a.settings.saveErr)))
	} else if a.settings.saved {
		formBody.WriteString("\n")
		formBody.WriteString(greenStyle.Render("Saved!"))
	}

	formBody.WriteString("\n")
	formBody.WriteString(labelStyle.Render("[j/k] navigate  [Enter] edit  [Esc] cancel"))

	var infoBody strings.Builder
	infoBody.WriteString(labelStyle.Render("Data directory:  ") + valueStyle.Render(a.dataDir) + "\n")
	if a.snap != nil {
		infoBody.WriteString(labelStyle.Render("People:          ") + valueStyle.Render(cli.FormatNumber(int64(a.snap.Household))) + "\n")
		infoBody.WriteString(labelStyle.Render("Foods:           ") + valueStyle.Render(cli.FormatNumber(int64(a.snap.Foods))) + "\n")
	}
	infoBody.WriteString(labelStyle.Render("Load time:       ") + valueStyle.Render(fmt.Sprintf("%.1fs", a.loadTime.Seconds())) + "\n")
	infoBody.WriteString(labelStyle.Render("Config file:     ") + valueStyle.Render(config.ConfigPath()))

	var b strings.Builder
	b.WriteString(components.ContentCard("Settings", formBody.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("General", infoBody.String(), cw))

	return b.String()
}
