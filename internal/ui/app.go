// Package ui provides the terminal user interface for the fencing app.
// This file contains the main App model which coordinates all views and
// routes messages using the Bubble Tea architecture.
package ui

import (
	"fmt"
	"strings"
	"time"

	"fencing/internal/backup"
	"fencing/internal/config"
	"fencing/internal/notify"
	"fencing/internal/reminder"
	"fencing/internal/storage"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ViewID identifies each view in the application.
type ViewID int

const (
	ViewHome ViewID = iota
	ViewEntry
	ViewReports
	ViewSettings
	ViewGuide
	ViewAdore

	viewCount = 6
)

// AppConfig holds user configuration for the app behavior.
type AppConfig struct {
	Keys             *config.KeysConfig
	ConfirmDeletions bool
	ShowVerse        bool

	// NarrowLayoutThreshold is the terminal width below which the title bar
	// drops its stats segment.
	NarrowLayoutThreshold int
}

// App is the main application model that coordinates all views.
type App struct {
	storage      *storage.Storage
	data         *storage.AppData
	scheduler    *reminder.Scheduler
	backupMgr    *backup.Manager
	styles       *Styles
	config       *AppConfig
	homeView     *HomeView
	entryView    *EntryView
	reportsView  *ReportsView
	settingsView *SettingsView
	guideView    *GuideView
	adoreView    *AdoreView
	helpOverlay  *HelpOverlay
	confirmDel   *confirmDeleteState
	activeView   ViewID
	showHelp     bool
	width        int
	height       int
	status       string
	statusErr    bool
	statusUntil  time.Time
	quitting     bool

	// Key bindings
	keys     GlobalKeyMap
	helpKeys HelpKeyMap
}

type confirmDeleteState struct {
	title  string
	body   string
	action func() tea.Cmd
}

// NewApp creates a new application. Data loading is deferred to Init()
// to keep the constructor non-blocking. The scheduler and backup manager
// may be nil.
func NewApp(store *storage.Storage, notifier notify.Notifier, scheduler *reminder.Scheduler, backupMgr *backup.Manager, styles *Styles, cfg *AppConfig) *App {
	// Use default config if nil
	if cfg == nil {
		cfg = &AppConfig{
			Keys:                  &config.KeysConfig{},
			ConfirmDeletions:      true,
			ShowVerse:             true,
			NarrowLayoutThreshold: 80,
		}
	}
	if cfg.Keys == nil {
		cfg.Keys = &config.KeysConfig{}
	}

	app := &App{
		storage:      store,
		scheduler:    scheduler,
		backupMgr:    backupMgr,
		styles:       styles,
		config:       cfg,
		homeView:     NewHomeView(store, styles, cfg.ShowVerse),
		entryView:    NewEntryViewWithKeys(store, styles, cfg.Keys),
		reportsView:  NewReportsViewWithKeys(store, styles, cfg.Keys),
		settingsView: NewSettingsViewWithKeys(store, notifier, styles, cfg.Keys),
		guideView:    NewGuideViewWithKeys(styles, cfg.Keys),
		adoreView:    NewAdoreViewWithKeys(styles, cfg.Keys),
		helpOverlay:  NewHelpOverlay(styles),
		activeView:   ViewHome,
		keys:         NewGlobalKeyMap(cfg.Keys),
		helpKeys:     DefaultHelpKeyMap(),
	}

	app.setActiveView(ViewHome)
	return app
}

// tickMsg is sent periodically for time updates.
type tickMsg time.Time

// tickCmd returns a command that sends a tick every second.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init initializes the app and loads the data document asynchronously.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		loadDataCmd(a.storage),
	)
}

// Update handles all messages and routes them appropriately.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dataLoadedMsg:
		if msg.err != nil {
			a.SetStatus("Load: "+msg.err.Error(), true)
		}
		if msg.data != nil {
			a.setData(msg.data)
		}
		return a, nil

	case logSavedMsg:
		if msg.err != nil {
			a.SetStatus("Save entry: "+msg.err.Error(), true)
		} else {
			a.SetStatus("Saved entry for "+msg.date, false)
		}
		return a, nil

	case reflectionSavedMsg:
		if msg.err != nil {
			a.SetStatus("Save reflection: "+msg.err.Error(), true)
		} else {
			a.SetStatus("Saved reflection for "+msg.month, false)
		}
		return a, nil

	case settingsChangedMsg:
		if msg.err != nil {
			a.SetStatus("Settings: "+msg.err.Error(), true)
			return a, nil
		}
		a.SetStatus("Settings saved", false)
		a.reconfigureReminder(msg.settings)
		return a, nil

	case activityChangedMsg:
		if msg.err != nil {
			a.SetStatus("Activity: "+msg.err.Error(), true)
		} else {
			a.SetStatus("Activity "+msg.action+": "+msg.name, false)
		}
		// Activity changes affect every view.
		a.refreshViews()
		return a, nil

	case reportExportedMsg:
		if msg.err != nil {
			a.SetStatus("Export: "+msg.err.Error(), true)
		} else {
			a.SetStatus("Exported "+msg.path, false)
		}
		return a, nil

	case backupCreatedMsg:
		if msg.err != nil {
			a.SetStatus("Backup: "+msg.err.Error(), true)
		} else {
			a.SetStatus("Backup created: "+msg.name, false)
		}
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.updateLayout()
		return a, nil

	case tickMsg:
		if a.status != "" && !a.statusUntil.IsZero() && time.Now().After(a.statusUntil) {
			a.status = ""
			a.statusErr = false
			a.statusUntil = time.Time{}
		}
		return a, tickCmd()
	}

	// Forward everything else to the active view.
	return a, a.updateActiveView(msg)
}

// setData installs the loaded document into every view and starts the
// reminder scheduler from the stored settings.
func (a *App) setData(data *storage.AppData) {
	a.data = data
	a.refreshViews()
	a.reconfigureReminder(data.Settings)
}

// refreshViews pushes the shared document into every view.
func (a *App) refreshViews() {
	if a.data == nil {
		return
	}
	a.homeView.SetData(a.data)
	a.entryView.SetData(a.data)
	a.reportsView.SetData(a.data)
	a.settingsView.SetData(a.data)
}

// reconfigureReminder applies reminder settings to the scheduler.
func (a *App) reconfigureReminder(settings storage.Settings) {
	if a.scheduler == nil {
		return
	}
	cfg := reminder.Config{
		Enabled: settings.NotificationsEnabled,
		Time:    settings.NotificationTime,
	}
	if err := a.scheduler.Reconfigure(cfg); err != nil {
		a.SetStatus("Reminder: "+err.Error(), true)
	}
}

// handleKey routes key presses.
func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.confirmDel != nil {
		switch msg.String() {
		case "y", "Y", "enter":
			confirm := a.confirmDel
			a.confirmDel = nil
			if confirm.action != nil {
				return a, confirm.action()
			}
			return a, nil
		case "n", "N", "esc":
			a.confirmDel = nil
			a.SetStatus("Canceled", false)
			return a, nil
		default:
			return a, nil
		}
	}

	// Help overlay takes priority
	if a.showHelp {
		if key.Matches(msg, a.helpKeys.Close) {
			a.showHelp = false
		}
		return a, nil
	}

	inInputMode := a.reportsView.IsEditing() || a.settingsView.IsEditing()

	if !inInputMode {
		// Confirm activity deletions if enabled.
		if a.config.ConfirmDeletions && a.activeView == ViewSettings {
			if key.Matches(msg, a.settingsView.DeleteKey()) {
				activity := a.settingsView.CurrentActivity()
				if activity != nil {
					a.confirmDel = &confirmDeleteState{
						title:  "Delete activity?",
						body:   truncateText(activity.Name, 60) + "\nIts historical scores stay in your logs.",
						action: a.settingsView.DeleteCurrent,
					}
					return a, nil
				}
			}
		}

		switch {
		case key.Matches(msg, a.keys.Quit):
			a.quitting = true
			return a, tea.Quit

		case key.Matches(msg, a.keys.Help):
			a.showHelp = true
			return a, nil

		case key.Matches(msg, a.keys.NextView):
			a.setActiveView((a.activeView + 1) % viewCount)
			return a, nil
		}

		if msg.String() == "B" && a.backupMgr != nil {
			a.SetStatus("Creating backup...", false)
			return a, createBackupCmd(a.backupMgr)
		}

		// Digit keys in the entry view set scores, so view jumps are
		// available everywhere else.
		if a.activeView != ViewEntry {
			switch {
			case key.Matches(msg, a.keys.View1):
				a.setActiveView(ViewHome)
				return a, nil
			case key.Matches(msg, a.keys.View2):
				a.setActiveView(ViewEntry)
				return a, nil
			case key.Matches(msg, a.keys.View3):
				a.setActiveView(ViewReports)
				return a, nil
			case key.Matches(msg, a.keys.View4):
				a.setActiveView(ViewSettings)
				return a, nil
			case key.Matches(msg, a.keys.View5):
				a.setActiveView(ViewGuide)
				return a, nil
			case key.Matches(msg, a.keys.View6):
				a.setActiveView(ViewAdore)
				return a, nil
			}
		}
	}

	return a, a.updateActiveView(msg)
}

// updateActiveView forwards a message to the active view.
func (a *App) updateActiveView(msg tea.Msg) tea.Cmd {
	switch a.activeView {
	case ViewEntry:
		return a.entryView.Update(msg)
	case ViewReports:
		return a.reportsView.Update(msg)
	case ViewSettings:
		return a.settingsView.Update(msg)
	case ViewGuide:
		return a.guideView.Update(msg)
	case ViewAdore:
		return a.adoreView.Update(msg)
	}
	return nil
}

// setActiveView sets the active view and updates focus states.
func (a *App) setActiveView(view ViewID) {
	a.activeView = view

	a.homeView.SetFocused(view == ViewHome)
	a.entryView.SetFocused(view == ViewEntry)
	a.reportsView.SetFocused(view == ViewReports)
	a.settingsView.SetFocused(view == ViewSettings)
	a.guideView.SetFocused(view == ViewGuide)
	a.adoreView.SetFocused(view == ViewAdore)
}

// updateLayout recalculates view sizes based on terminal dimensions.
func (a *App) updateLayout() {
	// Leave room for title bar (1), tab bar (1), and help bar (1).
	contentHeight := a.height - 5
	if contentHeight < 10 {
		contentHeight = 10
	}

	contentWidth := a.width - 4
	if contentWidth < 20 {
		contentWidth = 20
	}

	a.helpOverlay.SetSize(a.width, a.height)
	a.homeView.SetSize(contentWidth, contentHeight)
	a.entryView.SetSize(contentWidth, contentHeight)
	a.reportsView.SetSize(contentWidth, contentHeight)
	a.settingsView.SetSize(contentWidth, contentHeight)
	a.guideView.SetSize(contentWidth, contentHeight)
	a.adoreView.SetSize(contentWidth, contentHeight)
}

// View renders the entire app.
func (a *App) View() string {
	if a.quitting {
		return a.renderGoodbye()
	}

	if a.confirmDel != nil {
		return a.renderConfirmDelete()
	}

	if a.showHelp {
		return a.helpOverlay.View()
	}

	var b strings.Builder

	b.WriteString(a.renderTitleBar())
	b.WriteString("\n")
	b.WriteString(a.renderViewTabs())
	b.WriteString("\n")

	switch a.activeView {
	case ViewHome:
		b.WriteString(a.homeView.View())
	case ViewEntry:
		b.WriteString(a.entryView.View())
	case ViewReports:
		b.WriteString(a.reportsView.View())
	case ViewSettings:
		b.WriteString(a.settingsView.View())
	case ViewGuide:
		b.WriteString(a.guideView.View())
	case ViewAdore:
		b.WriteString(a.adoreView.View())
	}
	b.WriteString("\n")

	b.WriteString(a.renderHelpBar())

	return b.String()
}

func (a *App) renderConfirmDelete() string {
	overlayWidth := 60
	if a.width > 0 {
		overlayWidth = min(60, max(20, a.width-4))
	}

	overlayStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(a.styles.ColorDanger).
		Padding(1, 2).
		Width(overlayWidth)

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(a.styles.ColorDanger).
		MarginBottom(1)

	bodyStyle := lipgloss.NewStyle().
		Foreground(a.styles.ColorText)

	hintStyle := lipgloss.NewStyle().
		Foreground(a.styles.ColorTextMuted)

	var b strings.Builder
	b.WriteString(titleStyle.Render(a.confirmDel.title))
	b.WriteString("\n\n")
	b.WriteString(bodyStyle.Render(a.confirmDel.body))
	b.WriteString("\n\n")
	b.WriteString(hintStyle.Render("[y/enter] delete    [n/esc] cancel"))

	content := overlayStyle.Render(b.String())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, content)
}

// renderViewTabs renders a tab bar showing available views.
func (a *App) renderViewTabs() string {
	tabs := []struct {
		id    ViewID
		label string
	}{
		{ViewHome, "Home"},
		{ViewEntry, "Entry"},
		{ViewReports, "Reports"},
		{ViewSettings, "Settings"},
		{ViewGuide, "Guide"},
		{ViewAdore, "Adore"},
	}

	activeTabStyle := lipgloss.NewStyle().
		Foreground(a.styles.ColorPrimary).
		Bold(true)
	inactiveTabStyle := lipgloss.NewStyle().
		Foreground(a.styles.ColorTextMuted)

	var parts []string
	for _, tab := range tabs {
		label := tab.label
		if tab.id == a.activeView {
			label = activeTabStyle.Render("[" + label + "]")
		} else {
			label = inactiveTabStyle.Render(" " + label + " ")
		}
		parts = append(parts, label)
	}

	tabBar := strings.Join(parts, "  ")
	padding := (a.width - lipgloss.Width(tabBar)) / 2
	if padding > 0 {
		tabBar = strings.Repeat(" ", padding) + tabBar
	}

	return tabBar
}

// renderGoodbye shows an exit message with the day's summary.
func (a *App) renderGoodbye() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  Keep guarding your mind.\n")
	b.WriteString("\n")

	if a.data != nil {
		score := a.homeView.TodayScore()
		days := a.homeView.DaysLogged()
		b.WriteString(fmt.Sprintf("  Today's fencing score: %.1f\n", score))
		b.WriteString(fmt.Sprintf("  Days logged: %d\n", days))
		b.WriteString("\n")
	}

	return b.String()
}

// renderTitleBar creates the top title bar with today's score and the date.
func (a *App) renderTitleBar() string {
	title := a.styles.TitleStyle.Render(" fencing ")

	narrow := a.config.NarrowLayoutThreshold > 0 && a.width > 0 &&
		a.width < a.config.NarrowLayoutThreshold

	var stats string
	if a.data != nil && !narrow {
		stats = a.styles.StatLabelStyle.Render(
			fmt.Sprintf("Today: %.1f/10  Days: %d", a.homeView.TodayScore(), a.homeView.DaysLogged()))
	}

	now := time.Now()
	date := a.styles.DateStyle.Render(now.Format("Mon Jan 2 · 15:04"))

	titleWidth := lipgloss.Width(title)
	statsWidth := lipgloss.Width(stats)
	dateWidth := lipgloss.Width(date)

	spacerWidth := a.width - titleWidth - statsWidth - dateWidth - 4
	if spacerWidth < 2 {
		spacerWidth = 2
	}

	var parts []string
	parts = append(parts, title)
	if stats != "" {
		parts = append(parts, "  "+stats)
	}
	parts = append(parts, strings.Repeat(" ", spacerWidth))
	parts = append(parts, date)

	return strings.Join(parts, "")
}

// renderHelpBar creates the bottom help bar with context-sensitive hints.
func (a *App) renderHelpBar() string {
	if a.status != "" {
		if a.statusErr {
			return a.styles.ErrorStyle.Render(a.status)
		}
		return a.styles.StatusStyle.Render(a.status)
	}

	if a.reportsView.IsEditing() {
		return a.styles.RenderHelp(
			"ctrl+s", "save",
			"esc", "cancel",
		)
	}

	if a.settingsView.IsEditing() {
		return a.styles.RenderHelp(
			"enter", "save",
			"esc", "cancel",
		)
	}

	switch a.activeView {
	case ViewHome:
		return a.styles.RenderHelp(
			"2", "log today",
			"3", "reports",
			"tab", "view",
			"?", "help",
		)
	case ViewEntry:
		return a.styles.RenderHelp(
			"h/l", "score",
			"0-9", "set",
			"s", "save",
			"j/k", "nav",
			"tab", "view",
			"?", "help",
		)
	case ViewReports:
		return a.styles.RenderHelp(
			"h/l", "month",
			"e", "reflection",
			"E", "export",
			"tab", "view",
			"?", "help",
		)
	case ViewSettings:
		return a.styles.RenderHelp(
			"a", "add",
			"r", "rename",
			"x", "del",
			"K/J", "move",
			"space", "toggle",
			"?", "help",
		)
	case ViewGuide, ViewAdore:
		return a.styles.RenderHelp(
			"j/k", "scroll",
			"g/G", "top/bottom",
			"tab", "view",
			"?", "help",
		)
	}

	return ""
}

// SetStatus sets a status message to display to the user.
func (a *App) SetStatus(msg string, isErr bool) {
	a.status = msg
	a.statusErr = isErr
	ttl := 5 * time.Second
	if isErr {
		ttl = 8 * time.Second
	}
	a.statusUntil = time.Now().Add(ttl)
}

// truncateText shortens text to at most max runes. Slicing by runes keeps
// multi-byte characters intact.
func truncateText(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max-1]) + "…"
}

// Run starts the Bubble Tea program with the given dependencies.
func Run(store *storage.Storage, notifier notify.Notifier, scheduler *reminder.Scheduler, backupMgr *backup.Manager, styles *Styles, cfg *AppConfig) error {
	app := NewApp(store, notifier, scheduler, backupMgr, styles, cfg)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
