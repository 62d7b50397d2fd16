// Package ui provides the terminal user interface for the fencing app.
package ui

import (
	"fmt"
	"strings"

	"fencing/internal/config"
	"fencing/internal/notify"
	"fencing/internal/storage"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// settingsInputMode tracks which field the text input is editing.
type settingsInputMode int

const (
	settingsInputNone settingsInputMode = iota
	settingsInputAdd
	settingsInputRename
	settingsInputTime
)

// Fixed rows below the activity list.
const (
	settingsRowNotifications = 0
	settingsRowTime          = 1
	settingsRowDarkMode      = 2
	settingsFixedRows        = 3
)

// SettingsView manages activities, reminders, and appearance.
type SettingsView struct {
	storage  *storage.Storage
	data     *storage.AppData
	notifier notify.Notifier
	styles   *Styles

	cursor    int // Over activities, then the fixed rows
	inputMode settingsInputMode
	input     textinput.Model
	focused   bool
	width     int
	height    int

	// Key bindings
	keys      SettingsKeyMap
	inputKeys InputKeyMap
}

// NewSettingsView creates a new settings view.
func NewSettingsView(store *storage.Storage, notifier notify.Notifier, styles *Styles) *SettingsView {
	return NewSettingsViewWithKeys(store, notifier, styles, &config.KeysConfig{})
}

// NewSettingsViewWithKeys creates a new settings view with custom key bindings.
func NewSettingsViewWithKeys(store *storage.Storage, notifier notify.Notifier, styles *Styles, keyCfg *config.KeysConfig) *SettingsView {
	if keyCfg == nil {
		keyCfg = &config.KeysConfig{}
	}
	ti := textinput.New()
	ti.Placeholder = "Activity name"
	ti.CharLimit = 80
	ti.Width = 40

	return &SettingsView{
		storage:   store,
		notifier:  notifier,
		styles:    styles,
		input:     ti,
		keys:      NewSettingsKeyMap(keyCfg),
		inputKeys: NewInputKeyMap(keyCfg),
	}
}

// SetData points the view at the loaded document.
func (v *SettingsView) SetData(data *storage.AppData) {
	v.data = data
	v.clampCursor()
}

// SetSize sets the view dimensions.
func (v *SettingsView) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.input.Width = max(10, width-10)
}

// SetFocused sets whether this view is focused.
func (v *SettingsView) SetFocused(focused bool) {
	v.focused = focused
}

// IsEditing reports whether a text input is open.
func (v *SettingsView) IsEditing() bool {
	return v.inputMode != settingsInputNone
}

// rowCount returns the number of selectable rows.
func (v *SettingsView) rowCount() int {
	if v.data == nil {
		return 0
	}
	return len(v.data.Activities) + settingsFixedRows
}

// clampCursor keeps the cursor within the selectable rows.
func (v *SettingsView) clampCursor() {
	if count := v.rowCount(); v.cursor >= count {
		v.cursor = max(0, count-1)
	}
}

// inActivitySection reports whether the cursor is on an activity row.
func (v *SettingsView) inActivitySection() bool {
	return v.data != nil && v.cursor < len(v.data.Activities)
}

// fixedRow returns which fixed row the cursor is on, or -1.
func (v *SettingsView) fixedRow() int {
	if v.data == nil || v.inActivitySection() {
		return -1
	}
	return v.cursor - len(v.data.Activities)
}

// CurrentActivity returns the activity under the cursor, or nil.
func (v *SettingsView) CurrentActivity() *storage.Activity {
	if !v.inActivitySection() {
		return nil
	}
	return &v.data.Activities[v.cursor]
}

// DeleteKey exposes the delete binding so the app can intercept it for
// confirmation dialogs.
func (v *SettingsView) DeleteKey() key.Binding {
	return v.keys.Delete
}

// DeleteCurrent removes the activity under the cursor. Historical scores for
// the removed activity stay in the logs.
func (v *SettingsView) DeleteCurrent() tea.Cmd {
	activity := v.CurrentActivity()
	if activity == nil {
		return nil
	}
	name := activity.Name
	err := v.storage.DeleteActivity(v.data, activity.ID)
	v.clampCursor()
	return func() tea.Msg {
		return activityChangedMsg{action: "deleted", name: name, err: err}
	}
}

// Update handles messages for the settings view.
func (v *SettingsView) Update(msg tea.Msg) tea.Cmd {
	if v.data == nil || !v.focused {
		return nil
	}

	if v.inputMode != settingsInputNone {
		return v.updateInput(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch {
	case key.Matches(keyMsg, v.keys.Down):
		if count := v.rowCount(); count > 0 {
			v.cursor = min(v.cursor+1, count-1)
		}

	case key.Matches(keyMsg, v.keys.Up):
		v.cursor = max(v.cursor-1, 0)

	case key.Matches(keyMsg, v.keys.Top):
		v.cursor = 0

	case key.Matches(keyMsg, v.keys.Bottom):
		v.cursor = max(0, v.rowCount()-1)

	case key.Matches(keyMsg, v.keys.Add):
		v.inputMode = settingsInputAdd
		v.input.Placeholder = "Activity name"
		v.input.SetValue("")
		v.input.Focus()
		return textinput.Blink

	case key.Matches(keyMsg, v.keys.Rename):
		if activity := v.CurrentActivity(); activity != nil {
			v.inputMode = settingsInputRename
			v.input.Placeholder = "New name"
			v.input.SetValue(activity.Name)
			v.input.Focus()
			return textinput.Blink
		}

	case key.Matches(keyMsg, v.keys.Delete):
		// When confirmations are enabled the app intercepts this key
		// before it reaches the view.
		return v.DeleteCurrent()

	case key.Matches(keyMsg, v.keys.MoveUp):
		return v.moveCurrent(-1)

	case key.Matches(keyMsg, v.keys.MoveDn):
		return v.moveCurrent(1)

	case key.Matches(keyMsg, v.keys.Toggle), key.Matches(keyMsg, v.keys.Edit):
		return v.activateRow()
	}

	return nil
}

// updateInput handles key events while a text input is open.
func (v *SettingsView) updateInput(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, v.inputKeys.Confirm):
			return v.commitInput()

		case key.Matches(keyMsg, v.inputKeys.Cancel):
			v.inputMode = settingsInputNone
			v.input.Blur()
			return nil
		}
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return cmd
}

// commitInput applies the open text input.
func (v *SettingsView) commitInput() tea.Cmd {
	value := strings.TrimSpace(v.input.Value())
	mode := v.inputMode
	v.inputMode = settingsInputNone
	v.input.Blur()

	switch mode {
	case settingsInputAdd:
		if value == "" {
			return nil
		}
		activity, err := v.storage.AddActivity(v.data, value)
		name := value
		if activity != nil {
			name = activity.Name
		}
		return func() tea.Msg {
			return activityChangedMsg{action: "added", name: name, err: err}
		}

	case settingsInputRename:
		activity := v.CurrentActivity()
		if activity == nil || value == "" {
			return nil
		}
		err := v.storage.RenameActivity(v.data, activity.ID, value)
		return func() tea.Msg {
			return activityChangedMsg{action: "renamed", name: value, err: err}
		}

	case settingsInputTime:
		settings := v.data.Settings
		settings.NotificationTime = value
		err := v.storage.UpdateSettings(v.data, settings)
		applied := v.data.Settings
		return func() tea.Msg {
			return settingsChangedMsg{settings: applied, err: err}
		}
	}

	return nil
}

// moveCurrent reorders the activity under the cursor.
func (v *SettingsView) moveCurrent(delta int) tea.Cmd {
	activity := v.CurrentActivity()
	if activity == nil {
		return nil
	}
	name := activity.Name
	err := v.storage.MoveActivity(v.data, activity.ID, delta)
	if err == nil {
		// Follow the moved activity.
		target := v.cursor + delta
		if target >= 0 && target < len(v.data.Activities) {
			v.cursor = target
		}
	}
	return func() tea.Msg {
		return activityChangedMsg{action: "moved", name: name, err: err}
	}
}

// activateRow toggles or edits the fixed row under the cursor.
func (v *SettingsView) activateRow() tea.Cmd {
	switch v.fixedRow() {
	case settingsRowNotifications:
		settings := v.data.Settings
		// Enabling requires a working notifier on this host.
		if !settings.NotificationsEnabled && v.notifier != nil && !v.notifier.IsSupported() {
			return func() tea.Msg {
				return settingsChangedMsg{err: fmt.Errorf("notifications are not supported on this platform")}
			}
		}
		settings.NotificationsEnabled = !settings.NotificationsEnabled
		err := v.storage.UpdateSettings(v.data, settings)
		applied := v.data.Settings
		return func() tea.Msg {
			return settingsChangedMsg{settings: applied, err: err}
		}

	case settingsRowTime:
		v.inputMode = settingsInputTime
		v.input.Placeholder = "HH:MM (24h)"
		v.input.SetValue(v.data.Settings.NotificationTime)
		v.input.Focus()
		return textinput.Blink

	case settingsRowDarkMode:
		settings := v.data.Settings
		settings.DarkMode = !settings.DarkMode
		err := v.storage.UpdateSettings(v.data, settings)
		applied := v.data.Settings
		return func() tea.Msg {
			return settingsChangedMsg{settings: applied, err: err}
		}
	}
	return nil
}

// View renders the settings view.
func (v *SettingsView) View() string {
	var b strings.Builder

	title := v.styles.PaneTitleStyle.Render("SETTINGS")
	b.WriteString(title)
	b.WriteString("\n")

	sepWidth := v.width - 4
	if sepWidth < 10 {
		sepWidth = 30
	}
	b.WriteString(v.styles.StatLabelStyle.Render(strings.Repeat("─", sepWidth)))
	b.WriteString("\n\n")

	if v.data == nil {
		b.WriteString(v.styles.StatLabelStyle.Render("  Loading..."))
		b.WriteString("\n")
	} else {
		b.WriteString("  " + v.styles.StatLabelStyle.Render("Activities"))
		b.WriteString("\n")
		if len(v.data.Activities) == 0 {
			b.WriteString("  " + v.styles.StatLabelStyle.Render("None. Press 'a' to add one."))
			b.WriteString("\n")
		}
		for i, activity := range v.data.Activities {
			prefix := "  "
			if i == v.cursor && v.focused && v.inputMode == settingsInputNone {
				prefix = "▶ "
			}
			line := prefix + activity.Name
			if i == v.cursor && v.focused && v.inputMode == settingsInputNone {
				line = v.styles.ActivitySelectedStyle.Render(line)
			} else {
				line = v.styles.ActivityStyle.Render(line)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}

		b.WriteString("\n")
		b.WriteString("  " + v.styles.StatLabelStyle.Render("Reminders"))
		b.WriteString("\n")
		b.WriteString(v.renderFixedRow(settingsRowNotifications, "Daily reminder", v.renderToggle(v.data.Settings.NotificationsEnabled)))
		b.WriteString(v.renderFixedRow(settingsRowTime, "Reminder time", v.styles.StatValueStyle.Render(v.data.Settings.NotificationTime)))
		if v.notifier != nil && !v.notifier.IsSupported() {
			b.WriteString("  " + v.styles.WarningStyle.Render("Notifications are not supported on this platform."))
			b.WriteString("\n")
		}

		b.WriteString("\n")
		b.WriteString("  " + v.styles.StatLabelStyle.Render("Appearance"))
		b.WriteString("\n")
		b.WriteString(v.renderFixedRow(settingsRowDarkMode, "Dark mode", v.renderToggle(v.data.Settings.DarkMode)))
	}

	if v.inputMode != settingsInputNone {
		b.WriteString("\n")
		var prompt string
		switch v.inputMode {
		case settingsInputAdd:
			prompt = "Add: "
		case settingsInputRename:
			prompt = "Rename: "
		case settingsInputTime:
			prompt = "Time: "
		}
		b.WriteString("  " + v.styles.InputPromptStyle.Render(prompt) + v.input.View())
		b.WriteString("\n")
	}

	content := b.String()
	style := v.styles.PaneStyle
	if v.focused {
		style = v.styles.PaneFocusedStyle
	}
	return style.Width(v.width).Height(v.height).Render(content)
}

// renderFixedRow renders one of the non-activity rows.
func (v *SettingsView) renderFixedRow(row int, label, value string) string {
	prefix := "  "
	selected := v.focused && v.inputMode == settingsInputNone && v.fixedRow() == row
	if selected {
		prefix = "▶ "
	}
	line := fmt.Sprintf("%s%-16s %s", prefix, label, value)
	if selected {
		line = v.styles.ActivitySelectedStyle.Render(line)
	}
	return line + "\n"
}

// renderToggle renders an on/off indicator.
func (v *SettingsView) renderToggle(on bool) string {
	if on {
		return v.styles.ToggleOnStyle.Render("on")
	}
	return v.styles.ToggleOffStyle.Render("off")
}
