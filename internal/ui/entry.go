// Package ui provides the terminal user interface for the fencing app.
package ui

import (
	"fmt"
	"strings"
	"time"

	"fencing/internal/config"
	"fencing/internal/storage"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// EntryView handles scoring the day's activities.
type EntryView struct {
	storage *storage.Storage
	data    *storage.AppData
	styles  *Styles

	date    string         // YYYY-MM-DD being edited
	scores  map[string]int // Working copy, written on save
	cursor  int
	dirty   bool
	focused bool
	width   int
	height  int

	// Key bindings
	keys EntryKeyMap
}

// NewEntryView creates a new entry view.
func NewEntryView(store *storage.Storage, styles *Styles) *EntryView {
	return NewEntryViewWithKeys(store, styles, &config.KeysConfig{})
}

// NewEntryViewWithKeys creates a new entry view with custom key bindings.
func NewEntryViewWithKeys(store *storage.Storage, styles *Styles, keyCfg *config.KeysConfig) *EntryView {
	if keyCfg == nil {
		keyCfg = &config.KeysConfig{}
	}
	return &EntryView{
		storage: store,
		styles:  styles,
		date:    store.Today(),
		scores:  make(map[string]int),
		keys:    NewEntryKeyMap(keyCfg),
	}
}

// SetData points the view at the loaded document and resets the working copy.
func (v *EntryView) SetData(data *storage.AppData) {
	v.data = data
	v.loadDay(v.date)
}

// loadDay resets the working copy from the stored log for the given date.
func (v *EntryView) loadDay(date string) {
	v.date = date
	v.scores = make(map[string]int)
	v.dirty = false
	if v.data == nil {
		return
	}
	if log, ok := v.data.Logs[date]; ok {
		for id, score := range log.Scores {
			v.scores[id] = score
		}
	}
	if v.cursor >= len(v.data.Activities) {
		v.cursor = max(0, len(v.data.Activities)-1)
	}
}

// SetSize sets the view dimensions.
func (v *EntryView) SetSize(width, height int) {
	v.width = width
	v.height = height
}

// SetFocused sets whether this view is focused.
func (v *EntryView) SetFocused(focused bool) {
	v.focused = focused
}

// IsDirty reports whether the working copy has unsaved edits.
func (v *EntryView) IsDirty() bool {
	return v.dirty
}

// Date returns the date currently being edited.
func (v *EntryView) Date() string {
	return v.date
}

// HasEntry reports whether the edited date has a stored log.
func (v *EntryView) HasEntry() bool {
	if v.data == nil {
		return false
	}
	_, ok := v.data.Logs[v.date]
	return ok
}

// Update handles messages for the entry view.
func (v *EntryView) Update(msg tea.Msg) tea.Cmd {
	if v.data == nil || !v.focused {
		return nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	activities := v.data.Activities

	switch {
	case key.Matches(keyMsg, v.keys.Down):
		if len(activities) > 0 {
			v.cursor = min(v.cursor+1, len(activities)-1)
		}

	case key.Matches(keyMsg, v.keys.Up):
		if len(activities) > 0 {
			v.cursor = max(v.cursor-1, 0)
		}

	case key.Matches(keyMsg, v.keys.Top):
		v.cursor = 0

	case key.Matches(keyMsg, v.keys.Bottom):
		v.cursor = max(0, len(activities)-1)

	case key.Matches(keyMsg, v.keys.Increase):
		v.adjustScore(1)

	case key.Matches(keyMsg, v.keys.Decrease):
		v.adjustScore(-1)

	case key.Matches(keyMsg, v.keys.PrevDay):
		v.loadDay(shiftDate(v.date, -1))

	case key.Matches(keyMsg, v.keys.NextDay):
		// Never move past today.
		next := shiftDate(v.date, 1)
		if next <= v.storage.Today() {
			v.loadDay(next)
		}

	case key.Matches(keyMsg, v.keys.Save):
		return v.save()

	default:
		// Digit keys set the score directly. "0" through "9"; press twice
		// for 10 via l/right.
		s := keyMsg.String()
		if len(s) == 1 && s[0] >= '0' && s[0] <= '9' {
			v.setScore(int(s[0] - '0'))
		}
	}

	return nil
}

// adjustScore changes the selected activity's score by delta, clamped 0-10.
func (v *EntryView) adjustScore(delta int) {
	if len(v.data.Activities) == 0 || v.cursor >= len(v.data.Activities) {
		return
	}
	id := v.data.Activities[v.cursor].ID
	score := v.scores[id] + delta
	if score < storage.MinScore {
		score = storage.MinScore
	}
	if score > storage.MaxScore {
		score = storage.MaxScore
	}
	if v.scores[id] != score {
		v.scores[id] = score
		v.dirty = true
	}
}

// setScore sets the selected activity's score to an absolute value.
func (v *EntryView) setScore(score int) {
	if len(v.data.Activities) == 0 || v.cursor >= len(v.data.Activities) {
		return
	}
	id := v.data.Activities[v.cursor].ID
	if v.scores[id] != score {
		v.scores[id] = score
		v.dirty = true
	}
}

// save writes the working copy as the day's log.
func (v *EntryView) save() tea.Cmd {
	scores := make(map[string]int, len(v.scores))
	for id, score := range v.scores {
		scores[id] = score
	}
	err := v.storage.SaveDailyLog(v.data, v.date, scores)
	if err == nil {
		v.dirty = false
	}
	date := v.date
	return func() tea.Msg {
		return logSavedMsg{date: date, err: err}
	}
}

// shiftDate moves a YYYY-MM-DD date by days. Invalid input is returned as-is.
func shiftDate(date string, days int) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.AddDate(0, 0, days).Format("2006-01-02")
}

// View renders the entry view.
func (v *EntryView) View() string {
	var b strings.Builder

	dateLabel := v.date
	if v.date == v.storage.Today() {
		dateLabel += " (today)"
	}
	title := v.styles.PaneTitleStyle.Render("DAILY ENTRY")
	b.WriteString(title)
	b.WriteString("  ")
	b.WriteString(v.styles.DateStyle.Render(dateLabel))
	if v.dirty {
		b.WriteString("  " + v.styles.WarningStyle.Render("unsaved"))
	}
	b.WriteString("\n")

	sepWidth := v.width - 4
	if sepWidth < 10 {
		sepWidth = 30
	}
	b.WriteString(v.styles.StatLabelStyle.Render(strings.Repeat("─", sepWidth)))
	b.WriteString("\n\n")

	if v.data == nil || len(v.data.Activities) == 0 {
		b.WriteString(v.styles.StatLabelStyle.Render("  No activities configured."))
		b.WriteString("\n")
		b.WriteString(v.styles.StatLabelStyle.Render("  Add some in Settings."))
		b.WriteString("\n")
	} else {
		nameWidth := 0
		for _, activity := range v.data.Activities {
			if n := len([]rune(activity.Name)); n > nameWidth {
				nameWidth = n
			}
		}
		if nameWidth > 42 {
			nameWidth = 42
		}

		for i, activity := range v.data.Activities {
			prefix := "  "
			if i == v.cursor && v.focused {
				prefix = "▶ "
			}

			name := truncateText(activity.Name, nameWidth)

			score := v.scores[activity.ID]
			line := fmt.Sprintf("%s%-*s  %s %s", prefix, nameWidth, name,
				v.renderScoreBar(score),
				v.styles.ScoreStyle(score).Render(fmt.Sprintf("%2d", score)))

			if i == v.cursor && v.focused {
				line = v.styles.ActivitySelectedStyle.Render(line)
			}

			b.WriteString(line)
			b.WriteString("\n")
		}

		b.WriteString("\n")
		total := 0
		for _, activity := range v.data.Activities {
			total += v.scores[activity.ID]
		}
		avg := float64(total) / float64(len(v.data.Activities))
		b.WriteString("  " + v.styles.StatLabelStyle.Render("Fencing score: ") +
			v.styles.FencingScoreStyle.Render(fmt.Sprintf("%.1f", avg)))
		b.WriteString("\n")
	}

	content := b.String()
	style := v.styles.PaneStyle
	if v.focused {
		style = v.styles.PaneFocusedStyle
	}
	return style.Width(v.width).Height(v.height).Render(content)
}

// renderScoreBar draws a ten-cell bar for a 0-10 score.
func (v *EntryView) renderScoreBar(score int) string {
	var b strings.Builder
	for i := 0; i < storage.MaxScore; i++ {
		if i < score {
			b.WriteString(v.styles.ScoreBarFilled)
		} else {
			b.WriteString(v.styles.ScoreBarEmpty)
		}
	}
	return b.String()
}
