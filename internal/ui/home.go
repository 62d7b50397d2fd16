// Package ui provides the terminal user interface for the fencing app.
package ui

import (
	"fmt"
	"strings"

	"fencing/internal/storage"
)

// HomeView shows today's fencing score, the logged-day count, and a verse.
type HomeView struct {
	storage *storage.Storage
	data    *storage.AppData
	styles  *Styles

	verse     Verse
	showVerse bool
	focused   bool
	width     int
	height    int
}

// NewHomeView creates a new home view. The verse is chosen once per session.
func NewHomeView(store *storage.Storage, styles *Styles, showVerse bool) *HomeView {
	return &HomeView{
		storage:   store,
		styles:    styles,
		verse:     randomVerse(),
		showVerse: showVerse,
	}
}

// SetData points the view at the loaded document.
func (v *HomeView) SetData(data *storage.AppData) {
	v.data = data
}

// SetSize sets the view dimensions.
func (v *HomeView) SetSize(width, height int) {
	v.width = width
	v.height = height
}

// SetFocused sets whether this view is focused.
func (v *HomeView) SetFocused(focused bool) {
	v.focused = focused
}

// TodayScore returns the fencing score for today.
func (v *HomeView) TodayScore() float64 {
	if v.data == nil {
		return 0
	}
	return storage.FencingScore(v.data, v.storage.Today())
}

// DaysLogged returns the total number of logged days.
func (v *HomeView) DaysLogged() int {
	if v.data == nil {
		return 0
	}
	return storage.DaysLogged(v.data)
}

// View renders the home view.
func (v *HomeView) View() string {
	var b strings.Builder

	title := v.styles.PaneTitleStyle.Render("FENCING")
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
		today := v.storage.Today()
		_, hasEntry := v.data.Logs[today]

		b.WriteString("  " + v.styles.StatLabelStyle.Render("Today's fencing score"))
		b.WriteString("\n")
		b.WriteString("  " + v.styles.FencingScoreStyle.Render(fmt.Sprintf("%.1f", v.TodayScore())) +
			v.styles.StatLabelStyle.Render(" / 10"))
		b.WriteString("\n\n")

		if hasEntry {
			b.WriteString("  " + v.styles.StatusStyle.Render("Today's entry is logged."))
		} else {
			b.WriteString("  " + v.styles.WarningStyle.Render("No entry yet today. Press 2 to log."))
		}
		b.WriteString("\n\n")

		days := v.DaysLogged()
		label := "days"
		if days == 1 {
			label = "day"
		}
		b.WriteString("  " + v.styles.StatLabelStyle.Render("Guarded: ") +
			v.styles.StreakStyle.Render(fmt.Sprintf("%d %s", days, label)))
		b.WriteString("\n")

		if v.showVerse {
			b.WriteString("\n")
			b.WriteString(v.renderVerse())
			b.WriteString("\n")
		}
	}

	content := b.String()
	style := v.styles.PaneStyle
	if v.focused {
		style = v.styles.PaneFocusedStyle
	}
	return style.Width(v.width).Height(v.height).Render(content)
}

// renderVerse wraps the session verse to the pane width.
func (v *HomeView) renderVerse() string {
	wrapWidth := v.width - 8
	if wrapWidth < 20 {
		wrapWidth = 40
	}

	var b strings.Builder
	for _, line := range wrapText(v.verse.Text, wrapWidth) {
		b.WriteString("  " + v.styles.VerseStyle.Render(line))
		b.WriteString("\n")
	}
	b.WriteString("  " + v.styles.VerseRefStyle.Render(v.verse.Ref))
	return b.String()
}

// wrapText breaks text into lines no wider than width, on word boundaries.
func wrapText(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		if len(current)+1+len(word) > width {
			lines = append(lines, current)
			current = word
			continue
		}
		current += " " + word
	}
	lines = append(lines, current)
	return lines
}
