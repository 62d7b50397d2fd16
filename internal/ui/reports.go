// Package ui provides the terminal user interface for the fencing app.
package ui

import (
	"fmt"
	"strings"
	"time"

	"fencing/internal/config"
	"fencing/internal/reports"
	"fencing/internal/storage"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

// ReportsView shows monthly averages and the month's reflection.
type ReportsView struct {
	storage *storage.Storage
	data    *storage.AppData
	styles  *Styles

	month   string // YYYY-MM being viewed
	report  *reports.MonthlyReport
	editing bool
	input   textarea.Model
	focused bool
	width   int
	height  int

	// Key bindings
	keys      ReportsKeyMap
	inputKeys InputKeyMap
	exportKey key.Binding
}

// NewReportsView creates a new reports view showing the current month.
func NewReportsView(store *storage.Storage, styles *Styles) *ReportsView {
	return NewReportsViewWithKeys(store, styles, &config.KeysConfig{})
}

// NewReportsViewWithKeys creates a new reports view with custom key bindings.
func NewReportsViewWithKeys(store *storage.Storage, styles *Styles, keyCfg *config.KeysConfig) *ReportsView {
	if keyCfg == nil {
		keyCfg = &config.KeysConfig{}
	}

	ta := textarea.New()
	ta.Placeholder = "How did this month go?"
	ta.CharLimit = 0
	ta.SetHeight(5)

	return &ReportsView{
		storage:   store,
		styles:    styles,
		month:     reports.MonthOf(store.Now()),
		input:     ta,
		keys:      NewReportsKeyMap(keyCfg),
		inputKeys: NewInputKeyMap(keyCfg),
		exportKey: key.NewBinding(
			key.WithKeys("E"),
			key.WithHelp("E", "export csv"),
		),
	}
}

// SetData points the view at the loaded document and rebuilds the report.
func (v *ReportsView) SetData(data *storage.AppData) {
	v.data = data
	v.rebuild()
}

// rebuild regenerates the report for the viewed month.
func (v *ReportsView) rebuild() {
	if v.data == nil {
		v.report = nil
		return
	}
	v.report = reports.BuildMonthly(v.data, v.month)
}

// SetSize sets the view dimensions.
func (v *ReportsView) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.input.SetWidth(max(20, width-8))
}

// SetFocused sets whether this view is focused.
func (v *ReportsView) SetFocused(focused bool) {
	v.focused = focused
}

// IsEditing reports whether the reflection editor is open.
func (v *ReportsView) IsEditing() bool {
	return v.editing
}

// Month returns the month currently being viewed.
func (v *ReportsView) Month() string {
	return v.month
}

// Update handles messages for the reports view.
func (v *ReportsView) Update(msg tea.Msg) tea.Cmd {
	if v.data == nil || !v.focused {
		return nil
	}

	if v.editing {
		keyMsg, ok := msg.(tea.KeyMsg)
		if ok {
			switch {
			case key.Matches(keyMsg, v.inputKeys.Cancel):
				v.editing = false
				v.input.Blur()
				return nil

			case keyMsg.String() == "ctrl+s":
				return v.saveReflection()
			}
		}
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch {
	case key.Matches(keyMsg, v.keys.PrevMonth):
		v.month = reports.PrevMonth(v.month)
		v.rebuild()

	case key.Matches(keyMsg, v.keys.NextMonth):
		// Never navigate past the current month.
		next := reports.NextMonth(v.month)
		if next <= reports.MonthOf(v.storage.Now()) {
			v.month = next
			v.rebuild()
		}

	case key.Matches(keyMsg, v.keys.Edit):
		v.editing = true
		v.input.SetValue(v.reflection())
		v.input.Focus()
		return textarea.Blink

	case key.Matches(keyMsg, v.exportKey):
		return exportReportCmd(v.storage, v.month)
	}

	return nil
}

// reflection returns the stored reflection for the viewed month.
func (v *ReportsView) reflection() string {
	if v.data == nil {
		return ""
	}
	return v.data.Reflections[v.month]
}

// saveReflection writes the editor contents for the viewed month.
func (v *ReportsView) saveReflection() tea.Cmd {
	text := v.input.Value()
	err := v.storage.SetReflection(v.data, v.month, text)
	if err == nil {
		v.editing = false
		v.input.Blur()
		v.rebuild()
	}
	month := v.month
	return func() tea.Msg {
		return reflectionSavedMsg{month: month, err: err}
	}
}

// View renders the reports view.
func (v *ReportsView) View() string {
	var b strings.Builder

	monthLabel := v.month
	if t, err := time.Parse("2006-01", v.month); err == nil {
		monthLabel = t.Format("January 2006")
	}
	title := v.styles.PaneTitleStyle.Render("REPORTS")
	b.WriteString(title)
	b.WriteString("  ")
	b.WriteString(v.styles.DateStyle.Render("← " + monthLabel + " →"))
	b.WriteString("\n")

	sepWidth := v.width - 4
	if sepWidth < 10 {
		sepWidth = 30
	}
	b.WriteString(v.styles.StatLabelStyle.Render(strings.Repeat("─", sepWidth)))
	b.WriteString("\n\n")

	if v.report == nil {
		b.WriteString(v.styles.StatLabelStyle.Render("  Loading..."))
		b.WriteString("\n")
	} else if len(v.report.Days) == 0 {
		b.WriteString(v.styles.StatLabelStyle.Render("  No entries logged this month."))
		b.WriteString("\n")
	} else {
		days := len(v.report.Days)
		label := "days"
		if days == 1 {
			label = "day"
		}
		b.WriteString("  " + v.styles.StatValueStyle.Render(fmt.Sprintf("%d %s logged", days, label)))
		b.WriteString("\n\n")

		nameWidth := 0
		for _, avg := range v.report.Averages {
			if n := len([]rune(avg.Name)); n > nameWidth {
				nameWidth = n
			}
		}
		if nameWidth > 42 {
			nameWidth = 42
		}

		for _, avg := range v.report.Averages {
			name := truncateText(avg.Name, nameWidth)
			b.WriteString(fmt.Sprintf("  %-*s %s %s\n", nameWidth, name,
				v.renderAverageBar(avg.Average),
				v.styles.StatValueStyle.Render(fmt.Sprintf("%4.1f", avg.Average))))
		}

		b.WriteString("\n")
		b.WriteString("  " + v.styles.StatLabelStyle.Render("Daily  ") + v.renderDaySeries())
		b.WriteString("\n")
	}

	// Reflection section
	b.WriteString("\n")
	b.WriteString("  " + v.styles.StatLabelStyle.Render("Reflection"))
	b.WriteString("\n")
	if v.editing {
		b.WriteString(v.input.View())
		b.WriteString("\n")
	} else if reflection := v.reflection(); reflection != "" {
		wrapWidth := v.width - 8
		if wrapWidth < 20 {
			wrapWidth = 40
		}
		for _, line := range wrapText(reflection, wrapWidth) {
			b.WriteString("  " + v.styles.ReflectionStyle.Render(line))
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  " + v.styles.StatLabelStyle.Render("None yet. Press 'e' to write one."))
		b.WriteString("\n")
	}

	content := b.String()
	style := v.styles.PaneStyle
	if v.focused {
		style = v.styles.PaneFocusedStyle
	}
	return style.Width(v.width).Height(v.height).Render(content)
}

// renderDaySeries draws one cell per calendar day of the viewed month: a
// level mark scaled by the day's fencing score, or a dot for unlogged days.
func (v *ReportsView) renderDaySeries() string {
	t, err := time.Parse("2006-01", v.month)
	if err != nil || v.report == nil || v.data == nil {
		return ""
	}
	daysInMonth := time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()

	logged := make(map[string]float64, len(v.report.Days))
	for _, day := range v.report.Days {
		sum := 0
		for _, score := range day.Scores {
			sum += score
		}
		mean := 0.0
		if len(v.data.Activities) > 0 {
			mean = float64(sum) / float64(len(v.data.Activities))
		}
		logged[day.Date] = mean
	}

	levels := []rune("▁▂▃▄▅▆▇█")
	var b strings.Builder
	for d := 1; d <= daysInMonth; d++ {
		date := fmt.Sprintf("%s-%02d", v.month, d)
		mean, ok := logged[date]
		if !ok {
			b.WriteString(v.styles.StatLabelStyle.Render("·"))
			continue
		}
		idx := int(mean * float64(len(levels)) / float64(storage.MaxScore+1))
		if idx >= len(levels) {
			idx = len(levels) - 1
		}
		b.WriteString(v.styles.ScoreStyle(int(mean + 0.5)).Render(string(levels[idx])))
	}
	return b.String()
}

// renderAverageBar draws a ten-cell bar for a 0-10 average.
func (v *ReportsView) renderAverageBar(avg float64) string {
	filled := int(avg + 0.5)
	if filled > storage.MaxScore {
		filled = storage.MaxScore
	}
	var b strings.Builder
	for i := 0; i < storage.MaxScore; i++ {
		if i < filled {
			b.WriteString(v.styles.ScoreBarFilled)
		} else {
			b.WriteString(v.styles.ScoreBarEmpty)
		}
	}
	return b.String()
}
