// Package ui provides the terminal user interface for the fencing app.
package ui

import (
	"strings"

	"fencing/internal/config"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// GuideView shows the spiritual fencing guide in a scrollable viewport.
type GuideView struct {
	styles   *Styles
	vp       viewport.Model
	ready    bool
	focused  bool
	width    int
	height   int
	navKeys  NavigationKeyMap
}

// NewGuideView creates a new guide view.
func NewGuideView(styles *Styles) *GuideView {
	return NewGuideViewWithKeys(styles, &config.KeysConfig{})
}

// NewGuideViewWithKeys creates a new guide view with custom key bindings.
func NewGuideViewWithKeys(styles *Styles, keyCfg *config.KeysConfig) *GuideView {
	return &GuideView{
		styles:  styles,
		navKeys: NewNavigationKeyMap(keyCfg),
	}
}

// SetSize sets the view dimensions and lays out the viewport.
func (v *GuideView) SetSize(width, height int) {
	v.width = width
	v.height = height

	vpHeight := height - 2
	if vpHeight < 5 {
		vpHeight = 5
	}
	if !v.ready {
		v.vp = viewport.New(width-4, vpHeight)
		v.ready = true
	} else {
		v.vp.Width = width - 4
		v.vp.Height = vpHeight
	}
	v.vp.SetContent(v.renderContent())
}

// SetFocused sets whether this view is focused.
func (v *GuideView) SetFocused(focused bool) {
	v.focused = focused
}

// Update handles messages for the guide view.
func (v *GuideView) Update(msg tea.Msg) tea.Cmd {
	if !v.focused || !v.ready {
		return nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, v.navKeys.Down):
			v.vp.LineDown(1)
			return nil
		case key.Matches(keyMsg, v.navKeys.Up):
			v.vp.LineUp(1)
			return nil
		case key.Matches(keyMsg, v.navKeys.Top):
			v.vp.GotoTop()
			return nil
		case key.Matches(keyMsg, v.navKeys.Bottom):
			v.vp.GotoBottom()
			return nil
		}
	}

	var cmd tea.Cmd
	v.vp, cmd = v.vp.Update(msg)
	return cmd
}

// View renders the guide view.
func (v *GuideView) View() string {
	var b strings.Builder

	title := v.styles.PaneTitleStyle.Render("GUIDE")
	b.WriteString(title)
	b.WriteString("\n")

	if v.ready {
		b.WriteString(v.vp.View())
	}

	content := b.String()
	style := v.styles.PaneStyle
	if v.focused {
		style = v.styles.PaneFocusedStyle
	}
	return style.Width(v.width).Height(v.height).Render(content)
}

// renderContent builds the full guide text.
func (v *GuideView) renderContent() string {
	heading := v.styles.PaneTitleStyle
	body := v.styles.ActivityStyle
	muted := v.styles.StatLabelStyle
	accent := v.styles.VerseRefStyle

	wrapWidth := v.vp.Width - 2
	if wrapWidth < 20 {
		wrapWidth = 40
	}
	paragraph := func(text string) string {
		var p strings.Builder
		for _, line := range wrapText(text, wrapWidth) {
			p.WriteString(body.Render(line))
			p.WriteString("\n")
		}
		return p.String()
	}

	var b strings.Builder

	b.WriteString(heading.Render("Spiritual Fencing: Guarding Your Mind"))
	b.WriteString("\n")
	b.WriteString(muted.Render("Fr. Jerry VM SDB, Sept 1, 2025"))
	b.WriteString("\n\n")

	b.WriteString(heading.Render("Why it is essential"))
	b.WriteString("\n")
	b.WriteString(paragraph("The mind is a battleground. Thoughts seed sin or holiness, so guard them (Matt 5:21-28)."))
	b.WriteString(paragraph("Build defenses. Be vigilant in ten daily areas such as prayer, scripture, and work."))
	b.WriteString(paragraph("Align with God. Prevent chaos and foster peace within (Col 3:15)."))
	b.WriteString("\n")

	b.WriteString(heading.Render("Scriptural perspectives"))
	b.WriteString("\n")
	b.WriteString(body.Render("Origin of thoughts: evil comes from the heart. ") + accent.Render("Mk 7:20-22") + "\n")
	b.WriteString(body.Render("Guard commands: take every thought captive. ") + accent.Render("2 Cor 10:5") + "\n")
	b.WriteString(body.Render("Renewal: transform by renewing the mind. ") + accent.Render("Rom 12:2") + "\n")
	b.WriteString(body.Render("Consequences: flesh versus Spirit warfare. ") + accent.Render("Gal 5:17") + "\n")
	b.WriteString("\n")

	b.WriteString(heading.Render("The four stages of fencing"))
	b.WriteString("\n")
	b.WriteString(body.Render("1. Awareness    Recognize the thought entering.") + "\n")
	b.WriteString(body.Render("2. Rejection    Say NO immediately to sin.") + "\n")
	b.WriteString(body.Render("3. Replacement  Switch focus to God's Word.") + "\n")
	b.WriteString(body.Render("4. Maintenance  Build habits of holiness.") + "\n")
	b.WriteString("\n")

	b.WriteString(heading.Render("Practices"))
	b.WriteString("\n")
	b.WriteString(paragraph("TAPPING: surrender distractions instantly. \"Wash me in your blood, Jesus.\""))
	b.WriteString(paragraph("Vox Divini: dwell on God's Word and let Scripture shape your inner voice. https://voxdivini.in/"))
	b.WriteString("\n")

	b.WriteString(v.styles.VerseStyle.Render("\"Do not be conformed to this world, but be transformed by the renewal of your mind.\""))
	b.WriteString("\n")
	b.WriteString(accent.Render("Romans 12:2"))
	b.WriteString("\n")

	return b.String()
}
