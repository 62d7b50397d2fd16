// Package ui provides the terminal user interface for the fencing app.
package ui

import (
	"strings"

	"fencing/internal/config"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// adoreQuote is one saint's word on Eucharistic adoration.
type adoreQuote struct {
	text   string
	author string
}

var adoreQuotes = []adoreQuote{
	{
		text:   "The Eucharistic Heart is the refuge of souls. Hide yourself therein.",
		author: "St. Margaret Mary Alacoque",
	},
	{
		text:   "When you look at the Crucifix, you understand how much Jesus loved you then. When you look at the Sacred Host, you understand how much Jesus loves you now.",
		author: "Blessed Carlo Acutis",
	},
	{
		text:   "Do you realize that Jesus is there in the tabernacle expressly for you - for you alone? He burns with the desire to come into your heart.",
		author: "St. Thérèse of Lisieux",
	},
	{
		text:   "The Eucharist is the Heart of the Church. Where Eucharistic life flourishes, there the life of the Church will blossom.",
		author: "St. John Paul II",
	},
	{
		text:   "Put your sins in the chalice for the precious blood to wash away. One drop is capable of saving the world.",
		author: "Mother Teresa",
	},
	{
		text:   "Receive Communion often, very often... there you have the sole remedy, if you want to be cured. Jesus has not put this attraction in your heart for nothing.",
		author: "St. Thérèse of Lisieux",
	},
}

const spiritualCommunion = "My Jesus, I believe that You are present in the Most Holy Sacrament. " +
	"I love You above all things, and I desire to receive You into my soul. " +
	"Since I cannot at this moment receive You sacramentally, come at least spiritually into my heart. " +
	"I embrace You as if You were already there and unite myself wholly to You. " +
	"Never permit me to be separated from You. Amen."

// AdoreView shows adoration quotes and the Act of Spiritual Communion in a
// scrollable viewport.
type AdoreView struct {
	styles  *Styles
	vp      viewport.Model
	ready   bool
	focused bool
	width   int
	height  int
	navKeys NavigationKeyMap
}

// NewAdoreView creates a new adore view.
func NewAdoreView(styles *Styles) *AdoreView {
	return NewAdoreViewWithKeys(styles, &config.KeysConfig{})
}

// NewAdoreViewWithKeys creates a new adore view with custom key bindings.
func NewAdoreViewWithKeys(styles *Styles, keyCfg *config.KeysConfig) *AdoreView {
	return &AdoreView{
		styles:  styles,
		navKeys: NewNavigationKeyMap(keyCfg),
	}
}

// SetSize sets the view dimensions and lays out the viewport.
func (v *AdoreView) SetSize(width, height int) {
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
func (v *AdoreView) SetFocused(focused bool) {
	v.focused = focused
}

// Update handles messages for the adore view.
func (v *AdoreView) Update(msg tea.Msg) tea.Cmd {
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

// View renders the adore view.
func (v *AdoreView) View() string {
	var b strings.Builder

	title := v.styles.PaneTitleStyle.Render("ADORE")
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

// renderContent builds the full adoration text.
func (v *AdoreView) renderContent() string {
	heading := v.styles.PaneTitleStyle
	body := v.styles.ActivityStyle
	muted := v.styles.StatLabelStyle
	accent := v.styles.VerseRefStyle

	wrapWidth := v.vp.Width - 2
	if wrapWidth < 20 {
		wrapWidth = 40
	}
	paragraph := func(text string, style lipgloss.Style) string {
		var p strings.Builder
		for _, line := range wrapText(text, wrapWidth) {
			p.WriteString(style.Render(line))
			p.WriteString("\n")
		}
		return p.String()
	}

	var b strings.Builder

	b.WriteString(muted.Render("\"Could you not watch one hour with me?\""))
	b.WriteString("\n")
	b.WriteString(accent.Render("Matthew 26:40"))
	b.WriteString("\n\n")

	for _, quote := range adoreQuotes {
		b.WriteString(paragraph("\""+quote.text+"\"", v.styles.VerseStyle))
		b.WriteString(accent.Render(quote.author))
		b.WriteString("\n\n")
	}

	b.WriteString(heading.Render("Act of Spiritual Communion"))
	b.WriteString("\n")
	b.WriteString(paragraph(spiritualCommunion, body))
	b.WriteString("\n")

	return b.String()
}
