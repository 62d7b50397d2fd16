package ui

import (
	"fencing/internal/config"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds all application styles, initialized with theme configuration.
type Styles struct {
	// Colors
	ColorPrimary   lipgloss.Color
	ColorAccent    lipgloss.Color
	ColorMuted     lipgloss.Color
	ColorDanger    lipgloss.Color
	ColorWarning   lipgloss.Color
	ColorSuccess   lipgloss.Color
	ColorBg        lipgloss.Color
	ColorBgLight   lipgloss.Color
	ColorText      lipgloss.Color
	ColorTextMuted lipgloss.Color

	// Component styles
	TitleStyle       lipgloss.Style
	DateStyle        lipgloss.Style
	PaneStyle        lipgloss.Style
	PaneFocusedStyle lipgloss.Style
	PaneTitleStyle   lipgloss.Style

	// Activity rows
	ActivityStyle         lipgloss.Style
	ActivitySelectedStyle lipgloss.Style

	// Score display
	ScoreHighStyle lipgloss.Style // 7-10
	ScoreMidStyle  lipgloss.Style // 4-6
	ScoreLowStyle  lipgloss.Style // 1-3
	ScoreZeroStyle lipgloss.Style // 0
	ScoreBarFilled string
	ScoreBarEmpty  string

	// Home view
	FencingScoreStyle lipgloss.Style
	StreakStyle       lipgloss.Style
	VerseStyle        lipgloss.Style
	VerseRefStyle     lipgloss.Style

	// Reports
	AverageBarStyle lipgloss.Style
	ReflectionStyle lipgloss.Style

	HelpStyle    lipgloss.Style
	HelpKeyStyle lipgloss.Style

	StatusStyle  lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style

	InputPromptStyle lipgloss.Style
	InputTextStyle   lipgloss.Style

	StatLabelStyle lipgloss.Style
	StatValueStyle lipgloss.Style

	// Settings
	ToggleOnStyle  lipgloss.Style
	ToggleOffStyle lipgloss.Style
}

// NewStyles creates a new Styles instance from the given config.
// If a theme color is empty, it uses the appropriate default.
func NewStyles(cfg *config.Config) *Styles {
	return NewStylesFromTheme(&cfg.Theme)
}

// NewStylesFromTheme creates a new Styles instance from a ThemeConfig.
// If a theme color is empty, it uses the appropriate default.
func NewStylesFromTheme(theme *config.ThemeConfig) *Styles {
	s := &Styles{}

	// Initialize colors from config with fallbacks to defaults
	s.ColorPrimary = colorOrDefault(theme.Primary, "#880808")
	s.ColorAccent = colorOrDefault(theme.Accent, "#D4AF37")
	s.ColorMuted = colorOrDefault(theme.Muted, "#78716C")

	// Fixed semantic colors (not configurable from theme)
	s.ColorDanger = lipgloss.Color("#EF4444")
	s.ColorWarning = lipgloss.Color("#F59E0B")
	s.ColorSuccess = lipgloss.Color("#10B981")

	// Background and text colors
	s.ColorBg = colorOrDefault(theme.Background, "#1C1917")
	s.ColorBgLight = lipgloss.Color("#292524")
	s.ColorText = colorOrDefault(theme.Text, "#FAFAF9")
	s.ColorTextMuted = lipgloss.Color("#A8A29E")

	// Initialize all component styles
	s.initComponentStyles()

	return s
}

// colorOrDefault returns the lipgloss.Color from hex string, or default if empty.
func colorOrDefault(hex, defaultHex string) lipgloss.Color {
	if hex != "" {
		return lipgloss.Color(hex)
	}
	return lipgloss.Color(defaultHex)
}

// initComponentStyles initializes all component styles based on the color palette.
func (s *Styles) initComponentStyles() {
	// Title bar
	s.TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.ColorText).
		Background(s.ColorPrimary).
		Padding(0, 1)

	// Date in title bar
	s.DateStyle = lipgloss.NewStyle().
		Foreground(s.ColorTextMuted)

	// Pane styles
	s.PaneStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.ColorMuted).
		Padding(0, 1)

	s.PaneFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.ColorPrimary).
		Padding(0, 1)

	s.PaneTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.ColorPrimary).
		MarginBottom(1)

	// Activity rows
	s.ActivityStyle = lipgloss.NewStyle().
		Foreground(s.ColorText)

	s.ActivitySelectedStyle = lipgloss.NewStyle().
		Background(s.ColorBgLight).
		Foreground(s.ColorText).
		Bold(true)

	// Score styles by band
	s.ScoreHighStyle = lipgloss.NewStyle().
		Foreground(s.ColorSuccess).
		Bold(true)

	s.ScoreMidStyle = lipgloss.NewStyle().
		Foreground(s.ColorWarning)

	s.ScoreLowStyle = lipgloss.NewStyle().
		Foreground(s.ColorDanger)

	s.ScoreZeroStyle = lipgloss.NewStyle().
		Foreground(s.ColorTextMuted)

	s.ScoreBarFilled = lipgloss.NewStyle().Foreground(s.ColorAccent).Render("█")
	s.ScoreBarEmpty = lipgloss.NewStyle().Foreground(s.ColorBgLight).Render("░")

	// Home view
	s.FencingScoreStyle = lipgloss.NewStyle().
		Foreground(s.ColorAccent).
		Bold(true)

	s.StreakStyle = lipgloss.NewStyle().
		Foreground(s.ColorWarning).
		Bold(true)

	s.VerseStyle = lipgloss.NewStyle().
		Foreground(s.ColorText).
		Italic(true)

	s.VerseRefStyle = lipgloss.NewStyle().
		Foreground(s.ColorAccent)

	// Reports
	s.AverageBarStyle = lipgloss.NewStyle().
		Foreground(s.ColorAccent)

	s.ReflectionStyle = lipgloss.NewStyle().
		Foreground(s.ColorText).
		Italic(true)

	// Help bar
	s.HelpStyle = lipgloss.NewStyle().
		Foreground(s.ColorTextMuted)

	s.HelpKeyStyle = lipgloss.NewStyle().
		Foreground(s.ColorAccent).
		Bold(true)

	// Status messages
	s.StatusStyle = lipgloss.NewStyle().
		Foreground(s.ColorSuccess).
		Italic(true)

	s.ErrorStyle = lipgloss.NewStyle().
		Foreground(s.ColorDanger).
		Bold(true)

	s.WarningStyle = lipgloss.NewStyle().
		Foreground(s.ColorWarning)

	// Input
	s.InputPromptStyle = lipgloss.NewStyle().
		Foreground(s.ColorPrimary).
		Bold(true)

	s.InputTextStyle = lipgloss.NewStyle().
		Foreground(s.ColorText)

	// Summary stats
	s.StatLabelStyle = lipgloss.NewStyle().
		Foreground(s.ColorTextMuted)

	s.StatValueStyle = lipgloss.NewStyle().
		Foreground(s.ColorText).
		Bold(true)

	// Settings toggles
	s.ToggleOnStyle = lipgloss.NewStyle().
		Foreground(s.ColorSuccess).
		Bold(true)

	s.ToggleOffStyle = lipgloss.NewStyle().
		Foreground(s.ColorMuted)
}

// RenderHelp renders help text with key bindings using the given styles.
func (s *Styles) RenderHelp(keys ...string) string {
	var result string
	for i := 0; i < len(keys); i += 2 {
		if i > 0 {
			result += "  "
		}
		key := keys[i]
		desc := keys[i+1]
		result += s.HelpKeyStyle.Render("["+key+"]") + " " + s.HelpStyle.Render(desc)
	}
	return result
}

// ScoreStyle returns the style for a given 0-10 score.
func (s *Styles) ScoreStyle(score int) lipgloss.Style {
	switch {
	case score >= 7:
		return s.ScoreHighStyle
	case score >= 4:
		return s.ScoreMidStyle
	case score >= 1:
		return s.ScoreLowStyle
	default:
		return s.ScoreZeroStyle
	}
}
