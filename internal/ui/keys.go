// Package ui provides the terminal user interface for the fencing app.
// This file defines key bindings using the Bubble Tea key package for
// type-safe key matching, help text generation, and customization.
package ui

import (
	"strings"

	"fencing/internal/config"

	"github.com/charmbracelet/bubbles/key"
)

// =============================================================================
// Helpers
// =============================================================================

// parseKeys splits a comma-separated string into individual keys.
// If the input is empty, returns the default keys.
func parseKeys(customKeys string, defaultKeys ...string) []string {
	if customKeys == "" {
		return defaultKeys
	}
	keys := strings.Split(customKeys, ",")
	result := make([]string, 0, len(keys))
	for _, k := range keys {
		trimmed := strings.TrimSpace(k)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// =============================================================================
// Global Keys (available in all contexts)
// =============================================================================

// GlobalKeyMap defines keys available throughout the application.
type GlobalKeyMap struct {
	Quit     key.Binding
	Help     key.Binding
	NextView key.Binding
	View1    key.Binding
	View2    key.Binding
	View3    key.Binding
	View4    key.Binding
	View5    key.Binding
	View6    key.Binding
}

// DefaultGlobalKeyMap returns the default global key bindings.
func DefaultGlobalKeyMap() GlobalKeyMap {
	return NewGlobalKeyMap(&config.KeysConfig{})
}

// NewGlobalKeyMap creates global key bindings from config.
func NewGlobalKeyMap(cfg *config.KeysConfig) GlobalKeyMap {
	if cfg == nil {
		cfg = &config.KeysConfig{}
	}
	return GlobalKeyMap{
		Quit: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Quit, "q", "ctrl+c")...),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Help, "?")...),
			key.WithHelp("?", "help"),
		),
		NextView: key.NewBinding(
			key.WithKeys(parseKeys(cfg.NextView, "tab")...),
			key.WithHelp("tab", "next view"),
		),
		View1: key.NewBinding(
			key.WithKeys(parseKeys(cfg.View1, "1")...),
			key.WithHelp("1", "home"),
		),
		View2: key.NewBinding(
			key.WithKeys(parseKeys(cfg.View2, "2")...),
			key.WithHelp("2", "entry"),
		),
		View3: key.NewBinding(
			key.WithKeys(parseKeys(cfg.View3, "3")...),
			key.WithHelp("3", "reports"),
		),
		View4: key.NewBinding(
			key.WithKeys(parseKeys(cfg.View4, "4")...),
			key.WithHelp("4", "settings"),
		),
		View5: key.NewBinding(
			key.WithKeys(parseKeys(cfg.View5, "5")...),
			key.WithHelp("5", "guide"),
		),
		View6: key.NewBinding(
			key.WithKeys(parseKeys(cfg.View6, "6")...),
			key.WithHelp("6", "adore"),
		),
	}
}

// =============================================================================
// Navigation Keys (shared by list-based views)
// =============================================================================

// NavigationKeyMap defines keys for list navigation.
type NavigationKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Top    key.Binding
	Bottom key.Binding
}

// DefaultNavigationKeyMap returns the default navigation key bindings.
func DefaultNavigationKeyMap() NavigationKeyMap {
	return NewNavigationKeyMap(&config.KeysConfig{})
}

// NewNavigationKeyMap creates navigation key bindings from config.
func NewNavigationKeyMap(cfg *config.KeysConfig) NavigationKeyMap {
	if cfg == nil {
		cfg = &config.KeysConfig{}
	}
	return NavigationKeyMap{
		Up: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Up, "k", "up")...),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Down, "j", "down")...),
			key.WithHelp("j/↓", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Left, "h", "left")...),
			key.WithHelp("h/←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Right, "l", "right")...),
			key.WithHelp("l/→", "right"),
		),
		Top: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Top, "g")...),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Bottom, "G")...),
			key.WithHelp("G", "bottom"),
		),
	}
}

// =============================================================================
// Input Keys (shared by text input fields)
// =============================================================================

// InputKeyMap defines keys for text input mode.
type InputKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultInputKeyMap returns the default input key bindings.
func DefaultInputKeyMap() InputKeyMap {
	return NewInputKeyMap(&config.KeysConfig{})
}

// NewInputKeyMap creates input key bindings from config.
func NewInputKeyMap(cfg *config.KeysConfig) InputKeyMap {
	if cfg == nil {
		cfg = &config.KeysConfig{}
	}
	return InputKeyMap{
		Confirm: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Confirm, "enter")...),
			key.WithHelp("enter", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Cancel, "esc")...),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// =============================================================================
// Entry View Keys
// =============================================================================

// EntryKeyMap defines keys for the daily entry view.
type EntryKeyMap struct {
	Decrease key.Binding
	Increase key.Binding
	Save     key.Binding
	PrevDay  key.Binding
	NextDay  key.Binding
	NavigationKeyMap
}

// DefaultEntryKeyMap returns the default entry view key bindings.
func DefaultEntryKeyMap() EntryKeyMap {
	return NewEntryKeyMap(&config.KeysConfig{})
}

// NewEntryKeyMap creates entry view key bindings from config.
func NewEntryKeyMap(cfg *config.KeysConfig) EntryKeyMap {
	if cfg == nil {
		cfg = &config.KeysConfig{}
	}
	nav := NewNavigationKeyMap(cfg)
	return EntryKeyMap{
		Decrease: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Left, "h", "left")...),
			key.WithHelp("h/←", "-1"),
		),
		Increase: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Right, "l", "right")...),
			key.WithHelp("l/→", "+1"),
		),
		Save: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Save, "s")...),
			key.WithHelp("s", "save"),
		),
		PrevDay: key.NewBinding(
			key.WithKeys("[", "shift+left"),
			key.WithHelp("[", "prev day"),
		),
		NextDay: key.NewBinding(
			key.WithKeys("]", "shift+right"),
			key.WithHelp("]", "next day"),
		),
		NavigationKeyMap: nav,
	}
}

// ShortHelp returns the short help for the entry view (implements help.KeyMap).
func (k EntryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Increase, k.Decrease, k.Save, k.Down}
}

// FullHelp returns the full help for the entry view (implements help.KeyMap).
func (k EntryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Increase, k.Decrease, k.Save},
		{k.Up, k.Down, k.PrevDay, k.NextDay},
	}
}

// =============================================================================
// Reports View Keys
// =============================================================================

// ReportsKeyMap defines keys for the reports view.
type ReportsKeyMap struct {
	PrevMonth key.Binding
	NextMonth key.Binding
	Edit      key.Binding
	NavigationKeyMap
}

// DefaultReportsKeyMap returns the default reports view key bindings.
func DefaultReportsKeyMap() ReportsKeyMap {
	return NewReportsKeyMap(&config.KeysConfig{})
}

// NewReportsKeyMap creates reports view key bindings from config.
func NewReportsKeyMap(cfg *config.KeysConfig) ReportsKeyMap {
	if cfg == nil {
		cfg = &config.KeysConfig{}
	}
	return ReportsKeyMap{
		PrevMonth: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Left, "h", "left")...),
			key.WithHelp("h/←", "prev month"),
		),
		NextMonth: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Right, "l", "right")...),
			key.WithHelp("l/→", "next month"),
		),
		Edit: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Edit, "e", "enter")...),
			key.WithHelp("e", "edit reflection"),
		),
		NavigationKeyMap: NewNavigationKeyMap(cfg),
	}
}

// ShortHelp returns the short help for the reports view (implements help.KeyMap).
func (k ReportsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevMonth, k.NextMonth, k.Edit}
}

// FullHelp returns the full help for the reports view (implements help.KeyMap).
func (k ReportsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevMonth, k.NextMonth, k.Edit},
	}
}

// =============================================================================
// Settings View Keys
// =============================================================================

// SettingsKeyMap defines keys for the settings view.
type SettingsKeyMap struct {
	Add    key.Binding
	Rename key.Binding
	Delete key.Binding
	MoveUp key.Binding
	MoveDn key.Binding
	Toggle key.Binding
	Edit   key.Binding
	NavigationKeyMap
}

// DefaultSettingsKeyMap returns the default settings view key bindings.
func DefaultSettingsKeyMap() SettingsKeyMap {
	return NewSettingsKeyMap(&config.KeysConfig{})
}

// NewSettingsKeyMap creates settings view key bindings from config.
func NewSettingsKeyMap(cfg *config.KeysConfig) SettingsKeyMap {
	if cfg == nil {
		cfg = &config.KeysConfig{}
	}
	return SettingsKeyMap{
		Add: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Add, "a")...),
			key.WithHelp("a", "add activity"),
		),
		Rename: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Rename, "r")...),
			key.WithHelp("r", "rename"),
		),
		Delete: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Delete, "x")...),
			key.WithHelp("x", "delete"),
		),
		MoveUp: key.NewBinding(
			key.WithKeys(parseKeys(cfg.MoveUp, "K", "shift+up")...),
			key.WithHelp("K", "move up"),
		),
		MoveDn: key.NewBinding(
			key.WithKeys(parseKeys(cfg.MoveDn, "J", "shift+down")...),
			key.WithHelp("J", "move down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "toggle"),
		),
		Edit: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Edit, "e")...),
			key.WithHelp("e", "edit"),
		),
		NavigationKeyMap: NewNavigationKeyMap(cfg),
	}
}

// ShortHelp returns the short help for the settings view (implements help.KeyMap).
func (k SettingsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Rename, k.Delete, k.Down}
}

// FullHelp returns the full help for the settings view (implements help.KeyMap).
func (k SettingsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Add, k.Rename, k.Delete},
		{k.MoveUp, k.MoveDn, k.Toggle, k.Edit},
	}
}

// =============================================================================
// Help Overlay Keys
// =============================================================================

// HelpKeyMap defines keys for the help overlay.
type HelpKeyMap struct {
	Close key.Binding
}

// DefaultHelpKeyMap returns the default help overlay key bindings.
func DefaultHelpKeyMap() HelpKeyMap {
	return HelpKeyMap{
		Close: key.NewBinding(
			key.WithKeys("?", "esc", "q", "enter", " "),
			key.WithHelp("any key", "close"),
		),
	}
}
