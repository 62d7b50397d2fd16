// Package ui provides the terminal user interface for the fencing app.
// This file contains tests for the main App model, including view routing.
package ui

import (
	"strings"
	"testing"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"fencing/internal/config"
	"fencing/internal/storage"
)

func newTestApp(t *testing.T, cfg *AppConfig) (*App, *storage.AppData) {
	t.Helper()
	store := createTestStorage(t)
	store.SetNowFunc(fixedClock())
	data := loadTestData(t, store)

	app := NewApp(store, &fakeNotifier{supported: true}, nil, nil, createTestStyles(), cfg)
	app.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	app.Update(dataLoadedMsg{data: data})
	return app, data
}

func TestApp_TabCyclesViews(t *testing.T) {
	setupTest(t)
	app, _ := newTestApp(t, nil)

	want := []ViewID{ViewEntry, ViewReports, ViewSettings, ViewGuide, ViewAdore, ViewHome}
	for _, expected := range want {
		app.Update(tea.KeyMsg{Type: tea.KeyTab})
		if app.activeView != expected {
			t.Fatalf("Expected view %v after tab, got %v", expected, app.activeView)
		}
	}
}

func TestApp_DigitJumpsToView(t *testing.T) {
	setupTest(t)
	app, _ := newTestApp(t, nil)

	app.Update(keyPress("3"))
	if app.activeView != ViewReports {
		t.Errorf("Expected reports view after '3', got %v", app.activeView)
	}

	app.Update(keyPress("5"))
	if app.activeView != ViewGuide {
		t.Errorf("Expected guide view after '5', got %v", app.activeView)
	}

	app.Update(keyPress("1"))
	if app.activeView != ViewHome {
		t.Errorf("Expected home view after '1', got %v", app.activeView)
	}
}

func TestApp_DigitsSetScoresInEntryView(t *testing.T) {
	setupTest(t)
	app, data := newTestApp(t, nil)

	app.Update(keyPress("2"))
	if app.activeView != ViewEntry {
		t.Fatalf("Expected entry view after '2', got %v", app.activeView)
	}

	// Digits score the selected activity instead of jumping views.
	app.Update(keyPress("3"))
	if app.activeView != ViewEntry {
		t.Error("Expected to stay in entry view when pressing a digit")
	}
	first := data.Activities[0].ID
	if app.entryView.scores[first] != 3 {
		t.Errorf("Expected score 3, got %d", app.entryView.scores[first])
	}
}

func TestApp_ConfirmDeleteFlow(t *testing.T) {
	setupTest(t)
	app, data := newTestApp(t, &AppConfig{
		Keys:             &config.KeysConfig{},
		ConfirmDeletions: true,
	})

	app.Update(keyPress("4"))
	before := len(data.Activities)

	// Delete requires confirmation
	app.Update(keyPress("x"))
	if app.confirmDel == nil {
		t.Fatal("Expected confirmation dialog after 'x'")
	}
	if len(data.Activities) != before {
		t.Fatal("Expected deletion deferred until confirmation")
	}

	// Cancel keeps the activity
	app.Update(keyPress("n"))
	if app.confirmDel != nil {
		t.Error("Expected dialog dismissed after 'n'")
	}
	if len(data.Activities) != before {
		t.Error("Expected activity kept after cancel")
	}

	// Confirm deletes it
	app.Update(keyPress("x"))
	app.Update(keyPress("y"))
	if len(data.Activities) != before-1 {
		t.Errorf("Expected %d activities after confirm, got %d", before-1, len(data.Activities))
	}
}

func TestApp_DeleteWithoutConfirmation(t *testing.T) {
	setupTest(t)
	app, data := newTestApp(t, &AppConfig{
		Keys:             &config.KeysConfig{},
		ConfirmDeletions: false,
	})

	app.Update(keyPress("4"))
	before := len(data.Activities)

	app.Update(keyPress("x"))
	if app.confirmDel != nil {
		t.Error("Expected no confirmation dialog")
	}
	if len(data.Activities) != before-1 {
		t.Errorf("Expected %d activities, got %d", before-1, len(data.Activities))
	}
}

func TestApp_HelpOverlayToggle(t *testing.T) {
	setupTest(t)
	app, _ := newTestApp(t, nil)

	app.Update(keyPress("?"))
	if !app.showHelp {
		t.Fatal("Expected help overlay after '?'")
	}

	view := app.View()
	if !strings.Contains(view, "Keyboard Shortcuts") {
		t.Error("Expected help content in view")
	}

	app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if app.showHelp {
		t.Error("Expected help overlay closed after esc")
	}
}

func TestApp_StatusMessages(t *testing.T) {
	setupTest(t)
	app, _ := newTestApp(t, nil)

	app.Update(logSavedMsg{date: "2025-06-15"})
	if !strings.Contains(app.status, "Saved entry for 2025-06-15") {
		t.Errorf("Unexpected status: %q", app.status)
	}
	if app.statusErr {
		t.Error("Expected non-error status")
	}

	app.Update(reportExportedMsg{err: errTest})
	if !app.statusErr {
		t.Error("Expected error status")
	}
}

func TestApp_RenderShowsTabsAndScore(t *testing.T) {
	setupTest(t)
	app, data := newTestApp(t, nil)

	scores := make(map[string]int)
	for _, a := range data.Activities {
		scores[a.ID] = 8
	}
	if err := app.storage.SaveDailyLog(data, app.storage.Today(), scores); err != nil {
		t.Fatalf("SaveDailyLog failed: %v", err)
	}
	app.refreshViews()

	view := app.View()
	if !strings.Contains(view, "[Home]") {
		t.Error("Expected active Home tab in view")
	}
	if !strings.Contains(view, "Guide") {
		t.Error("Expected Guide tab in view")
	}
	if !strings.Contains(view, "Today: 8.0/10") {
		t.Error("Expected today's score in the title bar")
	}
}

func TestApp_NarrowWidthHidesTitleStats(t *testing.T) {
	setupTest(t)
	app, _ := newTestApp(t, &AppConfig{
		Keys:                  &config.KeysConfig{},
		NarrowLayoutThreshold: 80,
	})

	app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	if !strings.Contains(app.View(), "Today:") {
		t.Error("Expected stats in the title bar at full width")
	}

	app.Update(tea.WindowSizeMsg{Width: 60, Height: 40})
	if strings.Contains(app.View(), "Today:") {
		t.Error("Expected stats hidden below the narrow threshold")
	}
}

func TestApp_QuitShowsSummary(t *testing.T) {
	setupTest(t)
	app, _ := newTestApp(t, nil)

	_, cmd := app.Update(keyPress("q"))
	if cmd == nil {
		t.Fatal("Expected quit command")
	}

	view := app.View()
	if !strings.Contains(view, "Keep guarding your mind.") {
		t.Error("Expected goodbye message")
	}
	if !strings.Contains(view, "Days logged:") {
		t.Error("Expected summary in goodbye message")
	}
}

func TestApp_GuideViewRendersContent(t *testing.T) {
	setupTest(t)
	app, _ := newTestApp(t, nil)

	app.Update(keyPress("5"))
	view := app.View()
	if !strings.Contains(view, "GUIDE") {
		t.Error("Expected guide pane title")
	}
	if !strings.Contains(view, "Awareness") {
		t.Error("Expected the four stages in the guide")
	}
}

func TestApp_AdoreViewRendersContent(t *testing.T) {
	setupTest(t)
	app, _ := newTestApp(t, nil)

	app.Update(keyPress("6"))
	if app.activeView != ViewAdore {
		t.Fatalf("Expected adore view after '6', got %v", app.activeView)
	}

	view := app.View()
	if !strings.Contains(view, "ADORE") {
		t.Error("Expected adore pane title")
	}
	if !strings.Contains(view, "Matthew 26:40") {
		t.Error("Expected the epigraph reference")
	}
	if !strings.Contains(view, "St. Margaret Mary Alacoque") {
		t.Error("Expected the first quote's author")
	}
}

func TestTruncateTextKeepsRunesIntact(t *testing.T) {
	name := "Thérèse's little way of trust and love"
	got := truncateText(name, 10)

	if !utf8.ValidString(got) {
		t.Fatalf("truncated text is not valid UTF-8: %q", got)
	}
	if got != "Thérèse's…" {
		t.Errorf("truncateText = %q, want %q", got, "Thérèse's…")
	}
	if truncateText("short", 10) != "short" {
		t.Error("Expected text within the limit unchanged")
	}
}
