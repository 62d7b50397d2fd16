package ui

import (
	"strings"
	"testing"
)

func TestHomeView_NoEntryYet(t *testing.T) {
	setupTest(t)
	store := createTestStorage(t)
	store.SetNowFunc(fixedClock())
	data := loadTestData(t, store)

	view := NewHomeView(store, createTestStyles(), false)
	view.SetData(data)
	view.SetFocused(true)
	view.SetSize(80, 30)

	if view.TodayScore() != 0 {
		t.Errorf("Expected score 0 with no entry, got %.1f", view.TodayScore())
	}

	output := view.View()
	if !strings.Contains(output, "No entry yet today") {
		t.Error("Expected no-entry prompt in output")
	}
	if !strings.Contains(output, "Guarded: 0 days") {
		t.Error("Expected zero logged days in output")
	}
}

func TestHomeView_TodayScore(t *testing.T) {
	setupTest(t)
	store := createTestStorage(t)
	store.SetNowFunc(fixedClock())
	data := loadTestData(t, store)

	scores := make(map[string]int)
	for _, a := range data.Activities {
		scores[a.ID] = 5
	}
	if err := store.SaveDailyLog(data, store.Today(), scores); err != nil {
		t.Fatalf("SaveDailyLog failed: %v", err)
	}

	view := NewHomeView(store, createTestStyles(), false)
	view.SetData(data)
	view.SetSize(80, 30)

	if view.TodayScore() != 5.0 {
		t.Errorf("Expected score 5.0, got %.1f", view.TodayScore())
	}
	if view.DaysLogged() != 1 {
		t.Errorf("Expected 1 day logged, got %d", view.DaysLogged())
	}

	output := view.View()
	if !strings.Contains(output, "Today's entry is logged.") {
		t.Error("Expected logged confirmation in output")
	}
	if !strings.Contains(output, "5.0") {
		t.Error("Expected score in output")
	}
	if !strings.Contains(output, "Guarded: 1 day") {
		t.Error("Expected day count in output")
	}
}

func TestHomeView_ShowsVerse(t *testing.T) {
	setupTest(t)
	store := createTestStorage(t)
	store.SetNowFunc(fixedClock())
	data := loadTestData(t, store)

	view := NewHomeView(store, createTestStyles(), true)
	view.SetData(data)
	view.SetSize(80, 30)

	output := view.View()
	found := false
	for _, verse := range fencingVerses {
		if strings.Contains(output, verse.Ref) {
			found = true
			break
		}
	}
	if !found {
		t.Error("Expected a verse reference in output")
	}
}

func TestHomeView_PartialScoresAverageOverAllActivities(t *testing.T) {
	setupTest(t)
	store := createTestStorage(t)
	store.SetNowFunc(fixedClock())
	data := loadTestData(t, store)

	// One activity at 10, the rest unscored: the day's score averages
	// over every configured activity.
	first := data.Activities[0].ID
	if err := store.SaveDailyLog(data, store.Today(), map[string]int{first: 10}); err != nil {
		t.Fatalf("SaveDailyLog failed: %v", err)
	}

	view := NewHomeView(store, createTestStyles(), false)
	view.SetData(data)

	want := 10.0 / float64(len(data.Activities))
	if got := view.TodayScore(); got != want {
		t.Errorf("Expected score %.2f, got %.2f", want, got)
	}
}
