package ui

import (
	"errors"
	"testing"

	"fencing/internal/config"
	"fencing/internal/notify"
	"fencing/internal/storage"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// setupTest prepares the test environment for deterministic rendering.
// It disables colors to ensure consistent output across environments.
func setupTest(t *testing.T) {
	t.Helper()
	// Use ASCII profile to disable all color codes in output
	lipgloss.SetColorProfile(termenv.Ascii)
}

// createTestStorage creates a Storage instance with a temporary directory.
func createTestStorage(t *testing.T) *storage.Storage {
	t.Helper()
	store, err := storage.New(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create test storage: %v", err)
	}
	return store
}

// loadTestData loads the document, which seeds the default activities.
func loadTestData(t *testing.T, store *storage.Storage) *storage.AppData {
	t.Helper()
	data, err := store.Load()
	if err != nil {
		t.Fatalf("failed to load test data: %v", err)
	}
	return data
}

// createTestStyles creates a default Styles instance for testing.
func createTestStyles() *Styles {
	return NewStylesFromTheme(&config.ThemeConfig{})
}

// keyPress builds a rune key message such as "j" or "5".
func keyPress(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// errTest is a sentinel error for message-routing assertions.
var errTest = errors.New("test error")

// fakeNotifier records sent notifications for assertions.
type fakeNotifier struct {
	sent      []notify.Notification
	supported bool
}

func (f *fakeNotifier) Send(n notify.Notification) error {
	f.sent = append(f.sent, n)
	return nil
}

func (f *fakeNotifier) IsSupported() bool {
	return f.supported
}
