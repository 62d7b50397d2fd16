// Package ui provides the terminal user interface for the fencing app.
// This file defines message types for async operations using the Bubble Tea
// command pattern. The data document is loaded once at startup; mutations
// happen synchronously in Update because the views share one *storage.AppData.
package ui

import (
	"fencing/internal/storage"
)

// dataLoadedMsg is sent when the data document is loaded from storage.
type dataLoadedMsg struct {
	data *storage.AppData
	err  error
}

// logSavedMsg is sent after a daily log write.
type logSavedMsg struct {
	date string
	err  error
}

// reflectionSavedMsg is sent after a monthly reflection write.
type reflectionSavedMsg struct {
	month string
	err   error
}

// settingsChangedMsg is sent after the settings section is written.
// The app reacts by reconfiguring the reminder scheduler.
type settingsChangedMsg struct {
	settings storage.Settings
	err      error
}

// activityChangedMsg is sent after an activity add, rename, delete, or move.
type activityChangedMsg struct {
	action string // "added", "renamed", "deleted", "moved"
	name   string
	err    error
}

// reportExportedMsg is sent when a report export completes.
type reportExportedMsg struct {
	path string
	err  error
}

// backupCreatedMsg is sent when a manual backup completes.
type backupCreatedMsg struct {
	name string
	err  error
}
