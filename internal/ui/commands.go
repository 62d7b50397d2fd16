// Package ui provides the terminal user interface for the fencing app.
// This file contains tea.Cmd factories for operations that can run off the
// event loop: the initial document load, report exports, and backups. Each
// command returns a corresponding message type defined in messages.go.
package ui

import (
	"os"
	"path/filepath"

	"fencing/internal/backup"
	"fencing/internal/reports"
	"fencing/internal/storage"

	tea "github.com/charmbracelet/bubbletea"
)

// loadDataCmd returns a command that loads the data document from storage.
func loadDataCmd(store *storage.Storage) tea.Cmd {
	return func() tea.Msg {
		data, err := store.Load()
		return dataLoadedMsg{data: data, err: err}
	}
}

// exportReportCmd returns a command that writes a CSV report for the month
// into the user's home directory.
func exportReportCmd(store *storage.Storage, month string) tea.Cmd {
	return func() tea.Msg {
		gen := reports.NewGenerator(store)
		report, err := gen.GenerateMonthly(month)
		if err != nil {
			return reportExportedMsg{err: err}
		}

		out, err := reports.FormatMonthlyCSV(report)
		if err != nil {
			return reportExportedMsg{err: err}
		}

		dir, err := os.UserHomeDir()
		if err != nil {
			dir = "."
		}
		path := filepath.Join(dir, "fencing-report-"+month+".csv")
		if err := os.WriteFile(path, out, 0600); err != nil {
			return reportExportedMsg{err: err}
		}
		return reportExportedMsg{path: path}
	}
}

// createBackupCmd returns a command that creates a backup of the data files.
func createBackupCmd(manager *backup.Manager) tea.Cmd {
	return func() tea.Msg {
		name, err := manager.Create()
		return backupCreatedMsg{name: name, err: err}
	}
}
