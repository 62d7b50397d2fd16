// Package main is the entry point for the fencing application.
// It loads configuration, initializes storage, and starts the TUI.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"fencing/internal/backup"
	"fencing/internal/config"
	"fencing/internal/notify"
	"fencing/internal/reminder"
	"fencing/internal/storage"
	"fencing/internal/ui"
)

// Version information - set by GoReleaser during build
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const helpText = `fencing - A daily spiritual fencing tracker for your terminal

USAGE:
    fencing [OPTIONS]
    fencing <command> [ARGS]

COMMANDS:
    backup           Create a backup of all data
    backup --list    List available backups
    restore NAME     Restore from a specific backup
    restore --latest Restore from the most recent backup
    export [MONTH]   Generate a monthly report (CSV by default)
    export -f md     Output report as Markdown
    export -f json   Output report as JSON

OPTIONS:
    -h, --help       Show this help message
    -v, --version    Show version information

DESCRIPTION:
    fencing is a terminal app for guarding your mind: rate ten daily
    spiritual activities from 0 to 10, review monthly averages, write
    monthly reflections, and get a once-a-day reminder.

KEYBINDINGS:
    Global:
        Tab          Switch between views
        1 .. 6       Jump to a view (Home, Entry, Reports, Settings, Guide, Adore)
        ?            Show help overlay
        B            Create a backup
        q            Quit

    Daily Entry:
        j/k, ↓/↑     Navigate activities
        h/l, ←/→     Adjust score
        0-9          Set score directly
        s            Save entry
        [ / ]        Previous/next day

    Reports:
        h/l          Previous/next month
        e            Edit reflection (ctrl+s saves)
        E            Export month as CSV

    Settings:
        a            Add activity
        r            Rename activity
        x            Delete activity
        K/J          Reorder activity
        Space        Toggle reminders or dark mode, edit reminder time

DATA STORAGE:
    All data is stored in ~/.fencing/ as plain files:
        data.json               - Activities, daily logs, reflections, settings
        last_notification_date  - Reminder state

CONFIGURATION:
    Optional config file: ~/.config/fencing/config.yaml
    See documentation for configuration options.

EXAMPLES:
    # Start the app
    fencing

    # Create a backup
    fencing backup

    # Restore from a backup
    fencing restore --latest

    # Export this month's report
    fencing export

    # Export June 2025 as Markdown to a file
    fencing export -f md -o june.md 2025-06
`

func main() {
	// Check for subcommands first (before flag parsing)
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "backup":
			runBackup(os.Args[2:])
			return
		case "restore":
			runRestore(os.Args[2:])
			return
		case "export":
			runExport(os.Args[2:])
			return
		}
	}

	// Define flags
	showVersion := flag.Bool("version", false, "show version information")
	flag.BoolVar(showVersion, "v", false, "show version information (shorthand)")

	showHelp := flag.Bool("help", false, "show help message")
	flag.BoolVar(showHelp, "h", false, "show help message (shorthand)")

	// Custom usage message
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, helpText)
	}

	flag.Parse()

	// Handle version flag
	if *showVersion {
		fmt.Printf("fencing version %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", date)
		os.Exit(0)
	}

	// Handle help flag
	if *showHelp {
		fmt.Print(helpText)
		os.Exit(0)
	}

	// Reject unknown arguments
	if flag.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "Error: unknown arguments: %v\n\n", flag.Args())
		flag.Usage()
		os.Exit(1)
	}

	// Load configuration (from ~/.config/fencing/config.yaml or defaults)
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Initialize storage with configured data directory
	store, err := storage.New(cfg.GetDataDir())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing storage: %v\n", err)
		os.Exit(1)
	}

	// The reminder scheduler logs to a file so the TUI stays clean.
	notifier := notify.New()
	logger := reminderLogger(cfg.GetDataDir())
	scheduler := reminder.New(store, notifier, logger)
	defer scheduler.Stop()

	backupMgr := backup.NewManager(cfg.GetDataDir(), version)

	// Create styles from theme config
	styles := ui.NewStylesFromTheme(&cfg.Theme)

	// Create app config with keys and UX settings
	appCfg := &ui.AppConfig{
		Keys:                  &cfg.Keys,
		ConfirmDeletions:      cfg.UX.ConfirmDeletions,
		ShowVerse:             cfg.UX.ShowVerse,
		NarrowLayoutThreshold: cfg.UX.NarrowLayoutThreshold,
	}

	if err := ui.Run(store, notifier, scheduler, backupMgr, styles, appCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
		os.Exit(1)
	}
}

// reminderLogger returns a logger writing to reminder.log in the data
// directory, falling back to stderr.
func reminderLogger(dataDir string) *log.Logger {
	path := filepath.Join(dataDir, "reminder.log")
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return log.New(os.Stderr, "reminder: ", log.LstdFlags)
	}
	return log.New(f, "", log.LstdFlags)
}
