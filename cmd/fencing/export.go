// Package main is the entry point for the fencing application.
// This file contains the export subcommand handler.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"fencing/internal/config"
	"fencing/internal/fsutil"
	"fencing/internal/reports"
	"fencing/internal/storage"
)

// exportHelpText is the help message for the export subcommand.
const exportHelpText = `fencing export - Generate monthly reports

USAGE:
    fencing export [OPTIONS] [MONTH]

OPTIONS:
    -f, --format FMT   Output format: csv (default), markdown, or json
    -o, --output FILE  Write to file instead of stdout
    -h, --help         Show this help message

ARGUMENTS:
    MONTH              Month for report (YYYY-MM). Defaults to the current month.

DESCRIPTION:
    Generates a report with per-activity averages, days logged, and your
    reflection for the month. Reports can be output as CSV (spreadsheets),
    Markdown (human-readable), or JSON (machine-readable).

EXAMPLES:
    # This month's report as CSV
    fencing export

    # Specific month
    fencing export 2025-06

    # Markdown format
    fencing export --format md

    # Save to file
    fencing export --format json --output june.json 2025-06
`

// runExport handles the "fencing export" subcommand.
func runExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)

	formatFlag := fs.String("format", "csv", "output format: csv, markdown, or json")
	fs.StringVar(formatFlag, "f", "csv", "output format (shorthand)")

	outputFlag := fs.String("output", "", "write to file instead of stdout")
	fs.StringVar(outputFlag, "o", "", "write to file (shorthand)")

	helpFlag := fs.Bool("help", false, "show help message")
	fs.BoolVar(helpFlag, "h", false, "show help message (shorthand)")

	fs.Usage = func() {
		fmt.Fprint(os.Stderr, exportHelpText)
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if *helpFlag {
		fmt.Print(exportHelpText)
		os.Exit(0)
	}

	// Validate format
	format := *formatFlag
	switch format {
	case "csv", "markdown", "json":
	case "md":
		format = "markdown"
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid format %q. Use 'csv', 'markdown', or 'json'.\n", format)
		os.Exit(1)
	}

	// Parse month argument
	month := reports.MonthOf(time.Now())
	if fs.NArg() > 0 {
		if _, err := time.Parse("2006-01", fs.Arg(0)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid month %q. Use YYYY-MM format.\n", fs.Arg(0))
			os.Exit(1)
		}
		month = fs.Arg(0)
	}

	// Load config and storage
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.New(cfg.GetDataDir())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing storage: %v\n", err)
		os.Exit(1)
	}

	gen := reports.NewGenerator(store)

	report, err := gen.GenerateMonthly(month)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating report: %v\n", err)
		os.Exit(1)
	}

	var output string
	switch format {
	case "json":
		data, err := reports.FormatMonthlyJSON(report)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error formatting JSON: %v\n", err)
			os.Exit(1)
		}
		output = string(data)
	case "csv":
		data, err := reports.FormatMonthlyCSV(report)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error formatting CSV: %v\n", err)
			os.Exit(1)
		}
		output = string(data)
	default:
		output = reports.FormatMonthlyMarkdown(report)
	}

	// Write output
	if *outputFlag != "" {
		if err := os.MkdirAll(filepath.Dir(*outputFlag), 0700); err != nil && filepath.Dir(*outputFlag) != "." {
			fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
			os.Exit(1)
		}
		if err := fsutil.WriteFileAtomic(*outputFlag, []byte(output), 0600); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing to file: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Report written to %s\n", *outputFlag)
	} else {
		fmt.Print(output)
	}
}
