// Package reports provides monthly report generation for the fencing app.
package reports

import (
	"fmt"
	"strings"
	"time"
)

// FormatMonthlyMarkdown formats a monthly report as human-readable Markdown.
func FormatMonthlyMarkdown(report *MonthlyReport) string {
	var b strings.Builder

	title := report.Month
	if t, err := time.Parse("2006-01", report.Month); err == nil {
		title = t.Format("January 2006")
	}
	fmt.Fprintf(&b, "# Fencing Report - %s\n\n", title)

	if len(report.Days) == 0 {
		b.WriteString("No entries logged this month.\n")
		if report.Reflection != "" {
			b.WriteString("\n## Reflection\n\n")
			b.WriteString(report.Reflection)
			b.WriteString("\n")
		}
		return b.String()
	}

	fmt.Fprintf(&b, "%d day(s) logged.\n\n", len(report.Days))

	b.WriteString("## Activity Averages\n\n")
	b.WriteString("| Activity | Average | Days |\n")
	b.WriteString("|----------|---------|------|\n")
	for _, avg := range report.Averages {
		fmt.Fprintf(&b, "| %s | %.1f | %d |\n", avg.Name, avg.Average, avg.Count)
	}
	b.WriteString("\n")

	b.WriteString("## Daily Scores\n\n")
	b.WriteString("| Date |")
	for _, activity := range report.Activities {
		fmt.Fprintf(&b, " %s |", activity.Name)
	}
	b.WriteString("\n|------|")
	for range report.Activities {
		b.WriteString("---|")
	}
	b.WriteString("\n")
	for _, day := range report.Days {
		fmt.Fprintf(&b, "| %s |", day.Date)
		for _, activity := range report.Activities {
			fmt.Fprintf(&b, " %d |", day.Scores[activity.ID])
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if report.Reflection != "" {
		b.WriteString("## Reflection\n\n")
		b.WriteString(report.Reflection)
		b.WriteString("\n")
	}

	return b.String()
}
