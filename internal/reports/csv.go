// Package reports provides monthly report generation for the fencing app.
package reports

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
)

// FormatMonthlyCSV renders a month as CSV: a Date column followed by one
// column per configured activity, one row per logged day in ascending order.
// Days without a log produce no row; missing scores render as 0.
func FormatMonthlyCSV(report *MonthlyReport) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := make([]string, 0, len(report.Activities)+1)
	header = append(header, "Date")
	for _, activity := range report.Activities {
		header = append(header, activity.Name)
	}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}

	for _, day := range report.Days {
		row := make([]string, 0, len(report.Activities)+1)
		row = append(row, day.Date)
		for _, activity := range report.Activities {
			row = append(row, strconv.Itoa(day.Scores[activity.ID]))
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row %s: %w", day.Date, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
