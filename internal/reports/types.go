// Package reports provides monthly report generation for the fencing app.
// Reports aggregate daily activity scores into per-activity averages and a
// day-by-day series.
package reports

import (
	"time"

	"fencing/internal/storage"
)

// MonthlyReport contains aggregated data for a single YYYY-MM month.
type MonthlyReport struct {
	Month       string            `json:"month"`
	Activities  []storage.Activity `json:"activities"`
	Averages    []ActivityAverage `json:"averages"`
	Days        []DayEntry        `json:"days"`
	Reflection  string            `json:"reflection,omitempty"`
	GeneratedAt time.Time         `json:"generated_at"`
}

// ActivityAverage is one activity's monthly summary. Count is the number of
// logs carrying an explicit score for the activity; days without an entry do
// not dilute the average.
type ActivityAverage struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Average float64 `json:"average"` // rounded to one decimal
	Count   int     `json:"count"`
	Sum     int     `json:"sum"`
}

// DayEntry is one logged day within the month. Scores holds a value for
// every currently configured activity, defaulting to 0 where the log has no
// entry. Days without a log are simply absent, leaving gaps in the series.
type DayEntry struct {
	Date   string         `json:"date"`
	Scores map[string]int `json:"scores"`
}
