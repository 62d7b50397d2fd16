// Package reports provides monthly report generation for the fencing app.
package reports

import (
	"math"
	"sort"
	"strings"
	"time"

	"fencing/internal/storage"
)

// Generator creates reports from storage data.
type Generator struct {
	store *storage.Storage
}

// NewGenerator creates a new report generator.
func NewGenerator(store *storage.Storage) *Generator {
	return &Generator{store: store}
}

// GenerateMonthly loads the data document and builds the report for a
// YYYY-MM month.
func (g *Generator) GenerateMonthly(month string) (*MonthlyReport, error) {
	if err := storage.ValidateMonth(month); err != nil {
		return nil, err
	}
	data, err := g.store.Load()
	if err != nil {
		return nil, err
	}
	return BuildMonthly(data, month), nil
}

// BuildMonthly aggregates an in-memory document into a monthly report.
// Only currently configured activities appear; scores for deleted activities
// stay in the raw logs but are excluded here.
func BuildMonthly(data *storage.AppData, month string) *MonthlyReport {
	logs := monthLogs(data, month)

	averages := make([]ActivityAverage, 0, len(data.Activities))
	for _, activity := range data.Activities {
		sum, count := 0, 0
		for _, log := range logs {
			// Only logs with an explicit entry count toward the average.
			if score, ok := log.Scores[activity.ID]; ok {
				sum += score
				count++
			}
		}
		avg := 0.0
		if count > 0 {
			avg = round1(float64(sum) / float64(count))
		}
		averages = append(averages, ActivityAverage{
			ID:      activity.ID,
			Name:    activity.Name,
			Average: avg,
			Count:   count,
			Sum:     sum,
		})
	}
	// Descending by average; stable so equal averages keep activity order.
	sort.SliceStable(averages, func(i, j int) bool {
		return averages[i].Average > averages[j].Average
	})

	days := make([]DayEntry, 0, len(logs))
	for _, log := range logs {
		scores := make(map[string]int, len(data.Activities))
		for _, activity := range data.Activities {
			scores[activity.ID] = log.Scores[activity.ID]
		}
		days = append(days, DayEntry{Date: log.Date, Scores: scores})
	}

	activities := make([]storage.Activity, len(data.Activities))
	copy(activities, data.Activities)

	return &MonthlyReport{
		Month:       month,
		Activities:  activities,
		Averages:    averages,
		Days:        days,
		Reflection:  data.Reflections[month],
		GeneratedAt: time.Now(),
	}
}

// monthLogs returns the month's logs sorted by date ascending.
func monthLogs(data *storage.AppData, month string) []storage.DailyLog {
	var logs []storage.DailyLog
	for date, log := range data.Logs {
		if strings.HasPrefix(date, month+"-") {
			logs = append(logs, log)
		}
	}
	sort.Slice(logs, func(i, j int) bool {
		return logs[i].Date < logs[j].Date
	})
	return logs
}

// round1 rounds to one decimal place, half away from zero.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

// MonthOf returns the YYYY-MM month containing t.
func MonthOf(t time.Time) string {
	return t.Format("2006-01")
}

// PrevMonth and NextMonth step a YYYY-MM string by one calendar month.
// Invalid input is returned unchanged.
func PrevMonth(month string) string {
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return month
	}
	return t.AddDate(0, -1, 0).Format("2006-01")
}

func NextMonth(month string) string {
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return month
	}
	return t.AddDate(0, 1, 0).Format("2006-01")
}
