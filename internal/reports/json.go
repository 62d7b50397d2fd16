// Package reports provides monthly report generation for the fencing app.
package reports

import (
	"encoding/json"
)

// FormatMonthlyJSON formats a monthly report as JSON.
func FormatMonthlyJSON(report *MonthlyReport) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}
