// Package report reduces a month of assignments into one summary row per
// reten for the monthly report view and its exports.
package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/opsdesk/reten-ops/pkg/db"
)

// AssignmentDetail is the drill-down tuple kept on each report row
type AssignmentDetail struct {
	Date      string
	UnitName  string
	StartTime string
	EndTime   string
}

// Row is one monthly report row. Only retenes with at least one assignment in
// the month get a row.
type Row struct {
	RetenID          string
	Name             string
	DNI              string
	Phone            string
	TotalAssignments int
	TotalHours       float64
	UnitsCovered     int
	Assignments      []AssignmentDetail
}

// MonthRange returns the inclusive "2006-01-02" bounds of a calendar month
func MonthRange(year int, month time.Month) (startDate, endDate string) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first.Format("2006-01-02"), last.Format("2006-01-02")
}

// Monthly aggregates assignments (already restricted to one calendar month)
// into per-reten rows: assignment count, total hours, distinct units covered,
// and the raw detail tuples in fetch order. Negative durations from malformed
// time windows are summed as-is. Rows are sorted by reten name.
func Monthly(assignments []db.Assignment, retenes []db.Reten) []Row {
	retenesByID := make(map[string]db.Reten, len(retenes))
	for _, r := range retenes {
		retenesByID[r.ID] = r
	}

	rowsByReten := make(map[string]*Row)
	unitsByReten := make(map[string]map[string]bool)
	order := make([]string, 0)

	for _, a := range assignments {
		row, exists := rowsByReten[a.RetenID]
		if !exists {
			row = &Row{RetenID: a.RetenID}
			if r, ok := retenesByID[a.RetenID]; ok {
				row.Name = r.Name
				row.DNI = r.DNI
				row.Phone = r.Phone
			}
			rowsByReten[a.RetenID] = row
			unitsByReten[a.RetenID] = make(map[string]bool)
			order = append(order, a.RetenID)
		}

		row.TotalAssignments++
		row.TotalHours += durationHours(a.StartTime, a.EndTime)
		unitsByReten[a.RetenID][a.UnitID] = true
		row.Assignments = append(row.Assignments, AssignmentDetail{
			Date:      a.Date,
			UnitName:  a.UnitName,
			StartTime: a.StartTime,
			EndTime:   a.EndTime,
		})
	}

	rows := make([]Row, 0, len(order))
	for _, retenID := range order {
		row := rowsByReten[retenID]
		row.UnitsCovered = len(unitsByReten[retenID])
		rows = append(rows, *row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Name < rows[j].Name
	})

	return rows
}

// DetailString joins the drill-down tuples into the single export column,
// one "date unit (start-end)" entry per assignment separated by "; "
func (r Row) DetailString() string {
	out := ""
	for i, d := range r.Assignments {
		if i > 0 {
			out += "; "
		}
		out += fmt.Sprintf("%s %s (%s-%s)", d.Date, d.UnitName, d.StartTime, d.EndTime)
	}
	return out
}

// durationHours computes (end - start) in hours from "15:04" wall-clock
// strings. Unparseable values contribute zero.
func durationHours(startTime, endTime string) float64 {
	start, err := time.Parse("15:04", startTime)
	if err != nil {
		return 0
	}
	end, err := time.Parse("15:04", endTime)
	if err != nil {
		return 0
	}
	return end.Sub(start).Hours()
}
