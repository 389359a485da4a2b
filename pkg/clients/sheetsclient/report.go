package sheetsclient

import (
	"fmt"
	"time"
)

// MonthlyReportSheet is the spreadsheet-ready form of a monthly report:
// a fixed header row plus one row per reten.
type MonthlyReportSheet struct {
	Year  int
	Month time.Month
	Rows  [][]interface{}
}

// ReportHeader is the fixed column order of the exported monthly report
var ReportHeader = []interface{}{
	"Person", "National-ID", "Phone", "Total Assignments", "Total Hours", "Units Covered", "Assignment Detail",
}

// PublishMonthlyReport writes a monthly report to its own tab named
// "Retenes YYYY-MM". An existing tab for the same month is overwritten in
// place so re-exports stay idempotent.
func (c *Client) PublishMonthlyReport(spreadsheetID string, report *MonthlyReportSheet) error {
	tabTitle := fmt.Sprintf("Retenes %04d-%02d", report.Year, report.Month)

	exists, err := c.sheetExists(spreadsheetID, tabTitle)
	if err != nil {
		return err
	}
	if !exists {
		if _, err := c.CreateSheet(spreadsheetID, tabTitle); err != nil {
			return fmt.Errorf("failed to create report tab: %w", err)
		}
	}

	values := make([][]interface{}, 0, len(report.Rows)+1)
	values = append(values, ReportHeader)
	values = append(values, report.Rows...)

	if err := c.UpdateValues(spreadsheetID, fmt.Sprintf("'%s'!A1", tabTitle), values); err != nil {
		return fmt.Errorf("failed to write report rows: %w", err)
	}

	return nil
}
