package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/opsdesk/reten-ops/pkg/clients/sheetsclient"
)

// ReportPublisher defines the spreadsheet-export collaborator
type ReportPublisher interface {
	PublishMonthlyReport(spreadsheetID string, report *sheetsclient.MonthlyReportSheet) error
}

// ExportMonthlyReport builds the monthly report and hands it to the
// spreadsheet-export collaborator with the fixed column layout
func ExportMonthlyReport(
	ctx context.Context,
	database MonthlyReportStore,
	publisher ReportPublisher,
	logger *zap.Logger,
	spreadsheetID string,
	year int,
	month time.Month,
) error {
	if spreadsheetID == "" {
		return fmt.Errorf("no report spreadsheet configured - set reportSheetID in the config file")
	}

	rows, err := MonthlyReport(ctx, database, logger, year, month)
	if err != nil {
		return err
	}

	sheet := &sheetsclient.MonthlyReportSheet{
		Year:  year,
		Month: month,
		Rows:  make([][]interface{}, 0, len(rows)),
	}
	for _, row := range rows {
		sheet.Rows = append(sheet.Rows, []interface{}{
			row.Name,
			row.DNI,
			row.Phone,
			row.TotalAssignments,
			row.TotalHours,
			row.UnitsCovered,
			row.DetailString(),
		})
	}

	if err := publisher.PublishMonthlyReport(spreadsheetID, sheet); err != nil {
		return fmt.Errorf("failed to publish report: %w", err)
	}

	logger.Info("Monthly report exported",
		zap.String("spreadsheet_id", spreadsheetID),
		zap.Int("rows", len(rows)))

	return nil
}
