package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/opsdesk/reten-ops/pkg/core/report"
)

// ReportMailer defines the mail collaborator for sharing report summaries
type ReportMailer interface {
	SendEmail(to, subject, body string) error
}

// EmailMonthlyReport builds the monthly report and mails a plain-text summary
func EmailMonthlyReport(
	ctx context.Context,
	database MonthlyReportStore,
	mailer ReportMailer,
	logger *zap.Logger,
	to string,
	year int,
	month time.Month,
) error {
	rows, err := MonthlyReport(ctx, database, logger, year, month)
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("Reporte mensual de retenes %04d-%02d", year, month)
	body := renderReportText(year, month, rows)

	if err := mailer.SendEmail(to, subject, body); err != nil {
		return fmt.Errorf("failed to email report: %w", err)
	}

	logger.Info("Monthly report emailed",
		zap.String("to", to),
		zap.Int("rows", len(rows)))

	return nil
}

func renderReportText(year int, month time.Month, rows []report.Row) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Reporte mensual de retenes %04d-%02d\n\n", year, month))
	if len(rows) == 0 {
		sb.WriteString("Sin asignaciones en el mes.\n")
		return sb.String()
	}
	for _, row := range rows {
		sb.WriteString(fmt.Sprintf("%s (DNI %s, tel %s): %d asignaciones, %.1f horas, %d unidades\n",
			row.Name, row.DNI, row.Phone, row.TotalAssignments, row.TotalHours, row.UnitsCovered))
		for _, d := range row.Assignments {
			sb.WriteString(fmt.Sprintf("  - %s %s (%s-%s)\n", displayDate(d.Date), d.UnitName, d.StartTime, d.EndTime))
		}
	}
	return sb.String()
}
