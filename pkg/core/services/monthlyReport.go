package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/opsdesk/reten-ops/pkg/core/report"
	"github.com/opsdesk/reten-ops/pkg/db"
)

// MonthlyReportStore defines the database operations needed for reporting
type MonthlyReportStore interface {
	GetRetenes(ctx context.Context) ([]db.Reten, error)
	GetAssignmentsInRange(ctx context.Context, startDate, endDate string) ([]db.Assignment, error)
}

// MonthlyReport fetches the assignments of one calendar month and reduces
// them into one summary row per reten. Retenes without assignments in the
// month do not appear.
func MonthlyReport(ctx context.Context, database MonthlyReportStore, logger *zap.Logger, year int, month time.Month) ([]report.Row, error) {
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("month must be between 1 and 12, got %d", month)
	}

	startDate, endDate := report.MonthRange(year, month)
	logger.Debug("Building monthly report",
		zap.Int("year", year),
		zap.Int("month", int(month)),
		zap.String("start", startDate),
		zap.String("end", endDate))

	assignments, err := database.GetAssignmentsInRange(ctx, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assignments: %w", err)
	}

	retenes, err := database.GetRetenes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch retenes: %w", err)
	}

	rows := report.Monthly(assignments, retenes)

	logger.Info("Monthly report built",
		zap.Int("year", year),
		zap.Int("month", int(month)),
		zap.Int("assignments", len(assignments)),
		zap.Int("rows", len(rows)))

	return rows, nil
}
