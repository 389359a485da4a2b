package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/opsdesk/reten-ops/pkg/core/week"
	"github.com/opsdesk/reten-ops/pkg/db"
)

// WeekEntry is one assignment on the weekly calendar with its reten resolved
type WeekEntry struct {
	Assignment db.Assignment
	RetenName  string
}

// WeekDay is one calendar day of the week view
type WeekDay struct {
	Date    time.Time
	Entries []WeekEntry
}

// WeekViewResult is one Monday-aligned week of assignments, bucketed by day,
// plus the ready-to-copy summary text block
type WeekViewResult struct {
	WeekStart time.Time
	WeekEnd   time.Time
	Days      []WeekDay
	Summary   string
}

// WeekViewStore defines the database operations needed for the week view
type WeekViewStore interface {
	GetRetenes(ctx context.Context) ([]db.Reten, error)
	GetAssignmentsInRange(ctx context.Context, startDate, endDate string) ([]db.Assignment, error)
}

// WeekView fetches the assignments of the week starting at weekStart (which
// must be a Monday; use week.MondayOf on an arbitrary reference date) and
// buckets them by calendar day. Nothing is cached: every navigation step
// triggers a fresh fetch.
func WeekView(ctx context.Context, database WeekViewStore, logger *zap.Logger, weekStart time.Time) (*WeekViewResult, error) {
	weekStart = week.MondayOf(weekStart)
	weekEnd := weekStart.AddDate(0, 0, 6)

	logger.Debug("Fetching week view",
		zap.String("week_start", weekStart.Format(week.DateFormat)),
		zap.String("week_end", weekEnd.Format(week.DateFormat)))

	assignments, err := database.GetAssignmentsInRange(ctx,
		weekStart.Format(week.DateFormat), weekEnd.Format(week.DateFormat))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assignments: %w", err)
	}
	logger.Debug("Found assignments", zap.Int("count", len(assignments)))

	retenes, err := database.GetRetenes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch retenes: %w", err)
	}
	byID := retenesByID(retenes)

	buckets := week.BucketByDay(assignments, weekStart)
	days := make([]WeekDay, len(buckets))
	for i, bucket := range buckets {
		day := WeekDay{Date: bucket.Date}
		for _, a := range bucket.Assignments {
			name := byID[a.RetenID].Name
			if name == "" {
				logger.Warn("Assignment references unknown reten",
					zap.String("assignment_id", a.ID),
					zap.String("reten_id", a.RetenID))
				name = a.RetenID
			}
			day.Entries = append(day.Entries, WeekEntry{Assignment: a, RetenName: name})
		}
		days[i] = day
	}

	result := &WeekViewResult{
		WeekStart: weekStart,
		WeekEnd:   weekEnd,
		Days:      days,
	}
	result.Summary = weekSummary(result)

	logger.Debug("Week view built",
		zap.Int("assignments", len(assignments)),
		zap.Int("retenes", len(retenes)))

	return result, nil
}

// weekSummary renders the clipboard hand-off block: one line per assignment
// with reten name, unit, date and time range
func weekSummary(result *WeekViewResult) string {
	var sb strings.Builder
	for _, day := range result.Days {
		for _, entry := range day.Entries {
			a := entry.Assignment
			sb.WriteString(fmt.Sprintf("%s - %s - %s %s-%s\n",
				entry.RetenName, a.UnitName, displayDate(a.Date), a.StartTime, a.EndTime))
		}
	}
	return sb.String()
}
