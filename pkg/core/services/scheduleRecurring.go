package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/teambition/rrule-go"
	"go.uber.org/zap"

	"github.com/opsdesk/reten-ops/pkg/db"
)

// maxRecurringOccurrences caps an expanded recurrence series so an unbounded
// rule cannot flood the assignment table
const maxRecurringOccurrences = 52

// ScheduleStore defines the database operations needed for recurring scheduling
type ScheduleStore interface {
	GetReten(ctx context.Context, id string) (*db.Reten, error)
	InsertAssignment(ctx context.Context, assignment *db.Assignment) error
}

// RecurringSeries describes a planned coverage series to expand
type RecurringSeries struct {
	RetenID   string
	UnitID    string
	UnitName  string
	RRule     string
	StartTime string
	EndTime   string
	Reason    string
}

// ScheduleRecurring expands an RFC 5545 recurrence rule into a series of
// planned assignments for one reten and unit. The rule must be bounded by
// COUNT or UNTIL; the expansion is additionally capped at 52 occurrences.
func ScheduleRecurring(ctx context.Context, database ScheduleStore, logger *zap.Logger, series RecurringSeries) ([]db.Assignment, error) {
	rule, err := rrule.StrToRRule(series.RRule)
	if err != nil {
		return nil, fmt.Errorf("invalid rrule: %w", err)
	}

	opts := rule.OrigOptions
	if opts.Count == 0 && opts.Until.IsZero() {
		return nil, fmt.Errorf("rrule must be bounded by COUNT or UNTIL")
	}

	reten, err := database.GetReten(ctx, series.RetenID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reten: %w", err)
	}

	// Iterate instead of materializing the whole series: a bounded-but-distant
	// UNTIL would otherwise expand fully just to be rejected by the cap
	next := rule.Iterator()
	occurrences := make([]time.Time, 0, maxRecurringOccurrences)
	for {
		occurrence, ok := next()
		if !ok {
			break
		}
		if len(occurrences) == maxRecurringOccurrences {
			return nil, fmt.Errorf("rrule produced more than %d occurrences, maximum is %d",
				maxRecurringOccurrences, maxRecurringOccurrences)
		}
		occurrences = append(occurrences, occurrence)
	}
	if len(occurrences) == 0 {
		return nil, fmt.Errorf("rrule produced no occurrences")
	}

	logger.Info("Expanding recurring series",
		zap.String("reten", reten.Name),
		zap.String("unit_id", series.UnitID),
		zap.String("rrule", series.RRule),
		zap.Int("occurrences", len(occurrences)))

	created := make([]db.Assignment, 0, len(occurrences))
	for _, occurrence := range occurrences {
		assignment := db.Assignment{
			ID:        uuid.New().String(),
			RetenID:   series.RetenID,
			UnitID:    series.UnitID,
			UnitName:  series.UnitName,
			Date:      occurrence.Format("2006-01-02"),
			StartTime: series.StartTime,
			EndTime:   series.EndTime,
			Type:      db.TypePlanned,
			Reason:    series.Reason,
		}

		if err := database.InsertAssignment(ctx, &assignment); err != nil {
			// Report what was already created so the caller can clean up
			return created, fmt.Errorf("failed to insert assignment for %s (created %d of %d): %w",
				assignment.Date, len(created), len(occurrences), err)
		}
		created = append(created, assignment)
	}

	logger.Info("Recurring series scheduled",
		zap.String("reten", reten.Name),
		zap.Int("created", len(created)),
		zap.String("first", created[0].Date),
		zap.String("last", created[len(created)-1].Date))

	return created, nil
}

// NextOccurrenceAfter returns the first occurrence of the rule strictly after
// the given time, for previewing a series before scheduling it
func NextOccurrenceAfter(rruleStr string, after time.Time) (time.Time, error) {
	rule, err := rrule.StrToRRule(rruleStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid rrule: %w", err)
	}
	return rule.After(after, false), nil
}
