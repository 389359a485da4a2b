package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/opsdesk/reten-ops/pkg/core/notify"
	"github.com/opsdesk/reten-ops/pkg/db"
)

// NotificationStore defines the database operations needed for notifications
type NotificationStore interface {
	GetAssignment(ctx context.Context, id string) (*db.Assignment, error)
	GetReten(ctx context.Context, id string) (*db.Reten, error)
	UpdateAssignment(ctx context.Context, id string, patch db.AssignmentPatch) (*db.Assignment, error)
}

// PrepareNotification loads an assignment and its reten and composes the
// messaging hand-off. It performs no dispatch itself: the caller opens the
// deep link in the external messaging app and then records the dispatch with
// MarkNotified.
func PrepareNotification(ctx context.Context, database NotificationStore, logger *zap.Logger, messagingHost, assignmentID string) (*notify.Handoff, error) {
	logger.Debug("Preparing notification", zap.String("assignment_id", assignmentID))

	assignment, err := database.GetAssignment(ctx, assignmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assignment: %w", err)
	}

	reten, err := database.GetReten(ctx, assignment.RetenID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reten: %w", err)
	}

	handoff, err := notify.Compose(*reten, *assignment, messagingHost)
	if err != nil {
		return nil, err
	}

	logger.Info("Notification composed",
		zap.String("assignment_id", assignmentID),
		zap.String("reten", reten.Name),
		zap.String("phone", handoff.Phone))

	return handoff, nil
}

// MarkNotified records the notification-dispatched flag after a successful
// hand-off. The update is best-effort bookkeeping: a failure here is logged
// and swallowed, because the hand-off itself already happened.
func MarkNotified(ctx context.Context, database NotificationStore, logger *zap.Logger, assignmentID string) {
	notified := true
	_, err := database.UpdateAssignment(ctx, assignmentID, db.AssignmentPatch{Notified: &notified})
	if err != nil {
		logger.Warn("Failed to record notification dispatch",
			zap.String("assignment_id", assignmentID),
			zap.Error(err))
		return
	}

	logger.Debug("Notification dispatch recorded", zap.String("assignment_id", assignmentID))
}
