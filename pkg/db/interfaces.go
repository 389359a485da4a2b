package db

import "context"

// RetenStore defines the roster database operations
type RetenStore interface {
	GetRetenes(ctx context.Context) ([]Reten, error)
	GetReten(ctx context.Context, id string) (*Reten, error)
	InsertReten(ctx context.Context, reten *Reten) error
	UpdateReten(ctx context.Context, reten *Reten) error
	DeleteReten(ctx context.Context, id string) error
}

// AssignmentStore defines the assignment database operations.
// InsertAssignment fills in the ConstancyCode assigned by the persistence
// layer. UpdateAssignment applies a partial patch and returns the persisted
// record as it stands after the update.
type AssignmentStore interface {
	GetAssignmentsInRange(ctx context.Context, startDate, endDate string) ([]Assignment, error)
	GetAssignment(ctx context.Context, id string) (*Assignment, error)
	InsertAssignment(ctx context.Context, assignment *Assignment) error
	UpdateAssignment(ctx context.Context, id string, patch AssignmentPatch) (*Assignment, error)
	DeleteAssignment(ctx context.Context, id string) error
}

// Database defines the full set of database operations.
// The postgres.DB implementation satisfies this interface.
type Database interface {
	RetenStore
	AssignmentStore
}
