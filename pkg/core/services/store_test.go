package services

import (
	"context"
	"fmt"

	"github.com/opsdesk/reten-ops/pkg/db"
)

// fakeStore is an in-memory store used by the service tests
type fakeStore struct {
	retenes     []db.Reten
	assignments []db.Assignment

	failRetenes     error
	failAssignments error
	failUpdate      error
	failInsert      error

	updates []db.AssignmentPatch
	inserts []db.Assignment
}

func (f *fakeStore) GetRetenes(ctx context.Context) ([]db.Reten, error) {
	if f.failRetenes != nil {
		return nil, f.failRetenes
	}
	return f.retenes, nil
}

func (f *fakeStore) GetReten(ctx context.Context, id string) (*db.Reten, error) {
	if f.failRetenes != nil {
		return nil, f.failRetenes
	}
	for i := range f.retenes {
		if f.retenes[i].ID == id {
			return &f.retenes[i], nil
		}
	}
	return nil, &db.NotFoundError{Entity: "reten", ID: id}
}

func (f *fakeStore) GetAssignmentsInRange(ctx context.Context, startDate, endDate string) ([]db.Assignment, error) {
	if f.failAssignments != nil {
		return nil, f.failAssignments
	}
	var inRange []db.Assignment
	for _, a := range f.assignments {
		if a.Date >= startDate && a.Date <= endDate {
			inRange = append(inRange, a)
		}
	}
	return inRange, nil
}

func (f *fakeStore) GetAssignment(ctx context.Context, id string) (*db.Assignment, error) {
	if f.failAssignments != nil {
		return nil, f.failAssignments
	}
	for i := range f.assignments {
		if f.assignments[i].ID == id {
			return &f.assignments[i], nil
		}
	}
	return nil, &db.NotFoundError{Entity: "assignment", ID: id}
}

func (f *fakeStore) InsertAssignment(ctx context.Context, assignment *db.Assignment) error {
	if f.failInsert != nil {
		return f.failInsert
	}
	if err := db.ValidateAssignment(assignment); err != nil {
		return err
	}
	assignment.ConstancyCode = fmt.Sprintf("RET-2024-%04d", len(f.inserts)+1)
	f.inserts = append(f.inserts, *assignment)
	f.assignments = append(f.assignments, *assignment)
	return nil
}

func (f *fakeStore) UpdateAssignment(ctx context.Context, id string, patch db.AssignmentPatch) (*db.Assignment, error) {
	if f.failUpdate != nil {
		return nil, f.failUpdate
	}
	for i := range f.assignments {
		if f.assignments[i].ID == id {
			merged := f.assignments[i]
			patch.Apply(&merged)
			if err := db.ValidateAssignment(&merged); err != nil {
				return nil, err
			}
			f.assignments[i] = merged
			f.updates = append(f.updates, patch)
			return &f.assignments[i], nil
		}
	}
	return nil, &db.NotFoundError{Entity: "assignment", ID: id}
}
