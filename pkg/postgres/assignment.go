package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/opsdesk/reten-ops/pkg/db"
)

const assignmentColumns = `id, reten_id, unit_id, unit_name, assignment_date,
	start_time, end_time, assignment_type, reason, notes, constancy_code, notified`

// GetAssignmentsInRange retrieves all assignments whose date falls within the
// inclusive [startDate, endDate] range, ordered by date then start time
func (d *DB) GetAssignmentsInRange(ctx context.Context, startDate, endDate string) ([]db.Assignment, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT `+assignmentColumns+`
		FROM reten_assignment
		WHERE assignment_date >= $1 AND assignment_date <= $2
		ORDER BY assignment_date, start_time
	`, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments: %w", err)
	}
	defer rows.Close()

	var assignments []db.Assignment
	for rows.Next() {
		a, err := scanAssignment(rows.Scan)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, *a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assignments: %w", err)
	}

	return assignments, nil
}

// GetAssignment retrieves a single assignment by id
func (d *DB) GetAssignment(ctx context.Context, id string) (*db.Assignment, error) {
	row := d.pool.QueryRow(ctx, `
		SELECT `+assignmentColumns+`
		FROM reten_assignment
		WHERE id = $1
	`, id)

	a, err := scanAssignment(row.Scan)
	if err != nil {
		if isNoRows(err) {
			return nil, &db.NotFoundError{Entity: "assignment", ID: id}
		}
		return nil, err
	}
	return a, nil
}

// InsertAssignment validates and inserts a new assignment. The constancy code
// is issued by the database on insert and written back into the record.
func (d *DB) InsertAssignment(ctx context.Context, assignment *db.Assignment) error {
	if err := db.ValidateAssignment(assignment); err != nil {
		return err
	}

	err := d.pool.QueryRow(ctx, `
		INSERT INTO reten_assignment
			(id, reten_id, unit_id, unit_name, assignment_date, start_time, end_time,
			 assignment_type, reason, notes, constancy_code, notified)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			'RET-' || to_char(NOW(), 'YYYY') || '-' || lpad(nextval('reten_constancy_seq')::text, 4, '0'),
			$11)
		RETURNING constancy_code
	`, assignment.ID, assignment.RetenID, assignment.UnitID, assignment.UnitName,
		assignment.Date, assignment.StartTime, assignment.EndTime, assignment.Type,
		nullable(assignment.Reason), nullable(assignment.Notes), assignment.Notified,
	).Scan(&assignment.ConstancyCode)
	if err != nil {
		return fmt.Errorf("failed to insert assignment: %w", err)
	}
	return nil
}

// UpdateAssignment applies a partial patch to an assignment. The patch is
// merged into the current record and the result validated before any write,
// so a patch cannot blank or malform a mandatory field. Only non-nil patch
// fields are written; the persisted record is returned.
func (d *DB) UpdateAssignment(ctx context.Context, id string, patch db.AssignmentPatch) (*db.Assignment, error) {
	current, err := d.GetAssignment(ctx, id)
	if err != nil {
		return nil, err
	}
	merged := *current
	patch.Apply(&merged)
	if err := db.ValidateAssignment(&merged); err != nil {
		return nil, err
	}

	sets := make([]string, 0, 9)
	args := []any{id}

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.UnitID != nil {
		add("unit_id", *patch.UnitID)
	}
	if patch.UnitName != nil {
		add("unit_name", *patch.UnitName)
	}
	if patch.Date != nil {
		add("assignment_date", *patch.Date)
	}
	if patch.StartTime != nil {
		add("start_time", *patch.StartTime)
	}
	if patch.EndTime != nil {
		add("end_time", *patch.EndTime)
	}
	if patch.Type != nil {
		add("assignment_type", *patch.Type)
	}
	if patch.Reason != nil {
		add("reason", nullable(*patch.Reason))
	}
	if patch.Notes != nil {
		add("notes", nullable(*patch.Notes))
	}
	if patch.Notified != nil {
		add("notified", *patch.Notified)
	}

	if len(sets) == 0 {
		return current, nil
	}

	row := d.pool.QueryRow(ctx, `
		UPDATE reten_assignment
		SET `+strings.Join(sets, ", ")+`
		WHERE id = $1
		RETURNING `+assignmentColumns,
		args...)

	a, err := scanAssignment(row.Scan)
	if err != nil {
		if isNoRows(err) {
			return nil, &db.NotFoundError{Entity: "assignment", ID: id}
		}
		return nil, err
	}
	return a, nil
}

// DeleteAssignment removes an assignment outright (no soft delete)
func (d *DB) DeleteAssignment(ctx context.Context, id string) error {
	tag, err := d.pool.Exec(ctx, `DELETE FROM reten_assignment WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return &db.NotFoundError{Entity: "assignment", ID: id}
	}
	return nil
}

// scanAssignment scans one assignment row; scan is either rows.Scan or row.Scan
func scanAssignment(scan func(dest ...any) error) (*db.Assignment, error) {
	var a db.Assignment
	var date time.Time
	var reason, notes *string
	if err := scan(&a.ID, &a.RetenID, &a.UnitID, &a.UnitName, &date,
		&a.StartTime, &a.EndTime, &a.Type, &reason, &notes, &a.ConstancyCode, &a.Notified); err != nil {
		return nil, fmt.Errorf("failed to scan assignment: %w", err)
	}
	a.Date = date.Format("2006-01-02")
	if reason != nil {
		a.Reason = *reason
	}
	if notes != nil {
		a.Notes = *notes
	}
	return &a, nil
}
