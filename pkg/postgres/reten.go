package postgres

import (
	"context"
	"fmt"

	"github.com/opsdesk/reten-ops/pkg/db"
)

// GetRetenes retrieves all roster entries, ordered by name for display
func (d *DB) GetRetenes(ctx context.Context) ([]db.Reten, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, name, dni, phone, email, photo_url, notes, status
		FROM reten
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query retenes: %w", err)
	}
	defer rows.Close()

	var retenes []db.Reten
	for rows.Next() {
		r, err := scanReten(rows.Scan)
		if err != nil {
			return nil, err
		}
		retenes = append(retenes, *r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating retenes: %w", err)
	}

	return retenes, nil
}

// GetReten retrieves a single roster entry by id
func (d *DB) GetReten(ctx context.Context, id string) (*db.Reten, error) {
	row := d.pool.QueryRow(ctx, `
		SELECT id, name, dni, phone, email, photo_url, notes, status
		FROM reten
		WHERE id = $1
	`, id)

	r, err := scanReten(row.Scan)
	if err != nil {
		if isNoRows(err) {
			return nil, &db.NotFoundError{Entity: "reten", ID: id}
		}
		return nil, err
	}
	return r, nil
}

// InsertReten validates and inserts a new roster entry
func (d *DB) InsertReten(ctx context.Context, reten *db.Reten) error {
	if err := db.ValidateReten(reten); err != nil {
		return err
	}

	_, err := d.pool.Exec(ctx, `
		INSERT INTO reten (id, name, dni, phone, email, photo_url, notes, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, reten.ID, reten.Name, reten.DNI, reten.Phone,
		nullable(reten.Email), nullable(reten.PhotoURL), nullable(reten.Notes), reten.Status)
	if err != nil {
		return fmt.Errorf("failed to insert reten: %w", err)
	}
	return nil
}

// UpdateReten validates and overwrites a roster entry. The full record is
// required; a missing id fails with NotFoundError.
func (d *DB) UpdateReten(ctx context.Context, reten *db.Reten) error {
	if err := db.ValidateReten(reten); err != nil {
		return err
	}

	tag, err := d.pool.Exec(ctx, `
		UPDATE reten
		SET name = $2, dni = $3, phone = $4, email = $5, photo_url = $6, notes = $7, status = $8
		WHERE id = $1
	`, reten.ID, reten.Name, reten.DNI, reten.Phone,
		nullable(reten.Email), nullable(reten.PhotoURL), nullable(reten.Notes), reten.Status)
	if err != nil {
		return fmt.Errorf("failed to update reten: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return &db.NotFoundError{Entity: "reten", ID: reten.ID}
	}
	return nil
}

// DeleteReten removes a roster entry outright. Deleting a reten that still
// has assignments fails on the foreign key and is surfaced to the caller.
func (d *DB) DeleteReten(ctx context.Context, id string) error {
	tag, err := d.pool.Exec(ctx, `DELETE FROM reten WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete reten: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return &db.NotFoundError{Entity: "reten", ID: id}
	}
	return nil
}

// scanReten scans one reten row; scan is either rows.Scan or row.Scan
func scanReten(scan func(dest ...any) error) (*db.Reten, error) {
	var r db.Reten
	var email, photoURL, notes *string
	if err := scan(&r.ID, &r.Name, &r.DNI, &r.Phone, &email, &photoURL, &notes, &r.Status); err != nil {
		return nil, fmt.Errorf("failed to scan reten: %w", err)
	}
	if email != nil {
		r.Email = *email
	}
	if photoURL != nil {
		r.PhotoURL = *photoURL
	}
	if notes != nil {
		r.Notes = *notes
	}
	return &r, nil
}

// nullable maps an empty string to NULL
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
