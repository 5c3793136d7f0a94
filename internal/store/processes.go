package store

import (
	"context"
	"fmt"
	"strings"

	"labor-planner/internal/model"

	"github.com/google/uuid"
)

// CreateProcess stores a new active process.
func (db *DB) CreateProcess(ctx context.Context, in model.ProcessInput) (model.Process, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return model.Process{}, fmt.Errorf("process name is required: %w", ErrInvalid)
	}

	now := db.now()
	p := model.Process{
		ID:          uuid.New().String(),
		Name:        name,
		Description: in.Description,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	_, err := db.sql.ExecContext(ctx,
		`INSERT INTO processes (id, name, description, active, created_at, updated_at) VALUES (?, ?, ?, 1, ?, ?)`,
		p.ID, p.Name, p.Description, now, now)
	if err != nil {
		return model.Process{}, err
	}
	return p, nil
}

// ListProcesses returns processes in registration order. Deactivated processes
// are left out unless includeInactive is set.
func (db *DB) ListProcesses(ctx context.Context, includeInactive bool) ([]model.Process, error) {
	query := `SELECT id, name, description, active, created_at, updated_at FROM processes`
	if !includeInactive {
		query += ` WHERE active = 1`
	}
	query += ` ORDER BY rowid`

	rows, err := db.sql.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	processes := []model.Process{}
	for rows.Next() {
		var p model.Process
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Active, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		processes = append(processes, p)
	}
	return processes, rows.Err()
}

// GetProcess fetches one process, active or not.
func (db *DB) GetProcess(ctx context.Context, id string) (model.Process, error) {
	var p model.Process
	err := db.sql.QueryRowContext(ctx,
		`SELECT id, name, description, active, created_at, updated_at FROM processes WHERE id = ?`, id).
		Scan(&p.ID, &p.Name, &p.Description, &p.Active, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return model.Process{}, notFound(err, "process", id)
	}
	return p, nil
}

// UpdateProcess replaces name and description.
func (db *DB) UpdateProcess(ctx context.Context, id string, in model.ProcessInput) (model.Process, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return model.Process{}, fmt.Errorf("process name is required: %w", ErrInvalid)
	}
	res, err := db.sql.ExecContext(ctx,
		`UPDATE processes SET name = ?, description = ?, updated_at = ? WHERE id = ?`,
		name, in.Description, db.now(), id)
	if err != nil {
		return model.Process{}, err
	}
	if err := checkAffected(res, "process", id); err != nil {
		return model.Process{}, err
	}
	return db.GetProcess(ctx, id)
}

// DeactivateProcess is a soft delete: the row stays but leaves the catalog.
func (db *DB) DeactivateProcess(ctx context.Context, id string) error {
	res, err := db.sql.ExecContext(ctx,
		`UPDATE processes SET active = 0, updated_at = ? WHERE id = ? AND active = 1`, db.now(), id)
	if err != nil {
		return err
	}
	return checkAffected(res, "process", id)
}
