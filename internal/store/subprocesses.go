package store

import (
	"context"
	"fmt"
	"strings"

	"labor-planner/internal/model"

	"github.com/google/uuid"
)

// CreateSubProcess stores a sub-process under an existing process.
func (db *DB) CreateSubProcess(ctx context.Context, in model.SubProcessInput) (model.SubProcess, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return model.SubProcess{}, fmt.Errorf("sub-process name is required: %w", ErrInvalid)
	}
	if _, err := db.GetProcess(ctx, in.ProcessID); err != nil {
		return model.SubProcess{}, err
	}

	now := db.now()
	sp := model.SubProcess{
		ID:          uuid.New().String(),
		ProcessID:   in.ProcessID,
		Name:        name,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	_, err := db.sql.ExecContext(ctx,
		`INSERT INTO sub_processes (id, process_id, name, description, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
		sp.ID, sp.ProcessID, sp.Name, sp.Description, now, now)
	if err != nil {
		return model.SubProcess{}, err
	}
	return sp, nil
}

// ListSubProcesses returns the sub-processes of one process in creation order.
func (db *DB) ListSubProcesses(ctx context.Context, processID string) ([]model.SubProcess, error) {
	rows, err := db.sql.QueryContext(ctx,
		`SELECT id, process_id, name, description, created_at, updated_at FROM sub_processes WHERE process_id = ? ORDER BY rowid`,
		processID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subs := []model.SubProcess{}
	for rows.Next() {
		var sp model.SubProcess
		if err := rows.Scan(&sp.ID, &sp.ProcessID, &sp.Name, &sp.Description, &sp.CreatedAt, &sp.UpdatedAt); err != nil {
			return nil, err
		}
		subs = append(subs, sp)
	}
	return subs, rows.Err()
}

// UpdateSubProcess replaces name and description. The parent process cannot change.
func (db *DB) UpdateSubProcess(ctx context.Context, id string, in model.SubProcessInput) (model.SubProcess, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return model.SubProcess{}, fmt.Errorf("sub-process name is required: %w", ErrInvalid)
	}
	res, err := db.sql.ExecContext(ctx,
		`UPDATE sub_processes SET name = ?, description = ?, updated_at = ? WHERE id = ?`,
		name, in.Description, db.now(), id)
	if err != nil {
		return model.SubProcess{}, err
	}
	if err := checkAffected(res, "sub-process", id); err != nil {
		return model.SubProcess{}, err
	}

	var sp model.SubProcess
	err = db.sql.QueryRowContext(ctx,
		`SELECT id, process_id, name, description, created_at, updated_at FROM sub_processes WHERE id = ?`, id).
		Scan(&sp.ID, &sp.ProcessID, &sp.Name, &sp.Description, &sp.CreatedAt, &sp.UpdatedAt)
	if err != nil {
		return model.SubProcess{}, notFound(err, "sub-process", id)
	}
	return sp, nil
}

// DeleteSubProcess removes a sub-process.
func (db *DB) DeleteSubProcess(ctx context.Context, id string) error {
	res, err := db.sql.ExecContext(ctx, `DELETE FROM sub_processes WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return checkAffected(res, "sub-process", id)
}
