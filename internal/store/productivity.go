package store

import (
	"context"
	"errors"
	"fmt"

	"labor-planner/internal/model"

	"github.com/google/uuid"
)

// CreateProductivity registers the profile of a process. A process has at most one.
func (db *DB) CreateProductivity(ctx context.Context, in model.ProductivityInput) (model.ProductivityProfile, error) {
	if err := in.Validate(); err != nil {
		return model.ProductivityProfile{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := db.GetProcess(ctx, in.ProcessID); err != nil {
		return model.ProductivityProfile{}, err
	}
	if _, err := db.GetProductivityByProcess(ctx, in.ProcessID); err == nil {
		return model.ProductivityProfile{}, fmt.Errorf("productivity for process %s: %w", in.ProcessID, ErrConflict)
	} else if !errors.Is(err, ErrNotFound) {
		return model.ProductivityProfile{}, err
	}

	now := db.now()
	p := model.ProductivityProfile{
		ID:                      uuid.New().String(),
		ProcessID:               in.ProcessID,
		TargetPerHour:           in.TargetPerHour,
		FatigueFactor:           in.FatigueFactor,
		DisplacementTimeMinutes: in.DisplacementTimeMinutes,
		CreatedAt:               now,
		UpdatedAt:               now,
	}
	_, err := db.sql.ExecContext(ctx,
		`INSERT INTO productivity (id, process_id, target_per_hour, fatigue_factor, displacement_time_minutes, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.ProcessID, p.TargetPerHour, p.FatigueFactor, p.DisplacementTimeMinutes, now, now)
	if err != nil {
		return model.ProductivityProfile{}, err
	}
	return p, nil
}

// UpdateProductivity replaces the rates of an existing profile.
func (db *DB) UpdateProductivity(ctx context.Context, id string, in model.ProductivityInput) (model.ProductivityProfile, error) {
	existing, err := db.getProductivity(ctx, `id = ?`, id)
	if err != nil {
		return model.ProductivityProfile{}, notFound(err, "productivity", id)
	}
	if in.ProcessID == "" {
		in.ProcessID = existing.ProcessID
	}
	if in.ProcessID != existing.ProcessID {
		return model.ProductivityProfile{}, fmt.Errorf("productivity %s belongs to process %s: %w", id, existing.ProcessID, ErrInvalid)
	}
	if err := in.Validate(); err != nil {
		return model.ProductivityProfile{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	now := db.now()
	_, err = db.sql.ExecContext(ctx,
		`UPDATE productivity SET target_per_hour = ?, fatigue_factor = ?, displacement_time_minutes = ?, updated_at = ? WHERE id = ?`,
		in.TargetPerHour, in.FatigueFactor, in.DisplacementTimeMinutes, now, id)
	if err != nil {
		return model.ProductivityProfile{}, err
	}
	existing.TargetPerHour = in.TargetPerHour
	existing.FatigueFactor = in.FatigueFactor
	existing.DisplacementTimeMinutes = in.DisplacementTimeMinutes
	existing.UpdatedAt = now
	return existing, nil
}

// GetProductivityByProcess returns ErrNotFound when the process has no profile.
func (db *DB) GetProductivityByProcess(ctx context.Context, processID string) (model.ProductivityProfile, error) {
	p, err := db.getProductivity(ctx, `process_id = ?`, processID)
	if err != nil {
		return model.ProductivityProfile{}, notFound(err, "productivity for process", processID)
	}
	return p, nil
}

func (db *DB) getProductivity(ctx context.Context, where string, arg string) (model.ProductivityProfile, error) {
	var p model.ProductivityProfile
	err := db.sql.QueryRowContext(ctx,
		`SELECT id, process_id, target_per_hour, fatigue_factor, displacement_time_minutes, created_at, updated_at
		 FROM productivity WHERE `+where, arg).
		Scan(&p.ID, &p.ProcessID, &p.TargetPerHour, &p.FatigueFactor, &p.DisplacementTimeMinutes, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}
