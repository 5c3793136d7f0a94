package catalog

import (
	"context"
	"errors"

	"labor-planner/internal/model"
	"labor-planner/internal/store"
)

// StoreSource reads the catalog from the local sqlite store.
type StoreSource struct {
	DB *store.DB
}

func (s StoreSource) ListProcesses(ctx context.Context) ([]model.Process, error) {
	return s.DB.ListProcesses(ctx, false)
}

func (s StoreSource) ProductivityByProcess(ctx context.Context, processID string) (*model.ProductivityProfile, error) {
	p, err := s.DB.GetProductivityByProcess(ctx, processID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
