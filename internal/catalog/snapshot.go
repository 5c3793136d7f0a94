package catalog

import (
	"context"
	"fmt"
	"log"

	"labor-planner/internal/model"

	"golang.org/x/sync/errgroup"
)

// Source is where the process catalog and productivity profiles are read from.
type Source interface {
	ListProcesses(ctx context.Context) ([]model.Process, error)
	// ProductivityByProcess returns (nil, nil) when the process has no profile.
	ProductivityByProcess(ctx context.Context, processID string) (*model.ProductivityProfile, error)
}

// Snapshot is an immutable view of the catalog taken for one calculation.
type Snapshot struct {
	processes []model.Process
	profiles  map[string]model.ProductivityProfile
}

// NewSnapshot copies processes (keeping their order) and indexes profiles by process.
func NewSnapshot(processes []model.Process, profiles []model.ProductivityProfile) *Snapshot {
	s := &Snapshot{
		processes: append([]model.Process(nil), processes...),
		profiles:  make(map[string]model.ProductivityProfile, len(profiles)),
	}
	for _, p := range profiles {
		s.profiles[p.ProcessID] = p
	}
	return s
}

// Processes returns the catalog in its original order.
func (s *Snapshot) Processes() []model.Process {
	return append([]model.Process(nil), s.processes...)
}

// Profile looks up the productivity profile of a process.
func (s *Snapshot) Profile(processID string) (model.ProductivityProfile, bool) {
	p, ok := s.profiles[processID]
	return p, ok
}

// Len is the number of processes.
func (s *Snapshot) Len() int {
	return len(s.processes)
}

// Load reads the whole catalog from src. Profiles are fetched concurrently, at
// most concurrency at a time.
func Load(ctx context.Context, src Source, concurrency int) (*Snapshot, error) {
	processes, err := src.ListProcesses(ctx)
	if err != nil {
		return nil, fmt.Errorf("load processes: %w", err)
	}
	if concurrency <= 0 {
		concurrency = 4
	}

	found := make([]*model.ProductivityProfile, len(processes))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, p := range processes {
		g.Go(func() error {
			profile, err := src.ProductivityByProcess(gctx, p.ID)
			if err != nil {
				return fmt.Errorf("load productivity for process %s: %w", p.ID, err)
			}
			found[i] = profile
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	profiles := make([]model.ProductivityProfile, 0, len(found))
	for i, p := range found {
		if p == nil {
			continue
		}
		if p.ProcessID == "" {
			p.ProcessID = processes[i].ID
		}
		profiles = append(profiles, *p)
	}
	log.Printf("📚 Catalog snapshot: %d processes, %d productivity profiles", len(processes), len(profiles))
	return NewSnapshot(processes, profiles), nil
}
