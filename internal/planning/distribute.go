package planning

import "labor-planner/internal/model"

// ResolveDistribution expands the global inbound/outbound pools into an applied
// volume per process. Every process is evaluated against the whole pool of its
// type and then scaled by its consideration factor, so processes of the same type
// are parallel, independently scaled flows rather than a partition of the pool.
// An empty pool yields zero applied volume.
func ResolveDistribution(in model.PlanningInput, processes []model.Process) map[string]float64 {
	applied := make(map[string]float64, len(processes))
	for _, p := range processes {
		pool := in.Pool(p.Type())
		applied[p.ID] = float64(pool) * in.VolumeFactor(p.ID)
	}
	return applied
}
