package planning

import (
	"errors"

	"labor-planner/internal/catalog"
	"labor-planner/internal/model"
)

// Result is the outcome of one calculation: rows for every process that could be
// computed, and one issue for every process that could not.
type Result struct {
	Rows   []model.ResultRow
	Issues []*ComputationError
}

// Calculate runs distribution, productivity and headcount for every process in
// the snapshot and aggregates the rows in catalog order. It has no side effects
// and is safe to call concurrently.
func Calculate(in model.PlanningInput, snap *catalog.Snapshot, policy SupportPolicy) Result {
	if policy == nil {
		policy = NoSupport{}
	}
	processes := snap.Processes()
	applied := ResolveDistribution(in, processes)

	var issues []*ComputationError
	computed := make(map[string]Headcount, len(processes))
	for _, p := range processes {
		hc, err := computeProcess(in, p, snap, applied[p.ID], policy)
		if err != nil {
			err.ProcessName = p.Name
			issues = append(issues, err)
			continue
		}
		computed[p.ID] = hc
	}

	return Result{
		Rows:   Aggregate(processes, applied, computed),
		Issues: issues,
	}
}

func computeProcess(in model.PlanningInput, p model.Process, snap *catalog.Snapshot, applied float64, policy SupportPolicy) (Headcount, *ComputationError) {
	profile, ok := snap.Profile(p.ID)
	if !ok {
		return Headcount{}, missingProfile(p.ID)
	}
	capacity, err := EffectiveCapacity(profile)
	if err != nil {
		return Headcount{}, asComputationError(p.ID, err)
	}
	hc, err := ComputeHeadcount(p.ID, HeadcountParams{
		AppliedVolume:        applied,
		CapacityPerHour:      capacity,
		DisplacementMinutes:  profile.DisplacementTimeMinutes,
		WorkingHoursPerShift: in.WorkingHoursPerShift,
		WorkedHoursPercent:   in.WorkedHoursPercent,
		AbsPercent:           in.AbsPercent,
		SupportFraction:      policy.SupportFraction(p),
	})
	if err != nil {
		return Headcount{}, asComputationError(p.ID, err)
	}
	return hc, nil
}

func asComputationError(processID string, err error) *ComputationError {
	var cerr *ComputationError
	if !errors.As(err, &cerr) {
		cerr = &ComputationError{Code: CodeInvalidProductivityProfile, Reason: err.Error()}
	}
	cerr.ProcessID = processID
	return cerr
}
