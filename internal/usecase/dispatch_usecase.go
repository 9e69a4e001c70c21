package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"maisonpro_dispatch/internal/domain/entities"
	"maisonpro_dispatch/internal/usecase/interfaces"
)

var ErrNoTechnicianAvailable = errors.New("no technician available")

// DispatchResult is the operator feedback for one auto-dispatch pass.
type DispatchResult struct {
	AssignedCount int
	Roster        []entities.Technician
}

// IDispatchUseCase runs the operator-triggered auto-dispatch.
//
// Contract:
//   - only division-scoped pending jobs without a technician are candidates
//   - zero candidates is a successful no-op ("nothing to assign")
//   - zero available technicians aborts the whole batch with
//     ErrNoTechnicianAvailable before any job changes state
//   - every pairing goes through the job lifecycle (pending → assigned), so
//     re-running only touches jobs still pending

type IDispatchUseCase interface {
	AutoDispatch(ctx context.Context, division entities.Division) (DispatchResult, error)
}

type DispatchUseCase struct {
	jobs     IJobUseCase
	jobRepo  interfaces.IJobRepository
	techRepo interfaces.ITechnicianRepository
	strategy interfaces.IAssignmentStrategy
}

var _ IDispatchUseCase = (*DispatchUseCase)(nil)

func NewDispatchUseCase(
	jobs IJobUseCase,
	jobRepo interfaces.IJobRepository,
	techRepo interfaces.ITechnicianRepository,
	strategy interfaces.IAssignmentStrategy,
) *DispatchUseCase {
	return &DispatchUseCase{jobs: jobs, jobRepo: jobRepo, techRepo: techRepo, strategy: strategy}
}

func (u *DispatchUseCase) AutoDispatch(ctx context.Context, division entities.Division) (DispatchResult, error) {
	if division != "" && !division.Valid() {
		return DispatchResult{}, ErrInvalidDivision
	}

	allJobs, err := u.jobRepo.List(ctx, division)
	if err != nil {
		return DispatchResult{}, err
	}
	pending := make([]entities.Job, 0, len(allJobs))
	for _, j := range allJobs {
		if j.Status == entities.JobStatusPending && j.TechnicianID == "" {
			pending = append(pending, j)
		}
	}
	if len(pending) == 0 {
		log.Printf("[dispatch][usecase] nothing to assign division=%s", division)
		return DispatchResult{}, nil
	}

	allTechs, err := u.techRepo.List(ctx, division)
	if err != nil {
		return DispatchResult{}, err
	}
	available := make([]entities.Technician, 0, len(allTechs))
	for _, tech := range allTechs {
		if tech.Status == entities.TechnicianStatusAvailable {
			available = append(available, tech)
		}
	}
	if len(available) == 0 {
		log.Printf("[dispatch][usecase] no technician available division=%s pending=%d", division, len(pending))
		return DispatchResult{}, ErrNoTechnicianAvailable
	}

	assigned := 0
	perTech := make(map[string]int, len(available))
	for _, p := range u.strategy.Pair(pending, available) {
		if _, err := u.jobs.Assign(ctx, p.Job.ID, p.Technician.ID); err != nil {
			return DispatchResult{}, err
		}
		assigned++
		perTech[p.Technician.ID]++
	}

	// The roster was captured before the pass, so the wraparound is not
	// disturbed by technicians going busy mid-pass.
	now := time.Now().UTC()
	for _, tech := range available {
		n := perTech[tech.ID]
		if n == 0 {
			continue
		}
		tech.Status = entities.TechnicianStatusBusy
		tech.JobsToday += n
		tech.UpdatedAt = now
		if _, err := u.techRepo.Save(ctx, tech); err != nil {
			log.Printf("[dispatch][usecase] roster update failed technician_id=%s err=%v", tech.ID, err)
		}
	}

	log.Printf("[dispatch][usecase] assigned=%d technicians=%d division=%s", assigned, len(available), division)
	return DispatchResult{AssignedCount: assigned, Roster: available}, nil
}
