package memory

import (
	"context"
	"sync"

	"maisonpro_dispatch/internal/domain/entities"
	"maisonpro_dispatch/internal/usecase/interfaces"
)

// TechnicianMemoryRepository keeps the technician roster in process memory.
// Same contract as the job repository; technicians are never deleted in
// normal operation so there is no Delete.

type TechnicianMemoryRepository struct {
	mu    sync.RWMutex
	byID  map[string]entities.Technician
	order []string
}

var _ interfaces.ITechnicianRepository = (*TechnicianMemoryRepository)(nil)

func NewTechnicianMemoryRepository() *TechnicianMemoryRepository {
	return &TechnicianMemoryRepository{byID: make(map[string]entities.Technician)}
}

func (r *TechnicianMemoryRepository) Create(_ context.Context, tech entities.Technician) (entities.Technician, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[tech.ID]; !exists {
		r.order = append(r.order, tech.ID)
	}
	r.byID[tech.ID] = tech
	return tech, nil
}

func (r *TechnicianMemoryRepository) GetByID(_ context.Context, id string) (entities.Technician, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byID[id], nil
}

func (r *TechnicianMemoryRepository) List(_ context.Context, division entities.Division) ([]entities.Technician, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Technician, 0, len(r.order))
	for _, id := range r.order {
		tech := r.byID[id]
		if division != "" && tech.Division != division {
			continue
		}
		out = append(out, tech)
	}
	return out, nil
}

func (r *TechnicianMemoryRepository) Save(_ context.Context, tech entities.Technician) (entities.Technician, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[tech.ID]; !exists {
		return entities.Technician{}, nil
	}
	r.byID[tech.ID] = tech
	return tech, nil
}
