package memory

import (
	"context"
	"sync"

	"maisonpro_dispatch/internal/domain/entities"
	"maisonpro_dispatch/internal/usecase/interfaces"
)

// JobMemoryRepository keeps jobs in process memory.
//
// Contract:
//   - insertion order is preserved for List
//   - an empty division lists everything (fail-open for admin views)
//   - Save is last-write-wins and never creates a record
//   - the collection resets on restart (no durable backend for jobs)

type JobMemoryRepository struct {
	mu    sync.RWMutex
	byID  map[string]entities.Job
	order []string
}

var _ interfaces.IJobRepository = (*JobMemoryRepository)(nil)

func NewJobMemoryRepository() *JobMemoryRepository {
	return &JobMemoryRepository{byID: make(map[string]entities.Job)}
}

func (r *JobMemoryRepository) Create(_ context.Context, j entities.Job) (entities.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[j.ID]; !exists {
		r.order = append(r.order, j.ID)
	}
	r.byID[j.ID] = j
	return j, nil
}

func (r *JobMemoryRepository) GetByID(_ context.Context, id string) (entities.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byID[id], nil
}

func (r *JobMemoryRepository) List(_ context.Context, division entities.Division) ([]entities.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Job, 0, len(r.order))
	for _, id := range r.order {
		j := r.byID[id]
		if division != "" && j.Division != division {
			continue
		}
		out = append(out, j)
	}
	return out, nil
}

func (r *JobMemoryRepository) Save(_ context.Context, j entities.Job) (entities.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[j.ID]; !exists {
		return entities.Job{}, nil
	}
	r.byID[j.ID] = j
	return j, nil
}

func (r *JobMemoryRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[id]; !exists {
		return false, nil
	}
	delete(r.byID, id)
	for i, other := range r.order {
		if other == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true, nil
}
