package memory

import (
	"context"
	"sync"

	"maisonpro_dispatch/internal/domain/entities"
	"maisonpro_dispatch/internal/usecase/interfaces"
)

// ClientMemoryRepository keeps the client registry in process memory.
// Clients are never deleted.

type ClientMemoryRepository struct {
	mu    sync.RWMutex
	byID  map[string]entities.Client
	order []string
}

var _ interfaces.IClientRepository = (*ClientMemoryRepository)(nil)

func NewClientMemoryRepository() *ClientMemoryRepository {
	return &ClientMemoryRepository{byID: make(map[string]entities.Client)}
}

func (r *ClientMemoryRepository) Create(_ context.Context, c entities.Client) (entities.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[c.ID]; !exists {
		r.order = append(r.order, c.ID)
	}
	r.byID[c.ID] = c
	return c, nil
}

func (r *ClientMemoryRepository) GetByID(_ context.Context, id string) (entities.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byID[id], nil
}

func (r *ClientMemoryRepository) List(_ context.Context, division entities.Division) ([]entities.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Client, 0, len(r.order))
	for _, id := range r.order {
		c := r.byID[id]
		if division != "" && c.Division != division {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *ClientMemoryRepository) Save(_ context.Context, c entities.Client) (entities.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[c.ID]; !exists {
		return entities.Client{}, nil
	}
	r.byID[c.ID] = c
	return c, nil
}
