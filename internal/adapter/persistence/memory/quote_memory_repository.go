package memory

import (
	"context"
	"sync"

	"maisonpro_dispatch/internal/domain/entities"
	"maisonpro_dispatch/internal/usecase/interfaces"
)

// QuoteMemoryRepository keeps quote submissions in process memory. The
// durable copy lives in the quote archive; this repository is the read
// model the rest of the core works against.

type QuoteMemoryRepository struct {
	mu    sync.RWMutex
	byID  map[string]entities.QuoteSubmission
	order []string
}

var _ interfaces.IQuoteRepository = (*QuoteMemoryRepository)(nil)

func NewQuoteMemoryRepository() *QuoteMemoryRepository {
	return &QuoteMemoryRepository{byID: make(map[string]entities.QuoteSubmission)}
}

func (r *QuoteMemoryRepository) Create(_ context.Context, q entities.QuoteSubmission) (entities.QuoteSubmission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[q.ID]; !exists {
		r.order = append(r.order, q.ID)
	}
	r.byID[q.ID] = q
	return q, nil
}

func (r *QuoteMemoryRepository) GetByID(_ context.Context, id string) (entities.QuoteSubmission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byID[id], nil
}

func (r *QuoteMemoryRepository) List(_ context.Context) ([]entities.QuoteSubmission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.QuoteSubmission, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

func (r *QuoteMemoryRepository) Save(_ context.Context, q entities.QuoteSubmission) (entities.QuoteSubmission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[q.ID]; !exists {
		return entities.QuoteSubmission{}, nil
	}
	r.byID[q.ID] = q
	return q, nil
}
