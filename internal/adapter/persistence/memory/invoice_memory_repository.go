package memory

import (
	"context"
	"sync"

	"maisonpro_dispatch/internal/domain/entities"
	"maisonpro_dispatch/internal/usecase/interfaces"
)

// InvoiceMemoryRepository keeps invoices in process memory.

type InvoiceMemoryRepository struct {
	mu    sync.RWMutex
	byID  map[string]entities.Invoice
	order []string
}

var _ interfaces.IInvoiceRepository = (*InvoiceMemoryRepository)(nil)

func NewInvoiceMemoryRepository() *InvoiceMemoryRepository {
	return &InvoiceMemoryRepository{byID: make(map[string]entities.Invoice)}
}

func (r *InvoiceMemoryRepository) Create(_ context.Context, inv entities.Invoice) (entities.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[inv.ID]; !exists {
		r.order = append(r.order, inv.ID)
	}
	r.byID[inv.ID] = inv
	return inv, nil
}

func (r *InvoiceMemoryRepository) GetByID(_ context.Context, id string) (entities.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byID[id], nil
}

func (r *InvoiceMemoryRepository) List(_ context.Context, division entities.Division) ([]entities.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Invoice, 0, len(r.order))
	for _, id := range r.order {
		inv := r.byID[id]
		if division != "" && inv.Division != division {
			continue
		}
		out = append(out, inv)
	}
	return out, nil
}

func (r *InvoiceMemoryRepository) Save(_ context.Context, inv entities.Invoice) (entities.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[inv.ID]; !exists {
		return entities.Invoice{}, nil
	}
	r.byID[inv.ID] = inv
	return inv, nil
}
