package interfaces

import (
	"context"
	"maisonpro_dispatch/internal/domain/entities"
)

// IQuoteRepository abstracts the in-memory quote submission collection.
// Quotes carry no division, so List has no division parameter.

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.QuoteSubmission) (entities.QuoteSubmission, error)
	GetByID(ctx context.Context, id string) (entities.QuoteSubmission, error)
	List(ctx context.Context) ([]entities.QuoteSubmission, error)
	Save(ctx context.Context, q entities.QuoteSubmission) (entities.QuoteSubmission, error)
}

// IQuoteArchive is the externally durable slot for quote submissions.
//
// The archive is merged into the store at boot and written through on every
// mutation. Jobs, technicians, clients and invoices have no archive: they
// are memory-only and reset on restart.
type IQuoteArchive interface {
	ListAll(ctx context.Context) ([]entities.QuoteSubmission, error)
	Put(ctx context.Context, q entities.QuoteSubmission) error
}
