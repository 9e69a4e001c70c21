package interfaces

import (
	"context"
	"maisonpro_dispatch/internal/domain/entities"
)

// IInvoiceRepository abstracts the in-memory invoice collection.

type IInvoiceRepository interface {
	Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	List(ctx context.Context, division entities.Division) ([]entities.Invoice, error)
	Save(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
}
