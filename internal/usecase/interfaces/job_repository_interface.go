package interfaces

import (
	"context"
	"maisonpro_dispatch/internal/domain/entities"
)

// IJobRepository abstracts the in-memory job collection.
//
// Not-found reads return a zero-value Job with a nil error; usecases map
// that to their own not-found sentinel. List with an empty division returns
// the full collection in insertion order.

type IJobRepository interface {
	Create(ctx context.Context, j entities.Job) (entities.Job, error)
	GetByID(ctx context.Context, id string) (entities.Job, error)
	List(ctx context.Context, division entities.Division) ([]entities.Job, error)
	Save(ctx context.Context, j entities.Job) (entities.Job, error)
	Delete(ctx context.Context, id string) (bool, error)
}
