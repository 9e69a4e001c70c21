package interfaces

import (
	"context"
	"maisonpro_dispatch/internal/domain/entities"
)

// IClientRepository abstracts the in-memory client registry.

type IClientRepository interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	List(ctx context.Context, division entities.Division) ([]entities.Client, error)
	Save(ctx context.Context, c entities.Client) (entities.Client, error)
}
