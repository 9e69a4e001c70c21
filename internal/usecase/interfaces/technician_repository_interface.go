package interfaces

import (
	"context"
	"maisonpro_dispatch/internal/domain/entities"
)

// ITechnicianRepository abstracts the in-memory technician roster.

type ITechnicianRepository interface {
	Create(ctx context.Context, tech entities.Technician) (entities.Technician, error)
	GetByID(ctx context.Context, id string) (entities.Technician, error)
	List(ctx context.Context, division entities.Division) ([]entities.Technician, error)
	Save(ctx context.Context, tech entities.Technician) (entities.Technician, error)
}
