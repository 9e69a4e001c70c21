package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"maisonpro_dispatch/internal/domain/entities"
	"maisonpro_dispatch/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidTechnicianID     = errors.New("invalid technician id")
	ErrTechnicianNotFound      = errors.New("technician not found")
	ErrMissingTechnicianName   = errors.New("missing technician name")
	ErrInvalidTechnicianStatus = errors.New("invalid technician status")
)

// TechnicianUpdate carries manual roster edits. Dispatch-driven changes
// (busy status, jobsToday) go through DispatchUseCase, not here.
type TechnicianUpdate struct {
	Status    *entities.TechnicianStatus
	Skills    *[]string
	Rating    *float64
	Latitude  *float64
	Longitude *float64
	Phone     *string
	Email     *string
}

type ITechnicianUseCase interface {
	Onboard(ctx context.Context, tech entities.Technician) (entities.Technician, error)
	GetByID(ctx context.Context, id string) (entities.Technician, error)
	List(ctx context.Context, division entities.Division) ([]entities.Technician, error)
	Update(ctx context.Context, id string, upd TechnicianUpdate) (entities.Technician, error)
}

type TechnicianUseCase struct {
	repo     interfaces.ITechnicianRepository
	notifier *Notifier
}

var _ ITechnicianUseCase = (*TechnicianUseCase)(nil)

func NewTechnicianUseCase(repo interfaces.ITechnicianRepository, notifier *Notifier) *TechnicianUseCase {
	return &TechnicianUseCase{repo: repo, notifier: notifier}
}

func (u *TechnicianUseCase) Onboard(ctx context.Context, tech entities.Technician) (entities.Technician, error) {
	tech.Name = strings.TrimSpace(tech.Name)
	if tech.Name == "" {
		return entities.Technician{}, ErrMissingTechnicianName
	}
	if !tech.Division.Valid() {
		return entities.Technician{}, ErrInvalidDivision
	}
	if tech.Status == "" {
		tech.Status = entities.TechnicianStatusAvailable
	}
	if !tech.Status.Valid() {
		return entities.Technician{}, ErrInvalidTechnicianStatus
	}

	now := time.Now().UTC()
	tech.ID = uuid.NewString()
	tech.JobsToday = 0
	tech.JobsCompleted = 0
	tech.CreatedAt = now
	tech.UpdatedAt = now

	created, err := u.repo.Create(ctx, tech)
	if err != nil {
		return entities.Technician{}, err
	}
	u.notifier.Publish(ChangeEvent{Entity: "technician", Action: ActionCreated, ID: created.ID, Division: string(created.Division)})
	return created, nil
}

func (u *TechnicianUseCase) GetByID(ctx context.Context, id string) (entities.Technician, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Technician{}, ErrInvalidTechnicianID
	}
	tech, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Technician{}, err
	}
	if tech.ID == "" {
		return entities.Technician{}, ErrTechnicianNotFound
	}
	return tech, nil
}

func (u *TechnicianUseCase) List(ctx context.Context, division entities.Division) ([]entities.Technician, error) {
	if division != "" && !division.Valid() {
		return nil, ErrInvalidDivision
	}
	return u.repo.List(ctx, division)
}

func (u *TechnicianUseCase) Update(ctx context.Context, id string, upd TechnicianUpdate) (entities.Technician, error) {
	tech, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Technician{}, err
	}

	if upd.Status != nil {
		if !upd.Status.Valid() {
			return entities.Technician{}, ErrInvalidTechnicianStatus
		}
		tech.Status = *upd.Status
	}
	if upd.Skills != nil {
		tech.Skills = *upd.Skills
	}
	if upd.Rating != nil {
		tech.Rating = *upd.Rating
	}
	if upd.Latitude != nil {
		tech.Latitude = *upd.Latitude
	}
	if upd.Longitude != nil {
		tech.Longitude = *upd.Longitude
	}
	if upd.Phone != nil {
		tech.Phone = *upd.Phone
	}
	if upd.Email != nil {
		tech.Email = *upd.Email
	}
	tech.UpdatedAt = time.Now().UTC()

	saved, err := u.repo.Save(ctx, tech)
	if err != nil {
		return entities.Technician{}, err
	}
	if saved.ID == "" {
		return entities.Technician{}, ErrTechnicianNotFound
	}
	u.notifier.Publish(ChangeEvent{Entity: "technician", Action: ActionUpdated, ID: saved.ID, Division: string(saved.Division)})
	return saved, nil
}
