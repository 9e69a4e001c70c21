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
	ErrInvalidClientID     = errors.New("invalid client id")
	ErrClientNotFound      = errors.New("client not found")
	ErrMissingClientFields = errors.New("missing client name or phone")
	ErrInvalidClientType   = errors.New("invalid client type")
)

// ClientUpdate carries partial edits to a client record.
type ClientUpdate struct {
	Name      *string
	Phone     *string
	Email     *string
	Address   *string
	Type      *entities.ClientType
	Equipment *[]string
}

type IClientUseCase interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	List(ctx context.Context, division entities.Division) ([]entities.Client, error)
	Update(ctx context.Context, id string, upd ClientUpdate) (entities.Client, error)
}

type ClientUseCase struct {
	repo     interfaces.IClientRepository
	notifier *Notifier
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(repo interfaces.IClientRepository, notifier *Notifier) *ClientUseCase {
	return &ClientUseCase{repo: repo, notifier: notifier}
}

func (u *ClientUseCase) Create(ctx context.Context, c entities.Client) (entities.Client, error) {
	c.Name = strings.TrimSpace(c.Name)
	c.Phone = strings.TrimSpace(c.Phone)
	// Name and phone are the minimum to reach a client; rejected before any
	// store mutation.
	if c.Name == "" || c.Phone == "" {
		return entities.Client{}, ErrMissingClientFields
	}
	if !c.Division.Valid() {
		return entities.Client{}, ErrInvalidDivision
	}
	if c.Type == "" {
		c.Type = entities.ClientTypeResidential
	}
	if !c.Type.Valid() {
		return entities.Client{}, ErrInvalidClientType
	}

	now := time.Now().UTC()
	c.ID = uuid.NewString()
	c.TotalSpent = 0
	c.CreatedAt = now
	c.UpdatedAt = now

	created, err := u.repo.Create(ctx, c)
	if err != nil {
		return entities.Client{}, err
	}
	u.notifier.Publish(ChangeEvent{Entity: "client", Action: ActionCreated, ID: created.ID, Division: string(created.Division)})
	return created, nil
}

func (u *ClientUseCase) GetByID(ctx context.Context, id string) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrInvalidClientID
	}
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}

func (u *ClientUseCase) List(ctx context.Context, division entities.Division) ([]entities.Client, error) {
	if division != "" && !division.Valid() {
		return nil, ErrInvalidDivision
	}
	return u.repo.List(ctx, division)
}

func (u *ClientUseCase) Update(ctx context.Context, id string, upd ClientUpdate) (entities.Client, error) {
	c, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}

	if upd.Name != nil {
		name := strings.TrimSpace(*upd.Name)
		if name == "" {
			return entities.Client{}, ErrMissingClientFields
		}
		c.Name = name
	}
	if upd.Phone != nil {
		phone := strings.TrimSpace(*upd.Phone)
		if phone == "" {
			return entities.Client{}, ErrMissingClientFields
		}
		c.Phone = phone
	}
	if upd.Email != nil {
		c.Email = *upd.Email
	}
	if upd.Address != nil {
		c.Address = *upd.Address
	}
	if upd.Type != nil {
		if !upd.Type.Valid() {
			return entities.Client{}, ErrInvalidClientType
		}
		c.Type = *upd.Type
	}
	if upd.Equipment != nil {
		c.Equipment = *upd.Equipment
	}
	c.UpdatedAt = time.Now().UTC()

	saved, err := u.repo.Save(ctx, c)
	if err != nil {
		return entities.Client{}, err
	}
	if saved.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	u.notifier.Publish(ChangeEvent{Entity: "client", Action: ActionUpdated, ID: saved.ID, Division: string(saved.Division)})
	return saved, nil
}
