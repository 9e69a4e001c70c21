package request

import (
	"maisonpro_dispatch/internal/domain/entities"
	"maisonpro_dispatch/internal/usecase"
)

type ClientCreateRequest struct {
	Name      string   `json:"name" binding:"required"`
	Phone     string   `json:"phone" binding:"required"`
	Email     string   `json:"email"`
	Address   string   `json:"address"`
	Type      string   `json:"type"`
	Equipment []string `json:"equipment"`
}

func (r ClientCreateRequest) ToClient(division entities.Division) entities.Client {
	return entities.Client{
		Division:  division,
		Type:      entities.ClientType(r.Type),
		Name:      r.Name,
		Phone:     r.Phone,
		Email:     r.Email,
		Address:   r.Address,
		Equipment: r.Equipment,
	}
}

type ClientUpdateRequest struct {
	Name      *string   `json:"name"`
	Phone     *string   `json:"phone"`
	Email     *string   `json:"email"`
	Address   *string   `json:"address"`
	Type      *string   `json:"type"`
	Equipment *[]string `json:"equipment"`
}

func (r ClientUpdateRequest) ToUpdate() usecase.ClientUpdate {
	upd := usecase.ClientUpdate{
		Name:      r.Name,
		Phone:     r.Phone,
		Email:     r.Email,
		Address:   r.Address,
		Equipment: r.Equipment,
	}
	if r.Type != nil {
		t := entities.ClientType(*r.Type)
		upd.Type = &t
	}
	return upd
}
