package request

import (
	"maisonpro_dispatch/internal/domain/entities"
	"maisonpro_dispatch/internal/usecase"
)

type TechnicianCreateRequest struct {
	Name      string   `json:"name" binding:"required"`
	Phone     string   `json:"phone"`
	Email     string   `json:"email"`
	Status    string   `json:"status"`
	Skills    []string `json:"skills"`
	Rating    float64  `json:"rating"`
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
}

func (r TechnicianCreateRequest) ToTechnician(division entities.Division) entities.Technician {
	return entities.Technician{
		Division:  division,
		Name:      r.Name,
		Phone:     r.Phone,
		Email:     r.Email,
		Status:    entities.TechnicianStatus(r.Status),
		Skills:    r.Skills,
		Rating:    r.Rating,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
	}
}

type TechnicianUpdateRequest struct {
	Status    *string   `json:"status"`
	Skills    *[]string `json:"skills"`
	Rating    *float64  `json:"rating"`
	Latitude  *float64  `json:"latitude"`
	Longitude *float64  `json:"longitude"`
	Phone     *string   `json:"phone"`
	Email     *string   `json:"email"`
}

func (r TechnicianUpdateRequest) ToUpdate() usecase.TechnicianUpdate {
	upd := usecase.TechnicianUpdate{
		Skills:    r.Skills,
		Rating:    r.Rating,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
		Phone:     r.Phone,
		Email:     r.Email,
	}
	if r.Status != nil {
		s := entities.TechnicianStatus(*r.Status)
		upd.Status = &s
	}
	return upd
}
