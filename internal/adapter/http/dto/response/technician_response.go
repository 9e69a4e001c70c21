package response

import (
	"time"

	"maisonpro_dispatch/internal/domain/entities"
)

type TechnicianResponse struct {
	ID       string   `json:"id"`
	Division string   `json:"division"`
	Name     string   `json:"name"`
	Phone    string   `json:"phone"`
	Email    string   `json:"email"`
	Status   string   `json:"status"`
	Skills   []string `json:"skills"`

	JobsToday     int     `json:"jobs_today"`
	JobsCompleted int     `json:"jobs_completed"`
	Rating        float64 `json:"rating"`

	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromTechnician(t entities.Technician) TechnicianResponse {
	return TechnicianResponse{
		ID:            t.ID,
		Division:      string(t.Division),
		Name:          t.Name,
		Phone:         t.Phone,
		Email:         t.Email,
		Status:        string(t.Status),
		Skills:        t.Skills,
		JobsToday:     t.JobsToday,
		JobsCompleted: t.JobsCompleted,
		Rating:        t.Rating,
		Latitude:      t.Latitude,
		Longitude:     t.Longitude,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

func FromTechnicians(techs []entities.Technician) []TechnicianResponse {
	out := make([]TechnicianResponse, 0, len(techs))
	for _, t := range techs {
		out = append(out, FromTechnician(t))
	}
	return out
}
