package response

import (
	"time"

	"maisonpro_dispatch/internal/domain/entities"
)

type ClientSnapshotResponse struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

type JobResponse struct {
	ID          string `json:"id"`
	Division    string `json:"division"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	ServiceType string `json:"service_type"`
	Description string `json:"description"`

	ClientID string                 `json:"client_id"`
	Client   ClientSnapshotResponse `json:"client"`

	TechnicianID   string `json:"technician_id,omitempty"`
	TechnicianName string `json:"technician_name,omitempty"`

	ScheduledAt     time.Time `json:"scheduled_at"`
	DurationMinutes int       `json:"duration_minutes"`

	// Amount is rounded to cents at the boundary; stored values keep full
	// precision.
	Amount *float64 `json:"amount,omitempty"`

	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromJob(j entities.Job) JobResponse {
	resp := JobResponse{
		ID:          j.ID,
		Division:    string(j.Division),
		Status:      string(j.Status),
		Priority:    string(j.Priority),
		ServiceType: j.ServiceType,
		Description: j.Description,
		ClientID:    j.ClientID,
		Client: ClientSnapshotResponse{
			Name:    j.Client.Name,
			Address: j.Client.Address,
			Phone:   j.Client.Phone,
		},
		TechnicianID:    j.TechnicianID,
		TechnicianName:  j.TechnicianName,
		ScheduledAt:     j.ScheduledAt,
		DurationMinutes: j.DurationMinutes,
		Latitude:        j.Latitude,
		Longitude:       j.Longitude,
		CreatedAt:       j.CreatedAt,
		UpdatedAt:       j.UpdatedAt,
	}
	if j.Amount != nil {
		amount := entities.RoundCents(*j.Amount)
		resp.Amount = &amount
	}
	return resp
}

func FromJobs(jobs []entities.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, FromJob(j))
	}
	return out
}
