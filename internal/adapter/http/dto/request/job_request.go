package request

import (
	"time"

	"maisonpro_dispatch/internal/domain/entities"
	"maisonpro_dispatch/internal/usecase"
)

// JobCreateRequest is the payload for opening a new job. The division comes
// from the request scope (X-Division header), not the body.
type JobCreateRequest struct {
	ClientID        string  `json:"client_id" binding:"required"`
	Priority        string  `json:"priority"`
	ServiceType     string  `json:"service_type"`
	Description     string  `json:"description"`
	ScheduledAt     string  `json:"scheduled_at"`
	DurationMinutes int     `json:"duration_minutes"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
}

func (r JobCreateRequest) ToJob(division entities.Division) entities.Job {
	j := entities.Job{
		Division:        division,
		Priority:        entities.JobPriority(r.Priority),
		ServiceType:     r.ServiceType,
		Description:     r.Description,
		ClientID:        r.ClientID,
		DurationMinutes: r.DurationMinutes,
		Latitude:        r.Latitude,
		Longitude:       r.Longitude,
	}
	if ts, err := time.Parse(time.RFC3339, r.ScheduledAt); err == nil {
		j.ScheduledAt = ts
	}
	return j
}

// JobUpdateRequest carries partial edits; absent fields stay untouched.
type JobUpdateRequest struct {
	Priority        *string  `json:"priority"`
	ServiceType     *string  `json:"service_type"`
	Description     *string  `json:"description"`
	ScheduledAt     *string  `json:"scheduled_at"`
	DurationMinutes *int     `json:"duration_minutes"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
}

func (r JobUpdateRequest) ToUpdate() (usecase.JobUpdate, error) {
	upd := usecase.JobUpdate{
		ServiceType:     r.ServiceType,
		Description:     r.Description,
		DurationMinutes: r.DurationMinutes,
		Latitude:        r.Latitude,
		Longitude:       r.Longitude,
	}
	if r.Priority != nil {
		p := entities.JobPriority(*r.Priority)
		upd.Priority = &p
	}
	if r.ScheduledAt != nil {
		ts, err := time.Parse(time.RFC3339, *r.ScheduledAt)
		if err != nil {
			return usecase.JobUpdate{}, err
		}
		upd.ScheduledAt = &ts
	}
	return upd, nil
}

// JobTransitionRequest is one kanban move. TechnicianID is only consulted
// when the target status is assigned.
type JobTransitionRequest struct {
	Status       string `json:"status" binding:"required"`
	TechnicianID string `json:"technician_id"`
}

type JobAssignRequest struct {
	TechnicianID string `json:"technician_id" binding:"required"`
}

type LineItemRequest struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

func toLineItems(items []LineItemRequest) []entities.LineItem {
	out := make([]entities.LineItem, 0, len(items))
	for _, it := range items {
		out = append(out, entities.LineItem{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}
	return out
}

type JobCompleteRequest struct {
	LineItems []LineItemRequest `json:"line_items" binding:"required"`
}

func (r JobCompleteRequest) ToLineItems() []entities.LineItem {
	return toLineItems(r.LineItems)
}
