package entities

import "time"

// TechnicianStatus is the field worker's availability as maintained by
// operators and dispatch. It is stored, not derived: nothing ties it to the
// technician's assigned-job count.

type TechnicianStatus string

const (
	TechnicianStatusAvailable TechnicianStatus = "available"
	TechnicianStatusBusy      TechnicianStatus = "busy"
	TechnicianStatusEnRoute   TechnicianStatus = "en-route"
	TechnicianStatusOffDuty   TechnicianStatus = "off-duty"
)

func (s TechnicianStatus) Valid() bool {
	switch s {
	case TechnicianStatusAvailable, TechnicianStatusBusy,
		TechnicianStatusEnRoute, TechnicianStatusOffDuty:
		return true
	}
	return false
}

// Technician is a field worker belonging to exactly one division.
type Technician struct {
	ID       string           `json:"id"`
	Division Division         `json:"division"`
	Name     string           `json:"name"`
	Phone    string           `json:"phone"`
	Email    string           `json:"email"`
	Status   TechnicianStatus `json:"status"`
	Skills   []string         `json:"skills"`

	JobsToday     int     `json:"jobs_today"`
	JobsCompleted int     `json:"jobs_completed"`
	Rating        float64 `json:"rating"`

	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
