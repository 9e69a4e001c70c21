package entities

import "time"

// JobStatus represents the lifecycle of a service job.
//
// Domain notes:
//   - The dispatch core is the source of truth for job state.
//   - The five board statuses (pending..completed) are the kanban columns;
//     operators may drag a card between any two of them, so those moves are
//     legal from any non-terminal state.
//   - completed and cancelled are terminal.

type JobStatus string

const (
	JobStatusPending    JobStatus = "pending"
	JobStatusAssigned   JobStatus = "assigned"
	JobStatusEnRoute    JobStatus = "en-route"
	JobStatusInProgress JobStatus = "in-progress"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusCancelled  JobStatus = "cancelled"
	JobStatusOnHold     JobStatus = "on-hold"
)

func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusPending, JobStatusAssigned, JobStatusEnRoute,
		JobStatusInProgress, JobStatusCompleted, JobStatusCancelled, JobStatusOnHold:
		return true
	}
	return false
}

// Terminal reports whether no further transitions are accepted out of s.
func (s JobStatus) Terminal() bool {
	return s == JobStatusCompleted || s == JobStatusCancelled
}

// CanTransitionTo reports whether the status pair (s, to) is legal.
//
// Rules:
//   - nothing leaves a terminal status
//   - any non-terminal status may move to cancelled or on-hold
//   - any non-terminal status may move to any board status (kanban drag)
//   - a move onto the current status is not a transition (callers treat it
//     as a no-op before asking)
//
// Attaching the technician on moves into assigned is enforced by the
// usecase, not here: the table only knows about status pairs.
func (s JobStatus) CanTransitionTo(to JobStatus) bool {
	if !s.Valid() || !to.Valid() {
		return false
	}
	if s.Terminal() {
		return false
	}
	if to == JobStatusCancelled || to == JobStatusOnHold {
		return true
	}
	switch to {
	case JobStatusPending, JobStatusAssigned, JobStatusEnRoute,
		JobStatusInProgress, JobStatusCompleted:
		return true
	}
	return false
}

type JobPriority string

const (
	JobPriorityLow    JobPriority = "low"
	JobPriorityNormal JobPriority = "normal"
	JobPriorityHigh   JobPriority = "high"
	JobPriorityUrgent JobPriority = "urgent"
)

func (p JobPriority) Valid() bool {
	switch p {
	case JobPriorityLow, JobPriorityNormal, JobPriorityHigh, JobPriorityUrgent:
		return true
	}
	return false
}

// ClientSnapshot is the client display info captured on the job at creation
// time. It is an explicit snapshot, not a live reference: later edits to the
// Client record do not rewrite it. ClientID remains the authoritative link.
type ClientSnapshot struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// Job is a unit of scheduled field work.
type Job struct {
	ID          string      `json:"id"`
	Division    Division    `json:"division"`
	Status      JobStatus   `json:"status"`
	Priority    JobPriority `json:"priority"`
	ServiceType string      `json:"service_type"`
	Description string      `json:"description"`

	ClientID string         `json:"client_id"`
	Client   ClientSnapshot `json:"client"`

	// TechnicianID is set when the job is assigned and survives later
	// transitions, including cancellation and on-hold, for reporting.
	TechnicianID   string `json:"technician_id,omitempty"`
	TechnicianName string `json:"technician_name,omitempty"`

	ScheduledAt     time.Time `json:"scheduled_at"`
	DurationMinutes int       `json:"duration_minutes"`

	// Amount is the final billed total, stamped at completion/invoicing.
	Amount *float64 `json:"amount,omitempty"`

	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
