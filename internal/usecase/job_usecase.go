package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"maisonpro_dispatch/internal/domain/entities"
	"maisonpro_dispatch/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidJobID       = errors.New("invalid job id")
	ErrJobNotFound        = errors.New("job not found")
	ErrInvalidDivision    = errors.New("invalid division")
	ErrInvalidPriority    = errors.New("invalid priority")
	ErrInvalidJobStatus   = errors.New("invalid job status")
	ErrMissingClient      = errors.New("missing client reference")
	ErrJobImmutable       = errors.New("completed job is immutable")
	ErrTechnicianRequired = errors.New("technician required for assignment")
	ErrInvalidTransition  = errors.New("invalid transition")
)

// TransitionError identifies a rejected status transition and the record it
// was requested on. errors.Is(err, ErrInvalidTransition) matches it.
type TransitionError struct {
	EntityID string
	From     string
	To       string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("invalid transition %s -> %s for %s", e.From, e.To, e.EntityID)
}

func (e *TransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

// JobUpdate carries the partial fields an operator may edit on a job.
// Nil fields are left untouched.
type JobUpdate struct {
	Priority        *entities.JobPriority
	ServiceType     *string
	Description     *string
	ScheduledAt     *time.Time
	DurationMinutes *int
	Latitude        *float64
	Longitude       *float64
}

func (u JobUpdate) touchesSchedule() bool {
	return u.ScheduledAt != nil || u.DurationMinutes != nil
}

// IJobUseCase exposes job CRUD, the lifecycle state machine and completion.
//
// Lifecycle contract:
//   - Transition validates the status pair against the kanban rules
//     (terminal statuses reject everything; same-status is a no-op).
//   - Assign is the pending → assigned move with the technician attached
//     atomically; dispatch goes through it as well.
//   - Complete moves the job to completed, computes GST+QST totals from the
//     line items, stamps the job amount and opens a draft invoice.

type IJobUseCase interface {
	Create(ctx context.Context, j entities.Job) (entities.Job, error)
	GetByID(ctx context.Context, id string) (entities.Job, error)
	List(ctx context.Context, division entities.Division) ([]entities.Job, error)
	Update(ctx context.Context, id string, upd JobUpdate) (entities.Job, error)
	Delete(ctx context.Context, id string) error
	Transition(ctx context.Context, id string, to entities.JobStatus, technicianID string) (entities.Job, error)
	Assign(ctx context.Context, id, technicianID string) (entities.Job, error)
	Complete(ctx context.Context, id string, items []entities.LineItem) (entities.Job, entities.Invoice, error)
}

type JobUseCase struct {
	repo     interfaces.IJobRepository
	techRepo interfaces.ITechnicianRepository
	clients  interfaces.IClientRepository
	invoices interfaces.IInvoiceRepository
	notifier *Notifier
}

var _ IJobUseCase = (*JobUseCase)(nil)

func NewJobUseCase(
	repo interfaces.IJobRepository,
	techRepo interfaces.ITechnicianRepository,
	clients interfaces.IClientRepository,
	invoices interfaces.IInvoiceRepository,
	notifier *Notifier,
) *JobUseCase {
	return &JobUseCase{repo: repo, techRepo: techRepo, clients: clients, invoices: invoices, notifier: notifier}
}

func (u *JobUseCase) Create(ctx context.Context, j entities.Job) (entities.Job, error) {
	if !j.Division.Valid() {
		return entities.Job{}, ErrInvalidDivision
	}
	if j.Priority == "" {
		j.Priority = entities.JobPriorityNormal
	}
	if !j.Priority.Valid() {
		return entities.Job{}, ErrInvalidPriority
	}
	j.ClientID = strings.TrimSpace(j.ClientID)
	if j.ClientID == "" {
		return entities.Job{}, ErrMissingClient
	}

	client, err := u.clients.GetByID(ctx, j.ClientID)
	if err != nil {
		return entities.Job{}, err
	}
	if client.ID == "" {
		return entities.Job{}, ErrClientNotFound
	}

	now := time.Now().UTC()
	j.ID = uuid.NewString()
	j.Status = entities.JobStatusPending
	j.TechnicianID = ""
	j.TechnicianName = ""
	j.Amount = nil
	// Display snapshot taken at creation time; later client edits do not
	// rewrite it.
	j.Client = entities.ClientSnapshot{Name: client.Name, Address: client.Address, Phone: client.Phone}
	j.CreatedAt = now
	j.UpdatedAt = now

	created, err := u.repo.Create(ctx, j)
	if err != nil {
		return entities.Job{}, err
	}
	u.notifier.Publish(ChangeEvent{Entity: "job", Action: ActionCreated, ID: created.ID, Division: string(created.Division)})
	return created, nil
}

func (u *JobUseCase) GetByID(ctx context.Context, id string) (entities.Job, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Job{}, ErrInvalidJobID
	}
	j, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Job{}, err
	}
	if j.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	return j, nil
}

func (u *JobUseCase) List(ctx context.Context, division entities.Division) ([]entities.Job, error) {
	if division != "" && !division.Valid() {
		return nil, ErrInvalidDivision
	}
	return u.repo.List(ctx, division)
}

func (u *JobUseCase) Update(ctx context.Context, id string, upd JobUpdate) (entities.Job, error) {
	j, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Job{}, err
	}
	if j.Status == entities.JobStatusCompleted && upd.touchesSchedule() {
		return entities.Job{}, ErrJobImmutable
	}

	if upd.Priority != nil {
		if !upd.Priority.Valid() {
			return entities.Job{}, ErrInvalidPriority
		}
		j.Priority = *upd.Priority
	}
	if upd.ServiceType != nil {
		j.ServiceType = *upd.ServiceType
	}
	if upd.Description != nil {
		j.Description = *upd.Description
	}
	if upd.ScheduledAt != nil {
		j.ScheduledAt = *upd.ScheduledAt
	}
	if upd.DurationMinutes != nil {
		j.DurationMinutes = *upd.DurationMinutes
	}
	if upd.Latitude != nil {
		j.Latitude = *upd.Latitude
	}
	if upd.Longitude != nil {
		j.Longitude = *upd.Longitude
	}
	j.UpdatedAt = nextTimestamp(j.UpdatedAt)

	saved, err := u.repo.Save(ctx, j)
	if err != nil {
		return entities.Job{}, err
	}
	if saved.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	u.notifier.Publish(ChangeEvent{Entity: "job", Action: ActionUpdated, ID: saved.ID, Division: string(saved.Division)})
	return saved, nil
}

func (u *JobUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidJobID
	}
	found, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrJobNotFound
	}
	u.notifier.Publish(ChangeEvent{Entity: "job", Action: ActionDeleted, ID: id})
	return nil
}

// Transition applies one kanban move. technicianID is consulted only when
// the target status is assigned and the job has no technician yet.
func (u *JobUseCase) Transition(ctx context.Context, id string, to entities.JobStatus, technicianID string) (entities.Job, error) {
	j, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Job{}, err
	}
	if !to.Valid() {
		return entities.Job{}, ErrInvalidJobStatus
	}
	if j.Status == to {
		// Dropping a card onto its own column.
		return j, nil
	}
	if !j.Status.CanTransitionTo(to) {
		return entities.Job{}, &TransitionError{EntityID: j.ID, From: string(j.Status), To: string(to)}
	}

	if to == entities.JobStatusAssigned {
		technicianID = strings.TrimSpace(technicianID)
		if j.TechnicianID == "" && technicianID == "" {
			return entities.Job{}, ErrTechnicianRequired
		}
		if technicianID != "" {
			tech, err := u.techRepo.GetByID(ctx, technicianID)
			if err != nil {
				return entities.Job{}, err
			}
			if tech.ID == "" {
				return entities.Job{}, ErrTechnicianNotFound
			}
			j.TechnicianID = tech.ID
			// Snapshot at assignment time.
			j.TechnicianName = tech.Name
		}
	}
	// Moves out of assigned/en-route/in-progress keep the technician
	// reference: status and assignment are tracked independently, and the
	// assignment survives cancel/on-hold for reporting.

	j.Status = to
	j.UpdatedAt = nextTimestamp(j.UpdatedAt)

	saved, err := u.repo.Save(ctx, j)
	if err != nil {
		return entities.Job{}, err
	}
	if saved.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	log.Printf("[job][usecase] transition job_id=%s to=%s technician_id=%s", saved.ID, saved.Status, saved.TechnicianID)
	u.notifier.Publish(ChangeEvent{Entity: "job", Action: ActionUpdated, ID: saved.ID, Division: string(saved.Division)})
	return saved, nil
}

func (u *JobUseCase) Assign(ctx context.Context, id, technicianID string) (entities.Job, error) {
	technicianID = strings.TrimSpace(technicianID)
	if technicianID == "" {
		return entities.Job{}, ErrTechnicianRequired
	}
	return u.Transition(ctx, id, entities.JobStatusAssigned, technicianID)
}

// Complete closes the job and opens the draft invoice in one operation.
// The invoice totals come from the tax calculator; the rounded-at-display
// rule means the stored amounts keep full precision.
func (u *JobUseCase) Complete(ctx context.Context, id string, items []entities.LineItem) (entities.Job, entities.Invoice, error) {
	if err := validateLineItems(items); err != nil {
		return entities.Job{}, entities.Invoice{}, err
	}

	j, err := u.Transition(ctx, id, entities.JobStatusCompleted, "")
	if err != nil {
		return entities.Job{}, entities.Invoice{}, err
	}

	normalized := make([]entities.LineItem, 0, len(items))
	for _, it := range items {
		normalized = append(normalized, entities.NormalizeLineItem(it))
	}
	totals := entities.ComputeTotals(normalized)

	amount := totals.Total
	j.Amount = &amount
	j.UpdatedAt = nextTimestamp(j.UpdatedAt)
	if j, err = u.repo.Save(ctx, j); err != nil {
		return entities.Job{}, entities.Invoice{}, err
	}

	now := time.Now().UTC()
	inv := entities.Invoice{
		ID:        uuid.NewString(),
		Division:  j.Division,
		JobID:     j.ID,
		ClientID:  j.ClientID,
		LineItems: normalized,
		Subtotal:  totals.Subtotal,
		Tax:       totals.Tax,
		Total:     totals.Total,
		Status:    entities.InvoiceStatusDraft,
		DueDate:   now.AddDate(0, 0, 30),
		CreatedAt: now,
		UpdatedAt: now,
	}
	created, err := u.invoices.Create(ctx, inv)
	if err != nil {
		return entities.Job{}, entities.Invoice{}, err
	}

	if j.TechnicianID != "" {
		tech, err := u.techRepo.GetByID(ctx, j.TechnicianID)
		if err == nil && tech.ID != "" {
			tech.JobsCompleted++
			tech.UpdatedAt = now
			if _, err := u.techRepo.Save(ctx, tech); err != nil {
				log.Printf("[job][usecase] technician counter update failed technician_id=%s err=%v", tech.ID, err)
			}
		}
	}

	log.Printf("[job][usecase] completed job_id=%s invoice_id=%s total=%.2f", j.ID, created.ID, entities.RoundCents(created.Total))
	u.notifier.Publish(ChangeEvent{Entity: "invoice", Action: ActionCreated, ID: created.ID, Division: string(created.Division)})
	return j, created, nil
}

// nextTimestamp returns a timestamp strictly after prev. Two transitions in
// the same clock reading must still produce increasing updatedAt values.
func nextTimestamp(prev time.Time) time.Time {
	now := time.Now().UTC()
	if !now.After(prev) {
		now = prev.Add(time.Nanosecond)
	}
	return now
}
