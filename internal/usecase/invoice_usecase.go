package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"maisonpro_dispatch/internal/domain/entities"
	"maisonpro_dispatch/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidInvoiceID     = errors.New("invalid invoice id")
	ErrInvoiceNotFound      = errors.New("invoice not found")
	ErrInvalidLineItems     = errors.New("invalid line items")
	ErrInvalidInvoiceStatus = errors.New("invalid invoice status")
	ErrInvoicePaid          = errors.New("invoice already paid")
	ErrJobNotCompleted      = errors.New("job not completed")
)

// IInvoiceUseCase exposes invoice operations.
//
// Totals invariant: subtotal, tax and total are recomputed from the line
// items on every edit (GST 5% + QST 9.975%, each applied to the subtotal
// and summed) and frozen once the invoice is paid.

type IInvoiceUseCase interface {
	CreateFromJob(ctx context.Context, jobID string, items []entities.LineItem) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	List(ctx context.Context, division entities.Division) ([]entities.Invoice, error)
	UpdateLineItems(ctx context.Context, id string, items []entities.LineItem) (entities.Invoice, error)
	UpdateStatus(ctx context.Context, id string, status entities.InvoiceStatus) (entities.Invoice, error)
}

type InvoiceUseCase struct {
	repo     interfaces.IInvoiceRepository
	jobRepo  interfaces.IJobRepository
	clients  interfaces.IClientRepository
	notifier *Notifier
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(
	repo interfaces.IInvoiceRepository,
	jobRepo interfaces.IJobRepository,
	clients interfaces.IClientRepository,
	notifier *Notifier,
) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo, jobRepo: jobRepo, clients: clients, notifier: notifier}
}

func validateLineItems(items []entities.LineItem) error {
	if len(items) == 0 {
		return ErrInvalidLineItems
	}
	for _, it := range items {
		// Zero-rate lines are an operator mistake, rejected before any
		// store mutation. Missing quantity is tolerated (defaults to 1).
		if it.UnitPrice <= 0 {
			return ErrInvalidLineItems
		}
	}
	return nil
}

func (u *InvoiceUseCase) CreateFromJob(ctx context.Context, jobID string, items []entities.LineItem) (entities.Invoice, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Invoice{}, ErrInvalidJobID
	}
	if err := validateLineItems(items); err != nil {
		return entities.Invoice{}, err
	}

	j, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if j.ID == "" {
		return entities.Invoice{}, ErrJobNotFound
	}
	if j.Status != entities.JobStatusCompleted {
		return entities.Invoice{}, ErrJobNotCompleted
	}

	normalized := make([]entities.LineItem, 0, len(items))
	for _, it := range items {
		normalized = append(normalized, entities.NormalizeLineItem(it))
	}
	totals := entities.ComputeTotals(normalized)

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
	created, err := u.repo.Create(ctx, inv)
	if err != nil {
		return entities.Invoice{}, err
	}
	u.notifier.Publish(ChangeEvent{Entity: "invoice", Action: ActionCreated, ID: created.ID, Division: string(created.Division)})
	return created, nil
}

func (u *InvoiceUseCase) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}
	inv, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv, nil
}

func (u *InvoiceUseCase) List(ctx context.Context, division entities.Division) ([]entities.Invoice, error) {
	if division != "" && !division.Valid() {
		return nil, ErrInvalidDivision
	}
	return u.repo.List(ctx, division)
}

func (u *InvoiceUseCase) UpdateLineItems(ctx context.Context, id string, items []entities.LineItem) (entities.Invoice, error) {
	inv, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.Status == entities.InvoiceStatusPaid {
		return entities.Invoice{}, ErrInvoicePaid
	}
	if err := validateLineItems(items); err != nil {
		return entities.Invoice{}, err
	}

	normalized := make([]entities.LineItem, 0, len(items))
	for _, it := range items {
		normalized = append(normalized, entities.NormalizeLineItem(it))
	}
	totals := entities.ComputeTotals(normalized)

	inv.LineItems = normalized
	inv.Subtotal = totals.Subtotal
	inv.Tax = totals.Tax
	inv.Total = totals.Total
	inv.UpdatedAt = time.Now().UTC()

	saved, err := u.repo.Save(ctx, inv)
	if err != nil {
		return entities.Invoice{}, err
	}
	if saved.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	u.notifier.Publish(ChangeEvent{Entity: "invoice", Action: ActionUpdated, ID: saved.ID, Division: string(saved.Division)})
	return saved, nil
}

func (u *InvoiceUseCase) UpdateStatus(ctx context.Context, id string, status entities.InvoiceStatus) (entities.Invoice, error) {
	if !status.Valid() {
		return entities.Invoice{}, ErrInvalidInvoiceStatus
	}
	inv, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.Status == status {
		return inv, nil
	}
	if inv.Status == entities.InvoiceStatusPaid {
		return entities.Invoice{}, ErrInvoicePaid
	}

	now := time.Now().UTC()
	inv.Status = status
	inv.UpdatedAt = now
	if status == entities.InvoiceStatusPaid {
		inv.PaidAt = &now
	}

	saved, err := u.repo.Save(ctx, inv)
	if err != nil {
		return entities.Invoice{}, err
	}
	if saved.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}

	if status == entities.InvoiceStatusPaid {
		u.bumpClientSpend(ctx, saved)
	}

	u.notifier.Publish(ChangeEvent{Entity: "invoice", Action: ActionUpdated, ID: saved.ID, Division: string(saved.Division)})
	return saved, nil
}

func (u *InvoiceUseCase) bumpClientSpend(ctx context.Context, inv entities.Invoice) {
	client, err := u.clients.GetByID(ctx, inv.ClientID)
	if err != nil || client.ID == "" {
		log.Printf("[invoice][usecase] client spend update skipped client_id=%s err=%v", inv.ClientID, err)
		return
	}
	client.TotalSpent += entities.RoundCents(inv.Total)
	client.UpdatedAt = time.Now().UTC()
	if _, err := u.clients.Save(ctx, client); err != nil {
		log.Printf("[invoice][usecase] client spend update failed client_id=%s err=%v", client.ID, err)
	}
}
