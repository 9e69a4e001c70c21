package usecase

import (
	"context"
	"errors"
	"math"
	"testing"

	"maisonpro_dispatch/internal/adapter/persistence/memory"
	"maisonpro_dispatch/internal/domain/entities"
)

type invoiceFixture struct {
	invoices *InvoiceUseCase
	jobRepo  *memory.JobMemoryRepository
	clients  *memory.ClientMemoryRepository
	invRepo  *memory.InvoiceMemoryRepository
}

func newInvoiceFixture(t *testing.T) *invoiceFixture {
	t.Helper()
	f := &invoiceFixture{
		jobRepo: memory.NewJobMemoryRepository(),
		clients: memory.NewClientMemoryRepository(),
		invRepo: memory.NewInvoiceMemoryRepository(),
	}
	f.invoices = NewInvoiceUseCase(f.invRepo, f.jobRepo, f.clients, nil)
	return f
}

func (f *invoiceFixture) seedCompletedJob(t *testing.T, id string) {
	t.Helper()
	ctx := context.Background()
	if _, err := f.clients.Create(ctx, entities.Client{ID: "cli-1", Division: entities.DivisionPlomberie, Name: "N", Phone: "p"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := f.jobRepo.Create(ctx, entities.Job{
		ID: id, Division: entities.DivisionPlomberie, ClientID: "cli-1",
		Status: entities.JobStatusCompleted,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestInvoiceUseCase_CreateFromJob(t *testing.T) {
	ctx := context.Background()

	t.Run("computes GST plus QST", func(t *testing.T) {
		f := newInvoiceFixture(t)
		f.seedCompletedJob(t, "job-1")

		inv, err := f.invoices.CreateFromJob(ctx, "job-1", []entities.LineItem{
			{Description: "Main d'oeuvre", Quantity: 3, UnitPrice: 95},
			{Description: "Pièces", Quantity: 1, UnitPrice: 120.5},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		sub := 3*95.0 + 120.5
		if math.Abs(inv.Subtotal-sub) > 1e-9 {
			t.Fatalf("expected subtotal %v, got %v", sub, inv.Subtotal)
		}
		want := sub + sub*0.05 + sub*0.09975
		if math.Abs(inv.Total-want) > 0.01 {
			t.Fatalf("total %v deviates from %v", inv.Total, want)
		}
		if inv.Status != entities.InvoiceStatusDraft || inv.Division != entities.DivisionPlomberie {
			t.Fatalf("unexpected invoice: %+v", inv)
		}
		if inv.LineItems[0].Total != 285 {
			t.Fatalf("expected computed line total 285, got %v", inv.LineItems[0].Total)
		}
	})

	t.Run("job must be completed", func(t *testing.T) {
		f := newInvoiceFixture(t)
		if _, err := f.jobRepo.Create(ctx, entities.Job{ID: "job-open", Status: entities.JobStatusInProgress}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		_, err := f.invoices.CreateFromJob(ctx, "job-open", []entities.LineItem{{Quantity: 1, UnitPrice: 10}})
		if !errors.Is(err, ErrJobNotCompleted) {
			t.Fatalf("expected ErrJobNotCompleted, got %v", err)
		}
	})

	t.Run("zero-rate line rejected", func(t *testing.T) {
		f := newInvoiceFixture(t)
		f.seedCompletedJob(t, "job-1")
		_, err := f.invoices.CreateFromJob(ctx, "job-1", []entities.LineItem{{Quantity: 2, UnitPrice: 0}})
		if !errors.Is(err, ErrInvalidLineItems) {
			t.Fatalf("expected ErrInvalidLineItems, got %v", err)
		}
	})

	t.Run("unknown job", func(t *testing.T) {
		f := newInvoiceFixture(t)
		_, err := f.invoices.CreateFromJob(ctx, "ghost", []entities.LineItem{{Quantity: 1, UnitPrice: 10}})
		if !errors.Is(err, ErrJobNotFound) {
			t.Fatalf("expected ErrJobNotFound, got %v", err)
		}
	})
}

func TestInvoiceUseCase_UpdateLineItems(t *testing.T) {
	ctx := context.Background()

	t.Run("recomputes totals", func(t *testing.T) {
		f := newInvoiceFixture(t)
		f.seedCompletedJob(t, "job-1")
		inv, err := f.invoices.CreateFromJob(ctx, "job-1", []entities.LineItem{{Quantity: 1, UnitPrice: 100}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		updated, err := f.invoices.UpdateLineItems(ctx, inv.ID, []entities.LineItem{{Quantity: 2, UnitPrice: 100}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Subtotal != 200 {
			t.Fatalf("expected subtotal 200, got %v", updated.Subtotal)
		}
		want := 200 + 200*0.05 + 200*0.09975
		if math.Abs(updated.Total-want) > 1e-9 {
			t.Fatalf("expected total %v, got %v", want, updated.Total)
		}
	})

	t.Run("paid invoices are frozen", func(t *testing.T) {
		f := newInvoiceFixture(t)
		f.seedCompletedJob(t, "job-1")
		inv, err := f.invoices.CreateFromJob(ctx, "job-1", []entities.LineItem{{Quantity: 1, UnitPrice: 100}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := f.invoices.UpdateStatus(ctx, inv.ID, entities.InvoiceStatusPaid); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := f.invoices.UpdateLineItems(ctx, inv.ID, []entities.LineItem{{Quantity: 5, UnitPrice: 1}}); !errors.Is(err, ErrInvoicePaid) {
			t.Fatalf("expected ErrInvoicePaid, got %v", err)
		}
		if _, err := f.invoices.UpdateStatus(ctx, inv.ID, entities.InvoiceStatusCancelled); !errors.Is(err, ErrInvoicePaid) {
			t.Fatalf("expected ErrInvoicePaid, got %v", err)
		}
	})
}

func TestInvoiceUseCase_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("paid stamps paidAt and bumps client spend", func(t *testing.T) {
		f := newInvoiceFixture(t)
		f.seedCompletedJob(t, "job-1")
		inv, err := f.invoices.CreateFromJob(ctx, "job-1", []entities.LineItem{{Quantity: 1, UnitPrice: 450}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		paid, err := f.invoices.UpdateStatus(ctx, inv.ID, entities.InvoiceStatusPaid)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if paid.PaidAt == nil {
			t.Fatal("expected paidAt stamp")
		}
		client, _ := f.clients.GetByID(ctx, "cli-1")
		if client.TotalSpent != 517.39 {
			t.Fatalf("expected client spend 517.39, got %v", client.TotalSpent)
		}
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		f := newInvoiceFixture(t)
		f.seedCompletedJob(t, "job-1")
		inv, err := f.invoices.CreateFromJob(ctx, "job-1", []entities.LineItem{{Quantity: 1, UnitPrice: 10}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, err := f.invoices.UpdateStatus(ctx, inv.ID, entities.InvoiceStatusDraft)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.UpdatedAt.Equal(inv.UpdatedAt) {
			t.Fatal("no-op status change must not touch the invoice")
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		f := newInvoiceFixture(t)
		_, err := f.invoices.UpdateStatus(ctx, "any", "refunded")
		if !errors.Is(err, ErrInvalidInvoiceStatus) {
			t.Fatalf("expected ErrInvalidInvoiceStatus, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		f := newInvoiceFixture(t)
		_, err := f.invoices.UpdateStatus(ctx, "ghost", entities.InvoiceStatusSent)
		if !errors.Is(err, ErrInvoiceNotFound) {
			t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
		}
	})
}
