package usecase

import (
	"context"
	"errors"
	"math"
	"reflect"
	"testing"
	"time"

	"maisonpro_dispatch/internal/adapter/persistence/memory"
	"maisonpro_dispatch/internal/domain/entities"
)

type jobFixture struct {
	jobs    *JobUseCase
	jobRepo *memory.JobMemoryRepository
	techs   *memory.TechnicianMemoryRepository
	clients *memory.ClientMemoryRepository
	invs    *memory.InvoiceMemoryRepository
}

func newJobFixture(t *testing.T) *jobFixture {
	t.Helper()
	f := &jobFixture{
		jobRepo: memory.NewJobMemoryRepository(),
		techs:   memory.NewTechnicianMemoryRepository(),
		clients: memory.NewClientMemoryRepository(),
		invs:    memory.NewInvoiceMemoryRepository(),
	}
	f.jobs = NewJobUseCase(f.jobRepo, f.techs, f.clients, f.invs, nil)
	return f
}

func (f *jobFixture) seedClient(t *testing.T, id string) {
	t.Helper()
	_, err := f.clients.Create(context.Background(), entities.Client{
		ID: id, Division: entities.DivisionPlomberie, Name: "M. Tremblay",
		Address: "12 rue Principale", Phone: "514-555-0001",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func (f *jobFixture) seedTechnician(t *testing.T, id, name string) {
	t.Helper()
	_, err := f.techs.Create(context.Background(), entities.Technician{
		ID: id, Division: entities.DivisionPlomberie, Name: name,
		Status: entities.TechnicianStatusAvailable,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func (f *jobFixture) createJob(t *testing.T) entities.Job {
	t.Helper()
	f.seedClient(t, "cli-1")
	j, err := f.jobs.Create(context.Background(), entities.Job{
		Division:    entities.DivisionPlomberie,
		Priority:    entities.JobPriorityUrgent,
		ServiceType: "water-heater",
		Description: "Remplacement chauffe-eau",
		ClientID:    "cli-1",
		ScheduledAt: time.Now().UTC().Add(2 * time.Hour),
		DurationMinutes: 90,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return j
}

func TestJobUseCase_Create(t *testing.T) {
	t.Run("round trip by id", func(t *testing.T) {
		f := newJobFixture(t)
		created := f.createJob(t)

		if created.ID == "" {
			t.Fatal("expected generated id")
		}
		if created.Status != entities.JobStatusPending || created.TechnicianID != "" {
			t.Fatalf("new jobs must be pending and unassigned: %+v", created)
		}
		if created.CreatedAt.IsZero() || created.UpdatedAt.Before(created.CreatedAt) {
			t.Fatalf("bad timestamps: %+v", created)
		}
		if created.Client.Name != "M. Tremblay" || created.Client.Phone != "514-555-0001" {
			t.Fatalf("expected client snapshot, got %+v", created.Client)
		}

		got, err := f.jobs.GetByID(context.Background(), created.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(got, created) {
			t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, created)
		}
	})

	t.Run("invalid division", func(t *testing.T) {
		f := newJobFixture(t)
		_, err := f.jobs.Create(context.Background(), entities.Job{Division: "chauffage", ClientID: "cli-1"})
		if !errors.Is(err, ErrInvalidDivision) {
			t.Fatalf("expected ErrInvalidDivision, got %v", err)
		}
	})

	t.Run("missing client", func(t *testing.T) {
		f := newJobFixture(t)
		_, err := f.jobs.Create(context.Background(), entities.Job{Division: entities.DivisionPlomberie})
		if !errors.Is(err, ErrMissingClient) {
			t.Fatalf("expected ErrMissingClient, got %v", err)
		}
	})

	t.Run("unknown client", func(t *testing.T) {
		f := newJobFixture(t)
		_, err := f.jobs.Create(context.Background(), entities.Job{Division: entities.DivisionPlomberie, ClientID: "ghost"})
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})
}

func TestJobUseCase_Transition(t *testing.T) {
	ctx := context.Background()

	t.Run("updatedAt strictly increases", func(t *testing.T) {
		f := newJobFixture(t)
		f.seedTechnician(t, "tech-1", "Luc")
		j := f.createJob(t)

		prev := j.UpdatedAt
		for _, to := range []entities.JobStatus{
			entities.JobStatusAssigned, entities.JobStatusEnRoute, entities.JobStatusInProgress,
		} {
			moved, err := f.jobs.Transition(ctx, j.ID, to, "tech-1")
			if err != nil {
				t.Fatalf("transition to %s: %v", to, err)
			}
			if !moved.UpdatedAt.After(prev) {
				t.Fatalf("updatedAt must strictly increase: %v -> %v", prev, moved.UpdatedAt)
			}
			if moved.UpdatedAt.Before(moved.CreatedAt) {
				t.Fatalf("updatedAt before createdAt: %+v", moved)
			}
			prev = moved.UpdatedAt
		}
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		f := newJobFixture(t)
		j := f.createJob(t)

		got, err := f.jobs.Transition(ctx, j.ID, entities.JobStatusPending, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.UpdatedAt.Equal(j.UpdatedAt) {
			t.Fatal("no-op transition must not touch the job")
		}
	})

	t.Run("assignment requires a technician", func(t *testing.T) {
		f := newJobFixture(t)
		j := f.createJob(t)

		_, err := f.jobs.Transition(ctx, j.ID, entities.JobStatusAssigned, "")
		if !errors.Is(err, ErrTechnicianRequired) {
			t.Fatalf("expected ErrTechnicianRequired, got %v", err)
		}
	})

	t.Run("assignment attaches technician snapshot", func(t *testing.T) {
		f := newJobFixture(t)
		f.seedTechnician(t, "tech-1", "Luc")
		j := f.createJob(t)

		moved, err := f.jobs.Assign(ctx, j.ID, "tech-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if moved.Status != entities.JobStatusAssigned || moved.TechnicianID != "tech-1" || moved.TechnicianName != "Luc" {
			t.Fatalf("unexpected assignment: %+v", moved)
		}
	})

	t.Run("cancel retains the technician", func(t *testing.T) {
		f := newJobFixture(t)
		f.seedTechnician(t, "tech-1", "Luc")
		j := f.createJob(t)

		if _, err := f.jobs.Assign(ctx, j.ID, "tech-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		moved, err := f.jobs.Transition(ctx, j.ID, entities.JobStatusCancelled, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if moved.TechnicianID != "tech-1" {
			t.Fatal("cancellation must keep the assignment for reporting")
		}
	})

	t.Run("terminal jobs reject transitions unchanged", func(t *testing.T) {
		f := newJobFixture(t)
		j := f.createJob(t)

		done, err := f.jobs.Transition(ctx, j.ID, entities.JobStatusCancelled, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		for _, to := range []entities.JobStatus{
			entities.JobStatusPending, entities.JobStatusAssigned, entities.JobStatusCompleted, entities.JobStatusOnHold,
		} {
			_, err := f.jobs.Transition(ctx, j.ID, to, "")
			if !errors.Is(err, ErrInvalidTransition) {
				t.Fatalf("expected ErrInvalidTransition for cancelled -> %s, got %v", to, err)
			}
			var trErr *TransitionError
			if !errors.As(err, &trErr) || trErr.EntityID != j.ID || trErr.To != string(to) {
				t.Fatalf("expected typed transition error with job id, got %#v", err)
			}
		}

		got, err := f.jobs.GetByID(ctx, j.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(got, done) {
			t.Fatalf("rejected transitions must leave the job unchanged:\n got %+v\nwant %+v", got, done)
		}
	})

	t.Run("unknown job", func(t *testing.T) {
		f := newJobFixture(t)
		_, err := f.jobs.Transition(ctx, "ghost", entities.JobStatusCancelled, "")
		if !errors.Is(err, ErrJobNotFound) {
			t.Fatalf("expected ErrJobNotFound, got %v", err)
		}
	})
}

func TestJobUseCase_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("partial merge", func(t *testing.T) {
		f := newJobFixture(t)
		j := f.createJob(t)

		desc := "Inspection toiture"
		updated, err := f.jobs.Update(ctx, j.ID, JobUpdate{Description: &desc})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Description != desc || updated.ServiceType != j.ServiceType {
			t.Fatalf("expected partial merge, got %+v", updated)
		}
		if !updated.UpdatedAt.After(j.UpdatedAt) {
			t.Fatal("update must advance updatedAt")
		}
	})

	t.Run("completed job scheduling fields are immutable", func(t *testing.T) {
		f := newJobFixture(t)
		j := f.createJob(t)
		if _, err := f.jobs.Transition(ctx, j.ID, entities.JobStatusCompleted, ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		later := time.Now().UTC().Add(24 * time.Hour)
		_, err := f.jobs.Update(ctx, j.ID, JobUpdate{ScheduledAt: &later})
		if !errors.Is(err, ErrJobImmutable) {
			t.Fatalf("expected ErrJobImmutable, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		f := newJobFixture(t)
		_, err := f.jobs.Update(ctx, "ghost", JobUpdate{})
		if !errors.Is(err, ErrJobNotFound) {
			t.Fatalf("expected ErrJobNotFound, got %v", err)
		}
	})
}

func TestJobUseCase_Delete(t *testing.T) {
	ctx := context.Background()
	f := newJobFixture(t)
	j := f.createJob(t)

	if err := f.jobs.Delete(ctx, j.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := f.jobs.Delete(ctx, j.ID); !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestJobUseCase_Complete(t *testing.T) {
	ctx := context.Background()

	t.Run("closes job and opens draft invoice", func(t *testing.T) {
		f := newJobFixture(t)
		f.seedTechnician(t, "tech-1", "Luc")
		j := f.createJob(t)
		if _, err := f.jobs.Assign(ctx, j.ID, "tech-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		done, inv, err := f.jobs.Complete(ctx, j.ID, []entities.LineItem{{Description: "Chauffe-eau", Quantity: 1, UnitPrice: 450}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if done.Status != entities.JobStatusCompleted {
			t.Fatalf("expected completed, got %s", done.Status)
		}
		if inv.Subtotal != 450 {
			t.Fatalf("expected subtotal 450, got %v", inv.Subtotal)
		}
		if math.Abs(inv.Tax-67.3875) > 1e-9 || math.Abs(inv.Total-517.3875) > 1e-9 {
			t.Fatalf("unexpected totals: %+v", inv)
		}
		if inv.Status != entities.InvoiceStatusDraft || inv.JobID != j.ID {
			t.Fatalf("unexpected invoice: %+v", inv)
		}
		if done.Amount == nil || *done.Amount != inv.Total {
			t.Fatalf("expected job amount stamped with invoice total, got %+v", done.Amount)
		}

		tech, _ := f.techs.GetByID(ctx, "tech-1")
		if tech.JobsCompleted != 1 {
			t.Fatalf("expected completed counter bump, got %d", tech.JobsCompleted)
		}
	})

	t.Run("zero-rate line rejected before mutation", func(t *testing.T) {
		f := newJobFixture(t)
		j := f.createJob(t)

		_, _, err := f.jobs.Complete(ctx, j.ID, []entities.LineItem{{Quantity: 1, UnitPrice: 0}})
		if !errors.Is(err, ErrInvalidLineItems) {
			t.Fatalf("expected ErrInvalidLineItems, got %v", err)
		}
		got, _ := f.jobs.GetByID(ctx, j.ID)
		if got.Status != entities.JobStatusPending {
			t.Fatalf("job must stay pending, got %s", got.Status)
		}
	})
}
