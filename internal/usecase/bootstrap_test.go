package usecase

import (
	"context"
	"testing"

	"maisonpro_dispatch/internal/adapter/persistence/memory"
	"maisonpro_dispatch/internal/domain/entities"
	mock_interfaces "maisonpro_dispatch/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestBootstrap_Run(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	jobRepo := memory.NewJobMemoryRepository()
	techRepo := memory.NewTechnicianMemoryRepository()
	clientRepo := memory.NewClientMemoryRepository()
	invRepo := memory.NewInvoiceMemoryRepository()
	quoteRepo := memory.NewQuoteMemoryRepository()

	archive := mock_interfaces.NewMockIQuoteArchive(ctrl)
	archive.EXPECT().ListAll(gomock.Any()).Return([]entities.QuoteSubmission{
		{ID: "q-archived", Status: entities.QuoteStatusQuoted, Name: "A", Phone: "p"},
	}, nil)

	quotes := NewQuoteUseCase(quoteRepo, archive, nil, nil)
	b := NewBootstrap(jobRepo, techRepo, clientRepo, invRepo, quoteRepo, quotes)

	if b.Ready() {
		t.Fatal("bootstrap must not report ready before Run")
	}

	err := b.Run(ctx, SeedData{
		Clients:     []entities.Client{{ID: "cli-1", Division: entities.DivisionPlomberie, Name: "N", Phone: "p"}},
		Technicians: []entities.Technician{{ID: "t1", Division: entities.DivisionPlomberie, Name: "Luc", Status: entities.TechnicianStatusAvailable}},
		Jobs:        []entities.Job{{ID: "j1", Division: entities.DivisionPlomberie, ClientID: "cli-1", Status: entities.JobStatusPending}},
		Quotes:      []entities.QuoteSubmission{{ID: "q-demo", Status: entities.QuoteStatusNew, Name: "D", Phone: "p"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !b.Ready() {
		t.Fatal("bootstrap must report ready after Run")
	}

	// Demo rows land in the store without touching the archive; archived
	// quotes are restored next to them.
	all, err := quoteRepo.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected demo + archived quotes, got %d", len(all))
	}
	restored, _ := quoteRepo.GetByID(ctx, "q-archived")
	if restored.Status != entities.QuoteStatusQuoted {
		t.Fatalf("expected archived quote restored, got %+v", restored)
	}

	if tech, _ := techRepo.GetByID(ctx, "t1"); tech.Name != "Luc" {
		t.Fatalf("expected seeded technician, got %+v", tech)
	}
}
