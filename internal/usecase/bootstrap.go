package usecase

import (
	"context"
	"log"
	"sync/atomic"

	"maisonpro_dispatch/internal/domain/entities"
	"maisonpro_dispatch/internal/usecase/interfaces"
)

// SeedData is the fixed bootstrap dataset loaded into the store on startup.
type SeedData struct {
	Clients     []entities.Client
	Technicians []entities.Technician
	Jobs        []entities.Job
	Invoices    []entities.Invoice
	Quotes      []entities.QuoteSubmission
}

// Bootstrap seeds the store and merges the durable quote archive. Until
// Run finishes the store is uninitialized and the API must refuse to serve
// rather than operate on a partial store; Ready is the gate.
type Bootstrap struct {
	jobs      interfaces.IJobRepository
	techs     interfaces.ITechnicianRepository
	clients   interfaces.IClientRepository
	invs      interfaces.IInvoiceRepository
	quoteRepo interfaces.IQuoteRepository
	quotes    IQuoteUseCase

	ready atomic.Bool
}

func NewBootstrap(
	jobs interfaces.IJobRepository,
	techs interfaces.ITechnicianRepository,
	clients interfaces.IClientRepository,
	invs interfaces.IInvoiceRepository,
	quoteRepo interfaces.IQuoteRepository,
	quotes IQuoteUseCase,
) *Bootstrap {
	return &Bootstrap{jobs: jobs, techs: techs, clients: clients, invs: invs, quoteRepo: quoteRepo, quotes: quotes}
}

func (b *Bootstrap) Ready() bool {
	return b.ready.Load()
}

func (b *Bootstrap) Run(ctx context.Context, seed SeedData) error {
	for _, c := range seed.Clients {
		if _, err := b.clients.Create(ctx, c); err != nil {
			return err
		}
	}
	for _, tech := range seed.Technicians {
		if _, err := b.techs.Create(ctx, tech); err != nil {
			return err
		}
	}
	for _, j := range seed.Jobs {
		if _, err := b.jobs.Create(ctx, j); err != nil {
			return err
		}
	}
	for _, inv := range seed.Invoices {
		if _, err := b.invs.Create(ctx, inv); err != nil {
			return err
		}
	}
	// Demo quotes seed the memory collection directly: only operator
	// mutations are mirrored to the archive.
	for _, q := range seed.Quotes {
		if _, err := b.quoteRepo.Create(ctx, q); err != nil {
			return err
		}
	}

	restored, err := b.quotes.MergeArchive(ctx)
	if err != nil {
		return err
	}

	b.ready.Store(true)
	log.Printf("[bootstrap] store seeded clients=%d technicians=%d jobs=%d invoices=%d quotes_restored=%d",
		len(seed.Clients), len(seed.Technicians), len(seed.Jobs), len(seed.Invoices), restored)
	return nil
}
