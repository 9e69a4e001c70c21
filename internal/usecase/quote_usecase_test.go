package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"maisonpro_dispatch/internal/adapter/persistence/memory"
	"maisonpro_dispatch/internal/domain/entities"
	mock_interfaces "maisonpro_dispatch/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newQuoteUseCase(t *testing.T, ctrl *gomock.Controller) (*QuoteUseCase, *memory.QuoteMemoryRepository, *mock_interfaces.MockIQuoteArchive, *mock_interfaces.MockIPortalGateway) {
	t.Helper()
	repo := memory.NewQuoteMemoryRepository()
	archive := mock_interfaces.NewMockIQuoteArchive(ctrl)
	portal := mock_interfaces.NewMockIPortalGateway(ctrl)
	return NewQuoteUseCase(repo, archive, portal, nil), repo, archive, portal
}

func TestQuoteUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("missing contact fields", func(t *testing.T) {
		uc := NewQuoteUseCase(memory.NewQuoteMemoryRepository(), nil, nil, nil)
		_, err := uc.Create(ctx, entities.QuoteSubmission{Name: "  ", Phone: ""})
		if !errors.Is(err, ErrMissingQuoteFields) {
			t.Fatalf("expected ErrMissingQuoteFields, got %v", err)
		}
	})

	t.Run("creates as new and mirrors to archive", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, archive, _ := newQuoteUseCase(t, ctrl)

		archive.EXPECT().Put(gomock.Any(), gomock.AssignableToTypeOf(entities.QuoteSubmission{})).Return(nil)

		created, err := uc.Create(ctx, entities.QuoteSubmission{
			Name: "Mme Gagnon", Phone: "438-555-0002",
			ServiceType: "toiture", Description: "Bardeaux arrachés",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID == "" || created.Status != entities.QuoteStatusNew || created.ContactedAt != nil {
			t.Fatalf("unexpected quote: %+v", created)
		}

		got, _ := repo.GetByID(ctx, created.ID)
		if got.ID != created.ID {
			t.Fatal("quote should be readable right after create")
		}
	})

	t.Run("archive outage does not fail the create", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, archive, _ := newQuoteUseCase(t, ctrl)

		archive.EXPECT().Put(gomock.Any(), gomock.Any()).Return(errors.New("dynamo down"))

		if _, err := uc.Create(ctx, entities.QuoteSubmission{Name: "A", Phone: "p"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestQuoteUseCase_MarkContacted(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, _, archive, _ := newQuoteUseCase(t, ctrl)
	archive.EXPECT().Put(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	q, err := uc.Create(ctx, entities.QuoteSubmission{Name: "A", Phone: "p"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first, err := uc.MarkContacted(ctx, q.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Status != entities.QuoteStatusContacted || first.ContactedAt == nil {
		t.Fatalf("unexpected quote: %+v", first)
	}

	// Second call is a pure no-op: same stamp, same status.
	time.Sleep(time.Millisecond)
	second, err := uc.MarkContacted(ctx, q.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !second.ContactedAt.Equal(*first.ContactedAt) {
		t.Fatalf("contactedAt must not change: %v vs %v", second.ContactedAt, first.ContactedAt)
	}
}

func TestQuoteUseCase_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T, uc *QuoteUseCase) entities.QuoteSubmission {
		t.Helper()
		q, err := uc.Create(ctx, entities.QuoteSubmission{Name: "A", Phone: "p", Email: "a@example.com"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return q
	}

	t.Run("full pipeline to accepted provisions portal access", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, archive, portal := newQuoteUseCase(t, ctrl)
		archive.EXPECT().Put(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		q := seed(t, uc)

		portal.EXPECT().ProvisionAccess(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, got entities.QuoteSubmission) error {
				if got.ID != q.ID || got.Status != entities.QuoteStatusAccepted || got.Email != "a@example.com" {
					t.Fatalf("portal should see the accepted quote contact fields: %+v", got)
				}
				return nil
			},
		)

		for _, status := range []entities.QuoteStatus{
			entities.QuoteStatusContacted, entities.QuoteStatusQuoted,
			entities.QuoteStatusAccepted, entities.QuoteStatusCompleted,
		} {
			if _, err := uc.UpdateStatus(ctx, q.ID, status); err != nil {
				t.Fatalf("transition to %s: %v", status, err)
			}
		}
	})

	t.Run("portal outage does not roll back the accept", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, archive, portal := newQuoteUseCase(t, ctrl)
		archive.EXPECT().Put(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		q := seed(t, uc)

		for _, status := range []entities.QuoteStatus{entities.QuoteStatusContacted, entities.QuoteStatusQuoted} {
			if _, err := uc.UpdateStatus(ctx, q.ID, status); err != nil {
				t.Fatalf("transition to %s: %v", status, err)
			}
		}
		portal.EXPECT().ProvisionAccess(gomock.Any(), gomock.Any()).Return(errors.New("portal down"))

		got, err := uc.UpdateStatus(ctx, q.ID, entities.QuoteStatusAccepted)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.QuoteStatusAccepted {
			t.Fatalf("expected accepted, got %s", got.Status)
		}
	})

	t.Run("illegal pipeline skip", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, archive, _ := newQuoteUseCase(t, ctrl)
		archive.EXPECT().Put(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		q := seed(t, uc)

		_, err := uc.UpdateStatus(ctx, q.ID, entities.QuoteStatusAccepted)
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
		got, _ := uc.GetByID(ctx, q.ID)
		if got.Status != entities.QuoteStatusNew {
			t.Fatalf("store must be unchanged, got %s", got.Status)
		}
	})
}

func TestQuoteUseCase_AppendNote(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, _, archive, _ := newQuoteUseCase(t, ctrl)
	archive.EXPECT().Put(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	q, err := uc.Create(ctx, entities.QuoteSubmission{Name: "A", Phone: "p"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first, err := uc.AppendNote(ctx, q.ID, "Appelé, pas de réponse")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(first.Notes, "Appelé, pas de réponse") || !strings.HasPrefix(first.Notes, "[") {
		t.Fatalf("expected timestamped note, got %q", first.Notes)
	}

	second, err := uc.AppendNote(ctx, q.ID, "Rappel prévu demain")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(second.Notes, first.Notes) {
		t.Fatalf("prior notes must be preserved verbatim, got %q", second.Notes)
	}
	if !strings.Contains(strings.SplitN(second.Notes, "\n", 2)[0], "Rappel prévu demain") {
		t.Fatalf("newest note must come first, got %q", second.Notes)
	}

	if _, err := uc.AppendNote(ctx, q.ID, "   "); !errors.Is(err, ErrEmptyNote) {
		t.Fatalf("expected ErrEmptyNote, got %v", err)
	}
}

func TestQuoteUseCase_MergeArchive(t *testing.T) {
	ctx := context.Background()

	t.Run("backfills only missing records", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, archive, _ := newQuoteUseCase(t, ctrl)

		if _, err := repo.Create(ctx, entities.QuoteSubmission{ID: "q-live", Status: entities.QuoteStatusQuoted}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		archive.EXPECT().ListAll(gomock.Any()).Return([]entities.QuoteSubmission{
			{ID: "q-live", Status: entities.QuoteStatusNew},
			{ID: "q-old", Status: entities.QuoteStatusContacted},
		}, nil)

		restored, err := uc.MergeArchive(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if restored != 1 {
			t.Fatalf("expected 1 restored, got %d", restored)
		}
		live, _ := repo.GetByID(ctx, "q-live")
		if live.Status != entities.QuoteStatusQuoted {
			t.Fatal("in-memory record must win over the archive copy")
		}
		old, _ := repo.GetByID(ctx, "q-old")
		if old.Status != entities.QuoteStatusContacted {
			t.Fatalf("archived record should be restored, got %+v", old)
		}
	})

	t.Run("archive error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, archive, _ := newQuoteUseCase(t, ctrl)
		archive.EXPECT().ListAll(gomock.Any()).Return(nil, errors.New("dynamo down"))

		if _, err := uc.MergeArchive(ctx); err == nil || err.Error() != "dynamo down" {
			t.Fatalf("expected dynamo down, got %v", err)
		}
	})
}
