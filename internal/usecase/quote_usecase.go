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
	ErrInvalidQuoteID     = errors.New("invalid quote id")
	ErrQuoteNotFound      = errors.New("quote not found")
	ErrMissingQuoteFields = errors.New("missing quote contact fields")
	ErrInvalidQuoteStatus = errors.New("invalid quote status")
	ErrEmptyNote          = errors.New("empty note")
)

const noteTimestampLayout = "2006-01-02 15:04"

// IQuoteUseCase tracks inbound quote requests from first contact to
// resolution, independent of the job state machine.
//
// Durability: quotes are the one entity that survives restarts. Every
// mutation is written through to the quote archive; MergeArchive reloads
// the durable copies into the store at boot.

type IQuoteUseCase interface {
	Create(ctx context.Context, q entities.QuoteSubmission) (entities.QuoteSubmission, error)
	GetByID(ctx context.Context, id string) (entities.QuoteSubmission, error)
	List(ctx context.Context) ([]entities.QuoteSubmission, error)
	MarkContacted(ctx context.Context, id string) (entities.QuoteSubmission, error)
	UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus) (entities.QuoteSubmission, error)
	AppendNote(ctx context.Context, id, note string) (entities.QuoteSubmission, error)
	MergeArchive(ctx context.Context) (int, error)
}

type QuoteUseCase struct {
	repo     interfaces.IQuoteRepository
	archive  interfaces.IQuoteArchive
	portal   interfaces.IPortalGateway
	notifier *Notifier
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(
	repo interfaces.IQuoteRepository,
	archive interfaces.IQuoteArchive,
	portal interfaces.IPortalGateway,
	notifier *Notifier,
) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, archive: archive, portal: portal, notifier: notifier}
}

func (u *QuoteUseCase) Create(ctx context.Context, q entities.QuoteSubmission) (entities.QuoteSubmission, error) {
	q.Name = strings.TrimSpace(q.Name)
	q.Phone = strings.TrimSpace(q.Phone)
	if q.Name == "" || q.Phone == "" {
		return entities.QuoteSubmission{}, ErrMissingQuoteFields
	}
	if q.ClientType == "" {
		q.ClientType = entities.ClientTypeResidential
	}
	if !q.ClientType.Valid() {
		return entities.QuoteSubmission{}, ErrInvalidClientType
	}

	now := time.Now().UTC()
	q.ID = uuid.NewString()
	q.Status = entities.QuoteStatusNew
	q.Notes = ""
	q.ContactedAt = nil
	q.CreatedAt = now
	q.UpdatedAt = now

	created, err := u.repo.Create(ctx, q)
	if err != nil {
		return entities.QuoteSubmission{}, err
	}
	u.archiveWrite(ctx, created)
	u.notifier.Publish(ChangeEvent{Entity: "quote", Action: ActionCreated, ID: created.ID})
	return created, nil
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.QuoteSubmission, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.QuoteSubmission{}, ErrInvalidQuoteID
	}
	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.QuoteSubmission{}, err
	}
	if q.ID == "" {
		return entities.QuoteSubmission{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) List(ctx context.Context) ([]entities.QuoteSubmission, error) {
	return u.repo.List(ctx)
}

// MarkContacted moves a new quote to contacted. The contactedAt stamp is
// "first contacted at": set once, never overwritten, so calling this on an
// already-contacted quote is a pure no-op.
func (u *QuoteUseCase) MarkContacted(ctx context.Context, id string) (entities.QuoteSubmission, error) {
	q, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.QuoteSubmission{}, err
	}
	if q.Status == entities.QuoteStatusContacted {
		return q, nil
	}
	if !q.Status.CanTransitionTo(entities.QuoteStatusContacted) {
		return entities.QuoteSubmission{}, &TransitionError{EntityID: q.ID, From: string(q.Status), To: string(entities.QuoteStatusContacted)}
	}

	now := time.Now().UTC()
	q.Status = entities.QuoteStatusContacted
	if q.ContactedAt == nil {
		q.ContactedAt = &now
	}
	q.UpdatedAt = now
	return u.save(ctx, q)
}

func (u *QuoteUseCase) UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus) (entities.QuoteSubmission, error) {
	if !status.Valid() {
		return entities.QuoteSubmission{}, ErrInvalidQuoteStatus
	}
	if status == entities.QuoteStatusContacted {
		return u.MarkContacted(ctx, id)
	}

	q, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.QuoteSubmission{}, err
	}
	if q.Status == status {
		return q, nil
	}
	if !q.Status.CanTransitionTo(status) {
		return entities.QuoteSubmission{}, &TransitionError{EntityID: q.ID, From: string(q.Status), To: string(status)}
	}

	q.Status = status
	q.UpdatedAt = time.Now().UTC()
	saved, err := u.save(ctx, q)
	if err != nil {
		return entities.QuoteSubmission{}, err
	}

	if status == entities.QuoteStatusAccepted && u.portal != nil {
		// Portal provisioning is the collaborator's concern; an outage
		// must not roll back the accepted quote.
		if err := u.portal.ProvisionAccess(ctx, saved); err != nil {
			log.Printf("[quote][usecase] portal provisioning failed quote_id=%s err=%v", saved.ID, err)
		}
	}
	return saved, nil
}

// AppendNote prepends a timestamped note. Prior note text is preserved
// verbatim below the new entry.
func (u *QuoteUseCase) AppendNote(ctx context.Context, id, note string) (entities.QuoteSubmission, error) {
	note = strings.TrimSpace(note)
	if note == "" {
		return entities.QuoteSubmission{}, ErrEmptyNote
	}
	q, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.QuoteSubmission{}, err
	}

	now := time.Now().UTC()
	entry := fmt.Sprintf("[%s] %s", now.Format(noteTimestampLayout), note)
	if q.Notes == "" {
		q.Notes = entry
	} else {
		q.Notes = entry + "\n" + q.Notes
	}
	q.UpdatedAt = now
	return u.save(ctx, q)
}

// MergeArchive loads durable quote submissions into the store. Records
// already in memory win: the archive only backfills what a restart lost.
func (u *QuoteUseCase) MergeArchive(ctx context.Context) (int, error) {
	if u.archive == nil {
		return 0, nil
	}
	archived, err := u.archive.ListAll(ctx)
	if err != nil {
		return 0, err
	}
	merged := 0
	for _, q := range archived {
		existing, err := u.repo.GetByID(ctx, q.ID)
		if err != nil {
			return merged, err
		}
		if existing.ID != "" {
			continue
		}
		if _, err := u.repo.Create(ctx, q); err != nil {
			return merged, err
		}
		merged++
	}
	log.Printf("[quote][usecase] archive merge complete restored=%d", merged)
	return merged, nil
}

func (u *QuoteUseCase) save(ctx context.Context, q entities.QuoteSubmission) (entities.QuoteSubmission, error) {
	saved, err := u.repo.Save(ctx, q)
	if err != nil {
		return entities.QuoteSubmission{}, err
	}
	if saved.ID == "" {
		return entities.QuoteSubmission{}, ErrQuoteNotFound
	}
	u.archiveWrite(ctx, saved)
	u.notifier.Publish(ChangeEvent{Entity: "quote", Action: ActionUpdated, ID: saved.ID})
	return saved, nil
}

// archiveWrite mirrors the committed record to the durable slot. The
// in-memory store already holds the record, so a failed mirror is logged
// and the operation still succeeds.
func (u *QuoteUseCase) archiveWrite(ctx context.Context, q entities.QuoteSubmission) {
	if u.archive == nil {
		return
	}
	if err := u.archive.Put(ctx, q); err != nil {
		log.Printf("[quote][usecase] archive write failed quote_id=%s err=%v", q.ID, err)
	}
}
