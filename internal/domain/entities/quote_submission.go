package entities

import "time"

// QuoteStatus is the intake pipeline for inbound quote requests. It is
// independent of the job lifecycle: a quote only touches the job graph when
// an operator converts it.
//
// Legal moves: new → contacted → quoted → accepted|rejected → completed.
// Re-entering the current status is a no-op; anything else is rejected.

type QuoteStatus string

const (
	QuoteStatusNew       QuoteStatus = "new"
	QuoteStatusContacted QuoteStatus = "contacted"
	QuoteStatusQuoted    QuoteStatus = "quoted"
	QuoteStatusAccepted  QuoteStatus = "accepted"
	QuoteStatusRejected  QuoteStatus = "rejected"
	QuoteStatusCompleted QuoteStatus = "completed"
)

func (s QuoteStatus) Valid() bool {
	switch s {
	case QuoteStatusNew, QuoteStatusContacted, QuoteStatusQuoted,
		QuoteStatusAccepted, QuoteStatusRejected, QuoteStatusCompleted:
		return true
	}
	return false
}

func (s QuoteStatus) CanTransitionTo(to QuoteStatus) bool {
	switch s {
	case QuoteStatusNew:
		return to == QuoteStatusContacted
	case QuoteStatusContacted:
		return to == QuoteStatusQuoted
	case QuoteStatusQuoted:
		return to == QuoteStatusAccepted || to == QuoteStatusRejected
	case QuoteStatusAccepted, QuoteStatusRejected:
		return to == QuoteStatusCompleted
	}
	return false
}

// QuoteSubmission is an inbound request for a quote. Unlike the other
// entities it survives restarts: submissions are written through to the
// durable quote slot and merged back into the store at boot.
type QuoteSubmission struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Phone       string      `json:"phone"`
	Email       string      `json:"email"`
	ServiceType string      `json:"service_type"`
	ClientType  ClientType  `json:"client_type"`
	Description string      `json:"description"`
	Status      QuoteStatus `json:"status"`

	// Notes is append-only, newest entry first. Each entry carries its own
	// timestamp prefix; prior text is never rewritten.
	Notes string `json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	// ContactedAt is "first contacted at": set once, never overwritten.
	ContactedAt *time.Time `json:"contacted_at,omitempty"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
