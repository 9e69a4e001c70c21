package entities

import "time"

// InvoiceStatus advances manually (draft → sent → viewed → paid) or to
// overdue/cancelled. Totals are frozen once an invoice is paid.

type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "draft"
	InvoiceStatusSent      InvoiceStatus = "sent"
	InvoiceStatusViewed    InvoiceStatus = "viewed"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusOverdue   InvoiceStatus = "overdue"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusViewed,
		InvoiceStatusPaid, InvoiceStatusOverdue, InvoiceStatusCancelled:
		return true
	}
	return false
}

// LineItem is one billed row. Total is computed, never client-supplied.
type LineItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

// Invoice is a billing record derived from a completed job.
//
// Invariant: Subtotal, Tax and Total always satisfy the GST+QST rule in
// taxes.go after any line-item edit. They are recomputed on every edit
// until the invoice is paid, then frozen.
type Invoice struct {
	ID       string   `json:"id"`
	Division Division `json:"division"`
	JobID    string   `json:"job_id"`
	ClientID string   `json:"client_id"`

	LineItems []LineItem `json:"line_items"`
	Subtotal  float64    `json:"subtotal"`
	Tax       float64    `json:"tax"`
	Total     float64    `json:"total"`

	Status  InvoiceStatus `json:"status"`
	DueDate time.Time     `json:"due_date"`
	PaidAt  *time.Time    `json:"paid_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
