package response

import (
	"time"

	"maisonpro_dispatch/internal/domain/entities"
)

type LineItemResponse struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

type InvoiceResponse struct {
	ID       string `json:"id"`
	Division string `json:"division"`
	JobID    string `json:"job_id"`
	ClientID string `json:"client_id"`

	LineItems []LineItemResponse `json:"line_items"`

	// Amounts are rounded to cents at the boundary only.
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`

	Status  string     `json:"status"`
	DueDate time.Time  `json:"due_date"`
	PaidAt  *time.Time `json:"paid_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	items := make([]LineItemResponse, 0, len(inv.LineItems))
	for _, it := range inv.LineItems {
		items = append(items, LineItemResponse{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Total:       entities.RoundCents(it.Total),
		})
	}
	return InvoiceResponse{
		ID:        inv.ID,
		Division:  string(inv.Division),
		JobID:     inv.JobID,
		ClientID:  inv.ClientID,
		LineItems: items,
		Subtotal:  entities.RoundCents(inv.Subtotal),
		Tax:       entities.RoundCents(inv.Tax),
		Total:     entities.RoundCents(inv.Total),
		Status:    string(inv.Status),
		DueDate:   inv.DueDate,
		PaidAt:    inv.PaidAt,
		CreatedAt: inv.CreatedAt,
		UpdatedAt: inv.UpdatedAt,
	}
}

func FromInvoices(invoices []entities.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, FromInvoice(inv))
	}
	return out
}
