package response

import (
	"time"

	"maisonpro_dispatch/internal/domain/entities"
)

type QuoteResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	ServiceType string `json:"service_type"`
	ClientType  string `json:"client_type"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Notes       string `json:"notes"`

	CreatedAt   time.Time  `json:"created_at"`
	ContactedAt *time.Time `json:"contacted_at,omitempty"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func FromQuote(q entities.QuoteSubmission) QuoteResponse {
	return QuoteResponse{
		ID:          q.ID,
		Name:        q.Name,
		Phone:       q.Phone,
		Email:       q.Email,
		ServiceType: q.ServiceType,
		ClientType:  string(q.ClientType),
		Description: q.Description,
		Status:      string(q.Status),
		Notes:       q.Notes,
		CreatedAt:   q.CreatedAt,
		ContactedAt: q.ContactedAt,
		UpdatedAt:   q.UpdatedAt,
	}
}

func FromQuotes(quotes []entities.QuoteSubmission) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuote(q))
	}
	return out
}
