package request

import "maisonpro_dispatch/internal/domain/entities"

// QuoteCreateRequest is the public intake payload from the marketing site
// quote form.
type QuoteCreateRequest struct {
	Name        string `json:"name" binding:"required"`
	Phone       string `json:"phone" binding:"required"`
	Email       string `json:"email"`
	ServiceType string `json:"service_type"`
	ClientType  string `json:"client_type"`
	Description string `json:"description"`
}

func (r QuoteCreateRequest) ToQuoteSubmission() entities.QuoteSubmission {
	return entities.QuoteSubmission{
		Name:        r.Name,
		Phone:       r.Phone,
		Email:       r.Email,
		ServiceType: r.ServiceType,
		ClientType:  entities.ClientType(r.ClientType),
		Description: r.Description,
	}
}

type QuoteStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type QuoteNoteRequest struct {
	Note string `json:"note" binding:"required"`
}
