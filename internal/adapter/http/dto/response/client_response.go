package response

import (
	"time"

	"maisonpro_dispatch/internal/domain/entities"
)

type ClientResponse struct {
	ID       string `json:"id"`
	Division string `json:"division"`
	Type     string `json:"type"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Address  string `json:"address"`

	TotalSpent float64  `json:"total_spent"`
	Equipment  []string `json:"equipment"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromClient(c entities.Client) ClientResponse {
	return ClientResponse{
		ID:         c.ID,
		Division:   string(c.Division),
		Type:       string(c.Type),
		Name:       c.Name,
		Phone:      c.Phone,
		Email:      c.Email,
		Address:    c.Address,
		TotalSpent: entities.RoundCents(c.TotalSpent),
		Equipment:  c.Equipment,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

func FromClients(clients []entities.Client) []ClientResponse {
	out := make([]ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, FromClient(c))
	}
	return out
}
