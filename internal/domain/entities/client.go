package entities

import "time"

type ClientType string

const (
	ClientTypeResidential ClientType = "residential"
	ClientTypeCommercial  ClientType = "commercial"
)

func (t ClientType) Valid() bool {
	return t == ClientTypeResidential || t == ClientTypeCommercial
}

// Client is a billing/service recipient. Created on first job or quote,
// updated on subsequent interactions, never deleted.
type Client struct {
	ID       string     `json:"id"`
	Division Division   `json:"division"`
	Type     ClientType `json:"type"`
	Name     string     `json:"name"`
	Phone    string     `json:"phone"`
	Email    string     `json:"email"`
	Address  string     `json:"address"`

	// TotalSpent accumulates paid invoice totals.
	TotalSpent float64  `json:"total_spent"`
	Equipment  []string `json:"equipment"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
