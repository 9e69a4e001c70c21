package interfaces

import (
	"context"
	"maisonpro_dispatch/internal/domain/entities"
)

// IPortalGateway abstracts the client-portal collaborator. When a quote is
// accepted the core hands over the requester's contact fields so the portal
// can provision access credentials. The core never sees the credentials.
type IPortalGateway interface {
	ProvisionAccess(ctx context.Context, q entities.QuoteSubmission) error
}
