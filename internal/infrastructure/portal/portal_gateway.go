package portal

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"maisonpro_dispatch/internal/domain/entities"
	"maisonpro_dispatch/internal/usecase/interfaces"
)

var ErrMissingPortalAPIURL = errors.New("missing PORTAL_API_URL")
var ErrPortalGatewayNotConfigured = errors.New("portal gateway not configured")

// PortalGateway provisions client portal access when a quote is accepted.
// The portal is a separate product with a plain HTTP intake endpoint; there
// is no vendor SDK, so the gateway speaks JSON over net/http directly.
type PortalGateway struct {
	baseURL  string
	client   *http.Client
	mockMode bool
}

var _ interfaces.IPortalGateway = (*PortalGateway)(nil)

func NewPortalGateway(baseURL string) (*PortalGateway, error) {
	if isPortalGatewayMockEnabled() {
		log.Printf("[portal][gateway] mock mode enabled")
		return &PortalGateway{mockMode: true}, nil
	}

	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		log.Printf("[portal][gateway] missing PORTAL_API_URL")
		return nil, ErrMissingPortalAPIURL
	}

	return &PortalGateway{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}, nil
}

type provisionRequest struct {
	QuoteID     string `json:"quote_id"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Email       string `json:"email,omitempty"`
	ServiceType string `json:"service_type,omitempty"`
}

func (g *PortalGateway) ProvisionAccess(ctx context.Context, q entities.QuoteSubmission) error {
	if g != nil && g.mockMode {
		log.Printf("[portal][gateway] mock provision success quote_id=%s", q.ID)
		return nil
	}
	if g == nil || g.client == nil {
		log.Printf("[portal][gateway] gateway not configured")
		return ErrPortalGatewayNotConfigured
	}

	body, err := json.Marshal(provisionRequest{
		QuoteID:     q.ID,
		Name:        q.Name,
		Phone:       q.Phone,
		Email:       q.Email,
		ServiceType: q.ServiceType,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/accounts", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		log.Printf("[portal][gateway] provision request failed quote_id=%s err=%v", q.ID, err)
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[portal][gateway] provision rejected quote_id=%s status=%d", q.ID, resp.StatusCode)
		return fmt.Errorf("portal provision rejected: status %d", resp.StatusCode)
	}

	log.Printf("[portal][gateway] provision success quote_id=%s", q.ID)
	return nil
}

func isPortalGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PORTAL_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
