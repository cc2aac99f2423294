package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Verve-Commerce/verve-storefront-backend/config"
	"github.com/Verve-Commerce/verve-storefront-backend/models"
)

// Provider is the contract against the generative backend. Both calls
// may fail with a generic error; callers decide whether to surface it.
type Provider interface {
	FetchProducts(ctx context.Context) ([]models.Product, error)
	FetchNotifications(ctx context.Context) ([]models.AdminNotification, error)
}

// ProviderClient talks HTTP/JSON to the generative backend.
type ProviderClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewProviderClient builds a client from the loaded provider config.
func NewProviderClient() *ProviderClient {
	return &ProviderClient{
		baseURL: config.Provider.BaseURL,
		apiKey:  config.Provider.APIKey,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

type productsEnvelope struct {
	Products []models.Product `json:"products"`
}

type notificationsEnvelope struct {
	Notifications []models.AdminNotification `json:"notifications"`
}

// FetchProducts requests the full generated catalog.
func (p *ProviderClient) FetchProducts(ctx context.Context) ([]models.Product, error) {
	var envelope productsEnvelope
	if err := p.getJSON(ctx, "/api/products", &envelope); err != nil {
		return nil, err
	}
	return envelope.Products, nil
}

// FetchNotifications requests the generated admin notification feed.
func (p *ProviderClient) FetchNotifications(ctx context.Context) ([]models.AdminNotification, error) {
	var envelope notificationsEnvelope
	if err := p.getJSON(ctx, "/api/notifications", &envelope); err != nil {
		return nil, err
	}
	return envelope.Notifications, nil
}

func (p *ProviderClient) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build provider request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if p.apiKey != "" {
		req.Header.Set("X-API-Key", p.apiKey)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("provider request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("provider returned status %d for %s", resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode provider response: %w", err)
	}
	return nil
}
