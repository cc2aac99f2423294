package services

import (
	"context"
	"log"

	"github.com/Verve-Commerce/verve-storefront-backend/cache"
)

// CatalogService orchestrates loading the catalog and the notification
// feed from the generative provider into the process-local stores.
type CatalogService struct {
	provider Provider
}

var catalogService *CatalogService

// InitCatalogService wires the provider in.
func InitCatalogService(p Provider) {
	catalogService = &CatalogService{provider: p}
}

// GetCatalogService returns the initialized catalog service.
func GetCatalogService() *CatalogService {
	return catalogService
}

// EnsureCatalogLoaded fetches the product list once. The store guard
// refuses re-entry while a load is in flight or after the catalog is
// populated, so concurrent callers and repeat mounts are no-ops.
// A failed load is terminal for the grid region: the error is recorded
// and nothing retries.
func (s *CatalogService) EnsureCatalogLoaded(ctx context.Context) {
	if !cache.BeginCatalogLoad() {
		return
	}

	products, err := s.provider.FetchProducts(ctx)
	if err != nil {
		log.Printf("[catalog] failed to load products: %v", err)
		cache.FailCatalogLoad("Unable to load products. Please try again later.")
		return
	}

	cache.CompleteCatalogLoad(products)
	log.Printf("[catalog] loaded %d products", len(products))
}

// RefreshNotifications fetches the notification feed after a staff
// login. Failures are logged and swallowed: the previous list stays in
// place, nothing is surfaced to the user, nothing retries.
func (s *CatalogService) RefreshNotifications(ctx context.Context) {
	notifications, err := s.provider.FetchNotifications(ctx)
	if err != nil {
		log.Printf("[catalog] failed to refresh notifications: %v", err)
		return
	}
	cache.ReplaceNotifications(notifications)
	log.Printf("[catalog] loaded %d notifications", len(notifications))
}

// ClearNotifications empties the feed on logout. No network call.
func (s *CatalogService) ClearNotifications() {
	cache.ClearNotifications()
}
